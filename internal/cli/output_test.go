package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stretchr/testify/assert"
)

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "Error: boom", FormatError(errors.New("boom")))
	assert.Equal(t, "✓ done", FormatSuccess("done"))
	assert.Equal(t, "⚠ careful", FormatWarning("careful"))
}

func TestOutput_StreamsWithoutColor(t *testing.T) {
	var stdout, stderr bytes.Buffer
	out := NewOutput(&stdout, &stderr, false)

	out.Success("added %d", 1)
	out.Warning("skipped")
	out.Printf("plain %s\n", "text")
	out.Error(errors.New("adding role: constraint failed"))

	assert.Equal(t, "✓ added 1\n⚠ skipped\nplain text\n", stdout.String())
	assert.Equal(t, "Error: adding role: constraint failed\n", stderr.String())
}

func TestOutput_Color(t *testing.T) {
	var stdout bytes.Buffer
	out := NewOutput(&stdout, &bytes.Buffer{}, true)

	out.Success("ok")

	assert.Equal(t, text.FgGreen.Sprint("✓ ok")+"\n", stdout.String())
}

func TestNewOutput_Defaults(t *testing.T) {
	out := NewOutput(nil, nil, false)

	assert.NotNil(t, out.Stdout())
	assert.NotNil(t, out.Stderr())
}
