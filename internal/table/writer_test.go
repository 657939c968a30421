package table

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestRender_Example(t *testing.T) {
	var buf bytes.Buffer
	records := []Record{
		{{Name: "id", Value: int64(1)}, {Name: "name", Value: "Engineering"}},
		{{Name: "id", Value: int64(2)}, {Name: "name", Value: "Sales"}},
	}

	require.NoError(t, Render(&buf, records))

	lines := splitLines(buf.String())
	require.Len(t, lines, 4)
	assert.Equal(t, "id | name       ", lines[0])
	assert.Equal(t, "-- | -----------", lines[1])
	assert.Equal(t, "1  | Engineering", lines[2])
	assert.Equal(t, "2  | Sales      ", lines[3])
}

func TestRender_EmptyInput(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Render(&buf, nil))
	require.NoError(t, Render(&buf, []Record{}))

	assert.Empty(t, buf.String())
}

func TestRender_NullAndMissingValues(t *testing.T) {
	var buf bytes.Buffer
	records := []Record{
		{{Name: "id", Value: int64(1)}, {Name: "title", Value: "Engineer"}, {Name: "department", Value: nil}},
		{{Name: "id", Value: int64(2)}, {Name: "title", Value: "Accountant"}},
	}

	require.NoError(t, Render(&buf, records))

	lines := splitLines(buf.String())
	require.Len(t, lines, 4)
	assert.Equal(t, "id | title      | department", lines[0])
	assert.Equal(t, "1  | Engineer   |           ", lines[2])
	assert.Equal(t, "2  | Accountant |           ", lines[3])
}

func TestRender_HeaderOrderFollowsFirstRecord(t *testing.T) {
	var buf bytes.Buffer
	records := []Record{
		{{Name: "salary", Value: 100000.5}, {Name: "id", Value: int64(7)}},
		{{Name: "id", Value: int64(8)}, {Name: "salary", Value: int64(90)}},
	}

	require.NoError(t, Render(&buf, records))

	lines := splitLines(buf.String())
	require.Len(t, lines, 4)
	assert.Equal(t, "salary   | id", lines[0])
	assert.Equal(t, "100000.5 | 7 ", lines[2])
	assert.Equal(t, "90       | 8 ", lines[3])
}

func TestRender_SeparatorCountAndPaddingInvariant(t *testing.T) {
	var buf bytes.Buffer
	records := []Record{
		{{Name: "id", Value: int64(1)}, {Name: "first_name", Value: "Ada"}, {Name: "last_name", Value: "Lovelace"}, {Name: "manager", Value: nil}},
		{{Name: "id", Value: int64(22)}, {Name: "first_name", Value: "Grace"}, {Name: "last_name", Value: "Hopper"}, {Name: "manager", Value: "Ada Lovelace"}},
		{{Name: "id", Value: int64(333)}, {Name: "first_name", Value: "Bartholomew"}, {Name: "last_name", Value: "X"}, {Name: "manager", Value: []byte("Grace Hopper")}},
	}

	require.NoError(t, Render(&buf, records))

	lines := splitLines(buf.String())
	require.Len(t, lines, 5)

	widths := []int{3, 11, 9, 12}
	for _, line := range lines {
		assert.Equal(t, 3, strings.Count(line, Separator), "line %q", line)
		cells := strings.Split(line, Separator)
		require.Len(t, cells, len(widths))
		for i, cell := range cells {
			assert.Equal(t, widths[i], len(cell), "cell %q in line %q", cell, line)
		}
	}
	assert.Equal(t, "--- | ----------- | --------- | ------------", lines[1])
}

func TestRender_WideCharacters(t *testing.T) {
	var buf bytes.Buffer
	records := []Record{
		{{Name: "name", Value: "日本"}},
		{{Name: "name", Value: "abc"}},
	}

	require.NoError(t, Render(&buf, records))

	lines := splitLines(buf.String())
	require.Len(t, lines, 4)
	assert.Equal(t, "----", lines[1])
	assert.Equal(t, "日本", lines[2])
	assert.Equal(t, "abc ", lines[3])
}

func TestWriter_AppendRow_FewerColumnsThanHeaders(t *testing.T) {
	var buf bytes.Buffer
	tw := NewWriter(&buf)
	tw.SetHeaders([]string{"COL1", "COL2", "COL3"})

	tw.AppendRow([]string{"value1"})

	assert.Len(t, tw.rows, 1)
	assert.Equal(t, []string{"value1", "", ""}, tw.rows[0])
	assert.Equal(t, []int{6, 4, 4}, tw.ColumnWidths())
}

func TestWriter_AppendRow_MoreColumnsThanHeaders(t *testing.T) {
	var buf bytes.Buffer
	tw := NewWriter(&buf)
	tw.SetHeaders([]string{"COL1", "COL2"})

	tw.AppendRow([]string{"value1", "value2", "value3"})

	// Extra columns should be ignored
	assert.Equal(t, []string{"value1", "value2"}, tw.rows[0])
}

func TestWriter_Render_NoHeaders(t *testing.T) {
	var buf bytes.Buffer
	tw := NewWriter(&buf)

	require.NoError(t, tw.Render())
	assert.Empty(t, buf.String())
}

func TestStringify(t *testing.T) {
	name := "Sales"
	var nilName *string
	id := int64(4)
	var nilID *int64

	tests := []struct {
		value    any
		expected string
	}{
		{nil, ""},
		{"text", "text"},
		{[]byte("bytes"), "bytes"},
		{int64(0), "0"},
		{3.5, "3.5"},
		{true, "true"},
		{&name, "Sales"},
		{nilName, ""},
		{&id, "4"},
		{nilID, ""},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, Stringify(test.value), "value %#v", test.value)
	}
}

func TestRecord_GetAndNames(t *testing.T) {
	rec := Record{{Name: "id", Value: int64(1)}, {Name: "name", Value: "Ops"}}

	v, ok := rec.Get("name")
	assert.True(t, ok)
	assert.Equal(t, "Ops", v)

	_, ok = rec.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"id", "name"}, rec.Names())
	assert.Equal(t, map[string]any{"id": int64(1), "name": "Ops"}, rec.Map())
}

func TestRecord_MarshalJSONKeepsFieldOrder(t *testing.T) {
	rec := Record{
		{Name: "zeta", Value: int64(3)},
		{Name: "alpha", Value: "a\"b"},
		{Name: "mid", Value: nil},
	}

	out, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":3,"alpha":"a\"b","mid":null}`, string(out))

	out, err = json.Marshal(Record{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(out))
}

func TestRecord_MarshalJSONReportsBadValue(t *testing.T) {
	_, err := json.Marshal(Record{{Name: "ch", Value: make(chan int)}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encode ch")
}
