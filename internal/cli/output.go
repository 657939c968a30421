package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/text"
)

// Output writes user-facing messages. Results and status lines go to stdout,
// errors go to stderr. Colors are applied only when enabled.
type Output struct {
	stdout   io.Writer
	stderr   io.Writer
	useColor bool
}

// NewOutput creates an Output. Nil writers default to the process streams.
func NewOutput(stdout, stderr io.Writer, useColor bool) *Output {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Output{stdout: stdout, stderr: stderr, useColor: useColor}
}

// Stdout returns the result stream.
func (o *Output) Stdout() io.Writer { return o.stdout }

// Stderr returns the diagnostic stream.
func (o *Output) Stderr() io.Writer { return o.stderr }

// Printf writes plain text to stdout.
func (o *Output) Printf(format string, args ...interface{}) {
	fmt.Fprintf(o.stdout, format, args...)
}

// Println writes a plain line to stdout.
func (o *Output) Println(args ...interface{}) {
	fmt.Fprintln(o.stdout, args...)
}

// Success writes a success line to stdout.
func (o *Output) Success(format string, args ...interface{}) {
	fmt.Fprintln(o.stdout, o.colorize(FormatSuccess(fmt.Sprintf(format, args...)), text.FgGreen))
}

// Warning writes a warning line to stdout.
func (o *Output) Warning(format string, args ...interface{}) {
	fmt.Fprintln(o.stdout, o.colorize(FormatWarning(fmt.Sprintf(format, args...)), text.FgYellow))
}

// Error writes an error line to stderr.
func (o *Output) Error(err error) {
	fmt.Fprintln(o.stderr, o.colorize(FormatError(err), text.FgRed))
}

func (o *Output) colorize(msg string, color text.Color) string {
	if !o.useColor {
		return msg
	}
	return color.Sprint(msg)
}

// FormatError formats an error message for CLI output
func FormatError(err error) string {
	return fmt.Sprintf("Error: %v", err)
}

// FormatSuccess formats a success message for CLI output
func FormatSuccess(msg string) string {
	return fmt.Sprintf("✓ %s", msg)
}

// FormatWarning formats a warning message for CLI output
func FormatWarning(msg string) string {
	return fmt.Sprintf("⚠ %s", msg)
}
