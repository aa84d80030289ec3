package builtins

import (
	"bufio"
	"io"
	"os"

	"fern/runtime-go/pkg/runtime"
)

// maxLineLength bounds a single console read. Input past the bound stays
// buffered for the next read.
const maxLineLength = 64 * 1024

// clearSequence is the ANSI home-and-clear pair emitted by terminal.clear.
const clearSequence = "\x1b[1;1H\x1b[2J"

// terminalType describes the terminal aggregate ({input, print}).
var terminalType = &runtime.Descriptor{Name: "Terminal", Fields: []runtime.Field{
	{Name: "input", Value: runtime.AnythingType},
	{Name: "print", Value: runtime.AnythingType},
}}

func init() {
	runtime.RegisterType(terminalType)
}

// Terminal is the console surface behind the terminal.* builtins. Streams
// are injected so tests and the scenario harness can capture them.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
	err io.Writer
}

// NewTerminal wraps the given streams.
func NewTerminal(in io.Reader, out, errOut io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out, err: errOut}
}

// Console returns a terminal over the process's standard streams.
func Console() *Terminal {
	return NewTerminal(os.Stdin, os.Stdout, os.Stderr)
}

// ReadLine blocks until one line is available and returns it as a text value
// without its line terminator. End of stream yields whatever was read, so a
// closed input behaves as an empty line.
func (t *Terminal) ReadLine() *runtime.TextValue {
	line := runtime.NewBuffer[byte](0)
	for line.Len() < maxLineLength {
		b, err := t.in.ReadByte()
		if err != nil {
			break
		}
		if b == '\n' {
			break
		}
		line.Append(b)
	}
	if n := line.Len(); n > 0 && line.At(n-1) == '\r' {
		return runtime.NewText(string(line.Items()[:n-1]))
	}
	return runtime.TextFromBuffer(line)
}

// Print renders v (via to_string unless it is already text) and emits the
// content followed by a line terminator.
func (t *Terminal) Print(v runtime.Value) {
	writeLine(t.out, v)
}

// PrintError is Print to the error stream.
func (t *Terminal) PrintError(v runtime.Value) {
	writeLine(t.err, v)
}

// Clear emits the ANSI clear sequence.
func (t *Terminal) Clear() {
	io.WriteString(t.out, clearSequence)
}

func writeLine(w io.Writer, v runtime.Value) {
	txt, ok := v.(*runtime.TextValue)
	if !ok {
		txt = runtime.ToString(v)
	}
	w.Write(txt.Bytes())
	w.Write([]byte{'\n'})
}
