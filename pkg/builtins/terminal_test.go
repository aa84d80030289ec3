package builtins

import (
	"bytes"
	"strings"
	"testing"

	"fern/runtime-go/pkg/runtime"
)

func TestPrintOfInputLine(t *testing.T) {
	c, out, _ := testCatalogue("Hello world!\n")
	line := callBuiltin(t, c, "terminal.input")
	callBuiltin(t, c, "terminal.print", line)
	if out.String() != "Hello world!\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestReadLineStripsTerminator(t *testing.T) {
	term := NewTerminal(strings.NewReader("unix\nwindows\r\nlast"), nil, nil)
	if got := term.ReadLine().String(); got != "unix" {
		t.Fatalf("unexpected line %q", got)
	}
	if got := term.ReadLine().String(); got != "windows" {
		t.Fatalf("unexpected line %q", got)
	}
	if got := term.ReadLine().String(); got != "last" {
		t.Fatalf("unexpected line %q", got)
	}
}

func TestReadLineAtEndOfStream(t *testing.T) {
	term := NewTerminal(strings.NewReader(""), nil, nil)
	if got := term.ReadLine().String(); got != "" {
		t.Fatalf("expected empty line at end of stream, got %q", got)
	}
}

func TestReadLineBound(t *testing.T) {
	long := strings.Repeat("x", maxLineLength+10)
	term := NewTerminal(strings.NewReader(long+"\ntail\n"), nil, nil)
	first := term.ReadLine().String()
	if len(first) != maxLineLength {
		t.Fatalf("expected line truncated at %d, got %d", maxLineLength, len(first))
	}
	// The overflow is left for the next read, ahead of the next line.
	second := term.ReadLine().String()
	if second != strings.Repeat("x", 10) {
		t.Fatalf("unexpected continuation %q", second)
	}
	if got := term.ReadLine().String(); got != "tail" {
		t.Fatalf("unexpected line %q", got)
	}
}

func TestPrintRendersNonText(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader(""), &out, nil)
	term.Print(runtime.NumberValue{Val: 7})
	term.Print(runtime.BooleanValue{Val: true})
	term.Print(runtime.NewAggregate(runtime.ObjectType))
	if out.String() != "7\ntrue\nObject {  }\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestPrintErrorUsesErrorStream(t *testing.T) {
	var out, errOut bytes.Buffer
	term := NewTerminal(strings.NewReader(""), &out, &errOut)
	term.PrintError(runtime.NewText("boom"))
	if out.Len() != 0 {
		t.Fatalf("error output leaked to stdout: %q", out.String())
	}
	if errOut.String() != "boom\n" {
		t.Fatalf("unexpected error output %q", errOut.String())
	}
}

func TestClearEmitsAnsiSequence(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader(""), &out, nil)
	term.Clear()
	if out.String() != "\x1b[1;1H\x1b[2J" {
		t.Fatalf("unexpected clear bytes %q", out.String())
	}
}
