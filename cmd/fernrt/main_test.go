package main

import (
	"bytes"
	"strings"
	"testing"

	"fern/runtime-go/pkg/builtins"
)

func runWith(args []string, input string) (int, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	stdin := strings.NewReader(input)
	console := builtins.NewTerminal(stdin, &out, &errOut)
	code := run(args, console, stdin, &out, &errOut)
	return code, &out, &errOut
}

func TestRunDefaultProgram(t *testing.T) {
	code, out, errOut := runWith(nil, "")
	if code != 0 {
		t.Fatalf("unexpected exit code %d (stderr: %s)", code, errOut.String())
	}
	if out.String() != "7\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRunEcho(t *testing.T) {
	code, out, errOut := runWith([]string{"--echo"}, "Hello world!\n")
	if code != 0 {
		t.Fatalf("unexpected exit code %d (stderr: %s)", code, errOut.String())
	}
	if out.String() != "7\nHello world!\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRunEchoAtEndOfStream(t *testing.T) {
	code, out, _ := runWith([]string{"--echo"}, "")
	if code != 0 {
		t.Fatalf("unexpected exit code %d", code)
	}
	// End of input behaves as an empty line.
	if out.String() != "7\n\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRunVersionAndHelp(t *testing.T) {
	code, out, _ := runWith([]string{"--version"}, "")
	if code != 0 {
		t.Fatalf("unexpected exit code %d", code)
	}
	if !strings.HasPrefix(out.String(), "fernrt ") {
		t.Fatalf("unexpected version output %q", out.String())
	}

	code, out, _ = runWith([]string{"--help"}, "")
	if code != 0 {
		t.Fatalf("unexpected exit code %d", code)
	}
	if !strings.Contains(out.String(), "usage: fernrt") {
		t.Fatalf("unexpected help output %q", out.String())
	}
}

func TestRunUnknownArgument(t *testing.T) {
	code, _, errOut := runWith([]string{"--bogus"}, "")
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(errOut.String(), "--bogus") {
		t.Fatalf("unexpected stderr %q", errOut.String())
	}
}
