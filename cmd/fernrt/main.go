// Command fernrt runs the runtime's demonstration programs against the real
// console: the canonical bound-receiver addition, and optionally an echo of
// one input line.
package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"fern/runtime-go/pkg/builtins"
	"fern/runtime-go/pkg/runtime"
)

const toolVersion = "fernrt 0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:], builtins.Console(), os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, console *builtins.Terminal, stdin io.Reader, stdout, stderr io.Writer) int {
	echo := false
	for _, arg := range args {
		switch arg {
		case "--help", "-h":
			printUsage(stdout)
			return 0
		case "--version", "-V":
			fmt.Fprintln(stdout, toolVersion)
			return 0
		case "--echo":
			echo = true
		default:
			fmt.Fprintf(stderr, "unknown argument %q\n", arg)
			printUsage(stderr)
			return 1
		}
	}

	catalogue := builtins.NewCatalogue(console)
	runSum(catalogue)
	if echo {
		runEcho(catalogue, stdin, stdout)
	}
	return 0
}

// runSum replays the canonical lowered program: the plus callable bound to
// the number 3, applied to 4, and printed.
func runSum(catalogue *builtins.Catalogue) {
	plus := catalogue.Callable("Number.plus").Bind(runtime.NumberValue{Val: 3})
	sum := plus.Call(runtime.NumberValue{Val: 4})
	catalogue.Callable("terminal.print").Call(sum)
}

// runEcho reads one line and prints it back. A prompt is shown only when
// stdin is an interactive terminal.
func runEcho(catalogue *builtins.Catalogue, stdin io.Reader, stdout io.Writer) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(stdout, "> ")
	}
	line := catalogue.Callable("terminal.input").Call()
	catalogue.Callable("terminal.print").Call(line)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: fernrt [--echo]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  --echo        read one line from stdin and print it back")
	fmt.Fprintln(w, "  -h, --help    show this help")
	fmt.Fprintln(w, "  -V, --version print the tool version")
}
