// Package builtins exposes host-provided operations (arithmetic, list
// mutation, console I/O) to generated code as ordinary callables. Each entry
// is tagged with its stable internal name; the tag is metadata only and
// carries no behavioural meaning to the caller.
package builtins

import (
	"fmt"
	"sort"

	"fern/runtime-go/pkg/runtime"
)

// Func is a builtin implementation. A bound receiver, when present, arrives
// as the leading argument, exactly as for user-defined callables.
type Func func(args []runtime.Value) runtime.Value

type entry struct {
	parameters []string
	impl       Func
}

// Catalogue is the fixed builtin table. It is populated once at construction
// and read-only afterwards.
type Catalogue struct {
	terminal *Terminal
	entries  map[string]entry
}

// NewCatalogue builds the catalogue around the given console surface.
func NewCatalogue(term *Terminal) *Catalogue {
	c := &Catalogue{terminal: term, entries: make(map[string]entry)}

	c.register("Number.plus", []string{"this", "other"}, func(args []runtime.Value) runtime.Value {
		return runtime.NumberValue{Val: number("Number.plus", args, 0) + number("Number.plus", args, 1)}
	})
	c.register("Number.minus", []string{"this", "other"}, func(args []runtime.Value) runtime.Value {
		return runtime.NumberValue{Val: number("Number.minus", args, 0) - number("Number.minus", args, 1)}
	})
	c.register("Number.times", []string{"this", "other"}, func(args []runtime.Value) runtime.Value {
		return runtime.NumberValue{Val: number("Number.times", args, 0) * number("Number.times", args, 1)}
	})
	c.register("Number.divided_by", []string{"this", "other"}, func(args []runtime.Value) runtime.Value {
		return runtime.NumberValue{Val: number("Number.divided_by", args, 0) / number("Number.divided_by", args, 1)}
	})
	c.register("Number.equals", []string{"this", "other"}, func(args []runtime.Value) runtime.Value {
		return runtime.BooleanValue{Val: number("Number.equals", args, 0) == number("Number.equals", args, 1)}
	})

	c.register("List.length", []string{"this"}, func(args []runtime.Value) runtime.Value {
		return runtime.NumberValue{Val: float64(list("List.length", args, 0).Len())}
	})
	c.register("List.append", []string{"this", "element"}, func(args []runtime.Value) runtime.Value {
		list("List.append", args, 0).Append(arg("List.append", args, 1))
		return nil
	})
	c.register("List.prepend", []string{"this", "element"}, func(args []runtime.Value) runtime.Value {
		list("List.prepend", args, 0).Prepend(arg("List.prepend", args, 1))
		return nil
	})
	c.register("List.get", []string{"this", "index"}, func(args []runtime.Value) runtime.Value {
		return list("List.get", args, 0).At(int(number("List.get", args, 1)))
	})
	c.register("List.set", []string{"this", "index", "element"}, func(args []runtime.Value) runtime.Value {
		list("List.set", args, 0).Set(int(number("List.set", args, 1)), arg("List.set", args, 2))
		return nil
	})

	c.register("terminal.input", nil, func(args []runtime.Value) runtime.Value {
		return c.terminal.ReadLine()
	})
	c.register("terminal.print", []string{"object"}, func(args []runtime.Value) runtime.Value {
		c.terminal.Print(arg("terminal.print", args, 0))
		return nil
	})
	c.register("terminal.print_error", []string{"object"}, func(args []runtime.Value) runtime.Value {
		c.terminal.PrintError(arg("terminal.print_error", args, 0))
		return nil
	})
	c.register("terminal.clear", nil, func(args []runtime.Value) runtime.Value {
		c.terminal.Clear()
		return nil
	})

	return c
}

func (c *Catalogue) register(name string, parameters []string, impl Func) {
	if _, ok := c.entries[name]; ok {
		panic(fmt.Sprintf("builtins: duplicate entry %q", name))
	}
	c.entries[name] = entry{parameters: parameters, impl: impl}
}

// Lookup returns the implementation registered under the internal name.
func (c *Catalogue) Lookup(name string) (Func, bool) {
	e, ok := c.entries[name]
	if !ok {
		return nil, false
	}
	return e.impl, true
}

// Names lists the catalogue's internal names in sorted order.
func (c *Catalogue) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Callable wraps the named builtin as a first-class callable carrying
// parameter metadata and a BuiltinTag identifying it to this bridge. Unknown
// names are a code-generation bug and panic.
func (c *Catalogue) Callable(name string) *runtime.Callable {
	e, ok := c.entries[name]
	if !ok {
		panic(fmt.Sprintf("builtins: unknown builtin %q", name))
	}
	callable := runtime.NewCallable(runtime.EntryPoint(e.impl))
	callable.ReturnType = runtime.AnythingType
	callable.Tags = []runtime.Value{runtime.NewAggregate(runtime.BuiltinTagType,
		runtime.Field{Name: "internal_name", Value: runtime.NewText(name)},
	)}
	for _, p := range e.parameters {
		callable.Parameters = append(callable.Parameters, runtime.Parameter{
			Name: p,
			Type: runtime.AnythingType,
		})
	}
	return callable
}

// TerminalValue assembles the terminal aggregate generated code passes
// around: `{input, print}` callables over this catalogue's console.
func (c *Catalogue) TerminalValue() *runtime.AggregateValue {
	return runtime.NewAggregate(terminalType,
		runtime.Field{Name: "input", Value: c.Callable("terminal.input")},
		runtime.Field{Name: "print", Value: c.Callable("terminal.print")},
	)
}

// arg fetches a positional argument, treating a short argument list as a
// call-contract violation.
func arg(name string, args []runtime.Value, i int) runtime.Value {
	if i >= len(args) {
		panic(fmt.Sprintf("%s: argument %d missing (%d given)", name, i+1, len(args)))
	}
	return args[i]
}

// number unwraps a number argument. A kind mismatch here means the upstream
// type checker was bypassed; abort loudly instead of corrupting state.
func number(name string, args []runtime.Value, i int) float64 {
	v := arg(name, args, i)
	n, ok := v.(runtime.NumberValue)
	if !ok {
		panic(fmt.Sprintf("%s: argument %d is %s, expected number", name, i+1, v.Kind()))
	}
	return n.Val
}

func list(name string, args []runtime.Value, i int) *runtime.ListValue {
	v := arg(name, args, i)
	l, ok := v.(*runtime.ListValue)
	if !ok {
		panic(fmt.Sprintf("%s: argument %d is %s, expected list", name, i+1, v.Kind()))
	}
	return l
}
