// Package harness replays golden scenarios against the runtime: a scenario
// file declares console input, a sequence of builtin invocations, and the
// expected renderings and output lines. The runtime's own fixtures are
// generated programs; these scenarios exercise the same call surface without
// a code generator in the loop.
package harness

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"fern/runtime-go/pkg/builtins"
	"fern/runtime-go/pkg/runtime"
)

// Scenario is one golden fixture.
type Scenario struct {
	Name   string   `yaml:"name"`
	Stdin  string   `yaml:"stdin"`
	Steps  []Step   `yaml:"steps"`
	Output []string `yaml:"output"`
}

// Step invokes one builtin. Operands are literals or $references to results
// stored by earlier steps; This, when set, is bound as the receiver.
type Step struct {
	Call   string     `yaml:"call"`
	This   *Operand   `yaml:"this"`
	Args   []*Operand `yaml:"args"`
	Store  string     `yaml:"store"`
	Render string     `yaml:"render"`
}

// Operand defers interpretation of a YAML node until the step runs, so
// scalars map onto runtime kinds and strings can act as references.
type Operand struct {
	node *yaml.Node
}

// UnmarshalYAML captures the raw node.
func (o *Operand) UnmarshalYAML(node *yaml.Node) error {
	o.node = node
	return nil
}

// Load reads a scenario file. Unknown fields are errors, so fixture typos
// fail fast.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("scenario %s: missing name", path)
	}
	return &s, nil
}

// Run replays the scenario and reports the first mismatch.
func (s *Scenario) Run() error {
	var out, errOut bytes.Buffer
	term := builtins.NewTerminal(strings.NewReader(s.Stdin), &out, &errOut)
	cat := builtins.NewCatalogue(term)
	stored := make(map[string]runtime.Value)

	for i, step := range s.Steps {
		callable := cat.Callable(step.Call)
		if step.This != nil {
			receiver, err := step.This.resolve(stored)
			if err != nil {
				return fmt.Errorf("%s step %d: this: %w", s.Name, i+1, err)
			}
			callable = callable.Bind(receiver)
		}
		args := make([]runtime.Value, 0, len(step.Args))
		for j, operand := range step.Args {
			v, err := operand.resolve(stored)
			if err != nil {
				return fmt.Errorf("%s step %d: argument %d: %w", s.Name, i+1, j+1, err)
			}
			args = append(args, v)
		}

		result := callable.Call(args...)
		if step.Store != "" {
			stored[step.Store] = result
		}
		if step.Render != "" {
			if got := runtime.Render(result); got != step.Render {
				return fmt.Errorf("%s step %d: rendered %q, want %q", s.Name, i+1, got, step.Render)
			}
		}
	}

	got := outputLines(out.String())
	if len(got) != len(s.Output) {
		return fmt.Errorf("%s: output %q, want %q", s.Name, got, s.Output)
	}
	for i := range got {
		if got[i] != s.Output[i] {
			return fmt.Errorf("%s: output line %d is %q, want %q", s.Name, i+1, got[i], s.Output[i])
		}
	}
	return nil
}

func outputLines(raw string) []string {
	trimmed := strings.TrimSuffix(raw, "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

func (o *Operand) resolve(stored map[string]runtime.Value) (runtime.Value, error) {
	if o == nil || o.node == nil {
		return runtime.NothingValue{}, nil
	}
	node := o.node
	switch node.Tag {
	case "!!null":
		return runtime.NothingValue{}, nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, err
		}
		return runtime.BooleanValue{Val: b}, nil
	case "!!int", "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, err
		}
		return runtime.NumberValue{Val: f}, nil
	case "!!str":
		var s string
		if err := node.Decode(&s); err != nil {
			return nil, err
		}
		if name, ok := strings.CutPrefix(s, "$"); ok {
			v, found := stored[name]
			if !found {
				return nil, fmt.Errorf("no stored result %q", name)
			}
			return v, nil
		}
		return runtime.NewText(s), nil
	case "!!seq":
		var items []Operand
		if err := node.Decode(&items); err != nil {
			return nil, err
		}
		list := runtime.NewList()
		for _, item := range items {
			v, err := item.resolve(stored)
			if err != nil {
				return nil, err
			}
			list.Append(v)
		}
		return list, nil
	default:
		return nil, fmt.Errorf("unsupported operand %s", node.Tag)
	}
}
