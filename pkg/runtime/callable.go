package runtime

// Parameter describes one declared parameter of a callable.
type Parameter struct {
	Name string
	Type Value
}

// EntryPoint is the invocation handle of a callable. The receiver, when
// bound, has already been prepended to args by the time it runs.
type EntryPoint func(args []Value) Value

// Callable is a first-class function value. User-defined functions and
// built-ins share this shape and are invoked identically; the lowered
// calling convention's result out-parameter is replaced by an ordinary
// return value.
type Callable struct {
	Parameters            []Parameter
	ReturnType            Value
	CompileTimeParameters []Value
	Tags                  []Value
	This                  Value // bound receiver, nil when unbound
	entry                 EntryPoint
}

// NewCallable builds an unbound callable around an entry point.
func NewCallable(entry EntryPoint) *Callable {
	return &Callable{entry: entry}
}

func (c *Callable) Kind() Kind { return KindCallable }

// Bind returns a copy of the callable with the receiver captured. The
// receiver is fixed at bind time, closure-style, not re-resolved per call.
func (c *Callable) Bind(receiver Value) *Callable {
	bound := *c
	bound.This = receiver
	return &bound
}

// Call invokes the callable with explicit arguments, passing the bound
// receiver (if any) as the implicit leading argument. Operations with no
// declared result return the Nothing value.
//
// Argument kinds are trusted: conformance was established upstream. A
// callable without an entry point is a construction bug and panics.
func (c *Callable) Call(args ...Value) Value {
	if c.entry == nil {
		panic("Call: callable has no entry point")
	}
	if c.This != nil {
		args = append([]Value{c.This}, args...)
	}
	result := c.entry(args)
	if result == nil {
		return NothingValue{}
	}
	return result
}
