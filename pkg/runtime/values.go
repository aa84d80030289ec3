package runtime

import "fmt"

// Kind identifies the runtime value category. The set is closed: generated
// code never sees a value outside it.
type Kind int

const (
	KindText Kind = iota
	KindNumber
	KindBoolean
	KindNothing
	KindList
	KindAggregate
	KindCallable
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindNothing:
		return "nothing"
	case KindList:
		return "list"
	case KindAggregate:
		return "aggregate"
	case KindCallable:
		return "callable"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

//-----------------------------------------------------------------------------
// Primitives
//-----------------------------------------------------------------------------

// TextValue stores character data in a growable byte buffer.
type TextValue struct {
	chars *Buffer[byte]
}

// NewText builds a text value from a literal.
func NewText(s string) *TextValue {
	t := &TextValue{chars: NewBuffer[byte](0)}
	t.chars.Append([]byte(s)...)
	return t
}

// TextFromBuffer adopts an already-filled byte buffer as a text value.
func TextFromBuffer(b *Buffer[byte]) *TextValue {
	return &TextValue{chars: b}
}

func (t *TextValue) Kind() Kind { return KindText }

// String returns the stored content.
func (t *TextValue) String() string {
	return string(t.chars.Items())
}

// Bytes exposes the stored content without copying.
func (t *TextValue) Bytes() []byte {
	return t.chars.Items()
}

// NumberValue stores a floating-point magnitude.
type NumberValue struct {
	Val float64
}

func (v NumberValue) Kind() Kind { return KindNumber }

type BooleanValue struct {
	Val bool
}

func (v BooleanValue) Kind() Kind { return KindBoolean }

type NothingValue struct{}

func (NothingValue) Kind() Kind { return KindNothing }

//-----------------------------------------------------------------------------
// Lists
//-----------------------------------------------------------------------------

// ListValue is an ordered element sequence backed by a growable buffer.
type ListValue struct {
	elements *Buffer[Value]
}

// NewList builds a list value holding the given elements.
func NewList(elements ...Value) *ListValue {
	l := &ListValue{elements: NewBuffer[Value](len(elements))}
	l.elements.Append(elements...)
	return l
}

func (l *ListValue) Kind() Kind { return KindList }

func (l *ListValue) Len() int {
	return l.elements.Len()
}

func (l *ListValue) At(i int) Value {
	return l.elements.At(i)
}

func (l *ListValue) Set(i int, v Value) {
	l.elements.Set(i, v)
}

func (l *ListValue) Append(v Value) {
	l.elements.Append(v)
}

// Prepend inserts v at the front, shifting existing elements right.
func (l *ListValue) Prepend(v Value) {
	l.elements.Append(nil)
	items := l.elements.Items()
	copy(items[1:], items)
	items[0] = v
}

// Elements returns the live element slice; it aliases the backing buffer.
func (l *ListValue) Elements() []Value {
	return l.elements.Items()
}

// Capacity reports the backing buffer capacity. Useful for asserting the
// growth contract from the outside.
func (l *ListValue) Capacity() int {
	return l.elements.Cap()
}

//-----------------------------------------------------------------------------
// Aggregates
//-----------------------------------------------------------------------------

// Field is a named slot inside an aggregate. Declaration order is preserved
// and significant for rendering.
type Field struct {
	Name  string
	Value Value
}

// AggregateValue is a structured value whose shape is described by a shared
// descriptor. Instances are built on demand by generated code; descriptors
// live for the process.
type AggregateValue struct {
	Descriptor *Descriptor
	Fields     []Field
}

// NewAggregate builds an aggregate instance of the given shape. The field
// list must follow the descriptor's declared order; conformance is
// established by the front end and not re-checked here.
func NewAggregate(desc *Descriptor, fields ...Field) *AggregateValue {
	return &AggregateValue{Descriptor: desc, Fields: fields}
}

func (a *AggregateValue) Kind() Kind { return KindAggregate }

// Get returns the named field's value, or nil when absent.
func (a *AggregateValue) Get(name string) Value {
	for _, f := range a.Fields {
		if f.Name == name {
			return f.Value
		}
	}
	return nil
}
