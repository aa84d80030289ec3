package runtime

import "fmt"

// Descriptor is the shared, immutable metadata describing an aggregate
// kind's field layout. One descriptor instance is constructed per shape and
// shared by reference by every value of that shape for the process lifetime.
//
// A descriptor is itself a value (an instance of the Group shape), so
// reflection can be applied to reflection results.
type Descriptor struct {
	Name   string
	Fields []Field
}

func (d *Descriptor) Kind() Kind { return KindAggregate }

// FieldNames lists the declared field names in order.
func (d *Descriptor) FieldNames() []string {
	names := make([]string, 0, len(d.Fields))
	for _, f := range d.Fields {
		names = append(names, f.Name)
	}
	return names
}

// Canonical descriptors for the built-in kinds. The foundational shapes
// (Text, List, Boolean, ...) declare no fields; reflection on them still
// yields a well-formed descriptor.
var (
	TextType       *Descriptor
	NumberType     *Descriptor
	BooleanType    *Descriptor
	NothingType    *Descriptor
	ListType       *Descriptor
	ObjectType     *Descriptor
	AnythingType   *Descriptor
	GroupType      *Descriptor
	ParameterType  *Descriptor
	FieldType      *Descriptor
	FunctionType   *Descriptor
	BuiltinTagType *Descriptor
	EitherType     *Descriptor
	ErrorType      *Descriptor
)

func init() {
	TextType = &Descriptor{Name: "Text"}
	BooleanType = &Descriptor{Name: "Boolean"}
	NothingType = &Descriptor{Name: "Nothing"}
	ListType = &Descriptor{Name: "List"}
	ObjectType = &Descriptor{Name: "Object"}
	AnythingType = &Descriptor{Name: "Anything"}
	NumberType = &Descriptor{Name: "Number", Fields: []Field{
		{Name: "plus", Value: AnythingType},
		{Name: "minus", Value: AnythingType},
		{Name: "times", Value: AnythingType},
		{Name: "divided_by", Value: AnythingType},
		{Name: "equals", Value: AnythingType},
	}}
	GroupType = &Descriptor{Name: "Group", Fields: []Field{
		{Name: "fields", Value: AnythingType},
	}}
	ParameterType = &Descriptor{Name: "Parameter", Fields: []Field{
		{Name: "name", Value: AnythingType},
		{Name: "type", Value: AnythingType},
	}}
	FieldType = &Descriptor{Name: "Field", Fields: []Field{
		{Name: "name", Value: AnythingType},
		{Name: "value", Value: AnythingType},
	}}
	FunctionType = &Descriptor{Name: "Function", Fields: []Field{
		{Name: "parameters", Value: AnythingType},
		{Name: "return_type", Value: AnythingType},
		{Name: "compile_time_parameters", Value: AnythingType},
		{Name: "tags", Value: AnythingType},
		{Name: "this_object", Value: AnythingType},
	}}
	BuiltinTagType = &Descriptor{Name: "BuiltinTag", Fields: []Field{
		{Name: "internal_name", Value: AnythingType},
	}}
	EitherType = &Descriptor{Name: "Either", Fields: []Field{
		{Name: "variants", Value: AnythingType},
	}}
	ErrorType = &Descriptor{Name: "Error", Fields: []Field{
		{Name: "message", Value: AnythingType},
	}}

	for _, d := range []*Descriptor{
		TextType, NumberType, BooleanType, NothingType, ListType, ObjectType,
		AnythingType, GroupType, ParameterType, FieldType, FunctionType,
		BuiltinTagType, EitherType, ErrorType,
	} {
		RegisterType(d)
	}
}

// TypeOf returns the shared descriptor for v's kind. It is pure: every call
// for the same kind returns the same descriptor instance.
func TypeOf(v Value) *Descriptor {
	switch v := v.(type) {
	case *TextValue:
		return TextType
	case NumberValue:
		return NumberType
	case BooleanValue:
		return BooleanType
	case NothingValue:
		return NothingType
	case *ListValue:
		return ListType
	case *Descriptor:
		return GroupType
	case *AggregateValue:
		return v.Descriptor
	case *Callable:
		return FunctionType
	default:
		panic(fmt.Sprintf("TypeOf: value of kind %s has no descriptor", v.Kind()))
	}
}
