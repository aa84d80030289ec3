package runtime

import "strconv"

// ToString returns a newly constructed text value rendering v. Primitive
// kinds short-circuit with a direct conversion; aggregates render their type
// name followed by each field's rendering in declared order. The generic
// path tolerates an empty field list ("Name {  }"), which the foundational
// shapes produce.
func ToString(v Value) *TextValue {
	out := NewBuffer[byte](0)
	writeValue(out, v)
	return TextFromBuffer(out)
}

// Render is ToString for callers that want the plain string.
func Render(v Value) string {
	return ToString(v).String()
}

func appendString(buf *Buffer[byte], s string) {
	buf.Append([]byte(s)...)
}

func writeValue(buf *Buffer[byte], v Value) {
	switch v := v.(type) {
	case *TextValue:
		buf.Append(v.Bytes()...)
	case NumberValue:
		appendString(buf, strconv.FormatFloat(v.Val, 'g', -1, 64))
	case BooleanValue:
		if v.Val {
			appendString(buf, "true")
		} else {
			appendString(buf, "false")
		}
	case NothingValue:
		appendString(buf, "nothing")
	case *ListValue:
		appendString(buf, "[")
		for i, el := range v.Elements() {
			if i > 0 {
				appendString(buf, ", ")
			}
			writeValue(buf, el)
		}
		appendString(buf, "]")
	case *Callable:
		// Function metadata may reference the value graph that owns the
		// callable; rendering stops at the shape name to keep the output
		// finite.
		appendString(buf, FunctionType.Name)
		appendString(buf, " {  }")
	case *Descriptor:
		writeDescriptor(buf, v)
	case *AggregateValue:
		appendString(buf, v.Descriptor.Name)
		appendString(buf, " { ")
		for _, f := range v.Fields {
			writeValue(buf, f.Value)
		}
		appendString(buf, " }")
	default:
		appendString(buf, "[")
		appendString(buf, v.Kind().String())
		appendString(buf, "]")
	}
}

// writeDescriptor renders a descriptor as an instance of the Group shape:
// its single field holds the declared Field pairs.
func writeDescriptor(buf *Buffer[byte], d *Descriptor) {
	appendString(buf, GroupType.Name)
	appendString(buf, " { [")
	for i, f := range d.Fields {
		if i > 0 {
			appendString(buf, ", ")
		}
		appendString(buf, FieldType.Name)
		appendString(buf, " { ")
		appendString(buf, f.Name)
		if f.Value != nil {
			writeValue(buf, f.Value)
		}
		appendString(buf, " }")
	}
	appendString(buf, "] }")
}
