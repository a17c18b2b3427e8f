package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindMapping
	KindSequence
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is a configuration value: null, string, integer, float, boolean,
// mapping or sequence. The zero Value is null.
type Value struct {
	kind Kind
	str  string
	num  int64
	flt  float64
	bl   bool
	m    *Mapping
	seq  []Value
}

// NullValue returns the null value.
func NullValue() Value { return Value{} }

// StringValue returns a string value.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// IntValue returns an integer value.
func IntValue(i int64) Value { return Value{kind: KindInt, num: i} }

// FloatValue returns a floating point value.
func FloatValue(f float64) Value { return Value{kind: KindFloat, flt: f} }

// BoolValue returns a boolean value.
func BoolValue(b bool) Value { return Value{kind: KindBool, bl: b} }

// MappingValue returns a mapping value. A nil m is treated as empty.
func MappingValue(m *Mapping) Value {
	if m == nil {
		m = NewMapping()
	}
	return Value{kind: KindMapping, m: m}
}

// SequenceValue returns a sequence value holding items.
func SequenceValue(items ...Value) Value {
	return Value{kind: KindSequence, seq: items}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// AsInt returns the integer held by v.
func (v Value) AsInt() (int64, bool) {
	return v.num, v.kind == KindInt
}

// AsFloat returns the float held by v.
func (v Value) AsFloat() (float64, bool) {
	return v.flt, v.kind == KindFloat
}

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) {
	return v.bl, v.kind == KindBool
}

// AsMapping returns the mapping held by v. The mapping is shared with v;
// values obtained from a Store are already copies.
func (v Value) AsMapping() (*Mapping, bool) {
	return v.m, v.kind == KindMapping
}

// AsSequence returns the items held by v. The slice is shared with v;
// values obtained from a Store are already copies.
func (v Value) AsSequence() ([]Value, bool) {
	return v.seq, v.kind == KindSequence
}

// Interface converts v to plain Go values: nil, string, int64, float64, bool,
// map[string]any or []any.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return v.num
	case KindFloat:
		return v.flt
	case KindBool:
		return v.bl
	case KindMapping:
		out := make(map[string]any, v.m.Len())
		for _, k := range v.m.keys {
			out[k] = v.m.values[k].Interface()
		}
		return out
	case KindSequence:
		out := make([]any, len(v.seq))
		for i, item := range v.seq {
			out[i] = item.Interface()
		}
		return out
	default:
		return nil
	}
}

// String renders v for display. Mappings and sequences use a compact
// flow-style form.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.flt, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.bl)
	case KindMapping:
		parts := make([]string, 0, v.m.Len())
		for _, k := range v.m.keys {
			parts = append(parts, k+": "+v.m.values[k].String())
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case KindSequence:
		parts := make([]string, len(v.seq))
		for i, item := range v.seq {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return "null"
	}
}

// Equal reports whether v and o hold the same variant and deeply equal
// contents. Mapping comparison ignores key order.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindString:
		return v.str == o.str
	case KindInt:
		return v.num == o.num
	case KindFloat:
		return v.flt == o.flt
	case KindBool:
		return v.bl == o.bl
	case KindMapping:
		return v.m.Equal(o.m)
	case KindSequence:
		if len(v.seq) != len(o.seq) {
			return false
		}
		for i := range v.seq {
			if !v.seq[i].Equal(o.seq[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// clone returns a deep copy of v.
func (v Value) clone() Value {
	switch v.kind {
	case KindMapping:
		return Value{kind: KindMapping, m: v.m.Clone()}
	case KindSequence:
		items := make([]Value, len(v.seq))
		for i, item := range v.seq {
			items[i] = item.clone()
		}
		return Value{kind: KindSequence, seq: items}
	default:
		return v
	}
}

// MarshalJSON encodes v as its plain Go form.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}
