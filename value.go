package hydra

// Kind tags the variants of a field Value
type Kind uint8

const (
	KindUint Kind = iota
	KindInt
	KindStruct
	KindArray
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindUint:
		return "uint"
	case KindInt:
		return "int"
	case KindStruct:
		return "struct"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is one concrete field value. Exactly one variant is meaningful,
// selected by Kind.
type Value struct {
	Kind   Kind
	Uint   uint64
	Int    int64
	Struct *Instance
	Array  []Value
}

// Uint builds an unsigned integer value
func Uint(v uint64) Value {
	return Value{Kind: KindUint, Uint: v}
}

// Int builds a signed integer value
func Int(v int64) Value {
	return Value{Kind: KindInt, Int: v}
}

// StructValue builds a nested-struct value from an instance
func StructValue(i *Instance) Value {
	return Value{Kind: KindStruct, Struct: i}
}

// ArrayValue builds an array value from its elements
func ArrayValue(vs ...Value) Value {
	return Value{Kind: KindArray, Array: vs}
}

// UintArray builds an array value of unsigned integers
func UintArray(vs []uint64) Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = Uint(v)
	}
	return Value{Kind: KindArray, Array: out}
}

// AsUint returns the value as uint64. Works for KindUint and KindInt.
func (v Value) AsUint() uint64 {
	if v.Kind == KindInt {
		return uint64(v.Int)
	}
	return v.Uint
}

// AsInt returns the value as int64. Works for KindUint and KindInt.
func (v Value) AsInt() int64 {
	if v.Kind == KindUint {
		return int64(v.Uint)
	}
	return v.Int
}

// AsStruct returns the nested instance, or nil for other kinds.
func (v Value) AsStruct() *Instance {
	return v.Struct
}

// AsArray returns the element slice, or nil for other kinds.
func (v Value) AsArray() []Value {
	return v.Array
}

// Len returns the element count of an array value.
func (v Value) Len() int {
	return len(v.Array)
}

// Equal reports structural equality: kinds must match, integers compare by
// value, nested instances and arrays compare field-wise and element-wise,
// never by identity.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindUint:
		return v.Uint == o.Uint
	case KindInt:
		return v.Int == o.Int
	case KindStruct:
		return v.Struct.Equal(o.Struct)
	case KindArray:
		if len(v.Array) != len(o.Array) {
			return false
		}
		for i := range v.Array {
			if !v.Array[i].Equal(o.Array[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
