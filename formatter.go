package hydra

// Formatter describes one field's byte layout: its encoded size for a
// concrete value, its default value, its value domain, and how it encodes
// to and decodes from packed bytes.
//
// Length must not depend on the value except for a trailing
// variable-length field; definition validation rejects value-dependent
// formatters anywhere but the final position.
type Formatter interface {
	// Length returns the exact encoded size in bytes of v.
	Length(v Value) int

	// Default returns the value a fresh instance starts with. Composite
	// formatters return a fresh value on every call.
	Default() Value

	// Validate checks v against the formatter's domain and returns the
	// canonical form stored in an instance.
	Validate(v Value) (Value, error)

	// Encode appends v's packed bytes to e using the resolved settings.
	Encode(e *Encoder, v Value, s Settings) error

	// Decode consumes the formatter's bytes from d using the resolved
	// settings.
	Decode(d *Decoder, s Settings) (Value, error)
}

// fixedSize reports f's encoded size when it does not depend on the value.
// Unknown formatter implementations are conservatively treated as
// variable-size, restricting them to the final field of a definition.
func fixedSize(f Formatter) (int, bool) {
	switch f := f.(type) {
	case *IntFormatter:
		return f.width / 8, true
	case *NestedStructFormatter:
		return f.inner.fixedSize()
	case *ArrayFormatter:
		n, ok := fixedSize(f.elem)
		if !ok {
			return 0, false
		}
		return f.count * n, true
	default:
		return 0, false
	}
}
