package hydra

import "fmt"

// NestedStructFormatter embeds one definition's layout as a single field.
// Encoding and decoding delegate to the inner definition's engine; an
// endianness declared on the inner definition overrides the outer effective
// settings for the inner fields only.
type NestedStructFormatter struct {
	inner *Definition
}

// NestedStruct builds a formatter embedding inner's layout
func NestedStruct(inner *Definition) *NestedStructFormatter {
	return &NestedStructFormatter{inner: inner}
}

// Inner returns the embedded definition.
func (f *NestedStructFormatter) Inner() *Definition { return f.inner }

// Length returns the embedded instance's serialized size.
func (f *NestedStructFormatter) Length(v Value) int {
	if v.Kind == KindStruct && v.Struct != nil {
		return v.Struct.Len()
	}
	return f.inner.New().Len()
}

// Default returns a fresh instance of the inner definition. A new instance
// is built per call so sibling instances never share nested state.
func (f *NestedStructFormatter) Default() Value {
	return StructValue(f.inner.New())
}

// Validate checks the value is an instance of the inner definition.
func (f *NestedStructFormatter) Validate(v Value) (Value, error) {
	if v.Kind != KindStruct || v.Struct == nil {
		return Value{}, fmt.Errorf("%w: %s value for nested %q field", ErrValueConstraint, v.Kind, f.inner.name)
	}
	if v.Struct.def != f.inner {
		return Value{}, fmt.Errorf("%w: instance of %q where %q expected",
			ErrValueConstraint, v.Struct.def.name, f.inner.name)
	}
	return v, nil
}

// Encode delegates to the inner engine with the inner definition's own
// settings merged over the outer effective settings.
func (f *NestedStructFormatter) Encode(e *Encoder, v Value, s Settings) error {
	v, err := f.Validate(v)
	if err != nil {
		return err
	}
	return v.Struct.encodeFields(e, s.merge(f.inner.settings))
}

// Decode delegates to the inner engine, same settings precedence as Encode.
func (f *NestedStructFormatter) Decode(d *Decoder, s Settings) (Value, error) {
	inst, err := f.inner.decodeFields(d, s.merge(f.inner.settings))
	if err != nil {
		return Value{}, err
	}
	return StructValue(inst), nil
}
