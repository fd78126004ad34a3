package hydra

import "fmt"

// ArrayFormatter is a fixed repetition of exactly count elements,
// byte-concatenated in index order with no separators.
type ArrayFormatter struct {
	count int
	elem  Formatter
}

// Array builds a fixed-count array formatter over elem
func Array(count int, elem Formatter) *ArrayFormatter {
	return &ArrayFormatter{count: count, elem: elem}
}

// Count returns the fixed element count.
func (f *ArrayFormatter) Count() int { return f.count }

// Elem returns the element formatter.
func (f *ArrayFormatter) Elem() Formatter { return f.elem }

// Length returns the sum of the elements' encoded sizes.
func (f *ArrayFormatter) Length(v Value) int {
	if v.Kind != KindArray {
		v = f.Default()
	}
	total := 0
	for _, ev := range v.Array {
		total += f.elem.Length(ev)
	}
	return total
}

// Default returns count copies of the element default.
func (f *ArrayFormatter) Default() Value {
	out := make([]Value, f.count)
	for i := range out {
		out[i] = f.elem.Default()
	}
	return Value{Kind: KindArray, Array: out}
}

// Validate checks the exact element count and every element's domain.
func (f *ArrayFormatter) Validate(v Value) (Value, error) {
	if v.Kind != KindArray {
		return Value{}, fmt.Errorf("%w: %s value for array field", ErrValueConstraint, v.Kind)
	}
	if len(v.Array) != f.count {
		return Value{}, fmt.Errorf("%w: %d elements where exactly %d expected",
			ErrValueConstraint, len(v.Array), f.count)
	}
	return validateElements(f.elem, v)
}

// Encode appends every element in index order.
func (f *ArrayFormatter) Encode(e *Encoder, v Value, s Settings) error {
	v, err := f.Validate(v)
	if err != nil {
		return err
	}
	return encodeElements(e, f.elem, v, s)
}

// Decode consumes exactly count elements.
func (f *ArrayFormatter) Decode(d *Decoder, s Settings) (Value, error) {
	out := make([]Value, f.count)
	for i := range out {
		ev, err := f.elem.Decode(d, s)
		if err != nil {
			return Value{}, err
		}
		out[i] = ev
	}
	return Value{Kind: KindArray, Array: out}, nil
}

// VarArrayFormatter is a sequence whose element count varies within
// [min, max] inclusive. Fields are packed with no length prefix, so a
// variable-length array decodes unambiguously only as the final field of a
// definition, where it consumes all remaining bytes.
type VarArrayFormatter struct {
	min, max int
	elem     Formatter
}

// VarArray builds a bounded variable-length array of unsigned bytes
func VarArray(min, max int) *VarArrayFormatter {
	return VarArrayOf(min, max, UInt8())
}

// VarArrayOf builds a bounded variable-length array over elem
func VarArrayOf(min, max int, elem Formatter) *VarArrayFormatter {
	return &VarArrayFormatter{min: min, max: max, elem: elem}
}

// Bounds returns the inclusive [min, max] element count range.
func (f *VarArrayFormatter) Bounds() (min, max int) { return f.min, f.max }

// Elem returns the element formatter.
func (f *VarArrayFormatter) Elem() Formatter { return f.elem }

// Length returns element size times the value's element count. Unlike every
// other formatter this depends on the concrete value.
func (f *VarArrayFormatter) Length(v Value) int {
	n := f.min
	if v.Kind == KindArray {
		n = len(v.Array)
	}
	size, _ := fixedSize(f.elem)
	return size * n
}

// Default returns exactly min copies of the element default.
func (f *VarArrayFormatter) Default() Value {
	out := make([]Value, f.min)
	for i := range out {
		out[i] = f.elem.Default()
	}
	return Value{Kind: KindArray, Array: out}
}

// Validate checks the element count against the declared bounds and every
// element's domain.
func (f *VarArrayFormatter) Validate(v Value) (Value, error) {
	if v.Kind != KindArray {
		return Value{}, fmt.Errorf("%w: %s value for variable-length array field", ErrValueConstraint, v.Kind)
	}
	if len(v.Array) < f.min || len(v.Array) > f.max {
		return Value{}, fmt.Errorf("%w: %d elements outside [%d, %d]",
			ErrValueConstraint, len(v.Array), f.min, f.max)
	}
	return validateElements(f.elem, v)
}

// Encode appends every element in index order; the encoded size is element
// size times the current element count.
func (f *VarArrayFormatter) Encode(e *Encoder, v Value, s Settings) error {
	v, err := f.Validate(v)
	if err != nil {
		return err
	}
	return encodeElements(e, f.elem, v, s)
}

// Decode consumes all remaining bytes. The remainder must divide evenly by
// the element size (ErrInsufficientData otherwise) and the resulting count
// must fall within the declared bounds (ErrValueConstraint otherwise).
func (f *VarArrayFormatter) Decode(d *Decoder, s Settings) (Value, error) {
	size, ok := fixedSize(f.elem)
	if !ok || size <= 0 {
		return Value{}, fmt.Errorf("%w: variable-length array element is not fixed-size", ErrDefinition)
	}
	rem := d.Remaining()
	if rem%size != 0 {
		return Value{}, fmt.Errorf("%w: %d remaining bytes not divisible by element size %d",
			ErrInsufficientData, rem, size)
	}
	n := rem / size
	if n < f.min || n > f.max {
		return Value{}, fmt.Errorf("%w: %d elements outside [%d, %d]", ErrValueConstraint, n, f.min, f.max)
	}
	out := make([]Value, n)
	for i := range out {
		ev, err := f.elem.Decode(d, s)
		if err != nil {
			return Value{}, err
		}
		out[i] = ev
	}
	return Value{Kind: KindArray, Array: out}, nil
}

func validateElements(elem Formatter, v Value) (Value, error) {
	out := make([]Value, len(v.Array))
	for i, ev := range v.Array {
		canon, err := elem.Validate(ev)
		if err != nil {
			return Value{}, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = canon
	}
	return Value{Kind: KindArray, Array: out}, nil
}

func encodeElements(e *Encoder, elem Formatter, v Value, s Settings) error {
	for i, ev := range v.Array {
		if err := elem.Encode(e, ev, s); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}
