package hydra

import "fmt"

// IntFormatter is a fixed-width integer field. Width is 8, 16, 32 or 64
// bits; the encoded size is width/8 bytes in the resolved byte order.
type IntFormatter struct {
	width  int
	signed bool
	def    Value
}

// UInt8 builds an unsigned 8-bit formatter with an optional default value
func UInt8(def ...uint64) *IntFormatter { return uintFormatter(8, def) }

// UInt16 builds an unsigned 16-bit formatter with an optional default value
func UInt16(def ...uint64) *IntFormatter { return uintFormatter(16, def) }

// UInt32 builds an unsigned 32-bit formatter with an optional default value
func UInt32(def ...uint64) *IntFormatter { return uintFormatter(32, def) }

// UInt64 builds an unsigned 64-bit formatter with an optional default value
func UInt64(def ...uint64) *IntFormatter { return uintFormatter(64, def) }

// Int8 builds a signed 8-bit formatter with an optional default value
func Int8(def ...int64) *IntFormatter { return intFormatter(8, def) }

// Int16 builds a signed 16-bit formatter with an optional default value
func Int16(def ...int64) *IntFormatter { return intFormatter(16, def) }

// Int32 builds a signed 32-bit formatter with an optional default value
func Int32(def ...int64) *IntFormatter { return intFormatter(32, def) }

// Int64 builds a signed 64-bit formatter with an optional default value
func Int64(def ...int64) *IntFormatter { return intFormatter(64, def) }

func uintFormatter(width int, def []uint64) *IntFormatter {
	f := &IntFormatter{width: width, def: Uint(0)}
	if len(def) > 0 {
		// out-of-range defaults are caught by definition validation
		f.def = Uint(def[0])
	}
	return f
}

func intFormatter(width int, def []int64) *IntFormatter {
	f := &IntFormatter{width: width, signed: true, def: Int(0)}
	if len(def) > 0 {
		f.def = Int(def[0])
	}
	return f
}

// Width returns the integer width in bits.
func (f *IntFormatter) Width() int { return f.width }

// Signed reports whether the formatter holds a two's-complement value.
func (f *IntFormatter) Signed() bool { return f.signed }

// Length returns the fixed encoded size in bytes.
func (f *IntFormatter) Length(Value) int { return f.width / 8 }

// Default returns the declared default value.
func (f *IntFormatter) Default() Value { return f.def }

// maxUint is the largest unsigned value fitting the width. Shift counts of
// 64 and above yield 0 in Go, so width 64 wraps to MaxUint64 here.
func (f *IntFormatter) maxUint() uint64 {
	return uint64(1)<<f.width - 1
}

func (f *IntFormatter) intBounds() (min, max int64) {
	umax := uint64(1)<<(f.width-1) - 1
	return -int64(umax) - 1, int64(umax)
}

// Validate checks the value fits the declared width and signedness and
// returns it normalized to the formatter's native kind.
func (f *IntFormatter) Validate(v Value) (Value, error) {
	switch v.Kind {
	case KindUint:
		if f.signed {
			_, max := f.intBounds()
			if v.Uint > uint64(max) {
				return Value{}, fmt.Errorf("%w: %d does not fit int%d", ErrValueConstraint, v.Uint, f.width)
			}
			return Int(int64(v.Uint)), nil
		}
		if v.Uint > f.maxUint() {
			return Value{}, fmt.Errorf("%w: %d does not fit uint%d", ErrValueConstraint, v.Uint, f.width)
		}
		return v, nil
	case KindInt:
		if f.signed {
			min, max := f.intBounds()
			if v.Int < min || v.Int > max {
				return Value{}, fmt.Errorf("%w: %d does not fit int%d", ErrValueConstraint, v.Int, f.width)
			}
			return v, nil
		}
		if v.Int < 0 {
			return Value{}, fmt.Errorf("%w: %d does not fit uint%d", ErrValueConstraint, v.Int, f.width)
		}
		return f.Validate(Uint(uint64(v.Int)))
	default:
		return Value{}, fmt.Errorf("%w: %s value for uint/int field", ErrValueConstraint, v.Kind)
	}
}

// Encode appends the value's width/8 bytes in the resolved byte order.
func (f *IntFormatter) Encode(e *Encoder, v Value, s Settings) error {
	v, err := f.Validate(v)
	if err != nil {
		return err
	}
	bits := v.Uint
	if f.signed {
		bits = uint64(v.Int)
	}
	e.PutUint(bits, f.width/8, s.Endian)
	return nil
}

// Decode consumes width/8 bytes and reverses the transform, sign-extending
// signed values from the declared width.
func (f *IntFormatter) Decode(d *Decoder, s Settings) (Value, error) {
	bits, err := d.ReadUint(f.width/8, s.Endian)
	if err != nil {
		return Value{}, err
	}
	if f.signed {
		shift := 64 - f.width
		return Int(int64(bits<<shift) >> shift), nil
	}
	return Uint(bits), nil
}
