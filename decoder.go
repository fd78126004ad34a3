package hydra

import "fmt"

// Decoder reads packed fields from a byte slice.
type Decoder struct {
	data []byte
	pos  int
}

// NewDecoder creates a new Decoder for the given data
func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data}
}

// Reset resets the decoder to decode new data
func (d *Decoder) Reset(data []byte) {
	d.data = data
	d.pos = 0
}

// Remaining returns the number of unread bytes
func (d *Decoder) Remaining() int {
	return len(d.data) - d.pos
}

// Position returns the current position in the data
func (d *Decoder) Position() int {
	return d.pos
}

// hasBytes returns true if there are at least n bytes remaining
func (d *Decoder) hasBytes(n int) bool {
	return d.pos+n <= len(d.data)
}

// ReadBytes consumes n bytes and returns a slice into the source.
func (d *Decoder) ReadBytes(n int) ([]byte, error) {
	if !d.hasBytes(n) {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrInsufficientData, n, d.Remaining())
	}
	b := d.data[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

// ReadUint consumes size bytes and assembles them in the given byte order.
// Signed values come back as their two's-complement bits for the caller to
// sign-extend.
func (d *Decoder) ReadUint(size int, endian Endian) (uint64, error) {
	b, err := d.ReadBytes(size)
	if err != nil {
		return 0, err
	}
	switch size {
	case 1:
		return uint64(b[0]), nil
	case 2:
		return uint64(endian.order().Uint16(b)), nil
	case 4:
		return uint64(endian.order().Uint32(b)), nil
	case 8:
		return endian.order().Uint64(b), nil
	default:
		var v uint64
		if endian == BigEndian {
			for _, c := range b {
				v = v<<8 | uint64(c)
			}
		} else {
			for i := size - 1; i >= 0; i-- {
				v = v<<8 | uint64(b[i])
			}
		}
		return v, nil
	}
}
