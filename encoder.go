package hydra

// Encoder appends packed field encodings to a growable byte buffer.
type Encoder struct {
	buf []byte
}

// NewEncoder creates a new Encoder with the given initial capacity.
func NewEncoder(capacity int) *Encoder {
	return &Encoder{
		buf: make([]byte, 0, capacity),
	}
}

// NewEncoderBuffer creates an Encoder that writes to an existing buffer.
// The buffer will be grown as needed.
func NewEncoderBuffer(buf []byte) *Encoder {
	return &Encoder{
		buf: buf[:0], // reset length but keep capacity
	}
}

// Reset resets the encoder for reuse.
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
}

// Bytes returns the encoded bytes.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Len returns the length of encoded data.
func (e *Encoder) Len() int {
	return len(e.buf)
}

// grow ensures there's space for n more bytes
func (e *Encoder) grow(n int) {
	if cap(e.buf)-len(e.buf) >= n {
		return
	}
	// Double capacity or add n, whichever is larger
	newCap := cap(e.buf) * 2
	if newCap < len(e.buf)+n {
		newCap = len(e.buf) + n
	}
	newBuf := make([]byte, len(e.buf), newCap)
	copy(newBuf, e.buf)
	e.buf = newBuf
}

// PutByte appends a single byte.
func (e *Encoder) PutByte(b byte) {
	e.grow(1)
	e.buf = append(e.buf, b)
}

// PutBytes appends raw bytes unchanged.
func (e *Encoder) PutBytes(b []byte) {
	e.grow(len(b))
	e.buf = append(e.buf, b...)
}

// PutUint appends v's low size bytes in the given byte order. Size is 1, 2,
// 4 or 8; signed values are passed as their two's-complement bits.
func (e *Encoder) PutUint(v uint64, size int, endian Endian) {
	e.grow(size)
	start := len(e.buf)
	e.buf = e.buf[:start+size]
	switch size {
	case 1:
		e.buf[start] = byte(v)
	case 2:
		endian.order().PutUint16(e.buf[start:], uint16(v))
	case 4:
		endian.order().PutUint32(e.buf[start:], uint32(v))
	case 8:
		endian.order().PutUint64(e.buf[start:], v)
	default:
		e.buf = e.buf[:start]
		if endian == BigEndian {
			for shift := 8 * (size - 1); shift >= 0; shift -= 8 {
				e.buf = append(e.buf, byte(v>>shift))
			}
		} else {
			for shift := 0; shift < 8*size; shift += 8 {
				e.buf = append(e.buf, byte(v>>shift))
			}
		}
	}
}
