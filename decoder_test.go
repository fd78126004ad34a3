package hydra

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecoderCursor(t *testing.T) {
	d := NewDecoder([]byte{0x01, 0x02, 0x03, 0x04, 0x05})

	if d.Position() != 0 || d.Remaining() != 5 {
		t.Fatalf("fresh decoder at %d with %d remaining", d.Position(), d.Remaining())
	}

	b, err := d.ReadBytes(2)
	if err != nil {
		t.Fatalf("ReadBytes failed: %v", err)
	}
	if !bytes.Equal(b, []byte{0x01, 0x02}) {
		t.Errorf("got % X, want 01 02", b)
	}
	if d.Position() != 2 || d.Remaining() != 3 {
		t.Errorf("after read: position %d, remaining %d", d.Position(), d.Remaining())
	}

	v, err := d.ReadUint(2, BigEndian)
	if err != nil {
		t.Fatalf("ReadUint failed: %v", err)
	}
	if v != 0x0304 {
		t.Errorf("got %#x, want 0x0304", v)
	}

	// One byte left; a two-byte read must fail without advancing
	if _, err := d.ReadBytes(2); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("got %v, want ErrInsufficientData", err)
	}
	if d.Position() != 4 {
		t.Errorf("failed read moved the cursor to %d", d.Position())
	}
}

func TestDecoderReset(t *testing.T) {
	d := NewDecoder([]byte{0xAA})
	if _, err := d.ReadBytes(1); err != nil {
		t.Fatalf("ReadBytes failed: %v", err)
	}

	d.Reset([]byte{0xBB, 0xCC})
	if d.Position() != 0 || d.Remaining() != 2 {
		t.Fatalf("after Reset: position %d, remaining %d", d.Position(), d.Remaining())
	}
	v, err := d.ReadUint(2, LittleEndian)
	if err != nil {
		t.Fatalf("ReadUint failed: %v", err)
	}
	if v != 0xCCBB {
		t.Errorf("got %#x, want 0xCCBB", v)
	}
}
