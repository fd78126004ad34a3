package hydra

import (
	"bytes"
	"errors"
	"testing"
)

func TestSerializeSimple(t *testing.T) {
	pushEndian(t, LittleEndian)

	obj := simpleDef(t).New()
	raw, err := obj.Serialize()
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	want := []byte{0xDE, 0xFE, 0xCA, 0xAD}
	if !bytes.Equal(raw, want) {
		t.Errorf("got % X, want % X", raw, want)
	}
}

func TestSerializeComposed(t *testing.T) {
	pushEndian(t, LittleEndian)

	def := composedDef(t)
	obj := def.New()
	if err := obj.SetUint("numeric", 0xAEAEAEAE); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	raw, err := obj.Serialize()
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	want := []byte{
		0x00,
		0xDE, 0xFE, 0xCA, 0xAD,
		0xDE, 0xFE, 0xCA, 0xAD,
		0xDE, 0xFE, 0xCA, 0xAD,
		0xAE, 0xAE, 0xAE, 0xAE,
	}
	if !bytes.Equal(raw, want) {
		t.Errorf("got % X, want % X", raw, want)
	}

	back, err := def.Deserialize(raw)
	if err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if !back.Equal(obj) {
		t.Error("deserialized instance differs from the original")
	}
}

func TestSetUnknownField(t *testing.T) {
	obj := simpleDef(t).New()
	if err := obj.SetUint("missing", 1); !errors.Is(err, ErrUnknownField) {
		t.Errorf("Set = %v, want ErrUnknownField", err)
	}
	if _, err := obj.Get("missing"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("Get = %v, want ErrUnknownField", err)
	}
}

func TestSetValidatesEagerly(t *testing.T) {
	obj := simpleDef(t).New()

	// The rejected write must not clobber the current value
	if err := obj.SetUint("b_first", 0x100); !errors.Is(err, ErrValueConstraint) {
		t.Fatalf("Set = %v, want ErrValueConstraint", err)
	}
	v, err := obj.Get("b_first")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if v.AsUint() != 0xDE {
		t.Errorf("value after rejected write = %#x, want 0xDE", v.AsUint())
	}
}

func TestInstanceLen(t *testing.T) {
	tests := []struct {
		name string
		def  func(*testing.T) *Definition
		want int
	}{
		{"small", smallDef, 1},
		{"simple", simpleDef, 4},
		{"composed", composedDef, 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := tt.def(t).New()
			if got := obj.Len(); got != tt.want {
				t.Errorf("Len = %d, want %d", got, tt.want)
			}

			raw, err := obj.SerializeWith(Settings{Endian: LittleEndian})
			if err != nil {
				t.Fatalf("Serialize failed: %v", err)
			}
			if len(raw) != tt.want {
				t.Errorf("serialized %d bytes, want %d", len(raw), tt.want)
			}
		})
	}
}

func TestInstanceEqual(t *testing.T) {
	def := simpleDef(t)
	a := def.New()
	b := def.New()

	if !a.Equal(b) {
		t.Error("fresh instances of one definition not equal")
	}

	if err := b.SetUint("x_third", 0x01); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if a.Equal(b) {
		t.Error("instances with differing values compare equal")
	}

	if err := a.SetUint("x_third", 0x01); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if !a.Equal(b) {
		t.Error("instances with identical values compare unequal")
	}
}

func TestInstanceEqualAcrossDefinitions(t *testing.T) {
	// Structurally identical but distinct definitions never compare equal
	a := simpleDef(t).New()
	b := simpleDef(t).New()
	if a.Equal(b) {
		t.Error("instances of distinct definitions compare equal")
	}
}

func TestInstanceEqualNil(t *testing.T) {
	obj := simpleDef(t).New()
	if obj.Equal(nil) {
		t.Error("instance equal to nil")
	}
	var null *Instance
	if !null.Equal(nil) {
		t.Error("nil instances should be equal")
	}
}

func TestNestedEqualIsStructural(t *testing.T) {
	def := composedDef(t)
	a := def.New()
	b := def.New()

	inner, _ := a.Get("other_struct")
	if err := inner.AsStruct().SetUint("only_element", 5); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if a.Equal(b) {
		t.Error("differing nested value not detected")
	}

	otherInner, _ := b.Get("other_struct")
	if err := otherInner.AsStruct().SetUint("only_element", 5); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if !a.Equal(b) {
		t.Error("equal nested values compare unequal")
	}
}
