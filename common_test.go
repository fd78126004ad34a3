package hydra

import "testing"

// pushEndian scopes a context frame with the given byte order for the
// duration of one test.
func pushEndian(t *testing.T, e Endian) {
	t.Helper()
	Defaults().Push()
	Defaults().SetEndian(e)
	t.Cleanup(func() {
		if err := Defaults().Pop(); err != nil {
			t.Errorf("unpaired settings frame: %v", err)
		}
	})
}

func mustDefinition(t *testing.T, name string, fields []Field) *Definition {
	t.Helper()
	d, err := NewDefinition(name, fields)
	if err != nil {
		t.Fatalf("NewDefinition(%s) failed: %v", name, err)
	}
	return d
}

// smallDef is a single-byte struct defaulting to zero.
func smallDef(t *testing.T) *Definition {
	t.Helper()
	return mustDefinition(t, "Small", []Field{
		{Name: "only_element", Formatter: UInt8()},
	})
}

// simpleDef carries the defaulted three-field layout used across the
// serialization tests: DE, CAFE, AD.
func simpleDef(t *testing.T) *Definition {
	t.Helper()
	return mustDefinition(t, "Simple", []Field{
		{Name: "b_first", Formatter: UInt8(0xDE)},
		{Name: "a_second", Formatter: UInt16(0xCAFE)},
		{Name: "x_third", Formatter: UInt8(0xAD)},
	})
}

// composedDef nests smallDef, repeats simpleDef three times, and ends with
// a 32-bit field.
func composedDef(t *testing.T) *Definition {
	t.Helper()
	return mustDefinition(t, "Composed", []Field{
		{Name: "other_struct", Formatter: NestedStruct(smallDef(t))},
		{Name: "some_field", Formatter: Array(3, NestedStruct(simpleDef(t)))},
		{Name: "numeric", Formatter: UInt32()},
	})
}
