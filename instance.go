package hydra

import "fmt"

// Instance is a mutable set of concrete field values bound to one
// Definition. Every mutation is validated immediately against the field's
// formatter domain; an instance therefore always serializes cleanly.
type Instance struct {
	def    *Definition
	values []Value
}

// Definition returns the definition the instance is bound to.
func (i *Instance) Definition() *Definition { return i.def }

// Set assigns a field value after validating it against the field's
// formatter. The stored value is the formatter's canonical form.
func (i *Instance) Set(name string, v Value) error {
	idx, ok := i.def.index[name]
	if !ok {
		return fmt.Errorf("%w: %q in %q", ErrUnknownField, name, i.def.name)
	}
	canon, err := i.def.fields[idx].Formatter.Validate(v)
	if err != nil {
		return fmt.Errorf("field %q: %w", name, err)
	}
	i.values[idx] = canon
	return nil
}

// SetUint assigns an unsigned integer field value
func (i *Instance) SetUint(name string, v uint64) error {
	return i.Set(name, Uint(v))
}

// SetInt assigns a signed integer field value
func (i *Instance) SetInt(name string, v int64) error {
	return i.Set(name, Int(v))
}

// SetUints assigns an array field from unsigned integers
func (i *Instance) SetUints(name string, vs []uint64) error {
	return i.Set(name, UintArray(vs))
}

// Get returns the current value of a field.
func (i *Instance) Get(name string) (Value, error) {
	idx, ok := i.def.index[name]
	if !ok {
		return Value{}, fmt.Errorf("%w: %q in %q", ErrUnknownField, name, i.def.name)
	}
	return i.values[idx], nil
}

// Len returns the serialized size in bytes for the current values: the sum
// of every field's Length.
func (i *Instance) Len() int {
	total := 0
	for idx, fld := range i.def.fields {
		total += fld.Formatter.Length(i.values[idx])
	}
	return total
}

// Equal reports structural equality: same definition and every field's
// value equal in declaration order, recursing into nested instances and
// arrays. Identity is never compared.
func (i *Instance) Equal(o *Instance) bool {
	if i == o {
		return true
	}
	if i == nil || o == nil {
		return false
	}
	if i.def != o.def {
		return false
	}
	for idx := range i.values {
		if !i.values[idx].Equal(o.values[idx]) {
			return false
		}
	}
	return true
}
