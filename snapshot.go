package hydra

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot encodes the instance's current field values as a MessagePack
// map keyed by field name, recursing into nested instances and arrays.
// It is a self-describing interchange form for fixtures and debugging, not
// the packed wire format: it carries names and type tags and makes no byte
// layout guarantees.
func (i *Instance) Snapshot() ([]byte, error) {
	return msgpack.Marshal(i.snapshotFields())
}

func (i *Instance) snapshotFields() map[string]any {
	m := make(map[string]any, len(i.def.fields))
	for idx, fld := range i.def.fields {
		m[fld.Name] = snapshotValue(i.values[idx])
	}
	return m
}

func snapshotValue(v Value) any {
	switch v.Kind {
	case KindUint:
		return v.Uint
	case KindInt:
		return v.Int
	case KindStruct:
		return v.Struct.snapshotFields()
	case KindArray:
		out := make([]any, len(v.Array))
		for i, ev := range v.Array {
			out[i] = snapshotValue(ev)
		}
		return out
	default:
		return nil
	}
}

// Restore rebuilds an instance from a Snapshot taken against the same
// definition. Fields absent from the snapshot keep their defaults; every
// present value passes the field's normal validation, so a snapshot cannot
// smuggle in an out-of-domain value.
func (d *Definition) Restore(data []byte) (*Instance, error) {
	var m map[string]any
	if err := msgpack.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("hydra: restore: %w", err)
	}
	return d.restoreFields(m)
}

func (d *Definition) restoreFields(m map[string]any) (*Instance, error) {
	inst := d.New()
	for _, fld := range d.fields {
		raw, ok := m[fld.Name]
		if !ok {
			continue
		}
		v, err := restoreValue(fld.Formatter, raw)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", fld.Name, err)
		}
		if err := inst.Set(fld.Name, v); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

func restoreValue(f Formatter, raw any) (Value, error) {
	switch f := f.(type) {
	case *NestedStructFormatter:
		m, err := restoreMap(raw)
		if err != nil {
			return Value{}, err
		}
		inst, err := f.inner.restoreFields(m)
		if err != nil {
			return Value{}, err
		}
		return StructValue(inst), nil
	case *ArrayFormatter:
		return restoreArray(f.elem, raw)
	case *VarArrayFormatter:
		return restoreArray(f.elem, raw)
	default:
		return restoreScalar(raw)
	}
}

func restoreMap(raw any) (map[string]any, error) {
	switch m := raw.(type) {
	case map[string]any:
		return m, nil
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			name, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("%w: non-string snapshot key %v", ErrValueConstraint, k)
			}
			out[name] = v
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %T snapshot value for nested field", ErrValueConstraint, raw)
	}
}

func restoreArray(elem Formatter, raw any) (Value, error) {
	items, ok := raw.([]any)
	if !ok {
		return Value{}, fmt.Errorf("%w: %T snapshot value for array field", ErrValueConstraint, raw)
	}
	out := make([]Value, len(items))
	for i, item := range items {
		ev, err := restoreValue(elem, item)
		if err != nil {
			return Value{}, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = ev
	}
	return Value{Kind: KindArray, Array: out}, nil
}

// restoreScalar maps the integer types msgpack hands back for an any
// target onto the engine's value kinds.
func restoreScalar(raw any) (Value, error) {
	switch n := raw.(type) {
	case uint64:
		return Uint(n), nil
	case uint32:
		return Uint(uint64(n)), nil
	case uint16:
		return Uint(uint64(n)), nil
	case uint8:
		return Uint(uint64(n)), nil
	case uint:
		return Uint(uint64(n)), nil
	case int64:
		return Int(n), nil
	case int32:
		return Int(int64(n)), nil
	case int16:
		return Int(int64(n)), nil
	case int8:
		return Int(int64(n)), nil
	case int:
		return Int(int64(n)), nil
	default:
		return Value{}, fmt.Errorf("%w: %T snapshot value for integer field", ErrValueConstraint, raw)
	}
}
