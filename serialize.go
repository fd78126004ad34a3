package hydra

import "fmt"

// Serialize encodes the instance's current values as a packed byte
// sequence, resolving settings against the process-wide context.
func (i *Instance) Serialize() ([]byte, error) {
	return i.SerializeIn(nil, Settings{})
}

// SerializeWith applies per-call overrides on top of struct-level settings
// and context defaults.
func (i *Instance) SerializeWith(over Settings) ([]byte, error) {
	return i.SerializeIn(nil, over)
}

// SerializeIn resolves settings against an explicit context (nil means the
// process-wide one) before encoding. Fields are encoded in declaration
// order and byte-concatenated with no padding; the output length equals
// the instance's Len.
func (i *Instance) SerializeIn(ctx *SettingsContext, over Settings) ([]byte, error) {
	eff := resolveSettings(ctx, i.def.settings, over)
	e := NewEncoder(i.Len())
	if err := i.encodeFields(e, eff); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

func (i *Instance) encodeFields(e *Encoder, eff Settings) error {
	for idx, fld := range i.def.fields {
		if err := fld.Formatter.Encode(e, i.values[idx], eff); err != nil {
			return fmt.Errorf("field %q: %w", fld.Name, err)
		}
	}
	return nil
}

// Deserialize constructs a new instance from packed bytes, resolving
// settings against the process-wide context.
func (d *Definition) Deserialize(data []byte) (*Instance, error) {
	return d.DeserializeIn(nil, data, Settings{})
}

// DeserializeWith applies per-call overrides on top of struct-level
// settings and context defaults.
func (d *Definition) DeserializeWith(data []byte, over Settings) (*Instance, error) {
	return d.DeserializeIn(nil, data, over)
}

// DeserializeIn resolves settings against an explicit context (nil means
// the process-wide one) and consumes the buffer field by field in
// declaration order. A trailing variable-length field consumes all
// remaining bytes; trailing bytes after a fixed-size final field are
// ignored, not an error.
func (d *Definition) DeserializeIn(ctx *SettingsContext, data []byte, over Settings) (*Instance, error) {
	eff := resolveSettings(ctx, d.settings, over)
	return d.decodeFields(NewDecoder(data), eff)
}

func (d *Definition) decodeFields(dec *Decoder, eff Settings) (*Instance, error) {
	inst := &Instance{def: d, values: make([]Value, len(d.fields))}
	for idx, fld := range d.fields {
		v, err := fld.Formatter.Decode(dec, eff)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", fld.Name, err)
		}
		inst.values[idx] = v
	}
	return inst, nil
}
