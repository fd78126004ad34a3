package hydra

import "fmt"

// Field pairs a name with its formatter. Declaration order is the wire
// order.
type Field struct {
	Name      string
	Formatter Formatter
}

// Definition is an ordered, immutable binary layout: named formatters in
// declaration order plus optional struct-level default settings. A
// definition is validated exactly once, at declaration, and is then shared
// read-only by every instance created against it.
type Definition struct {
	name     string
	fields   []Field
	index    map[string]int
	settings Settings
}

// NewDefinition validates and builds a definition with no struct-level
// settings.
func NewDefinition(name string, fields []Field) (*Definition, error) {
	return NewDefinitionWithSettings(name, fields, Settings{})
}

// NewDefinitionWithSettings validates and builds a definition whose
// struct-level settings override the active context defaults whenever its
// instances serialize or deserialize.
//
// Validation rejects, with ErrDefinition: an empty definition name, empty
// or duplicate field names, nil formatters, out-of-range declared defaults,
// invalid array bounds, a variable-length field anywhere but last, and more
// than one variable-length field.
func NewDefinitionWithSettings(name string, fields []Field, s Settings) (*Definition, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty definition name", ErrDefinition)
	}
	// Snapshot the field list so later caller mutations cannot bypass the
	// one-time validation below.
	fields = append([]Field(nil), fields...)
	index := make(map[string]int, len(fields))
	for i, fld := range fields {
		if fld.Name == "" {
			return nil, fmt.Errorf("%w: %s: field %d has no name", ErrDefinition, name, i)
		}
		if fld.Formatter == nil {
			return nil, fmt.Errorf("%w: %s: field %q has no formatter", ErrDefinition, name, fld.Name)
		}
		if _, dup := index[fld.Name]; dup {
			return nil, fmt.Errorf("%w: %s: duplicate field %q", ErrDefinition, name, fld.Name)
		}
		index[fld.Name] = i

		last := i == len(fields)-1
		if err := validateFormatter(fld.Formatter, last); err != nil {
			return nil, fmt.Errorf("%w: %s: field %q: %v", ErrDefinition, name, fld.Name, err)
		}
		if _, err := fld.Formatter.Validate(fld.Formatter.Default()); err != nil {
			return nil, fmt.Errorf("%w: %s: field %q default: %v", ErrDefinition, name, fld.Name, err)
		}
	}
	return &Definition{name: name, fields: fields, index: index, settings: s}, nil
}

// validateFormatter enforces the structural shape rules. Only the final
// field of a definition may have a value-dependent size; everything
// repeated inside an array must be fixed-size or the packed layout cannot
// be decoded.
func validateFormatter(f Formatter, last bool) error {
	switch f := f.(type) {
	case *VarArrayFormatter:
		if !last {
			return fmt.Errorf("variable-length field must be the last field")
		}
		if f.min < 0 || f.max < f.min {
			return fmt.Errorf("invalid bounds [%d, %d]", f.min, f.max)
		}
		if f.elem == nil {
			return fmt.Errorf("variable-length array has no element formatter")
		}
		if _, ok := fixedSize(f.elem); !ok {
			return fmt.Errorf("variable-length array element must be fixed-size")
		}
	case *ArrayFormatter:
		if f.count < 0 {
			return fmt.Errorf("invalid array count %d", f.count)
		}
		if f.elem == nil {
			return fmt.Errorf("array has no element formatter")
		}
		if _, ok := fixedSize(f.elem); !ok {
			return fmt.Errorf("array element must be fixed-size")
		}
	case *NestedStructFormatter:
		if f.inner == nil {
			return fmt.Errorf("nested field has no definition")
		}
	}
	if !last {
		if _, ok := fixedSize(f); !ok {
			return fmt.Errorf("variable-size field must be the last field")
		}
	}
	return nil
}

// Name returns the definition name.
func (d *Definition) Name() string { return d.name }

// Settings returns the struct-level settings override.
func (d *Definition) Settings() Settings { return d.settings }

// Fields returns a copy of the field list in declaration order.
func (d *Definition) Fields() []Field {
	out := make([]Field, len(d.fields))
	copy(out, d.fields)
	return out
}

// New builds an instance with every field at its formatter's default.
func (d *Definition) New() *Instance {
	values := make([]Value, len(d.fields))
	for i, fld := range d.fields {
		values[i] = fld.Formatter.Default()
	}
	return &Instance{def: d, values: values}
}

// fixedSize reports the definition's total encoded size when no field's
// size depends on its value.
func (d *Definition) fixedSize() (int, bool) {
	total := 0
	for _, fld := range d.fields {
		n, ok := fixedSize(fld.Formatter)
		if !ok {
			return 0, false
		}
		total += n
	}
	return total, true
}
