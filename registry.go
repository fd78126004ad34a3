package hydra

import (
	"fmt"

	"github.com/puzpuzpuz/xsync/v3"
)

// registry holds definitions published for decode-by-name dispatch.
var registry = xsync.NewMapOf[string, *Definition]()

// Register publishes d under its definition name. Registering a second
// definition under an already-taken name fails with ErrDefinition; dispatch
// by name must stay stable for the life of the process.
func Register(d *Definition) error {
	if d == nil {
		return fmt.Errorf("%w: nil definition", ErrDefinition)
	}
	if _, loaded := registry.LoadOrStore(d.name, d); loaded {
		return fmt.Errorf("%w: %q already registered", ErrDefinition, d.name)
	}
	return nil
}

// Lookup returns the registered definition for name.
func Lookup(name string) (*Definition, bool) {
	return registry.Load(name)
}

// MustLookup returns the registered definition for name, panicking if it
// was never registered. Intended for init-time wiring where a missing
// definition is a programming error.
func MustLookup(name string) *Definition {
	d, ok := registry.Load(name)
	if !ok {
		panic(fmt.Sprintf("hydra: definition %q not registered", name))
	}
	return d
}

// DeserializeAs decodes data against the registered definition named name,
// using the process-wide settings context.
func DeserializeAs(name string, data []byte) (*Instance, error) {
	d, ok := registry.Load(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDefinition, name)
	}
	return d.Deserialize(data)
}
