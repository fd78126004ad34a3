package hydra

import "errors"

var (
	// ErrDefinition is returned when a struct definition is structurally
	// invalid (variable-length field not last, duplicate names, bad bounds).
	// It signals a declaration bug and is raised at declaration time only.
	ErrDefinition = errors.New("hydra: invalid struct definition")

	// ErrValueConstraint is returned when a value violates its field's
	// domain: an integer that does not fit its width, or an array whose
	// element count falls outside the declared bounds.
	ErrValueConstraint = errors.New("hydra: value outside field domain")

	// ErrInsufficientData is returned when a buffer lacks enough bytes to
	// satisfy a field, including a variable-length field's divisibility
	// requirement.
	ErrInsufficientData = errors.New("hydra: not enough data")

	// ErrEmptyStack is returned by SettingsContext.Pop when only the root
	// frame remains.
	ErrEmptyStack = errors.New("hydra: no pushed settings frame")

	// ErrUnknownField is returned when a field name does not exist in the
	// instance's definition.
	ErrUnknownField = errors.New("hydra: unknown field")

	// ErrUnknownDefinition is returned when a name has no registered
	// definition.
	ErrUnknownDefinition = errors.New("hydra: definition not registered")
)
