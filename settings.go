package hydra

import (
	"encoding/binary"
	"sync"
)

// Endian selects the byte order for multi-byte integers.
type Endian uint8

const (
	// EndianUnset defers to the next settings layer during resolution.
	EndianUnset Endian = iota
	LittleEndian
	BigEndian
)

// String returns the string representation of the byte order
func (e Endian) String() string {
	switch e {
	case LittleEndian:
		return "little"
	case BigEndian:
		return "big"
	default:
		return "unset"
	}
}

func (e Endian) order() binary.ByteOrder {
	if e == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Settings carries serialization defaults. The zero value leaves every
// option unset; an unset option defers to the next layer when settings are
// resolved (call override > struct-level settings > context default).
type Settings struct {
	Endian Endian
}

// WithEndian returns a new Settings with the specified byte order
func (s Settings) WithEndian(e Endian) Settings {
	s.Endian = e
	return s
}

// merge returns s with every option set in over taking precedence.
func (s Settings) merge(over Settings) Settings {
	if over.Endian != EndianUnset {
		s.Endian = over.Endian
	}
	return s
}

// SettingsContext is a stack of settings frames supplying defaults when
// neither a struct nor a call specifies a value. Push duplicates the top
// frame; Pop discards it. Every Push must be paired with a Pop on all exit
// paths or the pushed frame leaks into unrelated operations.
//
// The stack itself is safe for concurrent use, but uncoordinated Push/Pop
// from multiple goroutines interleaves frames unpredictably; concurrent
// units should each own a context from NewSettingsContext and pass it to
// the *In entry points.
type SettingsContext struct {
	mu     sync.Mutex
	frames []Settings
}

// NewSettingsContext creates an isolated context whose root frame holds
// root. An unset root byte order defaults to little-endian.
func NewSettingsContext(root Settings) *SettingsContext {
	if root.Endian == EndianUnset {
		root.Endian = LittleEndian
	}
	return &SettingsContext{frames: []Settings{root}}
}

// Push duplicates the current top frame as a new top.
func (c *SettingsContext) Push() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frames = append(c.frames, c.frames[len(c.frames)-1])
}

// Pop discards the top frame. Popping with only the root frame left
// returns ErrEmptyStack.
func (c *SettingsContext) Pop() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.frames) == 1 {
		return ErrEmptyStack
	}
	c.frames = c.frames[:len(c.frames)-1]
	return nil
}

// SetEndian sets the byte order on the current top frame.
func (c *SettingsContext) SetEndian(e Endian) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frames[len(c.frames)-1].Endian = e
}

// Current returns a copy of the top frame.
func (c *SettingsContext) Current() Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frames[len(c.frames)-1]
}

// Depth returns the number of frames on the stack, including the root.
func (c *SettingsContext) Depth() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.frames)
}

var defaultContext = NewSettingsContext(Settings{Endian: LittleEndian})

// Defaults returns the process-wide settings context used by Serialize and
// Deserialize when no explicit context is given.
func Defaults() *SettingsContext {
	return defaultContext
}

// resolveSettings computes the effective settings for one operation:
// call override > struct-level settings > context top-of-stack default.
// A nil ctx means the process-wide context.
func resolveSettings(ctx *SettingsContext, structLevel, call Settings) Settings {
	if ctx == nil {
		ctx = defaultContext
	}
	return ctx.Current().merge(structLevel).merge(call)
}
