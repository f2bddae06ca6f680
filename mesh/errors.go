package mesh

import (
	"errors"
	"fmt"
)

// Sentinel errors for the mesh package.
var (
	// ErrMalformed is the base error for mesh description lines that
	// carry a "v" or "f" keyword but cannot be parsed. Use errors.Is
	// against this; the concrete error is a *MalformedLineError.
	ErrMalformed = errors.New("mesh: malformed line")

	// ErrNoGeometry is returned when a description defines no vertices.
	ErrNoGeometry = errors.New("mesh: no geometry in description")
)

// MalformedLineError reports a "v" or "f" line that could not be parsed,
// including an out-of-range face index. Line numbers are 1-based.
type MalformedLineError struct {
	Name string // mesh being parsed
	Line int    // 1-based line number
	Text string // the offending line, trimmed
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("mesh: %s: line %d: malformed %q", e.Name, e.Line, e.Text)
}

// Unwrap makes errors.Is(err, ErrMalformed) work.
func (e *MalformedLineError) Unwrap() error {
	return ErrMalformed
}
