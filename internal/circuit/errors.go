package circuit

import "errors"

// Domain errors for circuit assembly and solving.
var (
	// ErrDivideByZero indicates a resistor with zero resistance.
	ErrDivideByZero = errors.New("circuit: zero resistance (divide by zero)")

	// ErrSingularMatrix indicates the conductance matrix cannot be
	// inverted: no resistive path from the node to ground.
	ErrSingularMatrix = errors.New("circuit: singular conductance matrix (no resistive path to ground)")

	// ErrUnsupportedTopology indicates an element requires a node beyond
	// the single shared node this model supports.
	ErrUnsupportedTopology = errors.New("circuit: multi-node topology not supported")

	// ErrUnknownKind indicates an element kind outside the closed set.
	ErrUnknownKind = errors.New("circuit: unknown element kind")
)

// ElementError wraps an error with the element it originated from.
type ElementError struct {
	Label   string
	Wrapped error
}

func (e *ElementError) Error() string {
	return e.Label + ": " + e.Wrapped.Error()
}

func (e *ElementError) Unwrap() error {
	return e.Wrapped
}
