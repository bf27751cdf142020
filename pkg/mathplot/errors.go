package mathplot

import (
	"errors"
	"fmt"

	"github.com/ukaji3/mathplot-go/pkg/mathplot/geom"
)

// ErrInvalidDomain indicates an empty or non-numeric interval.
var ErrInvalidDomain = geom.ErrInvalidDomain

// ErrUndefined indicates a function is undefined (NaN or infinite) where it was evaluated.
var ErrUndefined = geom.ErrUndefined

// ErrUnsupportedStyle indicates an unknown line style, marker, location or color.
var ErrUnsupportedStyle = errors.New("unsupported style")

// ErrInvalidStep indicates a non-positive tick spacing.
var ErrInvalidStep = errors.New("invalid tick step")

// StyleError represents an unknown style identifier.
type StyleError struct {
	Kind  string // "line style", "marker", "text location", "color"
	Value string
}

func (e *StyleError) Error() string {
	return fmt.Sprintf("unsupported %s %q", e.Kind, e.Value)
}

func (e *StyleError) Unwrap() error {
	return ErrUnsupportedStyle
}

// DomainError represents a numeric failure inside a drawing operation.
type DomainError struct {
	Op  string // "plot", "tangent", "integral", ...
	Err error
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new DomainError.
func NewDomainError(op string, err error) *DomainError {
	return &DomainError{
		Op:  op,
		Err: err,
	}
}
