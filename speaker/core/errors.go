package core

import (
	"errors"
	"strconv"
	"strings"
)

// Error classes. Use errors.Is to test a returned error against them and
// errors.As to recover the [DomainError] or [ValidationError] details.
var (
	// ErrDomain marks an input combination for which a formula is
	// mathematically undefined (division by zero, square root of a
	// negative value, no admissible polynomial root).
	ErrDomain = errors.New("speaker: input outside formula domain")

	// ErrValidation marks a caller-supplied argument that is not usable,
	// such as an empty evaluation range.
	ErrValidation = errors.New("speaker: invalid argument")
)

// Input is a named numeric input reported with a [DomainError].
type Input struct {
	Name  string
	Value float64
}

// In is shorthand for constructing an [Input].
func In(name string, value float64) Input {
	return Input{Name: name, Value: value}
}

// DomainError reports which formula broke down and for which inputs.
type DomainError struct {
	Op      string  // operation, e.g. "driver.SetFs"
	Formula string  // the formula that is undefined, e.g. "Ts = 1/(2π·fs)"
	Inputs  []Input // offending input values
	Err     error   // optional underlying cause
}

// NewDomainError builds a [DomainError] for op and formula.
func NewDomainError(op, formula string, inputs ...Input) *DomainError {
	return &DomainError{Op: op, Formula: formula, Inputs: inputs}
}

func (e *DomainError) Error() string {
	var b strings.Builder

	b.WriteString(e.Op)
	b.WriteString(": ")
	b.WriteString(e.Formula)
	b.WriteString(" undefined")

	for i, in := range e.Inputs {
		if i == 0 {
			b.WriteString(" for ")
		} else {
			b.WriteString(", ")
		}

		b.WriteString(in.Name)
		b.WriteByte('=')
		b.WriteString(strconv.FormatFloat(in.Value, 'g', -1, 64))
	}

	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

// Unwrap returns the underlying cause, if any.
func (e *DomainError) Unwrap() error { return e.Err }

// Is reports whether target is [ErrDomain].
func (e *DomainError) Is(target error) bool { return target == ErrDomain }

// ValidationError reports an argument rejected before any computation.
type ValidationError struct {
	Op     string
	Field  string
	Value  float64
	Reason string
}

// NewValidationError builds a [ValidationError].
func NewValidationError(op, field string, value float64, reason string) *ValidationError {
	return &ValidationError{Op: op, Field: field, Value: value, Reason: reason}
}

func (e *ValidationError) Error() string {
	return e.Op + ": " + e.Field + "=" + strconv.FormatFloat(e.Value, 'g', -1, 64) + " " + e.Reason
}

// Is reports whether target is [ErrValidation].
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
