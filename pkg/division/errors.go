package division

import (
	"errors"
	"fmt"
)

var (
	// ErrStructural reports inconsistent counts or vector lengths.
	ErrStructural = errors.New("structural input error")

	// ErrDomain reports a negative or non-finite valuation, a non-positive
	// total, or a valuation sum that does not match the total.
	ErrDomain = errors.New("domain input error")

	// ErrDegenerateBoundary reports a divisible boundary whose A-coordinate
	// does not strictly increase or whose B-coordinate increases.
	ErrDegenerateBoundary = errors.New("degenerate divisible boundary")

	// ErrTooManyItems reports an indivisible item count above the
	// enumeration cap.
	ErrTooManyItems = errors.New("too many indivisible items")
)

// ValidationError describes the first input problem found by Validate.
type ValidationError struct {
	// Kind is ErrStructural or ErrDomain.
	Kind error
	// Field names the offending input, e.g. "divisible" or "total".
	Field string
	// Participant is "A", "B" or empty when the field is shared.
	Participant string
	// Index is the item index, or -1 when the error is not item specific.
	Index int
	// Value is the offending value.
	Value float64
	// Want is the expected value where one exists (lengths, sums).
	Want float64

	msg string
}

func (e *ValidationError) Error() string {
	subject := e.Field
	if e.Participant != "" {
		subject = fmt.Sprintf("participant %s %s", e.Participant, e.Field)
	}
	if e.Index >= 0 {
		subject = fmt.Sprintf("%s[%d]", subject, e.Index)
	}
	return fmt.Sprintf("%v: %s: %s", e.Kind, subject, e.msg)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func structuralError(field, participant string, got, want int) error {
	return &ValidationError{
		Kind:        ErrStructural,
		Field:       field,
		Participant: participant,
		Index:       -1,
		Value:       float64(got),
		Want:        float64(want),
		msg:         fmt.Sprintf("length %d, expected %d", got, want),
	}
}

func domainError(field, participant string, index int, value, want float64, msg string) error {
	return &ValidationError{
		Kind:        ErrDomain,
		Field:       field,
		Participant: participant,
		Index:       index,
		Value:       value,
		Want:        want,
		msg:         msg,
	}
}
