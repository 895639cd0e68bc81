package tube

import "errors"

// Sentinel errors returned across the tube/* packages. Callers should use
// errors.Is against these rather than matching on message text.
var (
	// ErrBadTolerance is returned when neither of a required tolerance pair
	// (atolx/rtolx, or atoly/rtoly) is positive.
	ErrBadTolerance = errors.New("tube: at least one of atol/rtol must be positive in both x and y")

	// ErrDegenerateReference is returned when the reference curve has fewer
	// than two distinct points, so an initial slope sign cannot be established.
	ErrDegenerateReference = errors.New("tube: reference curve has fewer than two distinct points")

	// ErrEmptyEnvelope is returned when a cleaned lower or upper envelope has
	// zero points.
	ErrEmptyEnvelope = errors.New("tube: cleaned envelope has zero points")

	// ErrInvalidRange indicates the loop remover was asked to operate on a
	// range outside its backing sequence. This signals an engine bug, not bad
	// user input, and should never surface from a well-formed raw envelope.
	ErrInvalidRange = errors.New("tube: invalid range in loop remover")
)
