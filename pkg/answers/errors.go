package answers

import "errors"

// Sentinel errors for answer boundary validation.
// Callers should use errors.Is() to check for these.
var (
	// ErrUnknownQuestion indicates an answer references a question id
	// not present in the catalog.
	ErrUnknownQuestion = errors.New("answers: unknown question id")

	// ErrOutOfRange indicates a Likert answer outside 1-5.
	ErrOutOfRange = errors.New("answers: likert value out of range")

	// ErrTypeMismatch indicates an answer's type does not match the
	// question's declared scoring type.
	ErrTypeMismatch = errors.New("answers: answer type mismatch")

	// ErrMalformedSubmission indicates the submission payload could not
	// be decoded at all.
	ErrMalformedSubmission = errors.New("answers: malformed submission")
)
