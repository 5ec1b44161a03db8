package feedback

import "errors"

// Sentinel errors for feedback validation and throttling.
// Callers should use errors.Is() to check for specific conditions.
var (
	// ErrInvalidScore indicates a score outside the 0-10 scale.
	ErrInvalidScore = errors.New("feedback: score must be between 0 and 10")

	// ErrCommentTooLong indicates a comment over the length cap.
	ErrCommentTooLong = errors.New("feedback: comment exceeds maximum length")

	// ErrRateLimited indicates the client exceeded its submission window.
	ErrRateLimited = errors.New("feedback: too many submissions, slow down")
)
