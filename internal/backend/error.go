package backend

import "errors"

// Error is the single failure value every backend call can return. It covers
// transport failures (StatusCode 0), non-2xx responses and domain-level
// rejections alike; callers surface Message to the user and nothing retries.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// MessageOf extracts the user-facing text from any error returned by this
// package, with a fallback for unexpected error values.
func MessageOf(err error, fallback string) string {
	var backendErr *Error
	if errors.As(err, &backendErr) && backendErr.Message != "" {
		return backendErr.Message
	}
	return fallback
}
