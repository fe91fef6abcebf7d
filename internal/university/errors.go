package university

import "errors"

var (
	// ErrUnavailable indicates the backend could not be reached.
	ErrUnavailable = errors.New("university backend unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("university request timed out")

	// ErrRejected indicates the backend answered with an explicit
	// failure (success=false). The wrapped message is server-provided.
	ErrRejected = errors.New("request rejected by university backend")

	// ErrInvalidResponse indicates the backend response could not be
	// decoded into the expected shape.
	ErrInvalidResponse = errors.New("invalid university backend response")
)
