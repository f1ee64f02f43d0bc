package attio

import "fmt"

// APIError is returned when the API answers with a non-2xx status. Body holds
// the raw response text exactly as the server sent it.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("attio: api error: status %d: %s", e.StatusCode, e.Body)
}

// DecodeError is returned when a 2xx response carries a body that is not
// valid JSON. It is distinct from APIError so callers do not mistake a
// malformed response for an API-level rejection.
type DecodeError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("attio: decode response (status %d): %v", e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
