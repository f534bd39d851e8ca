package backend

// APIError is a non-success HTTP response from the backend. Message carries
// the human-readable text from the backend's {"message": ...} envelope, or
// the caller's fallback when the body is absent or malformed.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }
