package errors

// ErrorInfo contains the error details serialized to clients.
// The client notification UI shows Message verbatim.
type ErrorInfo struct {
	Code    string       `json:"code"`              // Business error code, e.g. "EMAIL_ALREADY_REGISTERED"
	Message string       `json:"message"`           // User-friendly error message
	Fields  []FieldError `json:"fields,omitempty"`  // Per-field validation errors, when applicable
	Details string       `json:"details,omitempty"` // Detailed error information (optional)
}

// FieldError describes a single validation failure in a request payload.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ErrorResponse is the JSON body for every non-2xx response.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
}
