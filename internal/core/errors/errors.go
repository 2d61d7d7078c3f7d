package errors

const (
	HttpInternalError     = "internal_error"
	HttpInvalidJsonError  = "invalid_json"
	HttpInvalidQueryError = "invalid_query"
	HttpDataAccessError   = "data_access_failed"
	HttpUnknownVendor     = "unknown_vendor"
	HttpCollaboratorError = "collaborator_error"
)

// ErrorResponse is the error response body shared by every handler.
// Message carries the human-readable summary; Detail the specific cause when known.
type ErrorResponse struct {
	ErrorType string `json:"error_type"`
	Message   string `json:"error"`
	Detail    string `json:"detail,omitempty"`
}
