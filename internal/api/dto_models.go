package api

// ErrorResponse is the uniform error envelope returned by every endpoint.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageResponse carries fixed confirmation messages, e.g. after deletes.
type MessageResponse struct {
	Message string `json:"message"`
}
