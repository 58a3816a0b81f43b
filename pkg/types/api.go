package types

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: asset not found: index.html
	Error string `json:"error" example:"asset not found: index.html"`
	// HTTP status code.
	// example: 404
	Code int `json:"code" example:"404"`
}
