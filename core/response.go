package core

type ResponseBase[T any] struct {
	Status  string `json:"status"`
	Content T      `json:"content"`
	Error   string `json:"error,omitempty"`
}

// ErrorResponse is the structured error body returned at the HTTP boundary
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
