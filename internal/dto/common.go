package dto

// Response is the shared envelope for every API reply.
// @Description Standard response envelope
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// NewSuccessResponse wraps data in a success envelope.
func NewSuccessResponse(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// NewErrorResponse wraps a human-readable message in a failure envelope.
func NewErrorResponse(message string) Response {
	return Response{Success: false, Error: message}
}
