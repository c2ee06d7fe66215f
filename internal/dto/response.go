// File: internal/dto/response.go
package dto

// Response is the uniform envelope every endpoint answers with.
// swagger:model dto.Response
type Response struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message,omitempty" example:"Login successful"`
	Data    any    `json:"data,omitempty"`
}

// OK wraps data in a success envelope.
func OK(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

// Fail wraps an error message in a failure envelope.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}
