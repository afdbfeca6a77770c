package dto

// MessageResponse is returned by update and delete operations
type MessageResponse struct {
	Message string `json:"message" example:"Student updated successfully!"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error" example:"All fields are required."`
}

// DataResponse wraps aggregation and report rows
type DataResponse struct {
	Data interface{} `json:"data"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}
