package models

// APIResponse is a generic API response wrapper
type APIResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// NewSuccessResponse creates a success response
func NewSuccessResponse(message string) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
	}
}

// NewErrorResponse creates an error response
func NewErrorResponse(message string) APIResponse {
	return APIResponse{
		Success: false,
		Message: message,
	}
}

// NewValidationErrorResponse creates a validation error response with
// field-level detail
func NewValidationErrorResponse(message string, errors map[string]string) APIResponse {
	return APIResponse{
		Success: false,
		Message: message,
		Errors:  errors,
	}
}

// ContactCreatedResponse is returned after a successful contact submission
type ContactCreatedResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Contact *Contact `json:"contact"`
}

// ContentUpdatedResponse is returned after a successful content save
type ContentUpdatedResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Content *ContentPayload `json:"content"`
}

// AdminStatusResponse reports the current session's admin flag
type AdminStatusResponse struct {
	IsAdmin bool `json:"isAdmin"`
}
