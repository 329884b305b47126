package responses

// ErrorResponse keeps the {success, message} shape the frontend expects.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

const (
	ErrorCodeInternal       = "0b6f9a2e-4c1d-4f7a-9e53-7d2a8c1b6e04"
	ErrorCodeInvalidBody    = "6a1d3f5c-8e2b-4b7d-a9c4-1f0e7d3b5a92"
	ErrorCodeBodyTooLarge   = "f4c8e1a7-2d5b-4e93-8b6a-3c9f0d1e7b25"
	ErrorCodeUnreadableFile = "91e5b7c3-6f2a-4d18-b0e9-5a4c2d8f1e63"
)
