package dto

type SendResumeRequest struct {
	RecipientEmail string `json:"recipientEmail" validate:"required,email"`
	Subject        string `json:"subject" validate:"omitempty,max=200"`
	Message        string `json:"message" validate:"omitempty,max=5000"`
}

type SendResumeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
