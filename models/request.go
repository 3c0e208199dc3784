package models

// ChatRequest is the body of POST /chat. Message is a pointer so that an
// absent field can be told apart from a present one during binding.
type ChatRequest struct {
	Message *string `json:"message" binding:"required"`
}
