package models

// Roles accepted by the generation API in a chat history.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Part is one text fragment of a history entry.
type Part struct {
	Text string `json:"text"`
}

// Content is a single history entry in the shape the generation API expects.
type Content struct {
	Role  string `json:"role"` // "user" or "model"
	Parts []Part `json:"parts"`
}

// ChatRequest is the payload sent to the chat endpoint.
type ChatRequest struct {
	Message string    `json:"message"`
	History []Content `json:"history,omitempty"`
}

// ChatResponse is the reply from the AI chat.
type ChatResponse struct {
	Response string `json:"response"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}
