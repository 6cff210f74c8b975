package dtos

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Message             string        `json:"message"`
	ConversationHistory []ChatMessage `json:"conversationHistory"`
}

type ChatResponse struct {
	Response string `json:"response"`
	Success  bool   `json:"success"`
}

// ChatErrorResponse is the chat endpoint's own error envelope.
type ChatErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
