package domain

// ChatMessageRole represents the author of a chat message
type ChatMessageRole string

// ChatMessageRoleUser - every prompt is sent as a single user message
const ChatMessageRoleUser ChatMessageRole = "user"

// ChatMessage is one message sent to the completion capability
type ChatMessage struct {
	Role    ChatMessageRole
	Content string
}

// ChatCompletionRequest - Domain request DTO for a completion call
type ChatCompletionRequest struct {
	Messages    []ChatMessage
	Temperature *float64 // Sampling temperature, provider default when nil
}

// ChatCompletionResponse - Domain response DTO for a completion call
type ChatCompletionResponse struct {
	Content          string
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// ModelInfo describes a model exposed by the completion endpoint
type ModelInfo struct {
	ID      string
	Object  string
	OwnedBy string
}

// NewUserPrompt wraps a single prompt as a one-message completion request
func NewUserPrompt(prompt string, temperature float64) ChatCompletionRequest {
	return ChatCompletionRequest{
		Messages:    []ChatMessage{{Role: ChatMessageRoleUser, Content: prompt}},
		Temperature: &temperature,
	}
}
