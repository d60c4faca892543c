package model

type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

type ChatInput struct {
	Messages []ChatMessage `json:"messages" validate:"required,min=1,max=30,dive"`
}

type ChatUsage struct {
	PromptTokens     int32 `json:"prompt_tokens"`
	CompletionTokens int32 `json:"completion_tokens"`
	TotalTokens      int32 `json:"total_tokens"`
}

type ChatReply struct {
	Message ChatMessage `json:"message"`
	Usage   ChatUsage   `json:"usage"`
}
