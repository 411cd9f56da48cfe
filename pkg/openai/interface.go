package openai

import "context"

// IOpenAI defines the interface for the chat-completions client
type IOpenAI interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Complete(ctx context.Context, system, user string) (string, error)
}
