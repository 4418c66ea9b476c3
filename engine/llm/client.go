package llm

import "context"

// Chat message roles accepted on the passthrough endpoint.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single chat message sent to the model.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request describes a single-shot completion call. There is no retry or
// streaming: the call either returns a complete response or fails.
type Request struct {
	Messages    []Message `json:"messages"`
	Model       string    `json:"model"`
	Temperature float64   `json:"temperature"`
}

// Choice is one completion candidate returned by the model.
type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// Completion mirrors the chat-completion object shape clients expect from
// the passthrough endpoint.
type Completion struct {
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
}

// Content returns the text of the first choice, or "" when empty.
func (c *Completion) Content() string {
	if c == nil || len(c.Choices) == 0 {
		return ""
	}
	return c.Choices[0].Message.Content
}

// Client is the language-model capability consumed by the extraction and
// suggestion pipelines.
type Client interface {
	Generate(ctx context.Context, req *Request) (*Completion, error)
}
