package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

const describeSystemPrompt = "You are a helpful book assistant. Write one concise sentence describing the book."

// Describer produces a short description of a book.
type Describer interface {
	Describe(ctx context.Context, title, author string) (string, error)
}

// ChatDescriber asks a chat model for a one-sentence description.
type ChatDescriber struct {
	model model.BaseChatModel
}

// NewChatDescriber creates a describer backed by chatModel.
func NewChatDescriber(chatModel model.BaseChatModel) *ChatDescriber {
	return &ChatDescriber{model: chatModel}
}

// Describe issues exactly one Generate call. An empty answer is not an error.
func (d *ChatDescriber) Describe(ctx context.Context, title, author string) (string, error) {
	msgs := []*schema.Message{
		schema.SystemMessage(describeSystemPrompt),
		schema.UserMessage(fmt.Sprintf("Describe the book %s by %s in one sentence.", title, author)),
	}

	out, err := d.model.Generate(ctx, msgs)
	if err != nil {
		return "", &ExternalCallError{Op: "describe", Err: err}
	}
	if out == nil {
		return "", nil
	}
	return strings.TrimSpace(out.Content), nil
}
