package providers

import (
	"context"
	"fmt"
	"strings"

	geminiModel "github.com/cloudwego/eino-ext/components/model/gemini"
	openaiModel "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino-ext/components/model/qwen"
	"github.com/cloudwego/eino/components/model"
	"google.golang.org/genai"
)

// Supported provider names.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderQwen   = "qwen"
)

const (
	defaultOpenAIModel = "gpt-4o-mini"
	defaultGeminiModel = "gemini-2.0-flash"
	defaultQwenModel   = "qwen-plus"
	defaultQwenBaseURL = "https://dashscope.aliyuncs.com/compatible-mode/v1"
)

// ChatModelConfig defines the configuration for creating a chat model.
type ChatModelConfig struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
}

// NewChatModel creates a tool-calling chat model for the configured provider.
// An empty provider selects OpenAI.
func NewChatModel(ctx context.Context, config *ChatModelConfig) (model.ToolCallingChatModel, error) {
	if config == nil {
		return nil, fmt.Errorf("chat model config is nil")
	}
	if config.APIKey == "" {
		return nil, fmt.Errorf("API key is required in config")
	}

	switch strings.ToLower(config.Provider) {
	case "", ProviderOpenAI:
		return newOpenAIModel(ctx, config)
	case ProviderGemini:
		return newGeminiModel(ctx, config)
	case ProviderQwen:
		return newQwenModel(ctx, config)
	default:
		return nil, fmt.Errorf("unsupported provider %q", config.Provider)
	}
}

// newOpenAIModel creates an OpenAI (or OpenAI-compatible) chat model.
// An empty BaseURL uses the official OpenAI endpoint.
func newOpenAIModel(ctx context.Context, config *ChatModelConfig) (model.ToolCallingChatModel, error) {
	modelName := config.Model
	if modelName == "" {
		modelName = defaultOpenAIModel
	}

	return openaiModel.NewChatModel(ctx, &openaiModel.ChatModelConfig{
		APIKey:  config.APIKey,
		BaseURL: config.BaseURL,
		Model:   modelName,
	})
}

func newGeminiModel(ctx context.Context, config *ChatModelConfig) (model.ToolCallingChatModel, error) {
	modelName := config.Model
	if modelName == "" {
		modelName = defaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return geminiModel.NewChatModel(ctx, &geminiModel.Config{
		Client: client,
		Model:  modelName,
	})
}

func newQwenModel(ctx context.Context, config *ChatModelConfig) (model.ToolCallingChatModel, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultQwenBaseURL
	}

	modelName := config.Model
	if modelName == "" {
		modelName = defaultQwenModel
	}

	return qwen.NewChatModel(ctx, &qwen.ChatModelConfig{
		APIKey:  config.APIKey,
		BaseURL: baseURL,
		Model:   modelName,
	})
}
