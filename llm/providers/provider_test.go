package providers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChatModelValidation(t *testing.T) {
	ctx := context.Background()

	_, err := NewChatModel(ctx, nil)
	assert.Error(t, err)

	_, err = NewChatModel(ctx, &ChatModelConfig{Provider: ProviderOpenAI})
	assert.ErrorContains(t, err, "API key is required")

	_, err = NewChatModel(ctx, &ChatModelConfig{Provider: "llama", APIKey: "k"})
	assert.ErrorContains(t, err, `unsupported provider "llama"`)
}

func TestNewChatModelOpenAI(t *testing.T) {
	for _, provider := range []string{"", "openai", "OpenAI"} {
		m, err := NewChatModel(context.Background(), &ChatModelConfig{Provider: provider, APIKey: "sk-test"})
		require.NoError(t, err)
		assert.NotNil(t, m)
	}
}
