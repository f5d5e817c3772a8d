package agent

import (
	"context"
	"errors"
	"log"

	"bookrec/llm/tools"

	"github.com/cloudwego/eino/adk"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/compose"
)

// BookAgentPrompt tells the model to hand recommendation requests to the tool.
const BookAgentPrompt = `You are a book recommendation agent. When the user asks for a recommendation, you MUST use the ` + tools.RecommendBookToolName + ` tool.`

// BookAgentConfig holds dependencies for the book recommendation agent.
type BookAgentConfig struct {
	ChatModel     model.ToolCallingChatModel
	RecommendTool tool.InvokableTool
}

// NewBookAgent creates the agent. The recommend tool is its only tool and
// returns directly, so a tool call ends the turn with the tool's text.
func NewBookAgent(ctx context.Context, config *BookAgentConfig) (adk.Agent, error) {
	if config == nil {
		return nil, errors.New("config is nil")
	}
	if config.ChatModel == nil || config.RecommendTool == nil {
		return nil, errors.New("chat model and recommend tool are required")
	}

	agent, err := adk.NewChatModelAgent(ctx, &adk.ChatModelAgentConfig{
		Name:        "BookRecommender",
		Description: "An agent that recommends a book from the local catalog by genre.",
		Instruction: BookAgentPrompt,
		Model:       config.ChatModel,
		ToolsConfig: adk.ToolsConfig{
			ToolsNodeConfig: compose.ToolsNodeConfig{
				Tools: []tool.BaseTool{config.RecommendTool},
			},
			ReturnDirectly: map[string]bool{
				tools.RecommendBookToolName: true,
			},
		},
	})
	if err != nil {
		log.Printf("Failed to create BookRecommender agent: %v", err)
		return nil, err
	}

	return agent, nil
}
