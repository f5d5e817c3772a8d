package agent

import (
	"context"
	"fmt"
	"log"

	"github.com/cloudwego/eino-examples/adk/common/prints"
	"github.com/cloudwego/eino/adk"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"
)

// Turn 单轮对话的结果
type Turn struct {
	// ToolOutputs 按调用顺序排列的工具输出
	ToolOutputs []string
	// Reply 模型的文字回复（没有工具调用时使用）
	Reply string
}

// RuntimeConfig Runtime 的依赖
type RuntimeConfig struct {
	ChatModel     model.ToolCallingChatModel
	RecommendTool tool.InvokableTool
	// Verbose 打印每个 Agent 事件
	Verbose bool
}

// Runtime Agent 运行时。每次 Run 只发送当前这一条用户消息，不保留历史。
type Runtime struct {
	runner  *adk.Runner
	verbose bool
}

// NewRuntime 创建新的 Agent 运行时
func NewRuntime(ctx context.Context, config *RuntimeConfig) (*Runtime, error) {
	if config == nil {
		return nil, fmt.Errorf("runtime config is nil")
	}

	agt, err := NewBookAgent(ctx, &BookAgentConfig{
		ChatModel:     config.ChatModel,
		RecommendTool: config.RecommendTool,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	// 非流式：每轮等待完整结果
	runner := adk.NewRunner(ctx, adk.RunnerConfig{
		Agent:           agt,
		EnableStreaming: false,
	})

	return &Runtime{
		runner:  runner,
		verbose: config.Verbose,
	}, nil
}

// Run 运行 Agent 处理一条用户输入，阻塞直到本轮结束
func (r *Runtime) Run(ctx context.Context, userPrompt string) (*Turn, error) {
	iter := r.runner.Query(ctx, userPrompt)

	turn := &Turn{}
	for {
		event, ok := iter.Next()
		if !ok {
			break
		}
		if r.verbose {
			prints.Event(event)
		}
		if event.Err != nil {
			return nil, fmt.Errorf("agent run failed: %w", event.Err)
		}
		r.handleEvent(event, turn)
	}

	return turn, nil
}

// handleEvent 把事件中的消息归入 turn
func (r *Runtime) handleEvent(event *adk.AgentEvent, turn *Turn) {
	if event.Output == nil || event.Output.MessageOutput == nil {
		return
	}

	msg, err := event.Output.MessageOutput.GetMessage()
	if err != nil {
		log.Printf("failed to read agent message: %v", err)
		return
	}
	if msg == nil {
		return
	}

	switch msg.Role {
	case schema.Tool:
		turn.ToolOutputs = append(turn.ToolOutputs, msg.Content)
	case schema.Assistant:
		// 带工具调用的消息只是中间步骤
		if len(msg.ToolCalls) == 0 {
			turn.Reply = msg.Content
		}
	}
}
