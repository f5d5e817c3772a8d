package trace

import (
	"context"
	"fmt"
	"log"

	clc "github.com/cloudwego/eino-ext/callbacks/cozeloop"
	"github.com/cloudwego/eino/callbacks"
	"github.com/coze-dev/cozeloop-go"
)

// CozeLoopConfig holds the credentials for CozeLoop tracing.
type CozeLoopConfig struct {
	APIToken    string
	WorkspaceID string
}

// Enabled reports whether both credentials are present.
func (c CozeLoopConfig) Enabled() bool {
	return c.APIToken != "" && c.WorkspaceID != ""
}

// Setup registers a global CozeLoop callback handler when configured.
// The returned close function flushes pending spans; it is never nil.
func Setup(ctx context.Context, cfg CozeLoopConfig) (func(context.Context), error) {
	if !cfg.Enabled() {
		return func(context.Context) {}, nil
	}

	client, err := cozeloop.NewClient(
		cozeloop.WithAPIToken(cfg.APIToken),
		cozeloop.WithWorkspaceID(cfg.WorkspaceID),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create cozeloop client: %w", err)
	}

	callbacks.AppendGlobalHandlers(clc.NewLoopHandler(client))
	log.Printf("cozeloop tracing enabled (workspace %s)", cfg.WorkspaceID)

	return func(ctx context.Context) {
		client.Close(ctx)
	}, nil
}
