package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupDisabled(t *testing.T) {
	for _, cfg := range []CozeLoopConfig{
		{},
		{APIToken: "token"},
		{WorkspaceID: "ws"},
	} {
		assert.False(t, cfg.Enabled())

		closeFn, err := Setup(context.Background(), cfg)
		require.NoError(t, err)
		require.NotNil(t, closeFn)
		closeFn(context.Background())
	}
}

func TestEnabled(t *testing.T) {
	assert.True(t, CozeLoopConfig{APIToken: "token", WorkspaceID: "ws"}.Enabled())
}
