package shell

import (
	"context"
	"testing"
	"time"

	nerrors "github.com/nodescope/nodescope/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTrimsOutput(t *testing.T) {
	out, err := Run(context.Background(), "echo", "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestRunMissingTool(t *testing.T) {
	_, err := Run(context.Background(), "nodescope-no-such-tool")
	require.Error(t, err)
	assert.Equal(t, nerrors.ErrCodeToolMissing, nerrors.CodeOf(err))
}

func TestRunCommandFailed(t *testing.T) {
	_, err := Run(context.Background(), "false")
	require.Error(t, err)
	assert.Equal(t, nerrors.ErrCodeCommandFailed, nerrors.CodeOf(err))
}

func TestRunTimeout(t *testing.T) {
	_, err := RunTimeout(context.Background(), 50*time.Millisecond, "sleep", "5")
	require.Error(t, err)
	assert.Equal(t, nerrors.ErrCodeTimeout, nerrors.CodeOf(err))
}
