package feeder

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/kazakovdmitriy/go-clipboard-feeder/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestApp_RunWithNoopBackend(t *testing.T) {
	cfg := &config.FeederFlags{
		Count:   3,
		Delay:   0,
		Label:   "X",
		Backend: config.BackendNoop,
	}

	app := NewApp(cfg, zaptest.NewLogger(t))

	ctx := context.Background()
	require.NoError(t, app.Initialize(ctx))
	defer app.Close()

	summary := app.Run(ctx)

	assert.Equal(t, 3, summary.Attempted)
	assert.Equal(t, 0, summary.Failed)
	assert.False(t, summary.Interrupted)
}

func TestApp_WritesEventLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")

	cfg := &config.FeederFlags{
		Count:    2,
		Delay:    0,
		Label:    "Test Event",
		Backend:  config.BackendNoop,
		EventLog: path,
	}

	app := NewApp(cfg, zaptest.NewLogger(t))

	ctx := context.Background()
	require.NoError(t, app.Initialize(ctx))

	summary := app.Run(ctx)
	app.Close()

	assert.Equal(t, 2, summary.Attempted)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	lines := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines++
	}
	require.NoError(t, scanner.Err())
	assert.Equal(t, 2, lines)
}

func TestApp_InitializeFailsOnMissingCommand(t *testing.T) {
	cfg := &config.FeederFlags{
		Count:        1,
		Label:        "X",
		Backend:      config.BackendWlCopy,
		ClipboardCmd: "definitely-not-a-real-binary-xyz",
	}

	app := NewApp(cfg, zaptest.NewLogger(t))

	err := app.Initialize(context.Background())
	assert.Error(t, err)
}
