package clipboard

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/kazakovdmitriy/go-clipboard-feeder/internal/feeder/interfaces"
)

// commandClipboard вызывает внешнюю утилиту (по умолчанию wl-copy),
// передавая содержимое буфера единственным аргументом
type commandClipboard struct {
	path string
	name string
}

// NewCommandClipboard резолвит бинарник через LookPath.
// Отсутствие бинарника - единственная причина не стартовать процесс.
func NewCommandClipboard(command string) (interfaces.Clipboard, error) {
	path, err := exec.LookPath(command)
	if err != nil {
		return nil, fmt.Errorf("clipboard command %q not found: %w", command, err)
	}

	return &commandClipboard{
		path: path,
		name: command,
	}, nil
}

func (c *commandClipboard) Set(ctx context.Context, text string) error {
	cmd := exec.CommandContext(ctx, c.path, text)

	out, err := cmd.CombinedOutput()
	if err != nil {
		trimmed := strings.TrimSpace(string(out))
		if trimmed != "" {
			return fmt.Errorf("%s failed: %w: %s", c.name, err, trimmed)
		}
		return fmt.Errorf("%s failed: %w", c.name, err)
	}

	return nil
}

func (c *commandClipboard) Name() string {
	return c.name
}
