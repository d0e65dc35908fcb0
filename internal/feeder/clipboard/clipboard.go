// Package clipboard содержит реализации записи в системный буфер обмена.
package clipboard

import (
	"context"
	"fmt"

	"github.com/kazakovdmitriy/go-clipboard-feeder/internal/config"
	"github.com/kazakovdmitriy/go-clipboard-feeder/internal/feeder/interfaces"
	"go.uber.org/zap"
)

// Resolve выбирает бэкенд по конфигурации.
// Ошибка здесь означает что процесс не должен стартовать вообще:
// разовые сбои записи обрабатываются позже, внутри цикла.
func Resolve(cfg *config.FeederFlags, logger *zap.Logger) (interfaces.Clipboard, error) {
	switch cfg.Backend {
	case config.BackendWlCopy:
		return NewCommandClipboard(cfg.ClipboardCmd)
	case config.BackendAuto:
		cmd, err := NewCommandClipboard(cfg.ClipboardCmd)
		if err == nil {
			return cmd, nil
		}
		logger.Warn("clipboard command not found, falling back to portable backend",
			zap.String("command", cfg.ClipboardCmd),
			zap.Error(err),
		)
		return NewPortableClipboard(), nil
	case config.BackendPortable:
		return NewPortableClipboard(), nil
	case config.BackendNoop:
		return NewNoopClipboard(), nil
	default:
		return nil, fmt.Errorf("unknown clipboard backend %q", cfg.Backend)
	}
}

// noopClipboard молча проглатывает полезную нагрузку
type noopClipboard struct{}

func NewNoopClipboard() interfaces.Clipboard {
	return &noopClipboard{}
}

func (n *noopClipboard) Set(_ context.Context, _ string) error {
	return nil
}

func (n *noopClipboard) Name() string {
	return "noop"
}
