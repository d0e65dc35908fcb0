package clipboard

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/kazakovdmitriy/go-clipboard-feeder/internal/feeder/interfaces"
)

// portableClipboard пишет в буфер через github.com/atotto/clipboard,
// который сам подбирает доступный системный инструмент
type portableClipboard struct{}

func NewPortableClipboard() interfaces.Clipboard {
	return &portableClipboard{}
}

func (p *portableClipboard) Set(_ context.Context, text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("portable clipboard write failed: %w", err)
	}
	return nil
}

func (p *portableClipboard) Name() string {
	return "portable"
}
