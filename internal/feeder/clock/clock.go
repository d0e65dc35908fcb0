package clock

import (
	"context"
	"time"

	"github.com/kazakovdmitriy/go-clipboard-feeder/internal/feeder/interfaces"
)

// systemClock - реальные часы на основе пакета time
type systemClock struct{}

// NewSystemClock создает часы, используемые вне тестов
func NewSystemClock() interfaces.Clock {
	return &systemClock{}
}

func (c *systemClock) Now() time.Time {
	return time.Now()
}

// Sleep ждет d или отмены контекста, смотря что наступит раньше
func (c *systemClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
