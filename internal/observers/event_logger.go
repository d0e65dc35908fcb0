package observers

import (
	"github.com/kazakovdmitriy/go-clipboard-feeder/internal/model"
	"go.uber.org/zap"
)

type EventLogger struct {
	logger *zap.Logger
}

func NewEventLogger(logger *zap.Logger) *EventLogger {
	return &EventLogger{
		logger: logger,
	}
}

func (e *EventLogger) OnEventEmitted(event model.Event) {
	e.logger.Debug("event emitted",
		zap.Int("index", event.Index),
		zap.String("payload", event.Payload),
		zap.String("kind", string(event.Kind)),
		zap.Bool("failed", event.Failed),
	)
}
