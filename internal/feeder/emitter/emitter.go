package emitter

import (
	"context"
	"time"

	"github.com/kazakovdmitriy/go-clipboard-feeder/internal/feeder/interfaces"
	"github.com/kazakovdmitriy/go-clipboard-feeder/internal/model"
	"go.uber.org/zap"
)

// eventEmitter прогоняет строго последовательный цикл событий:
// сформировать полезную нагрузку, записать в буфер, подождать, повторить
type eventEmitter struct {
	clip      interfaces.Clipboard
	clock     interfaces.Clock
	publisher interfaces.EventPublisher
	count     int
	delay     time.Duration
	label     string
	logger    *zap.Logger
}

// NewEventEmitter создает эмиттер событий
func NewEventEmitter(
	clip interfaces.Clipboard,
	clk interfaces.Clock,
	publisher interfaces.EventPublisher,
	count int,
	delay time.Duration,
	label string,
	logger *zap.Logger,
) interfaces.EventEmitter {
	return &eventEmitter{
		clip:      clip,
		clock:     clk,
		publisher: publisher,
		count:     count,
		delay:     delay,
		label:     label,
		logger:    logger,
	}
}

// Run выполняет все итерации с 1 по count включительно.
// Сбой записи в буфер логируется и считается, но не прерывает прогон.
// Отмена контекста - единственный способ выйти раньше; в этом случае
// завершающее сообщение не выводится.
func (e *eventEmitter) Run(ctx context.Context) model.Summary {
	e.logger.Info("starting event run",
		zap.Int("count", e.count),
		zap.Duration("delay", e.delay),
		zap.String("label", e.label),
		zap.String("clipboard", e.clip.Name()),
	)

	var summary model.Summary

	for index := 1; index <= e.count; index++ {
		select {
		case <-ctx.Done():
			summary.Interrupted = true
			e.logger.Info("run interrupted",
				zap.Int("last_index", index-1),
				zap.Int("attempted", summary.Attempted),
				zap.Int("failed", summary.Failed),
			)
			return summary
		default:
		}

		e.logger.Info("copying test item", zap.Int("index", index))

		event := model.NewEvent(index, e.label, e.clock.Now())

		if err := e.clip.Set(ctx, event.Payload); err != nil {
			event.Failed = true
			e.logger.Warn("clipboard write failed",
				zap.Int("index", index),
				zap.Error(err),
			)
		}

		summary.Attempted++
		if event.Failed {
			summary.Failed++
		}

		if e.publisher != nil {
			e.publisher.Publish(event)
		}

		// Задержка только между итерациями, после последней не ждем
		if index < e.count && e.delay > 0 {
			if err := e.clock.Sleep(ctx, e.delay); err != nil {
				summary.Interrupted = true
				e.logger.Info("run interrupted during delay",
					zap.Int("last_index", index),
					zap.Int("attempted", summary.Attempted),
					zap.Int("failed", summary.Failed),
				)
				return summary
			}
		}
	}

	e.logger.Info("done",
		zap.Int("attempted", summary.Attempted),
		zap.Int("failed", summary.Failed),
	)

	return summary
}
