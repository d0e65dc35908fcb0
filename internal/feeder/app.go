package feeder

import (
	"context"

	"github.com/google/uuid"
	"github.com/kazakovdmitriy/go-clipboard-feeder/internal/config"
	"github.com/kazakovdmitriy/go-clipboard-feeder/internal/feeder/clipboard"
	"github.com/kazakovdmitriy/go-clipboard-feeder/internal/feeder/clock"
	"github.com/kazakovdmitriy/go-clipboard-feeder/internal/feeder/emitter"
	"github.com/kazakovdmitriy/go-clipboard-feeder/internal/feeder/interfaces"
	"github.com/kazakovdmitriy/go-clipboard-feeder/internal/model"
	"github.com/kazakovdmitriy/go-clipboard-feeder/internal/observers"
	"go.uber.org/zap"
)

// App представляет основное приложение фидера
type App struct {
	config  *config.FeederFlags
	logger  *zap.Logger
	clip    interfaces.Clipboard
	emitter interfaces.EventEmitter
	fileObs *observers.FileObserver
	counter *observers.CounterObserver
}

// NewApp создает новое приложение фидера
func NewApp(cfg *config.FeederFlags, logger *zap.Logger) *App {
	return &App{
		config: cfg,
		logger: logger,
	}
}

// Initialize создает и настраивает все компоненты приложения
func (a *App) Initialize(_ context.Context) error {
	a.logger = a.logger.With(zap.String("run_id", uuid.NewString()))

	a.logger.Info("initializing feeder",
		zap.Int("count", a.config.Count),
		zap.Duration("delay", a.config.Delay),
		zap.String("backend", a.config.Backend),
	)

	clip, err := clipboard.Resolve(a.config, a.logger)
	if err != nil {
		return err
	}
	a.clip = clip

	publisher := observers.NewEventPublisher()

	a.counter = observers.NewCounterObserver()
	publisher.Register(a.counter)
	publisher.Register(observers.NewEventLogger(a.logger))

	if a.config.EventLog != "" {
		fileObs, err := observers.NewFileObserver(a.config.EventLog, a.logger)
		if err != nil {
			return err
		}
		a.fileObs = fileObs
		publisher.Register(fileObs)
	}

	a.emitter = emitter.NewEventEmitter(
		a.clip,
		clock.NewSystemClock(),
		publisher,
		a.config.Count,
		a.config.Delay,
		a.config.Label,
		a.logger,
	)

	a.logger.Info("feeder initialized", zap.String("clipboard", a.clip.Name()))

	return nil
}

// Run запускает цикл эмиттера и возвращает итог прогона
func (a *App) Run(ctx context.Context) model.Summary {
	return a.emitter.Run(ctx)
}

// Close освобождает ресурсы приложения
func (a *App) Close() {
	if a.fileObs != nil {
		if err := a.fileObs.Close(); err != nil {
			a.logger.Warn("failed to close event log", zap.Error(err))
		}
	}
}
