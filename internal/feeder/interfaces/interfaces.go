package interfaces

import (
	"context"
	"time"

	"github.com/kazakovdmitriy/go-clipboard-feeder/internal/model"
)

// Clipboard интерфейс для записи строки в системный буфер обмена
type Clipboard interface {
	Set(ctx context.Context, text string) error
	Name() string
}

// Clock интерфейс для времени и задержек между итерациями
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

// EventEmitter интерфейс основного цикла эмиттера
type EventEmitter interface {
	Run(ctx context.Context) model.Summary
}

// EventPublisher интерфейс для рассылки событий наблюдателям
type EventPublisher interface {
	Publish(event model.Event)
}
