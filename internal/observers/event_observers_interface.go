package observers

import (
	"github.com/kazakovdmitriy/go-clipboard-feeder/internal/model"
)

// EventObserver - интерфейс для конкретных наблюдателей
type EventObserver interface {
	OnEventEmitted(event model.Event)
}
