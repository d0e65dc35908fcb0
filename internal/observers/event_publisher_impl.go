package observers

import (
	"sync"

	"github.com/kazakovdmitriy/go-clipboard-feeder/internal/model"
)

// EventPublisherImpl рассылает события синхронно: цикл эмиттера
// строго последовательный, наблюдатели отрабатывают между итерациями
type EventPublisherImpl struct {
	observers []EventObserver
	mu        sync.RWMutex
}

func NewEventPublisher() *EventPublisherImpl {
	return &EventPublisherImpl{
		observers: make([]EventObserver, 0),
	}
}

func (p *EventPublisherImpl) Publish(event model.Event) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, observer := range p.observers {
		observer.OnEventEmitted(event)
	}
}

func (p *EventPublisherImpl) Register(observer EventObserver) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observers = append(p.observers, observer)
}
