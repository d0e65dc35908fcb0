package observers

import (
	"sync"

	"github.com/kazakovdmitriy/go-clipboard-feeder/internal/model"
)

// CounterObserver считает попытки и сбои для итогового отчета
type CounterObserver struct {
	attempted int
	failed    int
	mu        sync.Mutex
}

func NewCounterObserver() *CounterObserver {
	return &CounterObserver{}
}

func (c *CounterObserver) OnEventEmitted(event model.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.attempted++
	if event.Failed {
		c.failed++
	}
}

// Totals возвращает количество попыток и сбоев
func (c *CounterObserver) Totals() (attempted int, failed int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.attempted, c.failed
}
