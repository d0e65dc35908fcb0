package model

import (
	"fmt"
	"time"
)

// Event - одно событие эмиттера, живет только в рамках своей итерации
type Event struct {
	Index     int         `json:"index"`
	Payload   string      `json:"payload"`
	Kind      ContentKind `json:"kind"`
	Timestamp time.Time   `json:"-"` // Внутреннее представление времени
	Ts        int64       `json:"ts"`
	Failed    bool        `json:"failed"`
}

// NewEvent собирает событие с полезной нагрузкой вида "{label} {index} - {HH:MM:SS}"
func NewEvent(index int, label string, now time.Time) Event {
	payload := fmt.Sprintf("%s %d - %s", label, index, now.Format("15:04:05"))

	return Event{
		Index:     index,
		Payload:   payload,
		Kind:      KindFromContent(payload),
		Timestamp: now,
		Ts:        now.UnixMilli(),
	}
}

// Summary - итог одного прогона эмиттера
type Summary struct {
	Attempted   int
	Failed      int
	Interrupted bool
}
