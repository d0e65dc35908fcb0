package model

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewEvent_PayloadFormat(t *testing.T) {
	now := time.Date(2025, 8, 25, 9, 5, 7, 0, time.UTC)

	event := NewEvent(42, "Test Event", now)

	assert.Equal(t, 42, event.Index)
	assert.Equal(t, "Test Event 42 - 09:05:07", event.Payload)
	assert.Equal(t, now, event.Timestamp)
	assert.Equal(t, now.UnixMilli(), event.Ts)
	assert.False(t, event.Failed)
}

func TestNewEvent_TimeOfDayIsParseable(t *testing.T) {
	now := time.Date(2025, 8, 25, 23, 59, 59, 0, time.UTC)

	event := NewEvent(1, "X", now)

	re := regexp.MustCompile(`^X 1 - (\d{2}:\d{2}:\d{2})$`)
	match := re.FindStringSubmatch(event.Payload)
	assert.NotNil(t, match)

	_, err := time.Parse("15:04:05", match[1])
	assert.NoError(t, err)
}

func TestKindFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    ContentKind
	}{
		{"plain text", "Test Event 1 - 10:00:00", KindText},
		{"http url", "http://example.com", KindURL},
		{"https url", "https://github.com/rust-lang/rust", KindURL},
		{"go code", "func main() {}", KindCode},
		{"file path", "/etc/hosts", KindFile},
		{"password like", "Pa$$word42!", KindPassword},
		{"empty", "", KindText},
		{"long token without specials", "abcdefghijklmnopqrstuvwxyz", KindText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindFromContent(tt.content))
		})
	}
}
