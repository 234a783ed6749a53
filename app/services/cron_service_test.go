package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextReminderDelayBeforeHour(t *testing.T) {
	now := time.Date(2026, 8, 31, 6, 30, 0, 0, time.UTC)

	delay := NextReminderDelay(now, 8)
	assert.Equal(t, 90*time.Minute, delay)
}

func TestNextReminderDelayAfterHour(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	delay := NextReminderDelay(now, 8)
	assert.Equal(t, 23*time.Hour, delay)
}

// A start exactly on the reminder hour schedules tomorrow's run rather
// than firing immediately
func TestNextReminderDelayOnTheHour(t *testing.T) {
	now := time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)

	delay := NextReminderDelay(now, 8)
	assert.Equal(t, 24*time.Hour, delay)
}
