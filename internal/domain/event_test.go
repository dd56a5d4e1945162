package domain

import (
	"testing"
	"time"
)

func intPtr(n int) *int { return &n }

func testEvent() *Event {
	start := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	return &Event{
		ID:                   "evt-1",
		MosqueID:             "msq-1",
		Title:                "Kuliah Maghrib",
		StartDate:            start,
		EndDate:              start.AddDate(0, 0, 1),
		RegistrationRequired: true,
		Status:               EventStatusActive,
	}
}

func TestIsRegistrationOpen(t *testing.T) {
	start := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	deadline := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		required bool
		deadline *time.Time
		now      time.Time
		want     bool
	}{
		{"registration not required", false, nil, start.AddDate(0, 0, -30), false},
		{"not required even with deadline", false, &deadline, deadline.AddDate(0, 0, -1), false},
		{"before deadline", true, &deadline, deadline.AddDate(0, 0, -1), true},
		{"exactly at deadline is inclusive", true, &deadline, deadline, true},
		{"after deadline", true, &deadline, deadline.Add(time.Second), false},
		{"no deadline, before start", true, nil, start.AddDate(0, 0, -1), true},
		{"no deadline, exactly at start", true, nil, start, true},
		{"no deadline, after start", true, nil, start.Add(time.Second), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := testEvent()
			e.RegistrationRequired = tt.required
			e.RegistrationDeadline = tt.deadline

			if got := e.IsRegistrationOpen(tt.now); got != tt.want {
				t.Errorf("IsRegistrationOpen(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestIsFull(t *testing.T) {
	tests := []struct {
		name  string
		max   *int
		count int
		want  bool
	}{
		{"unlimited never full", nil, 0, false},
		{"unlimited never full at high count", nil, 100000, false},
		{"under limit", intPtr(10), 9, false},
		{"exactly at limit closes", intPtr(10), 10, true},
		{"over limit", intPtr(10), 11, true},
		{"zero limit is always full", intPtr(0), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := testEvent()
			e.MaxParticipants = tt.max

			if got := e.IsFull(tt.count); got != tt.want {
				t.Errorf("IsFull(%d) = %v, want %v", tt.count, got, tt.want)
			}
		})
	}
}

func TestRemainingSlots(t *testing.T) {
	e := testEvent()

	if got := e.RemainingSlots(5); got != nil {
		t.Errorf("expected nil remaining for unlimited event, got %d", *got)
	}

	e.MaxParticipants = intPtr(10)

	if got := e.RemainingSlots(3); got == nil || *got != 7 {
		t.Errorf("RemainingSlots(3) = %v, want 7", got)
	}
	if got := e.RemainingSlots(10); got == nil || *got != 0 {
		t.Errorf("RemainingSlots(10) = %v, want 0", got)
	}
	// Overbooked events report zero, never negative.
	if got := e.RemainingSlots(12); got == nil || *got != 0 {
		t.Errorf("RemainingSlots(12) = %v, want 0", got)
	}
}

func TestEventScheduleChecks(t *testing.T) {
	e := testEvent()
	before := e.StartDate.AddDate(0, 0, -1)
	during := e.StartDate.Add(12 * time.Hour)
	after := e.EndDate.AddDate(0, 0, 1)

	if !e.IsUpcoming(before) || e.IsUpcoming(during) {
		t.Error("IsUpcoming mismatch")
	}
	if !e.IsOngoing(during) || e.IsOngoing(before) || e.IsOngoing(after) {
		t.Error("IsOngoing mismatch")
	}
	if !e.IsPast(after) || e.IsPast(during) {
		t.Error("IsPast mismatch")
	}
}
