package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreateEventRequestValidate(t *testing.T) {
	start := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	end := start.Add(4 * time.Hour)
	beforeStart := start.Add(-24 * time.Hour)
	afterStart := start.Add(time.Hour)
	one := 1
	zero := 0

	tests := []struct {
		name    string
		req     CreateEventRequest
		wantOK  bool
		wantMsg string
	}{
		{
			"valid",
			CreateEventRequest{Title: "Kuliah Maghrib", StartDate: start, EndDate: end},
			true, "",
		},
		{
			"missing title",
			CreateEventRequest{StartDate: start, EndDate: end},
			false, "Event title is required",
		},
		{
			"end before start",
			CreateEventRequest{Title: "Kuliah", StartDate: start, EndDate: beforeStart},
			false, "End date must not be before start date",
		},
		{
			"deadline after start",
			CreateEventRequest{Title: "Kuliah", StartDate: start, EndDate: end, RegistrationDeadline: &afterStart},
			false, "Registration deadline must not be after the event start",
		},
		{
			"deadline before start ok",
			CreateEventRequest{Title: "Kuliah", StartDate: start, EndDate: end, RegistrationDeadline: &beforeStart},
			true, "",
		},
		{
			"zero max participants",
			CreateEventRequest{Title: "Kuliah", StartDate: start, EndDate: end, MaxParticipants: &zero},
			false, "Max participants must be at least 1",
		},
		{
			"one participant ok",
			CreateEventRequest{Title: "Kuliah", StartDate: start, EndDate: end, MaxParticipants: &one},
			true, "",
		},
		{
			"online without url",
			CreateEventRequest{Title: "Kuliah", StartDate: start, EndDate: end, IsOnline: true},
			false, "Online events require an online URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := tt.req.Validate()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
