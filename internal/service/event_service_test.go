package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nurikhwanidris/urusmasjid/internal/domain"
	"github.com/nurikhwanidris/urusmasjid/internal/dto"
)

func setupEventFixture() (*mockEventRepo, *mockRegistrationRepo, *mockMosqueRepo, EventService) {
	eventRepo := newMockEventRepo()
	regRepo := newMockRegistrationRepo()
	mosqueRepo := newMockMosqueRepo()

	mosqueRepo.mosques["msq-1"] = &domain.Mosque{
		ID:                 "msq-1",
		Name:               "Masjid Al-Hidayah",
		VerificationStatus: domain.MosqueStatusVerified,
	}
	mosqueRepo.mosques["msq-pending"] = &domain.Mosque{
		ID:                 "msq-pending",
		Name:               "Surau An-Nur",
		VerificationStatus: domain.MosqueStatusPending,
	}

	svc := NewEventService(eventRepo, regRepo, mosqueRepo, "https://urusmasjid.my")
	return eventRepo, regRepo, mosqueRepo, svc
}

func validEventRequest() *dto.CreateEventRequest {
	start := time.Now().AddDate(0, 0, 14)
	return &dto.CreateEventRequest{
		Title:                "Kuliah Maghrib Mingguan",
		StartDate:            start,
		EndDate:              start,
		RegistrationRequired: true,
		CreatedBy:            "user-1",
	}
}

func TestCreateEvent(t *testing.T) {
	eventRepo, _, _, svc := setupEventFixture()

	resp, err := svc.Create(context.Background(), "msq-1", validEventRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != domain.EventStatusActive {
		t.Errorf("expected active status, got %s", resp.Status)
	}
	if len(eventRepo.events) != 1 {
		t.Errorf("expected 1 event, got %d", len(eventRepo.events))
	}
}

func TestCreateEvent_RequiresVerifiedMosque(t *testing.T) {
	_, _, _, svc := setupEventFixture()

	if _, err := svc.Create(context.Background(), "msq-pending", validEventRequest()); !errors.Is(err, ErrMosqueNotVerified) {
		t.Errorf("expected ErrMosqueNotVerified, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "missing", validEventRequest()); !errors.Is(err, ErrMosqueNotFound) {
		t.Errorf("expected ErrMosqueNotFound, got %v", err)
	}
}

func TestCreateEvent_RejectsBadDates(t *testing.T) {
	_, _, _, svc := setupEventFixture()

	req := validEventRequest()
	req.EndDate = req.StartDate.AddDate(0, 0, -1)
	if _, err := svc.Create(context.Background(), "msq-1", req); err == nil {
		t.Error("expected error when end date precedes start date")
	}

	req = validEventRequest()
	late := req.StartDate.AddDate(0, 0, 1)
	req.RegistrationDeadline = &late
	if _, err := svc.Create(context.Background(), "msq-1", req); err == nil {
		t.Error("expected error when deadline is after event start")
	}
}

func TestUpdateEvent_ValidatesMergedDates(t *testing.T) {
	eventRepo, _, _, svc := setupEventFixture()

	start := time.Now().AddDate(0, 0, 7)
	eventRepo.events["evt-1"] = &domain.Event{
		ID:        "evt-1",
		MosqueID:  "msq-1",
		Title:     "Kuliah Maghrib Mingguan",
		StartDate: start,
		EndDate:   start,
		Status:    domain.EventStatusActive,
	}

	// Moving only start_date past the stored end must be rejected.
	newStart := start.AddDate(0, 0, 3)
	if _, err := svc.Update(context.Background(), "evt-1", &dto.UpdateEventRequest{StartDate: &newStart}); err == nil {
		t.Error("expected error when patched start date passes the stored end date")
	}

	// A deadline after the (unchanged) start must be rejected too.
	late := start.AddDate(0, 0, 1)
	if _, err := svc.Update(context.Background(), "evt-1", &dto.UpdateEventRequest{RegistrationDeadline: &late}); err == nil {
		t.Error("expected error when deadline is after the event start")
	}

	// The stored event is untouched by the rejected patches.
	if !eventRepo.events["evt-1"].StartDate.Equal(start) {
		t.Error("rejected update must not change the stored event")
	}

	// A consistent patch still goes through.
	early := start.AddDate(0, 0, -1)
	if _, err := svc.Update(context.Background(), "evt-1", &dto.UpdateEventRequest{RegistrationDeadline: &early}); err != nil {
		t.Errorf("unexpected error on valid update: %v", err)
	}
}

func TestGetEvent_Tallies(t *testing.T) {
	eventRepo, regRepo, _, svc := setupEventFixture()

	max := 10
	eventRepo.events["evt-1"] = &domain.Event{
		ID:                   "evt-1",
		MosqueID:             "msq-1",
		Title:                "Gotong-royong",
		StartDate:            time.Now().AddDate(0, 0, 3),
		EndDate:              time.Now().AddDate(0, 0, 3),
		RegistrationRequired: true,
		MaxParticipants:      &max,
		Status:               domain.EventStatusActive,
	}
	regRepo.registrations["r1"] = &domain.Registration{ID: "r1", EventID: "evt-1", Status: domain.RegistrationStatusConfirmed}
	regRepo.registrations["r2"] = &domain.Registration{ID: "r2", EventID: "evt-1", Status: domain.RegistrationStatusCancelled}

	resp, err := svc.GetByID(context.Background(), "evt-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.RegisteredCount != 1 {
		t.Errorf("expected 1 active registration, got %d", resp.RegisteredCount)
	}
	if resp.RemainingSlots == nil || *resp.RemainingSlots != 9 {
		t.Errorf("expected 9 remaining, got %v", resp.RemainingSlots)
	}
	if !resp.RegistrationOpen {
		t.Error("expected registration open")
	}
}

func TestDeleteEvent(t *testing.T) {
	eventRepo, _, _, svc := setupEventFixture()

	eventRepo.events["evt-1"] = &domain.Event{ID: "evt-1", MosqueID: "msq-1", Status: domain.EventStatusActive}
	if err := svc.Delete(context.Background(), "evt-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(eventRepo.events) != 0 {
		t.Error("event not deleted")
	}
	if err := svc.Delete(context.Background(), "evt-1"); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound, got %v", err)
	}
}

func TestRegistrationURL(t *testing.T) {
	_, _, _, svc := setupEventFixture()

	want := "https://urusmasjid.my/events/evt-1/register"
	if got := svc.RegistrationURL("evt-1"); got != want {
		t.Errorf("RegistrationURL = %q, want %q", got, want)
	}
}
