package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nurikhwanidris/urusmasjid/internal/domain"
	"github.com/nurikhwanidris/urusmasjid/internal/dto"
)

func setupAnnouncementFixture() (*mockAnnouncementRepo, AnnouncementService) {
	announcementRepo := newMockAnnouncementRepo()
	mosqueRepo := newMockMosqueRepo()
	mosqueRepo.mosques["msq-1"] = &domain.Mosque{
		ID:                 "msq-1",
		Name:               "Masjid Al-Hidayah",
		VerificationStatus: domain.MosqueStatusVerified,
	}
	return announcementRepo, NewAnnouncementService(announcementRepo, mosqueRepo)
}

func TestCreateAnnouncement_DraftByDefault(t *testing.T) {
	_, svc := setupAnnouncementFixture()

	a, err := svc.Create(context.Background(), "msq-1", &dto.CreateAnnouncementRequest{
		Title:   "Gotong-royong perdana",
		Content: "Sabtu ini selepas Subuh.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Status != domain.AnnouncementStatusDraft {
		t.Errorf("expected draft status, got %s", a.Status)
	}
	if a.PublishedAt != nil {
		t.Error("draft should not have a published timestamp")
	}
	if a.Type != domain.AnnouncementTypeGeneral {
		t.Errorf("type should default to general, got %s", a.Type)
	}
}

func TestCreateAnnouncement_PublishImmediately(t *testing.T) {
	repo, svc := setupAnnouncementFixture()

	a, err := svc.Create(context.Background(), "msq-1", &dto.CreateAnnouncementRequest{
		Title:   "Kematian",
		Content: "Solat jenazah selepas Zohor.",
		Type:    domain.AnnouncementTypeEmergency,
		Publish: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Status != domain.AnnouncementStatusPublished {
		t.Errorf("expected published status, got %s", a.Status)
	}
	if a.PublishedAt == nil {
		t.Fatal("published announcement must have a published timestamp")
	}

	visible, err := svc.ListVisible(context.Background(), "msq-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(visible) != 1 {
		t.Errorf("expected 1 visible announcement, got %d", len(visible))
	}
	if len(repo.announcements) != 1 {
		t.Errorf("expected 1 stored announcement, got %d", len(repo.announcements))
	}
}

func TestCreateAnnouncement_MosqueNotFound(t *testing.T) {
	_, svc := setupAnnouncementFixture()

	_, err := svc.Create(context.Background(), "missing", &dto.CreateAnnouncementRequest{
		Title:   "Test",
		Content: "Test",
	})
	if !errors.Is(err, ErrMosqueNotFound) {
		t.Errorf("expected ErrMosqueNotFound, got %v", err)
	}
}

func TestUpdateAnnouncement_PublishSetsTimestampOnce(t *testing.T) {
	_, svc := setupAnnouncementFixture()

	a, err := svc.Create(context.Background(), "msq-1", &dto.CreateAnnouncementRequest{
		Title:   "Kuliah bulanan",
		Content: "Ustaz jemputan.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	published := domain.AnnouncementStatusPublished
	a, err = svc.Update(context.Background(), a.ID, &dto.UpdateAnnouncementRequest{Status: &published})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.PublishedAt == nil {
		t.Fatal("publishing must set the published timestamp")
	}
	firstPublished := *a.PublishedAt

	// Archive and re-publish; the original timestamp must survive.
	archived := domain.AnnouncementStatusArchived
	if _, err = svc.Update(context.Background(), a.ID, &dto.UpdateAnnouncementRequest{Status: &archived}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, err = svc.Update(context.Background(), a.ID, &dto.UpdateAnnouncementRequest{Status: &published})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !a.PublishedAt.Equal(firstPublished) {
		t.Errorf("published timestamp changed on re-publish: %v != %v", a.PublishedAt, firstPublished)
	}
}

func TestListVisible_ExcludesDraftAndExpired(t *testing.T) {
	repo, svc := setupAnnouncementFixture()

	now := time.Now()
	past := now.Add(-time.Hour)
	repo.announcements["a-draft"] = &domain.Announcement{
		ID: "a-draft", MosqueID: "msq-1", Status: domain.AnnouncementStatusDraft,
	}
	repo.announcements["a-expired"] = &domain.Announcement{
		ID: "a-expired", MosqueID: "msq-1", Status: domain.AnnouncementStatusPublished,
		PublishedAt: &past, ExpiresAt: &past,
	}
	repo.announcements["a-live"] = &domain.Announcement{
		ID: "a-live", MosqueID: "msq-1", Status: domain.AnnouncementStatusPublished,
		PublishedAt: &past,
	}

	visible, err := svc.ListVisible(context.Background(), "msq-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(visible) != 1 || visible[0].ID != "a-live" {
		t.Errorf("expected only a-live to be visible, got %d entries", len(visible))
	}
}

func TestDeleteAnnouncement_NotFound(t *testing.T) {
	_, svc := setupAnnouncementFixture()

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, ErrAnnouncementNotFound) {
		t.Errorf("expected ErrAnnouncementNotFound, got %v", err)
	}
}
