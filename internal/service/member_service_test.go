package service

import (
	"context"
	"errors"
	"testing"

	"github.com/nurikhwanidris/urusmasjid/internal/domain"
	"github.com/nurikhwanidris/urusmasjid/internal/dto"
)

func setupMemberFixture() (*mockMemberRepo, MemberService) {
	memberRepo := newMockMemberRepo()
	mosqueRepo := newMockMosqueRepo()
	mosqueRepo.mosques["msq-1"] = &domain.Mosque{
		ID:                 "msq-1",
		Name:               "Masjid Al-Hidayah",
		VerificationStatus: domain.MosqueStatusVerified,
	}
	return memberRepo, NewMemberService(memberRepo, mosqueRepo)
}

func TestApplyMembership(t *testing.T) {
	memberRepo, svc := setupMemberFixture()

	member, err := svc.Apply(context.Background(), "msq-1", &dto.CreateMemberRequest{
		FullName:    "Fatimah binti Omar",
		PhoneNumber: "0198765432",
		ICNumber:    "850505-10-1234",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if member.Status != domain.MemberStatusPending {
		t.Errorf("expected pending status, got %s", member.Status)
	}
	if len(memberRepo.members) != 1 {
		t.Errorf("expected 1 member, got %d", len(memberRepo.members))
	}
}

func TestApplyMembership_DuplicateByAnyIdentifier(t *testing.T) {
	_, svc := setupMemberFixture()

	base := &dto.CreateMemberRequest{
		FullName:    "Fatimah binti Omar",
		PhoneNumber: "0198765432",
		Email:       "fatimah@example.com",
		ICNumber:    "850505-10-1234",
	}
	if _, err := svc.Apply(context.Background(), "msq-1", base); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	duplicates := []*dto.CreateMemberRequest{
		{FullName: "Other Name", PhoneNumber: "0198765432"},
		{FullName: "Other Name", PhoneNumber: "0110000000", Email: "fatimah@example.com"},
		{FullName: "Other Name", PhoneNumber: "0110000000", ICNumber: "850505-10-1234"},
	}
	for i, dup := range duplicates {
		if _, err := svc.Apply(context.Background(), "msq-1", dup); !errors.Is(err, ErrMemberAlreadyExists) {
			t.Errorf("duplicate %d: expected ErrMemberAlreadyExists, got %v", i, err)
		}
	}
}

func TestApplyMembership_SamePersonDifferentMosque(t *testing.T) {
	memberRepo, svc := setupMemberFixture()

	// Dedup is scoped per mosque; the same person can join two mosques.
	memberRepo.members["other"] = &domain.Member{
		ID:          "other",
		MosqueID:    "msq-2",
		FullName:    "Fatimah binti Omar",
		PhoneNumber: "0198765432",
		Status:      domain.MemberStatusActive,
	}

	if _, err := svc.Apply(context.Background(), "msq-1", &dto.CreateMemberRequest{
		FullName:    "Fatimah binti Omar",
		PhoneNumber: "0198765432",
	}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestUpdateMemberStatus_JoinDateSetOnce(t *testing.T) {
	memberRepo, svc := setupMemberFixture()

	member, err := svc.Apply(context.Background(), "msq-1", &dto.CreateMemberRequest{
		FullName:    "Fatimah binti Omar",
		PhoneNumber: "0198765432",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	approved, err := svc.UpdateStatus(context.Background(), member.ID, &dto.UpdateMemberStatusRequest{Status: domain.MemberStatusActive})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if approved.JoinedAt == nil {
		t.Fatal("expected joined date on approval")
	}
	first := *approved.JoinedAt

	// Deactivate then reactivate; the original join date stays.
	if _, err := svc.UpdateStatus(context.Background(), member.ID, &dto.UpdateMemberStatusRequest{Status: domain.MemberStatusInactive}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, err := svc.UpdateStatus(context.Background(), member.ID, &dto.UpdateMemberStatusRequest{Status: domain.MemberStatusActive})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !again.JoinedAt.Equal(first) {
		t.Error("join date changed on reactivation")
	}

	if memberRepo.members[member.ID].Status != domain.MemberStatusActive {
		t.Error("status not persisted")
	}
}

func TestMemberStatus_NotFound(t *testing.T) {
	_, svc := setupMemberFixture()

	if _, err := svc.UpdateStatus(context.Background(), "missing", &dto.UpdateMemberStatusRequest{Status: domain.MemberStatusActive}); !errors.Is(err, ErrMemberNotFound) {
		t.Errorf("expected ErrMemberNotFound, got %v", err)
	}
	if err := svc.Remove(context.Background(), "missing"); !errors.Is(err, ErrMemberNotFound) {
		t.Errorf("expected ErrMemberNotFound, got %v", err)
	}
}
