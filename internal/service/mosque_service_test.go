package service

import (
	"context"
	"errors"
	"testing"

	"github.com/nurikhwanidris/urusmasjid/internal/domain"
	"github.com/nurikhwanidris/urusmasjid/internal/dto"
)

// mockCommitteeRepo is an in-memory CommitteeRepository
type mockCommitteeRepo struct {
	committees map[string]*domain.Committee
}

func newMockCommitteeRepo() *mockCommitteeRepo {
	return &mockCommitteeRepo{committees: make(map[string]*domain.Committee)}
}

func (m *mockCommitteeRepo) Create(ctx context.Context, committee *domain.Committee) error {
	m.committees[committee.ID] = committee
	return nil
}

func (m *mockCommitteeRepo) GetByID(ctx context.Context, id string) (*domain.Committee, error) {
	return m.committees[id], nil
}

func (m *mockCommitteeRepo) ListByMosque(ctx context.Context, mosqueID string) ([]*domain.Committee, error) {
	committees := []*domain.Committee{}
	for _, c := range m.committees {
		if c.MosqueID == mosqueID {
			committees = append(committees, c)
		}
	}
	return committees, nil
}

func (m *mockCommitteeRepo) Update(ctx context.Context, committee *domain.Committee) error {
	m.committees[committee.ID] = committee
	return nil
}

func (m *mockCommitteeRepo) Delete(ctx context.Context, id string) error {
	delete(m.committees, id)
	return nil
}

func setupMosqueFixture() (*mockMosqueRepo, *mockUserRepo, MosqueService) {
	mosqueRepo := newMockMosqueRepo()
	committeeRepo := newMockCommitteeRepo()
	userRepo := newMockUserRepo()

	userRepo.users["user-1"] = &domain.User{
		ID:       "user-1",
		Name:     "Ahmad Zaki",
		Email:    "ahmad@example.com",
		Role:     domain.RoleCommunityMember,
		IsActive: true,
	}

	svc := NewMosqueService(mosqueRepo, committeeRepo, userRepo)
	return mosqueRepo, userRepo, svc
}

func TestRegisterMosque(t *testing.T) {
	mosqueRepo, userRepo, svc := setupMosqueFixture()

	mosque, err := svc.Register(context.Background(), &dto.CreateMosqueRequest{
		Name:      "Masjid Al-Hidayah",
		Type:      "masjid",
		State:     "Selangor",
		JakimZone: "SGR01",
		CreatedBy: "user-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mosque.VerificationStatus != domain.MosqueStatusPending {
		t.Errorf("new mosques await verification, got %s", mosque.VerificationStatus)
	}

	isAdmin, _ := mosqueRepo.IsAdmin(context.Background(), mosque.ID, "user-1")
	if !isAdmin {
		t.Error("registrant should administer the mosque")
	}
	if userRepo.users["user-1"].Role != domain.RoleMosqueAdmin {
		t.Errorf("registrant should be promoted to mosque_admin, got %s", userRepo.users["user-1"].Role)
	}
}

func TestVerifyMosque(t *testing.T) {
	_, _, svc := setupMosqueFixture()

	mosque, err := svc.Register(context.Background(), &dto.CreateMosqueRequest{
		Name: "Masjid Al-Hidayah", Type: "masjid", CreatedBy: "user-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	verified, err := svc.Verify(context.Background(), mosque.ID, "admin-1", &dto.VerifyMosqueRequest{
		Status: domain.MosqueStatusVerified,
		Notes:  "Documents checked",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !verified.IsVerified() {
		t.Error("mosque should be verified")
	}
	if verified.VerifiedAt == nil || verified.VerifiedBy == nil || *verified.VerifiedBy != "admin-1" {
		t.Error("verification audit fields not set")
	}

	// A decided verification cannot be decided again.
	if _, err := svc.Verify(context.Background(), mosque.ID, "admin-1", &dto.VerifyMosqueRequest{
		Status: domain.MosqueStatusRejected,
	}); !errors.Is(err, ErrAlreadyVerified) {
		t.Errorf("expected ErrAlreadyVerified, got %v", err)
	}
}

func TestVerifyMosque_NotFound(t *testing.T) {
	_, _, svc := setupMosqueFixture()

	if _, err := svc.Verify(context.Background(), "missing", "admin-1", &dto.VerifyMosqueRequest{
		Status: domain.MosqueStatusVerified,
	}); !errors.Is(err, ErrMosqueNotFound) {
		t.Errorf("expected ErrMosqueNotFound, got %v", err)
	}
}

func TestAddCommittee(t *testing.T) {
	_, _, svc := setupMosqueFixture()

	mosque, err := svc.Register(context.Background(), &dto.CreateMosqueRequest{
		Name: "Masjid Al-Hidayah", Type: "masjid", CreatedBy: "user-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	committee, err := svc.AddCommittee(context.Background(), mosque.ID, &dto.CreateCommitteeRequest{
		Name:      "Haji Ismail",
		Position:  "Pengerusi",
		StartDate: "2026-01-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if committee.Status != domain.CommitteeStatusActive {
		t.Errorf("expected active committee, got %s", committee.Status)
	}
	if committee.StartDate == nil {
		t.Error("start date not parsed")
	}

	list, err := svc.ListCommittee(context.Background(), mosque.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("expected 1 committee member, got %d", len(list))
	}
}
