package service

import (
	"context"
	"errors"
	"time"

	"github.com/nurikhwanidris/urusmasjid/internal/domain"
	"github.com/nurikhwanidris/urusmasjid/internal/dto"
)

// mockEventRepo is an in-memory EventRepository
type mockEventRepo struct {
	events map[string]*domain.Event
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{events: make(map[string]*domain.Event)}
}

func (m *mockEventRepo) Create(ctx context.Context, event *domain.Event) error {
	m.events[event.ID] = event
	return nil
}

// GetByID hands out a copy, the way a row scan does, so callers mutating
// the result cannot reach into the stored event.
func (m *mockEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	event, ok := m.events[id]
	if !ok {
		return nil, nil
	}
	copied := *event
	return &copied, nil
}

func (m *mockEventRepo) List(ctx context.Context, filter *dto.EventListFilter) ([]*domain.Event, int, error) {
	events := []*domain.Event{}
	for _, e := range m.events {
		if e.MosqueID == filter.MosqueID {
			events = append(events, e)
		}
	}
	return events, len(events), nil
}

func (m *mockEventRepo) Update(ctx context.Context, event *domain.Event) error {
	m.events[event.ID] = event
	return nil
}

func (m *mockEventRepo) Delete(ctx context.Context, id string) error {
	delete(m.events, id)
	return nil
}

// mockRegistrationRepo is an in-memory RegistrationRepository. failTx forces
// the transactional write to fail so rollback behaviour can be exercised.
type mockRegistrationRepo struct {
	registrations map[string]*domain.Registration
	members       map[string]*domain.Member
	failTx        bool
}

func newMockRegistrationRepo() *mockRegistrationRepo {
	return &mockRegistrationRepo{
		registrations: make(map[string]*domain.Registration),
		members:       make(map[string]*domain.Member),
	}
}

func (m *mockRegistrationRepo) RegisterTx(ctx context.Context, reg *domain.Registration, member *domain.Member) (bool, error) {
	if m.failTx {
		return false, errors.New("forced transaction failure")
	}
	m.registrations[reg.ID] = reg
	if member == nil {
		return false, nil
	}
	for _, existing := range m.members {
		if existing.MosqueID != member.MosqueID {
			continue
		}
		if (member.PhoneNumber != "" && existing.PhoneNumber == member.PhoneNumber) ||
			(member.Email != "" && existing.Email == member.Email) ||
			(member.ICNumber != "" && existing.ICNumber == member.ICNumber) {
			return false, nil
		}
	}
	m.members[member.ID] = member
	return true, nil
}

func (m *mockRegistrationRepo) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	return m.registrations[id], nil
}

func (m *mockRegistrationRepo) GetByNumber(ctx context.Context, number string) (*domain.Registration, error) {
	for _, reg := range m.registrations {
		if reg.RegistrationNumber == number {
			return reg, nil
		}
	}
	return nil, nil
}

func (m *mockRegistrationRepo) ListByEvent(ctx context.Context, filter *dto.RegistrationListFilter) ([]*domain.Registration, int, error) {
	regs := []*domain.Registration{}
	for _, reg := range m.registrations {
		if reg.EventID == filter.EventID {
			regs = append(regs, reg)
		}
	}
	return regs, len(regs), nil
}

func (m *mockRegistrationRepo) CountActiveByEvent(ctx context.Context, eventID string) (int, error) {
	count := 0
	for _, reg := range m.registrations {
		if reg.EventID == eventID && reg.Status != domain.RegistrationStatusCancelled {
			count++
		}
	}
	return count, nil
}

func (m *mockRegistrationRepo) Update(ctx context.Context, reg *domain.Registration) error {
	m.registrations[reg.ID] = reg
	return nil
}

func (m *mockRegistrationRepo) Delete(ctx context.Context, id string) error {
	delete(m.registrations, id)
	return nil
}

func (m *mockRegistrationRepo) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	for _, reg := range m.registrations {
		if reg.RegistrationNumber == number {
			return true, nil
		}
	}
	return false, nil
}

// mockMosqueRepo is an in-memory MosqueRepository
type mockMosqueRepo struct {
	mosques map[string]*domain.Mosque
	admins  map[string][]string // mosqueID -> userIDs
}

func newMockMosqueRepo() *mockMosqueRepo {
	return &mockMosqueRepo{
		mosques: make(map[string]*domain.Mosque),
		admins:  make(map[string][]string),
	}
}

func (m *mockMosqueRepo) Create(ctx context.Context, mosque *domain.Mosque) error {
	m.mosques[mosque.ID] = mosque
	return nil
}

func (m *mockMosqueRepo) GetByID(ctx context.Context, id string) (*domain.Mosque, error) {
	return m.mosques[id], nil
}

func (m *mockMosqueRepo) List(ctx context.Context, filter *dto.MosqueListFilter) ([]*domain.Mosque, int, error) {
	mosques := []*domain.Mosque{}
	for _, mosque := range m.mosques {
		mosques = append(mosques, mosque)
	}
	return mosques, len(mosques), nil
}

func (m *mockMosqueRepo) Update(ctx context.Context, mosque *domain.Mosque) error {
	m.mosques[mosque.ID] = mosque
	return nil
}

func (m *mockMosqueRepo) SoftDelete(ctx context.Context, id string) error {
	delete(m.mosques, id)
	return nil
}

func (m *mockMosqueRepo) AddAdmin(ctx context.Context, admin *domain.MosqueAdmin) error {
	m.admins[admin.MosqueID] = append(m.admins[admin.MosqueID], admin.UserID)
	return nil
}

func (m *mockMosqueRepo) RemoveAdmin(ctx context.Context, mosqueID, userID string) error {
	kept := []string{}
	for _, id := range m.admins[mosqueID] {
		if id != userID {
			kept = append(kept, id)
		}
	}
	m.admins[mosqueID] = kept
	return nil
}

func (m *mockMosqueRepo) IsAdmin(ctx context.Context, mosqueID, userID string) (bool, error) {
	for _, id := range m.admins[mosqueID] {
		if id == userID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockMosqueRepo) ListAdmins(ctx context.Context, mosqueID string) ([]*domain.MosqueAdmin, error) {
	admins := []*domain.MosqueAdmin{}
	for _, userID := range m.admins[mosqueID] {
		admins = append(admins, &domain.MosqueAdmin{MosqueID: mosqueID, UserID: userID})
	}
	return admins, nil
}

func (m *mockMosqueRepo) ListByAdmin(ctx context.Context, userID string) ([]*domain.Mosque, error) {
	mosques := []*domain.Mosque{}
	for mosqueID, userIDs := range m.admins {
		for _, id := range userIDs {
			if id == userID {
				if mosque := m.mosques[mosqueID]; mosque != nil {
					mosques = append(mosques, mosque)
				}
			}
		}
	}
	return mosques, nil
}

// mockMemberRepo is an in-memory MemberRepository
type mockMemberRepo struct {
	members map[string]*domain.Member
}

func newMockMemberRepo() *mockMemberRepo {
	return &mockMemberRepo{members: make(map[string]*domain.Member)}
}

func (m *mockMemberRepo) Create(ctx context.Context, member *domain.Member) error {
	m.members[member.ID] = member
	return nil
}

func (m *mockMemberRepo) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	return m.members[id], nil
}

func (m *mockMemberRepo) FindMatch(ctx context.Context, mosqueID, phone, email, icNumber string) (*domain.Member, error) {
	for _, member := range m.members {
		if member.MosqueID != mosqueID {
			continue
		}
		if (phone != "" && member.PhoneNumber == phone) ||
			(email != "" && member.Email == email) ||
			(icNumber != "" && member.ICNumber == icNumber) {
			return member, nil
		}
	}
	return nil, nil
}

func (m *mockMemberRepo) List(ctx context.Context, filter *dto.MemberListFilter) ([]*domain.Member, int, error) {
	members := []*domain.Member{}
	for _, member := range m.members {
		if member.MosqueID == filter.MosqueID {
			members = append(members, member)
		}
	}
	return members, len(members), nil
}

func (m *mockMemberRepo) Update(ctx context.Context, member *domain.Member) error {
	m.members[member.ID] = member
	return nil
}

func (m *mockMemberRepo) Delete(ctx context.Context, id string) error {
	delete(m.members, id)
	return nil
}

func (m *mockMemberRepo) CountByMosque(ctx context.Context, mosqueID, status string) (int, error) {
	count := 0
	for _, member := range m.members {
		if member.MosqueID == mosqueID && (status == "" || member.Status == status) {
			count++
		}
	}
	return count, nil
}

// mockUserRepo is an in-memory UserRepository
type mockUserRepo struct {
	users map[string]*domain.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*domain.User)}
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return m.users[id], nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) Update(ctx context.Context, user *domain.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) SoftDelete(ctx context.Context, id string) error {
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	user, _ := m.GetByEmail(ctx, email)
	return user != nil, nil
}

// mockDonationRepo is an in-memory DonationRepository
type mockDonationRepo struct {
	donations map[string]*domain.Donation
}

func newMockDonationRepo() *mockDonationRepo {
	return &mockDonationRepo{donations: make(map[string]*domain.Donation)}
}

func (m *mockDonationRepo) Create(ctx context.Context, donation *domain.Donation) error {
	m.donations[donation.ID] = donation
	return nil
}

func (m *mockDonationRepo) GetByID(ctx context.Context, id string) (*domain.Donation, error) {
	return m.donations[id], nil
}

func (m *mockDonationRepo) List(ctx context.Context, filter *dto.DonationListFilter) ([]*domain.Donation, int, error) {
	donations := []*domain.Donation{}
	for _, d := range m.donations {
		if d.MosqueID == filter.MosqueID {
			donations = append(donations, d)
		}
	}
	return donations, len(donations), nil
}

func (m *mockDonationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if d := m.donations[id]; d != nil {
		d.Status = status
	}
	return nil
}

func (m *mockDonationRepo) ExistsByReceiptNumber(ctx context.Context, number string) (bool, error) {
	for _, d := range m.donations {
		if d.ReceiptNumber == number {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockDonationRepo) TotalByMosque(ctx context.Context, mosqueID string) (float64, error) {
	total := 0.0
	for _, d := range m.donations {
		if d.MosqueID == mosqueID && d.Status == domain.DonationStatusCompleted {
			total += d.Amount
		}
	}
	return total, nil
}

// mockAnnouncementRepo is an in-memory AnnouncementRepository
type mockAnnouncementRepo struct {
	announcements map[string]*domain.Announcement
}

func newMockAnnouncementRepo() *mockAnnouncementRepo {
	return &mockAnnouncementRepo{announcements: make(map[string]*domain.Announcement)}
}

func (m *mockAnnouncementRepo) Create(ctx context.Context, announcement *domain.Announcement) error {
	m.announcements[announcement.ID] = announcement
	return nil
}

func (m *mockAnnouncementRepo) GetByID(ctx context.Context, id string) (*domain.Announcement, error) {
	return m.announcements[id], nil
}

func (m *mockAnnouncementRepo) List(ctx context.Context, filter *dto.AnnouncementListFilter) ([]*domain.Announcement, int, error) {
	announcements := []*domain.Announcement{}
	for _, a := range m.announcements {
		if a.MosqueID == filter.MosqueID {
			announcements = append(announcements, a)
		}
	}
	return announcements, len(announcements), nil
}

func (m *mockAnnouncementRepo) ListVisible(ctx context.Context, mosqueID string, limit int) ([]*domain.Announcement, error) {
	now := time.Now()
	visible := []*domain.Announcement{}
	for _, a := range m.announcements {
		if a.MosqueID == mosqueID && a.IsVisible(now) {
			visible = append(visible, a)
		}
	}
	return visible, nil
}

func (m *mockAnnouncementRepo) Update(ctx context.Context, announcement *domain.Announcement) error {
	m.announcements[announcement.ID] = announcement
	return nil
}

func (m *mockAnnouncementRepo) Delete(ctx context.Context, id string) error {
	delete(m.announcements, id)
	return nil
}
