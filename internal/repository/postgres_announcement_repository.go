package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nurikhwanidris/urusmasjid/internal/domain"
	"github.com/nurikhwanidris/urusmasjid/internal/dto"
)

// PostgresAnnouncementRepository implements AnnouncementRepository using PostgreSQL
type PostgresAnnouncementRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAnnouncementRepository creates a new PostgresAnnouncementRepository
func NewPostgresAnnouncementRepository(pool *pgxpool.Pool) *PostgresAnnouncementRepository {
	return &PostgresAnnouncementRepository{pool: pool}
}

const announcementColumns = `
	id, mosque_id, title, content, type, status,
	published_at, expires_at, created_by, created_at, updated_at
`

func scanAnnouncement(row pgx.Row) (*domain.Announcement, error) {
	a := &domain.Announcement{}
	err := row.Scan(
		&a.ID, &a.MosqueID, &a.Title, &a.Content, &a.Type, &a.Status,
		&a.PublishedAt, &a.ExpiresAt, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Create creates a new announcement
func (r *PostgresAnnouncementRepository) Create(ctx context.Context, announcement *domain.Announcement) error {
	query := `
		INSERT INTO announcements (
			id, mosque_id, title, content, type, status,
			published_at, expires_at, created_by, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.pool.Exec(ctx, query,
		announcement.ID, announcement.MosqueID, announcement.Title, announcement.Content,
		announcement.Type, announcement.Status,
		announcement.PublishedAt, announcement.ExpiresAt, announcement.CreatedBy,
		announcement.CreatedAt, announcement.UpdatedAt,
	)
	return err
}

// GetByID retrieves an announcement by ID
func (r *PostgresAnnouncementRepository) GetByID(ctx context.Context, id string) (*domain.Announcement, error) {
	query := `SELECT ` + announcementColumns + ` FROM announcements WHERE id = $1`
	a, err := scanAnnouncement(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

// List retrieves announcements of a mosque with pagination and filters
func (r *PostgresAnnouncementRepository) List(ctx context.Context, filter *dto.AnnouncementListFilter) ([]*domain.Announcement, int, error) {
	where := `WHERE mosque_id = $1`
	args := []interface{}{filter.MosqueID}
	argn := 2

	if filter.Status != "" {
		where += fmt.Sprintf(" AND status = $%d", argn)
		args = append(args, filter.Status)
		argn++
	}
	if filter.Type != "" {
		where += fmt.Sprintf(" AND type = $%d", argn)
		args = append(args, filter.Type)
		argn++
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM announcements `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + announcementColumns + ` FROM announcements ` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argn, argn+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	announcements := []*domain.Announcement{}
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, 0, err
		}
		announcements = append(announcements, a)
	}
	return announcements, total, rows.Err()
}

// ListVisible retrieves the currently visible announcements of a mosque:
// published, publish time reached, not expired.
func (r *PostgresAnnouncementRepository) ListVisible(ctx context.Context, mosqueID string, limit int) ([]*domain.Announcement, error) {
	query := `SELECT ` + announcementColumns + `
		FROM announcements
		WHERE mosque_id = $1
		  AND status = $2
		  AND (published_at IS NULL OR published_at <= $3)
		  AND (expires_at IS NULL OR expires_at > $3)
		ORDER BY type = 'emergency' DESC, published_at DESC
		LIMIT $4`
	rows, err := r.pool.Query(ctx, query, mosqueID, domain.AnnouncementStatusPublished, time.Now(), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	announcements := []*domain.Announcement{}
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}
	return announcements, rows.Err()
}

// Update updates an announcement
func (r *PostgresAnnouncementRepository) Update(ctx context.Context, announcement *domain.Announcement) error {
	query := `
		UPDATE announcements
		SET title = $2, content = $3, type = $4, status = $5,
			published_at = $6, expires_at = $7, updated_at = $8
		WHERE id = $1
	`
	announcement.UpdatedAt = time.Now()
	_, err := r.pool.Exec(ctx, query,
		announcement.ID, announcement.Title, announcement.Content,
		announcement.Type, announcement.Status,
		announcement.PublishedAt, announcement.ExpiresAt, announcement.UpdatedAt,
	)
	return err
}

// Delete removes an announcement
func (r *PostgresAnnouncementRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM announcements WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}
