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

// PostgresMemberRepository implements MemberRepository using PostgreSQL
type PostgresMemberRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresMemberRepository creates a new PostgresMemberRepository
func NewPostgresMemberRepository(pool *pgxpool.Pool) *PostgresMemberRepository {
	return &PostgresMemberRepository{pool: pool}
}

const memberColumns = `
	id, mosque_id, user_id, full_name, COALESCE(ic_number, ''), phone_number,
	COALESCE(email, ''), COALESCE(address, ''), status, COALESCE(notes, ''),
	joined_at, created_at, updated_at
`

func scanMember(row pgx.Row) (*domain.Member, error) {
	m := &domain.Member{}
	err := row.Scan(
		&m.ID, &m.MosqueID, &m.UserID, &m.FullName, &m.ICNumber, &m.PhoneNumber,
		&m.Email, &m.Address, &m.Status, &m.Notes,
		&m.JoinedAt, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Create creates a new membership
func (r *PostgresMemberRepository) Create(ctx context.Context, member *domain.Member) error {
	query := `
		INSERT INTO members (
			id, mosque_id, user_id, full_name, ic_number, phone_number,
			email, address, status, notes, joined_at, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.pool.Exec(ctx, query,
		member.ID, member.MosqueID, member.UserID, member.FullName,
		member.ICNumber, member.PhoneNumber, member.Email, member.Address,
		member.Status, member.Notes, member.JoinedAt, member.CreatedAt, member.UpdatedAt,
	)
	return err
}

// GetByID retrieves a membership by ID
func (r *PostgresMemberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1`
	m, err := scanMember(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

// FindMatch looks for an existing member of the mosque matching any of the
// supplied identifiers. Blank identifiers never match.
func (r *PostgresMemberRepository) FindMatch(ctx context.Context, mosqueID, phone, email, icNumber string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + `
		FROM members
		WHERE mosque_id = $1
		  AND (
			($2 <> '' AND phone_number = $2)
			OR ($3 <> '' AND email = $3)
			OR ($4 <> '' AND ic_number = $4)
		  )
		LIMIT 1`
	m, err := scanMember(r.pool.QueryRow(ctx, query, mosqueID, phone, email, icNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

// List retrieves members of a mosque with pagination and filters
func (r *PostgresMemberRepository) List(ctx context.Context, filter *dto.MemberListFilter) ([]*domain.Member, int, error) {
	where := `WHERE mosque_id = $1`
	args := []interface{}{filter.MosqueID}
	argn := 2

	if filter.Status != "" {
		where += fmt.Sprintf(" AND status = $%d", argn)
		args = append(args, filter.Status)
		argn++
	}
	if filter.Search != "" {
		where += fmt.Sprintf(" AND (full_name ILIKE $%d OR phone_number ILIKE $%d OR ic_number ILIKE $%d)", argn, argn, argn)
		args = append(args, "%"+filter.Search+"%")
		argn++
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM members `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + memberColumns + ` FROM members ` + where +
		fmt.Sprintf(" ORDER BY full_name ASC LIMIT $%d OFFSET $%d", argn, argn+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	members := []*domain.Member{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, 0, err
		}
		members = append(members, m)
	}
	return members, total, rows.Err()
}

// Update updates a membership
func (r *PostgresMemberRepository) Update(ctx context.Context, member *domain.Member) error {
	query := `
		UPDATE members
		SET user_id = $2, full_name = $3, ic_number = $4, phone_number = $5,
			email = $6, address = $7, status = $8, notes = $9, joined_at = $10, updated_at = $11
		WHERE id = $1
	`
	member.UpdatedAt = time.Now()
	_, err := r.pool.Exec(ctx, query,
		member.ID, member.UserID, member.FullName, member.ICNumber, member.PhoneNumber,
		member.Email, member.Address, member.Status, member.Notes, member.JoinedAt,
		member.UpdatedAt,
	)
	return err
}

// Delete removes a membership
func (r *PostgresMemberRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM members WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

// CountByMosque counts members of a mosque by status. An empty status counts
// all members.
func (r *PostgresMemberRepository) CountByMosque(ctx context.Context, mosqueID, status string) (int, error) {
	var count int
	var err error
	if status == "" {
		err = r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM members WHERE mosque_id = $1`, mosqueID).Scan(&count)
	} else {
		err = r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM members WHERE mosque_id = $1 AND status = $2`, mosqueID, status).Scan(&count)
	}
	return count, err
}
