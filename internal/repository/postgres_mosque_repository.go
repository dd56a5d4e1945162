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

// PostgresMosqueRepository implements MosqueRepository using PostgreSQL
type PostgresMosqueRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresMosqueRepository creates a new PostgresMosqueRepository
func NewPostgresMosqueRepository(pool *pgxpool.Pool) *PostgresMosqueRepository {
	return &PostgresMosqueRepository{pool: pool}
}

const mosqueColumns = `
	id, name, type,
	COALESCE(street_address, ''), COALESCE(city, ''), COALESCE(district, ''),
	COALESCE(state, ''), COALESCE(postal_code, ''), COALESCE(jakim_zone, ''),
	COALESCE(contact_number, ''), COALESCE(email, ''), COALESCE(website, ''),
	COALESCE(registration_number, ''),
	verification_status, COALESCE(verification_notes, ''), verified_at, verified_by,
	created_by, created_at, updated_at
`

func scanMosque(row pgx.Row) (*domain.Mosque, error) {
	m := &domain.Mosque{}
	err := row.Scan(
		&m.ID, &m.Name, &m.Type,
		&m.StreetAddress, &m.City, &m.District,
		&m.State, &m.PostalCode, &m.JakimZone,
		&m.ContactNumber, &m.Email, &m.Website,
		&m.RegistrationNumber,
		&m.VerificationStatus, &m.VerificationNotes, &m.VerifiedAt, &m.VerifiedBy,
		&m.CreatedBy, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Create creates a new mosque
func (r *PostgresMosqueRepository) Create(ctx context.Context, mosque *domain.Mosque) error {
	query := `
		INSERT INTO mosques (
			id, name, type, street_address, city, district, state, postal_code, jakim_zone,
			contact_number, email, website, registration_number,
			verification_status, created_by, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`
	_, err := r.pool.Exec(ctx, query,
		mosque.ID, mosque.Name, mosque.Type,
		mosque.StreetAddress, mosque.City, mosque.District, mosque.State, mosque.PostalCode, mosque.JakimZone,
		mosque.ContactNumber, mosque.Email, mosque.Website, mosque.RegistrationNumber,
		mosque.VerificationStatus, mosque.CreatedBy, mosque.CreatedAt, mosque.UpdatedAt,
	)
	return err
}

// GetByID retrieves a mosque by ID
func (r *PostgresMosqueRepository) GetByID(ctx context.Context, id string) (*domain.Mosque, error) {
	query := `SELECT ` + mosqueColumns + ` FROM mosques WHERE id = $1 AND deleted_at IS NULL`
	m, err := scanMosque(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

// List retrieves mosques with pagination and filters
func (r *PostgresMosqueRepository) List(ctx context.Context, filter *dto.MosqueListFilter) ([]*domain.Mosque, int, error) {
	where := `WHERE deleted_at IS NULL`
	args := []interface{}{}
	argn := 1

	if filter.State != "" {
		where += fmt.Sprintf(" AND state = $%d", argn)
		args = append(args, filter.State)
		argn++
	}
	if filter.Status != "" {
		where += fmt.Sprintf(" AND verification_status = $%d", argn)
		args = append(args, filter.Status)
		argn++
	}
	if filter.Search != "" {
		where += fmt.Sprintf(" AND (name ILIKE $%d OR city ILIKE $%d)", argn, argn)
		args = append(args, "%"+filter.Search+"%")
		argn++
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM mosques `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + mosqueColumns + ` FROM mosques ` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argn, argn+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	mosques := []*domain.Mosque{}
	for rows.Next() {
		m, err := scanMosque(rows)
		if err != nil {
			return nil, 0, err
		}
		mosques = append(mosques, m)
	}
	return mosques, total, rows.Err()
}

// Update updates a mosque
func (r *PostgresMosqueRepository) Update(ctx context.Context, mosque *domain.Mosque) error {
	query := `
		UPDATE mosques
		SET name = $2, type = $3, street_address = $4, city = $5, district = $6,
			state = $7, postal_code = $8, jakim_zone = $9,
			contact_number = $10, email = $11, website = $12, registration_number = $13,
			verification_status = $14, verification_notes = $15, verified_at = $16, verified_by = $17,
			updated_at = $18
		WHERE id = $1 AND deleted_at IS NULL
	`
	mosque.UpdatedAt = time.Now()
	_, err := r.pool.Exec(ctx, query,
		mosque.ID, mosque.Name, mosque.Type,
		mosque.StreetAddress, mosque.City, mosque.District,
		mosque.State, mosque.PostalCode, mosque.JakimZone,
		mosque.ContactNumber, mosque.Email, mosque.Website, mosque.RegistrationNumber,
		mosque.VerificationStatus, mosque.VerificationNotes, mosque.VerifiedAt, mosque.VerifiedBy,
		mosque.UpdatedAt,
	)
	return err
}

// SoftDelete soft deletes a mosque
func (r *PostgresMosqueRepository) SoftDelete(ctx context.Context, id string) error {
	query := `UPDATE mosques SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.pool.Exec(ctx, query, id, time.Now())
	return err
}

// AddAdmin links a user to a mosque as staff
func (r *PostgresMosqueRepository) AddAdmin(ctx context.Context, admin *domain.MosqueAdmin) error {
	query := `
		INSERT INTO mosque_admins (id, mosque_id, user_id, role, is_primary, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		admin.ID, admin.MosqueID, admin.UserID, admin.Role, admin.IsPrimary, admin.CreatedAt,
	)
	return err
}

// RemoveAdmin unlinks a user from a mosque
func (r *PostgresMosqueRepository) RemoveAdmin(ctx context.Context, mosqueID, userID string) error {
	query := `DELETE FROM mosque_admins WHERE mosque_id = $1 AND user_id = $2`
	_, err := r.pool.Exec(ctx, query, mosqueID, userID)
	return err
}

// IsAdmin checks whether the user administers the mosque
func (r *PostgresMosqueRepository) IsAdmin(ctx context.Context, mosqueID, userID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM mosque_admins WHERE mosque_id = $1 AND user_id = $2)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, mosqueID, userID).Scan(&exists)
	return exists, err
}

// ListAdmins retrieves the staff of a mosque
func (r *PostgresMosqueRepository) ListAdmins(ctx context.Context, mosqueID string) ([]*domain.MosqueAdmin, error) {
	query := `
		SELECT id, mosque_id, user_id, role, is_primary, created_at
		FROM mosque_admins
		WHERE mosque_id = $1
		ORDER BY is_primary DESC, created_at ASC
	`
	rows, err := r.pool.Query(ctx, query, mosqueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	admins := []*domain.MosqueAdmin{}
	for rows.Next() {
		a := &domain.MosqueAdmin{}
		if err := rows.Scan(&a.ID, &a.MosqueID, &a.UserID, &a.Role, &a.IsPrimary, &a.CreatedAt); err != nil {
			return nil, err
		}
		admins = append(admins, a)
	}
	return admins, rows.Err()
}

// ListByAdmin retrieves the mosques a user administers
func (r *PostgresMosqueRepository) ListByAdmin(ctx context.Context, userID string) ([]*domain.Mosque, error) {
	query := `SELECT ` + mosqueColumns + `
		FROM mosques
		WHERE deleted_at IS NULL AND id IN (SELECT mosque_id FROM mosque_admins WHERE user_id = $1)
		ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	mosques := []*domain.Mosque{}
	for rows.Next() {
		m, err := scanMosque(rows)
		if err != nil {
			return nil, err
		}
		mosques = append(mosques, m)
	}
	return mosques, rows.Err()
}

// PostgresCommitteeRepository implements CommitteeRepository using PostgreSQL
type PostgresCommitteeRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCommitteeRepository creates a new PostgresCommitteeRepository
func NewPostgresCommitteeRepository(pool *pgxpool.Pool) *PostgresCommitteeRepository {
	return &PostgresCommitteeRepository{pool: pool}
}

const committeeColumns = `
	id, mosque_id, user_id, name, position,
	COALESCE(ic_number, ''), COALESCE(phone, ''), COALESCE(email, ''),
	start_date, end_date, status, COALESCE(notes, ''), created_at, updated_at
`

func scanCommittee(row pgx.Row) (*domain.Committee, error) {
	c := &domain.Committee{}
	err := row.Scan(
		&c.ID, &c.MosqueID, &c.UserID, &c.Name, &c.Position,
		&c.ICNumber, &c.Phone, &c.Email,
		&c.StartDate, &c.EndDate, &c.Status, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create creates a new committee member
func (r *PostgresCommitteeRepository) Create(ctx context.Context, committee *domain.Committee) error {
	query := `
		INSERT INTO committees (
			id, mosque_id, user_id, name, position, ic_number, phone, email,
			start_date, end_date, status, notes, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.pool.Exec(ctx, query,
		committee.ID, committee.MosqueID, committee.UserID, committee.Name, committee.Position,
		committee.ICNumber, committee.Phone, committee.Email,
		committee.StartDate, committee.EndDate, committee.Status, committee.Notes,
		committee.CreatedAt, committee.UpdatedAt,
	)
	return err
}

// GetByID retrieves a committee member by ID
func (r *PostgresCommitteeRepository) GetByID(ctx context.Context, id string) (*domain.Committee, error) {
	query := `SELECT ` + committeeColumns + ` FROM committees WHERE id = $1`
	c, err := scanCommittee(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

// ListByMosque retrieves the committee of a mosque
func (r *PostgresCommitteeRepository) ListByMosque(ctx context.Context, mosqueID string) ([]*domain.Committee, error) {
	query := `SELECT ` + committeeColumns + ` FROM committees WHERE mosque_id = $1 ORDER BY position ASC, name ASC`
	rows, err := r.pool.Query(ctx, query, mosqueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	committees := []*domain.Committee{}
	for rows.Next() {
		c, err := scanCommittee(rows)
		if err != nil {
			return nil, err
		}
		committees = append(committees, c)
	}
	return committees, rows.Err()
}

// Update updates a committee member
func (r *PostgresCommitteeRepository) Update(ctx context.Context, committee *domain.Committee) error {
	query := `
		UPDATE committees
		SET user_id = $2, name = $3, position = $4, ic_number = $5, phone = $6, email = $7,
			start_date = $8, end_date = $9, status = $10, notes = $11, updated_at = $12
		WHERE id = $1
	`
	committee.UpdatedAt = time.Now()
	_, err := r.pool.Exec(ctx, query,
		committee.ID, committee.UserID, committee.Name, committee.Position,
		committee.ICNumber, committee.Phone, committee.Email,
		committee.StartDate, committee.EndDate, committee.Status, committee.Notes,
		committee.UpdatedAt,
	)
	return err
}

// Delete removes a committee member
func (r *PostgresCommitteeRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM committees WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}
