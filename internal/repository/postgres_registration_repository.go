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

// PostgresRegistrationRepository implements RegistrationRepository using PostgreSQL
type PostgresRegistrationRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRegistrationRepository creates a new PostgresRegistrationRepository
func NewPostgresRegistrationRepository(pool *pgxpool.Pool) *PostgresRegistrationRepository {
	return &PostgresRegistrationRepository{pool: pool}
}

const registrationColumns = `
	id, event_id, user_id, name, COALESCE(email, ''), COALESCE(phone, ''),
	status, COALESCE(attendance_status, ''), attended_at, COALESCE(notes, ''),
	registration_number, created_at, updated_at
`

func scanRegistration(row pgx.Row) (*domain.Registration, error) {
	reg := &domain.Registration{}
	err := row.Scan(
		&reg.ID, &reg.EventID, &reg.UserID, &reg.Name, &reg.Email, &reg.Phone,
		&reg.Status, &reg.AttendanceStatus, &reg.AttendedAt, &reg.Notes,
		&reg.RegistrationNumber, &reg.CreatedAt, &reg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return reg, nil
}

// RegisterTx inserts the registration and, when member is non-nil, the kariah
// membership inside one transaction. A membership is only inserted when no
// existing member of the mosque matches the person by phone, email or IC
// number; the registration itself always goes in. Any failure rolls back
// both writes. Returns whether a new membership row was inserted.
func (r *PostgresRegistrationRepository) RegisterTx(ctx context.Context, reg *domain.Registration, member *domain.Member) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	insertReg := `
		INSERT INTO event_registrations (
			id, event_id, user_id, name, email, phone,
			status, attendance_status, notes, registration_number, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err = tx.Exec(ctx, insertReg,
		reg.ID, reg.EventID, reg.UserID, reg.Name, reg.Email, reg.Phone,
		reg.Status, reg.AttendanceStatus, reg.Notes, reg.RegistrationNumber,
		reg.CreatedAt, reg.UpdatedAt,
	)
	if err != nil {
		return false, err
	}

	memberCreated := false
	if member != nil {
		matchQuery := `
			SELECT EXISTS(
				SELECT 1 FROM members
				WHERE mosque_id = $1
				  AND (
					($2 <> '' AND phone_number = $2)
					OR ($3 <> '' AND email = $3)
					OR ($4 <> '' AND ic_number = $4)
				  )
			)
		`
		var exists bool
		err = tx.QueryRow(ctx, matchQuery,
			member.MosqueID, member.PhoneNumber, member.Email, member.ICNumber,
		).Scan(&exists)
		if err != nil {
			return false, err
		}

		if !exists {
			insertMember := `
				INSERT INTO members (
					id, mosque_id, user_id, full_name, ic_number, phone_number,
					email, address, status, notes, created_at, updated_at
				)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			`
			_, err = tx.Exec(ctx, insertMember,
				member.ID, member.MosqueID, member.UserID, member.FullName,
				member.ICNumber, member.PhoneNumber, member.Email, member.Address,
				member.Status, member.Notes, member.CreatedAt, member.UpdatedAt,
			)
			if err != nil {
				return false, err
			}
			memberCreated = true
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return memberCreated, nil
}

// GetByID retrieves a registration by ID
func (r *PostgresRegistrationRepository) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM event_registrations WHERE id = $1`
	reg, err := scanRegistration(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return reg, nil
}

// GetByNumber retrieves a registration by its registration number
func (r *PostgresRegistrationRepository) GetByNumber(ctx context.Context, number string) (*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM event_registrations WHERE registration_number = $1`
	reg, err := scanRegistration(r.pool.QueryRow(ctx, query, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return reg, nil
}

// ListByEvent retrieves the registrations of an event
func (r *PostgresRegistrationRepository) ListByEvent(ctx context.Context, filter *dto.RegistrationListFilter) ([]*domain.Registration, int, error) {
	where := `WHERE event_id = $1`
	args := []interface{}{filter.EventID}
	argn := 2

	if filter.Status != "" {
		where += fmt.Sprintf(" AND status = $%d", argn)
		args = append(args, filter.Status)
		argn++
	}
	if filter.AttendanceStatus != "" {
		where += fmt.Sprintf(" AND attendance_status = $%d", argn)
		args = append(args, filter.AttendanceStatus)
		argn++
	}
	if filter.Search != "" {
		where += fmt.Sprintf(" AND (name ILIKE $%d OR phone ILIKE $%d OR registration_number ILIKE $%d)", argn, argn, argn)
		args = append(args, "%"+filter.Search+"%")
		argn++
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM event_registrations `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + registrationColumns + ` FROM event_registrations ` + where +
		fmt.Sprintf(" ORDER BY created_at ASC LIMIT $%d OFFSET $%d", argn, argn+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	regs := []*domain.Registration{}
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, 0, err
		}
		regs = append(regs, reg)
	}
	return regs, total, rows.Err()
}

// CountActiveByEvent counts the non-cancelled registrations of an event.
// Cancelled registrations release their slot.
func (r *PostgresRegistrationRepository) CountActiveByEvent(ctx context.Context, eventID string) (int, error) {
	query := `SELECT COUNT(*) FROM event_registrations WHERE event_id = $1 AND status <> $2`
	var count int
	err := r.pool.QueryRow(ctx, query, eventID, domain.RegistrationStatusCancelled).Scan(&count)
	return count, err
}

// Update updates a registration
func (r *PostgresRegistrationRepository) Update(ctx context.Context, reg *domain.Registration) error {
	query := `
		UPDATE event_registrations
		SET status = $2, attendance_status = $3, attended_at = $4, notes = $5, updated_at = $6
		WHERE id = $1
	`
	reg.UpdatedAt = time.Now()
	_, err := r.pool.Exec(ctx, query,
		reg.ID, reg.Status, reg.AttendanceStatus, reg.AttendedAt, reg.Notes, reg.UpdatedAt,
	)
	return err
}

// Delete removes a registration
func (r *PostgresRegistrationRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM event_registrations WHERE id = $1`, id)
	return err
}

// ExistsByNumber checks if a registration number is already taken
func (r *PostgresRegistrationRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM event_registrations WHERE registration_number = $1)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, number).Scan(&exists)
	return exists, err
}
