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

// PostgresEventRepository implements EventRepository using PostgreSQL
type PostgresEventRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresEventRepository creates a new PostgresEventRepository
func NewPostgresEventRepository(pool *pgxpool.Pool) *PostgresEventRepository {
	return &PostgresEventRepository{pool: pool}
}

const eventColumns = `
	id, mosque_id, title, COALESCE(description, ''), COALESCE(category, ''),
	start_date, end_date, COALESCE(start_time, ''), COALESCE(end_time, ''),
	COALESCE(location, ''), COALESCE(address, ''), is_online, COALESCE(online_url, ''),
	registration_required, registration_deadline, max_participants,
	COALESCE(contact_person, ''), COALESCE(contact_phone, ''), COALESCE(contact_email, ''),
	status, created_by, created_at, updated_at
`

func scanEvent(row pgx.Row) (*domain.Event, error) {
	e := &domain.Event{}
	err := row.Scan(
		&e.ID, &e.MosqueID, &e.Title, &e.Description, &e.Category,
		&e.StartDate, &e.EndDate, &e.StartTime, &e.EndTime,
		&e.Location, &e.Address, &e.IsOnline, &e.OnlineURL,
		&e.RegistrationRequired, &e.RegistrationDeadline, &e.MaxParticipants,
		&e.ContactPerson, &e.ContactPhone, &e.ContactEmail,
		&e.Status, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Create creates a new event
func (r *PostgresEventRepository) Create(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO events (
			id, mosque_id, title, description, category,
			start_date, end_date, start_time, end_time,
			location, address, is_online, online_url,
			registration_required, registration_deadline, max_participants,
			contact_person, contact_phone, contact_email,
			status, created_by, created_at, updated_at
		)
		VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23
		)
	`
	_, err := r.pool.Exec(ctx, query,
		event.ID, event.MosqueID, event.Title, event.Description, event.Category,
		event.StartDate, event.EndDate, event.StartTime, event.EndTime,
		event.Location, event.Address, event.IsOnline, event.OnlineURL,
		event.RegistrationRequired, event.RegistrationDeadline, event.MaxParticipants,
		event.ContactPerson, event.ContactPhone, event.ContactEmail,
		event.Status, event.CreatedBy, event.CreatedAt, event.UpdatedAt,
	)
	return err
}

// GetByID retrieves an event by ID
func (r *PostgresEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	e, err := scanEvent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

// List retrieves events of a mosque with pagination and filters
func (r *PostgresEventRepository) List(ctx context.Context, filter *dto.EventListFilter) ([]*domain.Event, int, error) {
	where := `WHERE mosque_id = $1`
	args := []interface{}{filter.MosqueID}
	argn := 2

	if filter.Status != "" {
		where += fmt.Sprintf(" AND status = $%d", argn)
		args = append(args, filter.Status)
		argn++
	}
	if filter.Category != "" {
		where += fmt.Sprintf(" AND category = $%d", argn)
		args = append(args, filter.Category)
		argn++
	}
	if filter.Upcoming {
		where += fmt.Sprintf(" AND start_date > $%d", argn)
		args = append(args, time.Now())
		argn++
	}
	if filter.Search != "" {
		where += fmt.Sprintf(" AND title ILIKE $%d", argn)
		args = append(args, "%"+filter.Search+"%")
		argn++
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM events `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + eventColumns + ` FROM events ` + where +
		fmt.Sprintf(" ORDER BY start_date ASC LIMIT $%d OFFSET $%d", argn, argn+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	events := []*domain.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, 0, err
		}
		events = append(events, e)
	}
	return events, total, rows.Err()
}

// Update updates an event
func (r *PostgresEventRepository) Update(ctx context.Context, event *domain.Event) error {
	query := `
		UPDATE events
		SET title = $2, description = $3, category = $4,
			start_date = $5, end_date = $6, start_time = $7, end_time = $8,
			location = $9, address = $10, is_online = $11, online_url = $12,
			registration_required = $13, registration_deadline = $14, max_participants = $15,
			contact_person = $16, contact_phone = $17, contact_email = $18,
			status = $19, updated_at = $20
		WHERE id = $1
	`
	event.UpdatedAt = time.Now()
	_, err := r.pool.Exec(ctx, query,
		event.ID, event.Title, event.Description, event.Category,
		event.StartDate, event.EndDate, event.StartTime, event.EndTime,
		event.Location, event.Address, event.IsOnline, event.OnlineURL,
		event.RegistrationRequired, event.RegistrationDeadline, event.MaxParticipants,
		event.ContactPerson, event.ContactPhone, event.ContactEmail,
		event.Status, event.UpdatedAt,
	)
	return err
}

// Delete removes an event. Registrations go with it through the cascading
// foreign key.
func (r *PostgresEventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}
