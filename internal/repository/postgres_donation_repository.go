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

// PostgresDonationRepository implements DonationRepository using PostgreSQL
type PostgresDonationRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresDonationRepository creates a new PostgresDonationRepository
func NewPostgresDonationRepository(pool *pgxpool.Pool) *PostgresDonationRepository {
	return &PostgresDonationRepository{pool: pool}
}

const donationColumns = `
	id, mosque_id, amount,
	COALESCE(donor_name, ''), COALESCE(donor_phone, ''), COALESCE(donor_email, ''),
	COALESCE(purpose, ''), COALESCE(notes, ''),
	payment_method, COALESCE(reference_number, ''), status, receipt_number,
	created_at, updated_at
`

func scanDonation(row pgx.Row) (*domain.Donation, error) {
	d := &domain.Donation{}
	err := row.Scan(
		&d.ID, &d.MosqueID, &d.Amount,
		&d.DonorName, &d.DonorPhone, &d.DonorEmail,
		&d.Purpose, &d.Notes,
		&d.PaymentMethod, &d.ReferenceNumber, &d.Status, &d.ReceiptNumber,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Create creates a new donation record
func (r *PostgresDonationRepository) Create(ctx context.Context, donation *domain.Donation) error {
	query := `
		INSERT INTO donations (
			id, mosque_id, amount, donor_name, donor_phone, donor_email,
			purpose, notes, payment_method, reference_number, status, receipt_number,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.pool.Exec(ctx, query,
		donation.ID, donation.MosqueID, donation.Amount,
		donation.DonorName, donation.DonorPhone, donation.DonorEmail,
		donation.Purpose, donation.Notes,
		donation.PaymentMethod, donation.ReferenceNumber, donation.Status, donation.ReceiptNumber,
		donation.CreatedAt, donation.UpdatedAt,
	)
	return err
}

// GetByID retrieves a donation by ID
func (r *PostgresDonationRepository) GetByID(ctx context.Context, id string) (*domain.Donation, error) {
	query := `SELECT ` + donationColumns + ` FROM donations WHERE id = $1`
	d, err := scanDonation(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return d, nil
}

// List retrieves donations of a mosque with pagination and filters
func (r *PostgresDonationRepository) List(ctx context.Context, filter *dto.DonationListFilter) ([]*domain.Donation, int, error) {
	where := `WHERE mosque_id = $1`
	args := []interface{}{filter.MosqueID}
	argn := 2

	if filter.Status != "" {
		where += fmt.Sprintf(" AND status = $%d", argn)
		args = append(args, filter.Status)
		argn++
	}
	if filter.PaymentMethod != "" {
		where += fmt.Sprintf(" AND payment_method = $%d", argn)
		args = append(args, filter.PaymentMethod)
		argn++
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM donations `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + donationColumns + ` FROM donations ` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argn, argn+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	donations := []*domain.Donation{}
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			return nil, 0, err
		}
		donations = append(donations, d)
	}
	return donations, total, rows.Err()
}

// UpdateStatus updates the payment status of a donation
func (r *PostgresDonationRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE donations SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, status, time.Now())
	return err
}

// ExistsByReceiptNumber checks if a receipt number is already taken
func (r *PostgresDonationRepository) ExistsByReceiptNumber(ctx context.Context, number string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM donations WHERE receipt_number = $1)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, number).Scan(&exists)
	return exists, err
}

// TotalByMosque sums completed donation amounts for a mosque
func (r *PostgresDonationRepository) TotalByMosque(ctx context.Context, mosqueID string) (float64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM donations WHERE mosque_id = $1 AND status = $2`
	var total float64
	err := r.pool.QueryRow(ctx, query, mosqueID, domain.DonationStatusCompleted).Scan(&total)
	return total, err
}
