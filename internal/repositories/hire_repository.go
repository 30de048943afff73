package repositories

import (
	"context"
	"database/sql"
	"time"

	"jobberBack/internal/models"
)

var ErrHireRequestNotFound = models.ErrHireRequestNotFound

type HireRepository struct {
	DB *sql.DB
}

func (r *HireRepository) CreateHireRequest(ctx context.Context, hire models.HireRequest) (models.HireRequest, error) {
	now := time.Now()
	hire.CreatedAt = now
	hire.UpdatedAt = now
	hire.Status = models.HireStatusPending

	query := `
		INSERT INTO hire_requests (task_id, seeker_id, user_id, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		hire.TaskID, hire.SeekerID, hire.UserID, hire.Message, hire.Status,
		hire.CreatedAt, hire.UpdatedAt,
	).Scan(&hire.ID)
	if err != nil {
		return models.HireRequest{}, err
	}
	return hire, nil
}

func (r *HireRepository) GetHireRequestByID(ctx context.Context, id int) (models.HireRequest, error) {
	var hire models.HireRequest

	query := `
		SELECT id, task_id, seeker_id, user_id, message, status, created_at, updated_at
		FROM hire_requests
		WHERE id = $1
	`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&hire.ID, &hire.TaskID, &hire.SeekerID, &hire.UserID, &hire.Message,
		&hire.Status, &hire.CreatedAt, &hire.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.HireRequest{}, ErrHireRequestNotFound
		}
		return models.HireRequest{}, err
	}
	return hire, nil
}

func (r *HireRepository) UpdateHireRequestStatus(ctx context.Context, id int, status string) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE hire_requests SET status = $1, updated_at = $2 WHERE id = $3
	`, status, time.Now(), id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrHireRequestNotFound
	}
	return nil
}

func (r *HireRepository) ListHireRequestsByUser(ctx context.Context, userID int) ([]models.HireRequest, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, task_id, seeker_id, user_id, message, status, created_at, updated_at
		FROM hire_requests
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hires []models.HireRequest
	for rows.Next() {
		var hire models.HireRequest
		if err := rows.Scan(
			&hire.ID, &hire.TaskID, &hire.SeekerID, &hire.UserID, &hire.Message,
			&hire.Status, &hire.CreatedAt, &hire.UpdatedAt,
		); err != nil {
			return nil, err
		}
		hires = append(hires, hire)
	}
	return hires, rows.Err()
}

func (r *HireRepository) SavePayment(ctx context.Context, payment models.PaymentRecord) (models.PaymentRecord, error) {
	payment.CreatedAt = time.Now()

	query := `
		INSERT INTO payments (hire_id, invoice_id, amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		payment.HireID, payment.InvoiceID, payment.Amount, payment.Status, payment.CreatedAt,
	).Scan(&payment.ID)
	if err != nil {
		return models.PaymentRecord{}, err
	}
	return payment, nil
}

func (r *HireRepository) UpdatePaymentStatus(ctx context.Context, invoiceID, status string) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE payments SET status = $1 WHERE invoice_id = $2
	`, status, invoiceID)
	return err
}
