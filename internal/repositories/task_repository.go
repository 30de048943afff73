package repositories

import (
	"context"
	"database/sql"
	"time"

	"jobberBack/internal/models"
)

var ErrTaskNotFound = models.ErrTaskNotFound

type TaskRepository struct {
	DB *sql.DB
}

func (r *TaskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now
	if task.Status == "" {
		task.Status = "open"
	}

	query := `
		INSERT INTO tasks (user_id, description, latitude, longitude, embedding, payment_type, category_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		task.UserID, task.Description, task.Latitude, task.Longitude,
		nullString(task.Embedding), task.PaymentType, task.CategoryID, task.Status,
		task.CreatedAt, task.UpdatedAt,
	).Scan(&task.ID)
	if err != nil {
		return models.Task{}, err
	}

	return task, nil
}

func (r *TaskRepository) GetTaskByID(ctx context.Context, id int) (models.Task, error) {
	var task models.Task
	var embedding sql.NullString

	query := `
		SELECT id, user_id, description, latitude, longitude, embedding, payment_type, category_id, status, created_at, updated_at
		FROM tasks
		WHERE id = $1
	`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&task.ID,
		&task.UserID,
		&task.Description,
		&task.Latitude,
		&task.Longitude,
		&embedding,
		&task.PaymentType,
		&task.CategoryID,
		&task.Status,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, err
	}
	task.Embedding = embedding.String

	return task, nil
}

func (r *TaskRepository) GetTasksByUserID(ctx context.Context, userID int) ([]models.Task, error) {
	query := `
		SELECT id, user_id, description, latitude, longitude, payment_type, category_id, status, created_at, updated_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(
			&task.ID, &task.UserID, &task.Description, &task.Latitude, &task.Longitude,
			&task.PaymentType, &task.CategoryID, &task.Status, &task.CreatedAt, &task.UpdatedAt,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (r *TaskRepository) UpdateTask(ctx context.Context, task models.Task) (models.Task, error) {
	task.UpdatedAt = time.Now()

	query := `
		UPDATE tasks
		SET description = $1, latitude = $2, longitude = $3, embedding = $4, payment_type = $5, category_id = $6, status = $7, updated_at = $8
		WHERE id = $9
	`
	result, err := r.DB.ExecContext(ctx, query,
		task.Description, task.Latitude, task.Longitude, nullString(task.Embedding),
		task.PaymentType, task.CategoryID, task.Status, task.UpdatedAt, task.ID,
	)
	if err != nil {
		return models.Task{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return models.Task{}, err
	}
	if affected == 0 {
		return models.Task{}, ErrTaskNotFound
	}

	return task, nil
}

// UpdateTaskEmbedding writes back a freshly computed embedding. Best-effort
// from the matcher's point of view; failures are logged by the caller only.
func (r *TaskRepository) UpdateTaskEmbedding(ctx context.Context, id int, embedding string) error {
	query := `UPDATE tasks SET embedding = $1, updated_at = $2 WHERE id = $3`
	_, err := r.DB.ExecContext(ctx, query, nullString(embedding), time.Now(), id)
	return err
}

func (r *TaskRepository) DeleteTask(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
