package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"jobberBack/internal/models"
)

var ErrSeekerNotFound = models.ErrSeekerNotFound

type SeekerRepository struct {
	DB *sql.DB
}

const seekerColumns = `
	id, user_id, description, latitude, longitude, embedding, category_id,
	custom_subcategories, legacy_subcategories, hourly_rate, payment_type,
	active, schedule, photo_url, created_at, updated_at`

func (r *SeekerRepository) scanSeeker(scan func(dest ...interface{}) error) (models.Seeker, error) {
	var s models.Seeker
	var embedding, custom, legacy, schedule, photo sql.NullString

	err := scan(
		&s.ID, &s.UserID, &s.Description, &s.Latitude, &s.Longitude, &embedding,
		&s.CategoryID, &custom, &legacy, &s.HourlyRate, &s.PaymentType,
		&s.Active, &schedule, &photo, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return models.Seeker{}, err
	}

	s.Embedding = embedding.String
	s.PhotoURL = photo.String
	// JSON columns are best-effort; a corrupted value degrades to an empty
	// list rather than failing the whole fetch.
	if custom.Valid {
		_ = json.Unmarshal([]byte(custom.String), &s.CustomSubcategories)
	}
	if legacy.Valid {
		_ = json.Unmarshal([]byte(legacy.String), &s.LegacySubcategories)
	}
	if schedule.Valid {
		_ = json.Unmarshal([]byte(schedule.String), &s.Schedule)
	}
	return s, nil
}

func (r *SeekerRepository) loadSubcategories(ctx context.Context, seeker *models.Seeker) error {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT sc.id, sc.name
		FROM seeker_subcategories ss
		JOIN subcategories sc ON sc.id = ss.subcategory_id
		WHERE ss.seeker_id = $1
		ORDER BY sc.id
	`, seeker.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id int
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return err
		}
		seeker.SubcategoryIDs = append(seeker.SubcategoryIDs, id)
		seeker.Subcategories = append(seeker.Subcategories, name)
	}
	return rows.Err()
}

func (r *SeekerRepository) GetSeekerByID(ctx context.Context, id int) (models.Seeker, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+seekerColumns+`
		FROM seekers
		WHERE id = $1
	`, id)

	seeker, err := r.scanSeeker(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Seeker{}, ErrSeekerNotFound
		}
		return models.Seeker{}, err
	}
	if err := r.loadSubcategories(ctx, &seeker); err != nil {
		return models.Seeker{}, err
	}
	return seeker, nil
}

func (r *SeekerRepository) querySeekers(ctx context.Context, query string, args ...interface{}) ([]models.Seeker, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var seekers []models.Seeker
	for rows.Next() {
		seeker, err := r.scanSeeker(rows.Scan)
		if err != nil {
			return nil, err
		}
		seekers = append(seekers, seeker)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range seekers {
		if err := r.loadSubcategories(ctx, &seekers[i]); err != nil {
			return nil, err
		}
	}
	return seekers, nil
}

// GetActiveSeekersByCategory returns the active pool for one category. Both
// the task-category pool and the catch-all pool go through this single
// parameterized fetch.
func (r *SeekerRepository) GetActiveSeekersByCategory(ctx context.Context, categoryID int) ([]models.Seeker, error) {
	return r.querySeekers(ctx, `
		SELECT `+seekerColumns+`
		FROM seekers
		WHERE active = TRUE AND category_id = $1
		ORDER BY id
	`, categoryID)
}

func (r *SeekerRepository) GetActiveSeekersAll(ctx context.Context) ([]models.Seeker, error) {
	return r.querySeekers(ctx, `
		SELECT `+seekerColumns+`
		FROM seekers
		WHERE active = TRUE
		ORDER BY id
	`)
}

func (r *SeekerRepository) CreateSeeker(ctx context.Context, seeker models.Seeker) (models.Seeker, error) {
	now := time.Now()
	seeker.CreatedAt = now
	seeker.UpdatedAt = now

	custom, _ := json.Marshal(seeker.CustomSubcategories)
	legacy, _ := json.Marshal(seeker.LegacySubcategories)
	schedule, _ := json.Marshal(seeker.Schedule)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Seeker{}, err
	}

	query := `
		INSERT INTO seekers (user_id, description, latitude, longitude, embedding, category_id,
			custom_subcategories, legacy_subcategories, hourly_rate, payment_type, active, schedule, photo_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, query,
		seeker.UserID, seeker.Description, seeker.Latitude, seeker.Longitude,
		nullString(seeker.Embedding), seeker.CategoryID, string(custom), string(legacy),
		seeker.HourlyRate, seeker.PaymentType, seeker.Active, string(schedule),
		nullString(seeker.PhotoURL), seeker.CreatedAt, seeker.UpdatedAt,
	).Scan(&seeker.ID)
	if err != nil {
		tx.Rollback()
		return models.Seeker{}, err
	}

	for _, subID := range seeker.SubcategoryIDs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO seeker_subcategories (seeker_id, subcategory_id) VALUES ($1, $2)
		`, seeker.ID, subID); err != nil {
			tx.Rollback()
			return models.Seeker{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Seeker{}, err
	}
	return seeker, nil
}

func (r *SeekerRepository) UpdateSeeker(ctx context.Context, seeker models.Seeker) (models.Seeker, error) {
	seeker.UpdatedAt = time.Now()

	custom, _ := json.Marshal(seeker.CustomSubcategories)
	legacy, _ := json.Marshal(seeker.LegacySubcategories)
	schedule, _ := json.Marshal(seeker.Schedule)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Seeker{}, err
	}

	query := `
		UPDATE seekers
		SET description = $1, latitude = $2, longitude = $3, embedding = $4, category_id = $5,
			custom_subcategories = $6, legacy_subcategories = $7, hourly_rate = $8,
			payment_type = $9, schedule = $10, updated_at = $11
		WHERE id = $12
	`
	result, err := tx.ExecContext(ctx, query,
		seeker.Description, seeker.Latitude, seeker.Longitude, nullString(seeker.Embedding),
		seeker.CategoryID, string(custom), string(legacy), seeker.HourlyRate,
		seeker.PaymentType, string(schedule), seeker.UpdatedAt, seeker.ID,
	)
	if err != nil {
		tx.Rollback()
		return models.Seeker{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		tx.Rollback()
		return models.Seeker{}, err
	}
	if affected == 0 {
		tx.Rollback()
		return models.Seeker{}, ErrSeekerNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM seeker_subcategories WHERE seeker_id = $1`, seeker.ID); err != nil {
		tx.Rollback()
		return models.Seeker{}, err
	}
	for _, subID := range seeker.SubcategoryIDs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO seeker_subcategories (seeker_id, subcategory_id) VALUES ($1, $2)
		`, seeker.ID, subID); err != nil {
			tx.Rollback()
			return models.Seeker{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Seeker{}, err
	}
	return seeker, nil
}

func (r *SeekerRepository) SetSeekerActive(ctx context.Context, id int, active bool) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE seekers SET active = $1, updated_at = $2 WHERE id = $3
	`, active, time.Now(), id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSeekerNotFound
	}
	return nil
}

func (r *SeekerRepository) UpdateSeekerEmbedding(ctx context.Context, id int, embedding string) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE seekers SET embedding = $1, updated_at = $2 WHERE id = $3
	`, nullString(embedding), time.Now(), id)
	return err
}

func (r *SeekerRepository) UpdateSeekerPhoto(ctx context.Context, id int, photoURL string) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE seekers SET photo_url = $1, updated_at = $2 WHERE id = $3
	`, photoURL, time.Now(), id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSeekerNotFound
	}
	return nil
}
