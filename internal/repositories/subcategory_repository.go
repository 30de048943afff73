package repositories

import (
	"context"
	"database/sql"
	"time"

	"jobberBack/internal/models"
)

var ErrSubcategoryNotFound = models.ErrSubcategoryNotFound

type SubcategoryRepository struct {
	DB *sql.DB
}

func (r *SubcategoryRepository) CreateSubcategory(ctx context.Context, sub models.Subcategory) (models.Subcategory, error) {
	sub.CreatedAt = time.Now()

	query := `
		INSERT INTO subcategories (category_id, name, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, sub.CategoryID, sub.Name, sub.CreatedAt).Scan(&sub.ID)
	if err != nil {
		return models.Subcategory{}, err
	}
	return sub, nil
}

func (r *SubcategoryRepository) GetAllSubcategories(ctx context.Context) ([]models.Subcategory, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, category_id, name, created_at, updated_at
		FROM subcategories
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []models.Subcategory
	for rows.Next() {
		var sub models.Subcategory
		if err := rows.Scan(&sub.ID, &sub.CategoryID, &sub.Name, &sub.CreatedAt, &sub.UpdatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

func (r *SubcategoryRepository) GetSubcategoriesByCategory(ctx context.Context, categoryID int) ([]models.Subcategory, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, category_id, name, created_at, updated_at
		FROM subcategories
		WHERE category_id = $1
		ORDER BY id
	`, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []models.Subcategory
	for rows.Next() {
		var sub models.Subcategory
		if err := rows.Scan(&sub.ID, &sub.CategoryID, &sub.Name, &sub.CreatedAt, &sub.UpdatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

func (r *SubcategoryRepository) DeleteSubcategory(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM subcategories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSubcategoryNotFound
	}
	return nil
}
