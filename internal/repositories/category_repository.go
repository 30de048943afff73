package repositories

import (
	"context"
	"database/sql"
	"time"

	"jobberBack/internal/models"
)

var ErrCategoryNotFound = models.ErrCategoryNotFound

type CategoryRepository struct {
	DB *sql.DB
}

func (r *CategoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now

	query := `
		INSERT INTO categories (name, image_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, category.Name, category.ImagePath, category.CreatedAt, category.UpdatedAt).Scan(&category.ID)
	if err != nil {
		return models.Category{}, err
	}

	return category, nil
}

func (r *CategoryRepository) GetCategoryByID(ctx context.Context, id int) (models.Category, error) {
	var category models.Category

	query := `
		SELECT id, name, image_path, created_at, updated_at
		FROM categories
		WHERE id = $1
	`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&category.ID,
		&category.Name,
		&category.ImagePath,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Category{}, ErrCategoryNotFound
		}
		return models.Category{}, err
	}

	subRows, err := r.DB.QueryContext(ctx, `
		SELECT id, category_id, name, created_at, updated_at
		FROM subcategories
		WHERE category_id = $1
	`, category.ID)
	if err != nil {
		return models.Category{}, err
	}
	defer subRows.Close()

	for subRows.Next() {
		var sub models.Subcategory
		if err := subRows.Scan(&sub.ID, &sub.CategoryID, &sub.Name, &sub.CreatedAt, &sub.UpdatedAt); err != nil {
			return models.Category{}, err
		}
		category.Subcategories = append(category.Subcategories, sub)
	}

	return category, subRows.Err()
}

func (r *CategoryRepository) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, image_path, created_at, updated_at
		FROM categories
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.ImagePath, &category.CreatedAt, &category.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	category.UpdatedAt = time.Now()

	query := `
		UPDATE categories
		SET name = $1, image_path = $2, updated_at = $3
		WHERE id = $4
	`
	result, err := r.DB.ExecContext(ctx, query, category.Name, category.ImagePath, category.UpdatedAt, category.ID)
	if err != nil {
		return models.Category{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return models.Category{}, err
	}
	if affected == 0 {
		return models.Category{}, ErrCategoryNotFound
	}

	return category, nil
}

func (r *CategoryRepository) DeleteCategory(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
