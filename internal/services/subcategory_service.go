package services

import (
	"context"

	"jobberBack/internal/models"
	"jobberBack/internal/repositories"
)

type SubcategoryService struct {
	SubcategoryRepo *repositories.SubcategoryRepository
}

func (s *SubcategoryService) CreateSubcategory(ctx context.Context, sub models.Subcategory) (models.Subcategory, error) {
	return s.SubcategoryRepo.CreateSubcategory(ctx, sub)
}

func (s *SubcategoryService) GetAllSubcategories(ctx context.Context) ([]models.Subcategory, error) {
	return s.SubcategoryRepo.GetAllSubcategories(ctx)
}

func (s *SubcategoryService) GetSubcategoriesByCategory(ctx context.Context, categoryID int) ([]models.Subcategory, error) {
	return s.SubcategoryRepo.GetSubcategoriesByCategory(ctx, categoryID)
}

func (s *SubcategoryService) DeleteSubcategory(ctx context.Context, id int) error {
	return s.SubcategoryRepo.DeleteSubcategory(ctx, id)
}
