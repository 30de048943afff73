package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"jobberBack/internal/models"
	"jobberBack/internal/repositories"
	"jobberBack/utils"
)

type SeekerService struct {
	SeekerRepo *repositories.SeekerRepository
	OpenAI     *OpenAIClient
	Storage    *utils.S3Storage
	ErrorLog   *log.Logger
}

func (s *SeekerService) embedDescription(ctx context.Context, description string) string {
	if s.OpenAI == nil {
		return ""
	}
	vec, err := s.OpenAI.Embed(ctx, description)
	if err != nil {
		if s.ErrorLog != nil {
			s.ErrorLog.Printf("embed seeker description: %v", err)
		}
		return ""
	}
	if len(vec) == 0 {
		return ""
	}
	encoded, err := json.Marshal(vec)
	if err != nil {
		return ""
	}
	return string(encoded)
}

func (s *SeekerService) CreateSeeker(ctx context.Context, seeker models.Seeker) (models.Seeker, error) {
	seeker.Embedding = s.embedDescription(ctx, seeker.Description)
	seeker.Active = true
	return s.SeekerRepo.CreateSeeker(ctx, seeker)
}

func (s *SeekerService) GetSeekerByID(ctx context.Context, id int) (models.Seeker, error) {
	return s.SeekerRepo.GetSeekerByID(ctx, id)
}

func (s *SeekerService) UpdateSeeker(ctx context.Context, seeker models.Seeker) (models.Seeker, error) {
	seeker.Embedding = s.embedDescription(ctx, seeker.Description)
	return s.SeekerRepo.UpdateSeeker(ctx, seeker)
}

func (s *SeekerService) SetSeekerActive(ctx context.Context, id int, active bool) error {
	return s.SeekerRepo.SetSeekerActive(ctx, id, active)
}

// UploadPhoto stores a profile photo in object storage and records its URL.
func (s *SeekerService) UploadPhoto(ctx context.Context, seekerID int, file []byte, contentType string) (string, error) {
	fileName := fmt.Sprintf("%s.jpg", uuid.New().String())
	photoURL, err := s.Storage.UploadFile(file, fileName, "seekers", contentType)
	if err != nil {
		return "", err
	}
	if err := s.SeekerRepo.UpdateSeekerPhoto(ctx, seekerID, photoURL); err != nil {
		return "", err
	}
	return photoURL, nil
}
