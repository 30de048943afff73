package services

import (
	"context"
	"fmt"
	"log"

	"jobberBack/internal/models"
	"jobberBack/internal/repositories"
)

// Notifier delivers in-app events to connected clients (websocket hub).
type Notifier interface {
	Notify(userID int, event string, payload interface{})
}

type HireService struct {
	HireRepo   *repositories.HireRepository
	SeekerRepo *repositories.SeekerRepository
	UserRepo   *repositories.UserRepository
	FCM        *FCMSender
	Hub        Notifier
	ErrorLog   *log.Logger
}

func (s *HireService) logError(format string, args ...interface{}) {
	if s.ErrorLog != nil {
		s.ErrorLog.Printf(format, args...)
	}
}

// notify pushes both an FCM message and an in-app event to the user.
// Notification delivery is best-effort and never fails the request.
func (s *HireService) notify(ctx context.Context, userID int, title, body, event string, hire models.HireRequest) {
	if s.Hub != nil {
		s.Hub.Notify(userID, event, hire)
	}
	if s.FCM == nil {
		return
	}
	user, err := s.UserRepo.GetUserByID(ctx, userID)
	if err != nil || user.FCMToken == "" {
		return
	}
	if err := s.FCM.Send(ctx, user.FCMToken, title, body, map[string]string{
		"hire_id": fmt.Sprint(hire.ID),
		"event":   event,
	}); err != nil {
		s.logError("send push to user %d: %v", userID, err)
	}
}

func (s *HireService) CreateHireRequest(ctx context.Context, hire models.HireRequest) (models.HireRequest, error) {
	created, err := s.HireRepo.CreateHireRequest(ctx, hire)
	if err != nil {
		return models.HireRequest{}, err
	}

	seeker, err := s.SeekerRepo.GetSeekerByID(ctx, created.SeekerID)
	if err == nil {
		s.notify(ctx, seeker.UserID, "New hire request", "You have a new hire request", "hire_created", created)
	}
	return created, nil
}

func (s *HireService) GetHireRequestByID(ctx context.Context, id int) (models.HireRequest, error) {
	return s.HireRepo.GetHireRequestByID(ctx, id)
}

func (s *HireService) ListHireRequestsByUser(ctx context.Context, userID int) ([]models.HireRequest, error) {
	return s.HireRepo.ListHireRequestsByUser(ctx, userID)
}

func (s *HireService) respond(ctx context.Context, id int, status, event string) (models.HireRequest, error) {
	hire, err := s.HireRepo.GetHireRequestByID(ctx, id)
	if err != nil {
		return models.HireRequest{}, err
	}
	if err := s.HireRepo.UpdateHireRequestStatus(ctx, id, status); err != nil {
		return models.HireRequest{}, err
	}
	hire.Status = status

	s.notify(ctx, hire.UserID, "Hire request "+status, fmt.Sprintf("Your hire request was %s", status), event, hire)
	return hire, nil
}

func (s *HireService) AcceptHireRequest(ctx context.Context, id int) (models.HireRequest, error) {
	return s.respond(ctx, id, models.HireStatusAccepted, "hire_accepted")
}

func (s *HireService) DeclineHireRequest(ctx context.Context, id int) (models.HireRequest, error) {
	return s.respond(ctx, id, models.HireStatusDeclined, "hire_declined")
}
