package services

import (
	"context"
	"encoding/json"
	"log"

	"jobberBack/internal/models"
	"jobberBack/internal/repositories"
)

type TaskService struct {
	TaskRepo *repositories.TaskRepository
	OpenAI   *OpenAIClient
	ErrorLog *log.Logger
}

func (s *TaskService) logError(format string, args ...interface{}) {
	if s.ErrorLog != nil {
		s.ErrorLog.Printf(format, args...)
	}
}

// correctDescription runs the free-text description through the language
// model for spelling/grammar cleanup. Failures keep the original text.
func (s *TaskService) correctDescription(ctx context.Context, description string) string {
	if s.OpenAI == nil || description == "" {
		return description
	}
	resp, err := s.OpenAI.Complete(ctx, ChatCompletionRequest{
		Messages: []ChatMessage{
			{Role: "system", Content: "Fix spelling and grammar in the user's job description. Reply with the corrected text only."},
			{Role: "user", Content: description},
		},
		Temperature: 0,
	})
	if err != nil {
		s.logError("correct description: %v", err)
		return description
	}
	if resp.Content == "" {
		return description
	}
	return resp.Content
}

// embedDescription computes and serializes the description embedding.
// Failures degrade to an empty value stored as null; matching falls back to
// embedding-on-demand later.
func (s *TaskService) embedDescription(ctx context.Context, description string) string {
	if s.OpenAI == nil {
		return ""
	}
	vec, err := s.OpenAI.Embed(ctx, description)
	if err != nil {
		s.logError("embed description: %v", err)
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

func (s *TaskService) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	task.Description = s.correctDescription(ctx, task.Description)
	task.Embedding = s.embedDescription(ctx, task.Description)
	return s.TaskRepo.CreateTask(ctx, task)
}

func (s *TaskService) GetTaskByID(ctx context.Context, id int) (models.Task, error) {
	return s.TaskRepo.GetTaskByID(ctx, id)
}

func (s *TaskService) GetTasksByUserID(ctx context.Context, userID int) ([]models.Task, error) {
	return s.TaskRepo.GetTasksByUserID(ctx, userID)
}

func (s *TaskService) UpdateTask(ctx context.Context, task models.Task) (models.Task, error) {
	task.Description = s.correctDescription(ctx, task.Description)
	task.Embedding = s.embedDescription(ctx, task.Description)
	return s.TaskRepo.UpdateTask(ctx, task)
}

func (s *TaskService) DeleteTask(ctx context.Context, id int) error {
	return s.TaskRepo.DeleteTask(ctx, id)
}
