package models

import "time"

const (
	HireStatusPending  = "pending"
	HireStatusAccepted = "accepted"
	HireStatusDeclined = "declined"
)

type HireRequest struct {
	ID        int       `json:"id"`
	TaskID    int       `json:"task_id"`
	SeekerID  int       `json:"seeker_id"`
	UserID    int       `json:"user_id"`
	Message   string    `json:"message,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}
