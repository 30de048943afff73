package models

import "time"

// WeeklySchedule maps a lowercase weekday name ("monday") to the time slots
// the seeker works on that day ("09:00-13:00").
type WeeklySchedule map[string][]string

type Seeker struct {
	ID                  int            `json:"id"`
	UserID              int            `json:"user_id"`
	Description         string         `json:"description"`
	Latitude            float64        `json:"latitude"`
	Longitude           float64        `json:"longitude"`
	Embedding           string         `json:"-"`
	CategoryID          int            `json:"category_id"`
	SubcategoryIDs      []int          `json:"subcategory_ids,omitempty"`
	Subcategories       []string       `json:"subcategories,omitempty"`
	CustomSubcategories []string       `json:"custom_subcategories,omitempty"`
	LegacySubcategories []string       `json:"legacy_subcategories,omitempty"`
	HourlyRate          float64        `json:"hourly_rate"`
	PaymentType         string         `json:"payment_type"`
	Active              bool           `json:"active"`
	Schedule            WeeklySchedule `json:"schedule,omitempty"`
	PhotoURL            string         `json:"photo_url,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at,omitempty"`
}
