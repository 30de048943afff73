package models

// MatchResult is one ranked candidate in a recommendation response. It is
// computed per request and never persisted.
type MatchResult struct {
	SeekerID         int                 `json:"seeker_id"`
	Description      string              `json:"description"`
	Latitude         float64             `json:"latitude"`
	Longitude        float64             `json:"longitude"`
	Subcategories    []string            `json:"subcategories"`
	HourlyRate       float64             `json:"hourly_rate"`
	Category         string              `json:"category"`
	Similarity       float64             `json:"similarity"`
	DistanceKm       float64             `json:"distance_km"`
	SubcategoryScore float64             `json:"subcategory_score"`
	CategoryBoost    *float64            `json:"category_boost,omitempty"`
	CustomScore      *float64            `json:"custom_match_score,omitempty"`
	Score            float64             `json:"match_score"`
	Label            string              `json:"label"`
	Availability     map[string][]string `json:"availability"`
	FromCatchAll     bool                `json:"from_other_pool"`
}

type RecommendResponse struct {
	TaskID               int           `json:"task_id"`
	InferredCategory     interface{}   `json:"inferredCategory"`
	Results              []MatchResult `json:"results"`
	TotalMatches         int           `json:"totalMatches"`
	OtherCategoryMatches *int          `json:"otherCategoryMatches,omitempty"`
	OtherMatches         *int          `json:"otherMatches,omitempty"`
}

// PeerRecommendation is one entry of the "similar providers" list.
type PeerRecommendation struct {
	SeekerID        int     `json:"seeker_id"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	HourlyRate      float64 `json:"hourly_rate"`
	Score           float64 `json:"score"`
	MatchPercentage float64 `json:"match_percentage"`
}
