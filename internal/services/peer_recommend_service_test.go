package services

import (
	"context"
	"errors"
	"testing"

	"jobberBack/internal/models"
)

type stubSeekerGetter struct {
	seekers map[int]models.Seeker
	all     []models.Seeker
}

func (s *stubSeekerGetter) GetSeekerByID(ctx context.Context, id int) (models.Seeker, error) {
	seeker, ok := s.seekers[id]
	if !ok {
		return models.Seeker{}, models.ErrSeekerNotFound
	}
	return seeker, nil
}

func (s *stubSeekerGetter) GetActiveSeekersAll(ctx context.Context) ([]models.Seeker, error) {
	return s.all, nil
}

func newPeerService(ref models.Seeker, pool ...models.Seeker) *PeerRecommendService {
	all := append([]models.Seeker{ref}, pool...)
	seekers := make(map[int]models.Seeker, len(all))
	for _, s := range all {
		seekers[s.ID] = s
	}
	return &PeerRecommendService{
		SeekerRepo: &stubSeekerGetter{seekers: seekers, all: all},
		CategoryRepo: &stubCategoryStore{categories: []models.Category{
			{ID: 1, Name: "Electrical"},
			{ID: 2, Name: "Cleaning"},
		}},
	}
}

func recommendationIDs(recs []models.PeerRecommendation) map[int]bool {
	ids := make(map[int]bool, len(recs))
	for _, r := range recs {
		ids[r.SeekerID] = true
	}
	return ids
}

func TestPeerRecommendationsSameCategoryNearRate(t *testing.T) {
	ref := models.Seeker{ID: 10, CategoryID: 1, HourlyRate: 100}
	svc := newPeerService(ref,
		models.Seeker{ID: 11, CategoryID: 1, HourlyRate: 80},
		models.Seeker{ID: 12, CategoryID: 1, HourlyRate: 100},
		models.Seeker{ID: 13, CategoryID: 1, HourlyRate: 120},
		models.Seeker{ID: 14, CategoryID: 1, HourlyRate: 200},
		models.Seeker{ID: 15, CategoryID: 2, HourlyRate: 100},
	)

	recs, err := svc.GetRecommendations(context.Background(), 10)
	if err != nil {
		t.Fatalf("GetRecommendations: %v", err)
	}

	if len(recs) != 3 {
		t.Fatalf("got %d recommendations; want 3", len(recs))
	}
	ids := recommendationIDs(recs)
	for _, want := range []int{11, 12, 13} {
		if !ids[want] {
			t.Errorf("seeker %d missing from recommendations", want)
		}
	}
	if ids[14] {
		t.Errorf("seeker 14 is outside the rate tolerance and must be excluded")
	}
	if ids[15] {
		t.Errorf("seeker 15 is in another category and must be excluded")
	}

	// The identical-rate peer is the closest match.
	if recs[0].SeekerID != 12 {
		t.Errorf("top recommendation = %d; want 12", recs[0].SeekerID)
	}
	if recs[0].MatchPercentage != 100.0 {
		t.Errorf("top match percentage = %f; want 100.0", recs[0].MatchPercentage)
	}
	if recs[0].Category != "Electrical" {
		t.Errorf("top category = %q; want Electrical", recs[0].Category)
	}
}

func TestPeerRecommendationsLimit(t *testing.T) {
	ref := models.Seeker{ID: 10, CategoryID: 1, HourlyRate: 100}
	pool := make([]models.Seeker, 0, 6)
	for i := 0; i < 6; i++ {
		pool = append(pool, models.Seeker{ID: 20 + i, CategoryID: 1, HourlyRate: 90 + float64(i)})
	}
	svc := newPeerService(ref, pool...)

	recs, err := svc.GetRecommendations(context.Background(), 10)
	if err != nil {
		t.Fatalf("GetRecommendations: %v", err)
	}
	if len(recs) != peerResultLimit {
		t.Fatalf("got %d recommendations; want %d", len(recs), peerResultLimit)
	}
}

func TestPeerRecommendationsSubcategoryUnion(t *testing.T) {
	ref := models.Seeker{ID: 10, CategoryID: 1, HourlyRate: 100, Subcategories: []string{"wiring"}}
	svc := newPeerService(ref,
		models.Seeker{ID: 11, CategoryID: 1, HourlyRate: 90},
		models.Seeker{ID: 12, CategoryID: 1, HourlyRate: 110},
		models.Seeker{ID: 15, CategoryID: 2, HourlyRate: 100, Subcategories: []string{"Wiring"}},
		models.Seeker{ID: 16, CategoryID: 2, HourlyRate: 100},
	)

	recs, err := svc.GetRecommendations(context.Background(), 10)
	if err != nil {
		t.Fatalf("GetRecommendations: %v", err)
	}

	if len(recs) != 3 {
		t.Fatalf("got %d recommendations; want 3", len(recs))
	}
	ids := recommendationIDs(recs)
	for _, want := range []int{11, 12, 15} {
		if !ids[want] {
			t.Errorf("seeker %d missing from recommendations", want)
		}
	}
	if ids[16] {
		t.Errorf("seeker 16 shares nothing with the reference and must be excluded")
	}

	// Same-category peers outrank the cross-category subcategory sharer.
	if recs[len(recs)-1].SeekerID != 15 {
		t.Errorf("last recommendation = %d; want the cross-category sharer 15", recs[len(recs)-1].SeekerID)
	}
}

func TestPeerRecommendationsEmpty(t *testing.T) {
	ref := models.Seeker{ID: 10, CategoryID: 1, HourlyRate: 100}
	svc := newPeerService(ref,
		models.Seeker{ID: 15, CategoryID: 2, HourlyRate: 100},
		models.Seeker{ID: 16, CategoryID: 2, HourlyRate: 100},
	)

	recs, err := svc.GetRecommendations(context.Background(), 10)
	if err != nil {
		t.Fatalf("GetRecommendations: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("got %d recommendations; want none", len(recs))
	}
}

func TestPeerRecommendationsSeekerNotFound(t *testing.T) {
	svc := &PeerRecommendService{
		SeekerRepo:   &stubSeekerGetter{seekers: map[int]models.Seeker{}},
		CategoryRepo: &stubCategoryStore{},
	}
	_, err := svc.GetRecommendations(context.Background(), 404)
	if !errors.Is(err, models.ErrSeekerNotFound) {
		t.Fatalf("err = %v; want ErrSeekerNotFound", err)
	}
}

func TestRateWithinTolerance(t *testing.T) {
	tests := []struct {
		ref, rate float64
		want      bool
	}{
		{100, 100, true},
		{100, 70, true},
		{100, 130, true},
		{100, 131, false},
		{100, 69, false},
		{0, 0, true},
		{0, 50, false},
	}
	for _, tt := range tests {
		if got := rateWithinTolerance(tt.ref, tt.rate); got != tt.want {
			t.Errorf("rateWithinTolerance(%v, %v) = %v; want %v", tt.ref, tt.rate, got, tt.want)
		}
	}
}
