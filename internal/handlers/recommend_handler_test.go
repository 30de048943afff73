package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobberBack/internal/models"
	"jobberBack/internal/services"
)

type stubTaskStore struct {
	task models.Task
	err  error
}

func (s *stubTaskStore) GetTaskByID(ctx context.Context, id int) (models.Task, error) {
	if s.err != nil {
		return models.Task{}, s.err
	}
	return s.task, nil
}

func (s *stubTaskStore) UpdateTaskEmbedding(ctx context.Context, id int, embedding string) error {
	return nil
}

type stubCategoryStore struct {
	categories []models.Category
}

func (s *stubCategoryStore) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories, nil
}

type stubSubcategoryStore struct{}

func (s *stubSubcategoryStore) GetAllSubcategories(ctx context.Context) ([]models.Subcategory, error) {
	return nil, nil
}

type stubSeekerStore struct {
	seekers map[int]models.Seeker
	all     []models.Seeker
}

func (s *stubSeekerStore) GetActiveSeekersByCategory(ctx context.Context, categoryID int) ([]models.Seeker, error) {
	var out []models.Seeker
	for _, seeker := range s.all {
		if seeker.CategoryID == categoryID {
			out = append(out, seeker)
		}
	}
	return out, nil
}

func (s *stubSeekerStore) GetActiveSeekersAll(ctx context.Context) ([]models.Seeker, error) {
	return s.all, nil
}

func (s *stubSeekerStore) GetSeekerByID(ctx context.Context, id int) (models.Seeker, error) {
	seeker, ok := s.seekers[id]
	if !ok {
		return models.Seeker{}, models.ErrSeekerNotFound
	}
	return seeker, nil
}

func intPtr(v int) *int { return &v }

func newRecommendHandler(tasks *stubTaskStore, seekers *stubSeekerStore) *RecommendHandler {
	categories := &stubCategoryStore{categories: []models.Category{
		{ID: 1, Name: "Plumbing"},
		{ID: 99, Name: "Other"},
	}}
	return &RecommendHandler{
		Service: &services.RecommendService{
			TaskRepo:        tasks,
			CategoryRepo:    categories,
			SubcategoryRepo: &stubSubcategoryStore{},
			SeekerRepo:      seekers,
		},
		PeerService: &services.PeerRecommendService{
			SeekerRepo:   seekers,
			CategoryRepo: categories,
		},
		ErrorLog: log.New(io.Discard, "", 0),
	}
}

func TestRecommendSeekersHandler(t *testing.T) {
	tasks := &stubTaskStore{task: models.Task{
		ID:          7,
		CategoryID:  intPtr(1),
		Description: "fix sink",
		Embedding:   "[1,0]",
	}}
	seekers := &stubSeekerStore{all: []models.Seeker{
		{ID: 1, CategoryID: 1, Embedding: "[1,0]"},
	}}
	handler := newRecommendHandler(tasks, seekers)

	req := httptest.NewRequest(http.MethodGet, "/api/recommend-seekers?task_id=7", nil)
	rr := httptest.NewRecorder()
	handler.RecommendSeekers(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200; body %s", rr.Code, rr.Body.String())
	}

	var resp models.RecommendResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.TaskID != 7 || resp.TotalMatches != 1 {
		t.Errorf("response = %+v", resp)
	}
}

func TestRecommendSeekersHandlerBadRequest(t *testing.T) {
	handler := newRecommendHandler(&stubTaskStore{}, &stubSeekerStore{})

	tests := []struct {
		name string
		url  string
	}{
		{"missing task_id", "/api/recommend-seekers"},
		{"non-numeric task_id", "/api/recommend-seekers?task_id=abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rr := httptest.NewRecorder()
			handler.RecommendSeekers(rr, req)
			if rr.Code != http.StatusBadRequest {
				t.Errorf("status = %d; want 400", rr.Code)
			}
		})
	}
}

func TestRecommendSeekersHandlerTaskNotFound(t *testing.T) {
	handler := newRecommendHandler(&stubTaskStore{err: models.ErrTaskNotFound}, &stubSeekerStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/recommend-seekers?task_id=404", nil)
	rr := httptest.NewRecorder()
	handler.RecommendSeekers(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d; want 404", rr.Code)
	}
}

func TestRecommendSeekersHandlerMissingCategory(t *testing.T) {
	handler := newRecommendHandler(&stubTaskStore{task: models.Task{ID: 7}}, &stubSeekerStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/recommend-seekers?task_id=7", nil)
	rr := httptest.NewRecorder()
	handler.RecommendSeekers(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", rr.Code)
	}
}

func TestGetRecommendationsHandler(t *testing.T) {
	ref := models.Seeker{ID: 5, CategoryID: 1, HourlyRate: 100}
	seekers := &stubSeekerStore{
		seekers: map[int]models.Seeker{5: ref},
		all:     []models.Seeker{ref},
	}
	handler := newRecommendHandler(&stubTaskStore{}, seekers)

	req := httptest.NewRequest(http.MethodGet, "/api/recommendations?:seekerId=5", nil)
	rr := httptest.NewRecorder()
	handler.GetRecommendations(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d; body %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Recommendations []models.PeerRecommendation `json:"recommendations"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Recommendations == nil {
		t.Error("recommendations must be an empty array, not null")
	}
	if len(resp.Recommendations) != 0 {
		t.Errorf("recommendations = %+v; want none for a lone seeker", resp.Recommendations)
	}
}

func TestGetRecommendationsHandlerSeekerNotFound(t *testing.T) {
	handler := newRecommendHandler(&stubTaskStore{}, &stubSeekerStore{seekers: map[int]models.Seeker{}})

	req := httptest.NewRequest(http.MethodGet, "/api/recommendations?:seekerId=404", nil)
	rr := httptest.NewRecorder()
	handler.GetRecommendations(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d; want 404", rr.Code)
	}
}
