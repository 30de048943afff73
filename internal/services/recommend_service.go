package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"
	"time"

	"jobberBack/internal/models"
	"jobberBack/internal/repositories"
	"jobberBack/utils"
)

// catchAllSlug identifies the distinguished fallback category by normalized
// title. Seekers in this category are mixed into every match run.
const catchAllSlug = "other"

type TaskStore interface {
	GetTaskByID(ctx context.Context, id int) (models.Task, error)
	UpdateTaskEmbedding(ctx context.Context, id int, embedding string) error
}

type CategoryStore interface {
	GetAllCategories(ctx context.Context) ([]models.Category, error)
}

type SubcategoryStore interface {
	GetAllSubcategories(ctx context.Context) ([]models.Subcategory, error)
}

type SeekerStore interface {
	GetActiveSeekersByCategory(ctx context.Context, categoryID int) ([]models.Seeker, error)
	GetActiveSeekersAll(ctx context.Context) ([]models.Seeker, error)
}

type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// RecommendService ranks active seekers against a task by blending embedding
// similarity, geographic distance and category/subcategory signals.
type RecommendService struct {
	TaskRepo        TaskStore
	CategoryRepo    CategoryStore
	SubcategoryRepo SubcategoryStore
	SeekerRepo      SeekerStore
	Embedder        Embedder
	ErrorLog        *log.Logger

	// Now is overridable so availability windows are deterministic in tests.
	Now func() time.Time
}

// candidate carries one seeker through the scoring pipeline.
type candidate struct {
	seeker       models.Seeker
	fromCatchAll bool
	similarity   float64
	distanceKm   float64
	distScore    float64
	subcatScore  float64
	customScore  float64
	boost        float64
	score        float64
}

func (s *RecommendService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *RecommendService) logError(format string, args ...interface{}) {
	if s.ErrorLog != nil {
		s.ErrorLog.Printf(format, args...)
	}
}

// RecommendSeekers runs the full matching pipeline for one task: candidate
// fetch, feature scoring, blend, ranking and filtering.
func (s *RecommendService) RecommendSeekers(ctx context.Context, taskID int) (models.RecommendResponse, error) {
	task, err := s.TaskRepo.GetTaskByID(ctx, taskID)
	if err != nil {
		return models.RecommendResponse{}, err
	}
	if task.CategoryID == nil {
		return models.RecommendResponse{}, models.ErrTaskCategoryMissing
	}

	categories, err := s.CategoryRepo.GetAllCategories(ctx)
	if err != nil {
		return models.RecommendResponse{}, err
	}

	var catchAll *models.Category
	categoryNames := make(map[int]string, len(categories))
	for i := range categories {
		categoryNames[categories[i].ID] = categories[i].Name
		if catchAll == nil && utils.Slugify(categories[i].Name) == catchAllSlug {
			catchAll = &categories[i]
		}
	}
	taskIsCatchAll := catchAll != nil && *task.CategoryID == catchAll.ID

	pool, err := s.fetchCandidates(ctx, task, catchAll, taskIsCatchAll)
	if err != nil {
		return models.RecommendResponse{}, err
	}

	taskVec, err := s.taskVector(ctx, task)
	if err != nil {
		return models.RecommendResponse{}, err
	}

	var taxonomy taxonomyMatch
	if taskIsCatchAll {
		subcategories, err := s.SubcategoryRepo.GetAllSubcategories(ctx)
		if err != nil {
			return models.RecommendResponse{}, err
		}
		taxonomy = scanTaskKeywords(task.Description, categories, subcategories)
	}

	candidates := s.scoreFeatures(task, pool, taskVec, taskIsCatchAll, taxonomy)
	assignDistanceScores(candidates)
	blendScores(candidates, taskIsCatchAll)

	var (
		results       []candidate
		catchCount    int
		nonCatchCount int
	)
	if taskIsCatchAll {
		results, catchCount, nonCatchCount = rankCatchAllTask(candidates)
	} else {
		results = rankSpecificTask(candidates)
	}

	resp := models.RecommendResponse{
		TaskID:           task.ID,
		InferredCategory: nil,
		Results:          s.buildResults(results, categoryNames, taskIsCatchAll),
		TotalMatches:     len(results),
	}
	if taskIsCatchAll {
		resp.OtherCategoryMatches = &catchCount
		resp.OtherMatches = &nonCatchCount
	}
	return resp, nil
}

// fetchCandidates builds the merged candidate pool. Specific-category tasks
// get their own pool plus the catch-all pool; a catch-all task considers all
// active seekers, catch-all pool first.
func (s *RecommendService) fetchCandidates(ctx context.Context, task models.Task, catchAll *models.Category, taskIsCatchAll bool) ([]candidate, error) {
	var pool []candidate

	if taskIsCatchAll {
		all, err := s.SeekerRepo.GetActiveSeekersAll(ctx)
		if err != nil {
			return nil, err
		}
		for _, seeker := range all {
			if seeker.CategoryID == catchAll.ID {
				pool = append(pool, candidate{seeker: seeker, fromCatchAll: true})
			}
		}
		for _, seeker := range all {
			if seeker.CategoryID != catchAll.ID {
				pool = append(pool, candidate{seeker: seeker})
			}
		}
		return pool, nil
	}

	primary, err := s.SeekerRepo.GetActiveSeekersByCategory(ctx, *task.CategoryID)
	if err != nil {
		return nil, err
	}
	seen := make(map[int]bool, len(primary))
	for _, seeker := range primary {
		seen[seeker.ID] = true
		pool = append(pool, candidate{seeker: seeker})
	}

	if catchAll != nil && catchAll.ID != *task.CategoryID {
		fallback, err := s.SeekerRepo.GetActiveSeekersByCategory(ctx, catchAll.ID)
		if err != nil {
			return nil, err
		}
		for _, seeker := range fallback {
			if seen[seeker.ID] {
				continue
			}
			seen[seeker.ID] = true
			pool = append(pool, candidate{seeker: seeker, fromCatchAll: true})
		}
	}
	return pool, nil
}

// taskVector returns the task's unit-normalized embedding, recomputing it on
// the fly when the cached value is missing or unparsable. Write-back of a
// fresh embedding is best-effort and never blocks the response.
func (s *RecommendService) taskVector(ctx context.Context, task models.Task) ([]float64, error) {
	vec := normalizeVector(parseVector(task.Embedding))
	if vec != nil {
		return vec, nil
	}
	if s.Embedder == nil {
		return nil, models.ErrTaskEmbedding
	}

	raw, err := s.Embedder.Embed(ctx, task.Description)
	if err != nil {
		return nil, fmt.Errorf("embed task description: %w", err)
	}
	vec = normalizeVector(raw)
	if vec == nil {
		return nil, models.ErrTaskEmbedding
	}

	encoded, err := json.Marshal(raw)
	if err == nil {
		go func(id int, embedding string) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.TaskRepo.UpdateTaskEmbedding(ctx, id, embedding); err != nil {
				s.logError("write back task %d embedding: %v", id, err)
			}
		}(task.ID, string(encoded))
	}
	return vec, nil
}

// scoreFeatures computes the per-candidate features, dropping candidates
// excluded by the hard rules: payment-type mismatch, unusable embedding,
// non-finite location.
func (s *RecommendService) scoreFeatures(task models.Task, pool []candidate, taskVec []float64, taskIsCatchAll bool, taxonomy taxonomyMatch) []candidate {
	scored := make([]candidate, 0, len(pool))
	for _, cand := range pool {
		seeker := cand.seeker

		if task.PaymentType != "" && seeker.PaymentType != "" &&
			!strings.EqualFold(task.PaymentType, seeker.PaymentType) {
			continue
		}

		candVec := normalizeVector(parseVector(seeker.Embedding))
		if candVec == nil {
			continue
		}
		cand.similarity = dotProduct(taskVec, candVec)

		cand.distanceKm = repositories.HaversineDistanceKm(task.Latitude, task.Longitude, seeker.Latitude, seeker.Longitude)
		if math.IsNaN(cand.distanceKm) || math.IsInf(cand.distanceKm, 0) {
			continue
		}

		cand.subcatScore = subcategoryScore(task.Description, seeker.Subcategories)
		if taskIsCatchAll {
			if cand.fromCatchAll {
				cand.customScore = customSubcategoryScore(task.Description, seeker.CustomSubcategories)
			} else {
				cand.boost = categoryBoost(seeker, taxonomy)
			}
		}

		scored = append(scored, cand)
	}
	return scored
}

// assignDistanceScores min-max normalizes distance across the candidate set:
// 1 for the closest, 0 for the farthest, 1 for everyone when the set has no
// distance range.
func assignDistanceScores(candidates []candidate) {
	if len(candidates) == 0 {
		return
	}
	minDist, maxDist := candidates[0].distanceKm, candidates[0].distanceKm
	for _, c := range candidates[1:] {
		if c.distanceKm < minDist {
			minDist = c.distanceKm
		}
		if c.distanceKm > maxDist {
			maxDist = c.distanceKm
		}
	}
	spread := maxDist - minDist
	for i := range candidates {
		if spread == 0 {
			candidates[i].distScore = 1
			continue
		}
		candidates[i].distScore = 1 - (candidates[i].distanceKm-minDist)/spread
	}
}

// blendScores applies the category-dependent weighting rules and the
// distance penalty, clamping the result to [0,1].
func blendScores(candidates []candidate, taskIsCatchAll bool) {
	for i := range candidates {
		c := &candidates[i]
		sim := math.Max(0, c.similarity)
		penalty := distancePenalty(c.distanceKm)

		var score float64
		switch {
		case taskIsCatchAll && c.fromCatchAll && c.customScore > 0:
			score = (0.6*c.customScore + 0.3*sim + 0.1*c.distScore) * penalty
		case taskIsCatchAll && c.fromCatchAll:
			score = (0.9*sim + 0.1*c.distScore) * penalty
		case taskIsCatchAll:
			score = (0.35*sim+0.2*c.subcatScore+0.1*c.distScore)*penalty + 0.35*c.boost
		case c.fromCatchAll:
			score = sim * penalty
		default:
			score = (0.6*sim + 0.25*c.subcatScore + 0.15*c.distScore) * penalty
		}
		c.score = clamp01(score)
	}
}

// rankCatchAllTask splits the scored set into the catch-all pool and the
// rest, orders and filters each under its own policy, and concatenates the
// catch-all pool first.
func rankCatchAllTask(candidates []candidate) (results []candidate, catchCount, nonCatchCount int) {
	var catchPool, otherPool []candidate
	for _, c := range candidates {
		if c.fromCatchAll {
			catchPool = append(catchPool, c)
		} else {
			otherPool = append(otherPool, c)
		}
	}

	sort.SliceStable(catchPool, func(i, j int) bool {
		if catchPool[i].customScore != catchPool[j].customScore {
			return catchPool[i].customScore > catchPool[j].customScore
		}
		if catchPool[i].score != catchPool[j].score {
			return catchPool[i].score > catchPool[j].score
		}
		return catchPool[i].similarity > catchPool[j].similarity
	})
	sort.SliceStable(otherPool, func(i, j int) bool {
		if otherPool[i].score != otherPool[j].score {
			return otherPool[i].score > otherPool[j].score
		}
		if otherPool[i].boost != otherPool[j].boost {
			return otherPool[i].boost > otherPool[j].boost
		}
		return otherPool[i].similarity > otherPool[j].similarity
	})

	for _, c := range catchPool {
		if c.customScore > 0 || c.similarity >= 0.25 || c.score >= 0.15 {
			results = append(results, c)
			catchCount++
		}
	}
	for _, c := range otherPool {
		if (c.similarity >= 0.20 || c.subcatScore >= 0.30 || c.boost >= 0.30) && c.score >= 0.15 {
			results = append(results, c)
			nonCatchCount++
		}
	}
	return results, catchCount, nonCatchCount
}

// rankSpecificTask sorts all candidates by match score; the per-candidate
// exclusions already applied are the only filter.
func rankSpecificTask(candidates []candidate) []candidate {
	results := make([]candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.score >= 0 {
			results = append(results, c)
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})
	return results
}

func (s *RecommendService) buildResults(candidates []candidate, categoryNames map[int]string, taskIsCatchAll bool) []models.MatchResult {
	now := s.now()
	results := make([]models.MatchResult, 0, len(candidates))
	for _, c := range candidates {
		result := models.MatchResult{
			SeekerID:         c.seeker.ID,
			Description:      c.seeker.Description,
			Latitude:         c.seeker.Latitude,
			Longitude:        c.seeker.Longitude,
			Subcategories:    c.seeker.Subcategories,
			HourlyRate:       c.seeker.HourlyRate,
			Category:         categoryNames[c.seeker.CategoryID],
			Similarity:       c.similarity,
			DistanceKm:       c.distanceKm,
			SubcategoryScore: c.subcatScore,
			Score:            c.score,
			Label:            matchLabel(c.score),
			Availability:     expandAvailability(c.seeker.Schedule, now, availabilityLookaheadDays),
			FromCatchAll:     c.fromCatchAll,
		}
		if taskIsCatchAll {
			if c.fromCatchAll {
				custom := c.customScore
				result.CustomScore = &custom
			} else {
				boost := c.boost
				result.CategoryBoost = &boost
			}
		}
		results = append(results, result)
	}
	return results
}
