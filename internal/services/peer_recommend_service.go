package services

import (
	"context"
	"math"
	"sort"
	"strings"

	"jobberBack/internal/models"
	"jobberBack/utils"
)

type SeekerGetter interface {
	GetSeekerByID(ctx context.Context, id int) (models.Seeker, error)
	GetActiveSeekersAll(ctx context.Context) ([]models.Seeker, error)
}

// PeerRecommendService ranks seekers similar to a reference seeker for the
// "similar providers" suggestions. It works on one-hot style feature vectors,
// not text embeddings.
type PeerRecommendService struct {
	SeekerRepo   SeekerGetter
	CategoryRepo CategoryStore
}

const (
	peerCategoryWeight = 2.0
	peerRateWeight     = 1.0
	peerRateTolerance  = 0.3
	peerMinSameCat     = 3
	peerTopSameCat     = 3
	peerFallbackCosine = 0.5
	peerSameCatBonus   = 0.1
	peerResultLimit    = 5
)

type peerCandidate struct {
	seeker   models.Seeker
	category string
	score    float64
	sameCat  bool
}

// GetRecommendations returns up to five seekers most similar to the
// reference, chosen by a cascading inclusion policy over category, pay rate
// and subcategory overlap.
func (s *PeerRecommendService) GetRecommendations(ctx context.Context, seekerID int) ([]models.PeerRecommendation, error) {
	ref, err := s.SeekerRepo.GetSeekerByID(ctx, seekerID)
	if err != nil {
		return nil, err
	}

	all, err := s.SeekerRepo.GetActiveSeekersAll(ctx)
	if err != nil {
		return nil, err
	}
	pool := make([]models.Seeker, 0, len(all))
	for _, seeker := range all {
		if seeker.ID != ref.ID {
			pool = append(pool, seeker)
		}
	}

	categories, err := s.CategoryRepo.GetAllCategories(ctx)
	if err != nil {
		return nil, err
	}
	categoryNames := make(map[int]string, len(categories))
	for _, cat := range categories {
		categoryNames[cat.ID] = cat.Name
	}
	normCategory := func(seeker models.Seeker) string {
		return utils.Slugify(categoryNames[seeker.CategoryID])
	}

	// Universe of distinct normalized categories currently present, in a
	// deterministic order.
	catIndex := make(map[string]int)
	var catUniverse []string
	addCat := func(name string) {
		if _, ok := catIndex[name]; !ok {
			catIndex[name] = 0
			catUniverse = append(catUniverse, name)
		}
	}
	addCat(normCategory(ref))
	for _, seeker := range pool {
		addCat(normCategory(seeker))
	}
	sort.Strings(catUniverse)
	for i, name := range catUniverse {
		catIndex[name] = i
	}

	subUniverse := subcategoryUniverse(ref, pool)

	minRate, maxRate := ref.HourlyRate, ref.HourlyRate
	for _, seeker := range pool {
		if seeker.HourlyRate < minRate {
			minRate = seeker.HourlyRate
		}
		if seeker.HourlyRate > maxRate {
			maxRate = seeker.HourlyRate
		}
	}

	vector := func(seeker models.Seeker) []float64 {
		// Layout: category one-hot block, subcategory block, normalized rate.
		// The subcategory block is allocated but stays zeroed, so similarity
		// currently comes from category and rate only.
		v := make([]float64, len(catUniverse)+len(subUniverse)+1)
		v[catIndex[normCategory(seeker)]] = peerCategoryWeight
		rate := 0.0
		if maxRate > minRate {
			rate = (seeker.HourlyRate - minRate) / (maxRate - minRate)
		}
		v[len(v)-1] = rate * peerRateWeight
		return v
	}

	refVec := vector(ref)
	refCat := normCategory(ref)
	candidates := make([]peerCandidate, 0, len(pool))
	for _, seeker := range pool {
		cat := normCategory(seeker)
		candidates = append(candidates, peerCandidate{
			seeker:   seeker,
			category: cat,
			score:    cosineSimilarity(refVec, vector(seeker)),
			sameCat:  cat == refCat,
		})
	}

	selected := selectPeers(ref, candidates)

	sort.SliceStable(selected, func(i, j int) bool {
		return sortKey(selected[i]) > sortKey(selected[j])
	})
	if len(selected) > peerResultLimit {
		selected = selected[:peerResultLimit]
	}

	recommendations := make([]models.PeerRecommendation, 0, len(selected))
	for _, cand := range selected {
		recommendations = append(recommendations, models.PeerRecommendation{
			SeekerID:        cand.seeker.ID,
			Description:     cand.seeker.Description,
			Category:        categoryNames[cand.seeker.CategoryID],
			HourlyRate:      cand.seeker.HourlyRate,
			Score:           cand.score,
			MatchPercentage: math.Round(cand.score*1000) / 10,
		})
	}
	return recommendations, nil
}

func sortKey(cand peerCandidate) float64 {
	key := cand.score
	if cand.sameCat {
		key += peerSameCatBonus
	}
	return key
}

// selectPeers applies the cascading inclusion policy:
//  1. same category and rate within tolerance, when at least three exist;
//  2. same category, when at least three exist;
//  3. top three same-category seekers unioned with subcategory sharers;
//  4. any seeker with raw cosine above the fallback threshold.
func selectPeers(ref models.Seeker, candidates []peerCandidate) []peerCandidate {
	var sameCat, sameCatNearRate []peerCandidate
	for _, cand := range candidates {
		if !cand.sameCat {
			continue
		}
		sameCat = append(sameCat, cand)
		if rateWithinTolerance(ref.HourlyRate, cand.seeker.HourlyRate) {
			sameCatNearRate = append(sameCatNearRate, cand)
		}
	}

	if len(sameCatNearRate) >= peerMinSameCat {
		return sameCatNearRate
	}
	if len(sameCat) >= peerMinSameCat {
		return sameCat
	}

	sort.SliceStable(sameCat, func(i, j int) bool {
		return sameCat[i].score > sameCat[j].score
	})
	if len(sameCat) > peerTopSameCat {
		sameCat = sameCat[:peerTopSameCat]
	}

	refSubs := subcategoryNameSet(ref)
	seen := make(map[int]bool, len(sameCat))
	selected := append([]peerCandidate(nil), sameCat...)
	for _, cand := range sameCat {
		seen[cand.seeker.ID] = true
	}
	for _, cand := range candidates {
		if seen[cand.seeker.ID] {
			continue
		}
		if sharesSubcategory(refSubs, cand.seeker) {
			seen[cand.seeker.ID] = true
			selected = append(selected, cand)
		}
	}
	if len(selected) > 0 {
		return selected
	}

	var fallback []peerCandidate
	for _, cand := range candidates {
		if cand.score > peerFallbackCosine {
			fallback = append(fallback, cand)
		}
	}
	return fallback
}

func rateWithinTolerance(refRate, rate float64) bool {
	if refRate == 0 {
		return rate == 0
	}
	return math.Abs(rate-refRate) <= peerRateTolerance*refRate
}

func subcategoryNameSet(seeker models.Seeker) map[string]bool {
	set := make(map[string]bool)
	for _, name := range seeker.Subcategories {
		set[strings.ToLower(name)] = true
	}
	for _, name := range seeker.CustomSubcategories {
		set[strings.ToLower(name)] = true
	}
	return set
}

func sharesSubcategory(refSubs map[string]bool, seeker models.Seeker) bool {
	if len(refSubs) == 0 {
		return false
	}
	for _, name := range seeker.Subcategories {
		if refSubs[strings.ToLower(name)] {
			return true
		}
	}
	for _, name := range seeker.CustomSubcategories {
		if refSubs[strings.ToLower(name)] {
			return true
		}
	}
	return false
}

func subcategoryUniverse(ref models.Seeker, pool []models.Seeker) []string {
	seen := make(map[string]bool)
	var universe []string
	add := func(name string) {
		name = strings.ToLower(name)
		if name != "" && !seen[name] {
			seen[name] = true
			universe = append(universe, name)
		}
	}
	for _, name := range ref.Subcategories {
		add(name)
	}
	for _, seeker := range pool {
		for _, name := range seeker.Subcategories {
			add(name)
		}
	}
	sort.Strings(universe)
	return universe
}
