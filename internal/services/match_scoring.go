package services

import (
	"strings"

	"jobberBack/internal/models"
	"jobberBack/utils"
)

// Word-length thresholds for the keyword-overlap strategy. Taxonomy names
// need a shared word longer than 3 characters; free-text custom subcategories
// are noisier and use the looser threshold.
const (
	taxonomyWordLen = 3
	customWordLen   = 2
)

// subcategoryScore is the fraction of the candidate's resolved subcategory
// names that literally appear in the task description. Capped at 1.0; zero
// when no subcategories are declared.
func subcategoryScore(taskDesc string, subcategories []string) float64 {
	if len(subcategories) == 0 {
		return 0
	}
	desc := strings.ToLower(taskDesc)
	matched := 0
	for _, name := range subcategories {
		if utils.KeywordOverlap(desc, name, taxonomyWordLen) {
			matched++
		}
	}
	score := float64(matched) / float64(len(subcategories))
	if score > 1 {
		score = 1
	}
	return score
}

// customSubcategoryScore scores a catch-all candidate's free-text custom
// subcategories against the task description. Any match boosts the score
// into [0.5, 1.0] proportional to the matching fraction; this is a
// deliberately high-priority signal.
func customSubcategoryScore(taskDesc string, custom []string) float64 {
	if len(custom) == 0 {
		return 0
	}
	desc := strings.ToLower(taskDesc)
	matched := 0
	for _, name := range custom {
		if utils.KeywordOverlap(desc, name, customWordLen) {
			matched++
		}
	}
	if matched == 0 {
		return 0
	}
	return 0.5 + 0.5*float64(matched)/float64(len(custom))
}

// taxonomyMatch holds what a scan of the task description found across the
// whole category/subcategory taxonomy.
type taxonomyMatch struct {
	categoryIDs    map[int]bool
	subcategoryIDs map[int]bool
	keywords       []string
}

// scanTaskKeywords searches the task description for category titles and
// subcategory names, collecting matched ids and the literal keyword strings.
// Only used when the task itself sits in the catch-all category.
func scanTaskKeywords(taskDesc string, categories []models.Category, subcategories []models.Subcategory) taxonomyMatch {
	desc := strings.ToLower(taskDesc)
	match := taxonomyMatch{
		categoryIDs:    make(map[int]bool),
		subcategoryIDs: make(map[int]bool),
	}

	for _, cat := range categories {
		if utils.KeywordOverlap(desc, cat.Name, taxonomyWordLen) {
			match.categoryIDs[cat.ID] = true
			match.keywords = append(match.keywords, strings.ToLower(cat.Name))
		}
	}
	for _, sub := range subcategories {
		if utils.KeywordOverlap(desc, sub.Name, taxonomyWordLen) {
			match.subcategoryIDs[sub.ID] = true
			match.categoryIDs[sub.CategoryID] = true
			match.keywords = append(match.keywords, strings.ToLower(sub.Name))
		}
	}
	return match
}

func keywordMatchFraction(entries []string, keywords []string, minWordLen int) float64 {
	if len(entries) == 0 || len(keywords) == 0 {
		return 0
	}
	matched := 0
	for _, entry := range entries {
		for _, kw := range keywords {
			if utils.KeywordOverlap(kw, entry, minWordLen) || utils.KeywordOverlap(entry, kw, minWordLen) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(entries))
}

// categoryBoost awards partial credit to a non-catch-all candidate scored
// against a catch-all task: 0.4 for a direct category match, up to 0.3 for
// subcategory id overlap, up to 0.2 each for custom and legacy keyword
// overlap. Capped at 1.0.
func categoryBoost(seeker models.Seeker, match taxonomyMatch) float64 {
	var boost float64

	if match.categoryIDs[seeker.CategoryID] {
		boost += 0.4
	}

	if len(seeker.SubcategoryIDs) > 0 {
		overlap := 0
		for _, id := range seeker.SubcategoryIDs {
			if match.subcategoryIDs[id] {
				overlap++
			}
		}
		boost += 0.3 * float64(overlap) / float64(len(seeker.SubcategoryIDs))
	}

	boost += 0.2 * keywordMatchFraction(seeker.CustomSubcategories, match.keywords, customWordLen)
	boost += 0.2 * keywordMatchFraction(seeker.LegacySubcategories, match.keywords, taxonomyWordLen)

	if boost > 1 {
		boost = 1
	}
	return boost
}

// distancePenalty is 1.0 within 10 km and decays linearly toward a 0.7 floor
// beyond that.
func distancePenalty(distanceKm float64) float64 {
	if distanceKm <= 10 {
		return 1.0
	}
	penalty := 1 - (distanceKm-10)/100
	if penalty < 0.7 {
		return 0.7
	}
	return penalty
}

func matchLabel(score float64) string {
	switch {
	case score >= 0.70:
		return "Excellent match"
	case score >= 0.50:
		return "Very good match"
	case score >= 0.40:
		return "Good match"
	case score >= 0.25:
		return "Possible match"
	default:
		return "Low match"
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
