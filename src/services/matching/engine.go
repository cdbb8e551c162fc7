// Package matching ranks job postings against a student's skill inventory.
// Pure computation: no I/O, no side effects.
package matching

import (
	"math"
	"sort"
	"strings"

	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/models"
)

// RecommendThreshold is the minimum match percentage for a recommendation.
// The boundary is inclusive.
const RecommendThreshold = 50

// RankPostings scores every posting against the student's skills and returns
// them ordered by match percentage descending, deadline ascending on ties.
// Postings with equal percentage and deadline keep their input order.
//
// Callers pass postings already filtered to active-and-not-expired. A posting
// with no required skills scores 0 and is never recommended: fit cannot be
// assessed when nothing is required.
func RankPostings(skillNames []string, postings []models.JobPosting, recommendedOnly bool) []models.RankedPosting {
	owned := make(map[string]bool, len(skillNames))
	for _, name := range skillNames {
		owned[strings.ToLower(strings.TrimSpace(name))] = true
	}

	ranked := make([]models.RankedPosting, 0, len(postings))
	for _, posting := range postings {
		var matched, missing []string
		for _, req := range posting.SkillsRequired {
			if owned[strings.ToLower(strings.TrimSpace(req))] {
				matched = append(matched, req)
			} else {
				missing = append(missing, req)
			}
		}

		percentage := 0
		if len(posting.SkillsRequired) > 0 {
			percentage = int(math.Round(float64(len(matched)) * 100 / float64(len(posting.SkillsRequired))))
		}

		item := models.RankedPosting{
			Posting:         posting,
			MatchPercentage: percentage,
			IsRecommended:   percentage >= RecommendThreshold,
			MatchedSkills:   matched,
			MissingSkills:   missing,
		}
		if recommendedOnly && !item.IsRecommended {
			continue
		}
		ranked = append(ranked, item)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].MatchPercentage != ranked[j].MatchPercentage {
			return ranked[i].MatchPercentage > ranked[j].MatchPercentage
		}
		return ranked[i].Posting.Deadline.Before(ranked[j].Posting.Deadline)
	})

	return ranked
}
