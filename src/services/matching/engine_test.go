package matching

import (
	"testing"
	"time"

	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/models"

	"github.com/stretchr/testify/assert"
)

func posting(title string, deadline time.Time, required ...string) models.JobPosting {
	return models.JobPosting{
		Title:          title,
		SkillsRequired: required,
		Deadline:       deadline,
		Active:         true,
	}
}

func TestRankPostings(t *testing.T) {
	day := func(n int) time.Time {
		return time.Date(2025, 6, n, 0, 0, 0, 0, time.UTC)
	}

	t.Run("ZeroRequirementsNeverRecommended", func(t *testing.T) {
		ranked := RankPostings([]string{"go", "react"}, []models.JobPosting{
			posting("open role", day(1)),
		}, false)

		assert.Len(t, ranked, 1)
		assert.Equal(t, 0, ranked[0].MatchPercentage)
		assert.False(t, ranked[0].IsRecommended)
	})

	t.Run("ThresholdIsInclusive", func(t *testing.T) {
		ranked := RankPostings([]string{"a", "b"}, []models.JobPosting{
			posting("half match", day(1), "a", "b", "c", "d"),
		}, false)

		assert.Equal(t, 50, ranked[0].MatchPercentage)
		assert.True(t, ranked[0].IsRecommended)
	})

	t.Run("CaseInsensitiveMatch", func(t *testing.T) {
		ranked := RankPostings([]string{"react"}, []models.JobPosting{
			posting("frontend", day(1), "React"),
		}, false)

		assert.Equal(t, 100, ranked[0].MatchPercentage)
		assert.Equal(t, []string{"React"}, ranked[0].MatchedSkills)
	})

	t.Run("MissingSkillsReported", func(t *testing.T) {
		ranked := RankPostings([]string{"go"}, []models.JobPosting{
			posting("backend", day(1), "Go", "Kubernetes", "Postgres"),
		}, false)

		assert.Equal(t, 33, ranked[0].MatchPercentage)
		assert.Equal(t, []string{"Go"}, ranked[0].MatchedSkills)
		assert.Equal(t, []string{"Kubernetes", "Postgres"}, ranked[0].MissingSkills)
	})

	t.Run("SortByPercentageThenDeadline", func(t *testing.T) {
		skills := []string{"a", "b", "c", "d"}
		// 80%, 80%, 60% with deadlines day3, day1, day2
		p1 := posting("p1", day(3), "a", "b", "c", "d", "e")
		p2 := posting("p2", day(1), "a", "b", "c", "d", "f")
		p3 := posting("p3", day(2), "a", "b", "c", "e", "f")

		ranked := RankPostings(skills, []models.JobPosting{p1, p2, p3}, false)

		assert.Equal(t, []string{"p2", "p1", "p3"}, []string{
			ranked[0].Posting.Title,
			ranked[1].Posting.Title,
			ranked[2].Posting.Title,
		})
	})

	t.Run("EqualPercentageAndDeadlineKeepsInputOrder", func(t *testing.T) {
		skills := []string{"go"}
		first := posting("first", day(5), "go")
		second := posting("second", day(5), "go")

		ranked := RankPostings(skills, []models.JobPosting{first, second}, false)

		assert.Equal(t, "first", ranked[0].Posting.Title)
		assert.Equal(t, "second", ranked[1].Posting.Title)
	})

	t.Run("RecommendedOnlyDropsWeakMatches", func(t *testing.T) {
		skills := []string{"go"}
		strong := posting("strong", day(1), "go")
		weak := posting("weak", day(1), "go", "rust", "zig")

		ranked := RankPostings(skills, []models.JobPosting{strong, weak}, true)

		assert.Len(t, ranked, 1)
		assert.Equal(t, "strong", ranked[0].Posting.Title)
	})

	t.Run("NoSkillsNoMatches", func(t *testing.T) {
		ranked := RankPostings(nil, []models.JobPosting{
			posting("anything", day(1), "go"),
		}, false)

		assert.Equal(t, 0, ranked[0].MatchPercentage)
		assert.False(t, ranked[0].IsRecommended)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		assert.Empty(t, RankPostings([]string{"go"}, nil, false))
	})
}
