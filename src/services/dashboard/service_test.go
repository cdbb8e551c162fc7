package dashboard

import (
	"testing"
	"time"

	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/models"

	"github.com/stretchr/testify/assert"
)

func TestProfileCompletion(t *testing.T) {
	t.Run("FiveOfNineFields", func(t *testing.T) {
		student := models.Student{
			Name:   "Ananya",
			Email:  "ananya@example.com",
			Branch: "CSE",
			Year:   "3",
			CGPA:   8.2,
		}
		// round(500/9)
		assert.Equal(t, 56, profileCompletion(&student))
	})

	t.Run("FullProfile", func(t *testing.T) {
		student := models.Student{
			Name:     "Ananya",
			Email:    "ananya@example.com",
			Branch:   "CSE",
			Year:     "3",
			CGPA:     8.2,
			Phone:    "9876543210",
			LinkedIn: "linkedin.com/in/ananya",
			GitHub:   "github.com/ananya",
			Bio:      "Backend enthusiast",
		}
		assert.Equal(t, 100, profileCompletion(&student))
	})

	t.Run("EmptyProfile", func(t *testing.T) {
		assert.Equal(t, 0, profileCompletion(&models.Student{}))
	})

	t.Run("ZeroCGPACountsAsEmpty", func(t *testing.T) {
		student := models.Student{Name: "x", CGPA: 0}
		assert.Equal(t, 11, profileCompletion(&student)) // round(100/9)
	})
}

func TestBuildJobStats(t *testing.T) {
	t.Run("FixedKeysAlwaysPresent", func(t *testing.T) {
		stats := buildJobStats(nil)
		assert.Equal(t, map[string]int{
			"applied": 0, "interviewing": 0, "offered": 0, "accepted": 0, "rejected": 0,
		}, stats)
	})

	t.Run("CountsByStatus", func(t *testing.T) {
		jobs := []models.Job{
			{Status: models.JobStatusApplied},
			{Status: models.JobStatusApplied},
			{Status: models.JobStatusOffered},
			{Status: models.JobStatusRejected},
			{Status: models.JobStatusWithdrawn}, // not reported
		}
		stats := buildJobStats(jobs)
		assert.Equal(t, 2, stats["applied"])
		assert.Equal(t, 1, stats["offered"])
		assert.Equal(t, 1, stats["rejected"])
		assert.Equal(t, 0, stats["accepted"])
		assert.NotContains(t, stats, "withdrawn")
	})
}

func TestBuildSkillStats(t *testing.T) {
	skills := []models.Skill{
		{Name: "go", Level: models.SkillLevelBeginner},
		{Name: "react", Level: models.SkillLevelBeginner},
		{Name: "sql", Level: models.SkillLevelIntermediate},
		{Name: "python", Level: models.SkillLevelAdvanced},
		{Name: "bash", Level: models.SkillLevelExpert}, // outside the three buckets
	}

	stats := buildSkillStats(skills)
	assert.Equal(t, 2, stats["Beginner"])
	assert.Equal(t, 1, stats["Intermediate"])
	assert.Equal(t, 1, stats["Advanced"])
	assert.Len(t, stats, 3)
}

func TestRecentHistory(t *testing.T) {
	entry := func(score, day int) models.ScoreHistoryEntry {
		return models.ScoreHistoryEntry{
			Score:     score,
			Timestamp: time.Date(2025, 1, day, 0, 0, 0, 0, time.UTC),
		}
	}

	t.Run("KeepsLastTenChronological", func(t *testing.T) {
		var history []models.ScoreHistoryEntry
		for day := 1; day <= 15; day++ {
			history = append(history, entry(day*10, day))
		}

		recent := recentHistory(history, 10)

		assert.Len(t, recent, 10)
		assert.Equal(t, 60, recent[0].Score) // day 6 is the oldest kept
		assert.Equal(t, 150, recent[9].Score)
		for i := 1; i < len(recent); i++ {
			assert.True(t, recent[i-1].Timestamp.Before(recent[i].Timestamp))
		}
	})

	t.Run("ShortHistoryUnchanged", func(t *testing.T) {
		history := []models.ScoreHistoryEntry{entry(10, 1), entry(20, 2)}
		assert.Equal(t, history, recentHistory(history, 10))
	})

	t.Run("SortsUnorderedInput", func(t *testing.T) {
		history := []models.ScoreHistoryEntry{entry(30, 3), entry(10, 1), entry(20, 2)}
		recent := recentHistory(history, 10)
		assert.Equal(t, []int{10, 20, 30}, []int{recent[0].Score, recent[1].Score, recent[2].Score})
	})

	t.Run("EmptyHistory", func(t *testing.T) {
		assert.Empty(t, recentHistory(nil, 10))
	})
}
