package dashboard

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	DB "github.com/Deepak-csengineer05/zonavi-scms-sub000/src/database"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/models"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/services/scoring"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// historyLimit is how many score-history entries the dashboard shows.
const historyLimit = 10

// BuildDashboard สร้างข้อมูลสรุปของนิสิตหนึ่งคน
// Read path: unlike the scoring side effect this fails loudly - any error
// yields (nil, err) and no partial dashboard is returned.
func BuildDashboard(studentID string) (*models.DashboardView, error) {
	objID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return nil, errors.New("invalid student ID")
	}

	// Refresh the stored score first so the dashboard never shows stale data.
	scoring.ComputeAndPersistScore(studentID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	owner := bson.M{"studentId": objID}

	projectCount, err := DB.ProjectCollection.CountDocuments(ctx, owner)
	if err != nil {
		return nil, err
	}
	internshipCount, err := DB.InternshipCollection.CountDocuments(ctx, owner)
	if err != nil {
		return nil, err
	}
	certificateCount, err := DB.CertificateCollection.CountDocuments(ctx, owner)
	if err != nil {
		return nil, err
	}

	jobCursor, err := DB.JobCollection.Find(ctx, owner)
	if err != nil {
		return nil, err
	}
	var jobs []models.Job
	if err := jobCursor.All(ctx, &jobs); err != nil {
		return nil, err
	}

	skillCursor, err := DB.SkillCollection.Find(ctx, owner)
	if err != nil {
		return nil, err
	}
	var skills []models.Skill
	if err := skillCursor.All(ctx, &skills); err != nil {
		return nil, err
	}

	var student models.Student
	if err := DB.StudentCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&student); err != nil {
		return nil, err
	}

	return &models.DashboardView{
		CareerScore:       student.CareerScore,
		ProjectCount:      projectCount,
		InternshipCount:   internshipCount,
		CertificateCount:  certificateCount,
		SkillCount:        int64(len(skills)),
		JobStats:          buildJobStats(jobs),
		ProfileCompletion: profileCompletion(&student),
		SkillStats:        buildSkillStats(skills),
		ScoreHistory:      recentHistory(student.CareerScoreHistory, historyLimit),
	}, nil
}

// buildJobStats buckets tracker entries into the five reported statuses.
// Keys are always present; withdrawn entries are not reported.
func buildJobStats(jobs []models.Job) map[string]int {
	stats := map[string]int{
		models.JobStatusApplied:      0,
		models.JobStatusInterviewing: 0,
		models.JobStatusOffered:      0,
		models.JobStatusAccepted:     0,
		models.JobStatusRejected:     0,
	}
	for _, job := range jobs {
		if _, ok := stats[job.Status]; ok {
			stats[job.Status]++
		}
	}
	return stats
}

// profileCompletion = round(100 * filled / 9) over the tracked profile fields.
// CGPA counts as filled when it is above zero.
func profileCompletion(s *models.Student) int {
	fields := []bool{
		s.Name != "",
		s.Email != "",
		s.Branch != "",
		s.Year != "",
		s.CGPA > 0,
		s.Phone != "",
		s.LinkedIn != "",
		s.GitHub != "",
		s.Bio != "",
	}

	filled := 0
	for _, ok := range fields {
		if ok {
			filled++
		}
	}
	return int(math.Round(float64(filled) * 100 / models.ProfileFieldCount))
}

// buildSkillStats counts skills into the three dashboard buckets. Levels are
// stored lowercase, so the match is case-insensitive; expert skills are not
// part of the reported histogram.
func buildSkillStats(skills []models.Skill) map[string]int {
	stats := map[string]int{
		"Beginner":     0,
		"Intermediate": 0,
		"Advanced":     0,
	}
	for _, skill := range skills {
		for bucket := range stats {
			if strings.EqualFold(skill.Level, bucket) {
				stats[bucket]++
			}
		}
	}
	return stats
}

// recentHistory returns the last limit entries in chronological order.
func recentHistory(history []models.ScoreHistoryEntry, limit int) []models.ScoreHistoryEntry {
	sorted := make([]models.ScoreHistoryEntry, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	if len(sorted) > limit {
		sorted = sorted[len(sorted)-limit:]
	}
	return sorted
}
