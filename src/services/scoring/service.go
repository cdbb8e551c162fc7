package scoring

import (
	"context"
	"log"
	"time"

	DB "github.com/Deepak-csengineer05/zonavi-scms-sub000/src/database"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// loadSnapshot reads the five activity counts, the job-status buckets and the
// student record. Each read targets a disjoint collection scoped to one student.
func loadSnapshot(ctx context.Context, studentID primitive.ObjectID) (ActivitySnapshot, *models.Student, error) {
	var snap ActivitySnapshot
	owner := bson.M{"studentId": studentID}

	projects, err := DB.ProjectCollection.CountDocuments(ctx, owner)
	if err != nil {
		return snap, nil, err
	}
	internships, err := DB.InternshipCollection.CountDocuments(ctx, owner)
	if err != nil {
		return snap, nil, err
	}
	skills, err := DB.SkillCollection.CountDocuments(ctx, owner)
	if err != nil {
		return snap, nil, err
	}
	certificates, err := DB.CertificateCollection.CountDocuments(ctx, owner)
	if err != nil {
		return snap, nil, err
	}

	cursor, err := DB.JobCollection.Find(ctx, owner)
	if err != nil {
		return snap, nil, err
	}
	defer cursor.Close(ctx)

	var jobs []models.Job
	if err := cursor.All(ctx, &jobs); err != nil {
		return snap, nil, err
	}
	for _, job := range jobs {
		switch job.Status {
		case models.JobStatusAccepted:
			snap.JobsAccepted++
		case models.JobStatusOffered:
			snap.JobsOffered++
		case models.JobStatusInterviewing:
			snap.JobsInterviewing++
		case models.JobStatusApplied:
			snap.JobsApplied++
		}
	}

	var student models.Student
	if err := DB.StudentCollection.FindOne(ctx, bson.M{"_id": studentID}).Decode(&student); err != nil {
		return snap, nil, err
	}

	snap.Projects = int(projects)
	snap.Internships = int(internships)
	snap.Skills = int(skills)
	snap.Certificates = int(certificates)
	snap.CGPA = student.CGPA

	return snap, &student, nil
}

// ComputeAndPersistScore recomputes the career score for one student and
// persists it, appending a history entry only when the value changed.
//
// This runs as a side effect of every activity mutation, so it must never fail
// the triggering request: any read error is logged and 0 is returned instead.
// Two rapid triggers for the same student may race on the write; last writer
// wins and the worst case is one spurious history entry.
func ComputeAndPersistScore(studentID string) int {
	objID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		log.Println("⚠️ scoring: invalid student ID:", studentID)
		return 0
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	snap, student, err := loadSnapshot(ctx, objID)
	if err != nil {
		log.Printf("⚠️ scoring: aggregation failed for %s: %v", studentID, err)
		return 0
	}

	score := ComputeScore(snap)
	if score == student.CareerScore {
		// No-op writes are suppressed to keep the history log meaningful.
		return score
	}

	entry := models.ScoreHistoryEntry{Score: score, Timestamp: time.Now()}
	_, err = DB.StudentCollection.UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{
			"$set":  bson.M{"careerScore": score},
			"$push": bson.M{"careerScoreHistory": entry},
		})
	if err != nil {
		log.Printf("⚠️ scoring: failed to persist score for %s: %v", studentID, err)
	}

	return score
}
