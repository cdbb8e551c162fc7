// Package jobs manages the student's personal job-application tracker.
package jobs

import (
	"context"
	"errors"
	"time"

	DB "github.com/Deepak-csengineer05/zonavi-scms-sub000/src/database"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/models"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/services/scoring"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateJob - เพิ่มรายการสมัครงานของนิสิต
func CreateJob(job *models.Job) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if job.Company == "" {
		return errors.New("job company is required")
	}
	if job.Status == "" {
		job.Status = models.JobStatusApplied
	}
	if !models.IsValidJobStatus(job.Status) {
		return errors.New("invalid job status")
	}

	job.ID = primitive.NewObjectID()
	if job.AppliedAt.IsZero() {
		job.AppliedAt = time.Now()
	}
	if _, err := DB.JobCollection.InsertOne(ctx, job); err != nil {
		return err
	}

	scoring.ComputeAndPersistScore(job.StudentID.Hex())
	return nil
}

// GetJobsByStudent - ดึงรายการสมัครงานทั้งหมดของนิสิต
func GetJobsByStudent(studentID string) ([]models.Job, error) {
	objID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return nil, errors.New("invalid student ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := DB.JobCollection.Find(ctx, bson.M{"studentId": objID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	jobs := []models.Job{}
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// UpdateJobStatus - อัปเดตสถานะการสมัครงาน
func UpdateJobStatus(id, studentID, status string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid job ID")
	}
	ownerID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return errors.New("invalid student ID")
	}
	if !models.IsValidJobStatus(status) {
		return errors.New("invalid job status")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := DB.JobCollection.UpdateOne(ctx,
		bson.M{"_id": objID, "studentId": ownerID},
		bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("job not found")
	}

	scoring.ComputeAndPersistScore(studentID)
	return nil
}

// DeleteJob - ลบรายการสมัครงาน
func DeleteJob(id, studentID string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid job ID")
	}
	ownerID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return errors.New("invalid student ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := DB.JobCollection.DeleteOne(ctx, bson.M{"_id": objID, "studentId": ownerID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("job not found")
	}

	scoring.ComputeAndPersistScore(studentID)
	return nil
}
