package projects

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

// CreateProject - เพิ่มโปรเจกต์ของนิสิต
func CreateProject(project *models.Project) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if project.Title == "" {
		return errors.New("project title is required")
	}

	project.ID = primitive.NewObjectID()
	project.CreatedAt = time.Now()
	if _, err := DB.ProjectCollection.InsertOne(ctx, project); err != nil {
		return err
	}

	scoring.ComputeAndPersistScore(project.StudentID.Hex())
	return nil
}

// GetProjectsByStudent - ดึงโปรเจกต์ทั้งหมดของนิสิต
func GetProjectsByStudent(studentID string) ([]models.Project, error) {
	objID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return nil, errors.New("invalid student ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := DB.ProjectCollection.Find(ctx, bson.M{"studentId": objID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	projects := []models.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// UpdateProject - อัปเดตโปรเจกต์ (เฉพาะของนิสิตเจ้าของ)
func UpdateProject(id, studentID string, project *models.Project) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid project ID")
	}
	ownerID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return errors.New("invalid student ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := DB.ProjectCollection.UpdateOne(ctx,
		bson.M{"_id": objID, "studentId": ownerID},
		bson.M{"$set": bson.M{
			"title":       project.Title,
			"description": project.Description,
			"techStack":   project.TechStack,
			"link":        project.Link,
		}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("project not found")
	}

	scoring.ComputeAndPersistScore(studentID)
	return nil
}

// DeleteProject - ลบโปรเจกต์
func DeleteProject(id, studentID string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid project ID")
	}
	ownerID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return errors.New("invalid student ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := DB.ProjectCollection.DeleteOne(ctx, bson.M{"_id": objID, "studentId": ownerID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("project not found")
	}

	scoring.ComputeAndPersistScore(studentID)
	return nil
}
