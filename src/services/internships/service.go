package internships

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

// CreateInternship - เพิ่มการฝึกงานของนิสิต
func CreateInternship(internship *models.Internship) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if internship.Company == "" {
		return errors.New("internship company is required")
	}

	internship.ID = primitive.NewObjectID()
	internship.CreatedAt = time.Now()
	if _, err := DB.InternshipCollection.InsertOne(ctx, internship); err != nil {
		return err
	}

	scoring.ComputeAndPersistScore(internship.StudentID.Hex())
	return nil
}

// GetInternshipsByStudent - ดึงการฝึกงานทั้งหมดของนิสิต
func GetInternshipsByStudent(studentID string) ([]models.Internship, error) {
	objID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return nil, errors.New("invalid student ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := DB.InternshipCollection.Find(ctx, bson.M{"studentId": objID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	internships := []models.Internship{}
	if err := cursor.All(ctx, &internships); err != nil {
		return nil, err
	}
	return internships, nil
}

// UpdateInternship - อัปเดตการฝึกงาน
func UpdateInternship(id, studentID string, internship *models.Internship) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid internship ID")
	}
	ownerID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return errors.New("invalid student ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := DB.InternshipCollection.UpdateOne(ctx,
		bson.M{"_id": objID, "studentId": ownerID},
		bson.M{"$set": bson.M{
			"company":     internship.Company,
			"role":        internship.Role,
			"startDate":   internship.StartDate,
			"endDate":     internship.EndDate,
			"description": internship.Description,
		}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("internship not found")
	}

	scoring.ComputeAndPersistScore(studentID)
	return nil
}

// DeleteInternship - ลบการฝึกงาน
func DeleteInternship(id, studentID string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid internship ID")
	}
	ownerID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return errors.New("invalid student ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := DB.InternshipCollection.DeleteOne(ctx, bson.M{"_id": objID, "studentId": ownerID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("internship not found")
	}

	scoring.ComputeAndPersistScore(studentID)
	return nil
}
