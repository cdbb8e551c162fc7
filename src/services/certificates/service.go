package certificates

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

// CreateCertificate - เพิ่มใบรับรองของนิสิต
func CreateCertificate(certificate *models.Certificate) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if certificate.Title == "" {
		return errors.New("certificate title is required")
	}

	certificate.ID = primitive.NewObjectID()
	certificate.CreatedAt = time.Now()
	if _, err := DB.CertificateCollection.InsertOne(ctx, certificate); err != nil {
		return err
	}

	scoring.ComputeAndPersistScore(certificate.StudentID.Hex())
	return nil
}

// GetCertificatesByStudent - ดึงใบรับรองทั้งหมดของนิสิต
func GetCertificatesByStudent(studentID string) ([]models.Certificate, error) {
	objID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return nil, errors.New("invalid student ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := DB.CertificateCollection.Find(ctx, bson.M{"studentId": objID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	certificates := []models.Certificate{}
	if err := cursor.All(ctx, &certificates); err != nil {
		return nil, err
	}
	return certificates, nil
}

// UpdateCertificate - อัปเดตใบรับรอง
func UpdateCertificate(id, studentID string, certificate *models.Certificate) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid certificate ID")
	}
	ownerID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return errors.New("invalid student ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := DB.CertificateCollection.UpdateOne(ctx,
		bson.M{"_id": objID, "studentId": ownerID},
		bson.M{"$set": bson.M{
			"title":    certificate.Title,
			"issuer":   certificate.Issuer,
			"issuedAt": certificate.IssuedAt,
			"link":     certificate.Link,
		}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("certificate not found")
	}

	scoring.ComputeAndPersistScore(studentID)
	return nil
}

// DeleteCertificate - ลบใบรับรอง
func DeleteCertificate(id, studentID string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid certificate ID")
	}
	ownerID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return errors.New("invalid student ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := DB.CertificateCollection.DeleteOne(ctx, bson.M{"_id": objID, "studentId": ownerID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("certificate not found")
	}

	scoring.ComputeAndPersistScore(studentID)
	return nil
}
