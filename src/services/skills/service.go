package skills

import (
	"context"
	"errors"
	"strings"
	"time"

	DB "github.com/Deepak-csengineer05/zonavi-scms-sub000/src/database"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/models"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/services/scoring"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NormalizeName คืนชื่อทักษะแบบ lowercase - the stored and matched form.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NormalizeLevel lowercases a level so the enum check accepts "Beginner" etc.
func NormalizeLevel(level string) string {
	return strings.ToLower(strings.TrimSpace(level))
}

// CreateSkill - เพิ่มทักษะของนิสิต
// Names are unique per student after normalization.
func CreateSkill(skill *models.Skill) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	skill.Name = NormalizeName(skill.Name)
	skill.Level = NormalizeLevel(skill.Level)
	if skill.Name == "" {
		return errors.New("skill name is required")
	}
	if !models.IsValidSkillLevel(skill.Level) {
		return errors.New("invalid skill level")
	}

	count, err := DB.SkillCollection.CountDocuments(ctx, bson.M{
		"studentId": skill.StudentID,
		"name":      skill.Name,
	})
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.New("skill already exists")
	}

	skill.ID = primitive.NewObjectID()
	if _, err := DB.SkillCollection.InsertOne(ctx, skill); err != nil {
		return err
	}

	scoring.ComputeAndPersistScore(skill.StudentID.Hex())
	return nil
}

// GetSkillsByStudent - ดึงทักษะทั้งหมดของนิสิต
func GetSkillsByStudent(studentID string) ([]models.Skill, error) {
	objID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return nil, errors.New("invalid student ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := DB.SkillCollection.Find(ctx, bson.M{"studentId": objID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	skills := []models.Skill{}
	if err := cursor.All(ctx, &skills); err != nil {
		return nil, err
	}
	return skills, nil
}

// SkillNames returns the normalized skill names of one student, for matching.
func SkillNames(studentID string) ([]string, error) {
	skills, err := GetSkillsByStudent(studentID)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(skills))
	for _, skill := range skills {
		names = append(names, skill.Name)
	}
	return names, nil
}

// UpdateSkillLevel - อัปเดตระดับทักษะ
func UpdateSkillLevel(id, studentID, level string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid skill ID")
	}
	ownerID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return errors.New("invalid student ID")
	}

	level = NormalizeLevel(level)
	if !models.IsValidSkillLevel(level) {
		return errors.New("invalid skill level")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := DB.SkillCollection.UpdateOne(ctx,
		bson.M{"_id": objID, "studentId": ownerID},
		bson.M{"$set": bson.M{"level": level}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("skill not found")
	}

	scoring.ComputeAndPersistScore(studentID)
	return nil
}

// DeleteSkill - ลบทักษะ
func DeleteSkill(id, studentID string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid skill ID")
	}
	ownerID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return errors.New("invalid student ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := DB.SkillCollection.DeleteOne(ctx, bson.M{"_id": objID, "studentId": ownerID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("skill not found")
	}

	scoring.ComputeAndPersistScore(studentID)
	return nil
}
