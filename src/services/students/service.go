package students

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	DB "github.com/Deepak-csengineer05/zonavi-scms-sub000/src/database"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/models"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/services/scoring"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// GetStudentsWithFilter - ดึงข้อมูลนิสิตทั้งหมดที่ผ่านการ filter ตามเงื่อนไขที่ระบุ
func GetStudentsWithFilter(params models.PaginationParams, branches []string, years []string) ([]bson.M, int64, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{}

	// 🔍 Step : Search filter (name, email)
	if params.Search != "" {
		regex := bson.M{"$regex": params.Search, "$options": "i"}
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{
			"$or": bson.A{
				bson.M{"name": regex},
				bson.M{"email": regex},
			},
		}}})
	}

	// 🔍 Step : Filter by branch
	if len(branches) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{
			"branch": bson.M{"$in": branches},
		}}})
	}

	// 🔍 Step : Filter by year
	if len(years) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{
			"year": bson.M{"$in": years},
		}}})
	}

	// 🔢 Count pipeline (before pagination)
	countPipeline := append(pipeline, bson.D{{Key: "$count", Value: "total"}})
	countCursor, err := DB.StudentCollection.Aggregate(ctx, countPipeline)
	if err != nil {
		return nil, 0, 0, err
	}
	var countResult struct {
		Total int64 `bson:"total"`
	}
	if countCursor.Next(ctx) {
		_ = countCursor.Decode(&countResult)
	}
	total := countResult.Total

	// 📌 Project เฉพาะฟิลด์ที่ต้องการ - history stays out of list views
	pipeline = append(pipeline, bson.D{{Key: "$project", Value: bson.M{
		"_id":         0,
		"id":          "$_id",
		"name":        1,
		"email":       1,
		"branch":      1,
		"year":        1,
		"cgpa":        1,
		"careerScore": 1,
	}}})

	// 🔁 Sort, skip, limit
	sort := 1
	if strings.ToLower(params.Order) == "desc" {
		sort = -1
	}
	pipeline = append(pipeline,
		bson.D{{Key: "$sort", Value: bson.M{params.SortBy: sort}}},
		bson.D{{Key: "$skip", Value: (params.Page - 1) * params.Limit}},
		bson.D{{Key: "$limit", Value: params.Limit}},
	)

	cursor, err := DB.StudentCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, 0, err
	}
	defer cursor.Close(ctx)

	var results []bson.M
	if err := cursor.All(ctx, &results); err != nil {
		return nil, 0, 0, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(params.Limit)))
	return results, total, totalPages, nil
}

// GetStudentById - ดึงข้อมูลนิสิตตาม ID
func GetStudentById(id primitive.ObjectID) (*models.Student, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var student models.Student
	err := DB.StudentCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&student)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// isStudentExists ตรวจสอบว่ามี email ซ้ำหรือไม่
func isStudentExists(email string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := DB.StudentCollection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateStudent สร้าง Student พร้อมเพิ่ม User สำหรับ login
func CreateStudent(userInput *models.User, studentInput *models.Student) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	studentInput.Email = strings.ToLower(strings.TrimSpace(studentInput.Email))
	exists, err := isStudentExists(studentInput.Email)
	if err != nil {
		return err
	}
	if exists {
		return errors.New("student already exists")
	}

	hashedPassword, err := hashPassword(userInput.Password)
	if err != nil {
		return errors.New("failed to hash password")
	}
	userInput.Password = hashedPassword

	studentInput.ID = primitive.NewObjectID()
	studentInput.CareerScore = 0
	if _, err := DB.StudentCollection.InsertOne(ctx, studentInput); err != nil {
		return err
	}

	userInput.ID = primitive.NewObjectID()
	userInput.Role = "Student"
	userInput.RefID = studentInput.ID
	userInput.Email = studentInput.Email
	userInput.IsActive = true

	if _, err := DB.UserCollection.InsertOne(ctx, userInput); err != nil {
		// rollback
		DB.StudentCollection.DeleteOne(ctx, bson.M{"_id": studentInput.ID})
		return err
	}

	return nil
}

// UpdateStudent - อัปเดตโปรไฟล์นิสิต และ sync email ไปยัง User
// CGPA may change here, so the career score is recomputed afterwards.
func UpdateStudent(id string, student *models.Student) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid student ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	student.Email = strings.ToLower(strings.TrimSpace(student.Email))
	update := bson.M{"$set": bson.M{
		"name":     student.Name,
		"email":    student.Email,
		"branch":   student.Branch,
		"year":     student.Year,
		"cgpa":     student.CGPA,
		"phone":    student.Phone,
		"linkedin": student.LinkedIn,
		"github":   student.GitHub,
		"bio":      student.Bio,
	}}
	result, err := DB.StudentCollection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("student not found")
	}

	_, err = DB.UserCollection.UpdateOne(ctx,
		bson.M{"refId": objID, "role": "Student"},
		bson.M{"$set": bson.M{"email": student.Email}})
	if err != nil {
		return err
	}

	scoring.ComputeAndPersistScore(id)
	return nil
}

// DeleteStudent - ลบ Student พร้อมข้อมูลทั้งหมดที่นิสิตเป็นเจ้าของ
func DeleteStudent(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid student ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	owner := bson.M{"studentId": objID}
	owned := []*mongo.Collection{
		DB.ProjectCollection,
		DB.InternshipCollection,
		DB.JobCollection,
		DB.SkillCollection,
		DB.CertificateCollection,
	}
	for _, collection := range owned {
		if _, err := collection.DeleteMany(ctx, owner); err != nil {
			return err
		}
	}

	if _, err := DB.UserCollection.DeleteOne(ctx, bson.M{"refId": objID, "role": "Student"}); err != nil {
		return err
	}

	_, err = DB.StudentCollection.DeleteOne(ctx, bson.M{"_id": objID})
	return err
}
