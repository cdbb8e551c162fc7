package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/database"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// AuthenticateUser ตรวจสอบ email/password และคืนข้อมูลผู้ใช้
func AuthenticateUser(email, password string) (*models.User, error) {
	ctx := context.Background()

	var dbUser models.User
	err := database.UserCollection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&dbUser)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dbUser.Password), []byte(password)); err != nil {
		return nil, errors.New("invalid email or password")
	}

	result := &models.User{
		ID:       dbUser.ID,
		Email:    dbUser.Email,
		Role:     dbUser.Role,
		RefID:    dbUser.RefID,
		IsActive: dbUser.IsActive,
	}

	// ดึง name จาก profile ตาม role
	if dbUser.Role == "Student" {
		var student models.Student
		err := database.StudentCollection.FindOne(ctx, bson.M{"_id": dbUser.RefID}).Decode(&student)
		if err == nil {
			result.Name = student.Name
		}
	}

	return result, nil
}

// GetUserByID - ดึงข้อมูลผู้ใช้ตาม ID (ใช้ตอน refresh token)
func GetUserByID(id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	var user models.User
	err = database.UserCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
