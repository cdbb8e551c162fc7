package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User บัญชีผู้ใช้สำหรับ login
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"-"`
	Role     string             `bson:"role" json:"role"` // "Student" | "Employer" | "Admin"
	RefID    primitive.ObjectID `bson:"refId" json:"refId"`
	IsActive bool               `bson:"isActive" json:"isActive"`
	Name     string             `bson:"-" json:"name"`
}
