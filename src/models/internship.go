package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Internship การฝึกงานของนิสิต
type Internship struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID   primitive.ObjectID `bson:"studentId" json:"studentId"`
	Company     string             `bson:"company" json:"company"`
	Role        string             `bson:"role" json:"role"`
	StartDate   time.Time          `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate     time.Time          `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
