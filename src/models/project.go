package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project โปรเจกต์ของนิสิต
type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID   primitive.ObjectID `bson:"studentId" json:"studentId"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	TechStack   []string           `bson:"techStack,omitempty" json:"techStack,omitempty"`
	Link        string             `bson:"link,omitempty" json:"link,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
