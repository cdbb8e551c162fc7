package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Certificate ใบรับรองของนิสิต
type Certificate struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID primitive.ObjectID `bson:"studentId" json:"studentId"`
	Title     string             `bson:"title" json:"title"`
	Issuer    string             `bson:"issuer,omitempty" json:"issuer,omitempty"`
	IssuedAt  time.Time          `bson:"issuedAt,omitempty" json:"issuedAt,omitempty"`
	Link      string             `bson:"link,omitempty" json:"link,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
