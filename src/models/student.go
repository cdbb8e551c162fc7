package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Student holds the profile fields tracked for completion plus the derived
// career score and its change log.
type Student struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Branch   string             `bson:"branch" json:"branch"`
	Year     string             `bson:"year" json:"year"`
	CGPA     float64            `bson:"cgpa" json:"cgpa"` // 0-10 scale
	Phone    string             `bson:"phone" json:"phone"`
	LinkedIn string             `bson:"linkedin" json:"linkedin"`
	GitHub   string             `bson:"github" json:"github"`
	Bio      string             `bson:"bio" json:"bio"`

	// CareerScore is derived data, recomputed after every activity mutation.
	// Never hand-edited.
	CareerScore        int                 `bson:"careerScore" json:"careerScore"`
	CareerScoreHistory []ScoreHistoryEntry `bson:"careerScoreHistory,omitempty" json:"careerScoreHistory,omitempty"`
}

// ScoreHistoryEntry บันทึกการเปลี่ยนแปลงคะแนน - appended only when the score changes
type ScoreHistoryEntry struct {
	Score     int       `bson:"score" json:"score"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// ProfileFieldCount is the number of fields counted toward profile completion.
const ProfileFieldCount = 9
