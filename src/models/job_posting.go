package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JobPosting ประกาศรับสมัครงาน - owned by an employer or admin
type JobPosting struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title          string             `bson:"title" json:"title"`
	Company        string             `bson:"company" json:"company"`
	Location       string             `bson:"location,omitempty" json:"location,omitempty"`
	Description    string             `bson:"description,omitempty" json:"description,omitempty"`
	SkillsRequired []string           `bson:"skillsRequired" json:"skillsRequired"`
	Deadline       time.Time          `bson:"deadline" json:"deadline"`
	Active         bool               `bson:"active" json:"active"`
	PostedBy       primitive.ObjectID `bson:"postedBy,omitempty" json:"postedBy,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

// RankedPosting is a posting scored against one student's skill set.
type RankedPosting struct {
	Posting         JobPosting `json:"posting"`
	MatchPercentage int        `json:"matchPercentage"`
	IsRecommended   bool       `json:"isRecommended"`
	MatchedSkills   []string   `json:"matchedSkills,omitempty"`
	MissingSkills   []string   `json:"missingSkills,omitempty"`
}
