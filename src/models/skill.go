package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Skill ทักษะของนิสิต - names are stored lowercase and unique per student
type Skill struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID primitive.ObjectID `bson:"studentId" json:"studentId"`
	Name      string             `bson:"name" json:"name"`
	Level     string             `bson:"level" json:"level"` // SkillLevel* constants
}

// enum Level ของ Skill
const (
	SkillLevelBeginner     = "beginner"
	SkillLevelIntermediate = "intermediate"
	SkillLevelAdvanced     = "advanced"
	SkillLevelExpert       = "expert"
)

// IsValidSkillLevel reports whether level is one of the skill levels.
func IsValidSkillLevel(level string) bool {
	switch level {
	case SkillLevelBeginner, SkillLevelIntermediate, SkillLevelAdvanced, SkillLevelExpert:
		return true
	}
	return false
}
