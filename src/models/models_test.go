package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidJobStatus(t *testing.T) {
	for _, status := range []string{
		JobStatusApplied, JobStatusInterviewing, JobStatusOffered,
		JobStatusRejected, JobStatusAccepted, JobStatusWithdrawn,
	} {
		assert.True(t, IsValidJobStatus(status), status)
	}

	assert.False(t, IsValidJobStatus("Applied")) // statuses are lowercase
	assert.False(t, IsValidJobStatus("pending"))
	assert.False(t, IsValidJobStatus(""))
}

func TestIsValidSkillLevel(t *testing.T) {
	for _, level := range []string{
		SkillLevelBeginner, SkillLevelIntermediate, SkillLevelAdvanced, SkillLevelExpert,
	} {
		assert.True(t, IsValidSkillLevel(level), level)
	}

	assert.False(t, IsValidSkillLevel("Beginner"))
	assert.False(t, IsValidSkillLevel("novice"))
}
