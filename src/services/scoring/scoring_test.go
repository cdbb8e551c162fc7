package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeScore(t *testing.T) {
	t.Run("WeightedSum", func(t *testing.T) {
		// 2 projects, 1 internship, 3 certificates, 5 skills, cgpa 8.5,
		// jobs: 1 accepted, 1 interviewing, 2 applied
		snap := ActivitySnapshot{
			Projects:         2,
			Internships:      1,
			Certificates:     3,
			Skills:           5,
			JobsAccepted:     1,
			JobsInterviewing: 1,
			JobsApplied:      2,
			CGPA:             8.5,
		}
		// 20 + 20 + 50 + 15 + 10 + 15 + 10 + 85
		assert.Equal(t, 225, ComputeScore(snap))
	})

	t.Run("EmptySnapshot", func(t *testing.T) {
		assert.Equal(t, 0, ComputeScore(ActivitySnapshot{}))
	})

	t.Run("CGPAOnly", func(t *testing.T) {
		assert.Equal(t, 85, ComputeScore(ActivitySnapshot{CGPA: 8.5}))
		assert.Equal(t, 100, ComputeScore(ActivitySnapshot{CGPA: 10}))
	})

	t.Run("CGPARoundsHalfAwayFromZero", func(t *testing.T) {
		assert.Equal(t, 72, ComputeScore(ActivitySnapshot{CGPA: 7.24}))
		assert.Equal(t, 73, ComputeScore(ActivitySnapshot{CGPA: 7.25}))
		assert.Equal(t, 73, ComputeScore(ActivitySnapshot{CGPA: 7.26}))
	})

	t.Run("JobBuckets", func(t *testing.T) {
		snap := ActivitySnapshot{
			JobsAccepted:     1,
			JobsOffered:      1,
			JobsInterviewing: 1,
			JobsApplied:      1,
		}
		assert.Equal(t, 50+30+15+5, ComputeScore(snap))
	})

	t.Run("Deterministic", func(t *testing.T) {
		snap := ActivitySnapshot{Projects: 4, Skills: 7, CGPA: 6.3}
		assert.Equal(t, ComputeScore(snap), ComputeScore(snap))
	})
}

func TestWeights(t *testing.T) {
	// The formula constants live in one place; pin them down.
	assert.Equal(t, 10, Weights.Project)
	assert.Equal(t, 20, Weights.Internship)
	assert.Equal(t, 50, Weights.JobAccepted)
	assert.Equal(t, 30, Weights.JobOffered)
	assert.Equal(t, 15, Weights.JobInterviewing)
	assert.Equal(t, 5, Weights.JobApplied)
	assert.Equal(t, 5, Weights.Certificate)
	assert.Equal(t, 2, Weights.Skill)
	assert.Equal(t, 10, Weights.CGPAMultiplier)
}
