package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Job is a student's personal application-tracker entry. Distinct from
// JobPosting, which is owned by an employer.
type Job struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID primitive.ObjectID `bson:"studentId" json:"studentId"`
	Company   string             `bson:"company" json:"company"`
	Role      string             `bson:"role" json:"role"`
	Status    string             `bson:"status" json:"status"` // JobStatus* constants
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
	AppliedAt time.Time          `bson:"appliedAt" json:"appliedAt"`
}

// enum Status ของ Job tracker
// Only applied/interviewing/offered/accepted contribute to the career score.
const (
	JobStatusApplied      = "applied"
	JobStatusInterviewing = "interviewing"
	JobStatusOffered      = "offered"
	JobStatusRejected     = "rejected"
	JobStatusAccepted     = "accepted"
	JobStatusWithdrawn    = "withdrawn"
)

// IsValidJobStatus reports whether s is one of the tracker statuses.
func IsValidJobStatus(s string) bool {
	switch s {
	case JobStatusApplied, JobStatusInterviewing, JobStatusOffered,
		JobStatusRejected, JobStatusAccepted, JobStatusWithdrawn:
		return true
	}
	return false
}
