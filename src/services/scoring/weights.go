package scoring

import "math"

// ScoreWeights คะแนนต่อหนึ่งรายการของแต่ละกิจกรรม
// Single source of truth for the career-score formula.
type ScoreWeights struct {
	Project         int
	Internship      int
	JobAccepted     int
	JobOffered      int
	JobInterviewing int
	JobApplied      int
	Certificate     int
	Skill           int
	CGPAMultiplier  int
}

// Weights are fixed; there is no external configuration.
var Weights = ScoreWeights{
	Project:         10,
	Internship:      20,
	JobAccepted:     50,
	JobOffered:      30,
	JobInterviewing: 15,
	JobApplied:      5,
	Certificate:     5,
	Skill:           2,
	CGPAMultiplier:  10,
}

// ActivitySnapshot is everything the score depends on, read at one point in
// time. Rejected and withdrawn applications are not part of the snapshot.
type ActivitySnapshot struct {
	Projects     int
	Internships  int
	Certificates int
	Skills       int

	JobsAccepted     int
	JobsOffered      int
	JobsInterviewing int
	JobsApplied      int

	CGPA float64 // 0-10
}

// ComputeScore คำนวณ career score จาก snapshot - deterministic, order-independent.
// The CGPA contribution is cgpa*10 rounded half away from zero.
func ComputeScore(snap ActivitySnapshot) int {
	w := Weights
	score := snap.Projects*w.Project +
		snap.Internships*w.Internship +
		snap.JobsAccepted*w.JobAccepted +
		snap.JobsOffered*w.JobOffered +
		snap.JobsInterviewing*w.JobInterviewing +
		snap.JobsApplied*w.JobApplied +
		snap.Certificates*w.Certificate +
		snap.Skills*w.Skill

	score += int(math.Round(snap.CGPA * float64(w.CGPAMultiplier)))
	return score
}
