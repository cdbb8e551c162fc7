package models

// DashboardView สรุปข้อมูลของนิสิตหนึ่งคน - read-only aggregate
type DashboardView struct {
	CareerScore       int                 `json:"careerScore"`
	ProjectCount      int64               `json:"projectCount"`
	InternshipCount   int64               `json:"internshipCount"`
	CertificateCount  int64               `json:"certificateCount"`
	SkillCount        int64               `json:"skillCount"`
	JobStats          map[string]int      `json:"jobStats"`          // fixed keys, zero included
	ProfileCompletion int                 `json:"profileCompletion"` // 0-100
	SkillStats        map[string]int      `json:"skillStats"`        // Beginner / Intermediate / Advanced
	ScoreHistory      []ScoreHistoryEntry `json:"scoreHistory"`      // most recent 10, chronological
}
