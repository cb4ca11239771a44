package model

import "time"

// TrackStatus is the progress state of a course or lesson track.
type TrackStatus string

const (
	TrackStatusNotStarted TrackStatus = "not_started"
	TrackStatusInProgress TrackStatus = "in_progress"
	TrackStatusCompleted  TrackStatus = "completed"
)

// ValidTrackStatus reports whether s is a known track status.
func ValidTrackStatus(s TrackStatus) bool {
	switch s {
	case TrackStatusNotStarted, TrackStatusInProgress, TrackStatusCompleted:
		return true
	}
	return false
}

// CourseTrack is the per-user progress record for a course: completion
// percentage, start/end dates and certificate state. Exactly one row exists
// per (org, user, course).
type CourseTrack struct {
	ID                string      `json:"id"`
	OrgID             string      `json:"orgId"`
	UserID            string      `json:"userId"`
	CourseID          string      `json:"courseId"`
	Status            TrackStatus `json:"status"`
	StartedAt         *time.Time  `json:"startedAt,omitempty"`
	CompletedAt       *time.Time  `json:"completedAt,omitempty"`
	LessonsCompleted  int         `json:"lessonsCompleted"`
	TotalLessons      int         `json:"totalLessons"`
	CompletionPercent int         `json:"completionPercent"`
	CertificateIssued bool        `json:"certificateIssued"`
	CertificateDate   *time.Time  `json:"certificateDate,omitempty"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}

// LessonTrack is the per-user progress record for a single lesson.
type LessonTrack struct {
	ID               string      `json:"id"`
	OrgID            string      `json:"orgId"`
	UserID           string      `json:"userId"`
	CourseID         string      `json:"courseId"`
	LessonID         string      `json:"lessonId"`
	Status           TrackStatus `json:"status"`
	CompletedAt      *time.Time  `json:"completedAt,omitempty"`
	TimeSpentSeconds int         `json:"timeSpentSeconds"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

// TestTrack records a learner's test submission for a lesson.
// On resubmission the row keeps the best score and counts attempts.
type TestTrack struct {
	ID          string    `json:"id"`
	OrgID       string    `json:"orgId"`
	UserID      string    `json:"userId"`
	LessonID    string    `json:"lessonId"`
	Score       int       `json:"score"`
	MaxScore    int       `json:"maxScore"`
	Passed      bool      `json:"passed"`
	Attempts    int       `json:"attempts"`
	SubmittedAt time.Time `json:"submittedAt"`
}
