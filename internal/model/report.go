package model

import "time"

// CourseReportRow is one aggregated row of the course-level progress report:
// a (user, course) pair with its track state.
type CourseReportRow struct {
	UserID            string      `json:"userId"`
	CourseID          string      `json:"courseId"`
	CourseTitle       string      `json:"courseTitle"`
	Status            TrackStatus `json:"status"`
	CompletionPercent int         `json:"completionPercent"`
	LessonsCompleted  int         `json:"lessonsCompleted"`
	TotalLessons      int         `json:"totalLessons"`
	StartedAt         *time.Time  `json:"startedAt,omitempty"`
	CompletedAt       *time.Time  `json:"completedAt,omitempty"`
	CertificateIssued bool        `json:"certificateIssued"`
}

// LessonReportRow is one aggregated row of the lesson-level progress report.
type LessonReportRow struct {
	UserID           string      `json:"userId"`
	CourseID         string      `json:"courseId"`
	LessonID         string      `json:"lessonId"`
	LessonTitle      string      `json:"lessonTitle"`
	Status           TrackStatus `json:"status"`
	TimeSpentSeconds int         `json:"timeSpentSeconds"`
	CompletedAt      *time.Time  `json:"completedAt,omitempty"`
}
