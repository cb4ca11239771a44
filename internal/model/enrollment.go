package model

import "time"

// EnrollmentStatus is the state of a learner's enrollment in a course.
type EnrollmentStatus string

const (
	EnrollmentStatusActive    EnrollmentStatus = "active"
	EnrollmentStatusCancelled EnrollmentStatus = "cancelled"
)

// ValidEnrollmentStatus reports whether s is a known enrollment status.
func ValidEnrollmentStatus(s EnrollmentStatus) bool {
	return s == EnrollmentStatusActive || s == EnrollmentStatusCancelled
}

// Enrollment associates a learner with a course.
// At most one active enrollment exists per (org, user, course); re-enrolling
// after cancellation creates a fresh row.
type Enrollment struct {
	ID          string           `json:"id"`
	OrgID       string           `json:"orgId"`
	UserID      string           `json:"userId"`
	CourseID    string           `json:"courseId"`
	Status      EnrollmentStatus `json:"status"`
	EnrolledAt  time.Time        `json:"enrolledAt"`
	CancelledAt *time.Time       `json:"cancelledAt,omitempty"`
}
