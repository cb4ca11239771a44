package model

import "time"

// CourseStatus is the lifecycle state of a course.
type CourseStatus string

const (
	CourseStatusDraft    CourseStatus = "draft"
	CourseStatusActive   CourseStatus = "active"
	CourseStatusInactive CourseStatus = "inactive"
)

// ValidCourseStatus reports whether s is a known course status.
func ValidCourseStatus(s CourseStatus) bool {
	switch s {
	case CourseStatusDraft, CourseStatusActive, CourseStatusInactive:
		return true
	}
	return false
}

// Course represents a course within an organization.
// This is a pure domain model with no database-specific dependencies or tags;
// it can be used across layers (HTTP, service, repository) without coupling to persistence.
type Course struct {
	ID          string       `json:"id"`
	OrgID       string       `json:"orgId"`
	Title       string       `json:"title"`
	Alias       string       `json:"alias"`
	Description string       `json:"description"`
	Status      CourseStatus `json:"status"`
	StartDate   *time.Time   `json:"startDate,omitempty"`
	EndDate     *time.Time   `json:"endDate,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}
