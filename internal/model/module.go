package model

import "time"

// Module is an ordered section within a course.
type Module struct {
	ID          string    `json:"id"`
	OrgID       string    `json:"orgId"`
	CourseID    string    `json:"courseId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
