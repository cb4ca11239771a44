package model

import "time"

// Lesson is an ordered unit of content within a module.
// AllowResubmission controls whether a learner may submit the lesson's test
// more than once.
type Lesson struct {
	ID                string    `json:"id"`
	OrgID             string    `json:"orgId"`
	ModuleID          string    `json:"moduleId"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Position          int       `json:"position"`
	DurationMinutes   int       `json:"durationMinutes"`
	AllowResubmission bool      `json:"allowResubmission"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
