package repository

import (
	"context"
	"time"

	"lmsapi/internal/model"
)

// ReportFilter narrows report queries. Zero values mean "no constraint".
type ReportFilter struct {
	CourseID string
	Status   model.TrackStatus
	From     *time.Time
	To       *time.Time
}

// ReportRepository aggregates progress rows for reporting endpoints.
// Read-only: these queries join track tables with catalog tables.
type ReportRepository interface {
	// CourseReport returns per-(user, course) progress rows.
	CourseReport(ctx context.Context, orgID string, f ReportFilter, pq PageQuery) (*PageResult[model.CourseReportRow], error)

	// LessonReport returns per-(user, lesson) progress rows.
	LessonReport(ctx context.Context, orgID string, f ReportFilter, pq PageQuery) (*PageResult[model.LessonReportRow], error)
}
