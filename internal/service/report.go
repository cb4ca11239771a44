package service

import (
	"context"
	"time"

	"lmsapi/internal/model"
	"lmsapi/internal/repository"
	"lmsapi/internal/validate"
)

// ReportFilterInput narrows report queries; every field is optional.
type ReportFilterInput struct {
	CourseID string     `json:"courseId" validate:"omitempty,uuid4"`
	Status   string     `json:"status" validate:"omitempty,oneof=not_started in_progress completed"`
	From     *time.Time `json:"from"`
	To       *time.Time `json:"to"`
}

// ReportService serves aggregated progress reports.
type ReportService interface {
	CourseReport(ctx context.Context, orgID string, f ReportFilterInput, pg validate.Page) (*Page[model.CourseReportRow], error)
	LessonReport(ctx context.Context, orgID string, f ReportFilterInput, pg validate.Page) (*Page[model.LessonReportRow], error)
}

type reportService struct {
	reports repository.ReportRepository
}

// NewReportService constructs a new ReportService.
func NewReportService(reports repository.ReportRepository) ReportService {
	return &reportService{reports: reports}
}

func (s *reportService) CourseReport(ctx context.Context, orgID string, f ReportFilterInput, pg validate.Page) (*Page[model.CourseReportRow], error) {
	if errs := validate.Struct(f); errs != nil {
		return nil, errs
	}
	if errs := validate.DateRange(f.From, f.To); errs != nil {
		return nil, errs
	}
	res, err := s.reports.CourseReport(ctx, orgID,
		repository.ReportFilter{CourseID: f.CourseID, Status: model.TrackStatus(f.Status), From: f.From, To: f.To},
		repository.PageQuery{Limit: pg.Limit, Offset: pg.Skip},
	)
	if err != nil {
		return nil, err
	}
	return &Page[model.CourseReportRow]{Data: res.Items, TotalElements: res.Total, Offset: pg.Skip, Limit: pg.Limit}, nil
}

func (s *reportService) LessonReport(ctx context.Context, orgID string, f ReportFilterInput, pg validate.Page) (*Page[model.LessonReportRow], error) {
	if errs := validate.Struct(f); errs != nil {
		return nil, errs
	}
	if errs := validate.DateRange(f.From, f.To); errs != nil {
		return nil, errs
	}
	res, err := s.reports.LessonReport(ctx, orgID,
		repository.ReportFilter{CourseID: f.CourseID, Status: model.TrackStatus(f.Status), From: f.From, To: f.To},
		repository.PageQuery{Limit: pg.Limit, Offset: pg.Skip},
	)
	if err != nil {
		return nil, err
	}
	return &Page[model.LessonReportRow]{Data: res.Items, TotalElements: res.Total, Offset: pg.Skip, Limit: pg.Limit}, nil
}
