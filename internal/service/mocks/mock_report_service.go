package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lmsapi/internal/model"
	"lmsapi/internal/service"
	"lmsapi/internal/validate"
)

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) CourseReport(ctx context.Context, orgID string, f service.ReportFilterInput, pg validate.Page) (*service.Page[model.CourseReportRow], error) {
	args := m.Called(ctx, orgID, f, pg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Page[model.CourseReportRow]), args.Error(1)
}

func (m *MockReportService) LessonReport(ctx context.Context, orgID string, f service.ReportFilterInput, pg validate.Page) (*service.Page[model.LessonReportRow], error) {
	args := m.Called(ctx, orgID, f, pg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Page[model.LessonReportRow]), args.Error(1)
}
