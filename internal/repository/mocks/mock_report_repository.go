package mocks

import (
	"context"

	"lmsapi/internal/model"
	"lmsapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) CourseReport(ctx context.Context, orgID string, f repository.ReportFilter, pq repository.PageQuery) (*repository.PageResult[model.CourseReportRow], error) {
	args := m.Called(ctx, orgID, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.CourseReportRow]), args.Error(1)
}

func (m *MockReportRepository) LessonReport(ctx context.Context, orgID string, f repository.ReportFilter, pq repository.PageQuery) (*repository.PageResult[model.LessonReportRow], error) {
	args := m.Called(ctx, orgID, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.LessonReportRow]), args.Error(1)
}
