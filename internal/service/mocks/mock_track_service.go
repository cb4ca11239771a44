package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lmsapi/internal/model"
	"lmsapi/internal/service"
)

type MockTrackService struct {
	mock.Mock
}

func (m *MockTrackService) UpdateCourseTrack(ctx context.Context, orgID string, in service.CourseTrackInput) (*model.CourseTrack, error) {
	args := m.Called(ctx, orgID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CourseTrack), args.Error(1)
}

func (m *MockTrackService) UpdateLessonTrack(ctx context.Context, orgID string, in service.LessonTrackInput) (*model.LessonTrack, error) {
	args := m.Called(ctx, orgID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LessonTrack), args.Error(1)
}

func (m *MockTrackService) SubmitTest(ctx context.Context, orgID string, in service.TestSubmitInput) (*model.TestTrack, error) {
	args := m.Called(ctx, orgID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TestTrack), args.Error(1)
}
