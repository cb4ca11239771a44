package mocks

import (
	"context"

	"lmsapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockTrackRepository struct {
	mock.Mock
}

func (m *MockTrackRepository) UpsertCourseTrack(ctx context.Context, t *model.CourseTrack) (*model.CourseTrack, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CourseTrack), args.Error(1)
}

func (m *MockTrackRepository) FindCourseTrack(ctx context.Context, orgID, userID, courseID string) (*model.CourseTrack, error) {
	args := m.Called(ctx, orgID, userID, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CourseTrack), args.Error(1)
}

func (m *MockTrackRepository) UpsertLessonTrack(ctx context.Context, t *model.LessonTrack) (*model.LessonTrack, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LessonTrack), args.Error(1)
}

func (m *MockTrackRepository) FindLessonTrack(ctx context.Context, orgID, userID, lessonID string) (*model.LessonTrack, error) {
	args := m.Called(ctx, orgID, userID, lessonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LessonTrack), args.Error(1)
}

func (m *MockTrackRepository) CountCompletedLessons(ctx context.Context, orgID, userID, courseID string) (int, error) {
	args := m.Called(ctx, orgID, userID, courseID)
	return args.Int(0), args.Error(1)
}

func (m *MockTrackRepository) UpsertTestTrack(ctx context.Context, t *model.TestTrack) (*model.TestTrack, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TestTrack), args.Error(1)
}

func (m *MockTrackRepository) FindTestTrack(ctx context.Context, orgID, userID, lessonID string) (*model.TestTrack, error) {
	args := m.Called(ctx, orgID, userID, lessonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TestTrack), args.Error(1)
}
