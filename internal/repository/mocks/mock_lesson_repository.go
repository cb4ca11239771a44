package mocks

import (
	"context"

	"lmsapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockLessonRepository struct {
	mock.Mock
}

func (m *MockLessonRepository) Create(ctx context.Context, l *model.Lesson) (*model.Lesson, error) {
	args := m.Called(ctx, l)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lesson), args.Error(1)
}

func (m *MockLessonRepository) FindByID(ctx context.Context, orgID, id string) (*model.Lesson, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lesson), args.Error(1)
}

func (m *MockLessonRepository) ListByModule(ctx context.Context, orgID, moduleID string) ([]model.Lesson, error) {
	args := m.Called(ctx, orgID, moduleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Lesson), args.Error(1)
}

func (m *MockLessonRepository) CountByCourse(ctx context.Context, orgID, courseID string) (int, error) {
	args := m.Called(ctx, orgID, courseID)
	return args.Int(0), args.Error(1)
}

func (m *MockLessonRepository) CourseIDForLesson(ctx context.Context, orgID, lessonID string) (string, error) {
	args := m.Called(ctx, orgID, lessonID)
	return args.String(0), args.Error(1)
}

func (m *MockLessonRepository) Update(ctx context.Context, l *model.Lesson) (*model.Lesson, error) {
	args := m.Called(ctx, l)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lesson), args.Error(1)
}

func (m *MockLessonRepository) Delete(ctx context.Context, orgID, id string) error {
	args := m.Called(ctx, orgID, id)
	return args.Error(0)
}
