package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lmsapi/internal/model"
	"lmsapi/internal/service"
	"lmsapi/internal/validate"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) CreateCourse(ctx context.Context, orgID string, in service.CreateCourseInput) (*model.Course, error) {
	args := m.Called(ctx, orgID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Course), args.Error(1)
}

func (m *MockCatalogService) GetCourse(ctx context.Context, orgID, id string) (*model.Course, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Course), args.Error(1)
}

func (m *MockCatalogService) ListCourses(ctx context.Context, orgID string, status string, pg validate.Page) (*service.Page[model.Course], error) {
	args := m.Called(ctx, orgID, status, pg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Page[model.Course]), args.Error(1)
}

func (m *MockCatalogService) UpdateCourse(ctx context.Context, orgID, id string, in service.UpdateCourseInput) (*model.Course, error) {
	args := m.Called(ctx, orgID, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Course), args.Error(1)
}

func (m *MockCatalogService) DeleteCourse(ctx context.Context, orgID, id string) error {
	args := m.Called(ctx, orgID, id)
	return args.Error(0)
}

func (m *MockCatalogService) CreateModule(ctx context.Context, orgID, courseID string, in service.CreateModuleInput) (*model.Module, error) {
	args := m.Called(ctx, orgID, courseID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Module), args.Error(1)
}

func (m *MockCatalogService) ListModules(ctx context.Context, orgID, courseID string) ([]model.Module, error) {
	args := m.Called(ctx, orgID, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Module), args.Error(1)
}

func (m *MockCatalogService) UpdateModule(ctx context.Context, orgID, id string, in service.CreateModuleInput) (*model.Module, error) {
	args := m.Called(ctx, orgID, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Module), args.Error(1)
}

func (m *MockCatalogService) DeleteModule(ctx context.Context, orgID, id string) error {
	args := m.Called(ctx, orgID, id)
	return args.Error(0)
}

func (m *MockCatalogService) CreateLesson(ctx context.Context, orgID, moduleID string, in service.CreateLessonInput) (*model.Lesson, error) {
	args := m.Called(ctx, orgID, moduleID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lesson), args.Error(1)
}

func (m *MockCatalogService) ListLessons(ctx context.Context, orgID, moduleID string) ([]model.Lesson, error) {
	args := m.Called(ctx, orgID, moduleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Lesson), args.Error(1)
}

func (m *MockCatalogService) UpdateLesson(ctx context.Context, orgID, id string, in service.UpdateLessonInput) (*model.Lesson, error) {
	args := m.Called(ctx, orgID, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lesson), args.Error(1)
}

func (m *MockCatalogService) DeleteLesson(ctx context.Context, orgID, id string) error {
	args := m.Called(ctx, orgID, id)
	return args.Error(0)
}
