package mocks

import (
	"context"

	"lmsapi/internal/model"
	"lmsapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) Create(ctx context.Context, c *model.Course) (*model.Course, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Course), args.Error(1)
}

func (m *MockCourseRepository) FindByID(ctx context.Context, orgID, id string) (*model.Course, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Course), args.Error(1)
}

func (m *MockCourseRepository) AliasExists(ctx context.Context, orgID, alias string) (bool, error) {
	args := m.Called(ctx, orgID, alias)
	return args.Bool(0), args.Error(1)
}

func (m *MockCourseRepository) List(ctx context.Context, orgID string, f repository.CourseFilter, pq repository.PageQuery) (*repository.PageResult[model.Course], error) {
	args := m.Called(ctx, orgID, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Course]), args.Error(1)
}

func (m *MockCourseRepository) Update(ctx context.Context, c *model.Course) (*model.Course, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Course), args.Error(1)
}

func (m *MockCourseRepository) Delete(ctx context.Context, orgID, id string) error {
	args := m.Called(ctx, orgID, id)
	return args.Error(0)
}
