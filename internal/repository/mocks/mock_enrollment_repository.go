package mocks

import (
	"context"

	"lmsapi/internal/model"
	"lmsapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockEnrollmentRepository struct {
	mock.Mock
}

func (m *MockEnrollmentRepository) Create(ctx context.Context, e *model.Enrollment) (*model.Enrollment, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepository) FindByID(ctx context.Context, orgID, id string) (*model.Enrollment, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepository) FindActive(ctx context.Context, orgID, userID, courseID string) (*model.Enrollment, error) {
	args := m.Called(ctx, orgID, userID, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepository) List(ctx context.Context, orgID string, f repository.EnrollmentFilter, pq repository.PageQuery) (*repository.PageResult[model.Enrollment], error) {
	args := m.Called(ctx, orgID, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Enrollment]), args.Error(1)
}

func (m *MockEnrollmentRepository) Update(ctx context.Context, e *model.Enrollment) (*model.Enrollment, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Enrollment), args.Error(1)
}
