package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lmsapi/internal/model"
	"lmsapi/internal/service"
	"lmsapi/internal/validate"
)

type MockEnrollmentService struct {
	mock.Mock
}

func (m *MockEnrollmentService) Enroll(ctx context.Context, orgID string, in service.EnrollInput) (*model.Enrollment, error) {
	args := m.Called(ctx, orgID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Enrollment), args.Error(1)
}

func (m *MockEnrollmentService) Get(ctx context.Context, orgID, id string) (*model.Enrollment, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Enrollment), args.Error(1)
}

func (m *MockEnrollmentService) List(ctx context.Context, orgID string, f service.EnrollmentFilterInput, pg validate.Page) (*service.Page[model.Enrollment], error) {
	args := m.Called(ctx, orgID, f, pg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Page[model.Enrollment]), args.Error(1)
}

func (m *MockEnrollmentService) UpdateStatus(ctx context.Context, orgID, id string, in service.UpdateEnrollmentInput) (*model.Enrollment, error) {
	args := m.Called(ctx, orgID, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Enrollment), args.Error(1)
}

func (m *MockEnrollmentService) Cancel(ctx context.Context, orgID, id string) error {
	args := m.Called(ctx, orgID, id)
	return args.Error(0)
}
