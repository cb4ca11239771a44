package mocks

import (
	"context"

	"lmsapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockModuleRepository struct {
	mock.Mock
}

func (m *MockModuleRepository) Create(ctx context.Context, mod *model.Module) (*model.Module, error) {
	args := m.Called(ctx, mod)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Module), args.Error(1)
}

func (m *MockModuleRepository) FindByID(ctx context.Context, orgID, id string) (*model.Module, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Module), args.Error(1)
}

func (m *MockModuleRepository) ListByCourse(ctx context.Context, orgID, courseID string) ([]model.Module, error) {
	args := m.Called(ctx, orgID, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Module), args.Error(1)
}

func (m *MockModuleRepository) Update(ctx context.Context, mod *model.Module) (*model.Module, error) {
	args := m.Called(ctx, mod)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Module), args.Error(1)
}

func (m *MockModuleRepository) Delete(ctx context.Context, orgID, id string) error {
	args := m.Called(ctx, orgID, id)
	return args.Error(0)
}
