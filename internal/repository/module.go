package repository

import (
	"context"

	"lmsapi/internal/model"
)

// ModuleRepository defines data access for course modules.
type ModuleRepository interface {
	Create(ctx context.Context, m *model.Module) (*model.Module, error)
	FindByID(ctx context.Context, orgID, id string) (*model.Module, error)

	// ListByCourse returns the course's modules ordered by position.
	ListByCourse(ctx context.Context, orgID, courseID string) ([]model.Module, error)

	Update(ctx context.Context, m *model.Module) (*model.Module, error)
	Delete(ctx context.Context, orgID, id string) error
}
