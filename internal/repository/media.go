package repository

import (
	"context"

	"lmsapi/internal/model"
)

// MediaRepository defines data access for uploaded file metadata.
type MediaRepository interface {
	Create(ctx context.Context, m *model.Media) (*model.Media, error)
	FindByID(ctx context.Context, orgID, id string) (*model.Media, error)
	Delete(ctx context.Context, orgID, id string) error
}
