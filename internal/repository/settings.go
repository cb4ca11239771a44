package repository

import (
	"context"

	"lmsapi/internal/model"
)

// SettingsRepository reads per-organization configuration.
type SettingsRepository interface {
	// FindUploadPolicy returns the organization's upload policy for a media
	// category, or sql.ErrNoRows when no policy is configured.
	FindUploadPolicy(ctx context.Context, orgID string, category model.MediaCategory) (*model.UploadPolicy, error)
}
