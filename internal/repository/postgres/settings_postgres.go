package postgres

import (
	"context"
	"database/sql"
	"strings"

	"lmsapi/internal/model"
	"lmsapi/internal/repository"
)

// SettingsPostgres is a PostgreSQL implementation of repository.SettingsRepository.
type SettingsPostgres struct {
	db *sql.DB
}

// NewSettingsPostgres creates a new SettingsPostgres repository.
func NewSettingsPostgres(db *sql.DB) *SettingsPostgres {
	return &SettingsPostgres{db: db}
}

var _ repository.SettingsRepository = (*SettingsPostgres)(nil)

// FindUploadPolicy returns the org's upload policy for a media category.
// allowed_mime_types is stored as a comma-separated list; an empty column
// yields an empty slice (policy present but no mime allow-list).
func (r *SettingsPostgres) FindUploadPolicy(ctx context.Context, orgID string, category model.MediaCategory) (*model.UploadPolicy, error) {
	const q = `
		SELECT org_id, category, max_upload_bytes, allowed_mime_types
		FROM org_upload_policies
		WHERE org_id = $1 AND category = $2
	`
	var p model.UploadPolicy
	var mimes string
	if err := r.db.QueryRowContext(ctx, q, orgID, category).Scan(
		&p.OrgID,
		&p.Category,
		&p.MaxUploadBytes,
		&mimes,
	); err != nil {
		return nil, err
	}
	if mimes != "" {
		for _, m := range strings.Split(mimes, ",") {
			if m = strings.TrimSpace(m); m != "" {
				p.AllowedMimeTypes = append(p.AllowedMimeTypes, m)
			}
		}
	}
	return &p, nil
}
