package postgres

import (
	"context"
	"database/sql"

	"lmsapi/internal/model"
	"lmsapi/internal/repository"
)

// MediaPostgres is a PostgreSQL implementation of repository.MediaRepository.
type MediaPostgres struct {
	db *sql.DB
}

// NewMediaPostgres creates a new MediaPostgres repository.
func NewMediaPostgres(db *sql.DB) *MediaPostgres {
	return &MediaPostgres{db: db}
}

var _ repository.MediaRepository = (*MediaPostgres)(nil)

const mediaColumns = `id, org_id, category, entity_id, filename, storage_path, backend, size, content_type, created_at`

func scanMedia(row interface{ Scan(...any) error }) (*model.Media, error) {
	var m model.Media
	if err := row.Scan(
		&m.ID,
		&m.OrgID,
		&m.Category,
		&m.EntityID,
		&m.Filename,
		&m.StoragePath,
		&m.Backend,
		&m.Size,
		&m.ContentType,
		&m.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MediaPostgres) Create(ctx context.Context, m *model.Media) (*model.Media, error) {
	const q = `
		INSERT INTO media (id, org_id, category, entity_id, filename, storage_path, backend, size, content_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + mediaColumns
	row := r.db.QueryRowContext(ctx, q,
		m.ID,
		m.OrgID,
		m.Category,
		m.EntityID,
		m.Filename,
		m.StoragePath,
		m.Backend,
		m.Size,
		m.ContentType,
		m.CreatedAt,
	)
	return scanMedia(row)
}

func (r *MediaPostgres) FindByID(ctx context.Context, orgID, id string) (*model.Media, error) {
	const q = `
		SELECT ` + mediaColumns + `
		FROM media
		WHERE org_id = $1 AND id = $2
	`
	return scanMedia(r.db.QueryRowContext(ctx, q, orgID, id))
}

func (r *MediaPostgres) Delete(ctx context.Context, orgID, id string) error {
	const q = `DELETE FROM media WHERE org_id = $1 AND id = $2`
	_, err := r.db.ExecContext(ctx, q, orgID, id)
	return err
}
