package postgres

import (
	"context"
	"database/sql"

	"lmsapi/internal/model"
	"lmsapi/internal/repository"
)

// ModulePostgres is a PostgreSQL implementation of repository.ModuleRepository.
type ModulePostgres struct {
	db *sql.DB
}

// NewModulePostgres creates a new ModulePostgres repository.
func NewModulePostgres(db *sql.DB) *ModulePostgres {
	return &ModulePostgres{db: db}
}

var _ repository.ModuleRepository = (*ModulePostgres)(nil)

const moduleColumns = `id, org_id, course_id, title, description, position, created_at, updated_at`

func scanModule(row interface{ Scan(...any) error }) (*model.Module, error) {
	var m model.Module
	if err := row.Scan(
		&m.ID,
		&m.OrgID,
		&m.CourseID,
		&m.Title,
		&m.Description,
		&m.Position,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *ModulePostgres) Create(ctx context.Context, m *model.Module) (*model.Module, error) {
	const q = `
		INSERT INTO modules (id, org_id, course_id, title, description, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + moduleColumns
	row := r.db.QueryRowContext(ctx, q,
		m.ID,
		m.OrgID,
		m.CourseID,
		m.Title,
		m.Description,
		m.Position,
		m.CreatedAt,
		m.UpdatedAt,
	)
	return scanModule(row)
}

func (r *ModulePostgres) FindByID(ctx context.Context, orgID, id string) (*model.Module, error) {
	const q = `
		SELECT ` + moduleColumns + `
		FROM modules
		WHERE org_id = $1 AND id = $2
	`
	return scanModule(r.db.QueryRowContext(ctx, q, orgID, id))
}

// ListByCourse returns the course's modules ordered by position.
func (r *ModulePostgres) ListByCourse(ctx context.Context, orgID, courseID string) ([]model.Module, error) {
	const q = `
		SELECT ` + moduleColumns + `
		FROM modules
		WHERE org_id = $1 AND course_id = $2
		ORDER BY position ASC, created_at ASC
	`
	rows, err := r.db.QueryContext(ctx, q, orgID, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Module, 0)
	for rows.Next() {
		m, err := scanModule(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *m)
	}
	return items, rows.Err()
}

func (r *ModulePostgres) Update(ctx context.Context, m *model.Module) (*model.Module, error) {
	const q = `
		UPDATE modules
		SET title = $3, description = $4, position = $5, updated_at = $6
		WHERE org_id = $1 AND id = $2
		RETURNING ` + moduleColumns
	row := r.db.QueryRowContext(ctx, q,
		m.OrgID,
		m.ID,
		m.Title,
		m.Description,
		m.Position,
		m.UpdatedAt,
	)
	return scanModule(row)
}

func (r *ModulePostgres) Delete(ctx context.Context, orgID, id string) error {
	const q = `DELETE FROM modules WHERE org_id = $1 AND id = $2`
	_, err := r.db.ExecContext(ctx, q, orgID, id)
	return err
}
