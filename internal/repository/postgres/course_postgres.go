package postgres

import (
	"context"
	"database/sql"

	"lmsapi/internal/model"
	"lmsapi/internal/repository"
)

// CoursePostgres is a PostgreSQL implementation of repository.CourseRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type CoursePostgres struct {
	db *sql.DB
}

// NewCoursePostgres creates a new CoursePostgres repository.
func NewCoursePostgres(db *sql.DB) *CoursePostgres {
	return &CoursePostgres{db: db}
}

var _ repository.CourseRepository = (*CoursePostgres)(nil)

const courseColumns = `id, org_id, title, alias, description, status, start_date, end_date, created_at, updated_at`

func scanCourse(row interface{ Scan(...any) error }) (*model.Course, error) {
	var c model.Course
	if err := row.Scan(
		&c.ID,
		&c.OrgID,
		&c.Title,
		&c.Alias,
		&c.Description,
		&c.Status,
		&c.StartDate,
		&c.EndDate,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new course row and returns the stored record.
func (r *CoursePostgres) Create(ctx context.Context, c *model.Course) (*model.Course, error) {
	const q = `
		INSERT INTO courses (id, org_id, title, alias, description, status, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + courseColumns
	row := r.db.QueryRowContext(ctx, q,
		c.ID,
		c.OrgID,
		c.Title,
		c.Alias,
		c.Description,
		c.Status,
		c.StartDate,
		c.EndDate,
		c.CreatedAt,
		c.UpdatedAt,
	)
	return scanCourse(row)
}

// FindByID fetches a single course scoped to the organization.
func (r *CoursePostgres) FindByID(ctx context.Context, orgID, id string) (*model.Course, error) {
	const q = `
		SELECT ` + courseColumns + `
		FROM courses
		WHERE org_id = $1 AND id = $2
	`
	return scanCourse(r.db.QueryRowContext(ctx, q, orgID, id))
}

// AliasExists reports whether an alias is already used within the organization.
func (r *CoursePostgres) AliasExists(ctx context.Context, orgID, alias string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM courses WHERE org_id = $1 AND alias = $2)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, orgID, alias).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// List returns courses using LIMIT/OFFSET pagination and a total count.
// An empty filter status matches all statuses.
func (r *CoursePostgres) List(ctx context.Context, orgID string, f repository.CourseFilter, pq repository.PageQuery) (*repository.PageResult[model.Course], error) {
	const qCount = `
		SELECT COUNT(*) FROM courses
		WHERE org_id = $1 AND ($2 = '' OR status = $2)
	`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, orgID, string(f.Status)).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + courseColumns + `
		FROM courses
		WHERE org_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC, id DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.QueryContext(ctx, qList, orgID, string(f.Status), pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Course, 0)
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Course]{Items: items, Total: total}, nil
}

// Update persists mutable course fields and returns the stored record.
func (r *CoursePostgres) Update(ctx context.Context, c *model.Course) (*model.Course, error) {
	const q = `
		UPDATE courses
		SET title = $3, description = $4, status = $5, start_date = $6, end_date = $7, updated_at = $8
		WHERE org_id = $1 AND id = $2
		RETURNING ` + courseColumns
	row := r.db.QueryRowContext(ctx, q,
		c.OrgID,
		c.ID,
		c.Title,
		c.Description,
		c.Status,
		c.StartDate,
		c.EndDate,
		c.UpdatedAt,
	)
	return scanCourse(row)
}

// Delete removes a course by ID. It does not return an error if the row does not exist.
func (r *CoursePostgres) Delete(ctx context.Context, orgID, id string) error {
	const q = `DELETE FROM courses WHERE org_id = $1 AND id = $2`
	_, err := r.db.ExecContext(ctx, q, orgID, id)
	return err
}
