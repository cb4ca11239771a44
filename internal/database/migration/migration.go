package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

// Steps run in order. New schema changes are appended, never reordered:
// later steps may ALTER tables created by earlier ones.
var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_courses",
		SQL: `CREATE TABLE IF NOT EXISTS courses (
  id          UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  org_id      UUID        NOT NULL,
  title       TEXT        NOT NULL,
  alias       TEXT        NOT NULL,
  description TEXT        NOT NULL DEFAULT '',
  status      TEXT        NOT NULL DEFAULT 'draft',
  start_date  TIMESTAMPTZ,
  end_date    TIMESTAMPTZ,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  UNIQUE (org_id, alias)
);`,
	},
	{
		Name: "create_table_modules",
		SQL: `CREATE TABLE IF NOT EXISTS modules (
  id          UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  org_id      UUID        NOT NULL,
  course_id   UUID        NOT NULL REFERENCES courses (id) ON DELETE CASCADE,
  title       TEXT        NOT NULL,
  description TEXT        NOT NULL DEFAULT '',
  position    INT         NOT NULL DEFAULT 0,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_lessons",
		SQL: `CREATE TABLE IF NOT EXISTS lessons (
  id               UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  org_id           UUID        NOT NULL,
  module_id        UUID        NOT NULL REFERENCES modules (id) ON DELETE CASCADE,
  title            TEXT        NOT NULL,
  description      TEXT        NOT NULL DEFAULT '',
  position         INT         NOT NULL DEFAULT 0,
  duration_minutes INT         NOT NULL DEFAULT 0,
  created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_enrollments",
		SQL: `CREATE TABLE IF NOT EXISTS enrollments (
  id           UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  org_id       UUID        NOT NULL,
  user_id      UUID        NOT NULL,
  course_id    UUID        NOT NULL REFERENCES courses (id) ON DELETE CASCADE,
  status       TEXT        NOT NULL DEFAULT 'active',
  enrolled_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  cancelled_at TIMESTAMPTZ
);`,
	},
	{
		Name: "create_index_enrollments_active_unique",
		SQL: `CREATE UNIQUE INDEX IF NOT EXISTS idx_enrollments_active
  ON enrollments (org_id, user_id, course_id) WHERE status = 'active';`,
	},
	{
		Name: "create_table_course_tracks",
		SQL: `CREATE TABLE IF NOT EXISTS course_tracks (
  id                 UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  org_id             UUID        NOT NULL,
  user_id            UUID        NOT NULL,
  course_id          UUID        NOT NULL REFERENCES courses (id) ON DELETE CASCADE,
  status             TEXT        NOT NULL DEFAULT 'not_started',
  started_at         TIMESTAMPTZ,
  completed_at       TIMESTAMPTZ,
  lessons_completed  INT         NOT NULL DEFAULT 0 CHECK (lessons_completed >= 0),
  total_lessons      INT         NOT NULL DEFAULT 0 CHECK (total_lessons >= 0),
  completion_percent INT         NOT NULL DEFAULT 0 CHECK (completion_percent BETWEEN 0 AND 100),
  certificate_issued BOOLEAN     NOT NULL DEFAULT FALSE,
  certificate_date   TIMESTAMPTZ,
  updated_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
  UNIQUE (org_id, user_id, course_id)
);`,
	},
	{
		Name: "create_table_lesson_tracks",
		SQL: `CREATE TABLE IF NOT EXISTS lesson_tracks (
  id                 UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  org_id             UUID        NOT NULL,
  user_id            UUID        NOT NULL,
  course_id          UUID        NOT NULL,
  lesson_id          UUID        NOT NULL REFERENCES lessons (id) ON DELETE CASCADE,
  status             TEXT        NOT NULL DEFAULT 'not_started',
  completed_at       TIMESTAMPTZ,
  time_spent_seconds INT         NOT NULL DEFAULT 0 CHECK (time_spent_seconds >= 0),
  updated_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
  UNIQUE (org_id, user_id, lesson_id)
);`,
	},
	{
		Name: "create_table_test_tracks",
		SQL: `CREATE TABLE IF NOT EXISTS test_tracks (
  id           UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  org_id       UUID        NOT NULL,
  user_id      UUID        NOT NULL,
  lesson_id    UUID        NOT NULL REFERENCES lessons (id) ON DELETE CASCADE,
  score        INT         NOT NULL CHECK (score >= 0),
  max_score    INT         NOT NULL CHECK (max_score > 0),
  passed       BOOLEAN     NOT NULL DEFAULT FALSE,
  attempts     INT         NOT NULL DEFAULT 1 CHECK (attempts >= 1),
  submitted_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  UNIQUE (org_id, user_id, lesson_id)
);`,
	},
	{
		Name: "create_table_media",
		SQL: `CREATE TABLE IF NOT EXISTS media (
  id           UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  org_id       UUID        NOT NULL,
  category     TEXT        NOT NULL,
  entity_id    UUID        NOT NULL,
  filename     TEXT        NOT NULL,
  storage_path TEXT        NOT NULL UNIQUE,
  backend      TEXT        NOT NULL,
  size         BIGINT      NOT NULL CHECK (size >= 0),
  content_type TEXT        NOT NULL,
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_org_upload_policies",
		SQL: `CREATE TABLE IF NOT EXISTS org_upload_policies (
  org_id             UUID NOT NULL,
  category           TEXT NOT NULL,
  max_upload_bytes   BIGINT NOT NULL DEFAULT 0,
  allowed_mime_types TEXT NOT NULL DEFAULT '',
  PRIMARY KEY (org_id, category)
);`,
	},
	{
		Name: "create_index_courses_org_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_courses_org_status ON courses (org_id, status);`,
	},
	{
		Name: "create_index_enrollments_org_user",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_enrollments_org_user ON enrollments (org_id, user_id);`,
	},
	{
		Name: "create_index_lesson_tracks_course",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_lesson_tracks_course ON lesson_tracks (org_id, user_id, course_id);`,
	},
	{
		Name: "add_column_lessons_allow_resubmission",
		SQL:  `ALTER TABLE lessons ADD COLUMN IF NOT EXISTS allow_resubmission BOOLEAN NOT NULL DEFAULT FALSE;`,
	},
}

// EnsureMigrated checks if the 'courses' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.courses') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
