package postgres

import (
	"context"
	"testing"
	"time"

	"lmsapi/internal/model"
	"lmsapi/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestReportPostgres_CourseReport(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewReportPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	from := now.Add(-24 * time.Hour)

	// course_id is uuid-typed; the filter must compare it as text or postgres
	// rejects the statement at prepare time.
	mock.ExpectQuery("SELECT COUNT\\(\\*\\)(.+)FROM course_tracks(.+)course_id::text = ").
		WithArgs(testOrgID, testCourseID, "completed", &from, nil).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	mock.ExpectQuery("SELECT (.+) FROM course_tracks(.+)JOIN courses(.+)course_id::text = (.+)ORDER BY").
		WithArgs(testOrgID, testCourseID, "completed", &from, nil, 10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "course_id", "title", "status", "completion_percent", "lessons_completed", "total_lessons", "started_at", "completed_at", "certificate_issued"}).
			AddRow(testUserID, testCourseID, "Intro to Go", "completed", 100, 8, 8, now, now, true))

	res, err := repo.CourseReport(ctx, testOrgID,
		repository.ReportFilter{CourseID: testCourseID, Status: model.TrackStatusCompleted, From: &from},
		repository.PageQuery{Limit: 10, Offset: 0},
	)

	assert.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	assert.Len(t, res.Items, 1)
	assert.Equal(t, 100, res.Items[0].CompletionPercent)
	assert.True(t, res.Items[0].CertificateIssued)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportPostgres_LessonReport(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewReportPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\)(.+)FROM lesson_tracks(.+)course_id::text = ").
		WithArgs(testOrgID, "", "", nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery("SELECT (.+) FROM lesson_tracks(.+)JOIN lessons(.+)course_id::text = (.+)ORDER BY").
		WithArgs(testOrgID, "", "", nil, nil, 10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "course_id", "lesson_id", "title", "status", "time_spent_seconds", "completed_at"}).
			AddRow(testUserID, testCourseID, testLessonID, "Variables", "completed", 420, now))

	res, err := repo.LessonReport(ctx, testOrgID, repository.ReportFilter{}, repository.PageQuery{Limit: 10, Offset: 0})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Len(t, res.Items, 1)
	assert.Equal(t, "Variables", res.Items[0].LessonTitle)
	assert.NoError(t, mock.ExpectationsWereMet())
}
