package service

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	"lmsapi/internal/model"
	"lmsapi/internal/repository"
	"lmsapi/internal/validate"
)

var (
	ErrResubmissionNotAllowed = errors.New("test resubmission is not allowed for this lesson")
)

// defaultPassPercent is the score threshold (percent of max) for passing a test.
const defaultPassPercent = 70

// CourseTrackInput is the payload for a course tracking update.
// Pointer fields are optional: absent fields keep their current value.
type CourseTrackInput struct {
	UserID            string     `json:"userId" validate:"required,uuid4"`
	CourseID          string     `json:"courseId" validate:"required,uuid4"`
	Status            string     `json:"status" validate:"required,oneof=not_started in_progress completed"`
	StartedAt         *time.Time `json:"startedAt"`
	CompletedAt       *time.Time `json:"completedAt"`
	LessonsCompleted  *int       `json:"lessonsCompleted" validate:"omitempty,gte=0"`
	TotalLessons      *int       `json:"totalLessons" validate:"omitempty,gte=0"`
	CertificateIssued *bool      `json:"certificateIssued"`
	CertificateDate   *time.Time `json:"certificateDate"`
}

// LessonTrackInput is the payload for a lesson tracking update.
type LessonTrackInput struct {
	UserID           string     `json:"userId" validate:"required,uuid4"`
	CourseID         string     `json:"courseId" validate:"required,uuid4"`
	LessonID         string     `json:"lessonId" validate:"required,uuid4"`
	Status           string     `json:"status" validate:"required,oneof=not_started in_progress completed"`
	CompletedAt      *time.Time `json:"completedAt"`
	TimeSpentSeconds int        `json:"timeSpentSeconds" validate:"gte=0"`
}

// TestSubmitInput is the payload for recording a test submission.
type TestSubmitInput struct {
	UserID   string `json:"userId" validate:"required,uuid4"`
	LessonID string `json:"lessonId" validate:"required,uuid4"`
	Score    int    `json:"score" validate:"gte=0"`
	MaxScore int    `json:"maxScore" validate:"required,gt=0"`
}

// TrackService maintains per-user progress records.
type TrackService interface {
	// UpdateCourseTrack upserts the course progress record for a (user, course)
	// pair, recomputing the completion percentage from lesson counts.
	UpdateCourseTrack(ctx context.Context, orgID string, in CourseTrackInput) (*model.CourseTrack, error)

	// UpdateLessonTrack upserts a lesson progress record; completing a lesson
	// recomputes the owning course track.
	UpdateLessonTrack(ctx context.Context, orgID string, in LessonTrackInput) (*model.LessonTrack, error)

	// SubmitTest records a test submission, honoring the lesson's resubmission
	// policy. Resubmissions keep the best score and count attempts.
	SubmitTest(ctx context.Context, orgID string, in TestSubmitInput) (*model.TestTrack, error)
}

type trackService struct {
	tracks  repository.TrackRepository
	courses repository.CourseRepository
	lessons repository.LessonRepository
}

// NewTrackService constructs a new TrackService.
func NewTrackService(tracks repository.TrackRepository, courses repository.CourseRepository, lessons repository.LessonRepository) TrackService {
	return &trackService{tracks: tracks, courses: courses, lessons: lessons}
}

// completionPercent computes round(100 * completed / total); 0 when total is 0.
func completionPercent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

func (s *trackService) UpdateCourseTrack(ctx context.Context, orgID string, in CourseTrackInput) (*model.CourseTrack, error) {
	if errs := validate.Struct(in); errs != nil {
		return nil, errs
	}
	if errs := validate.DateRange(in.StartedAt, in.CompletedAt); errs != nil {
		return nil, errs
	}

	course, err := s.courses.FindByID(ctx, orgID, in.CourseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	if in.CertificateDate != nil {
		if errs := validate.CertificateDate(*in.CertificateDate, time.Now().UTC(), course.EndDate); errs != nil {
			return nil, errs
		}
	}

	now := time.Now().UTC()

	t, err := s.tracks.FindCourseTrack(ctx, orgID, in.UserID, in.CourseID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		t = &model.CourseTrack{
			ID:       uuid.New().String(),
			OrgID:    orgID,
			UserID:   in.UserID,
			CourseID: in.CourseID,
			Status:   model.TrackStatusNotStarted,
		}
	}

	t.Status = model.TrackStatus(in.Status)
	if in.StartedAt != nil {
		t.StartedAt = in.StartedAt
	}
	if in.CompletedAt != nil {
		t.CompletedAt = in.CompletedAt
	}
	if in.LessonsCompleted != nil {
		t.LessonsCompleted = *in.LessonsCompleted
	}
	if in.TotalLessons != nil {
		t.TotalLessons = *in.TotalLessons
	} else if t.TotalLessons == 0 {
		total, err := s.lessons.CountByCourse(ctx, orgID, in.CourseID)
		if err != nil {
			return nil, err
		}
		t.TotalLessons = total
	}
	if in.CertificateIssued != nil {
		t.CertificateIssued = *in.CertificateIssued
	}
	if in.CertificateDate != nil {
		t.CertificateDate = in.CertificateDate
	}

	if t.LessonsCompleted > t.TotalLessons {
		return nil, validate.FieldErrors{"lessonsCompleted": "must not exceed totalLessons"}
	}

	t.CompletionPercent = completionPercent(t.LessonsCompleted, t.TotalLessons)

	// Reaching 100% completes the track even if the caller did not say so.
	if t.CompletionPercent == 100 && t.TotalLessons > 0 {
		t.Status = model.TrackStatusCompleted
		if t.CompletedAt == nil {
			t.CompletedAt = &now
		}
	}
	if t.Status == model.TrackStatusInProgress && t.StartedAt == nil {
		t.StartedAt = &now
	}
	t.UpdatedAt = now

	return s.tracks.UpsertCourseTrack(ctx, t)
}

func (s *trackService) UpdateLessonTrack(ctx context.Context, orgID string, in LessonTrackInput) (*model.LessonTrack, error) {
	if errs := validate.Struct(in); errs != nil {
		return nil, errs
	}

	courseID, err := s.lessons.CourseIDForLesson(ctx, orgID, in.LessonID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLessonNotFound
		}
		return nil, err
	}
	// A mismatched course would plant the lesson track under the wrong course
	// and corrupt that course's completion counts.
	if courseID != in.CourseID {
		return nil, validate.FieldErrors{"courseId": "lesson does not belong to this course"}
	}

	now := time.Now().UTC()

	t, err := s.tracks.FindLessonTrack(ctx, orgID, in.UserID, in.LessonID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		t = &model.LessonTrack{
			ID:       uuid.New().String(),
			OrgID:    orgID,
			UserID:   in.UserID,
			CourseID: in.CourseID,
			LessonID: in.LessonID,
		}
	}

	t.Status = model.TrackStatus(in.Status)
	if in.CompletedAt != nil {
		t.CompletedAt = in.CompletedAt
	}
	if t.Status == model.TrackStatusCompleted && t.CompletedAt == nil {
		t.CompletedAt = &now
	}
	if in.TimeSpentSeconds > 0 {
		t.TimeSpentSeconds = in.TimeSpentSeconds
	}
	t.UpdatedAt = now

	stored, err := s.tracks.UpsertLessonTrack(ctx, t)
	if err != nil {
		return nil, err
	}

	// Lesson completion moves the course-level record.
	if stored.Status == model.TrackStatusCompleted {
		if err := s.recomputeCourseTrack(ctx, orgID, in.UserID, in.CourseID); err != nil {
			return nil, err
		}
	}

	return stored, nil
}

// recomputeCourseTrack refreshes the course track's lesson counts and
// percentage from the lesson track table.
func (s *trackService) recomputeCourseTrack(ctx context.Context, orgID, userID, courseID string) error {
	completed, err := s.tracks.CountCompletedLessons(ctx, orgID, userID, courseID)
	if err != nil {
		return err
	}
	total, err := s.lessons.CountByCourse(ctx, orgID, courseID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	t, err := s.tracks.FindCourseTrack(ctx, orgID, userID, courseID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}
		t = &model.CourseTrack{
			ID:        uuid.New().String(),
			OrgID:     orgID,
			UserID:    userID,
			CourseID:  courseID,
			StartedAt: &now,
		}
	}

	t.LessonsCompleted = completed
	t.TotalLessons = total
	t.CompletionPercent = completionPercent(completed, total)
	if t.CompletionPercent == 100 && total > 0 {
		t.Status = model.TrackStatusCompleted
		if t.CompletedAt == nil {
			t.CompletedAt = &now
		}
	} else {
		t.Status = model.TrackStatusInProgress
		if t.StartedAt == nil {
			t.StartedAt = &now
		}
	}
	t.UpdatedAt = now

	_, err = s.tracks.UpsertCourseTrack(ctx, t)
	return err
}

func (s *trackService) SubmitTest(ctx context.Context, orgID string, in TestSubmitInput) (*model.TestTrack, error) {
	if errs := validate.Struct(in); errs != nil {
		return nil, errs
	}
	if in.Score > in.MaxScore {
		return nil, validate.FieldErrors{"score": "must not exceed maxScore"}
	}

	lesson, err := s.lessons.FindByID(ctx, orgID, in.LessonID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLessonNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()

	existing, err := s.tracks.FindTestTrack(ctx, orgID, in.UserID, in.LessonID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	if existing == nil {
		t := &model.TestTrack{
			ID:          uuid.New().String(),
			OrgID:       orgID,
			UserID:      in.UserID,
			LessonID:    in.LessonID,
			Score:       in.Score,
			MaxScore:    in.MaxScore,
			Passed:      passed(in.Score, in.MaxScore),
			Attempts:    1,
			SubmittedAt: now,
		}
		return s.tracks.UpsertTestTrack(ctx, t)
	}

	if !lesson.AllowResubmission {
		return nil, ErrResubmissionNotAllowed
	}

	// Keep the best score across attempts.
	existing.Attempts++
	if in.Score*existing.MaxScore > existing.Score*in.MaxScore {
		existing.Score = in.Score
		existing.MaxScore = in.MaxScore
	}
	existing.Passed = passed(existing.Score, existing.MaxScore)
	existing.SubmittedAt = now

	return s.tracks.UpsertTestTrack(ctx, existing)
}

func passed(score, maxScore int) bool {
	return score*100 >= defaultPassPercent*maxScore
}
