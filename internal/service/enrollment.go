package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"lmsapi/internal/model"
	"lmsapi/internal/repository"
	"lmsapi/internal/validate"
)

var (
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrAlreadyEnrolled    = errors.New("user already enrolled in this course")
	ErrCourseNotActive    = errors.New("course is not active")
	// ErrInvalidTransition covers any enrollment status change other than
	// active -> cancelled.
	ErrInvalidTransition = errors.New("invalid enrollment status transition")
)

// EnrollInput is the payload for creating an enrollment.
type EnrollInput struct {
	UserID   string `json:"userId" validate:"required,uuid4"`
	CourseID string `json:"courseId" validate:"required,uuid4"`
}

// UpdateEnrollmentInput is the payload for changing an enrollment's status.
type UpdateEnrollmentInput struct {
	Status string `json:"status" validate:"required,oneof=active cancelled"`
}

// EnrollmentFilterInput narrows enrollment list queries.
type EnrollmentFilterInput struct {
	UserID   string
	CourseID string
	Status   string
}

// EnrollmentService manages learner enrollments.
type EnrollmentService interface {
	Enroll(ctx context.Context, orgID string, in EnrollInput) (*model.Enrollment, error)
	Get(ctx context.Context, orgID, id string) (*model.Enrollment, error)
	List(ctx context.Context, orgID string, f EnrollmentFilterInput, pg validate.Page) (*Page[model.Enrollment], error)
	UpdateStatus(ctx context.Context, orgID, id string, in UpdateEnrollmentInput) (*model.Enrollment, error)
	// Cancel transitions an active enrollment to cancelled.
	Cancel(ctx context.Context, orgID, id string) error
}

type enrollmentService struct {
	enrollments repository.EnrollmentRepository
	courses     repository.CourseRepository
}

// NewEnrollmentService constructs a new EnrollmentService.
func NewEnrollmentService(enrollments repository.EnrollmentRepository, courses repository.CourseRepository) EnrollmentService {
	return &enrollmentService{enrollments: enrollments, courses: courses}
}

// Enroll creates an active enrollment after verifying the course exists, is
// active, and the user is not already enrolled.
func (s *enrollmentService) Enroll(ctx context.Context, orgID string, in EnrollInput) (*model.Enrollment, error) {
	if errs := validate.Struct(in); errs != nil {
		return nil, errs
	}

	course, err := s.courses.FindByID(ctx, orgID, in.CourseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	if course.Status != model.CourseStatusActive {
		return nil, ErrCourseNotActive
	}

	if _, err := s.enrollments.FindActive(ctx, orgID, in.UserID, in.CourseID); err == nil {
		return nil, ErrAlreadyEnrolled
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	e := &model.Enrollment{
		ID:         uuid.New().String(),
		OrgID:      orgID,
		UserID:     in.UserID,
		CourseID:   in.CourseID,
		Status:     model.EnrollmentStatusActive,
		EnrolledAt: time.Now().UTC(),
	}
	return s.enrollments.Create(ctx, e)
}

func (s *enrollmentService) Get(ctx context.Context, orgID, id string) (*model.Enrollment, error) {
	e, err := s.enrollments.FindByID(ctx, orgID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *enrollmentService) List(ctx context.Context, orgID string, f EnrollmentFilterInput, pg validate.Page) (*Page[model.Enrollment], error) {
	if f.Status != "" && !model.ValidEnrollmentStatus(model.EnrollmentStatus(f.Status)) {
		return nil, validate.FieldErrors{"status": "must be one of [active cancelled]"}
	}

	res, err := s.enrollments.List(ctx, orgID,
		repository.EnrollmentFilter{
			UserID:   f.UserID,
			CourseID: f.CourseID,
			Status:   model.EnrollmentStatus(f.Status),
		},
		repository.PageQuery{Limit: pg.Limit, Offset: pg.Skip},
	)
	if err != nil {
		return nil, err
	}
	return &Page[model.Enrollment]{Data: res.Items, TotalElements: res.Total, Offset: pg.Skip, Limit: pg.Limit}, nil
}

// UpdateStatus applies a status change. The only legal transition is
// active -> cancelled; anything else is rejected.
func (s *enrollmentService) UpdateStatus(ctx context.Context, orgID, id string, in UpdateEnrollmentInput) (*model.Enrollment, error) {
	if errs := validate.Struct(in); errs != nil {
		return nil, errs
	}

	e, err := s.Get(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	target := model.EnrollmentStatus(in.Status)
	if target == e.Status {
		return e, nil
	}
	if e.Status != model.EnrollmentStatusActive || target != model.EnrollmentStatusCancelled {
		return nil, ErrInvalidTransition
	}

	now := time.Now().UTC()
	e.Status = model.EnrollmentStatusCancelled
	e.CancelledAt = &now

	updated, err := s.enrollments.Update(ctx, e)
	if err != nil {
		// The row can vanish between the read and the write.
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *enrollmentService) Cancel(ctx context.Context, orgID, id string) error {
	_, err := s.UpdateStatus(ctx, orgID, id, UpdateEnrollmentInput{Status: string(model.EnrollmentStatusCancelled)})
	return err
}
