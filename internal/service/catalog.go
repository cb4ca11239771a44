package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"lmsapi/internal/alias"
	"lmsapi/internal/model"
	"lmsapi/internal/repository"
	"lmsapi/internal/validate"
)

var (
	ErrCourseNotFound = errors.New("course not found")
	ErrModuleNotFound = errors.New("module not found")
	ErrLessonNotFound = errors.New("lesson not found")
)

// CreateCourseInput is the payload for creating a course.
type CreateCourseInput struct {
	Title       string     `json:"title" validate:"required,min=3"`
	Description string     `json:"description"`
	Status      string     `json:"status" validate:"omitempty,oneof=draft active inactive"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}

// UpdateCourseInput is the payload for updating a course. The alias is
// derived at creation and never changes afterwards.
type UpdateCourseInput struct {
	Title       string     `json:"title" validate:"required,min=3"`
	Description string     `json:"description"`
	Status      string     `json:"status" validate:"required,oneof=draft active inactive"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}

// CreateModuleInput is the payload for creating a module within a course.
type CreateModuleInput struct {
	Title       string `json:"title" validate:"required,min=3"`
	Description string `json:"description"`
	Position    int    `json:"position" validate:"gte=0"`
}

// CreateLessonInput is the payload for creating a lesson within a module.
type CreateLessonInput struct {
	Title             string `json:"title" validate:"required,min=3"`
	Description       string `json:"description"`
	Position          int    `json:"position" validate:"gte=0"`
	DurationMinutes   int    `json:"durationMinutes" validate:"gte=0"`
	AllowResubmission bool   `json:"allowResubmission"`
}

// UpdateLessonInput is the payload for updating a lesson.
type UpdateLessonInput struct {
	Title             string `json:"title" validate:"required,min=3"`
	Description       string `json:"description"`
	Position          int    `json:"position" validate:"gte=0"`
	DurationMinutes   int    `json:"durationMinutes" validate:"gte=0"`
	AllowResubmission bool   `json:"allowResubmission"`
}

// CatalogService manages the course/module/lesson content tree.
type CatalogService interface {
	CreateCourse(ctx context.Context, orgID string, in CreateCourseInput) (*model.Course, error)
	GetCourse(ctx context.Context, orgID, id string) (*model.Course, error)
	ListCourses(ctx context.Context, orgID string, status string, pg validate.Page) (*Page[model.Course], error)
	UpdateCourse(ctx context.Context, orgID, id string, in UpdateCourseInput) (*model.Course, error)
	DeleteCourse(ctx context.Context, orgID, id string) error

	CreateModule(ctx context.Context, orgID, courseID string, in CreateModuleInput) (*model.Module, error)
	ListModules(ctx context.Context, orgID, courseID string) ([]model.Module, error)
	UpdateModule(ctx context.Context, orgID, id string, in CreateModuleInput) (*model.Module, error)
	DeleteModule(ctx context.Context, orgID, id string) error

	CreateLesson(ctx context.Context, orgID, moduleID string, in CreateLessonInput) (*model.Lesson, error)
	ListLessons(ctx context.Context, orgID, moduleID string) ([]model.Lesson, error)
	UpdateLesson(ctx context.Context, orgID, id string, in UpdateLessonInput) (*model.Lesson, error)
	DeleteLesson(ctx context.Context, orgID, id string) error
}

type catalogService struct {
	courses repository.CourseRepository
	modules repository.ModuleRepository
	lessons repository.LessonRepository
}

// NewCatalogService constructs a new CatalogService.
func NewCatalogService(courses repository.CourseRepository, modules repository.ModuleRepository, lessons repository.LessonRepository) CatalogService {
	return &catalogService{courses: courses, modules: modules, lessons: lessons}
}

func (s *catalogService) CreateCourse(ctx context.Context, orgID string, in CreateCourseInput) (*model.Course, error) {
	if errs := validate.Struct(in); errs != nil {
		return nil, errs
	}
	if errs := validate.DateRange(in.StartDate, in.EndDate); errs != nil {
		return nil, errs
	}

	a, err := alias.Derive(ctx, in.Title, func(ctx context.Context, candidate string) (bool, error) {
		return s.courses.AliasExists(ctx, orgID, candidate)
	})
	if err != nil {
		return nil, fmt.Errorf("derive alias: %w", err)
	}

	status := model.CourseStatus(in.Status)
	if status == "" {
		status = model.CourseStatusDraft
	}

	now := time.Now().UTC()
	c := &model.Course{
		ID:          uuid.New().String(),
		OrgID:       orgID,
		Title:       in.Title,
		Alias:       a,
		Description: in.Description,
		Status:      status,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return s.courses.Create(ctx, c)
}

func (s *catalogService) GetCourse(ctx context.Context, orgID, id string) (*model.Course, error) {
	c, err := s.courses.FindByID(ctx, orgID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *catalogService) ListCourses(ctx context.Context, orgID string, status string, pg validate.Page) (*Page[model.Course], error) {
	if status != "" && !model.ValidCourseStatus(model.CourseStatus(status)) {
		return nil, validate.FieldErrors{"status": "must be one of [draft active inactive]"}
	}

	res, err := s.courses.List(ctx, orgID,
		repository.CourseFilter{Status: model.CourseStatus(status)},
		repository.PageQuery{Limit: pg.Limit, Offset: pg.Skip},
	)
	if err != nil {
		return nil, err
	}
	return &Page[model.Course]{Data: res.Items, TotalElements: res.Total, Offset: pg.Skip, Limit: pg.Limit}, nil
}

func (s *catalogService) UpdateCourse(ctx context.Context, orgID, id string, in UpdateCourseInput) (*model.Course, error) {
	if errs := validate.Struct(in); errs != nil {
		return nil, errs
	}
	if errs := validate.DateRange(in.StartDate, in.EndDate); errs != nil {
		return nil, errs
	}

	c, err := s.GetCourse(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	c.Title = in.Title
	c.Description = in.Description
	c.Status = model.CourseStatus(in.Status)
	c.StartDate = in.StartDate
	c.EndDate = in.EndDate
	c.UpdatedAt = time.Now().UTC()

	return s.courses.Update(ctx, c)
}

func (s *catalogService) DeleteCourse(ctx context.Context, orgID, id string) error {
	if _, err := s.GetCourse(ctx, orgID, id); err != nil {
		return err
	}
	return s.courses.Delete(ctx, orgID, id)
}

func (s *catalogService) CreateModule(ctx context.Context, orgID, courseID string, in CreateModuleInput) (*model.Module, error) {
	if errs := validate.Struct(in); errs != nil {
		return nil, errs
	}
	if _, err := s.GetCourse(ctx, orgID, courseID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	m := &model.Module{
		ID:          uuid.New().String(),
		OrgID:       orgID,
		CourseID:    courseID,
		Title:       in.Title,
		Description: in.Description,
		Position:    in.Position,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return s.modules.Create(ctx, m)
}

func (s *catalogService) ListModules(ctx context.Context, orgID, courseID string) ([]model.Module, error) {
	if _, err := s.GetCourse(ctx, orgID, courseID); err != nil {
		return nil, err
	}
	return s.modules.ListByCourse(ctx, orgID, courseID)
}

func (s *catalogService) UpdateModule(ctx context.Context, orgID, id string, in CreateModuleInput) (*model.Module, error) {
	if errs := validate.Struct(in); errs != nil {
		return nil, errs
	}

	m, err := s.modules.FindByID(ctx, orgID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrModuleNotFound
		}
		return nil, err
	}

	m.Title = in.Title
	m.Description = in.Description
	m.Position = in.Position
	m.UpdatedAt = time.Now().UTC()

	return s.modules.Update(ctx, m)
}

func (s *catalogService) DeleteModule(ctx context.Context, orgID, id string) error {
	if _, err := s.modules.FindByID(ctx, orgID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrModuleNotFound
		}
		return err
	}
	return s.modules.Delete(ctx, orgID, id)
}

func (s *catalogService) CreateLesson(ctx context.Context, orgID, moduleID string, in CreateLessonInput) (*model.Lesson, error) {
	if errs := validate.Struct(in); errs != nil {
		return nil, errs
	}
	if _, err := s.modules.FindByID(ctx, orgID, moduleID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrModuleNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	l := &model.Lesson{
		ID:                uuid.New().String(),
		OrgID:             orgID,
		ModuleID:          moduleID,
		Title:             in.Title,
		Description:       in.Description,
		Position:          in.Position,
		DurationMinutes:   in.DurationMinutes,
		AllowResubmission: in.AllowResubmission,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	return s.lessons.Create(ctx, l)
}

func (s *catalogService) ListLessons(ctx context.Context, orgID, moduleID string) ([]model.Lesson, error) {
	if _, err := s.modules.FindByID(ctx, orgID, moduleID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrModuleNotFound
		}
		return nil, err
	}
	return s.lessons.ListByModule(ctx, orgID, moduleID)
}

func (s *catalogService) UpdateLesson(ctx context.Context, orgID, id string, in UpdateLessonInput) (*model.Lesson, error) {
	if errs := validate.Struct(in); errs != nil {
		return nil, errs
	}

	l, err := s.lessons.FindByID(ctx, orgID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLessonNotFound
		}
		return nil, err
	}

	l.Title = in.Title
	l.Description = in.Description
	l.Position = in.Position
	l.DurationMinutes = in.DurationMinutes
	l.AllowResubmission = in.AllowResubmission
	l.UpdatedAt = time.Now().UTC()

	return s.lessons.Update(ctx, l)
}

func (s *catalogService) DeleteLesson(ctx context.Context, orgID, id string) error {
	if _, err := s.lessons.FindByID(ctx, orgID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrLessonNotFound
		}
		return err
	}
	return s.lessons.Delete(ctx, orgID, id)
}
