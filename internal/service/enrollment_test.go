package service

import (
	"context"
	"database/sql"
	"testing"

	"lmsapi/internal/model"
	"lmsapi/internal/repository"
	repoMocks "lmsapi/internal/repository/mocks"
	"lmsapi/internal/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const (
	testOrgID    = "0d0b2a38-6a0e-4a1c-8f57-1f2f3b4c5d6e"
	testUserID   = "6b4d9f12-8a3c-47e1-9f20-aa11bb22cc33"
	testCourseID = "9c8e7d6f-5a4b-4c3d-8e2f-001122334455"
	testLessonID = "1a2b3c4d-5e6f-4a8b-9c0d-998877665544"
)

func TestEnrollmentService_Enroll(t *testing.T) {
	ctx := context.Background()

	activeCourse := &model.Course{ID: testCourseID, Status: model.CourseStatusActive}

	tests := []struct {
		name       string
		in         EnrollInput
		setupMocks func(mEnroll *repoMocks.MockEnrollmentRepository, mCourse *repoMocks.MockCourseRepository)
		wantErr    error
		wantValErr bool
	}{
		{
			name: "happy path",
			in:   EnrollInput{UserID: testUserID, CourseID: testCourseID},
			setupMocks: func(mEnroll *repoMocks.MockEnrollmentRepository, mCourse *repoMocks.MockCourseRepository) {
				mCourse.On("FindByID", ctx, testOrgID, testCourseID).Return(activeCourse, nil)
				mEnroll.On("FindActive", ctx, testOrgID, testUserID, testCourseID).Return(nil, sql.ErrNoRows)
				mEnroll.On("Create", ctx, mock.MatchedBy(func(e *model.Enrollment) bool {
					return e.OrgID == testOrgID && e.UserID == testUserID &&
						e.CourseID == testCourseID && e.Status == model.EnrollmentStatusActive
				})).Return(&model.Enrollment{ID: "gen-id", Status: model.EnrollmentStatusActive}, nil)
			},
		},
		{
			name:       "validation - malformed user id",
			in:         EnrollInput{UserID: "nope", CourseID: testCourseID},
			setupMocks: func(mEnroll *repoMocks.MockEnrollmentRepository, mCourse *repoMocks.MockCourseRepository) {},
			wantValErr: true,
		},
		{
			name: "course missing",
			in:   EnrollInput{UserID: testUserID, CourseID: testCourseID},
			setupMocks: func(mEnroll *repoMocks.MockEnrollmentRepository, mCourse *repoMocks.MockCourseRepository) {
				mCourse.On("FindByID", ctx, testOrgID, testCourseID).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrCourseNotFound,
		},
		{
			name: "course not active",
			in:   EnrollInput{UserID: testUserID, CourseID: testCourseID},
			setupMocks: func(mEnroll *repoMocks.MockEnrollmentRepository, mCourse *repoMocks.MockCourseRepository) {
				mCourse.On("FindByID", ctx, testOrgID, testCourseID).
					Return(&model.Course{ID: testCourseID, Status: model.CourseStatusDraft}, nil)
			},
			wantErr: ErrCourseNotActive,
		},
		{
			name: "already enrolled",
			in:   EnrollInput{UserID: testUserID, CourseID: testCourseID},
			setupMocks: func(mEnroll *repoMocks.MockEnrollmentRepository, mCourse *repoMocks.MockCourseRepository) {
				mCourse.On("FindByID", ctx, testOrgID, testCourseID).Return(activeCourse, nil)
				mEnroll.On("FindActive", ctx, testOrgID, testUserID, testCourseID).
					Return(&model.Enrollment{ID: "existing", Status: model.EnrollmentStatusActive}, nil)
			},
			wantErr: ErrAlreadyEnrolled,
		},
		{
			name: "cancelled enrollment does not block re-enrollment",
			in:   EnrollInput{UserID: testUserID, CourseID: testCourseID},
			setupMocks: func(mEnroll *repoMocks.MockEnrollmentRepository, mCourse *repoMocks.MockCourseRepository) {
				mCourse.On("FindByID", ctx, testOrgID, testCourseID).Return(activeCourse, nil)
				// FindActive only matches status=active, so a cancelled row yields no rows
				mEnroll.On("FindActive", ctx, testOrgID, testUserID, testCourseID).Return(nil, sql.ErrNoRows)
				mEnroll.On("Create", ctx, mock.Anything).
					Return(&model.Enrollment{ID: "new-id", Status: model.EnrollmentStatusActive}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mEnroll := new(repoMocks.MockEnrollmentRepository)
			mCourse := new(repoMocks.MockCourseRepository)
			svc := NewEnrollmentService(mEnroll, mCourse)

			tt.setupMocks(mEnroll, mCourse)

			e, err := svc.Enroll(ctx, testOrgID, tt.in)

			switch {
			case tt.wantValErr:
				var fieldErrs validate.FieldErrors
				assert.ErrorAs(t, err, &fieldErrs)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, e)
			default:
				assert.NoError(t, err)
				assert.NotNil(t, e)
			}
			mEnroll.AssertExpectations(t)
			mCourse.AssertExpectations(t)
		})
	}
}

func TestEnrollmentService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		in         UpdateEnrollmentInput
		setupMocks func(mEnroll *repoMocks.MockEnrollmentRepository)
		wantErr    error
		wantStatus model.EnrollmentStatus
	}{
		{
			name: "active to cancelled",
			in:   UpdateEnrollmentInput{Status: "cancelled"},
			setupMocks: func(mEnroll *repoMocks.MockEnrollmentRepository) {
				mEnroll.On("FindByID", ctx, testOrgID, "enr-1").
					Return(&model.Enrollment{ID: "enr-1", Status: model.EnrollmentStatusActive}, nil)
				mEnroll.On("Update", ctx, mock.MatchedBy(func(e *model.Enrollment) bool {
					return e.Status == model.EnrollmentStatusCancelled && e.CancelledAt != nil
				})).Return(&model.Enrollment{ID: "enr-1", Status: model.EnrollmentStatusCancelled}, nil)
			},
			wantStatus: model.EnrollmentStatusCancelled,
		},
		{
			name: "same status is a no-op",
			in:   UpdateEnrollmentInput{Status: "active"},
			setupMocks: func(mEnroll *repoMocks.MockEnrollmentRepository) {
				mEnroll.On("FindByID", ctx, testOrgID, "enr-1").
					Return(&model.Enrollment{ID: "enr-1", Status: model.EnrollmentStatusActive}, nil)
			},
			wantStatus: model.EnrollmentStatusActive,
		},
		{
			name: "cancelled cannot be reactivated",
			in:   UpdateEnrollmentInput{Status: "active"},
			setupMocks: func(mEnroll *repoMocks.MockEnrollmentRepository) {
				mEnroll.On("FindByID", ctx, testOrgID, "enr-1").
					Return(&model.Enrollment{ID: "enr-1", Status: model.EnrollmentStatusCancelled}, nil)
			},
			wantErr: ErrInvalidTransition,
		},
		{
			name: "not found",
			in:   UpdateEnrollmentInput{Status: "cancelled"},
			setupMocks: func(mEnroll *repoMocks.MockEnrollmentRepository) {
				mEnroll.On("FindByID", ctx, testOrgID, "enr-1").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrEnrollmentNotFound,
		},
		{
			name: "row deleted between read and write",
			in:   UpdateEnrollmentInput{Status: "cancelled"},
			setupMocks: func(mEnroll *repoMocks.MockEnrollmentRepository) {
				mEnroll.On("FindByID", ctx, testOrgID, "enr-1").
					Return(&model.Enrollment{ID: "enr-1", Status: model.EnrollmentStatusActive}, nil)
				mEnroll.On("Update", ctx, mock.Anything).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrEnrollmentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mEnroll := new(repoMocks.MockEnrollmentRepository)
			svc := NewEnrollmentService(mEnroll, nil)

			tt.setupMocks(mEnroll)

			e, err := svc.UpdateStatus(ctx, testOrgID, "enr-1", tt.in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantStatus, e.Status)
			}
			mEnroll.AssertExpectations(t)
		})
	}
}

func TestEnrollmentService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("maps filter and pagination window", func(t *testing.T) {
		mEnroll := new(repoMocks.MockEnrollmentRepository)
		svc := NewEnrollmentService(mEnroll, nil)

		mEnroll.On("List", ctx, testOrgID,
			repository.EnrollmentFilter{UserID: testUserID, Status: model.EnrollmentStatusActive},
			repository.PageQuery{Limit: 20, Offset: 40},
		).Return(&repository.PageResult[model.Enrollment]{
			Items: []model.Enrollment{{ID: "e1"}, {ID: "e2"}},
			Total: 42,
		}, nil)

		page, err := svc.List(ctx, testOrgID,
			EnrollmentFilterInput{UserID: testUserID, Status: "active"},
			validate.Page{Limit: 20, Skip: 40})

		assert.NoError(t, err)
		assert.Len(t, page.Data, 2)
		assert.Equal(t, 42, page.TotalElements)
		assert.Equal(t, 40, page.Offset)
		assert.Equal(t, 20, page.Limit)
		mEnroll.AssertExpectations(t)
	})

	t.Run("rejects unknown status filter", func(t *testing.T) {
		svc := NewEnrollmentService(new(repoMocks.MockEnrollmentRepository), nil)

		_, err := svc.List(ctx, testOrgID, EnrollmentFilterInput{Status: "paused"}, validate.Page{Limit: 10})

		var fieldErrs validate.FieldErrors
		assert.ErrorAs(t, err, &fieldErrs)
		assert.Contains(t, fieldErrs, "status")
	})
}

func TestEnrollmentService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("delegates to status update", func(t *testing.T) {
		mEnroll := new(repoMocks.MockEnrollmentRepository)
		svc := NewEnrollmentService(mEnroll, nil)

		mEnroll.On("FindByID", ctx, testOrgID, "enr-1").
			Return(&model.Enrollment{ID: "enr-1", Status: model.EnrollmentStatusActive}, nil)
		mEnroll.On("Update", ctx, mock.Anything).
			Return(&model.Enrollment{ID: "enr-1", Status: model.EnrollmentStatusCancelled}, nil)

		err := svc.Cancel(ctx, testOrgID, "enr-1")

		assert.NoError(t, err)
		mEnroll.AssertExpectations(t)
	})

	t.Run("double cancel is idempotent", func(t *testing.T) {
		mEnroll := new(repoMocks.MockEnrollmentRepository)
		svc := NewEnrollmentService(mEnroll, nil)

		mEnroll.On("FindByID", ctx, testOrgID, "enr-1").
			Return(&model.Enrollment{ID: "enr-1", Status: model.EnrollmentStatusCancelled}, nil)

		err := svc.Cancel(ctx, testOrgID, "enr-1")

		assert.NoError(t, err)
		mEnroll.AssertExpectations(t)
	})
}
