package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"lmsapi/internal/model"
	repoMocks "lmsapi/internal/repository/mocks"
	"lmsapi/internal/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCompletionPercent(t *testing.T) {
	tests := []struct {
		completed, total, want int
	}{
		{0, 0, 0},
		{0, 10, 0},
		{1, 3, 33},
		{2, 3, 67},
		{5, 10, 50},
		{10, 10, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, completionPercent(tt.completed, tt.total))
	}
}

func TestTrackService_UpdateCourseTrack(t *testing.T) {
	ctx := context.Background()

	course := &model.Course{ID: testCourseID, Status: model.CourseStatusActive}
	intp := func(n int) *int { return &n }
	boolp := func(b bool) *bool { return &b }
	timep := func(tm time.Time) *time.Time { return &tm }

	tests := []struct {
		name       string
		in         CourseTrackInput
		setupMocks func(mTrack *repoMocks.MockTrackRepository, mCourse *repoMocks.MockCourseRepository, mLesson *repoMocks.MockLessonRepository)
		wantErr    error
		wantValErr bool
		check      func(t *testing.T, track *model.CourseTrack)
	}{
		{
			name: "first write creates the record",
			in: CourseTrackInput{
				UserID:           testUserID,
				CourseID:         testCourseID,
				Status:           "in_progress",
				LessonsCompleted: intp(2),
			},
			setupMocks: func(mTrack *repoMocks.MockTrackRepository, mCourse *repoMocks.MockCourseRepository, mLesson *repoMocks.MockLessonRepository) {
				mCourse.On("FindByID", ctx, testOrgID, testCourseID).Return(course, nil)
				mTrack.On("FindCourseTrack", ctx, testOrgID, testUserID, testCourseID).Return(nil, sql.ErrNoRows)
				mLesson.On("CountByCourse", ctx, testOrgID, testCourseID).Return(8, nil)
				mTrack.On("UpsertCourseTrack", ctx, mock.MatchedBy(func(tr *model.CourseTrack) bool {
					return tr.ID != "" && tr.LessonsCompleted == 2 && tr.TotalLessons == 8 &&
						tr.CompletionPercent == 25 && tr.Status == model.TrackStatusInProgress &&
						tr.StartedAt != nil
				})).Return(&model.CourseTrack{CompletionPercent: 25}, nil)
			},
			check: func(t *testing.T, track *model.CourseTrack) {
				assert.Equal(t, 25, track.CompletionPercent)
			},
		},
		{
			name: "reaching all lessons completes the track",
			in: CourseTrackInput{
				UserID:           testUserID,
				CourseID:         testCourseID,
				Status:           "in_progress",
				LessonsCompleted: intp(8),
			},
			setupMocks: func(mTrack *repoMocks.MockTrackRepository, mCourse *repoMocks.MockCourseRepository, mLesson *repoMocks.MockLessonRepository) {
				mCourse.On("FindByID", ctx, testOrgID, testCourseID).Return(course, nil)
				mTrack.On("FindCourseTrack", ctx, testOrgID, testUserID, testCourseID).
					Return(&model.CourseTrack{
						ID: "trk-1", OrgID: testOrgID, UserID: testUserID, CourseID: testCourseID,
						Status: model.TrackStatusInProgress, TotalLessons: 8,
					}, nil)
				mTrack.On("UpsertCourseTrack", ctx, mock.MatchedBy(func(tr *model.CourseTrack) bool {
					return tr.Status == model.TrackStatusCompleted && tr.CompletionPercent == 100 &&
						tr.CompletedAt != nil
				})).Return(&model.CourseTrack{Status: model.TrackStatusCompleted, CompletionPercent: 100}, nil)
			},
			check: func(t *testing.T, track *model.CourseTrack) {
				assert.Equal(t, model.TrackStatusCompleted, track.Status)
			},
		},
		{
			name: "lessons completed above total rejected",
			in: CourseTrackInput{
				UserID:           testUserID,
				CourseID:         testCourseID,
				Status:           "in_progress",
				LessonsCompleted: intp(5),
				TotalLessons:     intp(2),
			},
			setupMocks: func(mTrack *repoMocks.MockTrackRepository, mCourse *repoMocks.MockCourseRepository, mLesson *repoMocks.MockLessonRepository) {
				mCourse.On("FindByID", ctx, testOrgID, testCourseID).Return(course, nil)
				mTrack.On("FindCourseTrack", ctx, testOrgID, testUserID, testCourseID).Return(nil, sql.ErrNoRows)
			},
			wantValErr: true,
		},
		{
			name: "lessons completed above derived total rejected",
			in: CourseTrackInput{
				UserID:           testUserID,
				CourseID:         testCourseID,
				Status:           "in_progress",
				LessonsCompleted: intp(5),
			},
			setupMocks: func(mTrack *repoMocks.MockTrackRepository, mCourse *repoMocks.MockCourseRepository, mLesson *repoMocks.MockLessonRepository) {
				mCourse.On("FindByID", ctx, testOrgID, testCourseID).Return(course, nil)
				mTrack.On("FindCourseTrack", ctx, testOrgID, testUserID, testCourseID).Return(nil, sql.ErrNoRows)
				mLesson.On("CountByCourse", ctx, testOrgID, testCourseID).Return(2, nil)
			},
			wantValErr: true,
		},
		{
			name: "validation - unknown status",
			in: CourseTrackInput{
				UserID:   testUserID,
				CourseID: testCourseID,
				Status:   "paused",
			},
			setupMocks: func(mTrack *repoMocks.MockTrackRepository, mCourse *repoMocks.MockCourseRepository, mLesson *repoMocks.MockLessonRepository) {
			},
			wantValErr: true,
		},
		{
			name: "completedAt before startedAt rejected",
			in: CourseTrackInput{
				UserID:      testUserID,
				CourseID:    testCourseID,
				Status:      "completed",
				StartedAt:   timep(time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)),
				CompletedAt: timep(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)),
			},
			setupMocks: func(mTrack *repoMocks.MockTrackRepository, mCourse *repoMocks.MockCourseRepository, mLesson *repoMocks.MockLessonRepository) {
			},
			wantValErr: true,
		},
		{
			name: "course missing",
			in: CourseTrackInput{
				UserID:   testUserID,
				CourseID: testCourseID,
				Status:   "in_progress",
			},
			setupMocks: func(mTrack *repoMocks.MockTrackRepository, mCourse *repoMocks.MockCourseRepository, mLesson *repoMocks.MockLessonRepository) {
				mCourse.On("FindByID", ctx, testOrgID, testCourseID).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrCourseNotFound,
		},
		{
			name: "certificate date in the past rejected",
			in: CourseTrackInput{
				UserID:            testUserID,
				CourseID:          testCourseID,
				Status:            "completed",
				CertificateIssued: boolp(true),
				CertificateDate:   timep(time.Now().UTC().Add(-24 * time.Hour)),
			},
			setupMocks: func(mTrack *repoMocks.MockTrackRepository, mCourse *repoMocks.MockCourseRepository, mLesson *repoMocks.MockLessonRepository) {
				mCourse.On("FindByID", ctx, testOrgID, testCourseID).Return(course, nil)
			},
			wantValErr: true,
		},
		{
			name: "certificate date before course end rejected",
			in: CourseTrackInput{
				UserID:            testUserID,
				CourseID:          testCourseID,
				Status:            "completed",
				CertificateIssued: boolp(true),
				CertificateDate:   timep(time.Now().UTC().Add(24 * time.Hour)),
			},
			setupMocks: func(mTrack *repoMocks.MockTrackRepository, mCourse *repoMocks.MockCourseRepository, mLesson *repoMocks.MockLessonRepository) {
				end := time.Now().UTC().Add(30 * 24 * time.Hour)
				mCourse.On("FindByID", ctx, testOrgID, testCourseID).
					Return(&model.Course{ID: testCourseID, Status: model.CourseStatusActive, EndDate: &end}, nil)
			},
			wantValErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mTrack := new(repoMocks.MockTrackRepository)
			mCourse := new(repoMocks.MockCourseRepository)
			mLesson := new(repoMocks.MockLessonRepository)
			svc := NewTrackService(mTrack, mCourse, mLesson)

			tt.setupMocks(mTrack, mCourse, mLesson)

			track, err := svc.UpdateCourseTrack(ctx, testOrgID, tt.in)

			switch {
			case tt.wantValErr:
				var fieldErrs validate.FieldErrors
				assert.ErrorAs(t, err, &fieldErrs)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				assert.NoError(t, err)
				if tt.check != nil {
					tt.check(t, track)
				}
			}
			mTrack.AssertExpectations(t)
			mCourse.AssertExpectations(t)
			mLesson.AssertExpectations(t)
		})
	}
}

func TestTrackService_UpdateLessonTrack(t *testing.T) {
	ctx := context.Background()

	t.Run("completing a lesson recomputes the course track", func(t *testing.T) {
		mTrack := new(repoMocks.MockTrackRepository)
		mCourse := new(repoMocks.MockCourseRepository)
		mLesson := new(repoMocks.MockLessonRepository)
		svc := NewTrackService(mTrack, mCourse, mLesson)

		mLesson.On("CourseIDForLesson", ctx, testOrgID, testLessonID).Return(testCourseID, nil)
		mTrack.On("FindLessonTrack", ctx, testOrgID, testUserID, testLessonID).Return(nil, sql.ErrNoRows)
		mTrack.On("UpsertLessonTrack", ctx, mock.MatchedBy(func(tr *model.LessonTrack) bool {
			return tr.Status == model.TrackStatusCompleted && tr.CompletedAt != nil
		})).Return(&model.LessonTrack{ID: "lt-1", Status: model.TrackStatusCompleted}, nil)

		mTrack.On("CountCompletedLessons", ctx, testOrgID, testUserID, testCourseID).Return(3, nil)
		mLesson.On("CountByCourse", ctx, testOrgID, testCourseID).Return(4, nil)
		mTrack.On("FindCourseTrack", ctx, testOrgID, testUserID, testCourseID).
			Return(&model.CourseTrack{ID: "trk-1", Status: model.TrackStatusInProgress}, nil)
		mTrack.On("UpsertCourseTrack", ctx, mock.MatchedBy(func(tr *model.CourseTrack) bool {
			return tr.LessonsCompleted == 3 && tr.TotalLessons == 4 && tr.CompletionPercent == 75
		})).Return(&model.CourseTrack{}, nil)

		got, err := svc.UpdateLessonTrack(ctx, testOrgID, LessonTrackInput{
			UserID:   testUserID,
			CourseID: testCourseID,
			LessonID: testLessonID,
			Status:   "completed",
		})

		assert.NoError(t, err)
		assert.Equal(t, model.TrackStatusCompleted, got.Status)
		mTrack.AssertExpectations(t)
		mLesson.AssertExpectations(t)
	})

	t.Run("in-progress update does not touch the course track", func(t *testing.T) {
		mTrack := new(repoMocks.MockTrackRepository)
		mLesson := new(repoMocks.MockLessonRepository)
		svc := NewTrackService(mTrack, nil, mLesson)

		mLesson.On("CourseIDForLesson", ctx, testOrgID, testLessonID).Return(testCourseID, nil)
		mTrack.On("FindLessonTrack", ctx, testOrgID, testUserID, testLessonID).
			Return(&model.LessonTrack{ID: "lt-1", Status: model.TrackStatusNotStarted}, nil)
		mTrack.On("UpsertLessonTrack", ctx, mock.Anything).
			Return(&model.LessonTrack{ID: "lt-1", Status: model.TrackStatusInProgress}, nil)

		_, err := svc.UpdateLessonTrack(ctx, testOrgID, LessonTrackInput{
			UserID:           testUserID,
			CourseID:         testCourseID,
			LessonID:         testLessonID,
			Status:           "in_progress",
			TimeSpentSeconds: 120,
		})

		assert.NoError(t, err)
		mTrack.AssertExpectations(t)
	})

	t.Run("lesson missing", func(t *testing.T) {
		mTrack := new(repoMocks.MockTrackRepository)
		mLesson := new(repoMocks.MockLessonRepository)
		svc := NewTrackService(mTrack, nil, mLesson)

		mLesson.On("CourseIDForLesson", ctx, testOrgID, testLessonID).Return("", sql.ErrNoRows)

		_, err := svc.UpdateLessonTrack(ctx, testOrgID, LessonTrackInput{
			UserID:   testUserID,
			CourseID: testCourseID,
			LessonID: testLessonID,
			Status:   "completed",
		})

		assert.ErrorIs(t, err, ErrLessonNotFound)
	})

	t.Run("lesson from a different course rejected", func(t *testing.T) {
		mTrack := new(repoMocks.MockTrackRepository)
		mLesson := new(repoMocks.MockLessonRepository)
		svc := NewTrackService(mTrack, nil, mLesson)

		// The lesson belongs to another course; accepting the write would
		// inflate that course's completed-lesson count.
		mLesson.On("CourseIDForLesson", ctx, testOrgID, testLessonID).
			Return("5b4a3c2d-1e0f-4a9b-8c7d-998877665544", nil)

		_, err := svc.UpdateLessonTrack(ctx, testOrgID, LessonTrackInput{
			UserID:   testUserID,
			CourseID: testCourseID,
			LessonID: testLessonID,
			Status:   "completed",
		})

		var fieldErrs validate.FieldErrors
		assert.ErrorAs(t, err, &fieldErrs)
		assert.Contains(t, fieldErrs, "courseId")
		mTrack.AssertNotCalled(t, "UpsertLessonTrack", mock.Anything, mock.Anything)
	})
}

func TestTrackService_SubmitTest(t *testing.T) {
	ctx := context.Background()

	lessonNoResubmit := &model.Lesson{ID: testLessonID, AllowResubmission: false}
	lessonResubmit := &model.Lesson{ID: testLessonID, AllowResubmission: true}

	t.Run("first submission", func(t *testing.T) {
		mTrack := new(repoMocks.MockTrackRepository)
		mLesson := new(repoMocks.MockLessonRepository)
		svc := NewTrackService(mTrack, nil, mLesson)

		mLesson.On("FindByID", ctx, testOrgID, testLessonID).Return(lessonNoResubmit, nil)
		mTrack.On("FindTestTrack", ctx, testOrgID, testUserID, testLessonID).Return(nil, sql.ErrNoRows)
		mTrack.On("UpsertTestTrack", ctx, mock.MatchedBy(func(tr *model.TestTrack) bool {
			return tr.Score == 8 && tr.MaxScore == 10 && tr.Passed && tr.Attempts == 1
		})).Return(&model.TestTrack{Score: 8, MaxScore: 10, Passed: true, Attempts: 1}, nil)

		got, err := svc.SubmitTest(ctx, testOrgID, TestSubmitInput{
			UserID: testUserID, LessonID: testLessonID, Score: 8, MaxScore: 10,
		})

		assert.NoError(t, err)
		assert.True(t, got.Passed)
		mTrack.AssertExpectations(t)
	})

	t.Run("below pass mark fails", func(t *testing.T) {
		mTrack := new(repoMocks.MockTrackRepository)
		mLesson := new(repoMocks.MockLessonRepository)
		svc := NewTrackService(mTrack, nil, mLesson)

		mLesson.On("FindByID", ctx, testOrgID, testLessonID).Return(lessonNoResubmit, nil)
		mTrack.On("FindTestTrack", ctx, testOrgID, testUserID, testLessonID).Return(nil, sql.ErrNoRows)
		mTrack.On("UpsertTestTrack", ctx, mock.MatchedBy(func(tr *model.TestTrack) bool {
			return !tr.Passed
		})).Return(&model.TestTrack{Score: 5, MaxScore: 10}, nil)

		got, err := svc.SubmitTest(ctx, testOrgID, TestSubmitInput{
			UserID: testUserID, LessonID: testLessonID, Score: 5, MaxScore: 10,
		})

		assert.NoError(t, err)
		assert.False(t, got.Passed)
	})

	t.Run("resubmission blocked when lesson disallows it", func(t *testing.T) {
		mTrack := new(repoMocks.MockTrackRepository)
		mLesson := new(repoMocks.MockLessonRepository)
		svc := NewTrackService(mTrack, nil, mLesson)

		mLesson.On("FindByID", ctx, testOrgID, testLessonID).Return(lessonNoResubmit, nil)
		mTrack.On("FindTestTrack", ctx, testOrgID, testUserID, testLessonID).
			Return(&model.TestTrack{ID: "tt-1", Score: 6, MaxScore: 10, Attempts: 1}, nil)

		_, err := svc.SubmitTest(ctx, testOrgID, TestSubmitInput{
			UserID: testUserID, LessonID: testLessonID, Score: 9, MaxScore: 10,
		})

		assert.ErrorIs(t, err, ErrResubmissionNotAllowed)
	})

	t.Run("resubmission keeps best score and counts attempts", func(t *testing.T) {
		mTrack := new(repoMocks.MockTrackRepository)
		mLesson := new(repoMocks.MockLessonRepository)
		svc := NewTrackService(mTrack, nil, mLesson)

		mLesson.On("FindByID", ctx, testOrgID, testLessonID).Return(lessonResubmit, nil)
		mTrack.On("FindTestTrack", ctx, testOrgID, testUserID, testLessonID).
			Return(&model.TestTrack{ID: "tt-1", Score: 9, MaxScore: 10, Passed: true, Attempts: 1}, nil)
		mTrack.On("UpsertTestTrack", ctx, mock.MatchedBy(func(tr *model.TestTrack) bool {
			// Lower score does not overwrite the stored best
			return tr.Score == 9 && tr.Attempts == 2 && tr.Passed
		})).Return(&model.TestTrack{Score: 9, MaxScore: 10, Passed: true, Attempts: 2}, nil)

		got, err := svc.SubmitTest(ctx, testOrgID, TestSubmitInput{
			UserID: testUserID, LessonID: testLessonID, Score: 4, MaxScore: 10,
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, got.Attempts)
		assert.Equal(t, 9, got.Score)
	})

	t.Run("score above max rejected", func(t *testing.T) {
		svc := NewTrackService(new(repoMocks.MockTrackRepository), nil, new(repoMocks.MockLessonRepository))

		_, err := svc.SubmitTest(ctx, testOrgID, TestSubmitInput{
			UserID: testUserID, LessonID: testLessonID, Score: 11, MaxScore: 10,
		})

		var fieldErrs validate.FieldErrors
		assert.ErrorAs(t, err, &fieldErrs)
		assert.Contains(t, fieldErrs, "score")
	})
}
