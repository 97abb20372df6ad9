package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"

	"eduport/gateway"
	"eduport/models"
	"eduport/views"
)

var (
	// ErrEmptySubmission rejects a submission before any network call.
	ErrEmptySubmission = errors.New("submission text is required")
	ErrNoSubmission    = errors.New("no submission found")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
)

// Enroll registers the user into a course and initializes its progress
// record. The init call is fire-and-forget: the gateway creates the record
// lazily anyway, so a failure here is logged and the enrollment stands.
func (s *ProgressService) Enroll(ctx context.Context, user models.User, courseID int) (*models.Enrollment, error) {
	e, err := s.gw.Enroll(ctx, user.ID, courseID)
	if err != nil {
		return nil, err
	}

	err = s.gw.InitProgress(ctx, gateway.InitProgressRequest{
		UserID:       user.ID,
		CourseID:     courseID,
		EnrollmentID: e.ID,
		Status:       models.TaskStatusInProgress,
	})
	if err != nil {
		s.log.Printf("enroll: init progress for course %d: %v", courseID, err)
	}
	return e, nil
}

// MarkCourseCompleted sets an existing progress record to 100%/completed.
// With no record id yet it falls back to creating the initial record for
// the user's enrollment in that course.
func (s *ProgressService) MarkCourseCompleted(ctx context.Context, user models.User, courseID, progressID int) error {
	if progressID == 0 {
		enrollments, err := s.gw.ListEnrollments(ctx, user.ID, "")
		if err != nil {
			return err
		}
		for _, e := range enrollments {
			if e.CourseID == courseID {
				return s.gw.InitProgress(ctx, gateway.InitProgressRequest{
					UserID:       user.ID,
					CourseID:     courseID,
					EnrollmentID: e.ID,
					Status:       models.TaskStatusInProgress,
				})
			}
		}
		return nil
	}

	now := s.now()
	return s.gw.UpdateProgress(ctx, progressID, gateway.UpdateProgressRequest{
		CompletionPercentage: 100,
		Status:               models.TaskStatusCompleted,
		CompletedAt:          &now,
	})
}

// CompleteTask marks a task done for the user. The gateway moves the
// user_status; the client re-fetches views afterwards instead of updating
// locally.
func (s *ProgressService) CompleteTask(ctx context.Context, user models.User, taskID int) error {
	return s.gw.CompleteTask(ctx, taskID, user.ID)
}

// SubmitTask posts a submission. Text is required and checked here, before
// any network call; file URL and name are optional. Enforcing
// one-submission-per-task is the gateway's job.
func (s *ProgressService) SubmitTask(ctx context.Context, user models.User, taskID, courseID int, text, fileURL, fileName string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptySubmission
	}
	return s.gw.CreateSubmission(ctx, gateway.CreateSubmissionRequest{
		UserID:             user.ID,
		TaskID:             taskID,
		CourseID:           courseID,
		SubmissionText:     text,
		SubmissionFileURL:  fileURL,
		SubmissionFileName: fileName,
	})
}

// LoadSubmission fetches a task and the user's submission for it together
// and joins them for display.
func (s *ProgressService) LoadSubmission(ctx context.Context, user models.User, taskID int) (*views.SubmissionView, error) {
	var (
		task *models.Task
		sub  *models.Submission
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := s.gw.GetTask(gctx, taskID)
		if err != nil {
			return err
		}
		task = t
		return nil
	})
	g.Go(func() error {
		got, err := s.gw.GetSubmission(gctx, user.ID, taskID)
		if err != nil {
			if gateway.IsTransport(err) {
				return err
			}
			return nil
		}
		sub = got
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if sub == nil {
		return nil, ErrNoSubmission
	}
	return &views.SubmissionView{Task: *task, Submission: *sub}, nil
}

// SubmitReview posts a course review after validating the rating range.
func (s *CatalogService) SubmitReview(ctx context.Context, user models.User, courseID, rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	return s.gw.CreateReview(ctx, gateway.CreateReviewRequest{
		UserID:   user.ID,
		CourseID: courseID,
		Rating:   rating,
		Comment:  comment,
	})
}
