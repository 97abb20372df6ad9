package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"eduport/gateway"
	"eduport/models"
	"eduport/views"
)

// ErrCourseNotFound aborts the course detail view: everything else on that
// view can degrade, the course record itself cannot.
var ErrCourseNotFound = errors.New("course not found")

// ProgressService builds the enrollment, progress and course detail views
// by fanning out to the gateway and merging by id.
type ProgressService struct {
	gw  *gateway.Client
	log *log.Logger
	now func() time.Time
}

func NewProgressService(gw *gateway.Client, logger *log.Logger) *ProgressService {
	return &ProgressService{gw: gw, log: logger, now: time.Now}
}

// LoadMyCourses fetches the user's active enrollments, then every enrolled
// course concurrently. Completion order is arbitrary; the join runs on the
// course id coming back in each response, never on slice position. An empty
// enrollment set returns an empty (non-nil) slice so the caller can render
// the distinct empty state.
func (s *ProgressService) LoadMyCourses(ctx context.Context, user models.User) ([]views.EnrolledCourse, error) {
	enrollments, err := s.gw.ListEnrollments(ctx, user.ID, "active")
	if err != nil {
		return nil, err
	}
	if len(enrollments) == 0 {
		return []views.EnrolledCourse{}, nil
	}

	var mu sync.Mutex
	byID := make(map[int]models.Course, len(enrollments))

	g, gctx := errgroup.WithContext(ctx)
	for _, e := range enrollments {
		courseID := e.CourseID
		g.Go(func() error {
			c, err := s.gw.GetCourse(gctx, courseID)
			if err != nil {
				return err
			}
			mu.Lock()
			byID[c.ID] = *c
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]views.EnrolledCourse, 0, len(enrollments))
	for _, e := range enrollments {
		if c, ok := byID[e.CourseID]; ok {
			out = append(out, views.EnrolledCourse{Course: c, Enrollment: e})
		}
	}
	return out, nil
}

// LoadProgress builds the aggregate progress view: per active enrollment a
// 3-way concurrent fetch of progress, tasks and course, enrollments
// themselves processed concurrently. This is the all-or-drop side of the
// join asymmetry: a transport failure on any leg, or a missing course,
// removes that enrollment's entry from the result entirely. Only an HTTP
// rejection on progress or tasks degrades to defaults. The course detail
// view (LoadCourseProgress) deliberately does the opposite.
func (s *ProgressService) LoadProgress(ctx context.Context, user models.User) ([]views.CourseProgressCard, error) {
	enrollments, err := s.gw.ListEnrollments(ctx, user.ID, "active")
	if err != nil {
		return nil, err
	}

	cards := collectOrDrop(ctx, enrollments, func(ctx context.Context, e models.Enrollment) (views.CourseProgressCard, error) {
		return s.loadEnrollmentEntry(ctx, user, e)
	})
	return cards, nil
}

func (s *ProgressService) loadEnrollmentEntry(ctx context.Context, user models.User, e models.Enrollment) (views.CourseProgressCard, error) {
	var (
		progress *models.Progress
		tasks    []models.Task
		course   *models.Course
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.gw.GetProgress(gctx, user.ID, e.CourseID)
		if err != nil {
			if gateway.IsTransport(err) {
				return err
			}
			s.log.Printf("progress: no progress record for course %d: %v", e.CourseID, err)
			progress = models.DefaultProgress(user.ID, e.CourseID)
			return nil
		}
		progress = p
		return nil
	})
	g.Go(func() error {
		ts, err := s.gw.ListUserTasks(gctx, user.ID, e.CourseID)
		if err != nil {
			if gateway.IsTransport(err) {
				return err
			}
			s.log.Printf("progress: tasks for course %d: %v", e.CourseID, err)
			return nil
		}
		tasks = ts
		return nil
	})
	g.Go(func() error {
		c, err := s.gw.GetCourse(gctx, e.CourseID)
		if err != nil {
			return err
		}
		course = c
		return nil
	})
	if err := g.Wait(); err != nil {
		s.log.Printf("progress: dropping course %d: %v", e.CourseID, err)
		return views.CourseProgressCard{}, err
	}

	taskViews := s.attachSubmissions(ctx, user.ID, tasks)
	return views.NewCourseProgressCard(*course, e, *progress, taskViews), nil
}

// LoadCourseProgress builds the course/progress modal with a 4-way
// concurrent fetch. Progress, tasks and modules each degrade independently
// to empty defaults on any failure; a missing course aborts the whole view.
// A second pass then attaches per-task submissions.
func (s *ProgressService) LoadCourseProgress(ctx context.Context, user models.User, courseID int) (*views.CourseDetail, error) {
	var (
		progress  *models.Progress
		tasks     []models.Task
		modules   []models.Module
		course    *models.Course
		courseErr error
	)

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		p, err := s.gw.GetProgress(ctx, user.ID, courseID)
		if err != nil {
			s.log.Printf("detail: progress for course %d: %v", courseID, err)
			return
		}
		progress = p
	}()
	go func() {
		defer wg.Done()
		ts, err := s.gw.ListUserTasks(ctx, user.ID, courseID)
		if err != nil {
			s.log.Printf("detail: tasks for course %d: %v", courseID, err)
			return
		}
		tasks = ts
	}()
	go func() {
		defer wg.Done()
		ms, err := s.gw.ListModules(ctx, courseID)
		if err != nil {
			s.log.Printf("detail: modules for course %d: %v", courseID, err)
			return
		}
		modules = ms
	}()
	go func() {
		defer wg.Done()
		course, courseErr = s.gw.GetCourse(ctx, courseID)
	}()
	wg.Wait()

	if course == nil {
		return nil, fmt.Errorf("%w: course %d: %v", ErrCourseNotFound, courseID, courseErr)
	}

	if progress == nil {
		progress = models.DefaultProgress(user.ID, courseID)
	}
	if modules == nil {
		modules = []models.Module{}
	}

	return &views.CourseDetail{
		Course:   *course,
		Progress: *progress,
		Modules:  modules,
		Tasks:    s.attachSubmissions(ctx, user.ID, tasks),
	}, nil
}

// attachSubmissions is the per-slot-default join over a task batch: every
// task gets exactly one TaskView, and a submission lookup that errors or
// times out degrades that one task to "no submission".
func (s *ProgressService) attachSubmissions(ctx context.Context, userID int, tasks []models.Task) []views.TaskView {
	now := s.now()
	return collectWithDefault(ctx, tasks,
		func(ctx context.Context, t models.Task) (views.TaskView, error) {
			sub, err := s.gw.GetSubmission(ctx, userID, t.ID)
			if err != nil {
				return views.TaskView{}, err
			}
			return views.NewTaskView(t, sub, now), nil
		},
		func(t models.Task) views.TaskView {
			return views.NewTaskView(t, nil, now)
		},
		func(t models.Task, err error) {
			s.log.Printf("progress: submission for task %d: %v", t.ID, err)
		},
	)
}
