package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduport/gateway"
	"eduport/models"
)

// progressBackend fakes the gateway for the enrollment and progress views.
// Paths listed in drop get their connection severed mid-request, which is
// how a dead downstream service looks to the client. Paths in reject get a
// plain HTTP error instead.
type progressBackend struct {
	mu     sync.Mutex
	drop   map[string]bool
	reject map[string]int
	hits   map[string]int
}

func newProgressBackend() *progressBackend {
	return &progressBackend{
		drop:   make(map[string]bool),
		reject: make(map[string]int),
		hits:   make(map[string]int),
	}
}

func (b *progressBackend) server(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	handle := func(pattern string, body func(r *http.Request) string) {
		mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
			b.mu.Lock()
			b.hits[r.URL.Path]++
			dead := b.drop[r.URL.Path]
			code := b.reject[r.URL.Path]
			b.mu.Unlock()

			if dead {
				conn, _, err := w.(http.Hijacker).Hijack()
				require.NoError(t, err)
				conn.Close()
				return
			}
			if code != 0 {
				w.WriteHeader(code)
				w.Write([]byte(`{"error":"nope"}`))
				return
			}
			w.Write([]byte(body(r)))
		})
	}

	handle("/api/enrollments", func(r *http.Request) string {
		return `[
			{"id":11,"user_id":1,"course_id":1,"status":"active"},
			{"id":12,"user_id":1,"course_id":2,"status":"active"}
		]`
	})
	handle("/api/courses/", func(r *http.Request) string {
		var id int
		fmt.Sscanf(r.URL.Path, "/api/courses/%d", &id)
		return fmt.Sprintf(`{"id":%d,"title":"Course %d","category":"programming","price":10}`, id, id)
	})
	handle("/api/progress/user/", func(r *http.Request) string {
		return `{"id":5,"user_id":1,"course_id":1,"overall_completion":40,"status":"in_progress"}`
	})
	handle("/api/tasks/user/", func(r *http.Request) string {
		return `{"tasks":[
			{"id":21,"course_id":1,"title":"Essay","user_status":"completed"},
			{"id":22,"course_id":1,"title":"Quiz","user_status":"pending"}
		]}`
	})
	handle("/api/modules", func(r *http.Request) string {
		return `[{"id":31,"course_id":1,"title":"Intro"}]`
	})
	handle("/api/submissions/user/", func(r *http.Request) string {
		var userID, taskID int
		fmt.Sscanf(r.URL.Path, "/api/submissions/user/%d/task/%d", &userID, &taskID)
		if taskID != 21 {
			return `{"submission":null}`
		}
		return `{"submission":{"id":41,"user_id":1,"task_id":21,"submission_text":"done"}}`
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newProgressService(t *testing.T, b *progressBackend) *ProgressService {
	t.Helper()
	return NewProgressService(gateway.New(b.server(t).URL, discard()), discard())
}

var testUser = models.User{ID: 1, Username: "ana"}

func TestLoadMyCoursesJoinsByID(t *testing.T) {
	svc := newProgressService(t, newProgressBackend())

	courses, err := svc.LoadMyCourses(context.Background(), testUser)
	require.NoError(t, err)
	require.Len(t, courses, 2)

	// enrollment order is preserved even though fetches race
	assert.Equal(t, 1, courses[0].Course.ID)
	assert.Equal(t, 11, courses[0].Enrollment.ID)
	assert.Equal(t, 2, courses[1].Course.ID)
}

func TestLoadMyCoursesEmptyEnrollments(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/enrollments", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	svc := NewProgressService(gateway.New(srv.URL, discard()), discard())
	courses, err := svc.LoadMyCourses(context.Background(), testUser)
	require.NoError(t, err)
	assert.NotNil(t, courses)
	assert.Empty(t, courses)
}

func TestLoadMyCoursesCourseFetchFailureIsFatal(t *testing.T) {
	b := newProgressBackend()
	b.drop["/api/courses/2"] = true
	svc := newProgressService(t, b)

	_, err := svc.LoadMyCourses(context.Background(), testUser)
	assert.Error(t, err)
}

func TestLoadProgressDropsEntryOnTransportFailure(t *testing.T) {
	b := newProgressBackend()
	// course 2's task fetch dies at the transport level: that whole
	// enrollment disappears from the view, course 1 is untouched
	b.drop["/api/tasks/user/1/course/2"] = true
	svc := newProgressService(t, b)

	cards, err := svc.LoadProgress(context.Background(), testUser)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, 1, cards[0].Course.ID)
}

func TestLoadProgressDefaultsOnRejection(t *testing.T) {
	b := newProgressBackend()
	// an HTTP 404 on the progress record is "no record yet", not a failure
	b.reject["/api/progress/user/1/course/2"] = http.StatusNotFound
	svc := newProgressService(t, b)

	cards, err := svc.LoadProgress(context.Background(), testUser)
	require.NoError(t, err)
	require.Len(t, cards, 2)

	assert.Equal(t, models.TaskStatusNotStarted, cards[1].Progress.Status)
	assert.Zero(t, cards[1].Progress.OverallCompletion)
}

func TestLoadProgressMissingCourseDropsEntry(t *testing.T) {
	b := newProgressBackend()
	b.reject["/api/courses/2"] = http.StatusNotFound
	svc := newProgressService(t, b)

	cards, err := svc.LoadProgress(context.Background(), testUser)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, 1, cards[0].Course.ID)
}

func TestLoadProgressCountsCompletedTasks(t *testing.T) {
	svc := newProgressService(t, newProgressBackend())

	cards, err := svc.LoadProgress(context.Background(), testUser)
	require.NoError(t, err)
	require.Len(t, cards, 2)

	assert.Equal(t, 2, cards[0].TotalTasks)
	assert.Equal(t, 1, cards[0].CompletedTasks)

	// the submission overlay is orthogonal to the status chain
	assert.True(t, cards[0].Tasks[0].Submitted)
	assert.False(t, cards[0].Tasks[1].Submitted)
}

func TestLoadCourseProgressDegradesPerLeg(t *testing.T) {
	b := newProgressBackend()
	// the same task-fetch failure that drops the enrollment in the
	// aggregate view only empties the task list here
	b.drop["/api/tasks/user/1/course/1"] = true
	b.reject["/api/progress/user/1/course/1"] = http.StatusNotFound
	svc := newProgressService(t, b)

	detail, err := svc.LoadCourseProgress(context.Background(), testUser, 1)
	require.NoError(t, err)

	assert.Equal(t, "Course 1", detail.Course.Title)
	assert.Empty(t, detail.Tasks)
	assert.Len(t, detail.Modules, 1)
	assert.Equal(t, models.TaskStatusNotStarted, detail.Progress.Status)
}

func TestLoadCourseProgressMissingCourseAborts(t *testing.T) {
	b := newProgressBackend()
	b.reject["/api/courses/1"] = http.StatusNotFound
	svc := newProgressService(t, b)

	_, err := svc.LoadCourseProgress(context.Background(), testUser, 1)
	assert.True(t, errors.Is(err, ErrCourseNotFound))
}

func TestLoadCourseProgressSubmissionFailureDegradesOneTask(t *testing.T) {
	b := newProgressBackend()
	b.drop["/api/submissions/user/1/task/21"] = true
	svc := newProgressService(t, b)

	detail, err := svc.LoadCourseProgress(context.Background(), testUser, 1)
	require.NoError(t, err)
	require.Len(t, detail.Tasks, 2)

	// the failed lookup renders that one task without a submission
	assert.Equal(t, 21, detail.Tasks[0].Task.ID)
	assert.False(t, detail.Tasks[0].Submitted)
	// its status still comes through the normal chain
	assert.Equal(t, models.TaskStatusCompleted, detail.Tasks[0].Status)
}

func TestSubmitTaskRejectsEmptyTextBeforeNetwork(t *testing.T) {
	b := newProgressBackend()
	svc := newProgressService(t, b)

	err := svc.SubmitTask(context.Background(), testUser, 21, 1, "   \n\t", "", "")
	assert.True(t, errors.Is(err, ErrEmptySubmission))
	assert.Zero(t, b.hits["/api/submissions"])
}

func TestLoadSubmissionNoSubmission(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/tasks/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":22,"title":"Quiz"}`))
	})
	mux.HandleFunc("/api/submissions/user/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"not found"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	svc := NewProgressService(gateway.New(srv.URL, discard()), discard())
	_, err := svc.LoadSubmission(context.Background(), testUser, 22)
	assert.True(t, errors.Is(err, ErrNoSubmission))
}

func TestSubmitReviewValidatesRating(t *testing.T) {
	svc := NewCatalogService(gateway.New("http://127.0.0.1:1", discard()), discard())
	assert.True(t, errors.Is(svc.SubmitReview(context.Background(), testUser, 1, 0, "x"), ErrInvalidRating))
	assert.True(t, errors.Is(svc.SubmitReview(context.Background(), testUser, 1, 6, "x"), ErrInvalidRating))
}
