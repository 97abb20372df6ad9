package gateway

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestStatusErrorExtractsMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid credentials"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, discard())
	_, err := c.Login(context.Background(), "ana", "wrong")
	assert.Error(t, err)

	se, ok := AsStatus(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, se.Code)
	assert.Equal(t, "Invalid credentials", UserMessage(err, "Login failed"))
}

func TestStatusErrorMessageField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"already enrolled"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, discard())
	_, err := c.Enroll(context.Background(), 1, 2)
	assert.Equal(t, "already enrolled", UserMessage(err, "Enrollment failed"))
}

func TestStatusErrorFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, discard())
	_, err := c.ListCourses(context.Background())
	assert.Equal(t, "Failed to load courses", UserMessage(err, "Failed to load courses"))
}

func TestUnreachableGateway(t *testing.T) {
	c := New("http://127.0.0.1:1", discard())
	_, err := c.Me(context.Background(), "tok")
	assert.True(t, errors.Is(err, ErrUnreachable))
	assert.True(t, IsTransport(err))
	assert.Equal(t, "Tidak bisa connect ke server. Pastikan API Gateway running!", UserMessage(err, ""))
}

func TestTimeoutClassified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	c := New(srv.URL, discard())
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := c.Me(ctx, "tok")
	assert.True(t, errors.Is(err, ErrTimeout))
	assert.True(t, IsTransport(err))
	assert.Equal(t, "Request timeout. Pastikan semua services running!", UserMessage(err, ""))
}

func TestSubmissionLookupTimesOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{"submission":{"id":41,"task_id":21}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, discard())
	c.submissionTimeout = 30 * time.Millisecond

	// no caller deadline: the lookup's own bound has to fire
	_, err := c.GetSubmission(context.Background(), 1, 21)
	assert.True(t, errors.Is(err, ErrTimeout))
	assert.True(t, IsTransport(err))
}

func TestMalformedPayloadIsNotFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>surprise</html>"))
	}))
	defer srv.Close()

	c := New(srv.URL, discard())
	courses, err := c.ListCourses(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, courses)
}

func TestBearerInjection(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{"id":1,"username":"ana"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, discard())
	user, err := c.Me(context.Background(), "tok123")
	assert.NoError(t, err)
	assert.Equal(t, "Bearer tok123", got)
	assert.Equal(t, "ana", user.Username)
}
