package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/fun2learn/fun2learn-web/internal/config"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	cfg := config.Config{
		BackendBaseURL: baseURL,
		BackendTimeout: 2 * time.Second,
		MaxUploadBytes: 1 << 20,
	}
	return New(cfg, zerolog.Nop())
}

func TestClientSuccessEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/course/courses", r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","courses":[{"id":"c1","name":"Algebra"}]}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	courses, err := client.Courses(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, courses, 1)
	require.Equal(t, "Algebra", courses[0].Name)
}

func TestClientAcceptsCapitalisedSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"Success","tags":[]}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.Tags(context.Background(), "tok")
	require.NoError(t, err)
}

func TestClientDomainFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"error","message":"Course name already taken"}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.CreateCourse(context.Background(), "tok", "Algebra", "")
	require.Error(t, err)

	var backendErr *Error
	require.ErrorAs(t, err, &backendErr)
	require.Equal(t, "Course name already taken", backendErr.Message)
	require.Equal(t, http.StatusOK, backendErr.StatusCode)
}

func TestClientHTTPErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Course not found"}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.CourseDetail(context.Background(), "tok", "missing")
	require.Error(t, err)

	var backendErr *Error
	require.ErrorAs(t, err, &backendErr)
	require.Equal(t, "Course not found", backendErr.Message)
	require.Equal(t, http.StatusNotFound, backendErr.StatusCode)
}

func TestClientHTTPErrorFallsBackToOperationMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.Courses(context.Background(), "tok")
	require.Error(t, err)

	var backendErr *Error
	require.ErrorAs(t, err, &backendErr)
	require.Equal(t, "Failed to fetch courses", backendErr.Message)
}

func TestClientTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.Courses(context.Background(), "tok")
	require.Error(t, err)

	var backendErr *Error
	require.ErrorAs(t, err, &backendErr)
	require.Equal(t, "Failed to fetch courses", backendErr.Message)
	require.Equal(t, 0, backendErr.StatusCode)
}

func TestClientMessageOf(t *testing.T) {
	require.Equal(t, "boom", MessageOf(&Error{Message: "boom"}, "fallback"))
	require.Equal(t, "fallback", MessageOf(context.Canceled, "fallback"))
	require.Equal(t, "fallback", MessageOf(nil, "fallback"))
}

func TestClientMeWithoutEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/user/me", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"u1","email":"a@b.co","full_name":"Ada","role":"student"}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	user, err := client.Me(context.Background(), "tok")
	require.NoError(t, err)
	require.Equal(t, "Ada", user.FullName)
	require.Equal(t, "student", user.Role)
}
