package platform

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type enrollmentCall struct {
	Method string
	Body   map[string]uint
}

type enrollmentServer struct {
	mu               sync.Mutex
	enrollmentStatus int
	enrollments      string
	toggleStatus     int
	calls            []enrollmentCall
}

func (s *enrollmentServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/api/courses":
		w.Write([]byte(`{"courses":[{"id":1,"name":"Algebra"},{"id":2,"title":"Biology"},{"id":3,"name":"Chemistry"}]}`))
	case r.URL.Path == "/api/enrollments/user/9":
		w.WriteHeader(s.enrollmentStatus)
		w.Write([]byte(s.enrollments))
	case r.URL.Path == "/api/enrollments" || r.URL.Path == "/api/enrollments/remove":
		var body map[string]uint
		json.NewDecoder(r.Body).Decode(&body)
		s.mu.Lock()
		s.calls = append(s.calls, enrollmentCall{Method: r.Method, Body: body})
		s.mu.Unlock()
		w.WriteHeader(s.toggleStatus)
		w.Write([]byte(`{"message":"nope"}`))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func TestLoadEnrollmentPanel_IntersectsWithCatalog(t *testing.T) {
	fake := &enrollmentServer{
		enrollmentStatus: http.StatusOK,
		enrollments:      `{"enrollments":[{"id":1,"user_id":9,"course_id":2},{"id":2,"user_id":9,"course_id":44}]}`,
	}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	panel, err := newTestClient(t, srv).LoadEnrollmentPanel(context.Background(), testAuth, 9)

	require.NoError(t, err)
	assert.Len(t, panel.Courses, 3)
	assert.Equal(t, "Biology", panel.Courses[1].Name)
	assert.Equal(t, []uint{2}, panel.EnrolledIDs())
	assert.False(t, panel.IsEnrolled(44))

	rows := panel.Rows()
	assert.True(t, rows[1].Enrolled)
	assert.False(t, rows[0].Enrolled)
}

func TestLoadEnrollmentPanel_FailedEnrollmentFetchIsEmpty(t *testing.T) {
	fake := &enrollmentServer{enrollmentStatus: http.StatusInternalServerError, enrollments: `{}`}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	panel, err := newTestClient(t, srv).LoadEnrollmentPanel(context.Background(), testAuth, 9)

	require.NoError(t, err)
	assert.Len(t, panel.Courses, 3)
	assert.Empty(t, panel.EnrolledIDs())
}

func TestLoadEnrollmentPanelForToggle_FailedEnrollmentFetch(t *testing.T) {
	fake := &enrollmentServer{enrollmentStatus: http.StatusInternalServerError, enrollments: `{"message":"down"}`}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	panel, err := newTestClient(t, srv).LoadEnrollmentPanelForToggle(context.Background(), testAuth, 9)

	require.Error(t, err)
	assert.Nil(t, panel)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Empty(t, fake.calls)
}

func TestToggle_EnrollsAndRemoves(t *testing.T) {
	fake := &enrollmentServer{
		enrollmentStatus: http.StatusOK,
		enrollments:      `{"enrollments":[{"course_id":1}]}`,
		toggleStatus:     http.StatusOK,
	}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	panel, err := newTestClient(t, srv).LoadEnrollmentPanel(context.Background(), testAuth, 9)
	require.NoError(t, err)

	msg, err := panel.Toggle(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, `Removed from "Algebra"`, msg)
	assert.False(t, panel.IsEnrolled(1))

	msg, err = panel.Toggle(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, `Enrolled in "Chemistry"!`, msg)
	assert.True(t, panel.IsEnrolled(3))

	require.Len(t, fake.calls, 2)
	assert.Equal(t, http.MethodDelete, fake.calls[0].Method)
	assert.Equal(t, map[string]uint{"user_id": 9, "course_id": 1}, fake.calls[0].Body)
	assert.Equal(t, http.MethodPost, fake.calls[1].Method)
	assert.Equal(t, map[string]uint{"user_id": 9, "course_id": 3}, fake.calls[1].Body)
}

func TestToggle_RejectedLeavesStateUnchanged(t *testing.T) {
	fake := &enrollmentServer{
		enrollmentStatus: http.StatusOK,
		enrollments:      `{"enrollments":[{"course_id":1}]}`,
		toggleStatus:     http.StatusBadRequest,
	}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	panel, err := newTestClient(t, srv).LoadEnrollmentPanel(context.Background(), testAuth, 9)
	require.NoError(t, err)

	_, err = panel.Toggle(context.Background(), 1)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "nope", apiErr.Message)
	assert.True(t, panel.IsEnrolled(1))

	_, err = panel.Toggle(context.Background(), 2)
	require.Error(t, err)
	assert.False(t, panel.IsEnrolled(2))
}
