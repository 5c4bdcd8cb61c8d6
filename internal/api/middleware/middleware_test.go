package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/domain"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/service/session"
	"github.com/m04kA/SMC-ReceptionistDashboard/pkg/logger"
	"github.com/m04kA/SMC-ReceptionistDashboard/pkg/metrics"
)

type fakeResolver struct {
	sessions map[string]*session.Session
	err      error
}

func (f *fakeResolver) Resolve(_ context.Context, id string) (*session.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	if s, ok := f.sessions[id]; ok {
		return s, nil
	}
	return nil, session.ErrUnauthenticated
}

type fakeBoards struct {
	forgotten []string
}

func (f *fakeBoards) Forget(sessionID string) {
	f.forgotten = append(f.forgotten, sessionID)
}

var testCookie = handlers.SessionCookie{Name: "sid", TTL: time.Hour}

func guarded(resolver SessionResolver, called *bool) http.Handler {
	return guardedWith(resolver, &fakeBoards{}, called)
}

func guardedWith(resolver SessionResolver, boards BoardRegistry, called *bool) http.Handler {
	return SessionGuard(resolver, boards, testCookie, logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		sess, ok := session.FromContext(r.Context())
		if ok {
			_, _ = w.Write([]byte(sess.User.Name))
		}
	}))
}

func TestSessionGuard_NoCookieRedirects(t *testing.T) {
	var called bool
	h := guarded(&fakeResolver{}, &called)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.False(t, called)
}

func TestSessionGuard_ValidSession(t *testing.T) {
	var called bool
	resolver := &fakeResolver{sessions: map[string]*session.Session{
		"abc": {ID: "abc", Token: "jwt", User: domain.User{Name: "Olga"}},
	}}
	h := guarded(resolver, &called)

	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "abc"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Olga", rec.Body.String())
}

func TestSessionGuard_MalformedProfileClearsCookie(t *testing.T) {
	var called bool
	h := guarded(&fakeResolver{err: session.ErrMalformedProfile}, &called)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "abc"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sid", cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestSessionGuard_DeadSessionForgetsBoard(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{name: "expired", err: session.ErrUnauthenticated, want: []string{"abc"}},
		{name: "malformed profile", err: session.ErrMalformedProfile, want: []string{"abc"}},
		{name: "store failure", err: errors.New("redis down"), want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			boards := &fakeBoards{}
			h := guardedWith(&fakeResolver{err: tt.err}, boards, &called)

			req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
			req.AddCookie(&http.Cookie{Name: "sid", Value: "abc"})
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.False(t, called)
			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, tt.want, boards.forgotten)
		})
	}
}

func TestSessionGuard_NoCookieForgetsNothing(t *testing.T) {
	var called bool
	boards := &fakeBoards{}
	h := guardedWith(&fakeResolver{}, boards, &called)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bookings", nil))
	assert.Empty(t, boards.forgotten)
}

func TestSessionGuard_StoreFailureFailsClosed(t *testing.T) {
	var called bool
	h := guarded(&fakeResolver{err: errors.New("redis down")}, &called)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(1, 2, false, logger.NewNop())
	h := limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = ip + ":5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2"))
}

func TestRateLimiter_SpoofedForwardedForDoesNotBypass(t *testing.T) {
	limiter := NewRateLimiter(1, 1, false, logger.NewNop())
	h := limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)
}

func TestRateLimiter_SweepEvictsIdle(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(10, 5, false, logger.NewNop())
	limiter.now = func() time.Time { return now }

	for i := 0; i < 100; i++ {
		limiter.limiter(fmt.Sprintf("10.0.0.%d", i))
	}
	now = now.Add(time.Hour)
	limiter.limiter("10.0.0.1")

	assert.Equal(t, 99, limiter.Sweep(30*time.Minute))
	assert.Len(t, limiter.visitors, 1)
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.10:4321"
	assert.Equal(t, "192.168.1.10", clientIP(req, false))

	req.Header.Set("X-Forwarded-For", "203.0.113.5, 10.0.0.1")
	assert.Equal(t, "192.168.1.10", clientIP(req, false))
	assert.Equal(t, "203.0.113.5", clientIP(req, true))
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := metrics.New("test", prometheus.NewRegistry())

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/bookings/{id}/{action}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusSeeOther)
	}).Methods(http.MethodPost)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/bookings/b1/confirm", nil))

	assert.Equal(t, float64(1), testutil.ToFloat64(
		m.HTTPRequestsTotal.WithLabelValues(http.MethodPost, "/bookings/{id}/{action}", "303")))
}

func TestCSRF_EmptyKeyPassesThrough(t *testing.T) {
	var called bool
	h := CSRF("", false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/services", nil))
	assert.True(t, called)
}

func TestCSRF_RejectsPostWithoutToken(t *testing.T) {
	var called bool
	h := CSRF("0123456789abcdef0123456789abcdef", false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/services", nil))
	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
