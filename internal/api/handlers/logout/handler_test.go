package logout

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-ReceptionistDashboard/pkg/logger"
)

type fakeSessionService struct {
	err       error
	loggedOut []string
}

func (f *fakeSessionService) Logout(_ context.Context, sessionID string) error {
	f.loggedOut = append(f.loggedOut, sessionID)
	return f.err
}

type fakeBoards struct {
	forgotten []string
}

func (f *fakeBoards) Forget(sessionID string) {
	f.forgotten = append(f.forgotten, sessionID)
}

var testCookie = handlers.SessionCookie{Name: "dash_session", TTL: time.Hour}

func logout(h *Handler, sessionID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: testCookie.Name, Value: sessionID})
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func assertLoggedOut(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, testCookie.Name, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestHandle_ClearsSessionBoardAndCookie(t *testing.T) {
	svc := &fakeSessionService{}
	boards := &fakeBoards{}
	rec := logout(NewHandler(svc, boards, testCookie, logger.NewNop()), "sid-1")

	assertLoggedOut(t, rec)
	assert.Equal(t, []string{"sid-1"}, svc.loggedOut)
	assert.Equal(t, []string{"sid-1"}, boards.forgotten)
}

func TestHandle_StoreFailureStillClearsCookie(t *testing.T) {
	svc := &fakeSessionService{err: errors.New("redis down")}
	boards := &fakeBoards{}
	rec := logout(NewHandler(svc, boards, testCookie, logger.NewNop()), "sid-1")

	assertLoggedOut(t, rec)
	assert.Equal(t, []string{"sid-1"}, boards.forgotten)
}

func TestHandle_WithoutCookie(t *testing.T) {
	svc := &fakeSessionService{}
	boards := &fakeBoards{}
	rec := logout(NewHandler(svc, boards, testCookie, logger.NewNop()), "")

	assertLoggedOut(t, rec)
	assert.Empty(t, boards.forgotten)
}
