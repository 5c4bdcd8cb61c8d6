package register

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/domain"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/service/session"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/web"
	"github.com/m04kA/SMC-ReceptionistDashboard/pkg/logger"
)

type fakeSessionService struct {
	sess      *session.Session
	err       error
	got       session.RegisterInput
	loggedOut []string
}

func (f *fakeSessionService) Register(_ context.Context, in session.RegisterInput) (*session.Session, error) {
	f.got = in
	return f.sess, f.err
}

func (f *fakeSessionService) Logout(_ context.Context, sessionID string) error {
	f.loggedOut = append(f.loggedOut, sessionID)
	return nil
}

type fakeBoards struct {
	forgotten []string
}

func (f *fakeBoards) Forget(sessionID string) {
	f.forgotten = append(f.forgotten, sessionID)
}

type fakeRenderer struct {
	status int
	data   web.Page
}

func (f *fakeRenderer) Render(w http.ResponseWriter, status int, _ string, data web.Page) error {
	f.status, f.data = status, data
	w.WriteHeader(status)
	return nil
}

func submit(h *Handler, values url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.Submit(rec, req)
	return rec
}

var cookie = handlers.SessionCookie{Name: "dash_session", TTL: time.Hour}

func TestSubmit_Success(t *testing.T) {
	svc := &fakeSessionService{sess: &session.Session{ID: "sid", User: domain.User{ID: "u1"}}}
	rec := submit(NewHandler(svc, &fakeBoards{}, &fakeRenderer{}, cookie, logger.NewNop()), url.Values{
		"name": {"Ana"}, "email": {"ana@example.com"}, "password": {"pw"},
		"businessName": {"Ana Salon"}, "businessType": {"gym"},
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
	assert.Equal(t, "gym", svc.got.BusinessType)
	assert.Equal(t, "Ana Salon", svc.got.BusinessName)
}

func TestSubmit_EndsPreviousSession(t *testing.T) {
	svc := &fakeSessionService{sess: &session.Session{ID: "sid-new", User: domain.User{ID: "u1"}}}
	boards := &fakeBoards{}
	rec := submit(NewHandler(svc, boards, &fakeRenderer{}, cookie, logger.NewNop()), url.Values{
		"name": {"Ana"}, "email": {"ana@example.com"}, "password": {"pw"}, "businessName": {"Ana Salon"},
	}, &http.Cookie{Name: cookie.Name, Value: "sid-old"})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, []string{"sid-old"}, svc.loggedOut)
	assert.Equal(t, []string{"sid-old"}, boards.forgotten)
}

func TestSubmit_FailureKeepsValuesWithoutPassword(t *testing.T) {
	svc := &fakeSessionService{err: errors.Join(session.ErrAuthFailed, errors.New("timeout"))}
	r := &fakeRenderer{}
	submit(NewHandler(svc, &fakeBoards{}, r, cookie, logger.NewNop()), url.Values{
		"name": {"Ana"}, "email": {"ana@example.com"}, "password": {"pw"},
		"businessName": {"Ana Salon"}, "businessType": {"spaceship"},
	})

	assert.Equal(t, msgRegisterFailed, r.data.Error)
	data := r.data.Data.(PageData)
	assert.Equal(t, "Ana", data.Name)
	assert.Equal(t, domain.BusinessTypes[0].Value, data.BusinessType)
	assert.Len(t, data.BusinessTypes, len(domain.BusinessTypes))
}

func TestSubmit_MissingFields(t *testing.T) {
	svc := &fakeSessionService{err: session.ErrInvalidInput}
	r := &fakeRenderer{}
	submit(NewHandler(svc, &fakeBoards{}, r, cookie, logger.NewNop()), url.Values{"email": {"ana@example.com"}})

	assert.Equal(t, http.StatusBadRequest, r.status)
	assert.Equal(t, msgFillRequired, r.data.Error)
}
