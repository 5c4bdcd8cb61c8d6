package dashboard

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/domain"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/service/dashboard"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/service/session"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/web"
	"github.com/m04kA/SMC-ReceptionistDashboard/pkg/logger"
)

type fakeDashboardService struct {
	stats dashboard.Stats
	err   error
	token string
}

func (f *fakeDashboardService) Stats(_ context.Context, token string) (dashboard.Stats, error) {
	f.token = token
	return f.stats, f.err
}

func serve(t *testing.T, svc DashboardService) *httptest.ResponseRecorder {
	t.Helper()
	renderer, err := web.NewRenderer(time.UTC)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	sess := &session.Session{ID: "sid", Token: "tok", User: domain.User{ID: "u1", Name: "Ana"}}
	req = req.WithContext(session.WithSession(req.Context(), sess))

	rec := httptest.NewRecorder()
	NewHandler(svc, renderer, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_RendersStats(t *testing.T) {
	svc := &fakeDashboardService{stats: dashboard.Stats{
		BusinessName:           "Ana Salon",
		BusinessType:           "salon",
		Plan:                   domain.PlanFree,
		UpcomingBookings:       4,
		ActiveServices:         6,
		StaffCount:             2,
		ConversationsThisMonth: 32,
		ConversationLimit:      50,
		UsagePercent:           64,
		WhatsappConnected:      true,
		Loaded:                 true,
	}}
	rec := serve(t, svc)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tok", svc.token)
	body := rec.Body.String()
	assert.Contains(t, body, "Welcome back, Ana!")
	assert.Contains(t, body, "Ana Salon")
	assert.Contains(t, body, "Conversations 32 / 50")
	assert.Contains(t, body, "Connected")
	assert.NotContains(t, body, "Not Connected")
	assert.Contains(t, body, "Upgrade to Pro")
}

func TestHandle_FailureRendersZeroStats(t *testing.T) {
	svc := &fakeDashboardService{
		stats: dashboard.Stats{ConversationLimit: domain.DefaultConversationLimit},
		err:   errors.New("business unavailable"),
	}
	rec := serve(t, svc)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Welcome back, Ana!")
	assert.Contains(t, body, "Conversations 0 / 50")
	assert.Contains(t, body, "Not Connected")
	assert.NotContains(t, body, "Upgrade to Pro")
}

func TestHandle_NoSession(t *testing.T) {
	renderer, err := web.NewRenderer(time.UTC)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	NewHandler(&fakeDashboardService{}, renderer, logger.NewNop()).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
