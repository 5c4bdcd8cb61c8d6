package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/domain"
	sessionStore "github.com/m04kA/SMC-ReceptionistDashboard/internal/infra/storage/session"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/integrations/receptionistapi"
	"github.com/m04kA/SMC-ReceptionistDashboard/pkg/logger"
)

type fakeAuthClient struct {
	loginCalls  int
	registerReq receptionistapi.RegisterRequest
	resp        *receptionistapi.AuthResponse
	err         error
}

func (f *fakeAuthClient) Login(_ context.Context, _ receptionistapi.LoginRequest) (*receptionistapi.AuthResponse, error) {
	f.loginCalls++
	return f.resp, f.err
}

func (f *fakeAuthClient) Register(_ context.Context, req receptionistapi.RegisterRequest) (*receptionistapi.AuthResponse, error) {
	f.registerReq = req
	return f.resp, f.err
}

func newTestService(client *fakeAuthClient) (*Service, *sessionStore.MemoryStore) {
	store := sessionStore.NewMemoryStore(time.Hour)
	svc := NewService(client, store, logger.NewNop())
	svc.newID = func() string { return "sid-1" }
	return svc, store
}

func okResponse() *receptionistapi.AuthResponse {
	return &receptionistapi.AuthResponse{
		Token: "jwt",
		User:  domain.User{ID: "u1", Name: "Olga", Email: "owner@salon.com"},
	}
}

func TestService_LoginThenResolve(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(&fakeAuthClient{resp: okResponse()})

	sess, err := svc.Login(ctx, LoginInput{Email: "owner@salon.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "sid-1", sess.ID)

	resolved, err := svc.Resolve(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, "jwt", resolved.Token)
	assert.Equal(t, "Olga", resolved.User.Name)
}

func TestService_LoginRequiresFields(t *testing.T) {
	client := &fakeAuthClient{resp: okResponse()}
	svc, _ := newTestService(client)

	_, err := svc.Login(context.Background(), LoginInput{Email: "owner@salon.com"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, client.loginCalls)
}

func TestService_LoginRejectedKeepsServerMessage(t *testing.T) {
	client := &fakeAuthClient{err: &receptionistapi.APIError{StatusCode: 401, Message: "Invalid credentials"}}
	svc, store := newTestService(client)

	_, err := svc.Login(context.Background(), LoginInput{Email: "a@b.c", Password: "x"})
	assert.ErrorIs(t, err, ErrAuthFailed)
	assert.Equal(t, "Invalid credentials", receptionistapi.ServerMessage(err))

	_, err = store.Get(context.Background(), "sid-1", sessionStore.SlotToken)
	assert.ErrorIs(t, err, sessionStore.ErrSlotNotFound)
}

func TestService_RegisterDefaultsBusinessType(t *testing.T) {
	client := &fakeAuthClient{resp: okResponse()}
	svc, _ := newTestService(client)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "Olga", Email: "o@s.com", Password: "x", BusinessName: "Glow",
	})
	require.NoError(t, err)
	assert.Equal(t, "salon", client.registerReq.BusinessType)
	assert.Equal(t, "Glow", client.registerReq.BusinessName)
}

func TestService_ResolveMissingSlots(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(&fakeAuthClient{})

	_, err := svc.Resolve(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = svc.Resolve(ctx, "sid-1")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	require.NoError(t, store.Set(ctx, "sid-1", sessionStore.SlotToken, "jwt"))
	_, err = svc.Resolve(ctx, "sid-1")
	assert.ErrorIs(t, err, ErrUnauthenticated, "token without profile is not a session")
}

func TestService_ResolveMalformedProfileFailsClosed(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(&fakeAuthClient{})

	require.NoError(t, store.Set(ctx, "sid-1", sessionStore.SlotToken, "jwt"))
	require.NoError(t, store.Set(ctx, "sid-1", sessionStore.SlotUser, "{not json"))

	_, err := svc.Resolve(ctx, "sid-1")
	assert.ErrorIs(t, err, ErrMalformedProfile)

	_, err = store.Get(ctx, "sid-1", sessionStore.SlotToken)
	assert.ErrorIs(t, err, sessionStore.ErrSlotNotFound)
}

func TestService_Logout(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(&fakeAuthClient{resp: okResponse()})

	_, err := svc.Login(ctx, LoginInput{Email: "a@b.c", Password: "x"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, "sid-1"))
	_, err = svc.Resolve(ctx, "sid-1")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	ctx := WithSession(context.Background(), &Session{ID: "sid"})
	sess, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "sid", sess.ID)
}
