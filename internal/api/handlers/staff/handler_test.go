package staff

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/domain"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/integrations/receptionistapi"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/service/catalog"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/service/session"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/web"
	"github.com/m04kA/SMC-ReceptionistDashboard/pkg/logger"
)

type fakeWorkflow struct {
	items []domain.Staff
	saved []receptionistapi.StaffInput
}

func (f *fakeWorkflow) List(context.Context, string) ([]domain.Staff, error) {
	return f.items, nil
}

func (f *fakeWorkflow) Find(items []domain.Staff, id string) (domain.Staff, error) {
	for _, s := range items {
		if s.ID == id {
			return s, nil
		}
	}
	return domain.Staff{}, catalog.ErrNotFound
}

func (f *fakeWorkflow) Save(_ context.Context, _ string, _ string, form catalog.Form[receptionistapi.StaffInput]) error {
	in, err := form.Input()
	if err != nil {
		return err
	}
	if in.Name == "" {
		return catalog.ErrInvalidInput
	}
	f.saved = append(f.saved, in)
	return nil
}

func (f *fakeWorkflow) Delete(context.Context, string, string, bool) error {
	return nil
}

type fakeRenderer struct {
	status int
	page   string
	data   web.Page
}

func (f *fakeRenderer) Render(w http.ResponseWriter, status int, page string, data web.Page) error {
	f.status, f.page, f.data = status, page, data
	w.WriteHeader(status)
	return nil
}

func serve(h *Handler, method, target string, form url.Values) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/staff", h.List).Methods(http.MethodGet)
	router.HandleFunc("/staff", h.Save).Methods(http.MethodPost)
	router.HandleFunc("/staff/{id}/delete", h.ConfirmDelete).Methods(http.MethodGet)

	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = req.WithContext(session.WithSession(req.Context(), &session.Session{ID: "sid", Token: "tok"}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSave_ReadsContactFields(t *testing.T) {
	wf := &fakeWorkflow{}
	rec := serve(NewHandler(wf, &fakeRenderer{}, logger.NewNop()), http.MethodPost, "/staff", url.Values{
		"name": {" Maria "}, "email": {"maria@example.com"}, "phone": {"+1555"},
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/staff", rec.Header().Get("Location"))
	require.Len(t, wf.saved, 1)
	assert.Equal(t, receptionistapi.StaffInput{Name: "Maria", Email: "maria@example.com", Phone: "+1555"}, wf.saved[0])
}

func TestSave_MissingName(t *testing.T) {
	r := &fakeRenderer{}
	serve(NewHandler(&fakeWorkflow{}, r, logger.NewNop()), http.MethodPost, "/staff", url.Values{"email": {"x@y.z"}})

	assert.Equal(t, http.StatusBadRequest, r.status)
	assert.Equal(t, web.PageStaff, r.page)
	assert.Equal(t, msgFillRequired, r.data.Error)
	assert.Equal(t, "x@y.z", r.data.Data.(PageData).Form.Email)
}

func TestConfirmDelete_StaffMember(t *testing.T) {
	wf := &fakeWorkflow{items: []domain.Staff{{ID: "st 1", Name: "Maria"}}}
	r := &fakeRenderer{}
	serve(NewHandler(wf, r, logger.NewNop()), http.MethodGet, "/staff/st%201/delete", url.Values{})

	data := r.data.Data.(ConfirmDeleteData)
	assert.Equal(t, "staff member", data.Kind)
	assert.Equal(t, "Maria", data.Name)
	assert.Equal(t, "/staff/st%201/delete", data.Action)
}
