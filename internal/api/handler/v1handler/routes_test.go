package v1handler_test

import (
	"encoding/json"
	"errors"
	"filplus/internal/api/handler/v1handler"
	"filplus/internal/application"
	"filplus/internal/commandbus"
	"filplus/pkg/domain"
	"filplus/pkg/serrors"
	"filplus/pkg/storage"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mockcommandbus "filplus/internal/commandbus/mock"
	mockstorage "filplus/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testAPI struct {
	dispatcher *mockcommandbus.MockDispatcher
	queries    *mockstorage.MockAllStorage
	router     http.Handler
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	ctrl := gomock.NewController(t)
	api := &testAPI{
		dispatcher: mockcommandbus.NewMockDispatcher(ctrl),
		queries:    mockstorage.NewMockAllStorage(ctrl),
	}
	api.router = v1handler.New(v1handler.Deps{
		Dispatcher: api.dispatcher,
		Queries:    api.queries,
	}, v1handler.Options{DefaultLimit: 10, MaxLimit: 50}).Routes()

	return api
}

func (a *testAPI) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) v1handler.ErrorResponse {
	t.Helper()

	var res v1handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))

	return res
}

func TestListApplications(t *testing.T) {
	api := newTestAPI(t)

	api.queries.EXPECT().ApplicationDetailsPage(gomock.Any(), 2, 50, "acme").
		Return(storage.Page[domain.ApplicationDetails]{
			Results:    []domain.ApplicationDetails{{ID: "a1", Name: "Acme", Datacap: 5}},
			Pagination: storage.NewPagination(2, 50, 51),
		}, nil)

	rec := api.do(http.MethodGet, "/applications?page=2&limit=500&search=acme", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var page storage.Page[domain.ApplicationDetails]
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&page))
	require.Len(t, page.Results, 1)
	require.Equal(t, domain.ApplicationID("a1"), page.Results[0].ID)
	require.Equal(t, 2, page.Pagination.TotalPages)
}

func TestListApplications_Defaults(t *testing.T) {
	api := newTestAPI(t)

	api.queries.EXPECT().ApplicationDetailsPage(gomock.Any(), 1, 10, "").
		Return(storage.Page[domain.ApplicationDetails]{}, nil)

	rec := api.do(http.MethodGet, "/applications", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestListApplications_InvalidPage(t *testing.T) {
	api := newTestAPI(t)

	for _, q := range []string{"page=0", "page=x", "limit=-1"} {
		rec := api.do(http.MethodGet, "/applications?"+q, "")
		require.Equal(t, http.StatusBadRequest, rec.Code, q)
		require.Equal(t, "BAD_REQUEST", decodeError(t, rec).Code)
	}
}

func TestGetApplication(t *testing.T) {
	api := newTestAPI(t)

	api.queries.EXPECT().ApplicationDetailsByID(gomock.Any(), domain.ApplicationID("a1")).
		Return(&domain.ApplicationDetails{ID: "a1", Name: "Acme"}, nil)
	api.queries.EXPECT().ApplicationDetailsByID(gomock.Any(), domain.ApplicationID("missing")).
		Return(nil, nil)
	api.queries.EXPECT().ApplicationDetailsByID(gomock.Any(), domain.ApplicationID("broken")).
		Return(nil, errors.New("connection refused"))

	rec := api.do(http.MethodGet, "/applications/a1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var details domain.ApplicationDetails
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&details))
	require.Equal(t, "Acme", details.Name)

	rec = api.do(http.MethodGet, "/applications/missing", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "application missing not found", decodeError(t, rec).Message)

	rec = api.do(http.MethodGet, "/applications/broken", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "internal error", decodeError(t, rec).Message)
}

func TestCreateApplication(t *testing.T) {
	api := newTestAPI(t)

	api.dispatcher.EXPECT().Dispatch(gomock.Any(), application.CreateApplication{
		Name:        "Acme",
		Address:     "f1abc",
		IssueNumber: 7,
	}).Return(&domain.Application{ID: "generated", Name: "Acme", Status: domain.ApplicationStatusKYC}, nil)

	rec := api.do(http.MethodPost, "/applications", `{"name":"Acme","address":"f1abc","issueNumber":7}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var app domain.Application
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&app))
	require.Equal(t, domain.ApplicationID("generated"), app.ID)
	require.Equal(t, domain.ApplicationStatusKYC, app.Status)
}

func TestCreateApplication_InvalidBody(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/applications", `{"name":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "invalid request body", decodeError(t, rec).Message)

	rec = api.do(http.MethodPost, "/applications", `{"unknown":true}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodPost, "/applications", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "request body is required", decodeError(t, rec).Message)
}

func TestTransitionApplication_Conflict(t *testing.T) {
	api := newTestAPI(t)

	api.dispatcher.EXPECT().Dispatch(gomock.Any(), application.TransitionApplication{
		ApplicationID: "a1",
		Status:        domain.ApplicationStatusKYC,
	}).Return(nil, &commandbus.HandlerError{
		CommandType: application.TransitionApplicationType,
		Err:         serrors.With(serrors.ErrConflict, "application a1 cannot move from GOVERNANCE_REVIEW_PHASE to KYC_PHASE"),
	})

	rec := api.do(http.MethodPost, "/applications/a1/status", `{"status":"KYC_PHASE"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "CONFLICT", decodeError(t, rec).Code)
}

func TestLinkPullRequest(t *testing.T) {
	api := newTestAPI(t)

	api.dispatcher.EXPECT().Dispatch(gomock.Any(), application.LinkPullRequest{
		ApplicationID: "a1",
		Number:        42,
		URL:           "https://github.com/o/r/pull/42",
	}).Return(&domain.Application{ID: "a1", PullRequestNumber: 42}, nil)

	rec := api.do(http.MethodPost, "/applications/a1/pull-request",
		`{"number":42,"url":"https://github.com/o/r/pull/42"}`)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRefreshApplication(t *testing.T) {
	api := newTestAPI(t)

	api.dispatcher.EXPECT().Dispatch(gomock.Any(), application.RequestRefresh{ApplicationID: "a1"}).
		Return(application.RefreshRequest{ApplicationID: "a1", Enqueued: true}, nil)

	rec := api.do(http.MethodPost, "/applications/a1/refresh", "")
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.JSONEq(t, `{"applicationId":"a1","enqueued":true}`, rec.Body.String())
}

func TestGetAllocator(t *testing.T) {
	api := newTestAPI(t)

	api.dispatcher.EXPECT().Dispatch(gomock.Any(), application.FetchAllocator{JSONNumber: "rec123"}).
		Return(&domain.AllocatorFile{Name: "X"}, nil)
	api.dispatcher.EXPECT().Dispatch(gomock.Any(), application.FetchAllocator{JSONNumber: "nope"}).
		Return(nil, &commandbus.HandlerError{
			CommandType: application.FetchAllocatorType,
			Err: serrors.Opaque(application.ErrAllocatorNotFound, serrors.KindOnly(serrors.ErrNotFound),
				"The Allocator could not be found for the given JSON number or hash: %s", "nope"),
		})

	rec := api.do(http.MethodGet, "/allocators/rec123", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(http.MethodGet, "/allocators/nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	res := decodeError(t, rec)
	require.Equal(t, "ALLOCATOR_NOT_FOUND", res.Code)
	require.Equal(t, "The Allocator could not be found for the given JSON number or hash: nope", res.Message)
}

func TestIssues(t *testing.T) {
	api := newTestAPI(t)

	api.queries.EXPECT().IssueDetailsPage(gomock.Any(), 1, 10, "f1").
		Return(storage.Page[domain.IssueDetails]{
			Results: []domain.IssueDetails{{GithubIssueID: 1001, GithubIssueNumber: 7}},
		}, nil)
	api.dispatcher.EXPECT().Dispatch(gomock.Any(), application.SyncIssues{}).
		Return(storage.BulkResult{Inserted: 2, Updated: 1}, nil)

	rec := api.do(http.MethodGet, "/issues?search=f1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(http.MethodPost, "/issues/sync", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"inserted":2,"updated":1}`, rec.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/nothing", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "NOT_FOUND", decodeError(t, rec).Code)

	rec = api.do(http.MethodDelete, "/applications", "")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
