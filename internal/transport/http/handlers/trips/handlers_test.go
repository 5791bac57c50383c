package tripshandler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"tripboard/internal/domain/paging"
	"tripboard/internal/domain/trips"
	"tripboard/internal/transport/http/shared"
)

type fakeService struct {
	rows      []trips.TripRow
	employees []trips.Employee
	stat      trips.EmployeeStat
	series    []trips.Point
	err       error
	gotState  paging.State
	gotWindow int
	gotEmpID  int64
}

func (f *fakeService) TripTable(_ context.Context, state paging.State, windowSize int) (trips.TripTable, error) {
	f.gotState, f.gotWindow = state, windowSize
	if f.err != nil {
		return trips.TripTable{}, f.err
	}
	state.TotalItems = len(f.rows)
	state, err := state.Clamp()
	if err != nil {
		return trips.TripTable{}, err
	}
	window, err := paging.Compute(state, windowSize)
	if err != nil {
		return trips.TripTable{}, err
	}
	return trips.TripTable{Rows: paging.Slice(f.rows, state), State: state, Window: window}, nil
}

func (f *fakeService) MoneySpentByYear(context.Context) ([]trips.Point, error) {
	return f.series, f.err
}

func (f *fakeService) TripCountByYear(context.Context) ([]trips.Point, error) {
	return f.series, f.err
}

func (f *fakeService) EmployeeTripCountByYear(_ context.Context, id int64) ([]trips.Point, error) {
	f.gotEmpID = id
	return f.series, f.err
}

func (f *fakeService) EmployeeStat(_ context.Context, id int64) (trips.EmployeeStat, error) {
	f.gotEmpID = id
	return f.stat, f.err
}

func (f *fakeService) Employees(context.Context) ([]trips.Employee, error) {
	return f.employees, f.err
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func newRouter(svc Service) http.Handler {
	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		NewHandler(svc, shared.PageConfig{Size: 5, MaxSize: 20, Window: 10}).RegisterRoutes(r)
	})
	return r
}

func doGet(t *testing.T, h http.Handler, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func sampleRows(n int) []trips.TripRow {
	rows := make([]trips.TripRow, n)
	for i := range rows {
		rows[i] = trips.TripRow{EmployeeID: int64(i + 1), Name: "E", Destination: "Kazan", Date: "01.01.2024", Duration: 2, MoneySpent: 100}
	}
	return rows
}

func TestListTrips(t *testing.T) {
	svc := &fakeService{rows: sampleRows(12)}
	rec, env := doGet(t, newRouter(svc), "/api/v1/trips?page=3")

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)
	var body tripsResponse
	require.NoError(t, json.Unmarshal(env.Data, &body))
	require.Len(t, body.Rows, 2)
	require.Equal(t, 3, body.Window.CurrentPage)
	require.Equal(t, 3, body.Window.TotalPages)
	require.Equal(t, 10, svc.gotWindow)
}

func TestListTripsClampsAndCapsPageSize(t *testing.T) {
	svc := &fakeService{rows: sampleRows(50)}
	_, env := doGet(t, newRouter(svc), "/api/v1/trips?page=99&pageSize=500")

	require.Equal(t, 20, svc.gotState.PageSize)
	var body tripsResponse
	require.NoError(t, json.Unmarshal(env.Data, &body))
	require.Equal(t, 3, body.Window.CurrentPage)
	require.Len(t, body.Rows, 10)
}

func TestListTripsRejectsMalformedPage(t *testing.T) {
	rec, env := doGet(t, newRouter(&fakeService{}), "/api/v1/trips?page=abc")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "validation_error", env.Error.Code)
}

func TestListTripsStoreFailure(t *testing.T) {
	rec, env := doGet(t, newRouter(&fakeService{err: errors.New("db down")}), "/api/v1/trips")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "internal_error", env.Error.Code)
}

func TestStatsSeries(t *testing.T) {
	svc := &fakeService{series: []trips.Point{{X: 2022, Y: 3}, {X: 2023, Y: 5}}}
	for _, target := range []string{"/api/v1/stats/money-by-year", "/api/v1/stats/trips-by-year"} {
		rec, env := doGet(t, newRouter(svc), target)
		require.Equal(t, http.StatusOK, rec.Code, target)
		require.JSONEq(t, `[{"x":2022,"y":3},{"x":2023,"y":5}]`, string(env.Data))
	}
}

func TestListEmployees(t *testing.T) {
	svc := &fakeService{employees: []trips.Employee{
		{ID: 1, Name: "Anna", Trips: []trips.EmployeeTrip{{MoneySpent: 10}}},
		{ID: 2, Name: "Boris"},
	}}
	rec, env := doGet(t, newRouter(svc), "/api/v1/employees")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[{"id":1,"name":"Anna"},{"id":2,"name":"Boris"}]`, string(env.Data))
}

func TestEmployeeStats(t *testing.T) {
	svc := &fakeService{stat: trips.EmployeeStat{Name: "Anna", TripCount: 4, MoneySpent: 1200, AvgTripCount: 2, AvgMoneySpent: 600}}
	rec, env := doGet(t, newRouter(svc), "/api/v1/employees/7/stats")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, int64(7), svc.gotEmpID)
	require.JSONEq(t, `{"name":"Anna","tripCount":4,"moneySpent":1200,"avgTripCount":2,"avgMoneySpent":600}`, string(env.Data))
}

func TestEmployeeErrors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "bad id", target: "/api/v1/employees/abc/stats", wantStatus: http.StatusBadRequest, wantCode: "validation_error"},
		{name: "zero id", target: "/api/v1/employees/0/trips-by-year", wantStatus: http.StatusBadRequest, wantCode: "validation_error"},
		{name: "unknown employee", target: "/api/v1/employees/99/stats", err: trips.ErrEmployeeNotFound, wantStatus: http.StatusNotFound, wantCode: "not_found"},
		{name: "unknown employee series", target: "/api/v1/employees/99/trips-by-year", err: trips.ErrEmployeeNotFound, wantStatus: http.StatusNotFound, wantCode: "not_found"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			rec, env := doGet(t, newRouter(&fakeService{err: tc.err}), tc.target)
			require.Equal(t, tc.wantStatus, rec.Code)
			require.NotNil(t, env.Error)
			require.Equal(t, tc.wantCode, env.Error.Code)
		})
	}
}
