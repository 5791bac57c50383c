package tripshandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tripboard/internal/domain/paging"
	"tripboard/internal/domain/trips"
	"tripboard/internal/transport/http/api"
	"tripboard/internal/transport/http/middleware"
	"tripboard/internal/transport/http/shared"
)

// Service is the part of trips.Service the JSON API reads from.
type Service interface {
	TripTable(ctx context.Context, state paging.State, windowSize int) (trips.TripTable, error)
	MoneySpentByYear(ctx context.Context) ([]trips.Point, error)
	TripCountByYear(ctx context.Context) ([]trips.Point, error)
	EmployeeTripCountByYear(ctx context.Context, employeeID int64) ([]trips.Point, error)
	EmployeeStat(ctx context.Context, employeeID int64) (trips.EmployeeStat, error)
	Employees(ctx context.Context) ([]trips.Employee, error)
}

type Handler struct {
	Service Service
	Pages   shared.PageConfig
}

func NewHandler(svc Service, pages shared.PageConfig) *Handler {
	return &Handler{Service: svc, Pages: pages}
}

type tripsResponse struct {
	Rows   []trips.TripRow `json:"rows"`
	Window paging.Window   `json:"window"`
}

type employeeItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/trips", h.handleListTrips)
	r.Route("/stats", func(r chi.Router) {
		r.Get("/money-by-year", h.handleMoneyByYear)
		r.Get("/trips-by-year", h.handleTripsByYear)
	})
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleListEmployees)
		r.Get("/{employeeID}/stats", h.handleEmployeeStats)
		r.Get("/{employeeID}/trips-by-year", h.handleEmployeeTripsByYear)
	})
}

func (h *Handler) handleListTrips(w http.ResponseWriter, r *http.Request) {
	v := shared.NewValidator()
	state := shared.ParsePage(r, v, h.Pages.Size, h.Pages.MaxSize)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	table, err := h.Service.TripTable(r.Context(), state, h.Pages.Window)
	if err != nil {
		shared.FailService(w, r, err, "list trips failed")
		return
	}
	api.Success(w, tripsResponse{Rows: table.Rows, Window: table.Window}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleMoneyByYear(w http.ResponseWriter, r *http.Request) {
	points, err := h.Service.MoneySpentByYear(r.Context())
	if err != nil {
		shared.FailService(w, r, err, "money by year failed")
		return
	}
	api.Success(w, points, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleTripsByYear(w http.ResponseWriter, r *http.Request) {
	points, err := h.Service.TripCountByYear(r.Context())
	if err != nil {
		shared.FailService(w, r, err, "trips by year failed")
		return
	}
	api.Success(w, points, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.Employees(r.Context())
	if err != nil {
		shared.FailService(w, r, err, "list employees failed")
		return
	}
	items := make([]employeeItem, 0, len(employees))
	for _, e := range employees {
		items = append(items, employeeItem{ID: e.ID, Name: e.Name})
	}
	api.Success(w, items, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleEmployeeStats(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := h.employeeID(w, r)
	if !ok {
		return
	}
	stat, err := h.Service.EmployeeStat(r.Context(), employeeID)
	if err != nil {
		shared.FailService(w, r, err, "employee stats failed")
		return
	}
	api.Success(w, stat, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleEmployeeTripsByYear(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := h.employeeID(w, r)
	if !ok {
		return
	}
	points, err := h.Service.EmployeeTripCountByYear(r.Context(), employeeID)
	if err != nil {
		shared.FailService(w, r, err, "employee trips by year failed")
		return
	}
	api.Success(w, points, middleware.GetRequestID(r.Context()))
}

func (h *Handler) employeeID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	v := shared.NewValidator()
	id := shared.ParseID(v, "employeeID", chi.URLParam(r, "employeeID"))
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return 0, false
	}
	return id, true
}
