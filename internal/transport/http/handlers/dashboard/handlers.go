package dashboardhandler

import (
	"bytes"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tripboard/internal/domain/paging"
	"tripboard/internal/domain/trips"
	"tripboard/internal/requestctx"
	"tripboard/internal/transport/http/shared"
	"tripboard/internal/transport/http/view"
)

// Service is the part of trips.Service the HTML pages read from.
type Service interface {
	TripTable(ctx context.Context, state paging.State, windowSize int) (trips.TripTable, error)
	MoneySpentByYear(ctx context.Context) ([]trips.Point, error)
	TripCountByYear(ctx context.Context) ([]trips.Point, error)
	EmployeeOverview(ctx context.Context, employeeID int64, state paging.State, windowSize int) (trips.EmployeeOverview, error)
}

type Handler struct {
	Service        Service
	Renderer       view.Renderer
	Pages          shared.PageConfig
	ChartScriptURL string
}

func NewHandler(svc Service, renderer view.Renderer, pages shared.PageConfig, chartScriptURL string) *Handler {
	return &Handler{Service: svc, Renderer: renderer, Pages: pages, ChartScriptURL: chartScriptURL}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleTrips)
	r.Get("/employees/{employeeID}", h.handleEmployee)
}

func (h *Handler) handleTrips(w http.ResponseWriter, r *http.Request) {
	v := shared.NewValidator()
	state := shared.ParsePage(r, v, h.Pages.Size, h.Pages.MaxSize)
	if v.HasIssues() {
		h.renderError(w, r, http.StatusBadRequest, v.Summary())
		return
	}

	ctx := r.Context()
	table, err := h.Service.TripTable(ctx, state, h.Pages.Window)
	if err != nil {
		h.fail(w, r, err, "trips page failed")
		return
	}
	moneyByYear, err := h.Service.MoneySpentByYear(ctx)
	if err != nil {
		h.fail(w, r, err, "money by year failed")
		return
	}
	tripsByYear, err := h.Service.TripCountByYear(ctx)
	if err != nil {
		h.fail(w, r, err, "trips by year failed")
		return
	}

	page := view.NewTripsPage(h.base(r, ""), table, moneyByYear, tripsByYear)
	h.render(w, r, http.StatusOK, func(buf *bytes.Buffer) error {
		return h.Renderer.Trips(buf, page)
	})
}

func (h *Handler) handleEmployee(w http.ResponseWriter, r *http.Request) {
	v := shared.NewValidator()
	employeeID := shared.ParseID(v, "employeeID", chi.URLParam(r, "employeeID"))
	state := shared.ParsePage(r, v, h.Pages.Size, h.Pages.MaxSize)
	if v.HasIssues() {
		h.renderError(w, r, http.StatusBadRequest, v.Summary())
		return
	}

	overview, err := h.Service.EmployeeOverview(r.Context(), employeeID, state, h.Pages.Window)
	if err != nil {
		h.fail(w, r, err, "employee page failed")
		return
	}

	page := view.NewEmployeePage(h.base(r, ""), overview)
	h.render(w, r, http.StatusOK, func(buf *bytes.Buffer) error {
		return h.Renderer.Employee(buf, page)
	})
}

func (h *Handler) base(r *http.Request, title string) view.BaseVM {
	return view.BaseVM{
		Title:          title,
		ChartScriptURL: h.ChartScriptURL,
		RequestID:      requestctx.GetRequestID(r.Context()),
	}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status, _, message := shared.ErrorStatus(err)
	if status >= http.StatusInternalServerError {
		requestctx.Logger(r.Context()).Error(msg, "err", err)
	}
	h.renderError(w, r, status, message)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	page := view.ErrorPage{
		BaseVM:  h.base(r, http.StatusText(status)),
		Status:  status,
		Message: message,
	}
	h.render(w, r, status, func(buf *bytes.Buffer) error {
		return h.Renderer.Error(buf, page)
	})
}

// render buffers the page so a template failure can still become a clean 500.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, fn func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		requestctx.Logger(r.Context()).Error("render page failed", "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
