package exportshandler

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"tripboard/internal/domain/paging"
	"tripboard/internal/domain/trips"
	"tripboard/internal/platform/charts"
	"tripboard/internal/platform/metrics"
	"tripboard/internal/transport/http/middleware"
	"tripboard/internal/transport/http/shared"
)

const (
	kindPNG = "png"
	kindPDF = "pdf"
)

type Service interface {
	MoneySpentByYear(ctx context.Context) ([]trips.Point, error)
	TripCountByYear(ctx context.Context) ([]trips.Point, error)
	EmployeeTripCountByYear(ctx context.Context, employeeID int64) ([]trips.Point, error)
	EmployeeOverview(ctx context.Context, employeeID int64, state paging.State, windowSize int) (trips.EmployeeOverview, error)
}

type Handler struct {
	Service Service
	Metrics *metrics.Collector
}

func NewHandler(svc Service, collector *metrics.Collector) *Handler {
	return &Handler{Service: svc, Metrics: collector}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/charts/money-by-year.png", h.handleMoneyChart)
	r.Get("/charts/trips-by-year.png", h.handleTripsChart)
	r.Get("/employees/{employeeID}/chart.png", h.handleEmployeeChart)
	r.Get("/employees/{employeeID}/report.pdf", h.handleEmployeeReport)
}

func (h *Handler) handleMoneyChart(w http.ResponseWriter, r *http.Request) {
	points, err := h.Service.MoneySpentByYear(r.Context())
	if err != nil {
		shared.FailService(w, r, err, "money chart failed")
		return
	}
	h.writeChart(w, r, charts.LineChart{
		Title:  "Money spent per year",
		XLabel: "Year",
		YLabel: "Money spent",
		Points: chartPoints(points),
	})
}

func (h *Handler) handleTripsChart(w http.ResponseWriter, r *http.Request) {
	points, err := h.Service.TripCountByYear(r.Context())
	if err != nil {
		shared.FailService(w, r, err, "trips chart failed")
		return
	}
	h.writeChart(w, r, charts.LineChart{
		Title:        "Trips per year",
		XLabel:       "Year",
		YLabel:       "Trips",
		Points:       chartPoints(points),
		IntegerTicks: true,
	})
}

func (h *Handler) handleEmployeeChart(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeID(w, r)
	if !ok {
		return
	}
	points, err := h.Service.EmployeeTripCountByYear(r.Context(), employeeID)
	if err != nil {
		shared.FailService(w, r, err, "employee chart failed")
		return
	}
	h.writeChart(w, r, charts.LineChart{
		Title:        "Trips per year",
		XLabel:       "Year",
		YLabel:       "Trips",
		Points:       chartPoints(points),
		IntegerTicks: true,
	})
}

func (h *Handler) handleEmployeeReport(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeID(w, r)
	if !ok {
		return
	}
	// The report lists yearly totals only, so a single page of trips is enough.
	overview, err := h.Service.EmployeeOverview(r.Context(), employeeID, paging.NewState(0, 1), paging.DefaultWindow)
	if err != nil {
		shared.FailService(w, r, err, "employee report failed")
		return
	}

	var buf bytes.Buffer
	if err := trips.WriteEmployeeReportPDF(&buf, overview); err != nil {
		shared.FailService(w, r, err, "render pdf failed")
		return
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="employee-%d.pdf"`, employeeID))
	h.write(w, kindPDF, "application/pdf", &buf)
}

func (h *Handler) writeChart(w http.ResponseWriter, r *http.Request, chart charts.LineChart) {
	var buf bytes.Buffer
	if err := chart.WritePNG(&buf); err != nil {
		shared.FailService(w, r, err, "render chart failed")
		return
	}
	h.write(w, kindPNG, "image/png", &buf)
}

func (h *Handler) write(w http.ResponseWriter, kind, contentType string, buf *bytes.Buffer) {
	h.Metrics.RecordExport(kind)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func chartPoints(points []trips.Point) []charts.Point {
	out := make([]charts.Point, 0, len(points))
	for _, p := range points {
		out = append(out, charts.Point{X: float64(p.X), Y: float64(p.Y)})
	}
	return out
}

func employeeID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	v := shared.NewValidator()
	id := shared.ParseID(v, "employeeID", chi.URLParam(r, "employeeID"))
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return 0, false
	}
	return id, true
}
