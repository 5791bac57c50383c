package view

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"

	"tripboard/internal/domain/paging"
	"tripboard/internal/domain/trips"
)

// Renderer turns page view models into HTML. Handlers depend on this
// interface only.
type Renderer interface {
	Trips(w io.Writer, page TripsPage) error
	Employee(w io.Writer, page EmployeePage) error
	Error(w io.Writer, page ErrorPage) error
}

// BaseVM carries the fields every page layout reads.
type BaseVM struct {
	Title          string
	ChartScriptURL string
	RequestID      string
}

type TripsPage struct {
	BaseVM

	Rows        []trips.TripRow
	Window      paging.Window
	Controls    []PageLink
	MoneyByYear []trips.Point
	TripsByYear []trips.Point
}

type EmployeePage struct {
	BaseVM

	EmployeeID  int64
	Stat        trips.EmployeeStat
	TripsByYear []trips.Point
	Rows        []trips.TripRow
	Window      paging.Window
	Controls    []PageLink
}

type ErrorPage struct {
	BaseVM

	Status  int
	Message string
}

func (p ErrorPage) StatusText() string {
	return http.StatusText(p.Status)
}

// NewTripsPage builds the view model of the trips index from one table page
// and the two company-wide series.
func NewTripsPage(base BaseVM, table trips.TripTable, moneyByYear, tripsByYear []trips.Point) TripsPage {
	if base.Title == "" {
		base.Title = "All trips"
	}
	return TripsPage{
		BaseVM:      base,
		Rows:        table.Rows,
		Window:      table.Window,
		Controls:    Controls(table.Window, "/"),
		MoneyByYear: nonNil(moneyByYear),
		TripsByYear: nonNil(tripsByYear),
	}
}

func NewEmployeePage(base BaseVM, overview trips.EmployeeOverview) EmployeePage {
	if base.Title == "" {
		base.Title = overview.Stat.Name
	}
	return EmployeePage{
		BaseVM:      base,
		EmployeeID:  overview.EmployeeID,
		Stat:        overview.Stat,
		TripsByYear: nonNil(overview.TripsByYear),
		Rows:        overview.Trips.Rows,
		Window:      overview.Trips.Window,
		Controls:    Controls(overview.Trips.Window, fmt.Sprintf("/employees/%d", overview.EmployeeID)),
	}
}

func nonNil(points []trips.Point) []trips.Point {
	if points == nil {
		return []trips.Point{}
	}
	return points
}

// Templates is the html/template Renderer. Each page is parsed into its own
// clone of the layout so the pages can all define "content".
type Templates struct {
	pages map[string]*template.Template
}

const (
	tripsTemplate    = "trips"
	employeeTemplate = "employee"
	errorTemplate    = "error"
)

// New parses templates/layout.html, templates/partials/*.html and one file
// per page from assets.
func New(assets fs.FS) (*Templates, error) {
	base, err := template.New("base").ParseFS(assets, "templates/layout.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	pages := make(map[string]*template.Template, 3)
	for _, name := range []string{tripsTemplate, employeeTemplate, errorTemplate} {
		clone, err := base.Clone()
		if err != nil {
			return nil, err
		}
		page, err := clone.ParseFS(assets, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s page: %w", name, err)
		}
		pages[name] = page
	}
	return &Templates{pages: pages}, nil
}

func (t *Templates) Trips(w io.Writer, page TripsPage) error {
	return t.render(w, tripsTemplate, page)
}

func (t *Templates) Employee(w io.Writer, page EmployeePage) error {
	return t.render(w, employeeTemplate, page)
}

func (t *Templates) Error(w io.Writer, page ErrorPage) error {
	return t.render(w, errorTemplate, page)
}

// render executes into a buffer first so a template error never leaves a
// half written page.
func (t *Templates) render(w io.Writer, name string, data any) error {
	tmpl, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
