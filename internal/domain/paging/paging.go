package paging

import (
	"errors"
	"fmt"
	"math"
)

// DefaultWindow is the number of page buttons shown at once.
const DefaultWindow = 10

var ErrInvalidArgument = errors.New("invalid argument")

// State is the pagination state of one view. It is a value: navigation
// returns a new State instead of mutating a shared one.
type State struct {
	TotalItems  int `json:"totalItems"`
	PageSize    int `json:"pageSize"`
	CurrentPage int `json:"currentPage"`
}

// Window describes which page controls a view should render.
type Window struct {
	StartPage            int  `json:"startPage"`
	EndPage              int  `json:"endPage"`
	CurrentPage          int  `json:"currentPage"`
	TotalPages           int  `json:"totalPages"`
	ShowLeadingEllipsis  bool `json:"showLeadingEllipsis"`
	ShowTrailingEllipsis bool `json:"showTrailingEllipsis"`
	HasPrev              bool `json:"hasPrev"`
	HasNext              bool `json:"hasNext"`
}

// NewState returns the initial state of a view: page 1.
func NewState(totalItems, pageSize int) State {
	return State{TotalItems: totalItems, PageSize: pageSize, CurrentPage: 1}
}

// TotalPages returns max(1, ceil(totalItems/pageSize)).
func TotalPages(totalItems, pageSize int) (int, error) {
	if pageSize <= 0 {
		return 0, fmt.Errorf("%w: page size must be positive, got %d", ErrInvalidArgument, pageSize)
	}
	if totalItems < 0 {
		return 0, fmt.Errorf("%w: total items must not be negative, got %d", ErrInvalidArgument, totalItems)
	}
	pages := totalItems / pageSize
	if totalItems%pageSize != 0 {
		pages++
	}
	if pages < 1 {
		pages = 1
	}
	return pages, nil
}

func (s State) Validate() error {
	_, err := TotalPages(s.TotalItems, s.PageSize)
	return err
}

// Clamp moves CurrentPage into [1, TotalPages].
func (s State) Clamp() (State, error) {
	totalPages, err := TotalPages(s.TotalItems, s.PageSize)
	if err != nil {
		return State{}, err
	}
	s.CurrentPage = clamp(s.CurrentPage, 1, totalPages)
	return s, nil
}

// Goto returns the state for page n, clamped. An invalid state is returned unchanged.
func (s State) Goto(n int) State {
	s.CurrentPage = n
	clamped, err := s.Clamp()
	if err != nil {
		return s
	}
	return clamped
}

func (s State) Prev() State {
	if s.CurrentPage == math.MinInt {
		return s.Goto(s.CurrentPage)
	}
	return s.Goto(s.CurrentPage - 1)
}

func (s State) Next() State {
	if s.CurrentPage == math.MaxInt {
		return s.Goto(s.CurrentPage)
	}
	return s.Goto(s.CurrentPage + 1)
}

// Offset is the index of the first row of the current page. The state is
// expected to be clamped.
func (s State) Offset() int {
	if s.CurrentPage <= 1 || s.PageSize <= 0 {
		return 0
	}
	return (s.CurrentPage - 1) * s.PageSize
}

// Compute derives the page window for state with at most limit page buttons.
func Compute(s State, limit int) (Window, error) {
	if limit <= 0 {
		return Window{}, fmt.Errorf("%w: window limit must be positive, got %d", ErrInvalidArgument, limit)
	}
	s, err := s.Clamp()
	if err != nil {
		return Window{}, err
	}
	totalPages, _ := TotalPages(s.TotalItems, s.PageSize)

	start := max(1, s.CurrentPage-limit/2)
	end := totalPages
	// start+limit-1 may not fit in an int.
	if limit-1 <= totalPages-start {
		end = start + limit - 1
	} else {
		start = max(1, end-limit+1)
	}

	return Window{
		StartPage:            start,
		EndPage:              end,
		CurrentPage:          s.CurrentPage,
		TotalPages:           totalPages,
		ShowLeadingEllipsis:  start > 1,
		ShowTrailingEllipsis: end < totalPages,
		HasPrev:              s.CurrentPage > 1,
		HasNext:              s.CurrentPage < totalPages,
	}, nil
}

// Pages lists the page numbers inside the window.
func (w Window) Pages() []int {
	if w.EndPage < w.StartPage {
		return nil
	}
	pages := make([]int, 0, w.EndPage-w.StartPage+1)
	for p := w.StartPage; p <= w.EndPage; p++ {
		pages = append(pages, p)
	}
	return pages
}

func (w Window) Width() int {
	return w.EndPage - w.StartPage + 1
}

func (w Window) PrevPage() int { return max(1, w.CurrentPage-1) }

func (w Window) NextPage() int {
	if w.CurrentPage >= w.TotalPages {
		return w.TotalPages
	}
	return w.CurrentPage + 1
}

// Slice returns the rows of the current page of items. The state is clamped
// against len(items) first, so it never panics on a stale page number.
func Slice[T any](items []T, s State) []T {
	s.TotalItems = len(items)
	s, err := s.Clamp()
	if err != nil {
		return nil
	}
	start := s.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := min(start+s.PageSize, len(items))
	return items[start:end]
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
