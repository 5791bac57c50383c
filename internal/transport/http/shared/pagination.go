package shared

import (
	"net/http"
	"strconv"
	"strings"

	"tripboard/internal/domain/paging"
)

// ParsePage reads ?page= and ?pageSize= into an initial paging state.
// Missing values use defaults; pageSize is capped at maxSize. Malformed
// values are reported on v. Out-of-range page numbers are left for the
// service to clamp.
func ParsePage(r *http.Request, v *Validator, defaultSize, maxSize int) paging.State {
	state := paging.State{PageSize: defaultSize, CurrentPage: 1}

	if raw := strings.TrimSpace(r.URL.Query().Get("page")); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			v.Add("page", "must be an integer")
		} else {
			state.CurrentPage = page
		}
	}

	if raw := strings.TrimSpace(r.URL.Query().Get("pageSize")); raw != "" {
		size, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			v.Add("pageSize", "must be an integer")
		case size <= 0:
			v.Add("pageSize", "must be positive")
		default:
			state.PageSize = size
		}
	}
	if maxSize > 0 && state.PageSize > maxSize {
		state.PageSize = maxSize
	}
	return state
}

// ParseID parses a positive integer path parameter.
func ParseID(v *Validator, field, raw string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		v.Add(field, "must be a positive integer")
		return 0
	}
	return id
}
