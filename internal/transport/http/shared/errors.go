package shared

import (
	"errors"
	"net/http"

	"tripboard/internal/domain/paging"
	"tripboard/internal/domain/trips"
	"tripboard/internal/requestctx"
	"tripboard/internal/transport/http/api"
)

// PageConfig holds the paging defaults handlers apply to list requests.
type PageConfig struct {
	Size    int
	MaxSize int
	Window  int
}

// ErrorStatus maps a service error to an HTTP status, an error code and a
// client safe message.
func ErrorStatus(err error) (int, string, string) {
	switch {
	case errors.Is(err, trips.ErrEmployeeNotFound):
		return http.StatusNotFound, "not_found", "employee not found"
	case errors.Is(err, trips.ErrInvalidEmployee), errors.Is(err, paging.ErrInvalidArgument):
		return http.StatusBadRequest, "validation_error", err.Error()
	default:
		return http.StatusInternalServerError, "internal_error", "internal server error"
	}
}

// FailService writes the JSON error for err. Server errors are logged with
// the request scoped logger.
func FailService(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status, code, message := ErrorStatus(err)
	if status >= http.StatusInternalServerError {
		requestctx.Logger(r.Context()).Error(msg, "err", err)
	}
	api.Fail(w, status, code, message, requestctx.GetRequestID(r.Context()))
}
