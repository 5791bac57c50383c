package trips

import (
	"context"
	"time"
)

type StoreAPI interface {
	CountTripRows(ctx context.Context) (int, error)
	ListTripRows(ctx context.Context, limit, offset int) ([]TripRow, error)
	ListAssignmentFacts(ctx context.Context) ([]AssignmentFact, error)
	ListTripStarts(ctx context.Context) ([]time.Time, error)
	GetEmployee(ctx context.Context, employeeID int64) (*Employee, error)
	ListEmployees(ctx context.Context) ([]Employee, error)
}
