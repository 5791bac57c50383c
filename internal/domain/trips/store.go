package trips

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"tripboard/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) CountTripRows(ctx context.Context) (int, error) {
	var total int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM assignments_to_trips").Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Store) ListTripRows(ctx context.Context, limit, offset int) ([]TripRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT e.id, e.name, t.destination, t.start_at, t.end_at, a.money_spent
    FROM assignments_to_trips a
    JOIN employees e ON a.employee_id = e.id
    JOIN business_trips t ON a.business_trip_id = t.id
    ORDER BY t.start_at DESC, e.id ASC, a.id ASC
    LIMIT $1 OFFSET $2
  `, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]TripRow, 0, limit)
	for rows.Next() {
		var employeeID int64
		var name string
		var trip BusinessTrip
		var moneySpent int
		if err := rows.Scan(&employeeID, &name, &trip.Destination, &trip.StartAt, &trip.EndAt, &moneySpent); err != nil {
			return nil, err
		}
		out = append(out, newTripRow(employeeID, name, trip, moneySpent))
	}
	return out, rows.Err()
}

func (s *Store) ListAssignmentFacts(ctx context.Context) ([]AssignmentFact, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT a.employee_id, a.business_trip_id, t.start_at, a.money_spent
    FROM assignments_to_trips a
    JOIN business_trips t ON a.business_trip_id = t.id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AssignmentFact
	for rows.Next() {
		var fact AssignmentFact
		if err := rows.Scan(&fact.EmployeeID, &fact.TripID, &fact.StartAt, &fact.MoneySpent); err != nil {
			return nil, err
		}
		out = append(out, fact)
	}
	return out, rows.Err()
}

func (s *Store) ListTripStarts(ctx context.Context) ([]time.Time, error) {
	rows, err := s.DB.Query(ctx, "SELECT start_at FROM business_trips")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []time.Time
	for rows.Next() {
		var startAt time.Time
		if err := rows.Scan(&startAt); err != nil {
			return nil, err
		}
		out = append(out, startAt)
	}
	return out, rows.Err()
}

func (s *Store) GetEmployee(ctx context.Context, employeeID int64) (*Employee, error) {
	emp := Employee{ID: employeeID}
	err := s.DB.QueryRow(ctx, "SELECT name FROM employees WHERE id = $1", employeeID).Scan(&emp.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load employee %d: %w", employeeID, err)
	}

	rows, err := s.DB.Query(ctx, `
    SELECT t.id, t.destination, t.start_at, t.end_at, a.money_spent
    FROM assignments_to_trips a
    JOIN business_trips t ON a.business_trip_id = t.id
    WHERE a.employee_id = $1
    ORDER BY t.start_at DESC, a.id ASC
  `, employeeID)
	if err != nil {
		return nil, fmt.Errorf("load trips of employee %d: %w", employeeID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var trip EmployeeTrip
		if err := rows.Scan(&trip.Trip.ID, &trip.Trip.Destination, &trip.Trip.StartAt, &trip.Trip.EndAt, &trip.MoneySpent); err != nil {
			return nil, err
		}
		emp.Trips = append(emp.Trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *Store) ListEmployees(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, "SELECT id, name FROM employees ORDER BY name, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		var emp Employee
		if err := rows.Scan(&emp.ID, &emp.Name); err != nil {
			return nil, err
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}
