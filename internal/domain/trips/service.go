package trips

import (
	"context"
	"fmt"

	"tripboard/internal/domain/paging"
)

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

// TripTable returns one page of the company-wide trip table. The requested
// page is clamped to the available range.
func (s *Service) TripTable(ctx context.Context, state paging.State, windowSize int) (TripTable, error) {
	total, err := s.store.CountTripRows(ctx)
	if err != nil {
		return TripTable{}, fmt.Errorf("count trip rows: %w", err)
	}
	state.TotalItems = total
	state, err = state.Clamp()
	if err != nil {
		return TripTable{}, err
	}
	window, err := paging.Compute(state, windowSize)
	if err != nil {
		return TripTable{}, err
	}

	rows := []TripRow{}
	if total > 0 {
		rows, err = s.store.ListTripRows(ctx, state.PageSize, state.Offset())
		if err != nil {
			return TripTable{}, fmt.Errorf("list trip rows: %w", err)
		}
	}
	return TripTable{Rows: rows, State: state, Window: window}, nil
}

func (s *Service) MoneySpentByYear(ctx context.Context) ([]Point, error) {
	facts, err := s.store.ListAssignmentFacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	agg := NewYearlyAggregator()
	for _, f := range facts {
		agg.Add(f.StartAt.Year(), f.MoneySpent)
	}
	return agg.Points(), nil
}

// TripCountByYear counts business trips, not assignments: a trip taken by
// three employees counts once.
func (s *Service) TripCountByYear(ctx context.Context) ([]Point, error) {
	starts, err := s.store.ListTripStarts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	agg := NewYearlyAggregator()
	for _, startAt := range starts {
		agg.Add(startAt.Year(), 1)
	}
	return agg.Points(), nil
}

func (s *Service) EmployeeTripCountByYear(ctx context.Context, employeeID int64) ([]Point, error) {
	emp, err := s.employee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return statsFor(emp).TripsByYear(), nil
}

func (s *Service) EmployeeStat(ctx context.Context, employeeID int64) (EmployeeStat, error) {
	emp, err := s.employee(ctx, employeeID)
	if err != nil {
		return EmployeeStat{}, err
	}
	return buildEmployeeStat(emp.Name, statsFor(emp)), nil
}

// EmployeeOverview loads an employee once and derives everything the
// employee page shows: statistics, the yearly series and one page of the
// employee's own trips.
func (s *Service) EmployeeOverview(ctx context.Context, employeeID int64, state paging.State, windowSize int) (EmployeeOverview, error) {
	emp, err := s.employee(ctx, employeeID)
	if err != nil {
		return EmployeeOverview{}, err
	}

	rows := make([]TripRow, 0, len(emp.Trips))
	for _, t := range emp.Trips {
		rows = append(rows, newTripRow(emp.ID, emp.Name, t.Trip, t.MoneySpent))
	}

	state.TotalItems = len(rows)
	state, err = state.Clamp()
	if err != nil {
		return EmployeeOverview{}, err
	}
	window, err := paging.Compute(state, windowSize)
	if err != nil {
		return EmployeeOverview{}, err
	}

	agg := statsFor(emp)
	return EmployeeOverview{
		EmployeeID:  emp.ID,
		Stat:        buildEmployeeStat(emp.Name, agg),
		TripsByYear: agg.TripsByYear(),
		Trips: TripTable{
			Rows:   paging.Slice(rows, state),
			State:  state,
			Window: window,
		},
	}, nil
}

func (s *Service) Employees(ctx context.Context) ([]Employee, error) {
	employees, err := s.store.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	if employees == nil {
		employees = []Employee{}
	}
	return employees, nil
}

func (s *Service) employee(ctx context.Context, employeeID int64) (*Employee, error) {
	if employeeID <= 0 {
		return nil, ErrInvalidEmployee
	}
	emp, err := s.store.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, ErrEmployeeNotFound
	}
	return emp, nil
}

func statsFor(emp *Employee) *YearlyStatAggregator {
	agg := NewYearlyStatAggregator()
	for _, t := range emp.Trips {
		agg.Add(t.Trip.StartAt.Year(), 1, t.MoneySpent)
	}
	return agg
}

func buildEmployeeStat(name string, agg *YearlyStatAggregator) EmployeeStat {
	return EmployeeStat{
		Name:          name,
		TripCount:     agg.TotalTrips(),
		MoneySpent:    agg.TotalMoney(),
		AvgTripCount:  agg.AvgTripsPerYear(),
		AvgMoneySpent: agg.AvgMoneyPerYear(),
	}
}
