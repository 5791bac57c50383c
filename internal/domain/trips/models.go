package trips

import (
	"time"

	"tripboard/internal/domain/paging"
)

const DateLayout = "02.01.2006"

type Employee struct {
	ID    int64          `json:"id"`
	Name  string         `json:"name"`
	Trips []EmployeeTrip `json:"trips,omitempty"`
}

type BusinessTrip struct {
	ID          int64     `json:"id"`
	Destination string    `json:"destination"`
	StartAt     time.Time `json:"startAt"`
	EndAt       time.Time `json:"endAt"`
}

// EmployeeTrip is one assignment of an employee to a business trip.
type EmployeeTrip struct {
	Trip       BusinessTrip `json:"trip"`
	MoneySpent int          `json:"moneySpent"`
}

// AssignmentFact is the flat shape used for cross-employee aggregation.
type AssignmentFact struct {
	EmployeeID int64
	TripID     int64
	StartAt    time.Time
	MoneySpent int
}

type TripRow struct {
	EmployeeID  int64  `json:"id"`
	Name        string `json:"name"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	Duration    int    `json:"duration"`
	MoneySpent  int    `json:"moneySpent"`
}

// Point is one chart sample: X is the year.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type EmployeeStat struct {
	Name          string  `json:"name"`
	TripCount     int     `json:"tripCount"`
	MoneySpent    int     `json:"moneySpent"`
	AvgTripCount  float32 `json:"avgTripCount"`
	AvgMoneySpent float32 `json:"avgMoneySpent"`
}

type TripTable struct {
	Rows   []TripRow     `json:"rows"`
	State  paging.State  `json:"state"`
	Window paging.Window `json:"window"`
}

type EmployeeOverview struct {
	EmployeeID  int64        `json:"employeeId"`
	Stat        EmployeeStat `json:"stat"`
	TripsByYear []Point      `json:"tripsByYear"`
	Trips       TripTable    `json:"trips"`
}

// DurationDays returns the number of whole days between start and end.
func DurationDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()) / 24
}

func newTripRow(employeeID int64, name string, trip BusinessTrip, moneySpent int) TripRow {
	return TripRow{
		EmployeeID:  employeeID,
		Name:        name,
		Destination: trip.Destination,
		Date:        trip.StartAt.Format(DateLayout),
		Duration:    DurationDays(trip.StartAt, trip.EndAt),
		MoneySpent:  moneySpent,
	}
}
