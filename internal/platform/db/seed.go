package db

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type seedTrip struct {
	Destination string
	StartAt     time.Time
	Days        int
	Spent       map[string]int
}

var seedEmployees = []string{
	"Anna Petrova",
	"Boris Ivanov",
	"Daria Smirnova",
	"Egor Kuznetsov",
	"Irina Volkova",
	"Maxim Sokolov",
}

// Seed inserts a demo dataset when the employees table is empty. Running it
// twice is a no-op.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM employees").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		slog.Info("seed skipped, employees already present", "employees", count)
		return nil
	}

	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		employeeIDs, err := ensureEmployees(ctx, tx, seedEmployees)
		if err != nil {
			return err
		}
		trips := demoTrips()
		for _, trip := range trips {
			if err := insertTrip(ctx, tx, trip, employeeIDs); err != nil {
				return err
			}
		}
		slog.Info("seed completed", "employees", len(employeeIDs), "trips", len(trips))
		return nil
	})
}

func ensureEmployees(ctx context.Context, tx pgx.Tx, names []string) (map[string]int64, error) {
	ids := make(map[string]int64, len(names))
	for _, name := range names {
		var id int64
		if err := tx.QueryRow(ctx, "INSERT INTO employees (name) VALUES ($1) RETURNING id", name).Scan(&id); err != nil {
			return nil, err
		}
		ids[name] = id
	}
	return ids, nil
}

func insertTrip(ctx context.Context, tx pgx.Tx, trip seedTrip, employeeIDs map[string]int64) error {
	var tripID int64
	err := tx.QueryRow(ctx, `
    INSERT INTO business_trips (destination, start_at, end_at)
    VALUES ($1, $2, $3)
    RETURNING id
  `, trip.Destination, trip.StartAt, trip.StartAt.AddDate(0, 0, trip.Days)).Scan(&tripID)
	if err != nil {
		return err
	}

	for _, name := range seedEmployees {
		spent, ok := trip.Spent[name]
		if !ok {
			continue
		}
		if _, err := tx.Exec(ctx, `
      INSERT INTO assignments_to_trips (employee_id, business_trip_id, money_spent)
      VALUES ($1, $2, $3)
    `, employeeIDs[name], tripID, spent); err != nil {
			return err
		}
	}
	return nil
}

// demoTrips builds a fixed spread of trips over several years so every chart
// and several table pages have data.
func demoTrips() []seedTrip {
	destinations := []string{"Moscow", "Kazan", "Novosibirsk", "Yekaterinburg", "Sochi", "Vladivostok", "Samara"}
	var out []seedTrip
	for i := 0; i < 28; i++ {
		year := 2019 + i%6
		month := time.Month(1 + (i*5)%12)
		start := time.Date(year, month, 1+(i*3)%27, 0, 0, 0, 0, time.UTC)
		spent := map[string]int{}
		for j, name := range seedEmployees {
			if (i+j)%3 == 0 {
				spent[name] = 150 + ((i+1)*(j+2)*37)%900
			}
		}
		out = append(out, seedTrip{
			Destination: destinations[i%len(destinations)],
			StartAt:     start,
			Days:        2 + i%9,
			Spent:       spent,
		})
	}
	return out
}
