package trips

import (
	"reflect"
	"testing"
)

func TestYearlyAggregatorSortsByYear(t *testing.T) {
	agg := NewYearlyAggregator()
	agg.Add(2022, 15)
	agg.Add(2020, 10)
	agg.Add(2021, 20)
	agg.Add(2021, 5)

	want := []Point{{X: 2020, Y: 10}, {X: 2021, Y: 25}, {X: 2022, Y: 15}}
	if got := agg.Points(); !reflect.DeepEqual(got, want) {
		t.Fatalf("points = %v, want %v", got, want)
	}
}

func TestYearlyStatAggregator(t *testing.T) {
	agg := NewYearlyStatAggregator()
	agg.Add(2020, 1, 10)
	agg.Add(2020, 1, 10)
	agg.Add(2020, 1, 10)
	agg.Add(2021, 1, 10)
	agg.Add(2021, 1, 10)
	agg.Add(2022, 1, 10)

	if agg.TotalTrips() != 6 || agg.TotalMoney() != 60 {
		t.Fatalf("totals = %d/%d, want 6/60", agg.TotalTrips(), agg.TotalMoney())
	}
	if agg.AvgTripsPerYear() != 2 {
		t.Fatalf("avg trips = %v, want 2", agg.AvgTripsPerYear())
	}
	if agg.AvgMoneyPerYear() != 20 {
		t.Fatalf("avg money = %v, want 20", agg.AvgMoneyPerYear())
	}
}

func TestYearlyStatAggregatorEmpty(t *testing.T) {
	agg := NewYearlyStatAggregator()
	if agg.AvgTripsPerYear() != 0 || agg.AvgMoneyPerYear() != 0 {
		t.Fatal("expected zero averages without data")
	}
	if len(agg.TripsByYear()) != 0 {
		t.Fatalf("expected no points, got %v", agg.TripsByYear())
	}
}
