package db

import "testing"

func TestDemoTripsAssignEveryTrip(t *testing.T) {
	trips := demoTrips()
	if len(trips) == 0 {
		t.Fatal("expected demo trips")
	}
	years := map[int]bool{}
	for _, trip := range trips {
		if len(trip.Spent) == 0 {
			t.Fatalf("trip to %s on %s has no travellers", trip.Destination, trip.StartAt.Format("2006-01-02"))
		}
		if trip.Days <= 0 {
			t.Fatalf("trip to %s has non-positive duration", trip.Destination)
		}
		years[trip.StartAt.Year()] = true
	}
	if len(years) < 3 {
		t.Fatalf("expected trips spread over several years, got %d", len(years))
	}
}
