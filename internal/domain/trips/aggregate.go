package trips

import "sort"

// YearlyAggregator sums values per calendar year.
type YearlyAggregator struct {
	counters map[int]int
}

func NewYearlyAggregator() *YearlyAggregator {
	return &YearlyAggregator{counters: make(map[int]int)}
}

func (a *YearlyAggregator) Add(year, value int) {
	a.counters[year] += value
}

// Points returns one point per year, ordered by year.
func (a *YearlyAggregator) Points() []Point {
	return sortedPoints(a.counters)
}

// YearlyStatAggregator tracks trip counts and money spent per year for a
// single employee.
type YearlyStatAggregator struct {
	trips *YearlyAggregator
	money *YearlyAggregator
}

func NewYearlyStatAggregator() *YearlyStatAggregator {
	return &YearlyStatAggregator{
		trips: NewYearlyAggregator(),
		money: NewYearlyAggregator(),
	}
}

func (a *YearlyStatAggregator) Add(year, tripCount, moneySpent int) {
	a.trips.Add(year, tripCount)
	a.money.Add(year, moneySpent)
}

func (a *YearlyStatAggregator) TotalTrips() int {
	return sum(a.trips.counters)
}

func (a *YearlyStatAggregator) TotalMoney() int {
	return sum(a.money.counters)
}

func (a *YearlyStatAggregator) Years() int {
	return len(a.trips.counters)
}

// AvgTripsPerYear is 0 when nothing was added.
func (a *YearlyStatAggregator) AvgTripsPerYear() float32 {
	if a.Years() == 0 {
		return 0
	}
	return float32(a.TotalTrips()) / float32(a.Years())
}

func (a *YearlyStatAggregator) AvgMoneyPerYear() float32 {
	if a.Years() == 0 {
		return 0
	}
	return float32(a.TotalMoney()) / float32(a.Years())
}

func (a *YearlyStatAggregator) TripsByYear() []Point {
	return a.trips.Points()
}

func sortedPoints(counters map[int]int) []Point {
	points := make([]Point, 0, len(counters))
	for year, value := range counters {
		points = append(points, Point{X: year, Y: value})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].X < points[j].X
	})
	return points
}

func sum(counters map[int]int) int {
	total := 0
	for _, v := range counters {
		total += v
	}
	return total
}
