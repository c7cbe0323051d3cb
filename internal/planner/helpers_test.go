package planner

import "time"

// Shared fixtures for the planner tests. Coordinates are offset in small
// latitude steps; 0.001 degrees of latitude is roughly 111 meters.

func hoursEveryDay(open, close Clock) *OpeningHours {
	periods := make([]OpenPeriod, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		periods = append(periods, OpenPeriod{Day: d, Open: open, Close: close})
	}
	return &OpeningHours{Periods: periods}
}

func testPlace(id, name string, types []string, rating, lat, lon float64) Place {
	return Place{
		ID:        id,
		Name:      name,
		City:      "Hanoi",
		Types:     types,
		Rating:    rating,
		Latitude:  lat,
		Longitude: lon,
		Hours:     hoursEveryDay(NewClock(6, 0), NewClock(23, 0)),
	}
}

func attraction(id string, rating, lat, lon float64) Place {
	return testPlace(id, "Attraction "+id, []string{"tourist_attraction"}, rating, lat, lon)
}

func cafe(id string, rating, lat, lon float64) Place {
	return testPlace(id, "Cafe "+id, []string{"cafe"}, rating, lat, lon)
}

func restaurant(id string, rating, lat, lon float64) Place {
	return testPlace(id, "Restaurant "+id, []string{"restaurant"}, rating, lat, lon)
}

func hotel(id string, rating, lat, lon float64) Place {
	return testPlace(id, "Hotel "+id, []string{"lodging"}, rating, lat, lon)
}

func blockByKind(kind BlockKind) TimeBlock {
	for _, b := range DailySchedule() {
		if b.Kind == kind {
			return b
		}
	}
	panic("unknown block kind: " + string(kind))
}
