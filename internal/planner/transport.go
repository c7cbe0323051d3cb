package planner

import "fmt"

// TransportMode is one of the three supported ways to move between places.
type TransportMode string

const (
	ModeWalking   TransportMode = "walking"
	ModeMotorbike TransportMode = "motorbike"
	ModeTaxi      TransportMode = "taxi"
)

// TransportConfig is the tuple describing one mode.
type TransportConfig struct {
	Mode          TransportMode
	MaxDistanceKm float64
	SpeedKmh      float64
	CostPerKm     float64
}

// TravelHours is the travel time for the given distance.
func (c TransportConfig) TravelHours(distanceKm float64) float64 {
	return distanceKm / c.SpeedKmh
}

// Cost is the fare for the given distance.
func (c TransportConfig) Cost(distanceKm float64) float64 {
	return distanceKm * c.CostPerKm
}

// Covers reports whether the mode may be used for the distance.
func (c TransportConfig) Covers(distanceKm float64) bool {
	return distanceKm <= c.MaxDistanceKm
}

// Evaluated in this order; the first qualifying mode wins.
var transportPriority = []TransportConfig{
	{Mode: ModeWalking, MaxDistanceKm: 1.5, SpeedKmh: 5, CostPerKm: 0},
	{Mode: ModeMotorbike, MaxDistanceKm: 30, SpeedKmh: 35, CostPerKm: 0.4},
	{Mode: ModeTaxi, MaxDistanceKm: 100, SpeedKmh: 30, CostPerKm: 0.75},
}

// SelectTransport picks the first mode in priority order whose range
// covers the distance and, when budgetHours > 0, whose travel time fits
// the budget. When nothing qualifies it falls back to taxi and says so in
// the reason. The reason string is for humans, never for control flow.
func SelectTransport(distanceKm, budgetHours float64) (TransportConfig, string) {
	for _, cfg := range transportPriority {
		if !cfg.Covers(distanceKm) {
			continue
		}
		if budgetHours > 0 && cfg.TravelHours(distanceKm) > budgetHours {
			continue
		}
		return cfg, selectionReason(cfg, distanceKm, budgetHours)
	}

	taxi := transportPriority[len(transportPriority)-1]
	reason := fmt.Sprintf(
		"No valid transport for %.2fkm (max taxi range: %.0fkm). Using taxi anyway.",
		distanceKm, taxi.MaxDistanceKm,
	)
	return taxi, reason
}

func selectionReason(cfg TransportConfig, distanceKm, budgetHours float64) string {
	reason := fmt.Sprintf("Distance: %.2fkm <= %.1fkm (max for %s)", distanceKm, cfg.MaxDistanceKm, cfg.Mode)
	if budgetHours > 0 {
		reason += fmt.Sprintf(" | Time: %.2fh <= %.2fh (available)", cfg.TravelHours(distanceKm), budgetHours)
	} else {
		reason += fmt.Sprintf(" | Travel time: %.2fh", cfg.TravelHours(distanceKm))
	}
	reason += fmt.Sprintf(" | Cost: $%.2f", cfg.Cost(distanceKm))
	return reason
}

// Leg is one resolved transport hop between two scheduled visits.
type Leg struct {
	Mode        TransportMode
	DistanceKm  float64
	TravelHours float64
	CostUSD     float64
	Reason      string
}

// NewLeg resolves mode, travel time and cost for a distance.
// budgetHours <= 0 means no time constraint.
func NewLeg(distanceKm, budgetHours float64) Leg {
	cfg, reason := SelectTransport(distanceKm, budgetHours)
	return Leg{
		Mode:        cfg.Mode,
		DistanceKm:  distanceKm,
		TravelHours: cfg.TravelHours(distanceKm),
		CostUSD:     cfg.Cost(distanceKm),
		Reason:      reason,
	}
}
