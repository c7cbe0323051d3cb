package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectTransport(t *testing.T) {
	tests := []struct {
		name        string
		distanceKm  float64
		budgetHours float64
		wantMode    TransportMode
		wantHours   float64
		wantCost    float64
	}{
		{"short hop walks", 1.0, 0, ModeWalking, 0.2, 0},
		{"walking range boundary", 1.5, 0, ModeWalking, 0.3, 0},
		{"mid range rides motorbike", 5.0, 0, ModeMotorbike, 5.0 / 35.0, 2.0},
		{"long range takes taxi", 50.0, 0, ModeTaxi, 50.0 / 30.0, 37.5},
		{"tight budget skips walking", 1.2, 0.2, ModeMotorbike, 1.2 / 35.0, 0.48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, reason := SelectTransport(tt.distanceKm, tt.budgetHours)
			assert.Equal(t, tt.wantMode, cfg.Mode)
			assert.InDelta(t, tt.wantHours, cfg.TravelHours(tt.distanceKm), 1e-9)
			assert.InDelta(t, tt.wantCost, cfg.Cost(tt.distanceKm), 1e-9)
			assert.NotEmpty(t, reason)
		})
	}
}

func TestSelectTransportFallsBackToTaxi(t *testing.T) {
	cfg, reason := SelectTransport(150.0, 0)
	assert.Equal(t, ModeTaxi, cfg.Mode)
	assert.Contains(t, reason, "Using taxi anyway")
}

func TestNewLeg(t *testing.T) {
	leg := NewLeg(5.0, 0)
	assert.Equal(t, ModeMotorbike, leg.Mode)
	assert.InDelta(t, 5.0, leg.DistanceKm, 1e-9)
	assert.InDelta(t, 5.0/35.0, leg.TravelHours, 1e-9)
	assert.InDelta(t, 2.0, leg.CostUSD, 1e-9)
}
