package planner

import "math"

const (
	alphaMin = 0.3
	alphaMax = 0.9

	poolMin = 30
	poolMax = 200
)

// ClampPoolSize clips a candidate pool size to the interaction range the
// alpha formula was calibrated on. The raw database size must never be
// fed to Alpha directly.
func ClampPoolSize(n int) int {
	if n < poolMin {
		return poolMin
	}
	if n > poolMax {
		return poolMax
	}
	return n
}

// Alpha computes the blend weight between the content signal and the
// collaborative signal from the user's selection history.
//
// Two-tier piecewise-linear scaling on the selection rate:
//   - no selections at all: 0.9, trust the content signal (cold start)
//   - rate < 0.5: 0.3 + 0.3*(rate/0.5), favoring the collaborative signal
//   - rate >= 0.5: 0.6 + 0.3*((rate-0.5)/0.5), plus a +0.05 engagement
//     bonus when the user picked at least 5 places per trip day
//
// The result is clamped to [0.3, 0.9] and rounded to 2 decimals.
func Alpha(selectedCount, poolSize, tripDays int) float64 {
	if selectedCount == 0 {
		return alphaMax
	}
	if poolSize <= 0 {
		poolSize = poolMin
	}

	rate := float64(selectedCount) / float64(poolSize)

	perDay := float64(selectedCount)
	if tripDays > 0 {
		perDay = float64(selectedCount) / float64(tripDays)
	}

	var alpha float64
	if rate < 0.5 {
		alpha = 0.3 + 0.3*(rate/0.5)
	} else {
		alpha = 0.6 + 0.3*((rate-0.5)/0.5)
		if perDay >= 5 {
			alpha = math.Min(alphaMax, alpha+0.05)
		}
	}

	alpha = math.Max(alphaMin, math.Min(alphaMax, alpha))
	return math.Round(alpha*100) / 100
}

// Blend merges the two provider score maps into one ranking score per
// place: alpha*content + (1-alpha)*collab, defaulting either side to 0.5
// when the provider omitted the place, plus a small rating bonus. The
// result is capped at 1.0.
func Blend(content, collab ScoreMap, places []Place, alpha float64) ScoreMap {
	out := make(ScoreMap, len(places))
	for _, p := range places {
		contentScore := 0.5
		if s, ok := content[p.ID]; ok {
			contentScore = s
		}
		collabScore := 0.5
		if s, ok := collab[p.ID]; ok {
			collabScore = s
		}

		hybrid := alpha*contentScore + (1-alpha)*collabScore
		ratingBonus := (p.Rating / 5.0) * 0.1
		out[p.ID] = math.Min(1.0, hybrid+ratingBonus)
	}
	return out
}
