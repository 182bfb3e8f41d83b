package usecase

import (
	"github.com/giusMaffi/stiga-product-finder/internal/domain"
)

// Scoring weights. The total is clamped to [0,100] at the end.
const (
	coverageTopPoints  = 35.0 // ratio <= 0.5: generous headroom
	coverageHighPoints = 30.0 // ratio <= 0.75
	coverageMidPoints  = 24.0 // ratio <= 0.9
	coverageLowPoints  = 18.0 // tight fit

	slopeTopPoints  = 15.0 // delta >= 15 pct points
	slopeHighPoints = 12.0 // delta >= 10
	slopeMidPoints  = 9.0  // delta >= 5
	slopeLowPoints  = 6.0

	budgetFullPoints    = 15.0
	budgetPartialPoints = 8.0
	budgetNeutralPoints = 7.5 // band "any" or no known price

	noiseFullPoints = 15.0 // at or below preference
	noiseNearPoints = 10.0 // within +3 dB
	noiseFarPoints  = 5.0  // within +6 dB

	multizoneBonus   = 5.0
	powerMatchBonus  = 5.0
	featureCapPoints = 10.0
	wirelessBonus    = 5.0
)

// Budget band thresholds in euros
const (
	lowBandFull    = 800
	lowBandPartial = 1200

	midBandFullMin    = 800
	midBandFullMax    = 1500
	midBandPartialMin = 600
	midBandPartialMax = 2200

	highBandFull       = 1500
	highBandPartialMin = 1200
)

// ScoreProduct computes the weighted multi-criteria rank of a product against
// a query, in [0,100]. Each component only awards points when the product
// qualifies for it; missing optional fields simply skip their component.
func ScoreProduct(p *domain.Product, q *domain.SearchQuery) float64 {
	score := 0.0

	// Coverage fit (0-35): rewards headroom over exact fit
	if p.CoverageM2 >= q.SurfaceM2 && p.CoverageM2 > 0 {
		ratio := float64(q.SurfaceM2) / float64(p.CoverageM2)
		switch {
		case ratio <= 0.5:
			score += coverageTopPoints
		case ratio <= 0.75:
			score += coverageHighPoints
		case ratio <= 0.9:
			score += coverageMidPoints
		default:
			score += coverageLowPoints
		}
	}

	// Slope fit (0-15)
	if p.MaxSlopePct >= q.SlopePct {
		delta := p.MaxSlopePct - q.SlopePct
		switch {
		case delta >= 15:
			score += slopeTopPoints
		case delta >= 10:
			score += slopeHighPoints
		case delta >= 5:
			score += slopeMidPoints
		default:
			score += slopeLowPoints
		}
	}

	score += budgetScore(p, q)

	// Noise fit (0-15), only when both sides declare a value
	if q.NoisePref != nil {
		if nv, ok := p.NoiseValue(); ok {
			pref := *q.NoisePref
			switch {
			case nv <= pref:
				score += noiseFullPoints
			case nv <= pref+3:
				score += noiseNearPoints
			case nv <= pref+6:
				score += noiseFarPoints
			}
		}
	}

	// Multizone bonus (0-5)
	if q.Multizone && p.ManagedZones() >= 2 {
		score += multizoneBonus
	}

	// Power-source match bonus: additive on top of the hard filter already
	// enforcing this; intentional
	if q.PowerSource != "" && q.PowerSource != domain.PowerAny && p.PowerSource == q.PowerSource {
		score += powerMatchBonus
	}

	// Feature overlap (0-10, capped): one point per requested feature present.
	// "wireless" is checked against the capability flag, not the feature set.
	if len(q.Features) > 0 {
		add := 0.0
		for _, f := range q.Features {
			if f == "wireless" {
				if p.Wireless {
					add++
				}
			} else if p.HasFeature(f) {
				add++
			}
		}
		if add > featureCapPoints {
			add = featureCapPoints
		}
		score += add
	}

	// Flat wireless bonus, stacking with the overlap point above for the same
	// condition. This double count matches the shipped behavior and is kept.
	if q.WantsFeature("wireless") && p.Wireless {
		score += wirelessBonus
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// budgetScore awards the budget-band component (0-15). Band "any" and
// products with no known price score a flat neutral value.
func budgetScore(p *domain.Product, q *domain.SearchQuery) float64 {
	band := q.BudgetBand
	if band == "" {
		band = "any"
	}
	if band == "any" || p.PriceEUR == nil {
		return budgetNeutralPoints
	}

	price := *p.PriceEUR
	switch band {
	case "low":
		if price <= lowBandFull {
			return budgetFullPoints
		}
		if price <= lowBandPartial {
			return budgetPartialPoints
		}
	case "mid":
		if price >= midBandFullMin && price <= midBandFullMax {
			return budgetFullPoints
		}
		if price >= midBandPartialMin && price <= midBandPartialMax {
			return budgetPartialPoints
		}
	case "high":
		if price >= highBandFull {
			return budgetFullPoints
		}
		if price >= highBandPartialMin && price < highBandFull {
			return budgetPartialPoints
		}
	}
	return 0
}
