package usecase

import (
	"github.com/giusMaffi/stiga-product-finder/internal/domain"
)

// perimeterOK checks perimeter compatibility. Unknown requested values admit
// everything, mirroring the lenient handling of the validation boundary.
func perimeterOK(perimeterType, requested string) bool {
	switch requested {
	case domain.PerimeterAny:
		return true
	case domain.PerimeterVirtual:
		return perimeterType == domain.PerimeterVirtual || perimeterType == domain.PerimeterBoth
	case domain.PerimeterWire:
		return perimeterType == domain.PerimeterWire || perimeterType == domain.PerimeterBoth
	case domain.PerimeterBoth:
		return perimeterType == domain.PerimeterBoth
	}
	return true
}

// admitProduct is the hard admission predicate. A product passes only when
// every constraint holds; missing fields degrade to conservative defaults
// (zero coverage and slope, battery power) rather than erroring.
func admitProduct(p *domain.Product, q *domain.SearchQuery) bool {
	if p.CoverageM2 < q.SurfaceM2 {
		return false
	}
	if p.MaxSlopePct < q.SlopePct {
		return false
	}

	perimeterType := p.PerimeterType
	if perimeterType == "" {
		perimeterType = domain.PerimeterBoth
	}
	if !perimeterOK(perimeterType, q.Perimeter) {
		return false
	}

	if q.PowerSource != "" && q.PowerSource != domain.PowerAny {
		powerSource := p.PowerSource
		if powerSource == "" {
			powerSource = domain.PowerBattery
		}
		if powerSource != q.PowerSource {
			return false
		}
	}

	return true
}

// HardFilter applies the admission predicate to every catalog entry,
// preserving catalog order. Pure and deterministic.
func HardFilter(products []domain.Product, q *domain.SearchQuery) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for i := range products {
		if admitProduct(&products[i], q) {
			out = append(out, products[i])
		}
	}
	return out
}
