package domain

// Perimeter capability values as they appear in the catalog
const (
	PerimeterWire    = "wire"
	PerimeterVirtual = "virtual"
	PerimeterBoth    = "both"
	PerimeterAny     = "any"
)

// Power source values
const (
	PowerBattery  = "battery"
	PowerWire     = "wire"
	PowerGasoline = "gasoline"
	PowerAny      = "any"
)

// Sound holds the declared noise levels for a product in dB(A).
// The measured value is preferred over the guaranteed rating when both exist.
type Sound struct {
	LwaMeasuredDB   *float64 `json:"lwa_measured_db,omitempty"`
	LwaGuaranteedDB *float64 `json:"lwa_guaranteed_db,omitempty"`
}

// Zones describes multizone capability
type Zones struct {
	Managed int `json:"managed"`
}

// Product represents a single robot mower entry in the catalog
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	PDPURL        string   `json:"pdp_url"`
	ImageURL      string   `json:"image_url,omitempty"`
	CoverageM2    int      `json:"coverage_m2"`
	MaxSlopePct   int      `json:"max_slope_pct"`
	PerimeterType string   `json:"perimeter_type"`
	PowerSource   string   `json:"power_source"`
	Wireless      bool     `json:"wireless"`
	Features      []string `json:"features,omitempty"`
	Sound         *Sound   `json:"sound,omitempty"`
	Zones         *Zones   `json:"zones,omitempty"`
	PriceEUR      *int     `json:"price_eur,omitempty"`
}

// NoiseValue returns the product's noise level in dB(A), preferring the
// measured value over the guaranteed rating. Returns false when the product
// reports neither.
func (p *Product) NoiseValue() (float64, bool) {
	if p.Sound == nil {
		return 0, false
	}
	if p.Sound.LwaMeasuredDB != nil {
		return *p.Sound.LwaMeasuredDB, true
	}
	if p.Sound.LwaGuaranteedDB != nil {
		return *p.Sound.LwaGuaranteedDB, true
	}
	return 0, false
}

// ManagedZones returns the number of zones the product can manage,
// defaulting to 1 when the catalog entry does not declare any.
func (p *Product) ManagedZones() int {
	if p.Zones == nil {
		return 1
	}
	return p.Zones.Managed
}

// HasFeature reports whether the product declares the given feature tag
func (p *Product) HasFeature(tag string) bool {
	for _, f := range p.Features {
		if f == tag {
			return true
		}
	}
	return false
}

// Clone returns a copy suitable for per-request enrichment overlays.
// The catalog entry itself is never mutated.
func (p *Product) Clone() Product {
	return *p
}
