package domain

// SearchQuery carries the user's lawn constraints and preferences.
// Enum fields validate against their closed vocabulary at the HTTP boundary.
type SearchQuery struct {
	SurfaceM2   int      `form:"surface_m2" json:"surface_m2" binding:"required,min=1"`
	SlopePct    int      `form:"slope_pct" json:"slope_pct" binding:"min=0"`
	Perimeter   string   `form:"perimeter" json:"perimeter" binding:"omitempty,oneof=virtual wire both any"`
	BudgetBand  string   `form:"budget_band" json:"budget_band" binding:"omitempty,oneof=low mid high any"`
	NoisePref   *float64 `form:"noise_pref" json:"noise_pref,omitempty"`
	Multizone   bool     `form:"multizone" json:"multizone"`
	PowerSource string   `form:"power_source" json:"power_source" binding:"omitempty,oneof=battery wire gasoline any"`
	Features    []string `form:"-" json:"features,omitempty"`
	Limit       int      `form:"limit" json:"limit" binding:"omitempty,min=1"`
}

// Normalize fills the query's defaults, matching the documented vocabulary:
// "any" for the enum preferences and a result limit of 5.
func (q *SearchQuery) Normalize() {
	if q.Perimeter == "" {
		q.Perimeter = PerimeterAny
	}
	if q.BudgetBand == "" {
		q.BudgetBand = "any"
	}
	if q.PowerSource == "" {
		q.PowerSource = PowerAny
	}
	if q.Limit <= 0 {
		q.Limit = 5
	}
}

// WantsFeature reports whether the query explicitly requested a feature tag
func (q *SearchQuery) WantsFeature(tag string) bool {
	for _, f := range q.Features {
		if f == tag {
			return true
		}
	}
	return false
}

// ScoredProduct pairs a (possibly enrichment-updated) product with its rank
// score in [0,100]. It lives only for the duration of a single search request.
type ScoredProduct struct {
	Product Product `json:"product"`
	Score   float64 `json:"score"`
}

// SearchResult is the core search output consumed by the HTTP layer
type SearchResult struct {
	Items []ScoredProduct
	Total int // matched count before truncation
}
