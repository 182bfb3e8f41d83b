package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/giusMaffi/stiga-product-finder/internal/domain"
)

const quietMotorThresholdDB = 60.0

// BuildCard turns a scored product into a presentation-ready card with
// bilingual spec labels. The score stays on the card for ordering but is not
// rendered in any visible text.
func BuildCard(p *domain.Product, score float64) domain.Card {
	perimeter := perimeterLabel(p.PerimeterType)

	specs := []domain.SpecItem{
		{LabelIT: "Copertura", LabelEN: "Coverage", Value: fmt.Sprintf("%d m²", p.CoverageM2)},
		{LabelIT: "Pendenza max", LabelEN: "Max slope", Value: fmt.Sprintf("%d%%", p.MaxSlopePct)},
		{LabelIT: "Perimetro", LabelEN: "Perimeter", Value: perimeter},
	}

	// Only advantages are shown, at most 3
	var pros []string
	if p.Wireless {
		pros = append(pros, "Connettività wireless")
	}
	if p.HasFeature("rtk") {
		pros = append(pros, "Precisione RTK")
	}
	if p.HasFeature("app") {
		pros = append(pros, "Controllo da app")
	}
	if nv, ok := p.NoiseValue(); ok && nv <= quietMotorThresholdDB {
		pros = append(pros, "Motore silenzioso")
	}
	if len(pros) > 3 {
		pros = pros[:3]
	}
	if pros == nil {
		pros = []string{}
	}

	links := domain.CardLinks{
		PDP: map[string]interface{}{
			"label_it": "Vedi scheda prodotto",
			"label_en": "View product page",
			"url":      p.PDPURL,
		},
		Compare: map[string]interface{}{
			"label_it": "Confronta",
			"label_en": "Compare",
			"action":   "add_to_compare",
			"payload":  map[string]interface{}{"id": p.ID},
		},
		Lead: map[string]interface{}{
			"label_it": "Richiedi consulenza",
			"label_en": "Request consultation",
			"action":   "open_lead_form",
		},
	}

	return domain.Card{
		Title:    p.Name,
		Subtitle: fmt.Sprintf("%d m² • %d%% • %s", p.CoverageM2, p.MaxSlopePct, perimeter),
		ImageURL: p.ImageURL,
		Price:    &domain.Price{Label: priceLabel(p.PriceEUR)},
		Specs:    specs,
		Pros:     pros,
		Cons:     []string{},
		Score:    math.Round(score*10) / 10,
		Links:    links,
	}
}

// perimeterLabel maps the perimeter capability enum to its display label
func perimeterLabel(perimeterType string) string {
	switch perimeterType {
	case domain.PerimeterWire:
		return "Filo perimetrale"
	case domain.PerimeterVirtual:
		return "Virtuale"
	case domain.PerimeterBoth:
		return "Filo o virtuale"
	}
	return "—"
}

// priceLabel formats a euro amount with dot thousands separators
// ("2.799 €"), or an em dash when the price is unknown
func priceLabel(priceEUR *int) string {
	if priceEUR == nil {
		return "—"
	}
	s := strconv.Itoa(*priceEUR)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, ".") + " €"
}
