package pdp

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Accepted range for free-text price candidates, in euros. Values outside
// this window are almost certainly accessory prices or page noise.
const (
	minPlausiblePrice = 100
	maxPlausiblePrice = 20000
)

// Package-level compiled regex patterns for performance
var (
	// "2.799 €", "2799€", "2 799 €"
	priceBeforeEuroRegex = regexp.MustCompile(`(\d[\d.\s]{0,7})\s*€`)
	// "€ 2.799", "€2799"
	priceAfterEuroRegex = regexp.MustCompile(`€\s*(\d[\d.\s]{0,7})`)
	nonDigitRegex       = regexp.MustCompile(`[^\d]`)
)

// extractPrice runs the layered price strategy over a parsed page:
// structured product data, then price meta tags, then a free-text scan.
func extractPrice(doc *goquery.Document) (int, bool) {
	if price, ok := priceFromStructuredData(doc); ok {
		return price, true
	}
	if price, ok := priceFromMeta(doc); ok {
		return price, true
	}
	return priceFromText(visibleText(doc))
}

// extractImage runs the layered image strategy: structured product data,
// then OpenGraph, then Twitter card meta.
func extractImage(doc *goquery.Document) (string, bool) {
	if img, ok := imageFromStructuredData(doc); ok {
		return img, true
	}
	return imageFromMeta(doc)
}

// structuredProducts collects JSON-LD objects that look like product records:
// declared @type Product, or failing that, any object bearing an "offers"
// field. Malformed blocks are skipped individually; scanning continues.
func structuredProducts(doc *goquery.Document) []map[string]interface{} {
	var out []map[string]interface{}
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		var raw interface{}
		if err := json.Unmarshal([]byte(s.Text()), &raw); err != nil {
			return
		}
		switch v := raw.(type) {
		case map[string]interface{}:
			out = appendIfProduct(out, v)
		case []interface{}:
			for _, item := range v {
				if m, ok := item.(map[string]interface{}); ok {
					out = appendIfProduct(out, m)
				}
			}
		}
	})
	return out
}

func appendIfProduct(dst []map[string]interface{}, m map[string]interface{}) []map[string]interface{} {
	if t, _ := m["@type"].(string); strings.EqualFold(t, "Product") {
		return append(dst, m)
	}
	if _, ok := m["offers"]; ok {
		return append(dst, m)
	}
	return dst
}

// priceFromStructuredData reads offers.price or offers.lowPrice from the
// page's JSON-LD product blocks. Offers may be a single object or a list.
func priceFromStructuredData(doc *goquery.Document) (int, bool) {
	for _, product := range structuredProducts(doc) {
		for _, offer := range offerObjects(product["offers"]) {
			if price, ok := coercePrice(offer["price"]); ok {
				return price, true
			}
			if price, ok := coercePrice(offer["lowPrice"]); ok {
				return price, true
			}
		}
	}
	return 0, false
}

// imageFromStructuredData reads the image field from JSON-LD product blocks:
// a string, or the first element of a list.
func imageFromStructuredData(doc *goquery.Document) (string, bool) {
	for _, product := range structuredProducts(doc) {
		switch img := product["image"].(type) {
		case string:
			if img != "" {
				return img, true
			}
		case []interface{}:
			if len(img) > 0 {
				if s, ok := img[0].(string); ok && s != "" {
					return s, true
				}
			}
		}
	}
	return "", false
}

func offerObjects(offers interface{}) []map[string]interface{} {
	switch v := offers.(type) {
	case map[string]interface{}:
		return []map[string]interface{}{v}
	case []interface{}:
		var out []map[string]interface{}
		for _, item := range v {
			if m, ok := item.(map[string]interface{}); ok {
				out = append(out, m)
			}
		}
		return out
	}
	return nil
}

// coercePrice accepts a numeric or numeric-string JSON value and truncates
// it to whole euros
func coercePrice(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n > 0 {
			return int(n), true
		}
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err == nil && f > 0 {
			return int(f), true
		}
	}
	return 0, false
}

// priceFromMeta reads the price from an itemprop or OpenGraph-style meta tag
func priceFromMeta(doc *goquery.Document) (int, bool) {
	sel := doc.Find(`meta[itemprop="price"]`)
	if sel.Length() == 0 {
		sel = doc.Find(`meta[property="product:price:amount"]`)
	}
	content, exists := sel.First().Attr("content")
	if !exists {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(content), 64)
	if err != nil || f <= 0 {
		return 0, false
	}
	return int(f), true
}

// visibleText extracts the page's visible text, dropping script and style
// contents so JSON-LD digits do not pollute the free-text scan
func visibleText(doc *goquery.Document) string {
	body := doc.Find("body")
	body.Find("script, style, noscript").Remove()
	return body.Text()
}

// priceFromText scans free text for euro-adjacent numeric patterns such as
// "2.799 €", "2799€" or "€ 2.799". Among plausible candidates the maximum
// wins: larger values are more likely the machine itself than an accessory.
func priceFromText(text string) (int, bool) {
	var candidates []int
	for _, re := range []*regexp.Regexp{priceBeforeEuroRegex, priceAfterEuroRegex} {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			digits := nonDigitRegex.ReplaceAllString(m[1], "")
			if digits == "" {
				continue
			}
			n, err := strconv.Atoi(digits)
			if err != nil {
				continue
			}
			if n >= minPlausiblePrice && n <= maxPlausiblePrice {
				candidates = append(candidates, n)
			}
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}
	best := candidates[0]
	for _, n := range candidates[1:] {
		if n > best {
			best = n
		}
	}
	return best, true
}

// imageFromMeta falls back to og:image, then twitter:image
func imageFromMeta(doc *goquery.Document) (string, bool) {
	if content, exists := doc.Find(`meta[property="og:image"]`).First().Attr("content"); exists && content != "" {
		return content, true
	}
	if content, exists := doc.Find(`meta[name="twitter:image"]`).First().Attr("content"); exists && content != "" {
		return content, true
	}
	return "", false
}
