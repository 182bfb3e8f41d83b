package pdp

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docFrom(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestPriceFromStructuredData(t *testing.T) {
	tests := []struct {
		name  string
		html  string
		want  int
		found bool
	}{
		{
			name:  "numeric price",
			html:  `<script type="application/ld+json">{"@type":"Product","offers":{"price":2299}}</script>`,
			want:  2299,
			found: true,
		},
		{
			name:  "string price with decimals truncates",
			html:  `<script type="application/ld+json">{"@type":"Product","offers":{"price":"2299.90"}}</script>`,
			want:  2299,
			found: true,
		},
		{
			name:  "lowPrice fallback",
			html:  `<script type="application/ld+json">{"@type":"Product","offers":{"lowPrice":"1799","highPrice":"2299"}}</script>`,
			want:  1799,
			found: true,
		},
		{
			name:  "offers list",
			html:  `<script type="application/ld+json">{"@type":"Product","offers":[{"price":"2499"}]}</script>`,
			want:  2499,
			found: true,
		},
		{
			name:  "top-level list of objects",
			html:  `<script type="application/ld+json">[{"@type":"BreadcrumbList"},{"@type":"Product","offers":{"price":999}}]</script>`,
			want:  999,
			found: true,
		},
		{
			name:  "untyped object with offers field still counts",
			html:  `<script type="application/ld+json">{"name":"thing","offers":{"price":1299}}</script>`,
			want:  1299,
			found: true,
		},
		{
			name:  "non-product block ignored",
			html:  `<script type="application/ld+json">{"@type":"Organization","name":"STIGA"}</script>`,
			found: false,
		},
		{
			name:  "no structured data",
			html:  `<p>hello</p>`,
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := docFrom(t, "<html><head>"+tt.html+"</head><body></body></html>")
			got, found := priceFromStructuredData(doc)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestPriceFromMeta(t *testing.T) {
	t.Run("itemprop price", func(t *testing.T) {
		doc := docFrom(t, `<html><head><meta itemprop="price" content="2799.00"></head></html>`)
		got, found := priceFromMeta(doc)
		assert.True(t, found)
		assert.Equal(t, 2799, got)
	})

	t.Run("opengraph product price", func(t *testing.T) {
		doc := docFrom(t, `<html><head><meta property="product:price:amount" content="1899"></head></html>`)
		got, found := priceFromMeta(doc)
		assert.True(t, found)
		assert.Equal(t, 1899, got)
	})

	t.Run("unparseable content", func(t *testing.T) {
		doc := docFrom(t, `<html><head><meta itemprop="price" content="call us"></head></html>`)
		_, found := priceFromMeta(doc)
		assert.False(t, found)
	})
}

func TestPriceFromText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  int
		found bool
	}{
		{"dotted thousands before euro", "STIGA A 5000 a 3.799 € da noi", 3799, true},
		{"no separator glued euro", "oggi 2799€ invece di 3199€", 3199, true},
		{"euro sign before amount", "prezzo: € 2.299", 2299, true},
		{"space grouped digits", "2 799 € spedizione inclusa", 2799, true},
		{"maximum wins over accessories", "lama 189 € robot 2.999 € kit 249 €", 2999, true},
		{"below plausible floor rejected", "cavo 59 €", 0, false},
		{"above plausible ceiling rejected", "31.999 €", 0, false},
		{"no euro adjacency", "costa 2999 e basta", 0, false},
		{"empty text", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := priceFromText(tt.text)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVisibleTextExcludesScripts(t *testing.T) {
	doc := docFrom(t, `<html><body>
		<script>var junk = "9.999 €";</script>
		<p>vero prezzo 1.299 €</p>
	</body></html>`)

	got, found := priceFromText(visibleText(doc))
	assert.True(t, found)
	assert.Equal(t, 1299, got)
}

func TestImageFromStructuredData_List(t *testing.T) {
	doc := docFrom(t, `<html><head><script type="application/ld+json">
		{"@type":"Product","image":["https://cdn/first.jpg","https://cdn/second.jpg"],"offers":{"price":1}}
	</script></head></html>`)

	got, found := imageFromStructuredData(doc)
	assert.True(t, found)
	assert.Equal(t, "https://cdn/first.jpg", got)
}
