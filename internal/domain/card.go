package domain

// Price is the formatted price block shown on a card
type Price struct {
	Label string `json:"label"`
	Note  string `json:"note,omitempty"`
}

// SpecItem is a single bilingual spec row on a card
type SpecItem struct {
	LabelIT string `json:"label_it"`
	LabelEN string `json:"label_en"`
	Value   string `json:"value"`
}

// CardLinks groups the card's call-to-action links
type CardLinks struct {
	PDP     map[string]interface{} `json:"pdp"`
	Compare map[string]interface{} `json:"compare"`
	Lead    map[string]interface{} `json:"lead"`
}

// Card is a presentation-ready search result entry
type Card struct {
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle"`
	ImageURL string     `json:"image_url,omitempty"`
	Price    *Price     `json:"price,omitempty"`
	Specs    []SpecItem `json:"specs"`
	Pros     []string   `json:"pros"`
	Cons     []string   `json:"cons"`
	Score    float64    `json:"score"`
	Links    CardLinks  `json:"links"`
}

// SearchResponse is the wire shape of /products/search
type SearchResponse struct {
	Items []Card                 `json:"items"`
	Meta  map[string]interface{} `json:"meta"`
}
