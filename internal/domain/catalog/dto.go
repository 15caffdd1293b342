package catalog

import (
	"github.com/lumengallery/lumen-api/internal/pkg/imagecdn"
)

// Delivery widths for the two standard display contexts
const (
	displayWidth = 1600
	thumbWidth   = 400
)

// CardResponse represents a photo card in API responses
type CardResponse struct {
	ID          string      `json:"id"`
	Alt         string      `json:"alt"`
	Title       string      `json:"title"`
	Category    Category    `json:"category"`
	Series      string      `json:"series,omitempty"`
	Orientation Orientation `json:"orientation"`
	Width       int         `json:"width"`
	Height      int         `json:"height"`
	ImageURL    string      `json:"image_url"`
	ThumbURL    string      `json:"thumb_url"`
}

// DetailResponse represents a purchasable photo in API responses
type DetailResponse struct {
	CardResponse
	EtsyURL string `json:"etsy_url"`
}

// CardResponseFrom resolves a card's delivery URLs
func CardResponseFrom(c Card, resolver *imagecdn.Resolver) *CardResponse {
	return &CardResponse{
		ID:          c.ID,
		Alt:         c.Alt,
		Title:       c.Title,
		Category:    c.Category,
		Series:      c.Series,
		Orientation: c.Orientation,
		Width:       c.Width,
		Height:      c.Height,
		ImageURL: resolver.Resolve(c.Source, imagecdn.Options{
			Width:   displayWidth,
			Quality: "auto",
			Format:  "auto",
		}),
		ThumbURL: resolver.Resolve(c.Source, imagecdn.Options{
			Width:   thumbWidth,
			Quality: "auto",
			Format:  "auto",
		}),
	}
}

// DetailResponseFrom resolves a detail's delivery URLs
func DetailResponseFrom(d Detail, resolver *imagecdn.Resolver) *DetailResponse {
	return &DetailResponse{
		CardResponse: *CardResponseFrom(d.Card, resolver),
		EtsyURL:      d.EtsyURL,
	}
}

// CategoryGroupResponse is one category's cards in a fixed presentation
// order
type CategoryGroupResponse struct {
	Category Category        `json:"category"`
	Photos   []*CardResponse `json:"photos"`
}

// CardResponsesFrom maps a card slice
func CardResponsesFrom(cards []Card, resolver *imagecdn.Resolver) []*CardResponse {
	items := make([]*CardResponse, len(cards))
	for i, c := range cards {
		items[i] = CardResponseFrom(c, resolver)
	}
	return items
}
