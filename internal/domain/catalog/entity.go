package catalog

import (
	"github.com/lumengallery/lumen-api/internal/pkg/imagecdn"
)

// Category groups photos for browsing
type Category string

const (
	CategoryTravel  Category = "travel"
	CategoryMoments Category = "moments"
	CategoryStreet  Category = "street"
)

// Categories returns every category in exhibit display order
func Categories() []Category {
	return []Category{CategoryTravel, CategoryMoments, CategoryStreet}
}

// PickerCategories returns every category in gallery picker order, which
// deliberately differs from the exhibit order.
func PickerCategories() []Category {
	return []Category{CategoryStreet, CategoryTravel, CategoryMoments}
}

// Orientation determines display aspect ratio
type Orientation string

const (
	OrientationLandscape Orientation = "landscape"
	OrientationPortrait  Orientation = "portrait"
)

// Photo is a catalog entry. The catalog is defined entirely at build time;
// photos are immutable and never created or destroyed at runtime.
type Photo struct {
	ID          string
	Source      imagecdn.Source
	Alt         string
	Title       string
	Category    Category
	Series      string
	Orientation Orientation
	Width       int
	Height      int
	Featured    bool
	EtsyURL     string
}

// AspectRatio returns width/height from the native pixel dimensions
func (p *Photo) AspectRatio() float64 {
	if p.Height == 0 {
		return 1
	}
	return float64(p.Width) / float64(p.Height)
}

// Card projects a Photo for display contexts that are not purchase surfaces
// (pickers, strips, grids).
type Card struct {
	ID          string          `json:"id"`
	Source      imagecdn.Source `json:"source"`
	Alt         string          `json:"alt"`
	Title       string          `json:"title"`
	Category    Category        `json:"category"`
	Series      string          `json:"series,omitempty"`
	Orientation Orientation     `json:"orientation"`
	Width       int             `json:"width"`
	Height      int             `json:"height"`
}

// Detail extends Card with a resolved purchase URL.
type Detail struct {
	Card
	EtsyURL string `json:"etsy_url"`
}

// ToCard converts a Photo to its display projection
func (p *Photo) ToCard() Card {
	return Card{
		ID:          p.ID,
		Source:      p.Source,
		Alt:         p.Alt,
		Title:       p.Title,
		Category:    p.Category,
		Series:      p.Series,
		Orientation: p.Orientation,
		Width:       p.Width,
		Height:      p.Height,
	}
}

// ToDetail converts a Photo to its purchase projection, falling back to the
// site-wide storefront when the photo has no listing of its own.
func (p *Photo) ToDetail(defaultEtsyURL string) Detail {
	etsy := p.EtsyURL
	if etsy == "" {
		etsy = defaultEtsyURL
	}
	return Detail{
		Card:    p.ToCard(),
		EtsyURL: etsy,
	}
}
