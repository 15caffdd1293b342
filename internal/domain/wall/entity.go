package wall

import (
	"github.com/lumengallery/lumen-api/internal/pkg/imagecdn"
)

// The virtual room canvas is fixed at 2400x1600 units regardless of the
// client viewport. Every zone percentage is relative to this rectangle.
const (
	BaseWidth  = 2400.0
	BaseHeight = 1600.0
)

// Environment is a named background scene
type Environment string

const (
	EnvironmentHome     Environment = "home"
	EnvironmentOffice   Environment = "office"
	EnvironmentBusiness Environment = "business"
)

// Environments returns every environment in toolbar display order
func Environments() []Environment {
	return []Environment{EnvironmentHome, EnvironmentOffice, EnvironmentBusiness}
}

// EnvironmentLabel returns the display label for an environment
func EnvironmentLabel(env Environment) string {
	switch env {
	case EnvironmentHome:
		return "Home"
	case EnvironmentOffice:
		return "Office"
	case EnvironmentBusiness:
		return "Business"
	default:
		return ""
	}
}

// Layout is a named slot arrangement template
type Layout string

const (
	LayoutSingle   Layout = "single"
	LayoutGallery6 Layout = "gallery-6"
	LayoutCollage5 Layout = "collage-5"
	LayoutCollage7 Layout = "collage-7"
	LayoutCollage9 Layout = "collage-9"
)

// Layouts returns every layout in toolbar display order
func Layouts() []Layout {
	return []Layout{LayoutSingle, LayoutGallery6, LayoutCollage5, LayoutCollage7, LayoutCollage9}
}

// LayoutLabel returns the display label for a layout
func LayoutLabel(layout Layout) string {
	switch layout {
	case LayoutSingle:
		return "Single"
	case LayoutGallery6:
		return "Grid"
	case LayoutCollage5, LayoutCollage7, LayoutCollage9:
		return "Collage"
	default:
		return ""
	}
}

// FrameStyle selects the frame rendering parameters
type FrameStyle string

const (
	FrameThinBlack   FrameStyle = "thin-black"
	FrameThinWhite   FrameStyle = "thin-white"
	FrameNaturalWood FrameStyle = "natural-wood"
)

// FrameStyles returns every frame style in display order
func FrameStyles() []FrameStyle {
	return []FrameStyle{FrameThinBlack, FrameThinWhite, FrameNaturalWood}
}

// MatOption selects the mat board treatment inside the frame
type MatOption string

const (
	MatNone  MatOption = "none"
	MatWhite MatOption = "white"
)

// Zone is a rectangle in percent-of-canvas coordinates marking the empty
// wall area of a background photo where art may be composited.
type Zone struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Transform is a hand-tuned per-(environment, layout) nudge applied inside
// the safe zone to correct for perspective in the background photograph.
type Transform struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Scale float64 `json:"scale"`
}

// Background identifies an environment's room photograph: a remote CDN
// asset with a local fallback served when the CDN is unconfigured.
type Background struct {
	AssetID  string
	Fallback string
}

// Source returns the authoritative image source for the background
func (b Background) Source() imagecdn.Source {
	if b.AssetID != "" {
		return imagecdn.Remote(b.AssetID)
	}
	return imagecdn.Local(b.Fallback)
}

// FallbackSource returns the local fallback source
func (b Background) FallbackSource() imagecdn.Source {
	return imagecdn.Local(b.Fallback)
}
