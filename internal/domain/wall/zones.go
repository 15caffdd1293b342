package wall

import (
	"github.com/lumengallery/lumen-api/internal/domain/catalog"
)

// EnvBackgrounds maps each environment to its room photograph
var EnvBackgrounds = map[Environment]Background{
	EnvironmentHome:     {AssetID: "home_ehrv5c", Fallback: "/photos/travel-01.jpg"},
	EnvironmentOffice:   {AssetID: "OFFICE_BACKGROUND_pjldjl", Fallback: "/photos/moments-01.jpg"},
	EnvironmentBusiness: {AssetID: "coffeehouse_qg2maq", Fallback: "/photos/street-01.jpg"},
}

// zoneOverrideKey selects the most specific zone for a layout. The single
// layout splits further by the first photo's orientation because a lone
// portrait sits very differently on a wall than a lone landscape.
type zoneOverrideKey string

const (
	overrideSingleLandscape zoneOverrideKey = "single-landscape"
	overrideSinglePortrait  zoneOverrideKey = "single-portrait"
)

type wallZone struct {
	base      Zone
	overrides map[zoneOverrideKey]Zone
}

// wallZones is hand-tuned calibration data per background photograph. The
// percentages are not derivable; they were measured against each image.
var wallZones = map[Environment]wallZone{
	EnvironmentHome: {
		base: Zone{Top: 19, Left: 35.25, Width: 29.5, Height: 19.6},
		overrides: map[zoneOverrideKey]Zone{
			overrideSingleLandscape: {Top: 22, Left: 40.25, Width: 19.5, Height: 17.2},
			overrideSinglePortrait:  {Top: 8.85, Left: 42.08, Width: 15.85, Height: 40.01},
		},
	},
	EnvironmentOffice: {
		base: Zone{Top: 25, Left: 16.25, Width: 47.5, Height: 42.75},
		overrides: map[zoneOverrideKey]Zone{
			overrideSinglePortrait: {Top: 27, Left: 28.6, Width: 22.8, Height: 42.75},
		},
	},
	EnvironmentBusiness: {
		base: Zone{Top: 18, Left: 32.8, Width: 34.4, Height: 27.5},
		overrides: map[zoneOverrideKey]Zone{
			overrideSingleLandscape: {Top: 20, Left: 33.8, Width: 32.4, Height: 28.4},
			overrideSinglePortrait:  {Top: 18, Left: 41.9, Width: 16.2, Height: 36.5},
		},
	},
}

// defaultTransforms is the per-(environment, layout) nudge table. All
// entries are currently identity; the table exists so future calibration
// lands as data, not code.
var defaultTransforms = func() map[Environment]map[Layout]Transform {
	table := make(map[Environment]map[Layout]Transform, len(Environments()))
	for _, env := range Environments() {
		table[env] = make(map[Layout]Transform, len(Layouts()))
		for _, layout := range Layouts() {
			table[env][layout] = Transform{X: 0, Y: 0, Scale: 1}
		}
	}
	return table
}()

// SafeZone resolves the wall zone for an environment and layout. Resolution
// order: orientation-specific override (single layout only), then layout
// override, then the environment's base zone. Unknown environments fall
// back to home's zone so a caller bug stays visually inert.
func SafeZone(env Environment, layout Layout, firstOrientation catalog.Orientation) Zone {
	wz, ok := wallZones[env]
	if !ok {
		wz = wallZones[EnvironmentHome]
	}

	if layout == LayoutSingle {
		key := overrideSingleLandscape
		if firstOrientation == catalog.OrientationPortrait {
			key = overrideSinglePortrait
		}
		if override, ok := wz.overrides[key]; ok {
			return override
		}
	}

	if override, ok := wz.overrides[zoneOverrideKey(layout)]; ok {
		return override
	}

	return wz.base
}

// NudgeTransform returns the calibration nudge for an environment and
// layout, identity when no entry exists.
func NudgeTransform(env Environment, layout Layout) Transform {
	if byLayout, ok := defaultTransforms[env]; ok {
		if t, ok := byLayout[layout]; ok {
			return t
		}
	}
	return Transform{X: 0, Y: 0, Scale: 1}
}
