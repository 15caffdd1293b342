package wall

import (
	"testing"

	"github.com/lumengallery/lumen-api/internal/domain/catalog"
)

func TestSafeZoneOverrideResolution(t *testing.T) {
	base := SafeZone(EnvironmentHome, LayoutGallery6, "")
	landscape := SafeZone(EnvironmentHome, LayoutSingle, catalog.OrientationLandscape)
	portrait := SafeZone(EnvironmentHome, LayoutSingle, catalog.OrientationPortrait)

	if landscape == base {
		t.Fatal("single-landscape should differ from the base zone")
	}
	if portrait == base {
		t.Fatal("single-portrait should differ from the base zone")
	}
	if portrait == landscape {
		t.Fatal("single-portrait should differ from single-landscape")
	}

	want := Zone{Top: 8.85, Left: 42.08, Width: 15.85, Height: 40.01}
	if portrait != want {
		t.Fatalf("home single-portrait = %+v, want %+v", portrait, want)
	}
}

func TestSafeZoneFallsToBaseWithoutOverride(t *testing.T) {
	// Office has a single-portrait override but no single-landscape one
	base := SafeZone(EnvironmentOffice, LayoutGallery6, "")
	landscape := SafeZone(EnvironmentOffice, LayoutSingle, catalog.OrientationLandscape)
	if landscape != base {
		t.Fatalf("office single-landscape should use the base zone, got %+v", landscape)
	}

	portrait := SafeZone(EnvironmentOffice, LayoutSingle, catalog.OrientationPortrait)
	if portrait == base {
		t.Fatal("office single-portrait should use its override")
	}
}

func TestSafeZoneEmptyOrientationUsesLandscape(t *testing.T) {
	// An empty first slot renders the single layout as landscape
	unset := SafeZone(EnvironmentHome, LayoutSingle, "")
	landscape := SafeZone(EnvironmentHome, LayoutSingle, catalog.OrientationLandscape)
	if unset != landscape {
		t.Fatalf("unset orientation = %+v, want landscape zone %+v", unset, landscape)
	}
}

func TestSafeZoneUnknownEnvironmentStaysInert(t *testing.T) {
	got := SafeZone(Environment("garage"), LayoutGallery6, "")
	want := SafeZone(EnvironmentHome, LayoutGallery6, "")
	if got != want {
		t.Fatalf("unknown environment = %+v, want home base %+v", got, want)
	}
}

func TestNudgeTransformDefaultsToIdentity(t *testing.T) {
	identity := Transform{X: 0, Y: 0, Scale: 1}
	for _, env := range Environments() {
		for _, layout := range Layouts() {
			if got := NudgeTransform(env, layout); got != identity {
				t.Errorf("transform(%s, %s) = %+v, want identity", env, layout, got)
			}
		}
	}
	if got := NudgeTransform(Environment("garage"), Layout("bogus")); got != identity {
		t.Errorf("unknown pair = %+v, want identity", got)
	}
}

func TestEnvBackgroundsCoverEveryEnvironment(t *testing.T) {
	for _, env := range Environments() {
		bg, ok := EnvBackgrounds[env]
		if !ok {
			t.Fatalf("missing background for %s", env)
		}
		if bg.AssetID == "" || bg.Fallback == "" {
			t.Fatalf("%s background incomplete: %+v", env, bg)
		}
	}
}
