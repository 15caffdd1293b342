package wall

import (
	"math/rand"
	"testing"

	"github.com/lumengallery/lumen-api/internal/domain/catalog"
	"github.com/lumengallery/lumen-api/internal/pkg/imagecdn"
)

func TestZoomAlwaysCoversViewport(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		w := rng.Float64()*5000 + 1
		h := rng.Float64()*5000 + 1
		zoom := Zoom(w, h)
		if BaseWidth*zoom < w {
			t.Fatalf("room width %v does not cover viewport %v", BaseWidth*zoom, w)
		}
		if BaseHeight*zoom < h {
			t.Fatalf("room height %v does not cover viewport %v", BaseHeight*zoom, h)
		}
	}
}

func TestZoomCoversAtRoundingBoundary(t *testing.T) {
	// A height whose division by 1600 rounds down, so the naive product
	// lands one ulp below the viewport
	h := 3435.115364335547
	zoom := Zoom(100, h)
	if BaseHeight*zoom < h {
		t.Fatalf("room height %v does not cover viewport %v", BaseHeight*zoom, h)
	}

	w := 3435.115364335547
	zoom = Zoom(w, 100)
	if BaseWidth*zoom < w {
		t.Fatalf("room width %v does not cover viewport %v", BaseWidth*zoom, w)
	}
}

func TestPlaceCentersOverhang(t *testing.T) {
	// A tall viewport: height drives the zoom, width overhangs
	p := Place(800, 1600)
	if p.Zoom != 1 {
		t.Fatalf("zoom = %v, want 1", p.Zoom)
	}
	if p.OffsetX != (800-2400)/2.0 {
		t.Fatalf("offsetX = %v, want %v", p.OffsetX, (800-2400)/2.0)
	}
	if p.OffsetY != 0 {
		t.Fatalf("offsetY = %v, want 0", p.OffsetY)
	}
}

func testService() *Service {
	return NewService(imagecdn.NewResolver("demo", "/assets"))
}

func testCard(id string, orientation catalog.Orientation, w, h int) *catalog.Card {
	return &catalog.Card{
		ID:          id,
		Source:      imagecdn.Remote(id + "_asset"),
		Orientation: orientation,
		Width:       w,
		Height:      h,
	}
}

func TestBuildPlanSlotCountMatchesLayout(t *testing.T) {
	svc := testService()

	tests := []struct {
		layout Layout
		want   int
	}{
		{LayoutSingle, 1},
		{LayoutGallery6, 6},
		{LayoutCollage9, 9},
		{Layout("bogus"), 1},
	}

	for _, tt := range tests {
		plan := svc.BuildPlan(PlanInput{
			Environment:    EnvironmentHome,
			Layout:         tt.layout,
			FrameStyle:     FrameThinBlack,
			MatOption:      MatNone,
			ViewportWidth:  1280,
			ViewportHeight: 800,
		})
		if len(plan.Slots) != tt.want {
			t.Errorf("layout %q: %d slots, want %d", tt.layout, len(plan.Slots), tt.want)
		}
	}
}

func TestBuildPlanUnknownLayoutHasEmptyArrangement(t *testing.T) {
	svc := testService()
	plan := svc.BuildPlan(PlanInput{
		Environment:    EnvironmentHome,
		Layout:         Layout("bogus"),
		FrameStyle:     FrameThinBlack,
		MatOption:      MatNone,
		ViewportWidth:  1280,
		ViewportHeight: 800,
	})
	if plan.Arrangement.Container != "" || plan.Arrangement.Item != "" {
		t.Fatalf("expected empty arrangement, got %+v", plan.Arrangement)
	}
}

func TestBuildPlanUsesFirstSlotOrientationForSingle(t *testing.T) {
	svc := testService()

	in := PlanInput{
		Environment:    EnvironmentHome,
		Layout:         LayoutSingle,
		FrameStyle:     FrameThinBlack,
		MatOption:      MatNone,
		ViewportWidth:  1280,
		ViewportHeight: 800,
	}
	in.Slots[0] = testCard("p", catalog.OrientationPortrait, 2, 3)

	plan := svc.BuildPlan(in)
	want := SafeZone(EnvironmentHome, LayoutSingle, catalog.OrientationPortrait)
	if plan.Zone != want {
		t.Fatalf("zone = %+v, want portrait override %+v", plan.Zone, want)
	}
}

func TestBuildPlanSlotDetails(t *testing.T) {
	svc := testService()

	in := PlanInput{
		Environment:    EnvironmentOffice,
		Layout:         LayoutCollage5,
		FrameStyle:     FrameThinWhite,
		MatOption:      MatWhite,
		ActiveSlot:     2,
		ViewportWidth:  1280,
		ViewportHeight: 800,
	}
	in.Slots[0] = testCard("a", catalog.OrientationLandscape, 3000, 2000)

	plan := svc.BuildPlan(in)

	if !plan.Slots[0].Occupied || plan.Slots[0].Photo == nil {
		t.Fatal("slot 0 should be occupied")
	}
	if plan.Slots[0].AspectRatio != 1.5 {
		t.Fatalf("aspect ratio = %v, want 1.5", plan.Slots[0].AspectRatio)
	}
	if plan.Slots[0].Span != "col-span-3" {
		t.Fatalf("slot 0 span = %q, want col-span-3", plan.Slots[0].Span)
	}
	if plan.Slots[1].Occupied || plan.Slots[1].Photo != nil {
		t.Fatal("slot 1 should be empty")
	}
	if plan.Slots[3].DropTarget != "slot-3" {
		t.Fatalf("drop target = %q, want slot-3", plan.Slots[3].DropTarget)
	}
	if !plan.Slots[2].Active || plan.Slots[0].Active {
		t.Fatal("active flag should mark exactly the active slot")
	}
	if plan.Mat.InsetPercent != 8 {
		t.Fatalf("mat inset = %v, want 8", plan.Mat.InsetPercent)
	}
}

func TestBuildPlanClampsActiveSlotOutOfRange(t *testing.T) {
	svc := testService()
	plan := svc.BuildPlan(PlanInput{
		Environment:    EnvironmentHome,
		Layout:         LayoutSingle,
		FrameStyle:     FrameThinBlack,
		MatOption:      MatNone,
		ActiveSlot:     7,
		ViewportWidth:  1280,
		ViewportHeight: 800,
	})
	if plan.ActiveSlot != 0 {
		t.Fatalf("active slot = %d, want 0", plan.ActiveSlot)
	}
}

func TestBuildPlanPerformanceModeFrame(t *testing.T) {
	svc := testService()
	plan := svc.BuildPlan(PlanInput{
		Environment:     EnvironmentHome,
		Layout:          LayoutGallery6,
		FrameStyle:      FrameNaturalWood,
		MatOption:       MatNone,
		ViewportWidth:   1280,
		ViewportHeight:  800,
		PerformanceMode: true,
	})
	if plan.Frame.BoxShadow != "" || plan.Frame.BackgroundImage != "" {
		t.Fatalf("performance frame carries expensive layers: %+v", plan.Frame)
	}
}
