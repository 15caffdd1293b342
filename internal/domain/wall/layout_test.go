package wall

import "testing"

func TestSlotCount(t *testing.T) {
	tests := []struct {
		layout Layout
		want   int
	}{
		{LayoutSingle, 1},
		{LayoutGallery6, 6},
		{LayoutCollage5, 5},
		{LayoutCollage7, 7},
		{LayoutCollage9, 9},
		{Layout("unknown"), 1},
		{Layout(""), 1},
	}

	for _, tt := range tests {
		if got := SlotCount(tt.layout); got != tt.want {
			t.Errorf("SlotCount(%q) = %d, want %d", tt.layout, got, tt.want)
		}
		// Stable across repeated calls
		if got := SlotCount(tt.layout); got != tt.want {
			t.Errorf("SlotCount(%q) second call = %d, want %d", tt.layout, got, tt.want)
		}
	}
}

func TestArrangementUnknownLayoutIsEmpty(t *testing.T) {
	a := Arrangement(Layout("bogus"))
	if a.Container != "" || a.Item != "" {
		t.Fatalf("expected empty descriptors, got %+v", a)
	}
}

func TestSlotSpanCollage5Hero(t *testing.T) {
	tests := []struct {
		layout Layout
		index  int
		want   string
	}{
		{LayoutCollage5, 0, "col-span-3"},
		{LayoutCollage5, 1, "col-span-3"},
		{LayoutCollage5, 2, "col-span-2"},
		{LayoutCollage5, 4, "col-span-2"},
		{LayoutGallery6, 0, ""},
		{LayoutSingle, 0, ""},
	}

	for _, tt := range tests {
		if got := SlotSpan(tt.layout, tt.index); got != tt.want {
			t.Errorf("SlotSpan(%q, %d) = %q, want %q", tt.layout, tt.index, got, tt.want)
		}
	}
}

func TestFrameSpecPerformanceDropsShadowAndTexture(t *testing.T) {
	for _, style := range FrameStyles() {
		perf := FrameSpecFor(style, true)
		if perf.BoxShadow != "" || perf.BackgroundImage != "" {
			t.Errorf("%s performance spec carries shadow/texture: %+v", style, perf)
		}
	}

	full := FrameSpecFor(FrameNaturalWood, false)
	if full.BackgroundImage == "" || full.BackgroundSize != "4px 4px, 100% 100%" {
		t.Fatalf("wood full spec missing grain texture: %+v", full)
	}
	if full.BoxShadow == "" {
		t.Fatal("wood full spec missing shadow")
	}
}

func TestFrameSpecUnknownStyleDefaultsToThinBlack(t *testing.T) {
	got := FrameSpecFor(FrameStyle("gilded"), true)
	want := FrameSpecFor(FrameThinBlack, true)
	if got != want {
		t.Fatalf("expected thin-black fallback, got %+v", got)
	}
}

func TestMatSpec(t *testing.T) {
	if m := MatSpecFor(MatNone); m.InsetPercent != 0 {
		t.Fatalf("none mat should have no inset, got %v", m.InsetPercent)
	}
	if m := MatSpecFor(MatWhite); m.InsetPercent != 8 {
		t.Fatalf("white mat inset = %v, want 8", m.InsetPercent)
	}
}
