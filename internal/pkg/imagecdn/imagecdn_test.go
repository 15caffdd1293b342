package imagecdn

import (
	"strings"
	"testing"
)

func TestResolveRemoteBuildsTransformString(t *testing.T) {
	r := NewResolver("demo", "")

	url := r.Resolve(Remote("home_ehrv5c"), Options{Width: 800, Height: 600, Quality: "auto", Format: "auto"})

	want := "https://res.cloudinary.com/demo/image/upload/w_800,h_600,c_limit,q_auto,f_auto/home_ehrv5c"
	if url != want {
		t.Fatalf("unexpected url:\n got %s\nwant %s", url, want)
	}
}

func TestResolveRemoteNoTransforms(t *testing.T) {
	r := NewResolver("demo", "")

	url := r.Resolve(Remote("home_ehrv5c"), Options{})
	if url != "https://res.cloudinary.com/demo/image/upload/home_ehrv5c" {
		t.Fatalf("unexpected url: %s", url)
	}
}

func TestResolveCapsDimensions(t *testing.T) {
	r := NewResolver("demo", "")

	url := r.Resolve(Remote("big"), Options{Width: 8000, Height: 6000})
	if !strings.Contains(url, "w_2000") || !strings.Contains(url, "h_2000") {
		t.Fatalf("expected capped dimensions in %s", url)
	}
	if !strings.Contains(url, "c_limit") {
		t.Fatalf("expected c_limit in %s", url)
	}
}

func TestResolveUnconfiguredFallsBackToPlaceholder(t *testing.T) {
	r := NewResolver("", "")

	url := r.Resolve(Remote("anything"), Options{Width: 800, Height: 600})
	if url != "https://via.placeholder.com/800x600?text=Image+Unavailable" {
		t.Fatalf("unexpected placeholder url: %s", url)
	}
}

func TestResolveLocalPrefixesAssetsBase(t *testing.T) {
	r := NewResolver("demo", "/assets")

	url := r.Resolve(Local("/photos/travel-01.jpg"), Options{})
	if url != "/assets/photos/travel-01.jpg" {
		t.Fatalf("unexpected local url: %s", url)
	}

	url = r.Resolve(Local("photos/travel-01.jpg"), Options{Width: 3000})
	if url != "/assets/photos/travel-01.jpg?w=2000" {
		t.Fatalf("expected capped width hint, got %s", url)
	}
}

func TestPlaceholderDefaults(t *testing.T) {
	if got := PlaceholderURL(0, 0); got != "https://via.placeholder.com/800x600?text=Image+Unavailable" {
		t.Fatalf("unexpected default placeholder: %s", got)
	}
}
