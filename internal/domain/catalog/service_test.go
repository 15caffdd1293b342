package catalog

import (
	"testing"

	"github.com/lumengallery/lumen-api/internal/pkg/imagecdn"
)

func testCatalog() []Photo {
	return []Photo{
		{ID: "t1", Source: imagecdn.Remote("t1_x"), Category: CategoryTravel, Orientation: OrientationLandscape, Width: 3, Height: 2, Featured: true},
		{ID: "t2", Source: imagecdn.Remote("t2_x"), Category: CategoryTravel, Orientation: OrientationPortrait, Width: 2, Height: 3},
		{ID: "t3", Source: imagecdn.Local("/photos/t3.jpg"), Category: CategoryTravel, Orientation: OrientationLandscape, Width: 3, Height: 2},
		{ID: "m1", Source: imagecdn.Remote("m1_x"), Category: CategoryMoments, Orientation: OrientationPortrait, Width: 2, Height: 3, Series: "rooms"},
		{ID: "m2", Source: imagecdn.Remote("m2_x"), Category: CategoryMoments, Orientation: OrientationLandscape, Width: 3, Height: 2, Featured: true},
		{ID: "s1", Source: imagecdn.Remote("s1_x"), Category: CategoryStreet, Orientation: OrientationLandscape, Width: 3, Height: 2, Featured: true},
	}
}

func TestByIDReturnsNilOnMiss(t *testing.T) {
	svc := NewService(testCatalog(), "https://example.com/shop")

	if got := svc.ByID("t1"); got == nil || got.ID != "t1" {
		t.Fatalf("expected t1, got %v", got)
	}
	if got := svc.ByID("nope"); got != nil {
		t.Fatalf("expected nil for unknown id, got %v", got)
	}
}

func TestGroupedByCategoryEmptyIsSliceNotNil(t *testing.T) {
	// Catalog with zero moments photos
	photos := []Photo{
		{ID: "t1", Category: CategoryTravel},
		{ID: "s1", Category: CategoryStreet},
	}
	svc := NewService(photos, "")

	grouped := svc.GroupedByCategory()
	moments, ok := grouped[CategoryMoments]
	if !ok {
		t.Fatal("expected moments key to be present")
	}
	if moments == nil || len(moments) != 0 {
		t.Fatalf("expected empty slice for moments, got %v", moments)
	}
}

func TestByCategoryPreservesCatalogOrder(t *testing.T) {
	svc := NewService(testCatalog(), "")

	travel := svc.ByCategory(CategoryTravel)
	want := []string{"t1", "t2", "t3"}
	if len(travel) != len(want) {
		t.Fatalf("expected %d travel photos, got %d", len(want), len(travel))
	}
	for i, id := range want {
		if travel[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, travel[i].ID)
		}
	}
}

func TestToDetailFallsBackToDefaultEtsyURL(t *testing.T) {
	svc := NewService([]Photo{
		{ID: "p1", EtsyURL: "https://www.etsy.com/listing/42"},
		{ID: "p2"},
	}, "https://example.com/shop")

	if d := svc.DetailByID("p1"); d.EtsyURL != "https://www.etsy.com/listing/42" {
		t.Fatalf("expected listing url, got %s", d.EtsyURL)
	}
	if d := svc.DetailByID("p2"); d.EtsyURL != "https://example.com/shop" {
		t.Fatalf("expected default url, got %s", d.EtsyURL)
	}
}

func TestHeroPhotoPrefersCuratedThenFeaturedLandscape(t *testing.T) {
	// No curated id in this catalog, so the first remote featured landscape wins
	svc := NewService(testCatalog(), "")
	hero := svc.HeroPhoto()
	if hero == nil || hero.ID != "t1" {
		t.Fatalf("expected t1 as hero, got %v", hero)
	}

	// Full catalog carries the curated hero id
	full := NewService(Photos, "")
	hero = full.HeroPhoto()
	if hero == nil || hero.ID != HeroPhotoID {
		t.Fatalf("expected curated hero, got %v", hero)
	}
}

func TestAllSeriesDistinctFirstSeen(t *testing.T) {
	svc := NewService([]Photo{
		{ID: "a", Series: "one"},
		{ID: "b", Series: "two"},
		{ID: "c", Series: "one"},
	}, "")

	series := svc.AllSeries()
	if len(series) != 2 || series[0] != "one" || series[1] != "two" {
		t.Fatalf("unexpected series list: %v", series)
	}
}
