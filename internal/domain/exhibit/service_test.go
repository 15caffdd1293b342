package exhibit

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/lumengallery/lumen-api/internal/domain/catalog"
	"github.com/lumengallery/lumen-api/internal/pkg/imagecdn"
)

// manualClock collects scheduled transitions and fires them on demand
type manualClock struct {
	mu      sync.Mutex
	pending []*manualTimer
}

type manualTimer struct {
	fn        func()
	cancelled bool
}

func (c *manualClock) AfterFunc(d time.Duration, fn func()) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{fn: fn}
	c.pending = append(c.pending, t)
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		t.cancelled = true
	}
}

// Fire runs every timer scheduled so far
func (c *manualClock) Fire() {
	c.mu.Lock()
	timers := c.pending
	c.pending = nil
	c.mu.Unlock()

	for _, t := range timers {
		if !t.cancelled {
			t.fn()
		}
	}
}

func newTestExhibit() (*Service, *manualClock) {
	photos := []catalog.Photo{
		{ID: "p1", Source: imagecdn.Remote("p1_x"), Category: catalog.CategoryTravel, Orientation: catalog.OrientationLandscape, Width: 3, Height: 2},
		{ID: "p2", Source: imagecdn.Remote("p2_x"), Category: catalog.CategoryMoments, Orientation: catalog.OrientationPortrait, Width: 2, Height: 3},
	}
	clock := &manualClock{}
	return NewService(catalog.NewService(photos, ""), clock, time.Hour), clock
}

func TestSpotlightOpenCycle(t *testing.T) {
	svc, clock := newTestExhibit()
	session := svc.Create()

	got, err := svc.OpenSpotlight(session.ID, "p1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Spotlight != SpotlightOpening {
		t.Fatalf("state = %s, want opening", got.Spotlight)
	}
	if got.PhotoID != "p1" || !got.ScrollLocked {
		t.Fatalf("open should set photo and lock scroll: %+v", got)
	}
	if got.QueryParam() != "p1" {
		t.Fatalf("query param = %q, want p1", got.QueryParam())
	}

	clock.Fire()
	got, err = svc.Get(session.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Spotlight != SpotlightOpen {
		t.Fatalf("state = %s, want open after transition", got.Spotlight)
	}
}

func TestSpotlightCloseHoldsPhotoThroughClosing(t *testing.T) {
	svc, clock := newTestExhibit()
	session := svc.Create()

	if _, err := svc.OpenSpotlight(session.ID, "p1"); err != nil {
		t.Fatal(err)
	}
	clock.Fire()

	got, err := svc.CloseSpotlight(session.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Spotlight != SpotlightClosing {
		t.Fatalf("state = %s, want closing", got.Spotlight)
	}
	// The exit animation still needs the photo; only the param drops
	if got.PhotoID != "p1" {
		t.Fatal("closing must keep the photo until the transition ends")
	}
	if got.QueryParam() != "" {
		t.Fatalf("query param = %q, want empty while closing", got.QueryParam())
	}
	if !got.ScrollLocked {
		t.Fatal("scroll stays locked until fully closed")
	}

	clock.Fire()
	got, err = svc.Get(session.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Spotlight != SpotlightClosed {
		t.Fatalf("state = %s, want closed", got.Spotlight)
	}
	if got.PhotoID != "" || got.ScrollLocked {
		t.Fatalf("closed must clear photo and release scroll: %+v", got)
	}
}

func TestSpotlightReopenDuringClosingRestartsCycle(t *testing.T) {
	svc, clock := newTestExhibit()
	session := svc.Create()

	if _, err := svc.OpenSpotlight(session.ID, "p1"); err != nil {
		t.Fatal(err)
	}
	clock.Fire()
	if _, err := svc.CloseSpotlight(session.ID); err != nil {
		t.Fatal(err)
	}

	// Reopen before the close transition lands
	got, err := svc.OpenSpotlight(session.ID, "p2")
	if err != nil {
		t.Fatal(err)
	}
	if got.Spotlight != SpotlightOpening || got.PhotoID != "p2" {
		t.Fatalf("reopen mid-close failed: %+v", got)
	}

	// The stale close timer must not regress the new cycle
	clock.Fire()
	got, err = svc.Get(session.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Spotlight != SpotlightOpen || got.PhotoID != "p2" {
		t.Fatalf("state = %s photo = %s, want open p2", got.Spotlight, got.PhotoID)
	}
}

func TestReconcileRemovedParamDefersClose(t *testing.T) {
	svc, clock := newTestExhibit()
	session := svc.Create()

	if _, err := svc.OpenSpotlight(session.ID, "p1"); err != nil {
		t.Fatal(err)
	}
	clock.Fire()

	// Back button removed the param; reconcile must not mutate synchronously
	got, err := svc.Reconcile(session.ID, "")
	if err != nil {
		t.Fatal(err)
	}
	if got.Spotlight != SpotlightOpen {
		t.Fatalf("reconcile applied a synchronous close: %s", got.Spotlight)
	}

	// Deferred close fires, then the transition completes
	clock.Fire()
	got, _ = svc.Get(session.ID)
	if got.Spotlight != SpotlightClosing {
		t.Fatalf("state = %s, want closing after deferred close", got.Spotlight)
	}
	clock.Fire()
	got, _ = svc.Get(session.ID)
	if got.Spotlight != SpotlightClosed {
		t.Fatalf("state = %s, want closed", got.Spotlight)
	}
}

func TestReconcilePresentParamOpensViewer(t *testing.T) {
	svc, clock := newTestExhibit()
	session := svc.Create()

	got, err := svc.Reconcile(session.ID, "p2")
	if err != nil {
		t.Fatal(err)
	}
	if got.Spotlight != SpotlightOpening || got.PhotoID != "p2" {
		t.Fatalf("deep link should open the viewer: %+v", got)
	}

	clock.Fire()
	got, _ = svc.Get(session.ID)
	if got.Spotlight != SpotlightOpen {
		t.Fatalf("state = %s, want open", got.Spotlight)
	}
}

func TestReconcileUnknownParamIsIgnored(t *testing.T) {
	svc, _ := newTestExhibit()
	session := svc.Create()

	got, err := svc.Reconcile(session.ID, "nope")
	if err != nil {
		t.Fatal(err)
	}
	if got.Spotlight != SpotlightClosed {
		t.Fatalf("unknown photo id opened the viewer: %s", got.Spotlight)
	}
}

func TestOpenSpotlightUnknownPhoto(t *testing.T) {
	svc, _ := newTestExhibit()
	session := svc.Create()

	if _, err := svc.OpenSpotlight(session.ID, "nope"); !errors.Is(err, ErrPhotoNotFound) {
		t.Fatalf("expected ErrPhotoNotFound, got %v", err)
	}
}

func TestCloseSpotlightWhenClosedIsNoop(t *testing.T) {
	svc, _ := newTestExhibit()
	session := svc.Create()

	got, err := svc.CloseSpotlight(session.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Spotlight != SpotlightClosed {
		t.Fatalf("state = %s, want closed", got.Spotlight)
	}
}

func TestSetCategory(t *testing.T) {
	svc, _ := newTestExhibit()
	session := svc.Create()

	if session.Category != catalog.CategoryTravel {
		t.Fatalf("default category = %s, want travel", session.Category)
	}

	got, err := svc.SetCategory(session.ID, catalog.CategoryStreet)
	if err != nil {
		t.Fatal(err)
	}
	if got.Category != catalog.CategoryStreet {
		t.Fatalf("category = %s, want street", got.Category)
	}
}
