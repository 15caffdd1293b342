package wall

import (
	"fmt"

	"github.com/lumengallery/lumen-api/internal/domain/catalog"
	"github.com/lumengallery/lumen-api/internal/pkg/imagecdn"
)

// Background photos are delivered wide; they fill the whole room canvas.
const backgroundWidth = 2400

// Service computes wall render plans. It is stateless; all state lives in
// the caller's design session.
type Service struct {
	resolver *imagecdn.Resolver
}

// NewService creates a wall service
func NewService(resolver *imagecdn.Resolver) *Service {
	return &Service{resolver: resolver}
}

// BackgroundURL resolves an environment's room photograph. The remote asset
// is preferred; when the CDN is unconfigured the local fallback photo is
// served instead of a placeholder, because the room image is structural.
func (s *Service) BackgroundURL(env Environment) string {
	bg, ok := EnvBackgrounds[env]
	if !ok {
		bg = EnvBackgrounds[EnvironmentHome]
	}
	source := bg.Source()
	if source.IsRemote() && !s.resolver.Configured() {
		source = bg.FallbackSource()
	}
	return s.resolver.Resolve(source, imagecdn.Options{
		Width:   backgroundWidth,
		Quality: "auto",
		Format:  "auto",
	})
}

// BuildPlan computes the render plan for one configurator state. Pure given
// its input; the same input always produces the same plan.
func (s *Service) BuildPlan(in PlanInput) Plan {
	count := SlotCount(in.Layout)

	var firstOrientation catalog.Orientation
	if in.Slots[0] != nil {
		firstOrientation = in.Slots[0].Orientation
	}

	active := in.ActiveSlot
	if active < 0 || active >= count {
		active = 0
	}

	slots := make([]SlotPlan, count)
	for i := 0; i < count; i++ {
		sp := SlotPlan{
			Index:      i,
			Span:       SlotSpan(in.Layout, i),
			Active:     i == active,
			DropTarget: fmt.Sprintf("slot-%d", i),
		}
		if card := in.Slots[i]; card != nil {
			sp.Occupied = true
			if card.Height > 0 {
				sp.AspectRatio = float64(card.Width) / float64(card.Height)
			} else {
				sp.AspectRatio = 1
			}
			sp.Photo = catalog.CardResponseFrom(*card, s.resolver)
		}
		slots[i] = sp
	}

	return Plan{
		Environment:   in.Environment,
		Layout:        in.Layout,
		BackgroundURL: s.BackgroundURL(in.Environment),
		Placement:     Place(in.ViewportWidth, in.ViewportHeight),
		Zone:          SafeZone(in.Environment, in.Layout, firstOrientation),
		Transform:     NudgeTransform(in.Environment, in.Layout),
		Arrangement:   Arrangement(in.Layout),
		Frame:         FrameSpecFor(in.FrameStyle, in.PerformanceMode),
		Mat:           MatSpecFor(in.MatOption),
		ActiveSlot:    active,
		Slots:         slots,
	}
}
