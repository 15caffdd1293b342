package imagecdn

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// MaxDimension caps requested transform dimensions. Very large originals
// (8k+) fail downstream image optimizers with 400 Bad Request when requested
// at full size, so the CDN does the initial downscaling.
const MaxDimension = 2000

// SourceKind discriminates where a photo's pixels live.
type SourceKind string

const (
	// KindLocal is a path under the service's own asset store.
	KindLocal SourceKind = "local"
	// KindRemote is a Cloudinary public ID.
	KindRemote SourceKind = "remote"
)

// Source identifies an image by exactly one authoritative location.
type Source struct {
	Kind    SourceKind `json:"kind"`
	Path    string     `json:"path,omitempty"`
	AssetID string     `json:"asset_id,omitempty"`
}

// Local builds a Source backed by the origin asset store.
func Local(path string) Source {
	return Source{Kind: KindLocal, Path: path}
}

// Remote builds a Source backed by Cloudinary.
func Remote(assetID string) Source {
	return Source{Kind: KindRemote, AssetID: assetID}
}

// IsRemote reports whether the source is CDN backed.
func (s Source) IsRemote() bool {
	return s.Kind == KindRemote
}

// Options are delivery transform parameters.
type Options struct {
	Width   int
	Height  int
	Quality string // "auto" or a number as string, empty to omit
	Format  string // "auto", "webp", "avif", "jpg", "png", empty to omit
}

// Resolver builds delivery URLs for photo sources. Construct once at startup
// and pass down; it never reads the environment itself.
type Resolver struct {
	cloudName     string
	assetsBaseURL string
}

// NewResolver creates a resolver. An empty cloudName is valid: remote
// resolutions then return a placeholder URL instead of failing.
func NewResolver(cloudName, assetsBaseURL string) *Resolver {
	if assetsBaseURL == "" {
		assetsBaseURL = "/assets"
	}
	return &Resolver{
		cloudName:     cloudName,
		assetsBaseURL: strings.TrimSuffix(assetsBaseURL, "/"),
	}
}

// Configured reports whether Cloudinary delivery is available.
func (r *Resolver) Configured() bool {
	return r.cloudName != ""
}

// WarnIfUnconfigured logs the single startup warning for missing CDN keys.
func (r *Resolver) WarnIfUnconfigured(missing []string) {
	if len(missing) == 0 {
		return
	}
	log.Warn().
		Strs("missing", missing).
		Msg("Cloudinary not fully configured, image URLs will use safe fallbacks")
}

// Resolve turns a source into a final delivery URL. It never fails: an
// unconfigured CDN yields a placeholder, a local source yields an asset path.
func (r *Resolver) Resolve(src Source, opts Options) string {
	switch src.Kind {
	case KindRemote:
		return r.remoteURL(src.AssetID, opts)
	case KindLocal:
		return r.localURL(src.Path, opts)
	default:
		return PlaceholderURL(opts.Width, opts.Height)
	}
}

func (r *Resolver) localURL(path string, opts Options) string {
	path = "/" + strings.TrimPrefix(path, "/")
	if opts.Width > 0 {
		return fmt.Sprintf("%s%s?w=%d", r.assetsBaseURL, path, capDimension(opts.Width))
	}
	return r.assetsBaseURL + path
}

func (r *Resolver) remoteURL(publicID string, opts Options) string {
	if r.cloudName == "" {
		return PlaceholderURL(opts.Width, opts.Height)
	}

	var transformations []string

	w := capDimension(opts.Width)
	h := capDimension(opts.Height)

	if w > 0 {
		transformations = append(transformations, fmt.Sprintf("w_%d", w))
	}
	if h > 0 {
		transformations = append(transformations, fmt.Sprintf("h_%d", h))
	}
	// Dimension constraints use limit crop to preserve aspect ratio
	if w > 0 || h > 0 {
		transformations = append(transformations, "c_limit")
	}

	if opts.Quality != "" {
		transformations = append(transformations, "q_"+opts.Quality)
	}
	if opts.Format != "" {
		transformations = append(transformations, "f_"+opts.Format)
	}

	transformString := ""
	if len(transformations) > 0 {
		transformString = strings.Join(transformations, ",") + "/"
	}

	return fmt.Sprintf("https://res.cloudinary.com/%s/image/upload/%s%s", r.cloudName, transformString, publicID)
}

func capDimension(d int) int {
	if d > MaxDimension {
		return MaxDimension
	}
	return d
}

// PlaceholderURL is the documented fallback when the CDN is unconfigured.
func PlaceholderURL(width, height int) string {
	if width <= 0 {
		width = 800
	}
	if height <= 0 {
		height = 600
	}
	return fmt.Sprintf("https://via.placeholder.com/%dx%d?text=Image+Unavailable", width, height)
}
