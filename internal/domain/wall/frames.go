package wall

// FrameSpec is the rendering parameter set for one frame style at one
// fidelity tier. Fields are the style vocabulary the client applies
// directly; empty fields are omitted from the JSON payload.
type FrameSpec struct {
	Border          string `json:"border"`
	BackgroundColor string `json:"background_color,omitempty"`
	BackgroundImage string `json:"background_image,omitempty"`
	BackgroundSize  string `json:"background_size,omitempty"`
	BoxShadow       string `json:"box_shadow,omitempty"`
}

// MatSpec describes the mat board treatment inside the frame
type MatSpec struct {
	InsetPercent    float64 `json:"inset_percent"`
	BackgroundColor string  `json:"background_color,omitempty"`
	BoxShadow       string  `json:"box_shadow,omitempty"`
}

const baseShadow = "0 10px 20px -5px rgba(0,0,0,0.4), 0 20px 40px -10px rgba(0,0,0,0.3)"

// The tables are precomputed so a spec lookup is a map read, never a
// per-request style construction.
var (
	performanceFrames = map[FrameStyle]FrameSpec{
		FrameThinBlack: {
			Border:          "10px solid #1a1a1a",
			BackgroundColor: "#1a1a1a",
		},
		FrameThinWhite: {
			Border:          "10px solid #f5f5f5",
			BackgroundColor: "#f5f5f5",
		},
		FrameNaturalWood: {
			Border:          "12px solid #8B5E3C",
			BackgroundColor: "#8B5E3C",
		},
	}

	fullFrames = map[FrameStyle]FrameSpec{
		FrameThinBlack: {
			Border:          "12px solid #1a1a1a",
			BackgroundColor: "#1a1a1a",
			BoxShadow:       "inset 0 0 2px rgba(255,255,255,0.1), " + baseShadow,
		},
		FrameThinWhite: {
			Border:          "12px solid #f5f5f5",
			BackgroundColor: "#f5f5f5",
			BoxShadow:       "inset 0 0 2px rgba(0,0,0,0.05), " + baseShadow,
		},
		FrameNaturalWood: {
			Border:          "14px solid #8B5E3C",
			BackgroundImage: "linear-gradient(45deg, rgba(0,0,0,0.05) 25%, transparent 25%, transparent 50%, rgba(0,0,0,0.05) 50%, rgba(0,0,0,0.05) 75%, transparent 75%, transparent), linear-gradient(0deg, #8B5E3C, #A06F4B)",
			BackgroundSize:  "4px 4px, 100% 100%",
			BoxShadow:       "inset 0 1px 2px rgba(255,255,255,0.2), inset 0 -1px 2px rgba(0,0,0,0.2), " + baseShadow,
		},
	}
)

// FrameSpecFor returns the rendering spec for a style at the requested
// fidelity. Performance mode drops shadows and gradient texture so drags
// and resizes stay cheap to repaint. Unknown styles get thin-black.
func FrameSpecFor(style FrameStyle, performanceMode bool) FrameSpec {
	table := fullFrames
	if performanceMode {
		table = performanceFrames
	}
	if spec, ok := table[style]; ok {
		return spec
	}
	return table[FrameThinBlack]
}

// MatSpecFor returns the mat treatment. White applies an 8% inset pad
// simulating a mat board; none applies nothing.
func MatSpecFor(mat MatOption) MatSpec {
	if mat == MatWhite {
		return MatSpec{
			InsetPercent:    8,
			BackgroundColor: "#fdfdfd",
			BoxShadow:       "inset 1px 1px 3px rgba(0,0,0,0.1)",
		}
	}
	return MatSpec{}
}
