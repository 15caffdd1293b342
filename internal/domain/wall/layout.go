package wall

// MaxSlots is the size of the retained slot array. Layouts expose at most
// this many positions; hidden slots keep their contents across layout
// switches.
const MaxSlots = 9

// SlotCount returns the number of visible slots for a layout. Unknown
// layouts degrade to 1 so a bad value renders a single slot instead of
// failing.
func SlotCount(layout Layout) int {
	switch layout {
	case LayoutSingle:
		return 1
	case LayoutGallery6:
		return 6
	case LayoutCollage5:
		return 5
	case LayoutCollage7:
		return 7
	case LayoutCollage9:
		return 9
	default:
		return 1
	}
}

// GridArrangement describes how a layout's slots are positioned: the
// container descriptor and the per-item sizing rule, in the class
// vocabulary the client renders with.
type GridArrangement struct {
	Container string `json:"container"`
	Item      string `json:"item"`
}

// Arrangement returns the grid descriptor for a layout. Unknown layouts
// return empty descriptors, which render nothing rather than erroring.
func Arrangement(layout Layout) GridArrangement {
	switch layout {
	case LayoutSingle:
		return GridArrangement{
			Container: "flex items-center justify-center w-full h-full p-4",
			Item:      "relative w-auto h-auto max-h-[90%] max-w-[90%] flex items-center justify-center",
		}
	case LayoutGallery6:
		return GridArrangement{
			Container: "grid grid-cols-3 grid-rows-2 gap-6 w-full h-full items-center content-center px-4",
			Item:      "w-full h-full flex items-center justify-center",
		}
	case LayoutCollage5:
		return GridArrangement{
			Container: "grid grid-cols-6 gap-3 w-full h-full items-center content-center px-4",
			Item:      "w-full flex items-center justify-center",
		}
	case LayoutCollage7:
		return GridArrangement{
			Container: "grid grid-cols-4 gap-3 w-full h-full items-center content-center px-4",
			Item:      "w-full flex items-center justify-center",
		}
	case LayoutCollage9:
		return GridArrangement{
			Container: "grid grid-cols-3 gap-3 w-full h-full items-center content-center px-4",
			Item:      "w-full aspect-square flex items-center justify-center",
		}
	default:
		return GridArrangement{}
	}
}

// SlotSpan returns the column span rule for a slot index within a layout.
// Collage-5 runs on a six-column grid where the first two slots span three
// columns each (the "hero" row) and the remaining three span two.
func SlotSpan(layout Layout, index int) string {
	if layout != LayoutCollage5 {
		return ""
	}
	if index < 2 {
		return "col-span-3"
	}
	return "col-span-2"
}
