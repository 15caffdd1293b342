package catalog

import (
	"github.com/lumengallery/lumen-api/internal/pkg/imagecdn"
)

// HeroPhotoID is the curated landing-page hero. Calibration data: the hero
// is chosen editorially, not algorithmically.
const HeroPhotoID = "-a733931-vjjbiz"

// Photos is the build-time catalog, in catalog order (street, travel,
// moments). Selectors preserve this order.
var Photos = []Photo{
	// Street
	{
		ID:          "street-01",
		Source:      imagecdn.Remote("street-01_kd82mf"),
		Alt:         "Lone commuter crossing a rain-slicked intersection at dusk",
		Title:       "Crosswalk, 7PM",
		Category:    CategoryStreet,
		Orientation: OrientationLandscape,
		Width:       3600,
		Height:      2400,
		Featured:    true,
		EtsyURL:     "https://www.etsy.com/listing/1711220341/crosswalk-7pm",
	},
	{
		ID:          "street-02",
		Source:      imagecdn.Remote("street-02_b7xq2n"),
		Alt:         "Newspaper vendor framed by steam from a subway grate",
		Title:       "Morning Edition",
		Category:    CategoryStreet,
		Orientation: OrientationPortrait,
		Width:       2400,
		Height:      3600,
		Featured:    false,
	},
	{
		ID:          "street-03",
		Source:      imagecdn.Local("/photos/street-03.jpg"),
		Alt:         "Shadows of pedestrians stretched across a painted wall",
		Title:       "Wall Walkers",
		Category:    CategoryStreet,
		Series:      "Concrete Hours",
		Orientation: OrientationLandscape,
		Width:       3200,
		Height:      2133,
		Featured:    false,
	},
	{
		ID:          "street-04",
		Source:      imagecdn.Remote("street-04_p3jd8w"),
		Alt:         "Barber reading between customers, window light",
		Title:       "Slow Tuesday",
		Category:    CategoryStreet,
		Series:      "Concrete Hours",
		Orientation: OrientationLandscape,
		Width:       3000,
		Height:      2000,
		Featured:    false,
	},
	{
		ID:          "street-05",
		Source:      imagecdn.Remote("street-05_m2nv9k"),
		Alt:         "Umbrellas converging at a flooded tram stop",
		Title:       "Confluence",
		Category:    CategoryStreet,
		Orientation: OrientationPortrait,
		Width:       2667,
		Height:      4000,
		Featured:    true,
		EtsyURL:     "https://www.etsy.com/listing/1711220377/confluence",
	},
	{
		ID:          "street-06",
		Source:      imagecdn.Local("/photos/street-06.jpg"),
		Alt:         "Chess players under a flickering arcade sign",
		Title:       "Endgame",
		Category:    CategoryStreet,
		Orientation: OrientationLandscape,
		Width:       3600,
		Height:      2400,
		Featured:    false,
	},

	// Travel
	{
		ID:          HeroPhotoID,
		Source:      imagecdn.Remote("-a733931-vjjbiz"),
		Alt:         "Terraced hills dissolving into morning fog",
		Title:       "First Light, Sa Pa",
		Category:    CategoryTravel,
		Orientation: OrientationLandscape,
		Width:       5400,
		Height:      3600,
		Featured:    true,
		EtsyURL:     "https://www.etsy.com/listing/1711220401/first-light-sa-pa",
	},
	{
		ID:          "travel-02",
		Source:      imagecdn.Remote("travel-02_hw5r7c"),
		Alt:         "Fishing boats at anchor beneath limestone cliffs",
		Title:       "Harbor Geometry",
		Category:    CategoryTravel,
		Orientation: OrientationLandscape,
		Width:       4000,
		Height:      2667,
		Featured:    true,
		EtsyURL:     "https://www.etsy.com/listing/1711220422/harbor-geometry",
	},
	{
		ID:          "travel-03",
		Source:      imagecdn.Remote("travel-03_t9wq1z"),
		Alt:         "Monk ascending a staircase cut into red rock",
		Title:       "Nine Hundred Steps",
		Category:    CategoryTravel,
		Orientation: OrientationPortrait,
		Width:       2667,
		Height:      4000,
		Featured:    false,
	},
	{
		ID:          "travel-04",
		Source:      imagecdn.Remote("travel-04_c4km3p"),
		Alt:         "Desert highway vanishing into heat shimmer",
		Title:       "Route of Nothing",
		Category:    CategoryTravel,
		Series:      "Long Way Round",
		Orientation: OrientationLandscape,
		Width:       5000,
		Height:      3333,
		Featured:    false,
	},
	{
		ID:          "travel-05",
		Source:      imagecdn.Remote("travel-05_x8dn6v"),
		Alt:         "Night market lanterns reflected in wet cobblestones",
		Title:       "Lantern River",
		Category:    CategoryTravel,
		Series:      "Long Way Round",
		Orientation: OrientationPortrait,
		Width:       2400,
		Height:      3600,
		Featured:    false,
	},
	{
		ID:          "travel-06",
		Source:      imagecdn.Local("/photos/travel-06.jpg"),
		Alt:         "Ferry wake cutting a fjord in half",
		Title:       "Divide",
		Category:    CategoryTravel,
		Orientation: OrientationLandscape,
		Width:       4200,
		Height:      2800,
		Featured:    false,
	},
	{
		ID:          "travel-07",
		Source:      imagecdn.Remote("travel-07_q2zf5h"),
		Alt:         "Tea pickers moving through rows of green",
		Title:       "Harvest Lines",
		Category:    CategoryTravel,
		Orientation: OrientationLandscape,
		Width:       3800,
		Height:      2533,
		Featured:    false,
	},

	// Moments
	{
		ID:          "moments-01",
		Source:      imagecdn.Remote("moments-01_j6ys4d"),
		Alt:         "Grandfather teaching a child to skip stones",
		Title:       "Second Lesson",
		Category:    CategoryMoments,
		Orientation: OrientationLandscape,
		Width:       3600,
		Height:      2400,
		Featured:    true,
		EtsyURL:     "https://www.etsy.com/listing/1711220458/second-lesson",
	},
	{
		ID:          "moments-02",
		Source:      imagecdn.Remote("moments-02_v1bw8r"),
		Alt:         "Dancer stretching in an empty rehearsal hall",
		Title:       "Before the Music",
		Category:    CategoryMoments,
		Series:      "Quiet Rooms",
		Orientation: OrientationPortrait,
		Width:       2667,
		Height:      4000,
		Featured:    false,
	},
	{
		ID:          "moments-03",
		Source:      imagecdn.Remote("moments-03_n5kp2t"),
		Alt:         "Bakers dusted in flour sharing a joke at dawn",
		Title:       "Shift's End",
		Category:    CategoryMoments,
		Series:      "Quiet Rooms",
		Orientation: OrientationLandscape,
		Width:       3200,
		Height:      2133,
		Featured:    false,
	},
	{
		ID:          "moments-04",
		Source:      imagecdn.Local("/photos/moments-04.jpg"),
		Alt:         "Rain on a window above a sleeping cat",
		Title:       "Sunday",
		Category:    CategoryMoments,
		Orientation: OrientationPortrait,
		Width:       2400,
		Height:      3600,
		Featured:    false,
	},
	{
		ID:          "moments-05",
		Source:      imagecdn.Remote("moments-05_g9hc3m"),
		Alt:         "Bride's grandmother fixing a veil, hands only",
		Title:       "Steady Hands",
		Category:    CategoryMoments,
		Orientation: OrientationPortrait,
		Width:       2667,
		Height:      4000,
		Featured:    false,
	},
	{
		ID:          "moments-06",
		Source:      imagecdn.Remote("moments-06_z7rt6b"),
		Alt:         "Kids leaping from a pier in late summer",
		Title:       "Last Warm Day",
		Category:    CategoryMoments,
		Orientation: OrientationLandscape,
		Width:       3600,
		Height:      2400,
		Featured:    true,
		EtsyURL:     "https://www.etsy.com/listing/1711220473/last-warm-day",
	},
}
