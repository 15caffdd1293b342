package catalog

// Service answers catalog queries. It is stateless beyond the immutable
// photo list and deterministic for a given catalog.
type Service struct {
	photos         []Photo
	defaultEtsyURL string
	pools          []Pool
}

// NewService creates a catalog service over the given photos.
func NewService(photos []Photo, defaultEtsyURL string) *Service {
	return &Service{
		photos:         photos,
		defaultEtsyURL: defaultEtsyURL,
		pools:          DefaultPools(),
	}
}

// All returns the full catalog in catalog order
func (s *Service) All() []Photo {
	return s.photos
}

// ByID returns the photo with the given id, or nil. Absence is a normal,
// displayable state, not an error.
func (s *Service) ByID(id string) *Photo {
	for i := range s.photos {
		if s.photos[i].ID == id {
			return &s.photos[i]
		}
	}
	return nil
}

// DetailByID returns the purchase projection for the given id, or nil
func (s *Service) DetailByID(id string) *Detail {
	photo := s.ByID(id)
	if photo == nil {
		return nil
	}
	detail := photo.ToDetail(s.defaultEtsyURL)
	return &detail
}

// ByCategory filters by exact category match, preserving catalog order
func (s *Service) ByCategory(category Category) []Photo {
	result := []Photo{}
	for _, p := range s.photos {
		if p.Category == category {
			result = append(result, p)
		}
	}
	return result
}

// CardsByCategory returns display projections for a category
func (s *Service) CardsByCategory(category Category) []Card {
	photos := s.ByCategory(category)
	cards := make([]Card, len(photos))
	for i := range photos {
		cards[i] = photos[i].ToCard()
	}
	return cards
}

// GroupedByCategory groups the catalog by every category. Categories with no
// photos map to an empty slice, never nil.
func (s *Service) GroupedByCategory() map[Category][]Photo {
	grouped := make(map[Category][]Photo, len(Categories()))
	for _, c := range Categories() {
		grouped[c] = s.ByCategory(c)
	}
	return grouped
}

// GroupedCards groups display projections by every category
func (s *Service) GroupedCards() map[Category][]Card {
	grouped := make(map[Category][]Card, len(Categories()))
	for _, c := range Categories() {
		grouped[c] = s.CardsByCategory(c)
	}
	return grouped
}

// Featured returns featured photos in catalog order
func (s *Service) Featured() []Photo {
	result := []Photo{}
	for _, p := range s.photos {
		if p.Featured {
			result = append(result, p)
		}
	}
	return result
}

// AllSeries returns the distinct series labels in first-seen order
func (s *Service) AllSeries() []string {
	seen := make(map[string]bool)
	var series []string
	for _, p := range s.photos {
		if p.Series != "" && !seen[p.Series] {
			seen[p.Series] = true
			series = append(series, p.Series)
		}
	}
	return series
}

// BySeries returns photos in the given series, preserving catalog order
func (s *Service) BySeries(series string) []Photo {
	result := []Photo{}
	for _, p := range s.photos {
		if p.Series == series {
			result = append(result, p)
		}
	}
	return result
}

// HeroPhoto returns the landing-page hero: the curated id when it is remote
// backed, else the first featured remote-backed landscape, else nil.
func (s *Service) HeroPhoto() *Photo {
	if hero := s.ByID(HeroPhotoID); hero != nil && hero.Source.IsRemote() {
		return hero
	}
	for i := range s.photos {
		p := &s.photos[i]
		if p.Featured && p.Orientation == OrientationLandscape && p.Source.IsRemote() {
			return p
		}
	}
	return nil
}
