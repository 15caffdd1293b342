package catalog

// Pool is one priority bucket for home-page curation. The pool list and its
// order are editorial configuration, not algorithm; only the round-robin
// draining with dedup is fixed behavior.
type Pool struct {
	Name  string
	Match func(*Photo) bool
}

// DefaultPools is the current editorial ordering: travel and featured work
// first, then series and portraits for variety. Street is held back for the
// exhibit page. Only remote-backed photos qualify for the landing page.
func DefaultPools() []Pool {
	remote := func(p *Photo) bool { return p.Source.IsRemote() }
	isTravel := func(p *Photo) bool { return p.Category == CategoryTravel }
	isMomentsLike := func(p *Photo) bool {
		return p.Category != CategoryStreet && p.Category != CategoryTravel
	}

	return []Pool{
		{Name: "travel-featured", Match: func(p *Photo) bool {
			return isTravel(p) && p.Featured && remote(p)
		}},
		{Name: "moments-featured", Match: func(p *Photo) bool {
			return isMomentsLike(p) && p.Featured && remote(p)
		}},
		{Name: "travel", Match: func(p *Photo) bool {
			return isTravel(p) && !p.Featured && remote(p)
		}},
		{Name: "moments-series", Match: func(p *Photo) bool {
			return isMomentsLike(p) && !p.Featured && p.Series != "" && remote(p)
		}},
		{Name: "travel-again", Match: func(p *Photo) bool {
			return isTravel(p) && !p.Featured && remote(p)
		}},
		{Name: "moments-portraits", Match: func(p *Photo) bool {
			return isMomentsLike(p) && !p.Featured && p.Orientation == OrientationPortrait && remote(p)
		}},
		{Name: "moments-remaining", Match: func(p *Photo) bool {
			return isMomentsLike(p) && !p.Featured && p.Series == "" && p.Orientation != OrientationPortrait && remote(p)
		}},
	}
}

// HomeCuration picks up to limit photos for the landing page by draining the
// head of each pool in rotation, skipping already-picked ids, until the
// limit is reached or every pool is exhausted. Deterministic for an
// unchanged catalog.
func (s *Service) HomeCuration(limit int) []Photo {
	return s.HomeCurationWith(s.pools, limit)
}

// HomeCurationWith runs the round-robin drain over explicit pools.
func (s *Service) HomeCurationWith(pools []Pool, limit int) []Photo {
	if limit <= 0 {
		return []Photo{}
	}

	// Materialize each pool's queue in catalog order
	queues := make([][]*Photo, len(pools))
	for pi, pool := range pools {
		for i := range s.photos {
			if pool.Match(&s.photos[i]) {
				queues[pi] = append(queues[pi], &s.photos[i])
			}
		}
	}

	picked := []Photo{}
	used := make(map[string]bool)

	for len(picked) < limit && anyRemaining(queues) {
		for pi := range queues {
			if len(queues[pi]) == 0 {
				continue
			}
			next := queues[pi][0]
			queues[pi] = queues[pi][1:]
			if used[next.ID] {
				continue
			}
			used[next.ID] = true
			picked = append(picked, *next)
			if len(picked) == limit {
				break
			}
		}
	}

	return picked
}

// HomeCurationCards is HomeCuration projected to display cards
func (s *Service) HomeCurationCards(limit int) []Card {
	photos := s.HomeCuration(limit)
	cards := make([]Card, len(photos))
	for i := range photos {
		cards[i] = photos[i].ToCard()
	}
	return cards
}

func anyRemaining(queues [][]*Photo) bool {
	for _, q := range queues {
		if len(q) > 0 {
			return true
		}
	}
	return false
}
