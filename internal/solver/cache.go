package solver

import (
	"fmt"

	"github.com/bran/skat/internal/card"
	"github.com/bran/skat/internal/cards"
	"github.com/bran/skat/internal/engine"
)

// BoundsAndPreference pairs a Bounds with the card (if any) that was found
// to single-handedly decide the last threshold queried for it, so the next
// query against the same node can try that card first.
type BoundsAndPreference struct {
	Bounds     engine.Bounds
	Preference *card.Card
}

// KeyFunc maps an OpenSituation reachable from a fixed initial deal to its
// transposition-cache key. Two situations with the same key MUST be
// interchangeable for caching purposes, which only holds for positions
// reachable from the same deal with no trick in progress.
type KeyFunc func(engine.OpenSituation) cards.Cards

// NewKeyFunc builds a transposition key function: the 32-bit remaining-cards
// bitmask, tagged with one of the two skat cards when the active role is
// a defender (FirstDefender gets the lower-indexed skat card, SecondDefender
// the higher one) so that otherwise-identical defender hands reachable via
// different skat assignments don't collide. initial must be the situation
// at the very start of card play, so its cellar is exactly the two skat
// cards.
func NewKeyFunc(initial engine.OpenSituation) KeyFunc {
	skat := initial.Cellar().ToSlice()
	if len(skat) != 2 {
		panic(fmt.Sprintf("NewKeyFunc: initial situation's cellar has %d cards, want 2", len(skat)))
	}
	firstDefenderCard, secondDefenderCard := skat[0], skat[1]

	return func(s engine.OpenSituation) cards.Cards {
		key := s.RemainingCardsInHands()
		switch s.ActiveRole() {
		case engine.FirstDefender:
			key = key.Add(firstDefenderCard)
		case engine.SecondDefender:
			key = key.Add(secondDefenderCard)
		}
		return key
	}
}

type cacheEntry struct {
	value     BoundsAndPreference
	situation engine.OpenSituation
}

// Cache is the transposition cache: a map from situation key to
// the tightest bounds known so far for it, seeded lazily from quick_bounds
// on first lookup. It must only ever be consulted for positions with no
// trick in progress.
type Cache struct {
	keyFunc                   KeyFunc
	entries                   map[cards.Cards]cacheEntry
	verify                    bool
	includeDefenderUpperBound bool
}

// NewCache builds an empty cache using keyFunc to identify positions. When
// verify is true, each lookup double-checks that the stored situation
// matches the query exactly, to catch key collisions during development;
// production use should leave it off. includeDefenderUpperBound controls
// whether freshly seeded entries get the tightened defender-forehand
// upper bound (engine.OpenSituation.QuickBounds) or just the naive one.
func NewCache(keyFunc KeyFunc, verify bool, includeDefenderUpperBound bool) *Cache {
	return &Cache{
		keyFunc:                   keyFunc,
		entries:                   make(map[cards.Cards]cacheEntry),
		verify:                    verify,
		includeDefenderUpperBound: includeDefenderUpperBound,
	}
}

// GetCurrentKnowledge returns the cached bounds for situation, inserting a
// fresh quick_bounds-seeded entry if this is the first time the position's
// key has been seen.
func (c *Cache) GetCurrentKnowledge(situation engine.OpenSituation, g card.GameType) BoundsAndPreference {
	key := c.keyFunc(situation)
	entry, ok := c.entries[key]
	if !ok {
		entry = cacheEntry{
			value:     BoundsAndPreference{Bounds: situation.QuickBounds(g, c.includeDefenderUpperBound)},
			situation: situation,
		}
		c.entries[key] = entry
		return entry.value
	}
	if c.verify && entry.situation != situation {
		panic("solver: transposition cache key collision between distinct situations")
	}
	return entry.value
}

// UpdateExisting overwrites the cached entry for situation with updated
// bounds, which must be at least as tight as whatever was cached before.
func (c *Cache) UpdateExisting(situation engine.OpenSituation, updated BoundsAndPreference, g card.GameType) {
	key := c.keyFunc(situation)
	if c.verify {
		if entry, ok := c.entries[key]; ok && entry.situation != situation {
			panic("solver: transposition cache key collision between distinct situations")
		}
	}
	c.entries[key] = cacheEntry{value: updated, situation: situation}
	_ = g
}
