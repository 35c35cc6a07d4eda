package types

import "sort"

// ChainID identifies a chain registered with a bridge hub. IDs are only ever
// produced by discovery, never invented by callers.
type ChainID uint64

// ChainSet is a deduplicated set of discovered chain ids. The zero value is
// not usable; construct with NewChainSet.
type ChainSet map[ChainID]struct{}

// NewChainSet creates a ChainSet seeded with the given ids.
func NewChainSet(ids ...ChainID) ChainSet {
	s := make(ChainSet, len(ids))
	for _, id := range ids {
		s.Add(id)
	}

	return s
}

// Add inserts an id into the set.
func (s ChainSet) Add(id ChainID) {
	s[id] = struct{}{}
}

// Contains reports whether the id has been discovered.
func (s ChainSet) Contains(id ChainID) bool {
	_, ok := s[id]

	return ok
}

// IDs returns the discovered ids in ascending order. Discovery itself has no
// ordering guarantee; sorting here keeps reports stable between runs.
func (s ChainSet) IDs() []ChainID {
	ids := make([]ChainID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
