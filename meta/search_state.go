package meta

import (
	"sync"

	"github.com/coregx/linegrep/backtrack"
)

// maxPooledRunes bounds the rune buffer kept in a pooled state so one huge
// subject does not pin its buffer forever.
const maxPooledRunes = 64 << 10

// SearchState holds the mutable state of one search: the decoded subject
// and the capture store. States come from a sync.Pool, so a compiled Engine
// can serve many goroutines at once.
//
// A SearchState is not safe for concurrent use.
type SearchState struct {
	runes []rune
	caps  *backtrack.Captures
}

func newSearchState(numGroups int) *SearchState {
	return &SearchState{
		runes: make([]rune, 0, 256),
		caps:  backtrack.NewCaptures(numGroups),
	}
}

// reset prepares the state for reuse.
func (s *SearchState) reset() {
	if cap(s.runes) > maxPooledRunes {
		s.runes = nil
	}
	s.runes = s.runes[:0]
}

// searchStatePool manages SearchState instances for one Engine.
type searchStatePool struct {
	pool      sync.Pool
	numGroups int
}

func newSearchStatePool(numGroups int) *searchStatePool {
	p := &searchStatePool{numGroups: numGroups}
	p.pool = sync.Pool{
		New: func() any {
			return newSearchState(p.numGroups)
		},
	}
	return p
}

func (p *searchStatePool) get() *SearchState {
	return p.pool.Get().(*SearchState)
}

func (p *searchStatePool) put(state *SearchState) {
	if state == nil {
		return
	}
	state.reset()
	p.pool.Put(state)
}
