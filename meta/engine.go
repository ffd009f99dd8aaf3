package meta

import (
	"sync/atomic"

	"github.com/coregx/linegrep/backtrack"
	"github.com/coregx/linegrep/internal/conv"
	"github.com/coregx/linegrep/prefilter"
	"github.com/coregx/linegrep/simd"
	"github.com/coregx/linegrep/syntax"
)

// Engine is a compiled pattern ready for searching.
//
// Example:
//
//	engine, err := meta.Compile(`(\w+) and \1`)
//	if err != nil {
//	    return err
//	}
//	engine.IsMatch([]byte("cat and cat")) // true
type Engine struct {
	pattern   *syntax.Pattern
	bt        *backtrack.Backtracker
	prefilter prefilter.Prefilter
	config    Config
	states    *searchStatePool

	// stats is updated atomically by concurrent searches.
	stats Stats
}

// Stats tracks search statistics for profiling.
type Stats struct {
	// Searches counts every search, including rejected ones.
	Searches uint64

	// PrefilterRejects counts searches rejected before the matcher ran.
	PrefilterRejects uint64

	// ASCIIFastPath counts searches whose subject skipped UTF-8 decoding.
	ASCIIFastPath uint64

	// Matches counts searches that found a match.
	Matches uint64
}

// Pattern returns the source text of the compiled pattern.
func (e *Engine) Pattern() string {
	return e.pattern.String()
}

// NumCaptures returns the number of capturing groups, not counting the
// whole match.
func (e *Engine) NumCaptures() int {
	return e.pattern.NumGroups()
}

// Prefilter returns the prefilter in use, or nil.
func (e *Engine) Prefilter() prefilter.Prefilter {
	return e.prefilter
}

// Config returns the configuration the Engine was compiled with.
func (e *Engine) Config() Config {
	return e.config
}

// Stats returns a snapshot of the search statistics.
func (e *Engine) Stats() Stats {
	return Stats{
		Searches:         atomic.LoadUint64(&e.stats.Searches),
		PrefilterRejects: atomic.LoadUint64(&e.stats.PrefilterRejects),
		ASCIIFastPath:    atomic.LoadUint64(&e.stats.ASCIIFastPath),
		Matches:          atomic.LoadUint64(&e.stats.Matches),
	}
}

// ResetStats zeroes the search statistics.
func (e *Engine) ResetStats() {
	atomic.StoreUint64(&e.stats.Searches, 0)
	atomic.StoreUint64(&e.stats.PrefilterRejects, 0)
	atomic.StoreUint64(&e.stats.ASCIIFastPath, 0)
	atomic.StoreUint64(&e.stats.Matches, 0)
}

// IsMatch reports whether the pattern matches haystack.
func (e *Engine) IsMatch(haystack []byte) bool {
	state := e.states.get()
	defer e.states.put(state)

	_, _, ok, _ := e.search(haystack, state)
	return ok
}

// Find returns the match in haystack, or nil.
func (e *Engine) Find(haystack []byte) *Match {
	state := e.states.get()
	defer e.states.put(state)

	start, end, ok, ascii := e.search(haystack, state)
	if !ok {
		return nil
	}
	return NewMatch(
		conv.ByteOffset(haystack, start, ascii),
		conv.ByteOffset(haystack, end, ascii),
		haystack,
	)
}

// FindSubmatch returns the match in haystack with its group spans, or nil.
func (e *Engine) FindSubmatch(haystack []byte) *MatchWithCaptures {
	state := e.states.get()
	defer e.states.put(state)

	start, end, ok, ascii := e.search(haystack, state)
	if !ok {
		return nil
	}

	slots := state.caps.Slots([]int{start, end})
	return NewMatchWithCaptures(haystack, conv.ByteOffsets(haystack, slots, ascii))
}

// search runs one attempt over haystack and returns the match as rune
// indices into state.runes. ascii reports whether rune indices equal byte
// offsets.
func (e *Engine) search(haystack []byte, state *SearchState) (start, end int, ok, ascii bool) {
	atomic.AddUint64(&e.stats.Searches, 1)

	if e.prefilter != nil && e.prefilter.Find(haystack, 0) < 0 {
		atomic.AddUint64(&e.stats.PrefilterRejects, 1)
		return -1, -1, false, false
	}

	if e.config.EnableASCIIOptimization && simd.IsASCII(haystack) {
		atomic.AddUint64(&e.stats.ASCIIFastPath, 1)
		ascii = true
	}

	state.runes = conv.AppendRunes(state.runes, haystack, ascii)
	start, end, ok = e.bt.Search(state.runes, state.caps)
	if ok {
		atomic.AddUint64(&e.stats.Matches, 1)
	}
	return start, end, ok, ascii
}
