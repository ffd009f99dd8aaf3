package backtrack

// Captures is the backreference store of one match attempt.
//
// Group n (1-based) holds the subject span its successful alternative
// consumed. Writes are journaled so a speculative branch can be undone:
//
//	mark := caps.Mark()
//	if !tryAlternative() {
//	    caps.Rollback(mark)
//	}
//
// A failed alternative therefore never leaves captures visible to its
// siblings or to the rest of the attempt.
type Captures struct {
	spans []span
	undo  []undoEntry
}

type span struct {
	start int
	end   int
	set   bool
}

type undoEntry struct {
	group int
	prev  span
}

// NewCaptures returns a store for numGroups groups.
func NewCaptures(numGroups int) *Captures {
	c := &Captures{}
	c.Reset(numGroups)
	return c
}

// Reset clears the store and resizes it for numGroups groups, reusing
// the backing arrays when possible.
func (c *Captures) Reset(numGroups int) {
	if cap(c.spans) > numGroups {
		c.spans = c.spans[:numGroups+1]
		for i := range c.spans {
			c.spans[i] = span{}
		}
	} else {
		c.spans = make([]span, numGroups+1)
	}
	c.undo = c.undo[:0]
}

// Len returns the number of groups the store was sized for.
func (c *Captures) Len() int {
	return len(c.spans) - 1
}

// Set records that group n matched subject[start:end].
func (c *Captures) Set(n, start, end int) {
	c.undo = append(c.undo, undoEntry{group: n, prev: c.spans[n]})
	c.spans[n] = span{start: start, end: end, set: true}
}

// Get returns the span captured by group n.
// ok is false if the group has not captured (or n is out of range).
func (c *Captures) Get(n int) (start, end int, ok bool) {
	if n <= 0 || n >= len(c.spans) {
		return -1, -1, false
	}
	s := c.spans[n]
	if !s.set {
		return -1, -1, false
	}
	return s.start, s.end, true
}

// Mark returns a position in the journal to roll back to.
func (c *Captures) Mark() int {
	return len(c.undo)
}

// Rollback undoes every Set performed after mark.
func (c *Captures) Rollback(mark int) {
	for i := len(c.undo) - 1; i >= mark; i-- {
		u := c.undo[i]
		c.spans[u.group] = u.prev
	}
	c.undo = c.undo[:mark]
}

// Slots appends start/end pairs for groups 1..Len to dst (-1 for groups
// that did not capture) and returns the extended slice.
func (c *Captures) Slots(dst []int) []int {
	for n := 1; n < len(c.spans); n++ {
		s := c.spans[n]
		if s.set {
			dst = append(dst, s.start, s.end)
		} else {
			dst = append(dst, -1, -1)
		}
	}
	return dst
}
