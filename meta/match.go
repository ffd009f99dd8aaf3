package meta

// Match is a successful match with byte positions in the searched input.
//
// The haystack is held by reference; Bytes returns a view into it.
//
// Example:
//
//	m := meta.NewMatch(5, 11, []byte("test foo123 end"))
//	m.String() // "foo123"
type Match struct {
	start    int
	end      int
	haystack []byte
}

// NewMatch creates a Match for haystack[start:end].
func NewMatch(start, end int, haystack []byte) *Match {
	return &Match{
		start:    start,
		end:      end,
		haystack: haystack,
	}
}

// Start returns the inclusive start position of the match.
func (m *Match) Start() int {
	return m.start
}

// End returns the exclusive end position of the match.
func (m *Match) End() int {
	return m.end
}

// Len returns the length of the match in bytes.
func (m *Match) Len() int {
	return m.end - m.start
}

// Bytes returns the matched bytes as a view into the haystack.
func (m *Match) Bytes() []byte {
	if m.start < 0 || m.end > len(m.haystack) || m.start > m.end {
		return nil
	}
	return m.haystack[m.start:m.end]
}

// String returns a copy of the matched text.
func (m *Match) String() string {
	return string(m.Bytes())
}

// IsEmpty reports whether the match has zero length, as the empty pattern
// or a lone "$" produce.
func (m *Match) IsEmpty() bool {
	return m.start == m.end
}

// MatchWithCaptures is a match together with the spans of its groups.
//
// Group 0 is the whole match. A group that did not participate, because
// its alternative was abandoned or never reached, has no span.
type MatchWithCaptures struct {
	Match

	// slots holds start/end byte offsets per group, -1 when unset.
	slots []int
}

// NewMatchWithCaptures creates a MatchWithCaptures from a slot list laid
// out as [start0, end0, start1, end1, ...].
func NewMatchWithCaptures(haystack []byte, slots []int) *MatchWithCaptures {
	return &MatchWithCaptures{
		Match: Match{start: slots[0], end: slots[1], haystack: haystack},
		slots: slots,
	}
}

// NumCaptures returns the number of groups, including group 0.
func (m *MatchWithCaptures) NumCaptures() int {
	return len(m.slots) / 2
}

// GroupIndex returns the [start, end] byte offsets of group i, or nil if
// the group did not participate.
func (m *MatchWithCaptures) GroupIndex(i int) []int {
	if i < 0 || 2*i+1 >= len(m.slots) || m.slots[2*i] < 0 {
		return nil
	}
	return m.slots[2*i : 2*i+2]
}

// Group returns the text of group i, or nil if the group did not
// participate.
func (m *MatchWithCaptures) Group(i int) []byte {
	idx := m.GroupIndex(i)
	if idx == nil {
		return nil
	}
	return m.haystack[idx[0]:idx[1]]
}

// AllGroups returns the text of every group. Entries for groups that did
// not participate are nil.
func (m *MatchWithCaptures) AllGroups() [][]byte {
	out := make([][]byte, m.NumCaptures())
	for i := range out {
		out[i] = m.Group(i)
	}
	return out
}

// AllGroupIndex returns a copy of the slot list.
func (m *MatchWithCaptures) AllGroupIndex() []int {
	return append([]int(nil), m.slots...)
}

// AllGroupStrings returns the text of every group as strings. Groups that
// did not participate yield "".
func (m *MatchWithCaptures) AllGroupStrings() []string {
	out := make([]string, m.NumCaptures())
	for i := range out {
		out[i] = string(m.Group(i))
	}
	return out
}
