package encoder

// cursor accumulates codewords for one compaction run. Every write is
// checked against the capacity; a failed write leaves the cursor unusable
// and the caller abandons the run.
type cursor struct {
	data  []byte
	end   int
	state encodation
}

func newCursor(prefix []byte, capacity int) *cursor {
	data := make([]byte, len(prefix), capacity)
	copy(data, prefix)
	return &cursor{data: data, end: capacity, state: stateASCII}
}

// put appends codewords, reporting false when they do not fit.
func (c *cursor) put(cw ...byte) bool {
	if len(c.data)+len(cw) > c.end {
		return false
	}
	c.data = append(c.data, cw...)
	return true
}

// latch switches from ASCII into state s.
func (c *cursor) latch(s encodation) bool {
	if c.state == s {
		return true
	}
	if !c.put(latchCodewords[s]) {
		return false
	}
	c.state = s
	return true
}

// unlatch returns from a C40, Text or X12 state to ASCII.
func (c *cursor) unlatch() bool {
	if c.state == stateASCII {
		return true
	}
	if !c.put(cwUnlatch) {
		return false
	}
	c.state = stateASCII
	return true
}
