package encoder

// isEDIFACT reports whether ch is in the EDIFACT set: 0x20-0x5E.
func isEDIFACT(ch byte) bool {
	return ((ch&0xe0) == 0x40 || (ch&0xe0) == 0x20) && ch != '_'
}

// edifactGroup packs up to four six-bit values into three codewords.
type edifactGroup struct {
	bits  int
	shift int
}

func newEDIFACTGroup() edifactGroup {
	return edifactGroup{shift: 18}
}

// add stores ch and writes the group once it holds four values.
func (g *edifactGroup) add(c *cursor, ch byte) bool {
	g.bits |= int(ch&0x3f) << g.shift
	if g.shift > 0 {
		g.shift -= 6
		return true
	}
	ok := c.put(byte(g.bits>>16), byte(g.bits>>8), byte(g.bits))
	*g = newEDIFACTGroup()
	return ok
}

// flush writes the pending values followed by the unlatch value 0x1F,
// using only as many codewords as the occupied bits need.
func (g *edifactGroup) flush(c *cursor) bool {
	bits := g.bits | 0x1f<<g.shift
	n := 3 - g.shift/8
	ok := c.put([]byte{byte(bits >> 16), byte(bits >> 8), byte(bits)}[:n]...)
	*g = newEDIFACTGroup()
	c.state = stateASCII
	return ok
}

func encodeEDIFACT(c *cursor, text []byte) bool {
	group := newEDIFACTGroup()
	for i := 0; i < len(text); {
		ch := text[i]
		if isEDIFACT(ch) {
			if !c.latch(stateEDIFACT) || !group.add(c, ch) {
				return false
			}
			i++
			continue
		}
		if c.state == stateEDIFACT && !group.flush(c) {
			return false
		}
		n := asciiStep(c, text[i:])
		if n == 0 {
			return false
		}
		i += n
	}
	if c.state == stateEDIFACT {
		return group.flush(c)
	}
	return true
}
