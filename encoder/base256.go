package encoder

// randomize255 scrambles a Base 256 codeword written at position pos.
func randomize255(cw byte, pos int) byte {
	t := int(cw) + (149*(pos+1))%255 + 1
	if t > 255 {
		t -= 256
	}
	return byte(t)
}

// encodeBase256 writes the latch, a one or two codeword length field and
// the bytes themselves, then scrambles everything after the latch.
func encodeBase256(c *cursor, text []byte) bool {
	n := len(text)
	if n == 0 {
		return true
	}
	start := len(c.data)
	if !c.latch(stateBase256) {
		return false
	}
	var ok bool
	if n < 250 {
		ok = c.put(byte(n))
	} else {
		ok = c.put(byte(n/250+249), byte(n%250))
	}
	if !ok || !c.put(text...) {
		return false
	}
	for j := start + 1; j < len(c.data); j++ {
		c.data[j] = randomize255(c.data[j], j)
	}
	c.state = stateASCII
	return true
}
