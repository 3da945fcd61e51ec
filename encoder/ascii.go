package encoder

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// asciiStep writes the ASCII codewords for the start of text and returns
// how many bytes were consumed, or 0 when the codewords do not fit.
//   - digit pairs "00"-"99": pair value + 130
//   - 0-127: value + 1
//   - 128-255: upper shift (235), then value - 128 + 1
func asciiStep(c *cursor, text []byte) int {
	ch := text[0]
	if isDigit(ch) && len(text) > 1 && isDigit(text[1]) {
		if !c.put(byte((ch-'0')*10 + text[1] - '0' + 130)) {
			return 0
		}
		return 2
	}
	if ch > 127 {
		if !c.put(cwUpperShift, ch-128+1) {
			return 0
		}
		return 1
	}
	if !c.put(ch + 1) {
		return 0
	}
	return 1
}

func encodeASCII(c *cursor, text []byte) bool {
	for i := 0; i < len(text); {
		n := asciiStep(c, text[i:])
		if n == 0 {
			return false
		}
		i += n
	}
	return true
}

// encodeRaw copies codewords that the caller has already encoded. The
// decoder is expected to be back in ASCII state after the last one.
func encodeRaw(c *cursor, text []byte) bool {
	return c.put(text...)
}
