package encoder

import "strings"

const x12Chars = "\r*> 0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const x12None = -1

// x12Values maps every input byte to its X12 value, or x12None for bytes
// that are written in ASCII. Runs of X12 characters shorter than six go
// to ASCII entirely; longer runs keep their leading multiple of three.
func x12Values(text []byte) []int {
	values := make([]int, len(text))
	count := 0
	markTail := func(end int) {
		if count >= 6 {
			count %= 3
		}
		for k := 0; k < count; k++ {
			values[end-1-k] = x12None
		}
		count = 0
	}
	for i, ch := range text {
		if v := strings.IndexByte(x12Chars, ch); v >= 0 {
			values[i] = v
			count++
			continue
		}
		values[i] = x12None
		markTail(i)
	}
	markTail(len(text))
	return values
}

func encodeX12(c *cursor, text []byte) bool {
	if len(text) == 0 {
		return true
	}
	values := x12Values(text)
	for i := 0; i < len(text); {
		if values[i] != x12None {
			if !c.latch(stateX12) || !putTriplet(c, values[i], values[i+1], values[i+2]) {
				return false
			}
			i += 3
			continue
		}
		if !c.unlatch() {
			return false
		}
		n := asciiStep(c, text[i:])
		if n == 0 {
			return false
		}
		i += n
	}
	return c.unlatch()
}
