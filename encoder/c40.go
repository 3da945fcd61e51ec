package encoder

import "strings"

// tripletSet describes a character set packed three values to two
// codewords. C40 and Text share everything except the basic and shift 3
// alphabets.
type tripletSet struct {
	state  encodation
	basic  string
	shift3 string
}

const shift2Chars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_"

var (
	c40Set = tripletSet{
		state:  stateC40,
		basic:  " 0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ",
		shift3: "`abcdefghijklmnopqrstuvwxyz{|}~\x7f",
	}
	textSet = tripletSet{
		state:  stateText,
		basic:  " 0123456789abcdefghijklmnopqrstuvwxyz",
		shift3: "`ABCDEFGHIJKLMNOPQRSTUVWXYZ{|}~\x7f",
	}
)

// appendValues appends the values for ch. Basic characters start at 3;
// 0, 1 and 2 select shift 1, 2 and 3. Bytes above 127 are preceded by
// shift 2 + 30 (upper shift).
func (ts *tripletSet) appendValues(values []int, ch byte) []int {
	if ch > 127 {
		values = append(values, 1, 30)
		ch -= 128
	}
	if i := strings.IndexByte(ts.basic, ch); i >= 0 {
		return append(values, i+3)
	}
	if ch < 32 {
		return append(values, 0, int(ch))
	}
	if i := strings.IndexByte(shift2Chars, ch); i >= 0 {
		return append(values, 1, i)
	}
	return append(values, 2, strings.IndexByte(ts.shift3, ch))
}

// putTriplet packs three values into two codewords.
func putTriplet(c *cursor, v1, v2, v3 int) bool {
	v := 1600*v1 + 40*v2 + v3 + 1
	return c.put(byte(v>>8), byte(v))
}

// encodeTriplets latches into the set, packs every complete triple and
// unlatches. Input after the last triple boundary that the values fill
// exactly is written in ASCII.
func encodeTriplets(c *cursor, text []byte, ts *tripletSet) bool {
	if len(text) == 0 {
		return true
	}
	if !c.latch(ts.state) {
		return false
	}
	var values []int
	consumed, committed := 0, 0
	for i, ch := range text {
		if len(values)%3 == 0 {
			consumed, committed = i, len(values)
		}
		values = ts.appendValues(values, ch)
	}
	if len(values)%3 == 0 {
		consumed, committed = len(text), len(values)
	}
	for i := 0; i < committed; i += 3 {
		if !putTriplet(c, values[i], values[i+1], values[i+2]) {
			return false
		}
	}
	if !c.unlatch() {
		return false
	}
	return encodeASCII(c, text[consumed:])
}

func encodeC40(c *cursor, text []byte) bool {
	return encodeTriplets(c, text, &c40Set)
}

func encodeText(c *cursor, text []byte) bool {
	return encodeTriplets(c, text, &textSet)
}
