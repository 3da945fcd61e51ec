// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

// randomize253State applies the 253-state randomization used for pad
// codewords. position is 1-based.
func randomize253State(codeword byte, position int) byte {
	pseudoRandom := ((149 * position) % 253) + 1
	tmp := int(codeword) + pseudoRandom
	if tmp > 254 {
		tmp -= 254
	}
	return byte(tmp)
}

// PadCodewords fills the unused data capacity. The first pad codeword is
// always 129; the rest are randomized by their position so that unused
// space does not form a regular pattern. The result always has exactly
// capacity codewords unless codewords is already longer.
func PadCodewords(codewords []byte, capacity int) []byte {
	if len(codewords) >= capacity {
		return codewords
	}
	result := make([]byte, capacity)
	copy(result, codewords)
	result[len(codewords)] = cwPad
	for i := len(codewords) + 1; i < capacity; i++ {
		result[i] = randomize253State(cwPad, i+1)
	}
	return result
}
