package reedsolomon

import "fmt"

// Encoder performs Reed-Solomon encoding of Data Matrix codeword blocks.
// An Encoder reuses scratch space between calls and is not safe for
// concurrent use.
type Encoder struct {
	ncout []int
}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode fills the last ecBytes values of toEncode with the error correction
// codewords for the data that precedes them. toEncode must have space for
// data + ecBytes values.
func (e *Encoder) Encode(toEncode []byte, ecBytes int) error {
	dataBytes := len(toEncode) - ecBytes
	if dataBytes <= 0 {
		return fmt.Errorf("reedsolomon: %d codewords leave no room for %d error correction codewords",
			len(toEncode), ecBytes)
	}
	return e.Remainder(toEncode[:dataBytes], toEncode[dataBytes:])
}

// Remainder divides data by the generator polynomial of degree len(ecc) and
// stores the remainder in ecc.
func (e *Encoder) Remainder(data, ecc []byte) error {
	nc := len(ecc)
	poly, ok := Generator(nc)
	if !ok {
		return fmt.Errorf("reedsolomon: no generator polynomial for %d error correction codewords", nc)
	}
	if cap(e.ncout) < nc+1 {
		e.ncout = make([]int, nc+1)
	}
	ncout := e.ncout[:nc+1]
	for i := range ncout {
		ncout[i] = 0
	}
	for _, d := range data {
		k := ncout[0] ^ int(d)
		for j := 0; j < nc; j++ {
			t := 0
			if k != 0 {
				t = expTable[(logTable[k]+logTable[poly[nc-j-1]])%255]
			}
			ncout[j] = ncout[j+1] ^ t
		}
	}
	for i := range ecc {
		ecc[i] = byte(ncout[i])
	}
	return nil
}
