// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import "fmt"

type compactFunc func(c *cursor, text []byte) bool

var compactors = map[Mode]compactFunc{
	ModeASCII:   encodeASCII,
	ModeC40:     encodeC40,
	ModeText:    encodeText,
	ModeBase256: encodeBase256,
	ModeX12:     encodeX12,
	ModeEDIFACT: encodeEDIFACT,
	ModeRaw:     encodeRaw,
}

// priority is the order in which modes are tried. It breaks ties in the
// shortest-output search and decides the winner of first-fit.
var priority = []Mode{ModeASCII, ModeText, ModeC40, ModeBase256, ModeX12, ModeEDIFACT}

// compact runs a single mode. The result starts with prefix and holds at
// most capacity codewords; ok is false if it would not fit.
func compact(mode Mode, text, prefix []byte, capacity int) (codewords []byte, ok bool) {
	if len(prefix) > capacity {
		return nil, false
	}
	c := newCursor(prefix, capacity)
	if !compactors[mode](c, text) {
		return nil, false
	}
	return c.data, true
}

// EncodeHighLevel compacts text into codewords that follow prefix. With
// ModeAuto every mode is tried and the shortest output wins, ties going
// to the earlier mode in ASCII, Text, C40, Base 256, X12, EDIFACT order.
// Otherwise the given mode is used. It returns the mode that produced the
// codewords, or ErrTextTooBig if the output exceeds capacity.
func EncodeHighLevel(text, prefix []byte, mode Mode, capacity int) ([]byte, Mode, error) {
	if mode != ModeAuto {
		return encodeForced(text, prefix, mode, capacity)
	}
	var best []byte
	bestMode := ModeAuto
	for _, m := range priority {
		codewords, ok := compact(m, text, prefix, capacity)
		if ok && (best == nil || len(codewords) < len(best)) {
			best, bestMode = codewords, m
		}
	}
	if best == nil {
		return nil, ModeAuto, fmt.Errorf("%w: no mode fits %d codewords", ErrTextTooBig, capacity)
	}
	return best, bestMode, nil
}

// EncodeFirstFit compacts text for a symbol of fixed capacity. With
// ModeAuto the modes are tried in priority order and the first one that
// fits is used, even if a later mode would be shorter.
func EncodeFirstFit(text, prefix []byte, mode Mode, capacity int) ([]byte, Mode, error) {
	if mode != ModeAuto {
		return encodeForced(text, prefix, mode, capacity)
	}
	for _, m := range priority {
		if codewords, ok := compact(m, text, prefix, capacity); ok {
			return codewords, m, nil
		}
	}
	return nil, ModeAuto, fmt.Errorf("%w: no mode fits %d codewords", ErrTextTooBig, capacity)
}

func encodeForced(text, prefix []byte, mode Mode, capacity int) ([]byte, Mode, error) {
	if _, known := compactors[mode]; !known {
		return nil, mode, fmt.Errorf("%w: %v", ErrInvalidMode, mode)
	}
	codewords, ok := compact(mode, text, prefix, capacity)
	if !ok {
		return nil, mode, fmt.Errorf("%w: %v output exceeds %d codewords", ErrTextTooBig, mode, capacity)
	}
	return codewords, mode, nil
}
