package encoder

import (
	"fmt"
	"strings"
)

// Mode selects the compaction strategy used to turn input bytes into
// codewords.
type Mode int

const (
	// ModeAuto tries every compaction mode and keeps the best result.
	ModeAuto Mode = iota
	// ModeASCII encodes one byte per codeword, digit pairs in one codeword.
	ModeASCII
	// ModeC40 packs uppercase text three characters to two codewords.
	ModeC40
	// ModeText packs lowercase text three characters to two codewords.
	ModeText
	// ModeBase256 stores bytes verbatim behind a length field.
	ModeBase256
	// ModeX12 packs the ANSI X12 character set.
	ModeX12
	// ModeEDIFACT packs printable ASCII four characters to three codewords.
	ModeEDIFACT
	// ModeRaw copies pre-encoded codewords.
	ModeRaw
)

var modeNames = [...]string{
	ModeAuto:    "auto",
	ModeASCII:   "ascii",
	ModeC40:     "c40",
	ModeText:    "text",
	ModeBase256: "base256",
	ModeX12:     "x12",
	ModeEDIFACT: "edifact",
	ModeRaw:     "raw",
}

// String returns the lowercase name of the mode.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m >= ModeAuto && m <= ModeRaw
}

// ParseMode returns the mode with the given case-insensitive name.
// "byte" and "b256" are accepted for ModeBase256.
func ParseMode(name string) (Mode, error) {
	name = strings.ToLower(name)
	switch name {
	case "byte", "b256":
		return ModeBase256, nil
	}
	for m, n := range modeNames {
		if n == name {
			return Mode(m), nil
		}
	}
	return ModeAuto, fmt.Errorf("%w: %q", ErrInvalidMode, name)
}

// Codewords with a fixed meaning.
const (
	cwPad              = 129
	cwLatchC40         = 230
	cwLatchBase256     = 231
	cwFNC1             = 232
	cwStructuredAppend = 233
	cwReaderProgram    = 234
	cwUpperShift       = 235
	cwMacro05          = 236
	cwMacro06          = 237
	cwLatchX12         = 238
	cwLatchText        = 239
	cwLatchEDIFACT     = 240
	cwECI              = 241
	cwUnlatch          = 254
)

// encodation is the decoder state implied by the codewords written so far.
type encodation int

const (
	stateASCII encodation = iota
	stateC40
	stateText
	stateX12
	stateEDIFACT
	stateBase256
)

// latchCodewords holds the codeword that switches from ASCII into each state.
var latchCodewords = [...]byte{
	stateC40:     cwLatchC40,
	stateText:    cwLatchText,
	stateX12:     cwLatchX12,
	stateEDIFACT: cwLatchEDIFACT,
	stateBase256: cwLatchBase256,
}
