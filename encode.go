package datamatrix

import (
	"fmt"

	"github.com/ericlevine/datamatrix/charset"
	"github.com/ericlevine/datamatrix/encoder"
)

// Mode selects the compaction strategy.
type Mode = encoder.Mode

// Compaction modes.
const (
	ModeAuto    = encoder.ModeAuto
	ModeASCII   = encoder.ModeASCII
	ModeC40     = encoder.ModeC40
	ModeText    = encoder.ModeText
	ModeBase256 = encoder.ModeBase256
	ModeX12     = encoder.ModeX12
	ModeEDIFACT = encoder.ModeEDIFACT
	ModeRaw     = encoder.ModeRaw
)

// ParseMode returns the mode with the given case-insensitive name.
func ParseMode(name string) (Mode, error) {
	return encoder.ParseMode(name)
}

// Options configures symbol generation. The zero value picks the mode and
// the smallest fitting symbol, with no quiet zone.
type Options struct {
	// Mode forces a compaction mode.
	Mode Mode

	// Height and Width request a specific symbol size. Both must be set
	// and must name a standard size. The mode is then the first one in
	// ASCII, Text, C40, Base 256, X12, EDIFACT order that fits.
	Height, Width int

	// QuietZone is the blank border in modules.
	QuietZone int

	// Extension treats the start of the message, up to the first '.', as
	// extension directives (ECI, structured append, macro, reader
	// programming, FNC1).
	Extension bool

	// TestOnly resolves size and codewords without drawing the bitmap.
	TestOnly bool
}

// Generate encodes text, one byte per character, into a symbol.
func Generate(text []byte, opts *Options) (*Symbol, error) {
	if opts == nil {
		opts = &Options{}
	}
	result, err := encoder.Encode(text, &encoder.Options{
		Mode:      opts.Mode,
		Height:    opts.Height,
		Width:     opts.Width,
		QuietZone: opts.QuietZone,
		Extension: opts.Extension,
		TestOnly:  opts.TestOnly,
	})
	if err != nil {
		return nil, err
	}
	return &Symbol{
		Height:     result.Symbol.Height,
		Width:      result.Symbol.Width,
		QuietZone:  opts.QuietZone,
		Mode:       result.Mode,
		DataLength: result.DataLength,
		Codewords:  result.Codewords,
		Bitmap:     result.Bitmap,
	}, nil
}

// GenerateString encodes text as ISO-8859-1, the character set readers
// assume by default.
func GenerateString(text string, opts *Options) (*Symbol, error) {
	b, err := charset.ECIISO8859_1.Encode(text)
	if err != nil {
		return nil, fmt.Errorf("datamatrix: %w", err)
	}
	return Generate(b, opts)
}

// Sizes returns the standard symbol sizes as height, width pairs in
// ascending capacity order.
func Sizes() [][2]int {
	symbols := encoder.Symbols()
	sizes := make([][2]int, len(symbols))
	for i, si := range symbols {
		sizes[i] = [2]int{si.Height, si.Width}
	}
	return sizes
}
