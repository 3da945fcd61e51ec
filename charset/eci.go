// Package charset maps character set names to ECI values and converts
// Unicode text into the byte encodings that ECIs announce.
package charset

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

var (
	// ErrFormatECI indicates an invalid ECI value.
	ErrFormatECI = errors.New("charset: invalid ECI value")

	// ErrUnsupported indicates a character set without an encoder.
	ErrUnsupported = errors.New("charset: unsupported character set")
)

// ECI represents a Character Set Extended Channel Interpretation.
type ECI struct {
	Value   int
	Name    string
	GoName  string // IANA name
	Aliases []string
	enc     encoding.Encoding
}

// pre-defined ECIs
var (
	ECICp437      = &ECI{0, "Cp437", "IBM437", nil, charmap.CodePage437}
	ECIISO8859_1  = &ECI{1, "ISO8859_1", "ISO-8859-1", []string{"latin1"}, charmap.ISO8859_1}
	ECIISO8859_2  = &ECI{4, "ISO8859_2", "ISO-8859-2", nil, charmap.ISO8859_2}
	ECIISO8859_3  = &ECI{5, "ISO8859_3", "ISO-8859-3", nil, charmap.ISO8859_3}
	ECIISO8859_4  = &ECI{6, "ISO8859_4", "ISO-8859-4", nil, charmap.ISO8859_4}
	ECIISO8859_5  = &ECI{7, "ISO8859_5", "ISO-8859-5", nil, charmap.ISO8859_5}
	ECIISO8859_6  = &ECI{8, "ISO8859_6", "ISO-8859-6", nil, charmap.ISO8859_6}
	ECIISO8859_7  = &ECI{9, "ISO8859_7", "ISO-8859-7", nil, charmap.ISO8859_7}
	ECIISO8859_8  = &ECI{10, "ISO8859_8", "ISO-8859-8", nil, charmap.ISO8859_8}
	ECIISO8859_9  = &ECI{11, "ISO8859_9", "ISO-8859-9", nil, charmap.ISO8859_9}
	ECIISO8859_10 = &ECI{12, "ISO8859_10", "ISO-8859-10", nil, charmap.ISO8859_10}
	ECIISO8859_11 = &ECI{13, "ISO8859_11", "ISO-8859-11", nil, nil}
	ECIISO8859_13 = &ECI{15, "ISO8859_13", "ISO-8859-13", nil, charmap.ISO8859_13}
	ECIISO8859_14 = &ECI{16, "ISO8859_14", "ISO-8859-14", nil, charmap.ISO8859_14}
	ECIISO8859_15 = &ECI{17, "ISO8859_15", "ISO-8859-15", nil, charmap.ISO8859_15}
	ECIISO8859_16 = &ECI{18, "ISO8859_16", "ISO-8859-16", nil, charmap.ISO8859_16}
	ECISJIS       = &ECI{20, "SJIS", "Shift_JIS", nil, japanese.ShiftJIS}
	ECICp1250     = &ECI{21, "Cp1250", "windows-1250", nil, charmap.Windows1250}
	ECICp1251     = &ECI{22, "Cp1251", "windows-1251", nil, charmap.Windows1251}
	ECICp1252     = &ECI{23, "Cp1252", "windows-1252", nil, charmap.Windows1252}
	ECICp1256     = &ECI{24, "Cp1256", "windows-1256", nil, charmap.Windows1256}
	ECIUTF16BE    = &ECI{25, "UnicodeBigUnmarked", "UTF-16BE", []string{"UnicodeBig"}, unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)}
	ECIUTF8       = &ECI{26, "UTF8", "UTF-8", nil, unicode.UTF8}
	ECIASCII      = &ECI{27, "ASCII", "US-ASCII", nil, nil}
	ECIBig5       = &ECI{28, "Big5", "Big5", nil, traditionalchinese.Big5}
	ECIGB18030    = &ECI{29, "GB18030", "GB18030", []string{"GB2312", "EUC_CN", "GBK"}, simplifiedchinese.GB18030}
	ECIEUC_KR     = &ECI{30, "EUC_KR", "EUC-KR", nil, korean.EUCKR}
)

var (
	valueToECI map[int]*ECI
	nameToECI  map[string]*ECI
)

func init() {
	valueToECI = make(map[int]*ECI)
	nameToECI = make(map[string]*ECI)

	allECIs := []*ECI{
		ECICp437, ECIISO8859_1, ECIISO8859_2, ECIISO8859_3, ECIISO8859_4,
		ECIISO8859_5, ECIISO8859_6, ECIISO8859_7, ECIISO8859_8, ECIISO8859_9,
		ECIISO8859_10, ECIISO8859_11, ECIISO8859_13, ECIISO8859_14,
		ECIISO8859_15, ECIISO8859_16, ECISJIS, ECICp1250, ECICp1251,
		ECICp1252, ECICp1256, ECIUTF16BE, ECIUTF8, ECIASCII, ECIBig5,
		ECIGB18030, ECIEUC_KR,
	}

	// Add additional value mappings
	extraValues := map[*ECI][]int{
		ECICp437:     {0, 2},
		ECIISO8859_1: {1, 3},
		ECIASCII:     {27, 170},
	}

	for _, eci := range allECIs {
		if vals, ok := extraValues[eci]; ok {
			for _, v := range vals {
				valueToECI[v] = eci
			}
		} else {
			valueToECI[eci.Value] = eci
		}
		nameToECI[strings.ToLower(eci.Name)] = eci
		nameToECI[strings.ToLower(eci.GoName)] = eci
		for _, alias := range eci.Aliases {
			nameToECI[strings.ToLower(alias)] = eci
		}
	}
}

// ByValue returns the ECI for the given value. It returns nil and no error
// for values in range that name no known character set.
func ByValue(value int) (*ECI, error) {
	if value < 0 || value >= 900 {
		return nil, ErrFormatECI
	}
	return valueToECI[value], nil
}

// ByName returns the ECI for the given case-insensitive encoding name, or
// nil if it is unknown.
func ByName(name string) *ECI {
	return nameToECI[strings.ToLower(name)]
}

func (e *ECI) String() string {
	return e.GoName
}

// Extension returns the extension directive that announces this ECI.
func (e *ECI) Extension() string {
	return fmt.Sprintf("e%06d", e.Value)
}

// Encode converts UTF-8 text into this character set.
func (e *ECI) Encode(text string) ([]byte, error) {
	if e == ECIASCII {
		for i := 0; i < len(text); i++ {
			if text[i] >= 0x80 {
				return nil, fmt.Errorf("charset: %q is not US-ASCII", text)
			}
		}
		return []byte(text), nil
	}
	if e.enc == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, e.GoName)
	}
	b, err := e.enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("charset: cannot encode text as %s: %w", e.GoName, err)
	}
	return b, nil
}

// Guess picks a character set for text: ISO-8859-1, which readers assume
// when no ECI is given, if it can represent text, and UTF-8 otherwise.
func Guess(text string) *ECI {
	if _, err := ECIISO8859_1.Encode(text); err == nil {
		return ECIISO8859_1
	}
	return ECIUTF8
}
