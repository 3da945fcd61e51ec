package encoder

import "fmt"

// maxDirectives bounds the number of directives in an extension string.
const maxDirectives = 20

// ParseExtensions reads the extension directives at the start of text and
// returns the control codewords they produce and the number of bytes of
// text they occupy, terminator included. Parsing stops at '.' or at the
// end of text.
//
//	e<6 digits>          ECI designator
//	s<2><2><5 digits>    structured append: position, total, file id
//	p                    reader programming
//	m5, m6               05/06 macro
//	f                    FNC1
//
// s, p and m are only allowed as the first directive. f is allowed first,
// or second after s or m. Other bytes are skipped.
func ParseExtensions(text []byte) ([]byte, int, error) {
	var out []byte
	order := 0
	var first byte
	for pos := 0; pos < len(text); {
		ch := text[pos]
		pos++
		switch ch {
		case '.':
			return out, pos, nil
		case 'e', 's', 'p', 'm', 'f':
		default:
			continue
		}
		order++
		if order > maxDirectives {
			return nil, 0, fmt.Errorf("%w: more than %d directives", ErrExtension, maxDirectives)
		}
		if order == 1 {
			first = ch
		}
		switch ch {
		case 'e':
			eci, err := extensionNumber(text, pos, 6)
			if err != nil {
				return nil, 0, err
			}
			pos += 6
			out = appendECI(out, eci)
		case 's':
			if order != 1 {
				return nil, 0, fmt.Errorf("%w: structured append must come first", ErrExtension)
			}
			codewords, err := structuredAppend(text, pos)
			if err != nil {
				return nil, 0, err
			}
			pos += 9
			out = append(out, codewords...)
		case 'p':
			if order != 1 {
				return nil, 0, fmt.Errorf("%w: reader programming must come first", ErrExtension)
			}
			out = append(out, cwReaderProgram)
		case 'm':
			if order != 1 {
				return nil, 0, fmt.Errorf("%w: macro must come first", ErrExtension)
			}
			if pos >= len(text) {
				return nil, 0, fmt.Errorf("%w: macro number missing", ErrExtension)
			}
			switch text[pos] {
			case '5':
				out = append(out, cwMacro05)
			case '6':
				out = append(out, cwMacro06)
			default:
				return nil, 0, fmt.Errorf("%w: unknown macro %q", ErrExtension, text[pos])
			}
			pos++
		case 'f':
			if order != 1 && (order != 2 || (first != 's' && first != 'm')) {
				return nil, 0, fmt.Errorf("%w: FNC1 must come first or follow s or m", ErrExtension)
			}
			out = append(out, cwFNC1)
		}
	}
	return out, len(text), nil
}

// extensionNumber parses n decimal digits of text starting at pos.
func extensionNumber(text []byte, pos, n int) (int, error) {
	if pos+n > len(text) {
		return 0, fmt.Errorf("%w: expected %d digits at offset %d", ErrExtension, n, pos)
	}
	v := 0
	for _, ch := range text[pos : pos+n] {
		if !isDigit(ch) {
			return 0, fmt.Errorf("%w: expected %d digits at offset %d", ErrExtension, n, pos)
		}
		v = v*10 + int(ch-'0')
	}
	return v, nil
}

// appendECI appends the ECI designator codeword and the value in one, two
// or three codewords depending on its magnitude.
func appendECI(out []byte, eci int) []byte {
	out = append(out, cwECI)
	switch {
	case eci < 127:
		return append(out, byte(eci+1))
	case eci < 16383:
		return append(out, byte((eci-127)/254+128), byte((eci-127)%254+1))
	default:
		return append(out,
			byte((eci-16383)/64516+192),
			byte((eci-16383)/254%254+1),
			byte((eci-16383)%254+1))
	}
}

// structuredAppend parses position (01-16), total (02-16) and file id
// (00000-64515) and returns the four codewords announcing them.
func structuredAppend(text []byte, pos int) ([]byte, error) {
	position, err := extensionNumber(text, pos, 2)
	if err != nil {
		return nil, err
	}
	total, err := extensionNumber(text, pos+2, 2)
	if err != nil {
		return nil, err
	}
	id, err := extensionNumber(text, pos+4, 5)
	if err != nil {
		return nil, err
	}
	if position < 1 || position > 16 || total < 2 || total > 16 || id > 64515 {
		return nil, fmt.Errorf("%w: structured append %d of %d, file %d out of range",
			ErrExtension, position, total, id)
	}
	return []byte{
		cwStructuredAppend,
		byte((position-1)<<4 | (17 - total)),
		byte(id/254 + 1),
		byte(id%254 + 1),
	}, nil
}
