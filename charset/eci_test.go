package charset

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestByValue(t *testing.T) {
	tests := []struct {
		value int
		want  *ECI
	}{
		{0, ECICp437},
		{2, ECICp437},
		{3, ECIISO8859_1},
		{26, ECIUTF8},
		{170, ECIASCII},
		{899, nil},
	}
	for _, tc := range tests {
		got, err := ByValue(tc.value)
		if err != nil {
			t.Errorf("ByValue(%d): %v", tc.value, err)
		}
		if got != tc.want {
			t.Errorf("ByValue(%d) = %v, want %v", tc.value, got, tc.want)
		}
	}
	for _, v := range []int{-1, 900} {
		if _, err := ByValue(v); !errors.Is(err, ErrFormatECI) {
			t.Errorf("ByValue(%d): err = %v, want ErrFormatECI", v, err)
		}
	}
}

func TestByName(t *testing.T) {
	for name, want := range map[string]*ECI{
		"UTF-8":      ECIUTF8,
		"utf8":       ECIUTF8,
		"latin1":     ECIISO8859_1,
		"ISO-8859-1": ECIISO8859_1,
		"shift_jis":  ECISJIS,
		"GBK":        ECIGB18030,
		"klingon":    nil,
	} {
		if got := ByName(name); got != want {
			t.Errorf("ByName(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		eci  *ECI
		text string
		want []byte
	}{
		{ECIISO8859_1, "AéB", []byte{'A', 0xe9, 'B'}},
		{ECIUTF8, "é", []byte{0xc3, 0xa9}},
		{ECIASCII, "plain", []byte("plain")},
		{ECICp1252, "€", []byte{0x80}},
		{ECIUTF16BE, "A", []byte{0x00, 0x41}},
		{ECISJIS, "ア", []byte{0x83, 0x41}},
	}
	for _, tc := range tests {
		got, err := tc.eci.Encode(tc.text)
		if err != nil {
			t.Errorf("%v %q: %v", tc.eci, tc.text, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%v %q mismatch (-want +got):\n%s", tc.eci, tc.text, diff)
		}
	}
}

func TestEncodeErrors(t *testing.T) {
	if _, err := ECIISO8859_1.Encode("日本"); err == nil {
		t.Error("expected error for text outside ISO-8859-1")
	}
	if _, err := ECIASCII.Encode("é"); err == nil {
		t.Error("expected error for text outside US-ASCII")
	}
	if _, err := ECIISO8859_11.Encode("x"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("err = %v, want ErrUnsupported", err)
	}
}

func TestGuess(t *testing.T) {
	if got := Guess("Grüße"); got != ECIISO8859_1 {
		t.Errorf("Guess(latin) = %v", got)
	}
	if got := Guess("日本"); got != ECIUTF8 {
		t.Errorf("Guess(japanese) = %v", got)
	}
}

func TestExtension(t *testing.T) {
	if got := ECIUTF8.Extension(); got != "e000026" {
		t.Errorf("Extension() = %q", got)
	}
}
