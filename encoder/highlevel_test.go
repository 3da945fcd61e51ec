package encoder

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompactGolden(t *testing.T) {
	tests := []struct {
		text string
		mode Mode
		want []byte
	}{
		{"Hello", ModeASCII, []byte{73, 102, 109, 109, 112}},
		{"12345", ModeASCII, []byte{142, 164, 54}},
		{"A\xe9B", ModeASCII, []byte{66, 235, 106, 67}},
		{"AIMAIMAIM", ModeC40, []byte{230, 91, 11, 91, 11, 91, 11, 254}},
		{"AIMAIMAI", ModeC40, []byte{230, 91, 11, 91, 11, 254, 66, 74}},
		{"abc", ModeC40, []byte{230, 12, 171, 12, 212, 254}},
		{"A1b", ModeC40, []byte{230, 254, 66, 50, 99}},
		{"A\xe9B", ModeC40, []byte{230, 87, 199, 13, 248, 254}},
		{"123456", ModeC40, []byte{230, 32, 56, 51, 115, 254}},
		{"aimaimaim", ModeText, []byte{239, 91, 11, 91, 11, 91, 11, 254}},
		{"abc", ModeText, []byte{239, 89, 233, 254}},
		{"Hello", ModeText, []byte{239, 13, 211, 160, 69, 254}},
		{"A\xe9B", ModeText, []byte{239, 254, 66, 235, 106, 67}},
		{"123456", ModeText, []byte{239, 32, 56, 51, 115, 254}},
		{"AIMAIMAIM", ModeBase256, []byte{231, 53, 2, 160, 57, 195, 97, 250, 132, 33, 187}},
		{"abc", ModeBase256, []byte{231, 47, 34, 185, 79}},
		{"AIMAIMAIM", ModeX12, []byte{238, 91, 11, 91, 11, 91, 11, 254}},
		{"ABC>ABC123>AB", ModeX12, []byte{238, 89, 233, 14, 192, 100, 207, 44, 31, 254, 67}},
		{"*ABC*ABC*ABC*", ModeX12, []byte{238, 8, 128, 100, 55, 96, 66, 89, 233, 254, 43}},
		{"\r*> 0123456789", ModeX12, []byte{238, 0, 43, 19, 102, 38, 161, 57, 220, 254, 219}},
		{"ABCDEFabc", ModeX12, []byte{238, 89, 233, 109, 36, 254, 98, 99, 100}},
		{"AIMAIMAIM", ModeEDIFACT, []byte{240, 4, 147, 65, 36, 208, 73, 53, 240}},
		{"Hello", ModeEDIFACT, []byte{240, 33, 240, 102, 109, 109, 112}},
		{"EDIFACT", ModeEDIFACT, []byte{240, 20, 66, 70, 4, 53, 31}},
		{"EDIFACT!?", ModeEDIFACT, []byte{240, 20, 66, 70, 4, 53, 33, 253, 240}},
		{"A\xe9B", ModeEDIFACT, []byte{240, 5, 240, 235, 106, 240, 9, 240}},
		{"ABCD", ModeEDIFACT, []byte{240, 4, 32, 196, 124}},
		{"ABC", ModeEDIFACT, []byte{240, 4, 32, 223}},
		{"AB", ModeEDIFACT, []byte{240, 4, 39, 192}},
		{"\x01\x02", ModeRaw, []byte{1, 2}},
	}
	for _, tc := range tests {
		t.Run(tc.mode.String()+"/"+tc.text, func(t *testing.T) {
			got, ok := compact(tc.mode, []byte(tc.text), nil, Largest().DataCapacity)
			if !ok {
				t.Fatal("compaction did not fit")
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("codewords mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompactEmpty(t *testing.T) {
	for _, m := range priority {
		got, ok := compact(m, nil, nil, 3)
		if !ok || len(got) != 0 {
			t.Errorf("%v: got %v, %v; want no codewords", m, got, ok)
		}
	}
}

func TestCompactBase256LongLength(t *testing.T) {
	got, ok := compact(ModeBase256, bytes.Repeat([]byte{'A'}, 300), nil, Largest().DataCapacity)
	if !ok {
		t.Fatal("compaction did not fit")
	}
	if len(got) != 303 {
		t.Errorf("len = %d, want 303", len(got))
	}
	if diff := cmp.Diff([]byte{231, 38, 243, 152}, got[:4]); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}
}

func TestCompactCapacity(t *testing.T) {
	// Needs exactly 8 codewords in C40.
	text := []byte("AIMAIMAIM")
	if _, ok := compact(ModeC40, text, nil, 7); ok {
		t.Error("C40 should not fit 7 codewords")
	}
	if got, ok := compact(ModeC40, text, nil, 8); !ok || len(got) != 8 {
		t.Errorf("C40 into 8 codewords: got %v, %v", got, ok)
	}
	if _, ok := compact(ModeASCII, nil, []byte{1, 2, 3}, 2); ok {
		t.Error("a prefix longer than the capacity should not fit")
	}
}

func TestCompactKeepsPrefix(t *testing.T) {
	prefix := []byte{233, 27, 1, 76, 232}
	got, ok := compact(ModeASCII, []byte("Hello"), prefix, 10)
	if !ok {
		t.Fatal("compaction did not fit")
	}
	want := []byte{233, 27, 1, 76, 232, 73, 102, 109, 109, 112}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("codewords mismatch (-want +got):\n%s", diff)
	}
}

func TestBase256RandomizationUsesAbsolutePosition(t *testing.T) {
	plain, _ := compact(ModeBase256, []byte("abc"), nil, 100)
	shifted, _ := compact(ModeBase256, []byte("abc"), []byte{232}, 100)
	if bytes.Equal(plain, shifted[1:]) {
		t.Error("randomization should depend on the absolute codeword position")
	}
}

func TestDigitPairsHalveASCII(t *testing.T) {
	digits, _ := compact(ModeASCII, []byte("0123456789"), nil, 100)
	letters, _ := compact(ModeASCII, []byte("ABCDEFGHIJ"), nil, 100)
	if 2*len(digits) > len(letters) {
		t.Errorf("digits: %d codewords, letters: %d", len(digits), len(letters))
	}
}

func TestEncodeHighLevelAuto(t *testing.T) {
	tests := []struct {
		text string
		mode Mode
	}{
		{"123456", ModeASCII},
		{"AIMAIMAIM", ModeC40},
		{"AIMAIMAI", ModeASCII}, // tie with C40, ASCII has priority
		{"aimaimaim", ModeText},
		{"ABC>ABC123>AB", ModeX12},
		{"ABCDEFGHIJKLMNOP", ModeC40},
	}
	for _, tc := range tests {
		_, mode, err := EncodeHighLevel([]byte(tc.text), nil, ModeAuto, Largest().DataCapacity)
		if err != nil {
			t.Errorf("%q: %v", tc.text, err)
			continue
		}
		if mode != tc.mode {
			t.Errorf("%q: mode = %v, want %v", tc.text, mode, tc.mode)
		}
	}
}

func TestEncodeHighLevelPicksShortest(t *testing.T) {
	text := []byte("AIMAIMAIMAIM")
	best, _, err := EncodeHighLevel(text, nil, ModeAuto, Largest().DataCapacity)
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range priority {
		if got, ok := compact(m, text, nil, Largest().DataCapacity); ok && len(got) < len(best) {
			t.Errorf("%v produced %d codewords, auto chose %d", m, len(got), len(best))
		}
	}
}

func TestEncodeFirstFit(t *testing.T) {
	text := []byte("AIMAIMAIMAIM")
	got, mode, err := EncodeFirstFit(text, nil, ModeAuto, 12)
	if err != nil {
		t.Fatal(err)
	}
	if mode != ModeASCII || len(got) != 12 {
		t.Errorf("first fit: mode %v, %d codewords; want ascii, 12", mode, len(got))
	}
	_, mode, _ = EncodeHighLevel(text, nil, ModeAuto, 12)
	if mode != ModeC40 {
		t.Errorf("shortest: mode %v, want c40", mode)
	}
	if _, _, err := EncodeFirstFit(bytes.Repeat([]byte{'a'}, 20), nil, ModeAuto, 5); !errors.Is(err, ErrTextTooBig) {
		t.Errorf("err = %v, want ErrTextTooBig", err)
	}
}

func TestEncodeForcedMode(t *testing.T) {
	if _, _, err := EncodeHighLevel([]byte("AIMAIMAIM"), nil, ModeC40, 5); !errors.Is(err, ErrTextTooBig) {
		t.Errorf("err = %v, want ErrTextTooBig", err)
	}
	if _, _, err := EncodeHighLevel([]byte("x"), nil, Mode(42), 5); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("err = %v, want ErrInvalidMode", err)
	}
	got, mode, err := EncodeHighLevel([]byte{5, 6, 7}, nil, ModeRaw, 3)
	if err != nil || mode != ModeRaw {
		t.Fatalf("raw: %v, %v", mode, err)
	}
	if diff := cmp.Diff([]byte{5, 6, 7}, got); diff != "" {
		t.Errorf("raw mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ModeAuto, ModeASCII, ModeC40, ModeText, ModeBase256, ModeX12, ModeEDIFACT, ModeRaw} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if got, err := ParseMode("B256"); err != nil || got != ModeBase256 {
		t.Errorf("ParseMode(B256) = %v, %v", got, err)
	}
	if _, err := ParseMode("qr"); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("err = %v, want ErrInvalidMode", err)
	}
	if s := Mode(99).String(); s != "Mode(99)" {
		t.Errorf("String() = %q", s)
	}
}
