package encoder

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPadCodewords(t *testing.T) {
	tests := []struct {
		in       []byte
		capacity int
		want     []byte
	}{
		{[]byte{73}, 5, []byte{73, 129, 70, 220, 115}},
		{nil, 3, []byte{129, 175, 70}},
		{[]byte{66}, 8, []byte{66, 129, 70, 220, 115, 11, 161, 56}},
		{[]byte{142, 164, 186}, 3, []byte{142, 164, 186}},
	}
	for _, tc := range tests {
		got := PadCodewords(tc.in, tc.capacity)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("PadCodewords(%v, %d) mismatch (-want +got):\n%s", tc.in, tc.capacity, diff)
		}
	}
}

func TestPadCodewordsFillsCapacity(t *testing.T) {
	for _, si := range Symbols() {
		for _, used := range []int{0, 1, si.DataCapacity / 2, si.DataCapacity} {
			got := PadCodewords(make([]byte, used), si.DataCapacity)
			if len(got) != si.DataCapacity {
				t.Errorf("%v with %d used: %d codewords", &si, used, len(got))
			}
			for i := used + 1; i < len(got); i++ {
				if got[i] == 0 || got[i] > 254 {
					t.Errorf("%v: pad %d = %d out of range", &si, i, got[i])
				}
			}
		}
	}
}
