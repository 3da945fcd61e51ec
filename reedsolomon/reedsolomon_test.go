package reedsolomon

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGaloisFieldBasics(t *testing.T) {
	// a * inverse(a) should be 1
	for a := 1; a < 256; a++ {
		inv := Inverse(a)
		product := Multiply(a, inv)
		if product != 1 {
			t.Errorf("a=%d: a*inv(a) = %d, want 1", a, product)
		}
		if got := Exp(Log(a)); got != a {
			t.Errorf("exp(log(%d)) = %d", a, got)
		}
	}

	// a XOR a should be 0
	if AddOrSubtract(42, 42) != 0 {
		t.Error("42 XOR 42 should be 0")
	}
	if Multiply(0, 17) != 0 || Multiply(17, 0) != 0 {
		t.Error("multiplying by zero should give zero")
	}
}

func TestExpTableMatchesPrimitive(t *testing.T) {
	x := 1
	for i := 0; i < 255; i++ {
		if expTable[i] != x {
			t.Fatalf("expTable[%d] = %d, want %d", i, expTable[i], x)
		}
		x <<= 1
		if x >= 256 {
			x ^= Primitive
		}
	}
	if expTable[255] != 1 {
		t.Errorf("expTable[255] = %d, want 1", expTable[255])
	}
}

// buildGenerator multiplies out (x + 2^1)(x + 2^2)...(x + 2^degree) and
// returns the coefficients lowest order first, without the leading 1.
func buildGenerator(degree int) []int {
	g := []int{1}
	for d := 1; d <= degree; d++ {
		next := make([]int, len(g)+1)
		root := Exp(d)
		for j, c := range g {
			next[j+1] ^= c
			next[j] ^= Multiply(c, root)
		}
		g = next
	}
	return g[:degree]
}

func TestGeneratorsMatchRoots(t *testing.T) {
	sizes := []int{5, 7, 10, 11, 12, 14, 18, 20, 24, 28, 36, 42, 48, 56, 62, 68}
	if len(generators) != len(sizes) {
		t.Fatalf("%d generator polynomials, want %d", len(generators), len(sizes))
	}
	for _, n := range sizes {
		g, ok := Generator(n)
		if !ok {
			t.Errorf("no generator for %d", n)
			continue
		}
		if diff := cmp.Diff(buildGenerator(n), g); diff != "" {
			t.Errorf("generator %d mismatch (-computed +table):\n%s", n, diff)
		}
	}
	if _, ok := Generator(6); ok {
		t.Error("Generator(6) should not exist")
	}
}

func TestEncodeISOExample(t *testing.T) {
	// "123456" in a 10x10 symbol, ISO/IEC 16022 Annex O.
	toEncode := []byte{142, 164, 186, 0, 0, 0, 0, 0}
	if err := NewEncoder().Encode(toEncode, 5); err != nil {
		t.Fatal(err)
	}
	want := []byte{142, 164, 186, 114, 25, 5, 88, 102}
	if !bytes.Equal(toEncode, want) {
		t.Errorf("got %v, want %v", toEncode, want)
	}
}

// evaluate treats cw as a polynomial, highest order first, and evaluates it at a.
func evaluate(cw []byte, a int) int {
	result := 0
	for _, c := range cw {
		result = AddOrSubtract(Multiply(a, result), int(c))
	}
	return result
}

func TestEncodeSyndromesVanish(t *testing.T) {
	enc := NewEncoder()
	for _, ecSize := range []int{5, 12, 28, 68} {
		dataSize := 40
		toEncode := make([]byte, dataSize+ecSize)
		for i := 0; i < dataSize; i++ {
			toEncode[i] = byte(i*37 + 11)
		}
		if err := enc.Encode(toEncode, ecSize); err != nil {
			t.Fatalf("ec=%d: %v", ecSize, err)
		}
		for i := 1; i <= ecSize; i++ {
			if s := evaluate(toEncode, Exp(i)); s != 0 {
				t.Errorf("ec=%d: syndrome %d = %d, want 0", ecSize, i, s)
			}
		}
	}
}

func TestRemainderDeterministic(t *testing.T) {
	data := []byte("deterministic remainder")
	a := make([]byte, 14)
	b := make([]byte, 14)
	if err := NewEncoder().Remainder(data, a); err != nil {
		t.Fatal(err)
	}
	enc := NewEncoder()
	enc.Remainder([]byte("something else entirely"), b)
	if err := enc.Remainder(data, b); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("remainders differ: %v vs %v", a, b)
	}
}

func TestEncodeErrors(t *testing.T) {
	enc := NewEncoder()
	if err := enc.Encode(make([]byte, 9), 6); err == nil {
		t.Error("expected error for unsupported block size")
	}
	if err := enc.Encode(make([]byte, 5), 5); err == nil {
		t.Error("expected error when no data codewords are present")
	}
}
