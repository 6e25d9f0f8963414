package stablehash

import (
	"math/big"
	"testing"
)

func TestValue_Deterministic(t *testing.T) {
	first := Value("AAPL earnings beat", "AAPL")

	for i := 0; i < 10; i++ {
		if got := Value("AAPL earnings beat", "AAPL"); got.Cmp(first) != 0 {
			t.Fatalf("Value changed between calls: %s vs %s", got, first)
		}
	}
}

func TestValue_KnownDigest(t *testing.T) {
	// md5("AAPL") interpreted as a 128-bit unsigned integer
	want, ok := new(big.Int).SetString("8b10e4ae9eeb5684921a9ab27e4d87aa", 16)
	if !ok {
		t.Fatal("failed to parse expected digest")
	}

	if got := Value("AAPL", ""); got.Cmp(want) != 0 {
		t.Errorf("Value(\"AAPL\", \"\") = %s, want %s", got.Text(16), want.Text(16))
	}
}

func TestValue_SeedMatters(t *testing.T) {
	if Value("AAPL", "a").Cmp(Value("AAPL", "b")) == 0 {
		t.Error("different seeds produced identical values")
	}
}

func TestMod_Range(t *testing.T) {
	texts := []string{"", "AAPL", "ZZZZ", "some longer headline about earnings", "ümlaut tëxt"}

	for _, text := range texts {
		for _, n := range []int64{1, 2, 20, 5000} {
			got := Mod(text, "seed", n)
			if got < 0 || got >= n {
				t.Errorf("Mod(%q, seed, %d) = %d, out of [0, %d)", text, n, got, n)
			}
		}
	}
}

func TestMod_MatchesValue(t *testing.T) {
	want := new(big.Int).Mod(Value("MSFT product launch", "MSFT"), big.NewInt(20)).Int64()

	if got := Mod("MSFT product launch", "MSFT", 20); got != want {
		t.Errorf("Mod = %d, want %d", got, want)
	}
}
