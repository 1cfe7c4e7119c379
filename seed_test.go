package flowart

import (
	"strings"
	"testing"
)

func TestParseSeed(t *testing.T) {
	s, err := Init("2a")
	if err != nil {
		t.Fatal(err)
	}
	if s.GetSeed() != 42 || s.String() != "2a" {
		t.Errorf("Want seed 42 (2a), got %d (%s)", s.GetSeed(), s)
	}
	if _, err := Init("xyz"); err == nil {
		t.Errorf("Want error for a non hex seed")
	}
	if _, err := Init(""); err != nil {
		t.Errorf("Want a time seed for an empty string, got %v", err)
	}
}

func TestRandReproducible(t *testing.T) {
	a, b := NewSeed(42).Rand(), NewSeed(42).Rand()
	for i := 0; i < 10; i++ {
		if x, y := a.Uint32(), b.Uint32(); x != y {
			t.Fatalf("Want equal streams, got %d and %d at %d", x, y, i)
		}
	}
	if NewSeed(42).Rand().Uint64() == NewSeed(43).Rand().Uint64() {
		t.Errorf("Want different seeds to give different streams")
	}
	r := NewSeed(42).Rand()
	if x, y := r.Uint32(), r.Uint32(); x != 3665308120 || y != 882873876 {
		t.Errorf("Want seed 42 to start 3665308120, 882873876, got %d, %d", x, y)
	}
}

func TestGetFilename(t *testing.T) {
	got := NewSeed(255).GetFilename("out/flow-", ".svg")
	if !strings.HasPrefix(got, "out/flow-") || !strings.HasSuffix(got, "-ff.svg") {
		t.Errorf("Want out/flow-<hash>-ff.svg, got %q", got)
	}
}
