package palette

import (
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	black = color.RGBA{0, 0, 0, 255}
	red   = color.RGBA{255, 0, 0, 255}
	green = color.RGBA{0, 255, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
	white = color.RGBA{255, 255, 255, 255}
)

func TestDiscrete(t *testing.T) {
	d, err := NewDiscrete(color.Palette{black, red, green, blue, white})
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		v    float64
		want color.Color
	}{
		{0, black},
		{0.1999, black},
		{0.2, red},
		{0.5, green},
		{0.999999, white},
		{1.0, white},
		{7.5, white},
		{-0.3, black},
	}
	for _, tt := range tests {
		if got := d.Resolve(tt.v); got != tt.want {
			t.Errorf("Want Resolve(%v) = %v, got %v", tt.v, tt.want, got)
		}
	}
	if d.Len() != 5 {
		t.Errorf("Want 5 colors, got %d", d.Len())
	}
}

func TestEmpty(t *testing.T) {
	if _, err := NewDiscrete(nil); !errors.Is(err, ErrEmpty) {
		t.Errorf("Want ErrEmpty from NewDiscrete, got %v", err)
	}
	if _, err := NewGradient(nil); !errors.Is(err, ErrEmpty) {
		t.Errorf("Want ErrEmpty from NewGradient, got %v", err)
	}
	if _, err := EvenGradient(); !errors.Is(err, ErrEmpty) {
		t.Errorf("Want ErrEmpty from EvenGradient, got %v", err)
	}
}

func TestEvenGradientTransparent(t *testing.T) {
	_, err := EvenGradient(black, color.RGBA{}, white)
	if !errors.Is(err, ErrTransparent) || !strings.Contains(err.Error(), "color 1") {
		t.Errorf("Want ErrTransparent naming color 1, got %v", err)
	}
}

func TestGradientStopOrder(t *testing.T) {
	_, err := NewGradient([]Stop{{Position: 0.5}, {Position: 0.2}})
	if !errors.Is(err, ErrStopOrder) {
		t.Errorf("Want ErrStopOrder, got %v", err)
	}
	if _, err := NewGradient([]Stop{{Position: 0.5}, {Position: 0.5}}); err != nil {
		t.Errorf("Want equal positions to be allowed, got %v", err)
	}
}

func testStops() []Stop {
	return []Stop{
		{Color: colorful.Color{R: 0.00, G: 0.05, B: 0.20}, Position: 0},
		{Color: colorful.Color{R: 0.70, G: 0.10, B: 0.20}, Position: 0.3},
		{Color: colorful.Color{R: 0.95, G: 0.90, B: 0.30}, Position: 1},
	}
}

func TestGradientAtStops(t *testing.T) {
	g, err := NewGradient(testStops())
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range testStops() {
		if got := g.At(s.Position); got != s.Color {
			t.Errorf("Want At(%v) = %v, got %v", s.Position, s.Color, got)
		}
	}
	first, last := testStops()[0].Color, testStops()[2].Color
	if got := g.At(-2); got != first {
		t.Errorf("Want values below 0 to clamp to %v, got %v", first, got)
	}
	if got := g.At(1.5); got != last {
		t.Errorf("Want values above 1 to clamp to %v, got %v", last, got)
	}
}

func TestGradientMonotonic(t *testing.T) {
	g, err := NewGradient(testStops())
	if err != nil {
		t.Fatal(err)
	}
	stops := g.Stops()
	for i := 0; i+1 < len(stops); i++ {
		a, b := stops[i], stops[i+1]
		prev := a.Color
		for k := 1; k <= 20; k++ {
			v := a.Position + (b.Position-a.Position)*float64(k)/20
			cur := g.At(v)
			for _, ch := range [][3]float64{
				{prev.R, cur.R, b.Color.R - a.Color.R},
				{prev.G, cur.G, b.Color.G - a.Color.G},
				{prev.B, cur.B, b.Color.B - a.Color.B},
			} {
				step := ch[1] - ch[0]
				if step*ch[2] < -1e-12 {
					t.Errorf("Want channel moving towards the next stop at %v, got %v -> %v", v, ch[0], ch[1])
				}
			}
			prev = cur
		}
	}
}

func TestEvenGradientTake(t *testing.T) {
	g, err := EvenGradient(black, white)
	if err != nil {
		t.Fatal(err)
	}
	pal := g.Take(3)
	want := color.Palette{black, color.RGBA{128, 128, 128, 255}, white}
	if len(pal) != len(want) {
		t.Fatalf("Want %v, got %v", want, pal)
	}
	for i := range want {
		if pal[i] != want[i] {
			t.Errorf("Want Take(3)[%d] = %v, got %v", i, want[i], pal[i])
		}
	}
	if got := g.Resolve(0.5); got == nil {
		t.Errorf("Want a color from Resolve")
	}

	one, err := EvenGradient(red)
	if err != nil {
		t.Fatal(err)
	}
	if got := one.Take(4); len(got) != 4 || got[3] != red {
		t.Errorf("Want a single stop gradient to repeat red, got %v", got)
	}
}
