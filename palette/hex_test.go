package palette

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseHex(t *testing.T) {
	pal, err := ParseHex("000000\nff0000\n00ff00\n0000ff\nffffff")
	if err != nil {
		t.Fatal(err)
	}
	want := color.Palette{black, red, green, blue, white}
	if len(pal) != len(want) {
		t.Fatalf("Want %v, got %v", want, pal)
	}
	for i := range want {
		if pal[i] != want[i] {
			t.Errorf("Want color %d = %v, got %v", i, want[i], pal[i])
		}
	}
}

func TestParseHexCRLF(t *testing.T) {
	pal, err := ParseHex("000000\r\nffffff\r\n")
	if err != nil || len(pal) != 2 || pal[1] != white {
		t.Errorf("Want black and white, got %v, %v", pal, err)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"000000", black},
		{"FF0000", red},
		{"1a2B3c", color.RGBA{0x1a, 0x2b, 0x3c, 0xff}},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("Want ParseHexColor(%q) = %v, got %v, %v", tt.in, tt.want, got, err)
		}
	}
}

func TestParseHexErrors(t *testing.T) {
	tests := []struct {
		in      string
		line    int
		length  int
		wantErr error
	}{
		{"000000\nff00\n", 2, 4, ErrLength},
		{"000000\n\nffffff", 2, 0, ErrLength},
		{"#00000", 1, 6, ErrDigit},
		{"00ff00\n0000ff\nzz0000", 3, 6, ErrDigit},
		{"", 0, 0, ErrEmpty},
		{"000000\n" + strings.Repeat("f", 70000) + "\n", 2, 70000, ErrLength},
	}
	for _, tt := range tests {
		_, err := ParseHex(tt.in)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("Want %v for %q, got %v", tt.wantErr, tt.in, err)
			continue
		}
		var pe *ParseError
		if tt.line == 0 {
			continue
		}
		if !errors.As(err, &pe) || pe.Line != tt.line || pe.Length != tt.length {
			t.Errorf("Want error on line %d length %d for %q, got %v", tt.line, tt.length, tt.in, err)
		}
	}
	_, err := ParseHex("abc")
	if err == nil || !strings.Contains(err.Error(), `"abc" has length 3`) {
		t.Errorf("Want message naming the line and its length, got %v", err)
	}
}

func TestFormatHexRoundTrip(t *testing.T) {
	in := "102030\nfffefd\n000000\n"
	pal, err := ParseHex(in)
	if err != nil {
		t.Fatal(err)
	}
	if got := FormatHex(pal); got != in {
		t.Errorf("Want %q, got %q", in, got)
	}
}

func TestDefaults(t *testing.T) {
	names := Names()
	if len(names) < 2 {
		t.Fatalf("Want embedded palettes, got %v", names)
	}
	for _, name := range names {
		pal, err := Default(name)
		if err != nil || len(pal) == 0 {
			t.Errorf("Want palette %q, got %v, %v", name, pal, err)
		}
	}
	if _, err := Default("nope"); err == nil {
		t.Errorf("Want error for unknown palette")
	}
	if pal, err := Load(""); err != nil || len(pal) == 0 {
		t.Errorf("Want the default palette for an empty source, got %v", err)
	}
}

func TestLoadHexFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "p.hex")
	if err := os.WriteFile(fname, []byte("ff0000\n0000ff\n"), 0644); err != nil {
		t.Fatal(err)
	}
	pal, err := Load(fname)
	if err != nil || len(pal) != 2 || pal[1] != blue {
		t.Errorf("Want red, blue from %s, got %v, %v", fname, pal, err)
	}
	bad := filepath.Join(t.TempDir(), "bad.hex")
	os.WriteFile(bad, []byte("ff0000\nff\n"), 0644)
	if _, err := LoadHex(bad); !errors.Is(err, ErrLength) || !strings.Contains(err.Error(), bad) {
		t.Errorf("Want length error naming %s, got %v", bad, err)
	}
}

func TestFromImage(t *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		m.Set(x, 0, red)
	}
	m.Set(0, 1, blue)
	m.Set(1, 1, blue)
	m.Set(2, 1, blue)
	m.Set(3, 1, green)

	fname := filepath.Join(t.TempDir(), "img.png")
	f, err := os.Create(fname)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, m); err != nil {
		t.Fatal(err)
	}
	f.Close()

	pal, err := FromImage(fname, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := color.Palette{red, blue}
	if len(pal) != 2 || pal[0] != want[0] || pal[1] != want[1] {
		t.Errorf("Want %v, got %v", want, pal)
	}
	all, _ := TakeColors(m, 0)
	if len(all) != 3 || all[2] != green {
		t.Errorf("Want all three colors with green last, got %v", all)
	}
}
