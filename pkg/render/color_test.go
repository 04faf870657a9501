package render

import (
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#ff8000", color.NRGBA{255, 128, 0, 255}, false},
		{"#00ffff", color.NRGBA{0, 255, 255, 255}, false},
		{"#abc", color.NRGBA{0xaa, 0xbb, 0xcc, 255}, false},
		{"ff8000", color.NRGBA{}, true},
		{"#zzzzzz", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParsePaletteReportsEntry(t *testing.T) {
	if _, err := ParsePalette([]string{"#000000", "bad"}); err == nil {
		t.Error("Expected error for a malformed entry")
	}
	p, err := ParsePalette([]string{"#000000", "#ffffff"})
	if err != nil || len(p) != 2 {
		t.Fatalf("Expected 2 colours, got %v (%v)", p, err)
	}
}

func TestWithAlpha(t *testing.T) {
	c := color.NRGBA{10, 20, 30, 255}
	tests := []struct {
		alpha float64
		want  uint8
	}{
		{1, 255},
		{0.5, 128},
		{0, 0},
		{-1, 0},
		{2, 255},
	}
	for _, tt := range tests {
		if got := WithAlpha(c, tt.alpha).A; got != tt.want {
			t.Errorf("WithAlpha(%v): expected %d, got %d", tt.alpha, tt.want, got)
		}
	}
}

func TestMixTowardsTransparentKeepsHue(t *testing.T) {
	red := color.NRGBA{255, 0, 0, 255}
	got := Mix(red, Transparent, 0.5)
	if got.R != 255 || got.G != 0 || got.B != 0 {
		t.Errorf("Expected red hue, got %v", got)
	}
	if got.A != 128 {
		t.Errorf("Expected half alpha, got %d", got.A)
	}
}

func TestSample(t *testing.T) {
	stops := []Stop{
		{0, color.NRGBA{0, 0, 0, 255}},
		{1, color.NRGBA{255, 255, 255, 255}},
	}
	tests := []struct {
		name string
		t    float64
		want uint8
	}{
		{"Start", 0, 0},
		{"Middle", 0.5, 128},
		{"End", 1, 255},
		{"Before start", -1, 0},
		{"After end", 3, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sample(stops, tt.t).R; got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
	if Sample(nil, 0.5) != Transparent {
		t.Error("Expected transparent for no stops")
	}
}

func TestDarken(t *testing.T) {
	got := Darken(color.NRGBA{200, 100, 50, 255}, 0.5)
	if got != (color.NRGBA{100, 50, 25, 255}) {
		t.Errorf("Expected halved channels, got %v", got)
	}
}
