package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNewPalette_CoverShades(t *testing.T) {
	dark := &Theme{
		Bg:          "#101010",
		BgHighlight: "#202020",
		BgSelection: "#303030",
		Fg:          "#ffffff",
		FgMuted:     "#aaaaaa",
		Accent:      "#ff0000",
		Cover:       "#c08040",
		Warning:     "#888888",
	}

	palette := NewPalette(dark)
	if palette.CoverBg != lipgloss.Color(darkenColor(dark.Cover)) {
		t.Fatalf("CoverBg = %q, want %q", palette.CoverBg, darkenColor(dark.Cover))
	}

	light := *dark
	light.Bg = "#ffffff"
	light.Fg = "#101010"
	palette = NewPalette(&light)
	if palette.CoverBg != lipgloss.Color(blendColors(light.Cover, light.Bg, 0.65)) {
		t.Fatalf("light CoverBg = %q, want %q", palette.CoverBg, blendColors(light.Cover, light.Bg, 0.65))
	}
}

func TestNewPalette_ModalFallbacks(t *testing.T) {
	base := &Theme{
		Bg:          "#101010",
		BgHighlight: "#202020",
		BgSelection: "#303030",
		Fg:          "#ffffff",
		FgMuted:     "#aaaaaa",
		Accent:      "#ff0000",
		Cover:       "#00ff00",
		Warning:     "#ff00ff",
	}

	palette := NewPalette(base)
	if palette.Modal.Bg != lipgloss.Color(base.BgHighlight) {
		t.Fatalf("Modal.Bg = %q, want %q", palette.Modal.Bg, base.BgHighlight)
	}
	if palette.Modal.Border.Dark != base.Accent {
		t.Fatalf("Modal.Border.Dark = %q, want %q", palette.Modal.Border.Dark, base.Accent)
	}
	if palette.Modal.Backdrop != lipgloss.Color(base.BgSelection) {
		t.Fatalf("Modal.Backdrop = %q, want %q", palette.Modal.Backdrop, base.BgSelection)
	}
}

func TestNewPalette_NilThemeUsesDay(t *testing.T) {
	palette := NewPalette(nil)
	day, err := Load(Day)
	if err != nil {
		t.Fatalf("Load(day) error = %v", err)
	}
	if palette.Bg != lipgloss.Color(day.Bg) {
		t.Fatalf("Bg = %q, want %q", palette.Bg, day.Bg)
	}
}

func TestChooseTextColor(t *testing.T) {
	if got := chooseTextColor("#000000", "#ffffff", "#000000"); got != "#ffffff" {
		t.Errorf("chooseTextColor on black = %q, want #ffffff", got)
	}
	if got := chooseTextColor("#ffffff", "#ffffff", "#000000"); got != "#000000" {
		t.Errorf("chooseTextColor on white = %q, want #000000", got)
	}
}

func TestBlendColors(t *testing.T) {
	tests := []struct {
		a, b  string
		ratio float64
		want  string
	}{
		{"#000000", "#ffffff", 0, "#000000"},
		{"#000000", "#ffffff", 1, "#ffffff"},
		{"#000000", "#ffffff", 2, "#ffffff"},
		{"#000000", "#ffffff", -1, "#000000"},
		{"#000000", "#ffffff", 0.5, "#7f7f7f"},
		{"bad", "#ffffff", 0.5, "bad"},
	}

	for _, tt := range tests {
		if got := blendColors(tt.a, tt.b, tt.ratio); got != tt.want {
			t.Errorf("blendColors(%q, %q, %v) = %q, want %q", tt.a, tt.b, tt.ratio, got, tt.want)
		}
	}
}

func TestDarkenColorFloor(t *testing.T) {
	if got := darkenColor("#000000"); got != "#282828" {
		t.Errorf("darkenColor(#000000) = %q, want #282828", got)
	}
	if got := darkenColor("#ffffff"); got != "#7f7f7f" {
		t.Errorf("darkenColor(#ffffff) = %q, want #7f7f7f", got)
	}
}
