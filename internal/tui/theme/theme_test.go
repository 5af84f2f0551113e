package theme

import (
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		themeName string
		wantName  string
		wantDark  bool
	}{
		{name: "load day theme", themeName: "day", wantName: "day", wantDark: false},
		{name: "load night theme", themeName: "night", wantName: "night", wantDark: true},
		{name: "case insensitive", themeName: "NIGHT", wantName: "night", wantDark: true},
		{name: "empty name defaults to day", themeName: "", wantName: "day", wantDark: false},
		{name: "invalid theme falls back to day", themeName: "mocha", wantName: "day", wantDark: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme, err := Load(tt.themeName)
			if err != nil {
				t.Fatalf("Load(%q) error = %v", tt.themeName, err)
			}
			if theme.Name != tt.wantName {
				t.Errorf("Load(%q).Name = %q, want %q", tt.themeName, theme.Name, tt.wantName)
			}
			if theme.IsDark() != tt.wantDark {
				t.Errorf("Load(%q).IsDark() = %v, want %v", tt.themeName, theme.IsDark(), tt.wantDark)
			}
		})
	}
}

func TestThemeColorsArePopulated(t *testing.T) {
	for _, name := range Available() {
		theme, err := Load(name)
		if err != nil {
			t.Fatalf("Load(%q) error = %v", name, err)
		}
		colors := map[string]string{
			"bg":           theme.Bg,
			"bg_highlight": theme.BgHighlight,
			"bg_selection": theme.BgSelection,
			"fg":           theme.Fg,
			"fg_muted":     theme.FgMuted,
			"accent":       theme.Accent,
			"cover":        theme.Cover,
			"warning":      theme.Warning,
		}
		for field, value := range colors {
			if len(value) != 7 || value[0] != '#' {
				t.Errorf("theme %q field %s = %q, want #rrggbb", name, field, value)
			}
		}
	}
}

func TestIsAvailable(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"day", true},
		{"night", true},
		{"Night", true},
		{"auto", false},
		{"mocha", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsAvailable(tt.name); got != tt.want {
			t.Errorf("IsAvailable(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestModalFallsBackToBaseColors(t *testing.T) {
	theme := &Theme{
		Bg:          "#101010",
		BgHighlight: "#202020",
		BgSelection: "#303030",
		Fg:          "#ffffff",
		FgMuted:     "#aaaaaa",
		Accent:      "#ff0000",
	}

	modal := theme.Modal()
	if modal.BaseBg != theme.BgHighlight {
		t.Errorf("BaseBg = %q, want %q", modal.BaseBg, theme.BgHighlight)
	}
	if modal.ModalBorder != theme.Accent {
		t.Errorf("ModalBorder = %q, want %q", modal.ModalBorder, theme.Accent)
	}
	if modal.TextPrimary != theme.Fg {
		t.Errorf("TextPrimary = %q, want %q", modal.TextPrimary, theme.Fg)
	}
	if modal.Highlight != theme.BgSelection {
		t.Errorf("Highlight = %q, want %q", modal.Highlight, theme.BgSelection)
	}
}
