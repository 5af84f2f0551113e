package browse

import (
	"fmt"
	"strings"
)

// Theme is the process-wide display preference.
type Theme string

const (
	ThemeDay   Theme = "day"
	ThemeNight Theme = "night"
)

// ParseTheme parses "day" or "night".
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeDay:
		return ThemeDay, nil
	case ThemeNight:
		return ThemeNight, nil
	default:
		return "", fmt.Errorf("invalid theme %q (want %q or %q)", s, ThemeDay, ThemeNight)
	}
}

// ThemeFor picks night for dark backgrounds and day otherwise.
func ThemeFor(darkBackground bool) Theme {
	if darkBackground {
		return ThemeNight
	}
	return ThemeDay
}

// normalize maps anything that is not night to day.
func (t Theme) normalize() Theme {
	if t == ThemeNight {
		return ThemeNight
	}
	return ThemeDay
}

// colors returns the dark and light RGB triplets for the theme.
func (t Theme) colors() (dark, light string) {
	if t.normalize() == ThemeNight {
		return "255, 255, 255", "10, 10, 20"
	}
	return "10, 10, 20", "255, 255, 255"
}
