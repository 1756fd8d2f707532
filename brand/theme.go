package brand

import (
	"fmt"
	"strings"
)

// Theme selects the visual style used for every asset category of a brand.
type Theme uint8

const (
	// ThemePlay draws a play triangle and recording dot on a radial gradient.
	ThemePlay Theme = iota
	// ThemeVHS places a pre-rendered cassette illustration.
	ThemeVHS
	// ThemeCRT draws a monochrome-green CRT television.
	ThemeCRT
)

var themeNames = [...]string{
	ThemePlay: "play",
	ThemeVHS:  "vhs",
	ThemeCRT:  "crt",
}

// String returns the theme name as used in brand files.
func (t Theme) String() string {
	if int(t) < len(themeNames) {
		return themeNames[t]
	}
	return fmt.Sprintf("Theme(%d)", t)
}

// Label returns the banner suffix shown while generating, or "".
func (t Theme) Label() string {
	switch t {
	case ThemeVHS:
		return "(VHS cassette style)"
	case ThemeCRT:
		return "(CRT TV style)"
	default:
		return ""
	}
}

// ParseTheme parses a theme name, case-insensitively.
func ParseTheme(s string) (Theme, error) {
	for i, name := range themeNames {
		if strings.EqualFold(s, name) {
			return Theme(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Theme) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Theme) UnmarshalText(text []byte) error {
	v, err := ParseTheme(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
