package brandkit

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrInvalidHex is returned by ParseHex for malformed color strings.
var ErrInvalidHex = errors.New("brandkit: invalid hex color")

// RGBA represents an 8-bit color with straight (non-premultiplied) alpha.
type RGBA struct {
	R, G, B, A uint8
}

// RGB creates an opaque color from 8-bit components.
func RGB(r, g, b uint8) RGBA {
	return RGBA{R: r, G: g, B: b, A: 255}
}

// FromFractions creates an opaque color from components in [0, 1].
// Each channel is scaled by 255 and truncated.
func FromFractions(r, g, b float64) RGBA {
	return RGBA{R: fractionTo8(r), G: fractionTo8(g), B: fractionTo8(b), A: 255}
}

// WithAlpha returns c with its alpha replaced.
func (c RGBA) WithAlpha(a uint8) RGBA {
	c.A = a
	return c
}

// NRGBA converts c to the standard library color type.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Lerp interpolates the color channels of c towards other by t and
// truncates toward zero. Alpha is taken from c.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: lerp8(c.R, other.R, t),
		G: lerp8(c.G, other.G, t),
		B: lerp8(c.B, other.B, t),
		A: c.A,
	}
}

// String returns the color as #rrggbb, with an alpha suffix when not opaque.
func (c RGBA) String() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{R: n.R, G: n.G, B: n.B, A: n.A}
}

// ParseHex parses a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with an optional '#'.
func ParseHex(hex string) (RGBA, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b uint32
	a := uint32(255)
	ok := true

	switch len(s) {
	case 3:
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4:
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b) && parseHex(s[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6:
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b)
	case 8:
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b) && parseHex(s[6:8], &a)
	default:
		ok = false
	}
	if !ok {
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}

	// #nosec G115 -- every component is at most 0xff
	return RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

// parseHex accumulates hex digits of s into val.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

func lerp8(a, b uint8, t float64) uint8 {
	return clamp8(float64(a) + (float64(b)-float64(a))*t)
}

func fractionTo8(f float64) uint8 {
	return clamp8(f * 255)
}

// clamp8 truncates x toward zero and restricts it to [0, 255].
func clamp8(x float64) uint8 {
	if x <= 0 {
		return 0
	}
	if x >= 255 {
		return 255
	}
	return uint8(x)
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Transparent = RGBA{}
)
