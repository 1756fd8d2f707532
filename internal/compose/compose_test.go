package compose

import (
	"bytes"
	"errors"
	"image"
	"testing"

	"github.com/gogpu/brandkit"
	"github.com/gogpu/brandkit/brand"
	"github.com/gogpu/brandkit/internal/motif"
)

func lookup(t *testing.T, key string) brand.Brand {
	t.Helper()
	b, err := brand.Default().Lookup(key)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func cassette(t *testing.T) *motif.VHS {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 200, 100))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	v, err := motif.NewVHS(img)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func compose(t *testing.T, b brand.Brand, opts Options) Composer {
	t.Helper()
	c, err := For(b, opts)
	if err != nil {
		t.Fatalf("For(%s): %v", b.Key, err)
	}
	return c
}

func corners(c *brandkit.Canvas) []image.Point {
	w, h := c.Width()-1, c.Height()-1
	return []image.Point{{0, 0}, {w, 0}, {0, h}, {w, h}}
}

func uniform(t *testing.T, c *brandkit.Canvas, want brandkit.RGBA) {
	t.Helper()
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if got := c.At(x, y); got != want {
				t.Fatalf("At(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestFor(t *testing.T) {
	nexus := lookup(t, "nexuspvr")
	if _, ok := compose(t, nexus, Options{}).(playComposer); !ok {
		t.Error("nexuspvr should use the play composer")
	}
	if _, ok := compose(t, lookup(t, "dispatcherpvr"), Options{}).(crtComposer); !ok {
		t.Error("dispatcherpvr should use the CRT composer")
	}

	vhs := nexus
	vhs.Theme = brand.ThemeVHS
	if _, err := For(vhs, Options{}); !errors.Is(err, ErrNoVHSSource) {
		t.Errorf("For(vhs) without source = %v, want ErrNoVHSSource", err)
	}
	if _, ok := compose(t, vhs, Options{VHS: cassette(t)}).(vhsComposer); !ok {
		t.Error("vhs brand should use the VHS composer")
	}

	bad := nexus
	bad.Theme = brand.Theme(9)
	if _, err := For(bad, Options{}); !errors.Is(err, brand.ErrUnknownTheme) {
		t.Errorf("For(bad theme) = %v, want ErrUnknownTheme", err)
	}
}

func TestPlayAppIcon(t *testing.T) {
	b := lookup(t, "nexuspvr")
	c := compose(t, b, Options{}).AppIcon(1024)
	if c.Mode() != brandkit.ModeRGB || c.Width() != 1024 || c.Height() != 1024 {
		t.Fatalf("icon %dx%d %v", c.Width(), c.Height(), c.Mode())
	}
	for _, p := range corners(c) {
		if got := c.At(p.X, p.Y); got != b.GradientEdge {
			t.Errorf("corner %v = %v, want edge %v", p, got, b.GradientEdge)
		}
	}
	if got := c.At(512, 512); got != brandkit.White {
		t.Errorf("center = %v, want white play mark", got)
	}

	grad := brandkit.RadialGradient(1024, 1024, b.GradientCenter, b.GradientEdge)
	for _, p := range []image.Point{{512, 100}, {100, 512}, {512, 180}} {
		if got, want := c.At(p.X, p.Y), grad.At(p.X, p.Y); got != want {
			t.Errorf("inside mask %v = %v, want gradient %v", p, got, want)
		}
	}
}

func TestRoundedMaskAcrossSizes(t *testing.T) {
	b := lookup(t, "nexuspvr")
	comp := compose(t, b, Options{})
	for _, size := range []int{64, 128, 256, 512} {
		c := comp.AppIcon(size)
		grad := brandkit.RadialGradient(size, size, b.GradientCenter, b.GradientEdge)
		if got := c.At(0, 0); got != b.GradientEdge {
			t.Errorf("size %d: corner = %v", size, got)
		}
		if got, want := c.At(size/2, 1), grad.At(size/2, 1); got != want {
			t.Errorf("size %d: top edge = %v, want %v", size, got, want)
		}
	}
}

func TestPlayLaunchLogo(t *testing.T) {
	b := lookup(t, "nexuspvr")
	c := compose(t, b, Options{}).LaunchLogo(120)
	if c.Mode() != brandkit.ModeRGBA {
		t.Fatalf("mode = %v", c.Mode())
	}
	if got := c.At(0, 0); got != brandkit.Transparent {
		t.Errorf("corner = %v, want transparent", got)
	}
	if got := c.At(60, 5); got.A != 255 {
		t.Errorf("gradient area alpha = %d", got.A)
	}
}

func TestPlayTVLayers(t *testing.T) {
	b := lookup(t, "nexuspvr")
	comp := compose(t, b, Options{})

	back := comp.TVBack(400, 240)
	if back.Mode() != brandkit.ModeRGB || back.At(200, 120) != b.GradientCenter {
		t.Errorf("back center = %v mode %v", back.At(200, 120), back.Mode())
	}
	uniform(t, comp.TVMiddle(400, 240), brandkit.Transparent)

	front := comp.TVFront(400, 240)
	if front.At(0, 0) != brandkit.Transparent || front.At(200, 120) != brandkit.White {
		t.Errorf("front corner %v center %v", front.At(0, 0), front.At(200, 120))
	}
}

func TestPlayShelf(t *testing.T) {
	b := lookup(t, "nexuspvr")
	c := compose(t, b, Options{}).Shelf(1920, 720)
	if c.Mode() != brandkit.ModeRGB {
		t.Fatalf("mode = %v", c.Mode())
	}
	bg := b.LaunchBackground.RGBA()
	for _, p := range corners(c) {
		if got := c.At(p.X, p.Y); got != bg {
			t.Errorf("corner %v = %v, want %v", p, got, bg)
		}
	}
	if got := c.At(960, 360); got != brandkit.White {
		t.Errorf("center = %v, want white", got)
	}

	// The 432px icon sits at (744, 144).
	grad := brandkit.RadialGradient(432, 432, b.GradientCenter, b.GradientEdge)
	if got, want := c.At(960, 150), grad.At(216, 6); got != want {
		t.Errorf("icon top = %v, want %v", got, want)
	}

	// Glow brightens the background beside the icon.
	if got := c.At(730, 360); got == bg {
		t.Error("no glow next to the icon")
	}

	// The icon's cut corner keeps the background underneath.
	in, out := c.At(745, 145), c.At(742, 145)
	d := func(a, b uint8) int { return max(int(a)-int(b), int(b)-int(a)) }
	if d(in.R, out.R) > 2 || d(in.G, out.G) > 2 || d(in.B, out.B) > 2 {
		t.Errorf("behind icon corner = %v, beside it = %v", in, out)
	}
}

func TestLaunchBackground(t *testing.T) {
	b := lookup(t, "nexuspvr")
	c := compose(t, b, Options{}).LaunchBackground(120)
	if c.Mode() != brandkit.ModeRGB {
		t.Errorf("mode = %v", c.Mode())
	}
	uniform(t, c, brandkit.RGB(15, 15, 15))
}

func TestCRTComposer(t *testing.T) {
	b := lookup(t, "dispatcherpvr")
	comp := compose(t, b, Options{})

	icon := comp.AppIcon(1024)
	if icon.Mode() != brandkit.ModeRGB {
		t.Errorf("icon mode = %v", icon.Mode())
	}
	for _, p := range corners(icon) {
		if got := icon.At(p.X, p.Y); got != motif.CRTBackground {
			t.Errorf("icon corner %v = %v", p, got)
		}
	}

	uniform(t, comp.LaunchBackground(120), motif.CRTBackground)
	uniform(t, comp.TVBack(400, 240), motif.CRTBackground)

	front := comp.TVFront(400, 240)
	if front.Mode() != brandkit.ModeRGBA || front.At(0, 0) != brandkit.Transparent {
		t.Errorf("front corner = %v", front.At(0, 0))
	}
	logo := comp.LaunchLogo(120)
	if logo.At(0, 0) != brandkit.Transparent {
		t.Errorf("logo corner = %v", logo.At(0, 0))
	}

	shelf := comp.Shelf(1920, 720)
	for _, p := range corners(shelf) {
		if got := shelf.At(p.X, p.Y); got != motif.CRTBackground {
			t.Errorf("shelf corner %v = %v", p, got)
		}
	}
}

func TestCRTSmallIcons(t *testing.T) {
	comp := compose(t, lookup(t, "dispatcherpvr"), Options{})
	for _, size := range []int{16, 32} {
		c := comp.AppIcon(size)
		l := motif.NewCRTLayout(size, size, float64(size)/200)
		if got := c.At(l.Rec.X, l.Rec.Y); got == motif.CRTBackground || got == motif.CRTBody {
			t.Errorf("size %d: rec dot not drawn (%v)", size, got)
		}
	}
}

func TestVHSComposer(t *testing.T) {
	b := lookup(t, "nexuspvr")
	b.Theme = brand.ThemeVHS
	comp := compose(t, b, Options{VHS: cassette(t)})

	icon := comp.AppIcon(256)
	if icon.Mode() != brandkit.ModeRGB {
		t.Fatalf("mode = %v", icon.Mode())
	}
	if got := icon.At(0, 0); got != brandkit.Black {
		t.Errorf("cut corner = %v, want black", got)
	}
	grad := brandkit.RadialGradient(256, 256, b.GradientCenter, b.GradientEdge)
	if got, want := icon.At(128, 20), grad.At(128, 20); got != want {
		t.Errorf("gradient area = %v, want %v", got, want)
	}
	if got := icon.At(128, 128); got.R > 10 || got.G > 10 || got.B > 10 {
		t.Errorf("cassette = %v, want near black", got)
	}
	if got := icon.At(131, 118); got != motif.VHSTriangle {
		t.Errorf("label triangle = %v, want %v", got, motif.VHSTriangle)
	}

	for _, c := range []*brandkit.Canvas{comp.LaunchLogo(240), comp.TVFront(400, 240)} {
		if c.Mode() != brandkit.ModeRGBA || c.At(0, 0) != brandkit.Transparent {
			t.Errorf("overlay corner = %v mode %v", c.At(0, 0), c.Mode())
		}
	}

	shelf := comp.Shelf(1920, 720)
	if got := shelf.At(0, 0); got != b.LaunchBackground.RGBA() {
		t.Errorf("shelf corner = %v", got)
	}
	if got := shelf.At(960, 360); got.R > 10 {
		t.Errorf("shelf center = %v, want cassette", got)
	}
}

func TestComposersAreDeterministic(t *testing.T) {
	vhsBrand := lookup(t, "nexuspvr")
	vhsBrand.Theme = brand.ThemeVHS
	for _, b := range []brand.Brand{lookup(t, "nexuspvr"), lookup(t, "dispatcherpvr"), vhsBrand} {
		comp := compose(t, b, Options{VHS: cassette(t)})
		for name, render := range map[string]func() *brandkit.Canvas{
			"icon":  func() *brandkit.Canvas { return comp.AppIcon(128) },
			"shelf": func() *brandkit.Canvas { return comp.Shelf(960, 360) },
			"front": func() *brandkit.Canvas { return comp.TVFront(400, 240) },
		} {
			a, c := render().Image(), render().Image()
			if !bytes.Equal(a.Pix, c.Pix) {
				t.Errorf("%s/%v %s differs between renders", b.Key, b.Theme, name)
			}
		}
	}
}
