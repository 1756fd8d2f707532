// Package catalog lists every raster asset an asset catalog needs, with its
// file name, pixel size and location inside the catalog directory.
package catalog

import (
	"fmt"
	"image"
	"path/filepath"
)

// Kind selects which composer renders a section's entries.
type Kind uint8

const (
	KindIcon Kind = iota
	KindLaunchLogo
	KindLaunchBackground
	KindLayeredIcon
	KindTopShelf
)

var kindNames = [...]string{"icon", "launch logo", "launch background", "layered icon", "top shelf"}

// String returns a lower-case name for the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Layer is one plane of a tvOS layered icon.
type Layer uint8

const (
	LayerBack Layer = iota
	LayerMiddle
	LayerFront
)

// Layers lists the layers back to front.
var Layers = []Layer{LayerBack, LayerMiddle, LayerFront}

func (l Layer) String() string {
	switch l {
	case LayerBack:
		return "Back"
	case LayerMiddle:
		return "Middle"
	case LayerFront:
		return "Front"
	}
	return fmt.Sprintf("Layer(%d)", l)
}

// Dir returns the directory holding the layer's image inside a stack.
func (l Layer) Dir(stack string) string {
	return filepath.Join(stack, l.String()+".imagestacklayer", "Content.imageset")
}

// Entry is one output file.
type Entry struct {
	File   string
	Width  int
	Height int
}

// Size returns the entry's pixel dimensions.
func (e Entry) Size() image.Point { return image.Pt(e.Width, e.Height) }

func square(file string, side int) Entry { return Entry{File: file, Width: side, Height: side} }

// Section is a group of entries written to one catalog directory.
type Section struct {
	Title   string
	Kind    Kind
	Dir     string // relative to the catalog root
	Entries []Entry
}

// Paths returns the catalog-relative path of every file the section writes,
// expanding layered icons into one file per layer.
func (s Section) Paths() []string {
	var out []string
	for _, e := range s.Entries {
		if s.Kind != KindLayeredIcon {
			out = append(out, filepath.Join(s.Dir, e.File))
			continue
		}
		for _, l := range Layers {
			out = append(out, filepath.Join(l.Dir(s.Dir), e.File))
		}
	}
	return out
}

const brandAssets = "tv.brandassets"

var sections = []Section{
	{
		Title: "App Icons",
		Kind:  KindIcon,
		Dir:   "AppIcon.appiconset",
		Entries: []Entry{
			square("AppIcon-1024.png", 1024),
			square("AppIcon-512@2x.png", 1024),
			square("AppIcon-512.png", 512),
			square("AppIcon-256@2x.png", 512),
			square("AppIcon-256.png", 256),
			square("AppIcon-128@2x.png", 256),
			square("AppIcon-128.png", 128),
			square("AppIcon-32@2x.png", 64),
			square("AppIcon-32.png", 32),
			square("AppIcon-16@2x.png", 32),
			square("AppIcon-16.png", 16),
		},
	},
	{
		Title: "Launch Logo",
		Kind:  KindLaunchLogo,
		Dir:   "LaunchLogo.imageset",
		Entries: []Entry{
			square("LaunchLogo.png", 120),
			square("LaunchLogo@2x.png", 240),
			square("LaunchLogo@3x.png", 360),
		},
	},
	{
		Title: "Launch Background",
		Kind:  KindLaunchBackground,
		Dir:   "LaunchBG.imageset",
		Entries: []Entry{
			square("LaunchBG.png", 120),
			square("LaunchBG@2x.png", 240),
			square("LaunchBG@3x.png", 360),
		},
	},
	{
		Title: "tvOS App Icon (400x240)",
		Kind:  KindLayeredIcon,
		Dir:   filepath.Join(brandAssets, "App Icon.imagestack"),
		Entries: []Entry{
			{File: "icon_400x240.png", Width: 400, Height: 240},
			{File: "icon_800x480.png", Width: 800, Height: 480},
		},
	},
	{
		Title: "tvOS App Store Icon (1280x768)",
		Kind:  KindLayeredIcon,
		Dir:   filepath.Join(brandAssets, "App Icon - App Store.imagestack"),
		Entries: []Entry{
			{File: "icon_1280x768.png", Width: 1280, Height: 768},
		},
	},
	{
		Title: "Top Shelf Image",
		Kind:  KindTopShelf,
		Dir:   filepath.Join(brandAssets, "Top Shelf Image.imageset"),
		Entries: []Entry{
			{File: "shelf_1920x720.png", Width: 1920, Height: 720},
			{File: "shelf_3840x1440.png", Width: 3840, Height: 1440},
		},
	},
	{
		Title: "Top Shelf Image Wide",
		Kind:  KindTopShelf,
		Dir:   filepath.Join(brandAssets, "Top Shelf Image Wide.imageset"),
		Entries: []Entry{
			{File: "shelf_wide_2320x720.png", Width: 2320, Height: 720},
			{File: "shelf_wide_4640x1440.png", Width: 4640, Height: 1440},
		},
	},
}

// Sections returns the manifest in generation order. The result is a copy
// and may be modified by the caller.
func Sections() []Section {
	out := make([]Section, len(sections))
	for i, s := range sections {
		s.Entries = append([]Entry(nil), s.Entries...)
		out[i] = s
	}
	return out
}
