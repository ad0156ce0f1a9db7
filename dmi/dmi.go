// Package dmi models BYOND DMI sprite sheets: a PNG sheet of equally sized
// icons plus a text description that groups the icons into named states.
package dmi

import (
	"image"

	"github.com/samber/lo"
)

const DefaultVersion = "4.0"

type Icon struct {
	Version string
	Width   int
	Height  int
	States  []State
}

type Hotspot struct {
	X, Y  int
	Frame int
}

// State is one animation. Images are direction-major: direction d, frame f
// lives at Images[d*Frames+f].
type State struct {
	Name     string
	Dirs     int
	Frames   int
	Images   []*image.NRGBA
	Delays   Delays
	Loop     int
	Rewind   bool
	Movement bool
	Hotspots []Hotspot
}

func (icon *Icon) Bounds() image.Rectangle { return image.Rect(0, 0, icon.Width, icon.Height) }

func (icon *Icon) NewFrame() *image.NRGBA { return image.NewNRGBA(icon.Bounds()) }

// IndexOf returns the position of the first state named name.
func (icon *Icon) IndexOf(name string) (int, bool) {
	_, i, ok := lo.FindIndexOf(icon.States, func(state State) bool {
		return state.Name == name
	})
	return i, ok
}

func (icon *Icon) State(name string) (*State, bool) {
	i, ok := icon.IndexOf(name)
	if !ok {
		return nil, false
	}
	return &icon.States[i], true
}

func (icon *Icon) Clone() *Icon {
	out := *icon
	out.States = make([]State, len(icon.States))
	for i := range icon.States {
		out.States[i] = icon.States[i].Clone()
	}
	return &out
}

func (state *State) Image(dir, frame int) *image.NRGBA {
	return state.Images[dir*state.Frames+frame]
}

// Clone copies the state including its pixel buffers.
func (state State) Clone() State {
	images := lo.Map(state.Images, func(img *image.NRGBA, _ int) *image.NRGBA {
		return CloneFrame(img)
	})
	return state.WithImages(state.Name, images)
}

// WithImages copies the state's metadata under a new name with new images.
func (state State) WithImages(name string, images []*image.NRGBA) State {
	state.Name = name
	state.Images = images
	if state.Delays != nil {
		state.Delays = append(Delays{}, state.Delays...)
	}
	if state.Hotspots != nil {
		state.Hotspots = append([]Hotspot{}, state.Hotspots...)
	}
	return state
}

// CompatibleWith reports whether two states have the same shape.
func (state *State) CompatibleWith(other *State) bool {
	return state.Dirs == other.Dirs && state.Delays.Equal(other.Delays)
}

func CloneFrame(img *image.NRGBA) *image.NRGBA {
	if img == nil {
		return nil
	}
	out := &image.NRGBA{
		Pix:    append([]uint8(nil), img.Pix...),
		Stride: img.Stride,
		Rect:   img.Rect,
	}
	return out
}
