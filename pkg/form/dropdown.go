package form

import (
	"slices"

	"github.com/navarrastar/coming-soon/pkg/models"
)

// Point is a pointer position in page coordinates.
type Point struct{ X, Y float64 }

// Rect is an axis-aligned box in page coordinates.
type Rect struct{ X, Y, W, H float64 }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Dropdown is the model picker: open or closed, with at most one option selected.
type Dropdown struct {
	// Bounds is the area covered by the toggle and the open menu.
	Bounds Rect

	options  []string
	selected string
	open     bool
}

// Option is one entry in the rendered dropdown.
type Option struct {
	Value    string
	Selected bool
}

func NewDropdown(options []string) *Dropdown {
	return &Dropdown{options: slices.Clone(options)}
}

func (d *Dropdown) Open() bool { return d.open }

func (d *Dropdown) Toggle() { d.open = !d.open }

func (d *Dropdown) Close() { d.open = false }

// Choose selects value and closes the menu. Values not on offer are ignored.
func (d *Dropdown) Choose(value string) bool {
	if !slices.Contains(d.options, value) {
		return false
	}
	d.selected = value
	d.open = false
	return true
}

// Selected returns the chosen model or the placeholder.
func (d *Dropdown) Selected() string {
	if d.selected == "" {
		return models.PlaceholderModel
	}
	return d.selected
}

// Reset clears the selection and closes the menu.
func (d *Dropdown) Reset() {
	d.selected = ""
	d.open = false
}

// PointerDown handles a press anywhere on the page: a press outside the
// dropdown's bounds closes it.
func (d *Dropdown) PointerDown(p Point) {
	if d.open && !d.Bounds.Contains(p) {
		d.open = false
	}
}

// Options lists the offered models in order with the selection marked.
func (d *Dropdown) Options() []Option {
	out := make([]Option, len(d.options))
	for i, o := range d.options {
		out[i] = Option{Value: o, Selected: o == d.selected}
	}
	return out
}
