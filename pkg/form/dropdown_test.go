package form

import (
	"testing"

	"github.com/navarrastar/coming-soon/pkg/models"
)

func TestDropdownChoose(t *testing.T) {
	d := NewDropdown([]string{"FREE", "DREAM"})
	if d.Selected() != models.PlaceholderModel {
		t.Fatalf("Selected() = %q, want placeholder", d.Selected())
	}

	d.Toggle()
	if !d.Open() {
		t.Fatal("Open() = false after Toggle")
	}
	if !d.Choose("DREAM") {
		t.Fatal("Choose(DREAM) = false")
	}
	if d.Open() {
		t.Fatal("menu still open after Choose")
	}
	if d.Selected() != "DREAM" {
		t.Fatalf("Selected() = %q, want DREAM", d.Selected())
	}
	if d.Choose("PLATINUM") {
		t.Fatal("Choose(PLATINUM) = true for unknown option")
	}
	if d.Selected() != "DREAM" {
		t.Fatalf("unknown option replaced selection: %q", d.Selected())
	}

	opts := d.Options()
	if len(opts) != 2 || opts[0].Selected || !opts[1].Selected {
		t.Fatalf("Options() = %+v", opts)
	}
}

func TestDropdownPointerDown(t *testing.T) {
	d := NewDropdown([]string{"FREE"})
	d.Bounds = Rect{X: 100, Y: 200, W: 300, H: 150}

	d.Toggle()
	d.PointerDown(Point{X: 250, Y: 260})
	if !d.Open() {
		t.Fatal("press inside bounds closed the menu")
	}

	d.PointerDown(Point{X: 400, Y: 350})
	if !d.Open() {
		t.Fatal("press on the edge closed the menu")
	}

	d.PointerDown(Point{X: 50, Y: 260})
	if d.Open() {
		t.Fatal("press outside bounds left the menu open")
	}

	d.PointerDown(Point{X: 50, Y: 260})
	if d.Open() {
		t.Fatal("press outside reopened a closed menu")
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := map[Point]bool{
		{X: 5, Y: 5}:   true,
		{X: 0, Y: 0}:   true,
		{X: 10, Y: 10}: true,
		{X: -1, Y: 5}:  false,
		{X: 5, Y: 11}:  false,
	}
	for p, want := range tests {
		if got := r.Contains(p); got != want {
			t.Fatalf("Contains(%v) = %v, want %v", p, got, want)
		}
	}
}
