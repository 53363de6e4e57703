package catalog

import "testing"

func TestScrubMapsPointerBandsToImages(t *testing.T) {
	var c CardState
	// Three images over a 300px card: 100px bands.
	if got := c.Scrub(50, 300, 3); got != 0 {
		t.Fatalf("expected image 0, got %d", got)
	}
	if got := c.Scrub(150, 300, 3); got != 1 {
		t.Fatalf("expected image 1, got %d", got)
	}
	if got := c.Scrub(299, 300, 3); got != 2 {
		t.Fatalf("expected image 2, got %d", got)
	}
}

func TestScrubClampsAtEdges(t *testing.T) {
	var c CardState
	if got := c.Scrub(-5, 300, 3); got != 0 {
		t.Fatalf("left overshoot must clamp to 0, got %d", got)
	}
	if got := c.Scrub(300, 300, 3); got != 2 {
		t.Fatalf("right edge must clamp to the last image, got %d", got)
	}
}

func TestScrubIgnoresDegenerateInput(t *testing.T) {
	var c CardState
	c.Scrub(150, 300, 3)
	if got := c.Scrub(150, 300, 0); got != 1 {
		t.Fatalf("zero images must leave the state alone, got %d", got)
	}
	if got := c.Scrub(150, 0, 3); got != 1 {
		t.Fatalf("zero width must leave the state alone, got %d", got)
	}
}

func TestLeaveResetsToPrimaryImage(t *testing.T) {
	var c CardState
	c.Scrub(250, 300, 3)
	c.Leave()
	if got := c.ImageIndex(); got != 0 {
		t.Fatalf("leave must reset to image 0, got %d", got)
	}
}

func TestDetailCarouselWraps(t *testing.T) {
	d := NewDetailCarousel(3)
	if got := d.Next(); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	d.Next()
	if got := d.Next(); got != 0 {
		t.Fatalf("next past the end must wrap to 0, got %d", got)
	}
	if got := d.Prev(); got != 2 {
		t.Fatalf("prev from 0 must wrap to the last image, got %d", got)
	}
}

func TestDetailCarouselSelect(t *testing.T) {
	d := NewDetailCarousel(3)
	if got := d.Select(2); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got := d.Select(9); got != 2 {
		t.Fatalf("out-of-range select must be ignored, got %d", got)
	}
}

func TestDetailCarouselEmpty(t *testing.T) {
	d := NewDetailCarousel(0)
	if d.Next() != 0 || d.Prev() != 0 {
		t.Fatal("empty carousel must stay at 0")
	}
}
