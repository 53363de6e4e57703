package catalog

import "math"

// CardState is the hover-scrub state of one grid card: which of the
// product's images the pointer position selects.
type CardState struct {
	hoverIndex int
	hovered    bool
}

// Scrub maps the pointer's horizontal position over the card to an image
// index: the card width is divided into equal bands, one per image. The
// result is clamped so a pointer at the very edge never runs off either end.
func (c *CardState) Scrub(pointerX, cardWidth float64, imageCount int) int {
	if imageCount <= 0 || cardWidth <= 0 {
		return c.hoverIndex
	}
	i := int(math.Floor(pointerX / cardWidth * float64(imageCount)))
	if i < 0 {
		i = 0
	}
	if i >= imageCount {
		i = imageCount - 1
	}
	c.hoverIndex = i
	c.hovered = true
	return i
}

// Leave resets the card to its primary image.
func (c *CardState) Leave() {
	c.hovered = false
	c.hoverIndex = 0
}

// ImageIndex is the image the card currently shows.
func (c *CardState) ImageIndex() int {
	if !c.hovered {
		return 0
	}
	return c.hoverIndex
}

// DetailCarousel is the explicit-navigation gallery on the detail view:
// next/previous wrap around, thumbnails jump directly.
type DetailCarousel struct {
	index int
	count int
}

// NewDetailCarousel starts at the first image.
func NewDetailCarousel(count int) *DetailCarousel {
	if count < 0 {
		count = 0
	}
	return &DetailCarousel{count: count}
}

// Next advances one image, wrapping from the last back to the first.
func (d *DetailCarousel) Next() int {
	if d.count == 0 {
		return 0
	}
	d.index = (d.index + 1) % d.count
	return d.index
}

// Prev steps back one image, wrapping from the first to the last.
func (d *DetailCarousel) Prev() int {
	if d.count == 0 {
		return 0
	}
	if d.index == 0 {
		d.index = d.count - 1
	} else {
		d.index--
	}
	return d.index
}

// Select jumps to image i. Out-of-range indexes are ignored.
func (d *DetailCarousel) Select(i int) int {
	if i >= 0 && i < d.count {
		d.index = i
	}
	return d.index
}

// Index is the image currently shown.
func (d *DetailCarousel) Index() int {
	return d.index
}
