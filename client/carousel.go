package client

import "github.com/pkg/errors"

// ErrEmptyCarousel is returned when a Carousel is created without items.
var ErrEmptyCarousel = errors.New("carousel requires at least one item")

// Carousel tracks the active index over a fixed number of items,
// wrapping around at both ends. A single-item carousel is a fixed
// point.
type Carousel struct {
	size  int
	index int
}

// NewCarousel creates a Carousel over size items, starting at index 0.
func NewCarousel(size int) (*Carousel, error) {
	if size <= 0 {
		return nil, ErrEmptyCarousel
	}

	return &Carousel{size: size}, nil
}

// Index returns the active index.
func (c *Carousel) Index() int {
	return c.index
}

// Size returns the number of items.
func (c *Carousel) Size() int {
	return c.size
}

// Next advances to the next item, wrapping to the first.
func (c *Carousel) Next() int {
	c.index = (c.index + 1) % c.size

	return c.index
}

// Prev steps back to the previous item, wrapping to the last.
func (c *Carousel) Prev() int {
	c.index = (c.index - 1 + c.size) % c.size

	return c.index
}
