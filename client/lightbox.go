package client

// Key identifiers handled by the lightbox while open.
const (
	KeyEscape     = "Escape"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// Lightbox tracks the currently opened item of a filtered list.
// Navigation locates the current id in the list and wraps around, so
// the lightbox stays consistent even when the list is refiltered while
// open. Current is nil while closed.
type Lightbox[T any] struct {
	items   []T
	idOf    func(T) string
	current *T
}

// NewLightbox creates a closed Lightbox over items, with idOf
// extracting each item's identifier.
func NewLightbox[T any](items []T, idOf func(T) string) *Lightbox[T] {
	return &Lightbox[T]{
		items: items,
		idOf:  idOf,
	}
}

// SetItems replaces the underlying list without closing the lightbox.
func (l *Lightbox[T]) SetItems(items []T) {
	l.items = items
}

// Current returns the opened item, or nil while closed.
func (l *Lightbox[T]) Current() *T {
	return l.current
}

// IsOpen reports whether an item is opened.
func (l *Lightbox[T]) IsOpen() bool {
	return l.current != nil
}

// Open opens the item with the given id. Unknown ids are ignored.
func (l *Lightbox[T]) Open(id string) {
	for i := range l.items {
		if l.idOf(l.items[i]) == id {
			item := l.items[i]
			l.current = &item

			return
		}
	}
}

// Close closes the lightbox.
func (l *Lightbox[T]) Close() {
	l.current = nil
}

// Next advances to the next item in the list, wrapping to the first.
// A no-op while closed or when the current item left the list.
func (l *Lightbox[T]) Next() {
	l.step(1)
}

// Prev steps back to the previous item, wrapping to the last. A no-op
// while closed or when the current item left the list.
func (l *Lightbox[T]) Prev() {
	l.step(-1)
}

// HandleKey applies a key press. Keys are only handled while open:
// Escape closes, arrow keys navigate. Returns whether the key was
// consumed.
func (l *Lightbox[T]) HandleKey(key string) bool {
	if !l.IsOpen() {
		return false
	}

	switch key {
	case KeyEscape:
		l.Close()
	case KeyArrowLeft:
		l.Prev()
	case KeyArrowRight:
		l.Next()
	default:
		return false
	}

	return true
}

func (l *Lightbox[T]) step(delta int) {
	if l.current == nil || len(l.items) == 0 {
		return
	}

	currentID := l.idOf(*l.current)
	for i := range l.items {
		if l.idOf(l.items[i]) == currentID {
			n := len(l.items)
			item := l.items[(i+delta+n)%n]
			l.current = &item

			return
		}
	}
}
