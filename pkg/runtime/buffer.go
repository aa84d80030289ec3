package runtime

// Buffer is the growable contiguous storage that backs text and list
// payloads. Growth doubles the capacity (repeatedly when one doubling is not
// enough) before any content moves, so an append is never observable in a
// partially copied state and stays amortized O(1) per element.
type Buffer[T any] struct {
	storage []T
	length  int
}

// NewBuffer returns a buffer with room for at least capacity elements.
func NewBuffer[T any](capacity int) *Buffer[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer[T]{storage: make([]T, capacity)}
}

// Len reports the number of elements appended so far.
func (b *Buffer[T]) Len() int {
	return b.length
}

// Cap reports the current capacity. It never shrinks.
func (b *Buffer[T]) Cap() int {
	return len(b.storage)
}

// Append extends the buffer content with items, growing storage as needed.
func (b *Buffer[T]) Append(items ...T) {
	needed := b.length + len(items)
	if needed > len(b.storage) {
		capacity := len(b.storage)
		if capacity == 0 {
			capacity = 1
		}
		for capacity < needed {
			capacity *= 2
		}
		grown := make([]T, capacity)
		copy(grown, b.storage[:b.length])
		b.storage = grown
	}
	copy(b.storage[b.length:], items)
	b.length = needed
}

// At returns the element at index i. Indices in [0, Len()) are valid;
// anything else is a caller bug and panics via the underlying slice.
func (b *Buffer[T]) At(i int) T {
	return b.storage[:b.length][i]
}

// Set overwrites the element at index i.
func (b *Buffer[T]) Set(i int, item T) {
	b.storage[:b.length][i] = item
}

// Items returns the live content. The slice aliases the buffer's storage and
// is invalidated by the next growing Append.
func (b *Buffer[T]) Items() []T {
	return b.storage[:b.length]
}
