package catalog

import "math/rand/v2"

// Picker chooses one book out of a non-empty candidate list.
type Picker interface {
	Pick(books []Book) Book
}

// RandomPicker picks uniformly at random. Every call is an independent draw.
type RandomPicker struct{}

// Pick panics if books is empty; callers check FindByGenre results first.
func (RandomPicker) Pick(books []Book) Book {
	if len(books) == 0 {
		panic("catalog: Pick called with no candidates")
	}
	return books[rand.IntN(len(books))]
}
