package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// loadGuidance is prepended to every catalog load failure.
const loadGuidance = "Error loading books.json. Please validate file creation by following the ReadMe."

// Book is a single catalog entry as stored in books.json.
type Book struct {
	Title            string  `json:"title"`
	Author           *string `json:"author"`
	FirstPublishYear int     `json:"first_publish_year"`
	Subject          string  `json:"subject"`
}

// AuthorOr returns the author name, or fallback when the author is absent.
func (b Book) AuthorOr(fallback string) string {
	if b.Author == nil {
		return fallback
	}
	return *b.Author
}

// file is the on-disk layout of books.json.
type file struct {
	Books []Book `json:"books"`
}

// Catalog is the read-only list of books loaded at startup.
type Catalog struct {
	books []Book
}

// New creates a catalog over the given books. The slice is copied.
func New(books []Book) *Catalog {
	c := &Catalog{books: make([]Book, len(books))}
	copy(c.books, books)
	return c
}

// Load reads and parses the catalog file at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s\n%w", loadGuidance, err)
	}

	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%s\n%w", loadGuidance, err)
	}

	return &Catalog{books: f.Books}, nil
}

// LoadGenres reads the known-genre list, a JSON array of strings.
func LoadGenres(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read genre list %s: %w", path, err)
	}

	var genres []string
	if err := json.Unmarshal(data, &genres); err != nil {
		return nil, fmt.Errorf("failed to parse genre list %s: %w", path, err)
	}
	return genres, nil
}

// Len returns the number of books in the catalog.
func (c *Catalog) Len() int {
	return len(c.books)
}

// Books returns a copy of all books in catalog order.
func (c *Catalog) Books() []Book {
	out := make([]Book, len(c.books))
	copy(out, c.books)
	return out
}

// FindByGenre returns every book whose subject equals genre ignoring case,
// in catalog order. No trimming or partial matching is applied.
func (c *Catalog) FindByGenre(genre string) []Book {
	var matches []Book
	for _, b := range c.books {
		if strings.EqualFold(b.Subject, genre) {
			matches = append(matches, b)
		}
	}
	return matches
}
