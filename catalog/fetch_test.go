package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSubjectServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/subjects/fantasy.json":
			fmt.Fprint(w, `{"works": [
				{"title": "The Hobbit", "first_publish_year": 1937, "authors": [{"name": "J.R.R. Tolkien"}, {"name": "Someone Else"}]},
				{"title": "Anonymous Saga", "first_publish_year": 1200, "authors": []}
			]}`)
		case "/subjects/true_crime.json":
			fmt.Fprint(w, `{"works": [{"title": "In Cold Blood", "first_publish_year": 1966, "authors": [{"name": "Truman Capote"}]}]}`)
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestFetchSubject(t *testing.T) {
	srv := newSubjectServer(t)
	defer srv.Close()

	f := NewFetcher()
	f.SubjectURL = srv.URL + "/subjects/%s.json"

	books, err := f.FetchSubject(context.Background(), "fantasy")
	require.NoError(t, err)
	require.Len(t, books, 2)

	assert.Equal(t, "The Hobbit", books[0].Title)
	assert.Equal(t, "J.R.R. Tolkien", books[0].AuthorOr(""))
	assert.Equal(t, 1937, books[0].FirstPublishYear)
	assert.Equal(t, "fantasy", books[0].Subject)
	assert.Nil(t, books[1].Author)
}

func TestFetchSubjectStatusError(t *testing.T) {
	srv := newSubjectServer(t)
	defer srv.Close()

	f := NewFetcher()
	f.SubjectURL = srv.URL + "/subjects/%s.json"

	_, err := f.FetchSubject(context.Background(), "romance")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestFetchAllAndSave(t *testing.T) {
	srv := newSubjectServer(t)
	defer srv.Close()

	var progress []string
	f := NewFetcher()
	f.SubjectURL = srv.URL + "/subjects/%s.json"
	f.Progress = func(s string) { progress = append(progress, s) }

	books, err := f.FetchAll(context.Background(), []string{"true_crime", "fantasy"})
	require.NoError(t, err)
	assert.Equal(t, []string{"true_crime", "fantasy"}, progress)
	require.Len(t, books, 3)
	assert.Equal(t, "In Cold Blood", books[0].Title)

	path := filepath.Join(t.TempDir(), "books.json")
	require.NoError(t, Save(path, books))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, books, c.Books())

	hobbit := c.FindByGenre("FANTASY")
	require.Len(t, hobbit, 2)
	assert.True(t, strings.HasPrefix(hobbit[0].Title, "The Hobbit"))
}

func TestSaveEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.json")
	require.NoError(t, Save(path, nil))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}
