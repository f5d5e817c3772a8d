package tools

import (
	"context"
	"fmt"
	"strings"

	"bookrec/catalog"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
)

const (
	recommendBookDescription = "Recommend a book from a user-specified genre and provide a brief description."

	emptyCatalogMessage = "Sorry, the book database is empty or unavailable. Please check your books.json file."
)

// RecommendBookParams defines the arguments for the recommend tool.
type RecommendBookParams struct {
	Genre string `json:"genre" jsonschema:"description=The genre used to recommend a book."`
}

// Recommender picks a book of the requested genre and describes it.
type Recommender struct {
	catalog   *catalog.Catalog
	genres    []string
	picker    catalog.Picker
	describer Describer
}

// NewRecommender wires a recommender. genres is only used in the not-found message.
func NewRecommender(c *catalog.Catalog, genres []string, picker catalog.Picker, describer Describer) *Recommender {
	if picker == nil {
		picker = catalog.RandomPicker{}
	}
	return &Recommender{
		catalog:   c,
		genres:    genres,
		picker:    picker,
		describer: describer,
	}
}

// Recommend returns the recommendation text for genre. Empty catalog and
// unknown genre are answered with text; only a failed description call is an error.
func (r *Recommender) Recommend(ctx context.Context, genre string) (string, error) {
	if r.catalog == nil || r.catalog.Len() == 0 {
		return emptyCatalogMessage, nil
	}

	candidates := r.catalog.FindByGenre(genre)
	if len(candidates) == 0 {
		return fmt.Sprintf("Sorry, I couldn't find any %s books. I currently have recommendations for the following genres: %s.",
			genre, strings.Join(r.genres, ", ")), nil
	}

	book := r.picker.Pick(candidates)
	author := book.AuthorOr(UnknownAuthor)
	base := fmt.Sprintf("Based on my current collection, I recommend %s by %s (%d).", book.Title, author, book.FirstPublishYear)

	description, err := r.describer.Describe(ctx, book.Title, author)
	if err != nil {
		return "", err
	}

	return base + " " + description, nil
}

// GetRecommendBookTool returns the recommend tool backed by r.
func GetRecommendBookTool(r *Recommender) (tool.InvokableTool, error) {
	return utils.InferTool(
		RecommendBookToolName,
		recommendBookDescription,
		func(ctx context.Context, params RecommendBookParams) (string, error) {
			return r.Recommend(ctx, params.Genre)
		},
	)
}
