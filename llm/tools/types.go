package tools

import (
	"fmt"
)

const (
	// RecommendBookToolName is the name the agent uses to call the recommender
	RecommendBookToolName = "recommendBook"

	// UnknownAuthor is shown when a book has no author on record
	UnknownAuthor = "Unknown Author"
)

// ExternalCallError reports a failed call to the text-generation model.
// Tools return it unchanged; nothing in this package retries or substitutes text.
type ExternalCallError struct {
	Op  string
	Err error
}

func (e *ExternalCallError) Error() string {
	return fmt.Sprintf("%s: text generation failed: %v", e.Op, e.Err)
}

func (e *ExternalCallError) Unwrap() error {
	return e.Err
}
