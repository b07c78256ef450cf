package api

import (
	"context"
	"fmt"
)

func (client *Client) ListFlashcardsByNotebook(ctx context.Context, notebookID int64) ([]Flashcard, error) {
	var flashcards []Flashcard
	if err := client.getJSON(ctx, fmt.Sprintf("/flashcards/notebook/%d", notebookID), nil, &flashcards); err != nil {
		return nil, err
	}
	return flashcards, nil
}

func (client *Client) DeleteFlashcard(ctx context.Context, flashcardID int64) error {
	return client.deleteJSON(ctx, fmt.Sprintf("/flashcards/%d", flashcardID), nil, nil)
}
