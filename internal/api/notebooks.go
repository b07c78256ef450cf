package api

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
)

// UploadFile is one document in a multipart upload batch. Contents are held
// in memory so the size gate can run before any network call.
type UploadFile struct {
	Name     string
	Contents []byte
}

// CreateNotebook creates a notebook from one or more uploaded documents.
func (client *Client) CreateNotebook(ctx context.Context, files []UploadFile) (Notebook, error) {
	request := client.httpClient.R().
		SetContext(ctx).
		SetResult(&Notebook{})
	for _, file := range files {
		request.SetFileReader("files", file.Name, bytes.NewReader(file.Contents))
	}

	response, err := request.Post("/notebooks")
	if err != nil {
		return Notebook{}, fmt.Errorf("httpClient.Post(/notebooks) > %w", err)
	}
	if response.IsError() {
		return Notebook{}, responseError(response)
	}
	return *response.Result().(*Notebook), nil
}

// GetNotebook fetches the full notebook aggregate: sources, messages,
// summaries, flashcards and quizzes.
func (client *Client) GetNotebook(ctx context.Context, notebookID int64) (Notebook, error) {
	var notebook Notebook
	if err := client.getJSON(ctx, fmt.Sprintf("/notebooks/%d", notebookID), nil, &notebook); err != nil {
		return Notebook{}, err
	}
	return notebook, nil
}

func (client *Client) ListNotebooks(ctx context.Context, skip, limit int) ([]Notebook, error) {
	var notebooks []Notebook
	query := map[string]string{
		"skip":  strconv.Itoa(skip),
		"limit": strconv.Itoa(limit),
	}
	if err := client.getJSON(ctx, "/notebooks", query, &notebooks); err != nil {
		return nil, err
	}
	return notebooks, nil
}

func (client *Client) ListNotebooksByUser(ctx context.Context, userID int64) ([]Notebook, error) {
	var notebooks []Notebook
	if err := client.getJSON(ctx, fmt.Sprintf("/notebooks/user/%d", userID), nil, &notebooks); err != nil {
		return nil, err
	}
	return notebooks, nil
}

func (client *Client) DeleteNotebook(ctx context.Context, notebookID int64) error {
	return client.deleteJSON(ctx, fmt.Sprintf("/notebooks/%d", notebookID), nil, nil)
}

// GenerateFlashcards asks the backend to derive a new flashcard batch from
// the notebook's sources. The returned slice holds only the new batch, not
// the whole deck.
func (client *Client) GenerateFlashcards(ctx context.Context, notebookID int64) ([]Flashcard, error) {
	var flashcards []Flashcard
	if err := client.postJSON(ctx, fmt.Sprintf("/notebooks/%d/flashcards", notebookID), nil, &flashcards); err != nil {
		return nil, err
	}
	return flashcards, nil
}

// GenerateSummary asks the backend to summarize the notebook's sources.
func (client *Client) GenerateSummary(ctx context.Context, notebookID int64) (Summary, error) {
	var summary Summary
	if err := client.postJSON(ctx, fmt.Sprintf("/notebooks/%d/summary", notebookID), nil, &summary); err != nil {
		return Summary{}, err
	}
	return summary, nil
}

// GenerateQuiz creates a new quiz for the notebook. The response shape has
// varied across backend versions, so the raw body goes through NormalizeQuiz
// instead of straight into a struct.
func (client *Client) GenerateQuiz(ctx context.Context, notebookID int64) (Quiz, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		Post(fmt.Sprintf("/notebooks/%d/quiz", notebookID))
	if err != nil {
		return Quiz{}, fmt.Errorf("httpClient.Post(/notebooks/%d/quiz) > %w", notebookID, err)
	}
	if response.IsError() {
		return Quiz{}, responseError(response)
	}

	quiz, err := NormalizeQuiz(notebookID, []byte(response.String()))
	if err != nil {
		return Quiz{}, fmt.Errorf("NormalizeQuiz > %w", err)
	}
	return quiz, nil
}

// AddSources appends documents to an existing notebook and returns the
// notebook's confirmed source list.
func (client *Client) AddSources(ctx context.Context, notebookID int64, files []UploadFile) ([]Source, error) {
	request := client.httpClient.R().
		SetContext(ctx).
		SetResult(&Notebook{})
	for _, file := range files {
		request.SetFileReader("files", file.Name, bytes.NewReader(file.Contents))
	}

	response, err := request.Post(fmt.Sprintf("/notebooks/%d/add-sources", notebookID))
	if err != nil {
		return nil, fmt.Errorf("httpClient.Post(/notebooks/%d/add-sources) > %w", notebookID, err)
	}
	if response.IsError() {
		return nil, responseError(response)
	}
	return response.Result().(*Notebook).Sources, nil
}

// ListNotebookSources fetches the notebook's source list.
func (client *Client) ListNotebookSources(ctx context.Context, notebookID int64) ([]Source, error) {
	var sources []Source
	if err := client.getJSON(ctx, fmt.Sprintf("/notebooks/%d/sources", notebookID), nil, &sources); err != nil {
		return nil, err
	}
	return sources, nil
}

// DeleteNotebookSources batch-removes sources from a notebook and returns the
// sources that remain.
func (client *Client) DeleteNotebookSources(ctx context.Context, notebookID int64, sourceIDs []int64) ([]Source, error) {
	var remaining []Source
	body := map[string][]int64{"pdf_ids": sourceIDs}
	if err := client.deleteJSON(ctx, fmt.Sprintf("/notebooks/%d/sources/delete-various", notebookID), body, &remaining); err != nil {
		return nil, err
	}
	return remaining, nil
}
