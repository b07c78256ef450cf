package api

import (
	"context"
	"fmt"
)

func (client *Client) GetSource(ctx context.Context, sourceID int64) (Source, error) {
	var source Source
	if err := client.getJSON(ctx, fmt.Sprintf("/sources/%d", sourceID), nil, &source); err != nil {
		return Source{}, err
	}
	return source, nil
}

func (client *Client) ListSourcesByNotebook(ctx context.Context, notebookID int64) ([]Source, error) {
	var sources []Source
	if err := client.getJSON(ctx, fmt.Sprintf("/sources/notebook/%d", notebookID), nil, &sources); err != nil {
		return nil, err
	}
	return sources, nil
}

// DeleteSource removes a single source and returns the deleted record.
func (client *Client) DeleteSource(ctx context.Context, sourceID int64) (Source, error) {
	var deleted Source
	if err := client.deleteJSON(ctx, fmt.Sprintf("/sources/%d", sourceID), nil, &deleted); err != nil {
		return Source{}, err
	}
	return deleted, nil
}

// DeleteSources batch-deletes sources by id list. The backend takes the ids
// in the request body under "pdf_ids" and returns the deleted records.
func (client *Client) DeleteSources(ctx context.Context, sourceIDs []int64) ([]Source, error) {
	var deleted []Source
	body := map[string][]int64{"pdf_ids": sourceIDs}
	if err := client.deleteJSON(ctx, "/sources/delete-various", body, &deleted); err != nil {
		return nil, err
	}
	return deleted, nil
}
