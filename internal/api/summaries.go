package api

import (
	"context"
	"fmt"
)

func (client *Client) GetSummary(ctx context.Context, summaryID int64) (Summary, error) {
	var summary Summary
	if err := client.getJSON(ctx, fmt.Sprintf("/summaries/%d", summaryID), nil, &summary); err != nil {
		return Summary{}, err
	}
	return summary, nil
}

func (client *Client) ListSummariesByNotebook(ctx context.Context, notebookID int64) ([]Summary, error) {
	var summaries []Summary
	if err := client.getJSON(ctx, fmt.Sprintf("/summaries/notebook/%d", notebookID), nil, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}
