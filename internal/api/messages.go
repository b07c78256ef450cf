package api

import (
	"context"
	"fmt"
)

// MessageParams is the payload for both message-create endpoints.
type MessageParams struct {
	Text       string `json:"text"`
	NotebookID int64  `json:"notebook_id"`
}

// CreateUserMessage persists a user-authored message. Never retried: the
// conversation turn machine issues it exactly once per turn.
func (client *Client) CreateUserMessage(ctx context.Context, params MessageParams) (Message, error) {
	var message Message
	if err := client.postJSON(ctx, "/messages/user", params, &message); err != nil {
		return Message{}, err
	}
	return message, nil
}

// CreateLLMMessage requests the assistant reply for the notebook's current
// conversation and persists it. The text field carries the user prompt the
// reply answers. Never retried.
func (client *Client) CreateLLMMessage(ctx context.Context, params MessageParams) (Message, error) {
	var message Message
	if err := client.postJSON(ctx, "/messages/llm", params, &message); err != nil {
		return Message{}, err
	}
	return message, nil
}

func (client *Client) ListMessagesByNotebook(ctx context.Context, notebookID int64) ([]Message, error) {
	var messages []Message
	if err := client.getJSON(ctx, fmt.Sprintf("/messages/notebook/%d", notebookID), nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (client *Client) DeleteMessage(ctx context.Context, messageID int64) error {
	return client.deleteJSON(ctx, fmt.Sprintf("/messages/%d", messageID), nil, nil)
}
