package api

import (
	"context"
	"fmt"
)

func (client *Client) GetQuiz(ctx context.Context, quizID int64) (Quiz, error) {
	var quiz Quiz
	if err := client.getJSON(ctx, fmt.Sprintf("/quizzes/%d", quizID), nil, &quiz); err != nil {
		return Quiz{}, err
	}
	return quiz, nil
}

func (client *Client) ListQuizzesByNotebook(ctx context.Context, notebookID int64) ([]Quiz, error) {
	var quizzes []Quiz
	if err := client.getJSON(ctx, fmt.Sprintf("/quizzes/notebook/%d", notebookID), nil, &quizzes); err != nil {
		return nil, err
	}
	return quizzes, nil
}

// GetQuizQuestions fetches a quiz's question list separately. This is the
// fallback path for quiz-generation responses that arrive without questions.
func (client *Client) GetQuizQuestions(ctx context.Context, quizID int64) ([]Question, error) {
	var questions []Question
	if err := client.getJSON(ctx, fmt.Sprintf("/quizzes/%d/questions", quizID), nil, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (client *Client) DeleteQuiz(ctx context.Context, quizID int64) error {
	return client.deleteJSON(ctx, fmt.Sprintf("/quizzes/%d", quizID), nil, nil)
}
