// Package testutil provides shared test helpers for creating config files and
// notebook fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/estudia-app/estudia/internal/api"
)

// SetupTestConfig creates a minimal config file pointed at the given backend
// URL. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir, baseURL string) string {
	t.Helper()

	configContent := fmt.Sprintf(`backend:
  base_url: %s
  retry_attempts: 1
session:
  cookie_file: %s
outputs:
  export_directory: %s
`,
		baseURL,
		filepath.Join(tmpDir, "cookies.json"),
		filepath.Join(tmpDir, "exports"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// NotebookOption configures optional fields when creating a notebook fixture.
type NotebookOption func(*api.Notebook)

// WithMessages seeds the notebook's conversation history.
func WithMessages(messages ...api.Message) NotebookOption {
	return func(notebook *api.Notebook) {
		notebook.Messages = messages
	}
}

// WithSources seeds the notebook's documents.
func WithSources(sources ...api.Source) NotebookOption {
	return func(notebook *api.Notebook) {
		notebook.Sources = sources
	}
}

// WithFlashcards seeds the notebook's flashcard deck.
func WithFlashcards(cards ...api.Flashcard) NotebookOption {
	return func(notebook *api.Notebook) {
		notebook.Flashcards = cards
	}
}

// WithQuizzes seeds the notebook's quizzes.
func WithQuizzes(quizzes ...api.Quiz) NotebookOption {
	return func(notebook *api.Notebook) {
		notebook.Quizzes = quizzes
	}
}

// NewNotebook creates a notebook aggregate fixture.
func NewNotebook(id int64, opts ...NotebookOption) api.Notebook {
	notebook := api.Notebook{
		ID:          id,
		Title:       fmt.Sprintf("Notebook %d", id),
		Description: "Fixture notebook",
		UserID:      1,
	}
	for _, opt := range opts {
		opt(&notebook)
	}
	return notebook
}

// NewUserMessage creates a persisted user message fixture.
func NewUserMessage(id, notebookID int64, text string) api.Message {
	return api.Message{ID: id, NotebookID: notebookID, IsUserMessage: true, Text: text}
}

// NewAssistantMessage creates a persisted assistant message fixture.
func NewAssistantMessage(id, notebookID int64, text string) api.Message {
	return api.Message{ID: id, NotebookID: notebookID, IsUserMessage: false, Text: text}
}

// NewQuestion creates a question fixture with one answer key and three
// distractors derived from the id.
func NewQuestion(id, quizID int64) api.Question {
	return api.Question{
		ID:               id,
		QuizID:           quizID,
		Question:         fmt.Sprintf("Question %d?", id),
		Answer:           fmt.Sprintf("answer-%d", id),
		IncorrectAnswer1: fmt.Sprintf("wrong-%d-1", id),
		IncorrectAnswer2: fmt.Sprintf("wrong-%d-2", id),
		IncorrectAnswer3: fmt.Sprintf("wrong-%d-3", id),
	}
}

// NewQuiz creates a quiz fixture with the given number of questions.
func NewQuiz(id, notebookID int64, questionCount int) api.Quiz {
	quiz := api.Quiz{
		ID:         id,
		Title:      fmt.Sprintf("Quiz %d", id),
		NotebookID: notebookID,
		Questions:  make([]api.Question, 0, questionCount),
	}
	for i := 0; i < questionCount; i++ {
		quiz.Questions = append(quiz.Questions, NewQuestion(id*100+int64(i)+1, id))
	}
	return quiz
}

// NewFlashcard creates a flashcard fixture.
func NewFlashcard(id, notebookID int64) api.Flashcard {
	return api.Flashcard{
		ID:         id,
		NotebookID: notebookID,
		Question:   fmt.Sprintf("What is concept %d?", id),
		Answer:     fmt.Sprintf("Concept %d is the answer.", id),
	}
}
