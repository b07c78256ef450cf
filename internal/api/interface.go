package api

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/api/mock_api.go -package=mock_api

// The session containers depend on these narrow interfaces rather than the
// concrete Client so tests can drive the state machines with mocks.

type AuthAPI interface {
	Login(ctx context.Context, username, password string) error
	Register(ctx context.Context, params RegisterParams) error
	Logout(ctx context.Context) error
	Me(ctx context.Context) (User, error)
	GoogleLoginURL() string
}

type NotebookAPI interface {
	CreateNotebook(ctx context.Context, files []UploadFile) (Notebook, error)
	GetNotebook(ctx context.Context, notebookID int64) (Notebook, error)
	ListNotebooks(ctx context.Context, skip, limit int) ([]Notebook, error)
	ListNotebooksByUser(ctx context.Context, userID int64) ([]Notebook, error)
	DeleteNotebook(ctx context.Context, notebookID int64) error
	GenerateFlashcards(ctx context.Context, notebookID int64) ([]Flashcard, error)
	GenerateSummary(ctx context.Context, notebookID int64) (Summary, error)
	GenerateQuiz(ctx context.Context, notebookID int64) (Quiz, error)
	AddSources(ctx context.Context, notebookID int64, files []UploadFile) ([]Source, error)
	DeleteNotebookSources(ctx context.Context, notebookID int64, sourceIDs []int64) ([]Source, error)
}

type MessageAPI interface {
	CreateUserMessage(ctx context.Context, params MessageParams) (Message, error)
	CreateLLMMessage(ctx context.Context, params MessageParams) (Message, error)
}

type QuizAPI interface {
	GetQuiz(ctx context.Context, quizID int64) (Quiz, error)
	GetQuizQuestions(ctx context.Context, quizID int64) ([]Question, error)
}

type SourceAPI interface {
	DeleteSource(ctx context.Context, sourceID int64) (Source, error)
	DeleteSources(ctx context.Context, sourceIDs []int64) ([]Source, error)
}

var (
	_ AuthAPI     = (*Client)(nil)
	_ NotebookAPI = (*Client)(nil)
	_ MessageAPI  = (*Client)(nil)
	_ QuizAPI     = (*Client)(nil)
	_ SourceAPI   = (*Client)(nil)
)
