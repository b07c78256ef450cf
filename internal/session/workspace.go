package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/estudia-app/estudia/internal/api"
)

// View is the active workspace panel.
type View string

const (
	ViewChat       View = "chat"
	ViewFlashcards View = "flashcards"
	ViewQuiz       View = "quiz"
	ViewSummary    View = "summary"
)

var (
	ErrGenerationInFlight = errors.New("a generation is already in progress")
	ErrNoQuizSelected     = errors.New("no quiz is selected")
	ErrQuizNotFound       = errors.New("quiz not found in this notebook")
)

// Workspace drives on-demand generation of study artifacts and tracks which
// panel and which quiz are active. It never owns quiz or flashcard data: the
// selected quiz is a weak reference (an id) resolved against the chat
// container at read time.
//
// One generation may be in flight at a time, across both artifact types; the
// flag is shared on purpose and surfaces in the UI as a single spinner.
type Workspace struct {
	chat      *Chat
	notebooks api.NotebookAPI
	quizzes   api.QuizAPI
	notifier  *NotificationCenter

	mu             sync.Mutex
	view           View
	generating     bool
	selectedQuizID int64
	// Quizzes normalized from a bare array carry no server id; they get a
	// negative local one so selection still works.
	nextLocalQuizID int64
}

func NewWorkspace(chat *Chat, notebooks api.NotebookAPI, quizzes api.QuizAPI, notifier *NotificationCenter) *Workspace {
	return &Workspace{
		chat:      chat,
		notebooks: notebooks,
		quizzes:   quizzes,
		notifier:  notifier,
		view:      ViewChat,
	}
}

func (workspace *Workspace) View() View {
	workspace.mu.Lock()
	defer workspace.mu.Unlock()
	return workspace.view
}

// SetView switches the active panel. Switching away never cancels an
// in-flight generation; its result still lands in the chat container.
func (workspace *Workspace) SetView(view View) {
	workspace.mu.Lock()
	defer workspace.mu.Unlock()
	workspace.view = view
}

func (workspace *Workspace) IsGenerating() bool {
	workspace.mu.Lock()
	defer workspace.mu.Unlock()
	return workspace.generating
}

func (workspace *Workspace) beginGeneration() error {
	workspace.mu.Lock()
	defer workspace.mu.Unlock()
	if workspace.generating {
		return ErrGenerationInFlight
	}
	workspace.generating = true
	return nil
}

func (workspace *Workspace) endGeneration() {
	workspace.mu.Lock()
	defer workspace.mu.Unlock()
	workspace.generating = false
}

// GenerateFlashcards requests a new flashcard batch and appends it to the
// deck. Repeated generations accumulate; already-generated cards are kept on
// failure.
func (workspace *Workspace) GenerateFlashcards(ctx context.Context) ([]api.Flashcard, error) {
	if err := workspace.beginGeneration(); err != nil {
		return nil, err
	}
	defer workspace.endGeneration()

	batch, err := workspace.notebooks.GenerateFlashcards(ctx, workspace.chat.NotebookID())
	if err != nil {
		workspace.notifyError("Flashcards not generated", err)
		return nil, fmt.Errorf("notebooks.GenerateFlashcards > %w", err)
	}
	if len(batch) == 0 {
		err := errors.New("backend returned no flashcards")
		workspace.notifyError("Flashcards not generated", err)
		return nil, err
	}

	workspace.chat.AppendFlashcards(batch)
	return batch, nil
}

// GenerateQuiz creates a new quiz and auto-selects it. Every call adds
// another quiz to the notebook; existing quizzes are never replaced or
// regenerated. A response whose normalized question list is empty triggers a
// follow-up fetch of the questions by quiz id before the quiz is ready.
func (workspace *Workspace) GenerateQuiz(ctx context.Context) (api.Quiz, error) {
	if err := workspace.beginGeneration(); err != nil {
		return api.Quiz{}, err
	}
	defer workspace.endGeneration()

	quiz, err := workspace.notebooks.GenerateQuiz(ctx, workspace.chat.NotebookID())
	if err != nil {
		workspace.notifyError("Quiz not generated", err)
		return api.Quiz{}, fmt.Errorf("notebooks.GenerateQuiz > %w", err)
	}

	if quiz.ID != 0 && len(quiz.Questions) == 0 {
		questions, err := workspace.quizzes.GetQuizQuestions(ctx, quiz.ID)
		if err != nil {
			// Same stance as a generation that yields zero questions: keep
			// the quiz, let the runner report it has nothing to ask.
			slog.Default().Error("failed to fetch questions for quiz", "quizID", quiz.ID, "error", err)
			questions = []api.Question{}
		}
		quiz.Questions = questions
	}

	workspace.mu.Lock()
	if quiz.ID == 0 {
		workspace.nextLocalQuizID--
		quiz.ID = workspace.nextLocalQuizID
	}
	workspace.selectedQuizID = quiz.ID
	workspace.mu.Unlock()

	workspace.chat.AppendQuiz(quiz)
	return quiz, nil
}

// GenerateSummary requests a summary of the notebook's sources.
func (workspace *Workspace) GenerateSummary(ctx context.Context) (api.Summary, error) {
	if err := workspace.beginGeneration(); err != nil {
		return api.Summary{}, err
	}
	defer workspace.endGeneration()

	summary, err := workspace.notebooks.GenerateSummary(ctx, workspace.chat.NotebookID())
	if err != nil {
		workspace.notifyError("Summary not generated", err)
		return api.Summary{}, fmt.Errorf("notebooks.GenerateSummary > %w", err)
	}

	workspace.chat.AppendSummary(summary)
	return summary, nil
}

// SelectQuiz points the workspace at one of the notebook's quizzes.
func (workspace *Workspace) SelectQuiz(quizID int64) error {
	if _, ok := workspace.chat.QuizByID(quizID); !ok {
		return ErrQuizNotFound
	}
	workspace.mu.Lock()
	defer workspace.mu.Unlock()
	workspace.selectedQuizID = quizID
	return nil
}

// SelectedQuizID returns the weak quiz reference; 0 means none.
func (workspace *Workspace) SelectedQuizID() int64 {
	workspace.mu.Lock()
	defer workspace.mu.Unlock()
	return workspace.selectedQuizID
}

// SelectedQuiz resolves the selected quiz against the chat container.
func (workspace *Workspace) SelectedQuiz() (api.Quiz, error) {
	workspace.mu.Lock()
	quizID := workspace.selectedQuizID
	workspace.mu.Unlock()
	if quizID == 0 {
		return api.Quiz{}, ErrNoQuizSelected
	}
	quiz, ok := workspace.chat.QuizByID(quizID)
	if !ok {
		return api.Quiz{}, ErrQuizNotFound
	}
	return quiz, nil
}

func (workspace *Workspace) notifyError(title string, err error) {
	if workspace.notifier == nil {
		return
	}
	message, ok := api.PermissionErrorMessage(err)
	if !ok {
		message = "Something went wrong generating the study material. Try again."
	}
	workspace.notifier.Add(title, message, SeverityError)
}
