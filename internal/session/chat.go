package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/estudia-app/estudia/internal/api"
)

// MessageState tags each in-memory message explicitly instead of inferring
// persistence from id magnitude. Server ids are never compared against
// timestamps.
type MessageState int

const (
	// StatePersisted: the message carries a durable server id.
	StatePersisted MessageState = iota
	// StatePending: optimistic user message appended on submit, persist call
	// not yet completed.
	StatePending
	// StateLoading: assistant placeholder awaiting the backend reply.
	StateLoading
	// StateFailed: a network call for this entry rejected; retryable.
	StateFailed
)

func (state MessageState) String() string {
	switch state {
	case StatePersisted:
		return "persisted"
	case StatePending:
		return "pending"
	case StateLoading:
		return "loading"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// ChatMessage is one conversation entry as rendered. Entries without a server
// id yet are addressed by LocalID.
type ChatMessage struct {
	api.Message
	State   MessageState
	LocalID string
	Err     error
}

// turn is one unit of work for the dispatcher. assistantOnly turns resume a
// conversation turn whose user message is already persisted.
type turn struct {
	localID       string
	text          string
	assistantOnly bool
}

const turnQueueCapacity = 64

var (
	ErrEmptyMessage  = errors.New("message is empty")
	ErrChatClosed    = errors.New("chat session is closed")
	ErrTooManyQueued = errors.New("too many messages waiting to be sent")
	ErrNotRetryable  = errors.New("message is not in a failed state")
)

// Chat owns the active notebook's aggregate (metadata, sources, messages,
// summaries, flashcards, quizzes) for the lifetime of the session, and runs
// the message reconciliation machine.
//
// Reconciliation: Send appends an optimistic pending user message and
// enqueues a turn. A single dispatcher goroutine persists the user message,
// replaces the pending entry in place, inserts a loading assistant
// placeholder directly after it, requests the assistant reply and replaces
// the placeholder in place. One goroutine means at most one turn is ever in
// flight; later submissions wait in FIFO order and keep their list position,
// so completed turns always render as user/assistant pairs in submission
// order. A failed call marks its entry
// StateFailed and keeps it addressable for Retry.
type Chat struct {
	notebooks api.NotebookAPI
	messenger api.MessageAPI
	notifier  *NotificationCenter

	mu         sync.Mutex
	cond       *sync.Cond
	notebook   api.Notebook
	messages   []ChatMessage
	flashcards []api.Flashcard
	quizzes    []api.Quiz
	summaries  []api.Summary
	sources    []api.Source
	// failed turns by the LocalID of their failed entry, for Retry
	failedTurns map[string]turn
	pending     int
	closed      bool

	queue chan turn
	wg    sync.WaitGroup
}

// NewChat fetches the notebook aggregate and starts the dispatcher. The
// given context bounds the initial fetch only; in-flight turns are not
// cancelled on teardown by design, so the dispatcher runs on its own context.
func NewChat(ctx context.Context, notebooks api.NotebookAPI, messenger api.MessageAPI, notifier *NotificationCenter, notebookID int64) (*Chat, error) {
	notebook, err := notebooks.GetNotebook(ctx, notebookID)
	if err != nil {
		return nil, fmt.Errorf("notebooks.GetNotebook(%d) > %w", notebookID, err)
	}

	chat := &Chat{
		notebooks:   notebooks,
		messenger:   messenger,
		notifier:    notifier,
		notebook:    notebook,
		flashcards:  notebook.Flashcards,
		quizzes:     notebook.Quizzes,
		summaries:   notebook.Summaries,
		sources:     notebook.Sources,
		failedTurns: map[string]turn{},
		queue:       make(chan turn, turnQueueCapacity),
	}
	chat.cond = sync.NewCond(&chat.mu)
	chat.messages = make([]ChatMessage, 0, len(notebook.Messages))
	for _, message := range notebook.Messages {
		chat.messages = append(chat.messages, ChatMessage{Message: message, State: StatePersisted})
	}

	chat.wg.Add(1)
	go chat.dispatch()
	return chat, nil
}

// Send appends an optimistic user message and queues its reconciliation.
// It returns the entry's local id immediately; the network work happens on
// the dispatcher. A second Send while a turn is in flight queues behind it,
// never races it.
func (chat *Chat) Send(text string) (string, error) {
	clean := strings.TrimSpace(text)
	if clean == "" {
		return "", ErrEmptyMessage
	}

	chat.mu.Lock()
	if chat.closed {
		chat.mu.Unlock()
		return "", ErrChatClosed
	}
	if len(chat.queue) == cap(chat.queue) {
		chat.mu.Unlock()
		return "", ErrTooManyQueued
	}
	localID := uuid.NewString()
	chat.messages = append(chat.messages, ChatMessage{
		Message: api.Message{
			NotebookID:    chat.notebook.ID,
			IsUserMessage: true,
			Text:          clean,
		},
		State:   StatePending,
		LocalID: localID,
	})
	chat.pending++
	// Enqueue under the lock: the capacity check above guarantees this never
	// blocks, and Close cannot slip in between the append and the send.
	chat.queue <- turn{localID: localID, text: clean}
	chat.mu.Unlock()

	return localID, nil
}

// Retry re-queues a failed turn identified by the local id of its failed
// entry. A turn that failed before the user message persisted restarts from
// scratch; one that failed awaiting the assistant resumes at the reply call,
// so the user message is never persisted twice.
func (chat *Chat) Retry(localID string) error {
	chat.mu.Lock()
	if chat.closed {
		chat.mu.Unlock()
		return ErrChatClosed
	}
	failed, ok := chat.failedTurns[localID]
	if !ok {
		chat.mu.Unlock()
		return ErrNotRetryable
	}
	if len(chat.queue) == cap(chat.queue) {
		chat.mu.Unlock()
		return ErrTooManyQueued
	}
	delete(chat.failedTurns, localID)

	index := chat.indexOfLocked(localID)
	if index < 0 {
		chat.mu.Unlock()
		return ErrNotRetryable
	}
	if failed.assistantOnly {
		chat.messages[index].State = StateLoading
	} else {
		chat.messages[index].State = StatePending
	}
	chat.messages[index].Err = nil
	chat.pending++
	chat.queue <- failed
	chat.mu.Unlock()
	return nil
}

func (chat *Chat) dispatch() {
	defer chat.wg.Done()
	for t := range chat.queue {
		chat.runTurn(t)

		chat.mu.Lock()
		chat.pending--
		chat.cond.Broadcast()
		chat.mu.Unlock()
	}
}

// runTurn executes one conversation turn. Deliberately not cancellable:
// leaving the view mid-flight lets the assistant call complete and land in
// state.
func (chat *Chat) runTurn(t turn) {
	ctx := context.Background()
	params := api.MessageParams{Text: t.text, NotebookID: chat.notebook.ID}

	placeholderID := t.localID
	if !t.assistantOnly {
		persisted, err := chat.messenger.CreateUserMessage(ctx, params)
		if err != nil {
			slog.Default().Error("failed to persist user message", "notebookID", chat.notebook.ID, "error", err)
			chat.failTurn(t.localID, turn{localID: t.localID, text: t.text}, err)
			chat.notifyError("Message not sent", err)
			return
		}

		placeholderID = uuid.NewString()
		placeholder := ChatMessage{
			Message: api.Message{
				NotebookID:    chat.notebook.ID,
				IsUserMessage: false,
			},
			State:   StateLoading,
			LocalID: placeholderID,
		}
		chat.mu.Lock()
		if index := chat.indexOfLocked(t.localID); index >= 0 {
			// Replace in place and insert the placeholder directly after the
			// user entry. Later submissions may already sit behind it in the
			// list, so a tail append would split the pair.
			chat.messages[index] = ChatMessage{Message: persisted, State: StatePersisted}
			chat.messages = slices.Insert(chat.messages, index+1, placeholder)
		} else {
			chat.messages = append(chat.messages, placeholder)
		}
		chat.mu.Unlock()
	}

	reply, err := chat.messenger.CreateLLMMessage(ctx, params)
	if err != nil {
		slog.Default().Error("failed to fetch assistant reply", "notebookID", chat.notebook.ID, "error", err)
		chat.failTurn(placeholderID, turn{localID: placeholderID, text: t.text, assistantOnly: true}, err)
		chat.notifyError("No reply from the assistant", err)
		return
	}

	chat.mu.Lock()
	if index := chat.indexOfLocked(placeholderID); index >= 0 {
		chat.messages[index] = ChatMessage{Message: reply, State: StatePersisted}
	}
	chat.mu.Unlock()
}

func (chat *Chat) failTurn(localID string, retryable turn, err error) {
	chat.mu.Lock()
	defer chat.mu.Unlock()
	if index := chat.indexOfLocked(localID); index >= 0 {
		chat.messages[index].State = StateFailed
		chat.messages[index].Err = err
	}
	chat.failedTurns[localID] = retryable
}

func (chat *Chat) notifyError(title string, err error) {
	if chat.notifier == nil {
		return
	}
	message, ok := api.PermissionErrorMessage(err)
	if !ok {
		message = "Something went wrong. Retry the message when you are ready."
	}
	chat.notifier.Add(title, message, SeverityError)
}

// indexOfLocked finds a message by local id. Callers hold chat.mu.
func (chat *Chat) indexOfLocked(localID string) int {
	for i := range chat.messages {
		if chat.messages[i].LocalID == localID {
			return i
		}
	}
	return -1
}

// Wait blocks until every queued turn has been reconciled or failed.
func (chat *Chat) Wait() {
	chat.mu.Lock()
	defer chat.mu.Unlock()
	for chat.pending > 0 {
		chat.cond.Wait()
	}
}

// Close drains in-flight turns and stops the dispatcher. It never cancels a
// turn that already started.
func (chat *Chat) Close() {
	chat.mu.Lock()
	if chat.closed {
		chat.mu.Unlock()
		return
	}
	chat.closed = true
	chat.mu.Unlock()

	chat.Wait()
	close(chat.queue)
	chat.wg.Wait()
}

// Notebook returns the notebook metadata snapshot.
func (chat *Chat) Notebook() api.Notebook {
	chat.mu.Lock()
	defer chat.mu.Unlock()
	return chat.notebook
}

func (chat *Chat) NotebookID() int64 {
	chat.mu.Lock()
	defer chat.mu.Unlock()
	return chat.notebook.ID
}

// Messages returns a snapshot of the conversation in render order.
func (chat *Chat) Messages() []ChatMessage {
	chat.mu.Lock()
	defer chat.mu.Unlock()
	out := make([]ChatMessage, len(chat.messages))
	copy(out, chat.messages)
	return out
}

func (chat *Chat) Flashcards() []api.Flashcard {
	chat.mu.Lock()
	defer chat.mu.Unlock()
	out := make([]api.Flashcard, len(chat.flashcards))
	copy(out, chat.flashcards)
	return out
}

func (chat *Chat) Quizzes() []api.Quiz {
	chat.mu.Lock()
	defer chat.mu.Unlock()
	out := make([]api.Quiz, len(chat.quizzes))
	copy(out, chat.quizzes)
	return out
}

func (chat *Chat) QuizByID(quizID int64) (api.Quiz, bool) {
	chat.mu.Lock()
	defer chat.mu.Unlock()
	for _, quiz := range chat.quizzes {
		if quiz.ID == quizID {
			return quiz, true
		}
	}
	return api.Quiz{}, false
}

func (chat *Chat) Summaries() []api.Summary {
	chat.mu.Lock()
	defer chat.mu.Unlock()
	out := make([]api.Summary, len(chat.summaries))
	copy(out, chat.summaries)
	return out
}

func (chat *Chat) Sources() []api.Source {
	chat.mu.Lock()
	defer chat.mu.Unlock()
	out := make([]api.Source, len(chat.sources))
	copy(out, chat.sources)
	return out
}

// AppendFlashcards appends a generated batch to the deck and mirrors it into
// the notebook aggregate. Batches accumulate; nothing is ever replaced.
func (chat *Chat) AppendFlashcards(batch []api.Flashcard) {
	chat.mu.Lock()
	defer chat.mu.Unlock()
	chat.flashcards = append(chat.flashcards, batch...)
	chat.notebook.Flashcards = append(chat.notebook.Flashcards, batch...)
}

// AppendQuiz appends a generated quiz and mirrors it into the notebook.
func (chat *Chat) AppendQuiz(quiz api.Quiz) {
	chat.mu.Lock()
	defer chat.mu.Unlock()
	chat.quizzes = append(chat.quizzes, quiz)
	chat.notebook.Quizzes = append(chat.notebook.Quizzes, quiz)
}

// AppendSummary appends a generated summary and mirrors it into the notebook.
func (chat *Chat) AppendSummary(summary api.Summary) {
	chat.mu.Lock()
	defer chat.mu.Unlock()
	chat.summaries = append(chat.summaries, summary)
	chat.notebook.Summaries = append(chat.notebook.Summaries, summary)
}

// SetSources replaces the source list with the server-confirmed one. Source
// mutations are never optimistic.
func (chat *Chat) SetSources(sources []api.Source) {
	chat.mu.Lock()
	defer chat.mu.Unlock()
	chat.sources = sources
	chat.notebook.Sources = sources
}
