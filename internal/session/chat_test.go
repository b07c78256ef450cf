package session

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/estudia-app/estudia/internal/api"
	mock_api "github.com/estudia-app/estudia/internal/mocks/api"
	"github.com/estudia-app/estudia/internal/testutil"
)

func newTestChat(t *testing.T, ctrl *gomock.Controller, notebook api.Notebook) (*Chat, *mock_api.MockMessageAPI) {
	t.Helper()

	notebooks := mock_api.NewMockNotebookAPI(ctrl)
	messenger := mock_api.NewMockMessageAPI(ctrl)
	notebooks.EXPECT().GetNotebook(gomock.Any(), notebook.ID).Return(notebook, nil)

	chat, err := NewChat(context.Background(), notebooks, messenger, nil, notebook.ID)
	require.NoError(t, err)
	t.Cleanup(chat.Close)
	return chat, messenger
}

func TestNewChat_SeedsPersistedHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	notebook := testutil.NewNotebook(1, testutil.WithMessages(
		testutil.NewUserMessage(10, 1, "What is mitosis?"),
		testutil.NewAssistantMessage(11, 1, "Cell division."),
	))

	chat, _ := newTestChat(t, ctrl, notebook)

	messages := chat.Messages()
	require.Len(t, messages, 2)
	for _, message := range messages {
		assert.Equal(t, StatePersisted, message.State)
		assert.Empty(t, message.LocalID)
	}
	assert.Equal(t, int64(10), messages[0].ID)
	assert.Equal(t, int64(11), messages[1].ID)
}

func TestChat_Send_ReconcilesOneTurn(t *testing.T) {
	ctrl := gomock.NewController(t)
	chat, messenger := newTestChat(t, ctrl, testutil.NewNotebook(1))

	messenger.EXPECT().
		CreateUserMessage(gomock.Any(), api.MessageParams{Text: "What is mitosis?", NotebookID: 1}).
		Return(testutil.NewUserMessage(100, 1, "What is mitosis?"), nil)
	messenger.EXPECT().
		CreateLLMMessage(gomock.Any(), api.MessageParams{Text: "What is mitosis?", NotebookID: 1}).
		Return(testutil.NewAssistantMessage(101, 1, "Cell division."), nil)

	localID, err := chat.Send("  What is mitosis?  ")
	require.NoError(t, err)
	assert.NotEmpty(t, localID)

	chat.Wait()

	messages := chat.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, StatePersisted, messages[0].State)
	assert.Equal(t, int64(100), messages[0].ID)
	assert.True(t, messages[0].IsUserMessage)
	assert.Equal(t, StatePersisted, messages[1].State)
	assert.Equal(t, int64(101), messages[1].ID)
	assert.False(t, messages[1].IsUserMessage)
}

func TestChat_Send_EmptyMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	chat, _ := newTestChat(t, ctrl, testutil.NewNotebook(1))

	_, err := chat.Send("   \n ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Empty(t, chat.Messages())
}

// Rapid sends must persist each user message exactly once and keep the
// conversation interleaved in submission order. The first persist is held
// until every Send has queued its optimistic entry, so the later pending
// entries already sit in the list when the first turn's placeholder lands.
func TestChat_RapidSends_KeepSubmissionOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	chat, messenger := newTestChat(t, ctrl, testutil.NewNotebook(1))

	allQueued := make(chan struct{})
	var nextID int64 = 100
	firstPersist := true
	messenger.EXPECT().
		CreateUserMessage(gomock.Any(), gomock.Any()).
		Times(3).
		DoAndReturn(func(ctx context.Context, params api.MessageParams) (api.Message, error) {
			if firstPersist {
				firstPersist = false
				<-allQueued
			}
			nextID++
			return testutil.NewUserMessage(nextID, 1, params.Text), nil
		})
	messenger.EXPECT().
		CreateLLMMessage(gomock.Any(), gomock.Any()).
		Times(3).
		DoAndReturn(func(ctx context.Context, params api.MessageParams) (api.Message, error) {
			nextID++
			return testutil.NewAssistantMessage(nextID, 1, "re: "+params.Text), nil
		})

	for _, text := range []string{"first", "second", "third"} {
		_, err := chat.Send(text)
		require.NoError(t, err)
	}
	close(allQueued)

	chat.Wait()

	messages := chat.Messages()
	require.Len(t, messages, 6)
	want := []string{"first", "re: first", "second", "re: second", "third", "re: third"}
	for i, text := range want {
		assert.Equal(t, text, messages[i].Text, "message %d", i)
		assert.Equal(t, StatePersisted, messages[i].State, "message %d", i)
		assert.Equal(t, i%2 == 0, messages[i].IsUserMessage, "message %d", i)
	}
}

// A retried turn reconciles in its original list position; turns that
// completed in the meantime never slot in between the retried pair.
func TestChat_RetryKeepsPairPosition(t *testing.T) {
	ctrl := gomock.NewController(t)
	chat, messenger := newTestChat(t, ctrl, testutil.NewNotebook(1))

	firstCall := messenger.EXPECT().
		CreateUserMessage(gomock.Any(), api.MessageParams{Text: "first", NotebookID: 1}).
		Return(api.Message{}, errors.New("connection refused"))

	localID, err := chat.Send("first")
	require.NoError(t, err)
	chat.Wait()

	messenger.EXPECT().
		CreateUserMessage(gomock.Any(), api.MessageParams{Text: "second", NotebookID: 1}).
		Return(testutil.NewUserMessage(100, 1, "second"), nil)
	messenger.EXPECT().
		CreateLLMMessage(gomock.Any(), api.MessageParams{Text: "second", NotebookID: 1}).
		Return(testutil.NewAssistantMessage(101, 1, "re: second"), nil)

	_, err = chat.Send("second")
	require.NoError(t, err)
	chat.Wait()

	messenger.EXPECT().
		CreateUserMessage(gomock.Any(), api.MessageParams{Text: "first", NotebookID: 1}).
		Return(testutil.NewUserMessage(102, 1, "first"), nil).
		After(firstCall)
	messenger.EXPECT().
		CreateLLMMessage(gomock.Any(), api.MessageParams{Text: "first", NotebookID: 1}).
		Return(testutil.NewAssistantMessage(103, 1, "re: first"), nil)

	require.NoError(t, chat.Retry(localID))
	chat.Wait()

	messages := chat.Messages()
	require.Len(t, messages, 4)
	want := []string{"first", "re: first", "second", "re: second"}
	for i, text := range want {
		assert.Equal(t, text, messages[i].Text, "message %d", i)
	}
}

func TestChat_FailedUserMessage_RetryRestartsTurn(t *testing.T) {
	ctrl := gomock.NewController(t)
	chat, messenger := newTestChat(t, ctrl, testutil.NewNotebook(1))

	firstCall := messenger.EXPECT().
		CreateUserMessage(gomock.Any(), gomock.Any()).
		Return(api.Message{}, errors.New("connection refused"))

	localID, err := chat.Send("hello")
	require.NoError(t, err)
	chat.Wait()

	messages := chat.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, StateFailed, messages[0].State)
	assert.Equal(t, localID, messages[0].LocalID)
	assert.Error(t, messages[0].Err)

	messenger.EXPECT().
		CreateUserMessage(gomock.Any(), api.MessageParams{Text: "hello", NotebookID: 1}).
		Return(testutil.NewUserMessage(100, 1, "hello"), nil).
		After(firstCall)
	messenger.EXPECT().
		CreateLLMMessage(gomock.Any(), gomock.Any()).
		Return(testutil.NewAssistantMessage(101, 1, "hi"), nil)

	require.NoError(t, chat.Retry(localID))
	chat.Wait()

	messages = chat.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, StatePersisted, messages[0].State)
	assert.Equal(t, StatePersisted, messages[1].State)

	// The turn is no longer retryable once it reconciled.
	assert.ErrorIs(t, chat.Retry(localID), ErrNotRetryable)
}

// A turn whose user message persisted but whose assistant call failed resumes
// at the reply; the user message is never persisted twice.
func TestChat_FailedAssistant_RetryResumesAtReply(t *testing.T) {
	ctrl := gomock.NewController(t)
	chat, messenger := newTestChat(t, ctrl, testutil.NewNotebook(1))

	messenger.EXPECT().
		CreateUserMessage(gomock.Any(), gomock.Any()).
		Times(1).
		Return(testutil.NewUserMessage(100, 1, "hello"), nil)
	firstReply := messenger.EXPECT().
		CreateLLMMessage(gomock.Any(), gomock.Any()).
		Return(api.Message{}, errors.New("i/o timeout"))

	_, err := chat.Send("hello")
	require.NoError(t, err)
	chat.Wait()

	messages := chat.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, StatePersisted, messages[0].State)
	assert.Equal(t, StateFailed, messages[1].State)
	placeholderID := messages[1].LocalID
	require.NotEmpty(t, placeholderID)

	messenger.EXPECT().
		CreateLLMMessage(gomock.Any(), gomock.Any()).
		Return(testutil.NewAssistantMessage(101, 1, "hi"), nil).
		After(firstReply)

	require.NoError(t, chat.Retry(placeholderID))
	chat.Wait()

	messages = chat.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, StatePersisted, messages[1].State)
	assert.Equal(t, int64(101), messages[1].ID)
}

func TestChat_FailureNotifies(t *testing.T) {
	ctrl := gomock.NewController(t)
	notebooks := mock_api.NewMockNotebookAPI(ctrl)
	messenger := mock_api.NewMockMessageAPI(ctrl)
	notebooks.EXPECT().GetNotebook(gomock.Any(), int64(1)).Return(testutil.NewNotebook(1), nil)

	center := NewNotificationCenter(WithTTL(time.Minute))
	defer center.Close()

	chat, err := NewChat(context.Background(), notebooks, messenger, center, 1)
	require.NoError(t, err)
	defer chat.Close()

	messenger.EXPECT().
		CreateUserMessage(gomock.Any(), gomock.Any()).
		Return(api.Message{}, &api.Error{StatusCode: 403, Detail: "Not your notebook"})

	_, err = chat.Send("hello")
	require.NoError(t, err)
	chat.Wait()

	notifications := center.List()
	require.Len(t, notifications, 1)
	assert.Equal(t, SeverityError, notifications[0].Severity)
	assert.Equal(t, "Not your notebook", notifications[0].Message)
}

func TestChat_SendAfterClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	chat, _ := newTestChat(t, ctrl, testutil.NewNotebook(1))

	chat.Close()
	_, err := chat.Send("hello")
	assert.ErrorIs(t, err, ErrChatClosed)
	assert.ErrorIs(t, chat.Retry("nope"), ErrChatClosed)
}

func TestChat_RetryUnknownID(t *testing.T) {
	ctrl := gomock.NewController(t)
	chat, _ := newTestChat(t, ctrl, testutil.NewNotebook(1))

	assert.ErrorIs(t, chat.Retry("no-such-entry"), ErrNotRetryable)
}

func TestMessageState_String(t *testing.T) {
	tests := []struct {
		state MessageState
		want  string
	}{
		{StatePersisted, "persisted"},
		{StatePending, "pending"},
		{StateLoading, "loading"},
		{StateFailed, "failed"},
		{MessageState(99), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, fmt.Sprint(tt.state))
		})
	}
}
