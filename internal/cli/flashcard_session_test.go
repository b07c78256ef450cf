package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estudia-app/estudia/internal/api"
	"github.com/estudia-app/estudia/internal/testutil"
)

func TestFlashcardCLI_Session(t *testing.T) {
	card := testutil.NewFlashcard(1, 1)

	var out bytes.Buffer
	flashcardCLI := NewFlashcardCLI([]api.Flashcard{card})
	flashcardCLI.stdoutWriter = &out
	// Reveal the answer, then self-grade as known.
	flashcardCLI.stdinReader = bufio.NewReader(strings.NewReader("\ny\n"))

	require.NoError(t, flashcardCLI.Session(context.Background()))

	rendered := out.String()
	assert.Contains(t, rendered, card.Question)
	assert.Contains(t, rendered, card.Answer)
	assert.Equal(t, 0, flashcardCLI.CardCount())
	assert.Equal(t, 1, flashcardCLI.known)

	out.Reset()
	err := flashcardCLI.Session(context.Background())
	assert.ErrorIs(t, err, errEnd)
	assert.Contains(t, out.String(), "You knew 1 of 1 cards")
}

func TestFlashcardCLI_Session_UnknownCard(t *testing.T) {
	card := testutil.NewFlashcard(1, 1)

	var out bytes.Buffer
	flashcardCLI := NewFlashcardCLI([]api.Flashcard{card})
	flashcardCLI.stdoutWriter = &out
	flashcardCLI.stdinReader = bufio.NewReader(strings.NewReader("\nn\n"))

	require.NoError(t, flashcardCLI.Session(context.Background()))
	assert.Equal(t, 0, flashcardCLI.known)
	assert.Equal(t, 1, flashcardCLI.reviewed)
}

func TestFlashcardCLI_ShuffleCards(t *testing.T) {
	cards := []api.Flashcard{
		testutil.NewFlashcard(1, 1),
		testutil.NewFlashcard(2, 1),
		testutil.NewFlashcard(3, 1),
	}
	flashcardCLI := NewFlashcardCLI(cards)
	flashcardCLI.ShuffleCards()

	assert.Equal(t, 3, flashcardCLI.CardCount())
	// The caller's slice stays in its original order.
	assert.Equal(t, int64(1), cards[0].ID)
	assert.Equal(t, int64(2), cards[1].ID)
	assert.Equal(t, int64(3), cards[2].ID)
}
