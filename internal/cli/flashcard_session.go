package cli

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/fatih/color"

	"github.com/estudia-app/estudia/internal/api"
)

// FlashcardCLI reviews a flashcard deck: show the question, reveal the answer
// on Enter, then self-grade with y/n.
type FlashcardCLI struct {
	*InteractiveCLI
	cards    []api.Flashcard
	known    int
	reviewed int
}

func NewFlashcardCLI(cards []api.Flashcard) *FlashcardCLI {
	deck := make([]api.Flashcard, len(cards))
	copy(deck, cards)
	return &FlashcardCLI{
		InteractiveCLI: newInteractiveCLI(),
		cards:          deck,
	}
}

// ShuffleCards randomizes the review order for this run.
func (cli *FlashcardCLI) ShuffleCards() {
	rand.Shuffle(len(cli.cards), func(i, j int) {
		cli.cards[i], cli.cards[j] = cli.cards[j], cli.cards[i]
	})
}

// CardCount returns the number of cards left in the session.
func (cli *FlashcardCLI) CardCount() int {
	return len(cli.cards)
}

func (cli *FlashcardCLI) Session(ctx context.Context) error {
	if len(cli.cards) == 0 {
		fmt.Fprintln(cli.stdoutWriter)
		_, _ = cli.bold.Fprintf(cli.stdoutWriter, "Deck finished. You knew %d of %d cards.\n", cli.known, cli.reviewed)
		return errEnd
	}

	card := cli.cards[0]
	fmt.Fprintln(cli.stdoutWriter)
	_, _ = cli.bold.Fprintln(cli.stdoutWriter, card.Question)
	if _, err := GetSimpleText(cli.stdinReader, "press Enter to reveal", cli.stdoutWriter); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	_, _ = cli.italic.Fprintln(cli.stdoutWriter, card.Answer)

	knewIt, err := GetConfirmation(cli.stdinReader, "Did you know it?", cli.stdoutWriter)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	cli.reviewed++
	if knewIt {
		cli.known++
		color.Green("Nice.")
	} else {
		color.Yellow("It will come around again another day.")
	}

	cli.cards = cli.cards[1:]
	return nil
}
