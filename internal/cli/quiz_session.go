package cli

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/fatih/color"

	"github.com/estudia-app/estudia/internal/api"
)

// QuizCLI runs one quiz as an interactive multiple-choice session. The four
// choices are reshuffled on every render, so the correct answer never sits at
// a stable position.
type QuizCLI struct {
	*InteractiveCLI
	quiz      api.Quiz
	remaining []api.Question
	correct   int
	answered  int
}

func NewQuizCLI(quiz api.Quiz) *QuizCLI {
	remaining := make([]api.Question, len(quiz.Questions))
	copy(remaining, quiz.Questions)
	return &QuizCLI{
		InteractiveCLI: newInteractiveCLI(),
		quiz:           quiz,
		remaining:      remaining,
	}
}

// ShuffleQuestions randomizes the question order for this run.
func (cli *QuizCLI) ShuffleQuestions() {
	rand.Shuffle(len(cli.remaining), func(i, j int) {
		cli.remaining[i], cli.remaining[j] = cli.remaining[j], cli.remaining[i]
	})
}

// QuestionCount returns the number of questions left in the session.
func (cli *QuizCLI) QuestionCount() int {
	return len(cli.remaining)
}

// ShuffleChoices returns the answer key and the three distractors in a fresh
// random order.
func ShuffleChoices(question api.Question) []string {
	choices := []string{
		question.Answer,
		question.IncorrectAnswer1,
		question.IncorrectAnswer2,
		question.IncorrectAnswer3,
	}
	rand.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})
	return choices
}

func (cli *QuizCLI) Session(ctx context.Context) error {
	if len(cli.remaining) == 0 {
		fmt.Fprintln(cli.stdoutWriter)
		_, _ = cli.bold.Fprintf(cli.stdoutWriter, "Done! You answered %d out of %d correctly.\n", cli.correct, cli.answered)
		return errEnd
	}

	question := cli.remaining[0]
	choices := ShuffleChoices(question)

	fmt.Fprintln(cli.stdoutWriter)
	_, _ = cli.bold.Fprintln(cli.stdoutWriter, question.Question)
	for i, choice := range choices {
		fmt.Fprintf(cli.stdoutWriter, "  %d. %s\n", i+1, choice)
	}

	input, err := GetSimpleText(cli.stdinReader, "answer (1-4)", cli.stdoutWriter)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	selected, err := strconv.Atoi(input)
	if err != nil || selected < 1 || selected > len(choices) {
		fmt.Fprintln(cli.stdoutWriter, "Pick a number between 1 and 4.")
		return nil
	}

	cli.answered++
	if choices[selected-1] == question.Answer {
		cli.correct++
		fmt.Fprint(cli.stdoutWriter, "✅ ")
		color.Green("Correct!")
	} else {
		fmt.Fprint(cli.stdoutWriter, "❌ ")
		color.Red(`Wrong. The answer is "%s"`, question.Answer)
	}

	cli.remaining = cli.remaining[1:]
	return nil
}
