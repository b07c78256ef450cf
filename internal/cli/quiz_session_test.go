package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estudia-app/estudia/internal/testutil"
)

func TestShuffleChoices(t *testing.T) {
	question := testutil.NewQuestion(1, 30)

	// The shuffle must always keep exactly the answer key plus the three
	// distractors, whatever order they land in.
	for i := 0; i < 20; i++ {
		choices := ShuffleChoices(question)
		assert.ElementsMatch(t, []string{
			question.Answer,
			question.IncorrectAnswer1,
			question.IncorrectAnswer2,
			question.IncorrectAnswer3,
		}, choices)
	}
}

func TestQuizCLI_Session(t *testing.T) {
	quiz := testutil.NewQuiz(30, 1, 1)
	question := quiz.Questions[0]

	var out bytes.Buffer
	quizCLI := NewQuizCLI(quiz)
	quizCLI.stdoutWriter = &out

	// The choices are shuffled per render, so read the rendered output to
	// find where the answer key landed.
	quizCLI.stdinReader = bufio.NewReader(strings.NewReader("1\n"))
	require.NoError(t, quizCLI.Session(context.Background()))

	rendered := out.String()
	assert.Contains(t, rendered, question.Question)
	assert.Contains(t, rendered, question.Answer)
	assert.Contains(t, rendered, question.IncorrectAnswer1)
	assert.Equal(t, 0, quizCLI.QuestionCount())
	assert.Equal(t, 1, quizCLI.answered)

	// All questions consumed: the next round reports the score and ends.
	out.Reset()
	err := quizCLI.Session(context.Background())
	assert.ErrorIs(t, err, errEnd)
	assert.Contains(t, out.String(), "out of 1")
}

func TestQuizCLI_Session_InvalidAnswerKeepsQuestion(t *testing.T) {
	quiz := testutil.NewQuiz(30, 1, 1)

	var out bytes.Buffer
	quizCLI := NewQuizCLI(quiz)
	quizCLI.stdoutWriter = &out
	quizCLI.stdinReader = bufio.NewReader(strings.NewReader("nope\n"))

	require.NoError(t, quizCLI.Session(context.Background()))
	assert.Contains(t, out.String(), "Pick a number")
	assert.Equal(t, 1, quizCLI.QuestionCount())
	assert.Equal(t, 0, quizCLI.answered)
}

func TestQuizCLI_ShuffleQuestions(t *testing.T) {
	quiz := testutil.NewQuiz(30, 1, 5)
	quizCLI := NewQuizCLI(quiz)
	quizCLI.ShuffleQuestions()

	assert.Equal(t, 5, quizCLI.QuestionCount())
	// The original quiz must not lose questions to the shuffle.
	assert.Len(t, quiz.Questions, 5)
}
