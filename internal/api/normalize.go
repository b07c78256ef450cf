package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// NormalizeQuiz parses a quiz-generation response into the canonical Quiz
// shape. Backend versions have returned the question list in several forms:
//
//   - a bare question array with no quiz envelope
//   - {"questions": [...]}
//   - {"question_and_answers": [...]}
//   - {"questionAndAnswers": [...]}
//   - the canonical {"questions_and_answers": [...]}
//
// All of them collapse to Quiz.Questions here, so call sites never probe
// fields. An envelope without any recognizable question list yields an empty
// list, which the generation workflow treats as the trigger for the
// fetch-questions-by-quiz fallback. A bare array carries no server identity;
// the returned quiz has ID 0 and callers must assign a local one.
func NormalizeQuiz(notebookID int64, raw []byte) (Quiz, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Quiz{}, fmt.Errorf("empty quiz response")
	}

	if trimmed[0] == '[' {
		var questions []Question
		if err := json.Unmarshal(trimmed, &questions); err != nil {
			return Quiz{}, fmt.Errorf("json.Unmarshal(question array) > %w", err)
		}
		return Quiz{NotebookID: notebookID, Questions: questions}, nil
	}

	var envelope struct {
		Quiz
		AltQuestions      []Question `json:"questions"`
		AltSnakeQuestions []Question `json:"question_and_answers"`
		AltCamelQuestions []Question `json:"questionAndAnswers"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return Quiz{}, fmt.Errorf("json.Unmarshal(quiz envelope) > %w", err)
	}

	quiz := envelope.Quiz
	if quiz.Questions == nil {
		switch {
		case envelope.AltQuestions != nil:
			quiz.Questions = envelope.AltQuestions
		case envelope.AltSnakeQuestions != nil:
			quiz.Questions = envelope.AltSnakeQuestions
		case envelope.AltCamelQuestions != nil:
			quiz.Questions = envelope.AltCamelQuestions
		default:
			quiz.Questions = []Question{}
		}
	}
	if quiz.NotebookID == 0 {
		quiz.NotebookID = notebookID
	}
	return quiz, nil
}
