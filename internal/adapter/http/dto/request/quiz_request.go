package request

import (
	"errors"
	"strings"

	"barcraft/internal/domain/entities"
)

var (
	ErrEmptyAnswers       = errors.New("answers cannot be empty")
	ErrInvalidAnswerEntry = errors.New("invalid answer entry")
)

// AnswerValue mirrors the typed answer shape: answers arrive as
// `{"q-spirit": {"choice": "gin"}}` and are validated here at the boundary.
type AnswerValue struct {
	Choice string `json:"choice"`
}

// QuizAnswersRequest records a batch of answers on a session. venue_id is
// required only when the session does not exist yet.
type QuizAnswersRequest struct {
	VenueID string                 `json:"venue_id"`
	Answers map[string]AnswerValue `json:"answers" binding:"required"`
}

func (r QuizAnswersRequest) ResolveAnswers() (map[string]entities.AnswerValue, error) {
	return resolveAnswers(r.Answers, true)
}

// QuizSubmitRequest optionally carries a final answer batch merged before
// generation.
type QuizSubmitRequest struct {
	Answers map[string]AnswerValue `json:"answers"`
}

func (r QuizSubmitRequest) ResolveAnswers() (map[string]entities.AnswerValue, error) {
	return resolveAnswers(r.Answers, false)
}

func resolveAnswers(in map[string]AnswerValue, required bool) (map[string]entities.AnswerValue, error) {
	if len(in) == 0 {
		if required {
			return nil, ErrEmptyAnswers
		}
		return nil, nil
	}
	out := make(map[string]entities.AnswerValue, len(in))
	for qid, v := range in {
		qid = strings.TrimSpace(qid)
		choice := strings.TrimSpace(v.Choice)
		if qid == "" || choice == "" {
			return nil, ErrInvalidAnswerEntry
		}
		out[qid] = entities.AnswerValue{Choice: choice}
	}
	return out, nil
}
