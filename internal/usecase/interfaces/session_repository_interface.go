package interfaces

import (
	"context"

	"barcraft/internal/domain/entities"
)

// ISessionRepository abstracts DynamoDB persistence for quiz sessions.
//
// MergeAnswers applies last-write-wins per question id on the stored answer
// map. UpdateStatus is a compare-and-set: it returns the zero Session (and a
// nil error) when the current status does not match `from`.

type ISessionRepository interface {
	Create(ctx context.Context, s entities.Session) (entities.Session, error)
	GetByID(ctx context.Context, id string) (entities.Session, error)
	MergeAnswers(ctx context.Context, id string, answers map[string]entities.AnswerValue) (entities.Session, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.SessionStatus) (entities.Session, error)
}
