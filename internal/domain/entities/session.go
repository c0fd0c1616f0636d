package entities

import "time"

// SessionStatus represents the lifecycle of a quiz session.
//
// Domain notes:
//   - A session is created on the first recorded answer (or on submission).
//   - Sessions are append-only history for audit; they are never deleted.

type SessionStatus string

const (
	SessionStatusInProgress SessionStatus = "in_progress"
	SessionStatusSubmitted  SessionStatus = "submitted"
)

// AnswerValue is one recorded quiz answer. Answers are validated at the HTTP
// boundary and carried as a typed value internally, not as opaque JSON.
type AnswerValue struct {
	Choice string `json:"choice"`
}

// Session is one customer's quiz attempt for a venue, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id (string)
//
// Answers merge by question id with last-write-wins per key.
type Session struct {
	ID        string                 `json:"id"`
	VenueID   string                 `json:"venue_id"`
	Status    SessionStatus          `json:"status"`
	Answers   map[string]AnswerValue `json:"answers"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}
