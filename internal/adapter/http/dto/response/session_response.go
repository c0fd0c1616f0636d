package response

import (
	"time"

	"barcraft/internal/domain/entities"
)

type SessionResponse struct {
	SessionID string            `json:"session_id"`
	VenueID   string            `json:"venue_id"`
	Status    string            `json:"status"`
	Answers   map[string]string `json:"answers"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func FromSession(s entities.Session) SessionResponse {
	answers := make(map[string]string, len(s.Answers))
	for qid, v := range s.Answers {
		answers[qid] = v.Choice
	}
	return SessionResponse{
		SessionID: s.ID,
		VenueID:   s.VenueID,
		Status:    string(s.Status),
		Answers:   answers,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
