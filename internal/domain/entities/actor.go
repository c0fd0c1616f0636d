package entities

import "errors"

// Role of an authenticated actor. Admins act on any venue's orders; staff are
// scoped to their assigned venue.

type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

var ErrUnknownRole = errors.New("unknown role")

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleStaff:
		return Role(s), nil
	}
	return "", ErrUnknownRole
}

// Actor is the authenticated caller of order-mutating operations, extracted
// from the bearer token issued by the auth collaborator.
type Actor struct {
	ID      string `json:"id"`
	Role    Role   `json:"role"`
	VenueID string `json:"venue_id,omitempty"`
}

// CanActOn is the capability check shared by every order-mutating operation.
func (a Actor) CanActOn(venueID string) bool {
	if a.Role == RoleAdmin {
		return true
	}
	return a.Role == RoleStaff && a.VenueID != "" && a.VenueID == venueID
}
