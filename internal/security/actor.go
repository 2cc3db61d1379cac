package security

import "mentorhub-backend/internal/domain"

// Actor carries the authenticated caller's identity into every service
// call. It is extracted once from the access token at the API boundary,
// so authorization decisions are pure functions of (actor, record) rather
// than ambient lookups.
type Actor struct {
	UserID int32
	Email  string
	Role   domain.UserRole
}

func (a Actor) IsStudent() bool {
	return a.Role == domain.UserRoleStudent
}

func (a Actor) IsAlumni() bool {
	return a.Role == domain.UserRoleAlumni
}
