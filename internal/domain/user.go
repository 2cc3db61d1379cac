package domain

type UserRole string

const (
	UserRoleStudent UserRole = "STUDENT"
	UserRoleAlumni  UserRole = "ALUMNI"
)

type User struct {
	ID             int32    `json:"id"`
	Email          string   `json:"email"`
	PasswordHash   string   `json:"-"`
	Name           string   `json:"name"`
	Role           UserRole `json:"role"`
	Branch         string   `json:"branch"`
	GraduationYear int32    `json:"graduation_year"`
	CreatedOn      string   `json:"created_on"`
	UpdatedOn      string   `json:"updated_on"`
}

// Profile is the display shape merged into leaderboard and request views.
// One explicit shape per role; the core never falls back across fields.
type Profile struct {
	UserID         int32    `json:"user_id"`
	Name           string   `json:"name"`
	Role           UserRole `json:"role"`
	Branch         string   `json:"branch"`
	GraduationYear int32    `json:"graduation_year,omitempty"`
}

func (u *User) Profile() Profile {
	return Profile{
		UserID:         u.ID,
		Name:           u.Name,
		Role:           u.Role,
		Branch:         u.Branch,
		GraduationYear: u.GraduationYear,
	}
}
