package repository

import (
	"context"

	"mentorhub-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type MentorshipRequestRepository interface {
	// Create inserts a new PENDING request. Returns
	// domain.ErrDuplicateRequest when a pending request already exists for
	// the same (student, alumni) pair; the uniqueness invariant is enforced
	// by the database so concurrent creators race safely.
	Create(ctx context.Context, req *domain.MentorshipRequest) error
	GetByID(ctx context.Context, id int32) (*domain.MentorshipRequest, error)
	// UpdateStatus performs a guarded compare-and-set: the row is written
	// only if its current status is one of the expected source states.
	// Returns domain.ErrInvalidStateTransition when the guard fails.
	UpdateStatus(ctx context.Context, req *domain.MentorshipRequest, from ...domain.MentorshipRequestStatus) error
	ListByAlumni(ctx context.Context, alumniID int32, status string, page, pageSize int32) ([]domain.MentorshipRequest, int32, error)
	ListByStudent(ctx context.Context, studentID int32, status string, page, pageSize int32) ([]domain.MentorshipRequest, int32, error)
	CountByStatus(ctx context.Context, alumniID int32) (*domain.RequestStats, error)
}

// ActivityRepository reads per-user contribution counts from the activity
// tables. Read-only from the leaderboard's perspective; the tables are
// written by their owning subsystems.
type ActivityRepository interface {
	GetBreakdown(ctx context.Context, userID int32) (*domain.ContributionBreakdown, error)
	GetAllBreakdowns(ctx context.Context) (map[int32]domain.ContributionBreakdown, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}
