package service

import (
	"context"

	"mentorhub-backend/internal/domain"
	"mentorhub-backend/internal/security"
)

type AuthService interface {
	Signup(ctx context.Context, email, password, name string, role domain.UserRole, branch string, gradYear int32) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	UpdateProfile(ctx context.Context, actor security.Actor, name, branch string, gradYear int32) (*domain.User, error)
}

type MentorshipService interface {
	CreateRequest(ctx context.Context, actor security.Actor, alumniID int32, requestType, message string) (*domain.MentorshipRequest, error)
	AcceptRequest(ctx context.Context, actor security.Actor, requestID int32, responseMessage, meetingLink, meetingDate, meetingTime string) (*domain.MentorshipRequest, error)
	RejectRequest(ctx context.Context, actor security.Actor, requestID int32, rejectionReason string) (*domain.MentorshipRequest, error)
	ArchiveRequest(ctx context.Context, actor security.Actor, requestID int32) (*domain.MentorshipRequest, error)
	GetRequest(ctx context.Context, actor security.Actor, requestID int32) (*domain.MentorshipRequest, error)
	ListByAlumni(ctx context.Context, actor security.Actor, status string, page, pageSize int32) ([]domain.MentorshipRequest, int32, error)
	ListByStudent(ctx context.Context, actor security.Actor, status string, page, pageSize int32) ([]domain.MentorshipRequest, int32, error)
	AlumniStats(ctx context.Context, actor security.Actor) (*domain.RequestStats, error)
}

type LeaderboardService interface {
	// GetLeaderboard returns the top-limit ranked entries with full
	// contribution breakdowns, serving from cache when fresh.
	GetLeaderboard(ctx context.Context, limit int32) ([]domain.LeaderboardEntry, error)
	// GetUserContributions returns one user's breakdown, points and tier
	// without computing the full board. Rank is positional and only
	// assigned on the ranked board, so it is left zero here.
	GetUserContributions(ctx context.Context, userID int32) (*domain.LeaderboardEntry, error)
	// RebuildLeaderboard recomputes the full ranking from the activity
	// tables and refreshes the cache.
	RebuildLeaderboard(ctx context.Context) error
}

type NotificationService interface {
	GetNotifications(ctx context.Context, actor security.Actor, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, actor security.Actor, notificationID int32) error
}

type EmailService interface {
	SendRequestReceivedNotification(ctx context.Context, alumniEmail, alumniName, studentName, requestType string) error
	SendRequestAcceptedNotification(ctx context.Context, studentEmail, studentName, alumniName, responseMessage, meetingLink string) error
	SendRequestRejectedNotification(ctx context.Context, studentEmail, studentName, alumniName, reason string) error
}
