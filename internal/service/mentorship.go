package service

import (
	"context"
	"fmt"
	"strings"

	"mentorhub-backend/internal/domain"
	"mentorhub-backend/internal/logger"
	"mentorhub-backend/internal/repository"
	"mentorhub-backend/internal/security"
)

type mentorshipService struct {
	reqRepo  repository.MentorshipRequestRepository
	userRepo repository.UserRepository
	noteRepo repository.NotificationRepository
	emailSvc EmailService
	cache    LeaderboardCache
}

// NewMentorshipService wires the lifecycle service. cache may be nil;
// when present it is invalidated after an accept so the leaderboard does
// not serve a stale accepted-mentorship count for a full TTL.
func NewMentorshipService(
	reqRepo repository.MentorshipRequestRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
	cache LeaderboardCache,
) MentorshipService {
	return &mentorshipService{
		reqRepo:  reqRepo,
		userRepo: userRepo,
		noteRepo: noteRepo,
		emailSvc: emailSvc,
		cache:    cache,
	}
}

func (s *mentorshipService) CreateRequest(ctx context.Context, actor security.Actor, alumniID int32, requestType, message string) (*domain.MentorshipRequest, error) {
	if strings.TrimSpace(message) == "" {
		return nil, domain.NewValidationError("message is required")
	}
	if actor.UserID == alumniID {
		return nil, domain.NewValidationError("cannot request mentorship from yourself")
	}

	alumni, err := s.userRepo.GetByID(ctx, alumniID)
	if err != nil {
		return nil, err
	}
	if alumni.Role != domain.UserRoleAlumni {
		return nil, domain.NewValidationError("target user is not an alumni")
	}

	req := &domain.MentorshipRequest{
		StudentID:   actor.UserID,
		AlumniID:    alumniID,
		RequestType: requestType,
		Message:     message,
		Status:      domain.MentorshipStatusPending,
	}

	// The pending-pair uniqueness invariant is enforced inside Create;
	// a concurrent duplicate surfaces as ErrDuplicateRequest.
	if err := s.reqRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	// Notify alumni. Fire-and-forget: delivery failures never roll back
	// the created request.
	student, _ := s.userRepo.GetByID(ctx, actor.UserID)
	if student != nil {
		if err := s.emailSvc.SendRequestReceivedNotification(ctx, alumni.Email, alumni.Name, student.Name, requestType); err != nil {
			logger.Warn("Failed to send request email", "request_id", req.ID, "error", err)
		}

		note := &domain.Notification{
			UserID:  alumniID,
			Title:   "New Mentorship Request",
			Message: fmt.Sprintf("%s sent you a mentorship request (%s)", student.Name, requestType),
			Attributes: map[string]string{
				"type":       "MENTORSHIP_REQUEST",
				"request_id": fmt.Sprintf("%d", req.ID),
			},
		}
		if err := s.noteRepo.Create(ctx, note); err != nil {
			logger.Warn("Failed to store notification", "request_id", req.ID, "error", err)
		}
	}

	return req, nil
}

func (s *mentorshipService) AcceptRequest(ctx context.Context, actor security.Actor, requestID int32, responseMessage, meetingLink, meetingDate, meetingTime string) (*domain.MentorshipRequest, error) {
	if strings.TrimSpace(responseMessage) == "" {
		return nil, domain.NewValidationError("response message is required")
	}

	req, err := s.reqRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.AlumniID != actor.UserID {
		return nil, domain.ErrUnauthorizedTransition
	}
	if !req.CanTransitionTo(domain.MentorshipStatusAccepted) {
		// Includes the second-accept case: retries must fail loudly.
		return nil, domain.ErrInvalidStateTransition
	}

	req.Status = domain.MentorshipStatusAccepted
	req.ResponseMessage = responseMessage
	req.MeetingLink = meetingLink
	req.MeetingDate = meetingDate
	req.MeetingTime = meetingTime
	if err := s.reqRepo.UpdateStatus(ctx, req, domain.MentorshipStatusPending); err != nil {
		return nil, err
	}

	// An accept changes the alumni's accepted-mentorship count, which
	// feeds the leaderboard. Reject and archive do not move points, so
	// only this transition drops the cached board.
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			logger.Warn("Failed to invalidate leaderboard cache", "request_id", req.ID, "error", err)
		}
	}

	s.notifyStudent(ctx, req, "Mentorship Request Accepted",
		fmt.Sprintf("Your mentorship request was accepted: %s", responseMessage),
		"MENTORSHIP_ACCEPTED",
		func(student, alumni *domain.User) error {
			return s.emailSvc.SendRequestAcceptedNotification(ctx, student.Email, student.Name, alumni.Name, responseMessage, meetingLink)
		})

	return req, nil
}

func (s *mentorshipService) RejectRequest(ctx context.Context, actor security.Actor, requestID int32, rejectionReason string) (*domain.MentorshipRequest, error) {
	req, err := s.reqRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.AlumniID != actor.UserID {
		return nil, domain.ErrUnauthorizedTransition
	}
	if !req.CanTransitionTo(domain.MentorshipStatusRejected) {
		return nil, domain.ErrInvalidStateTransition
	}

	req.Status = domain.MentorshipStatusRejected
	req.RejectionReason = rejectionReason
	if err := s.reqRepo.UpdateStatus(ctx, req, domain.MentorshipStatusPending); err != nil {
		return nil, err
	}

	s.notifyStudent(ctx, req, "Mentorship Request Declined",
		"Your mentorship request was declined",
		"MENTORSHIP_REJECTED",
		func(student, alumni *domain.User) error {
			return s.emailSvc.SendRequestRejectedNotification(ctx, student.Email, student.Name, alumni.Name, rejectionReason)
		})

	return req, nil
}

func (s *mentorshipService) ArchiveRequest(ctx context.Context, actor security.Actor, requestID int32) (*domain.MentorshipRequest, error) {
	req, err := s.reqRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !req.IsParticipant(actor.UserID) {
		return nil, domain.ErrUnauthorizedTransition
	}
	if !req.CanTransitionTo(domain.MentorshipStatusArchived) {
		return nil, domain.ErrInvalidStateTransition
	}

	req.Status = domain.MentorshipStatusArchived
	if err := s.reqRepo.UpdateStatus(ctx, req,
		domain.MentorshipStatusAccepted, domain.MentorshipStatusRejected); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *mentorshipService) GetRequest(ctx context.Context, actor security.Actor, requestID int32) (*domain.MentorshipRequest, error) {
	req, err := s.reqRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !req.IsParticipant(actor.UserID) {
		return nil, domain.ErrUnauthorizedTransition
	}
	return req, nil
}

func (s *mentorshipService) ListByAlumni(ctx context.Context, actor security.Actor, status string, page, pageSize int32) ([]domain.MentorshipRequest, int32, error) {
	return s.reqRepo.ListByAlumni(ctx, actor.UserID, status, page, pageSize)
}

func (s *mentorshipService) ListByStudent(ctx context.Context, actor security.Actor, status string, page, pageSize int32) ([]domain.MentorshipRequest, int32, error) {
	return s.reqRepo.ListByStudent(ctx, actor.UserID, status, page, pageSize)
}

func (s *mentorshipService) AlumniStats(ctx context.Context, actor security.Actor) (*domain.RequestStats, error) {
	return s.reqRepo.CountByStatus(ctx, actor.UserID)
}

// notifyStudent delivers the post-transition notification to the request's
// student. Failures are logged and dropped.
func (s *mentorshipService) notifyStudent(ctx context.Context, req *domain.MentorshipRequest, title, message, noteType string, sendEmail func(student, alumni *domain.User) error) {
	student, _ := s.userRepo.GetByID(ctx, req.StudentID)
	alumni, _ := s.userRepo.GetByID(ctx, req.AlumniID)
	if student == nil || alumni == nil {
		return
	}

	if err := sendEmail(student, alumni); err != nil {
		logger.Warn("Failed to send transition email", "request_id", req.ID, "error", err)
	}

	note := &domain.Notification{
		UserID:  req.StudentID,
		Title:   title,
		Message: message,
		Attributes: map[string]string{
			"type":       noteType,
			"request_id": fmt.Sprintf("%d", req.ID),
		},
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.Warn("Failed to store notification", "request_id", req.ID, "error", err)
	}
}
