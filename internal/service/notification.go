package service

import (
	"context"

	"mentorhub-backend/internal/domain"
	"mentorhub-backend/internal/repository"
	"mentorhub-backend/internal/security"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

func (s *notificationService) GetNotifications(ctx context.Context, actor security.Actor, page, pageSize int32) ([]domain.Notification, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return s.noteRepo.List(ctx, actor.UserID, pageSize, (page-1)*pageSize)
}

func (s *notificationService) MarkAsRead(ctx context.Context, actor security.Actor, notificationID int32) error {
	return s.noteRepo.MarkAsRead(ctx, notificationID, actor.UserID)
}
