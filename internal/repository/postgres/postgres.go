package postgres

import (
	"database/sql"

	"mentorhub-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.MentorshipRequestRepository
	repository.ActivityRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                          db,
		UserRepository:              NewUserRepository(db),
		MentorshipRequestRepository: NewMentorshipRequestRepository(db),
		ActivityRepository:          NewActivityRepository(db),
		NotificationRepository:      NewNotificationRepository(db),
	}
}
