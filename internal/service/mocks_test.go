package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mentorhub-backend/internal/domain"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockMentorshipRequestRepo
type MockMentorshipRequestRepo struct {
	mock.Mock
}

func (m *MockMentorshipRequestRepo) Create(ctx context.Context, req *domain.MentorshipRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockMentorshipRequestRepo) GetByID(ctx context.Context, id int32) (*domain.MentorshipRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MentorshipRequest), args.Error(1)
}
func (m *MockMentorshipRequestRepo) UpdateStatus(ctx context.Context, req *domain.MentorshipRequest, from ...domain.MentorshipRequestStatus) error {
	args := m.Called(ctx, req, from)
	return args.Error(0)
}
func (m *MockMentorshipRequestRepo) ListByAlumni(ctx context.Context, alumniID int32, status string, page, pageSize int32) ([]domain.MentorshipRequest, int32, error) {
	args := m.Called(ctx, alumniID, status, page, pageSize)
	return args.Get(0).([]domain.MentorshipRequest), args.Get(1).(int32), args.Error(2)
}
func (m *MockMentorshipRequestRepo) ListByStudent(ctx context.Context, studentID int32, status string, page, pageSize int32) ([]domain.MentorshipRequest, int32, error) {
	args := m.Called(ctx, studentID, status, page, pageSize)
	return args.Get(0).([]domain.MentorshipRequest), args.Get(1).(int32), args.Error(2)
}
func (m *MockMentorshipRequestRepo) CountByStatus(ctx context.Context, alumniID int32) (*domain.RequestStats, error) {
	args := m.Called(ctx, alumniID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RequestStats), args.Error(1)
}

// MockActivityRepo
type MockActivityRepo struct {
	mock.Mock
}

func (m *MockActivityRepo) GetBreakdown(ctx context.Context, userID int32) (*domain.ContributionBreakdown, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContributionBreakdown), args.Error(1)
}
func (m *MockActivityRepo) GetAllBreakdowns(ctx context.Context) (map[int32]domain.ContributionBreakdown, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int32]domain.ContributionBreakdown), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRequestReceivedNotification(ctx context.Context, alumniEmail, alumniName, studentName, requestType string) error {
	args := m.Called(ctx, alumniEmail, alumniName, studentName, requestType)
	return args.Error(0)
}
func (m *MockEmailService) SendRequestAcceptedNotification(ctx context.Context, studentEmail, studentName, alumniName, responseMessage, meetingLink string) error {
	args := m.Called(ctx, studentEmail, studentName, alumniName, responseMessage, meetingLink)
	return args.Error(0)
}
func (m *MockEmailService) SendRequestRejectedNotification(ctx context.Context, studentEmail, studentName, alumniName, reason string) error {
	args := m.Called(ctx, studentEmail, studentName, alumniName, reason)
	return args.Error(0)
}

// MockLeaderboardCache
type MockLeaderboardCache struct {
	mock.Mock
}

func (m *MockLeaderboardCache) Get(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}
func (m *MockLeaderboardCache) Set(ctx context.Context, entries []domain.LeaderboardEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}
func (m *MockLeaderboardCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
