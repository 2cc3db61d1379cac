package postgres_test

import (
	"context"
	"testing"
	"time"

	"mentorhub-backend/internal/domain"
	"mentorhub-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestMentorshipRequestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewMentorshipRequestRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		req := &domain.MentorshipRequest{
			StudentID:   3,
			AlumniID:    7,
			RequestType: "CAREER_GUIDANCE",
			Message:     "Could you help me prepare for backend interviews?",
			Status:      domain.MentorshipStatusPending,
		}

		mock.ExpectQuery("INSERT INTO mentorship_requests").
			WithArgs(req.StudentID, req.AlumniID, req.RequestType, req.Message, req.Status, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

		err := repo.Create(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, int32(42), req.ID)
		assert.False(t, req.CreatedOn.IsZero())
	})

	t.Run("Duplicate Pending Pair", func(t *testing.T) {
		req := &domain.MentorshipRequest{
			StudentID:   3,
			AlumniID:    7,
			RequestType: "CAREER_GUIDANCE",
			Message:     "Sending this again by accident",
			Status:      domain.MentorshipStatusPending,
		}

		mock.ExpectQuery("INSERT INTO mentorship_requests").
			WithArgs(req.StudentID, req.AlumniID, req.RequestType, req.Message, req.Status, sqlmock.AnyArg()).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "uniq_pending_request_per_pair"})

		err := repo.Create(ctx, req)
		assert.ErrorIs(t, err, domain.ErrDuplicateRequest)
	})
}

func TestMentorshipRequestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewMentorshipRequestRepository(db)
	ctx := context.Background()

	columns := []string{"id", "student_id", "alumni_id", "request_type", "message", "status",
		"response_message", "meeting_link", "meeting_date", "meeting_time", "rejection_reason",
		"created_on", "updated_on"}

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(columns).
			AddRow(1, 3, 7, "CAREER_GUIDANCE", "Hi!", "PENDING", "", "", "", "", "", time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM mentorship_requests WHERE id = \\$1").
			WithArgs(int32(1)).
			WillReturnRows(rows)

		req, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.NotNil(t, req)
		assert.Equal(t, int32(1), req.ID)
		assert.Equal(t, domain.MentorshipStatusPending, req.Status)
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM mentorship_requests WHERE id = \\$1").
			WithArgs(int32(404)).
			WillReturnRows(sqlmock.NewRows(columns))

		req, err := repo.GetByID(ctx, 404)
		assert.Nil(t, req)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestMentorshipRequestRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewMentorshipRequestRepository(db)
	ctx := context.Background()

	req := &domain.MentorshipRequest{
		ID:              1,
		StudentID:       3,
		AlumniID:        7,
		Status:          domain.MentorshipStatusAccepted,
		ResponseMessage: "Happy to help, Tuesday 5pm works",
		MeetingLink:     "https://meet.example.com/abc",
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE mentorship_requests").
			WithArgs(req.Status, req.ResponseMessage, req.MeetingLink, req.MeetingDate,
				req.MeetingTime, req.RejectionReason, req.ID, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(ctx, req, domain.MentorshipStatusPending)
		assert.NoError(t, err)
	})

	t.Run("Guard Fails When Status Moved", func(t *testing.T) {
		// A concurrent accept already flipped the row out of PENDING: the
		// guarded update matches nothing and the caller sees the conflict.
		mock.ExpectExec("UPDATE mentorship_requests").
			WithArgs(req.Status, req.ResponseMessage, req.MeetingLink, req.MeetingDate,
				req.MeetingTime, req.RejectionReason, req.ID, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(ctx, req, domain.MentorshipStatusPending)
		assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
	})
}

func TestMentorshipRequestRepository_ListByAlumni(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewMentorshipRequestRepository(db)
	ctx := context.Background()

	columns := []string{"id", "student_id", "alumni_id", "request_type", "message", "status",
		"response_message", "meeting_link", "meeting_date", "meeting_time", "rejection_reason",
		"created_on", "updated_on"}

	t.Run("Filtered By Status", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM mentorship_requests").
			WithArgs(int32(7), "PENDING").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		mock.ExpectQuery("SELECT (.+) FROM mentorship_requests WHERE alumni_id = \\$1 AND status = \\$2").
			WithArgs(int32(7), "PENDING").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(2, 4, 7, "RESUME_REVIEW", "Hello", "PENDING", "", "", "", "", "", time.Now(), time.Now()).
				AddRow(1, 3, 7, "CAREER_GUIDANCE", "Hi!", "PENDING", "", "", "", "", "", time.Now(), time.Now()))

		reqs, total, err := repo.ListByAlumni(ctx, 7, "PENDING", 1, 20)
		assert.NoError(t, err)
		assert.Equal(t, int32(2), total)
		assert.Len(t, reqs, 2)
		assert.Equal(t, int32(2), reqs[0].ID)
	})

	t.Run("Empty", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM mentorship_requests").
			WithArgs(int32(9)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		mock.ExpectQuery("SELECT (.+) FROM mentorship_requests WHERE alumni_id = \\$1").
			WithArgs(int32(9)).
			WillReturnRows(sqlmock.NewRows(columns))

		reqs, total, err := repo.ListByAlumni(ctx, 9, "", 1, 20)
		assert.NoError(t, err)
		assert.Equal(t, int32(0), total)
		assert.Empty(t, reqs)
	})
}

func TestMentorshipRequestRepository_CountByStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewMentorshipRequestRepository(db)
	ctx := context.Background()

	t.Run("Aggregates All Statuses", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"status", "count"}).
			AddRow("PENDING", 3).
			AddRow("ACCEPTED", 5).
			AddRow("REJECTED", 1).
			AddRow("ARCHIVED", 2)

		mock.ExpectQuery("SELECT status, COUNT\\(\\*\\) FROM mentorship_requests WHERE alumni_id = \\$1 GROUP BY status").
			WithArgs(int32(7)).
			WillReturnRows(rows)

		stats, err := repo.CountByStatus(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, int32(3), stats.Pending)
		assert.Equal(t, int32(5), stats.Accepted)
		assert.Equal(t, int32(1), stats.Rejected)
		assert.Equal(t, int32(2), stats.Archived)
		assert.Equal(t, int32(11), stats.Total)
	})
}
