package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"mentorhub-backend/internal/domain"
	"mentorhub-backend/internal/repository"
)

const uniqueViolation = "23505"

type mentorshipRequestRepository struct {
	db *sql.DB
}

func NewMentorshipRequestRepository(db *sql.DB) repository.MentorshipRequestRepository {
	return &mentorshipRequestRepository{db: db}
}

const requestColumns = `id, student_id, alumni_id, request_type, message, status,
	response_message, meeting_link, meeting_date, meeting_time, rejection_reason,
	created_on, updated_on`

func scanRequest(row interface{ Scan(...any) error }, req *domain.MentorshipRequest) error {
	return row.Scan(&req.ID, &req.StudentID, &req.AlumniID, &req.RequestType, &req.Message,
		&req.Status, &req.ResponseMessage, &req.MeetingLink, &req.MeetingDate, &req.MeetingTime,
		&req.RejectionReason, &req.CreatedOn, &req.UpdatedOn)
}

func (r *mentorshipRequestRepository) Create(ctx context.Context, req *domain.MentorshipRequest) error {
	now := time.Now().UTC()
	query := `INSERT INTO mentorship_requests
	          (student_id, alumni_id, request_type, message, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $6) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		req.StudentID, req.AlumniID, req.RequestType, req.Message, req.Status, now).Scan(&req.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			// Lost the race on uniq_pending_request_per_pair.
			return domain.ErrDuplicateRequest
		}
		return fmt.Errorf("failed to create mentorship request: %w", err)
	}
	req.CreatedOn = now
	req.UpdatedOn = now
	return nil
}

func (r *mentorshipRequestRepository) GetByID(ctx context.Context, id int32) (*domain.MentorshipRequest, error) {
	req := &domain.MentorshipRequest{}
	query := `SELECT ` + requestColumns + ` FROM mentorship_requests WHERE id = $1`
	err := scanRequest(r.db.QueryRowContext(ctx, query, id), req)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

// UpdateStatus writes the full mutable field set behind a status guard.
// The WHERE clause only matches rows still in one of the expected source
// states, so of two concurrent accept attempts exactly one wins and the
// other observes ErrInvalidStateTransition.
func (r *mentorshipRequestRepository) UpdateStatus(ctx context.Context, req *domain.MentorshipRequest, from ...domain.MentorshipRequestStatus) error {
	expected := make([]string, len(from))
	for i, s := range from {
		expected[i] = string(s)
	}

	query := `UPDATE mentorship_requests
	          SET status = $1, response_message = $2, meeting_link = $3, meeting_date = $4,
	              meeting_time = $5, rejection_reason = $6, updated_on = NOW()
	          WHERE id = $7 AND status = ANY($8)`
	res, err := r.db.ExecContext(ctx, query,
		req.Status, req.ResponseMessage, req.MeetingLink, req.MeetingDate,
		req.MeetingTime, req.RejectionReason, req.ID, pq.Array(expected))
	if err != nil {
		return fmt.Errorf("failed to update mentorship request %d: %w", req.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrInvalidStateTransition
	}
	return nil
}

func (r *mentorshipRequestRepository) ListByAlumni(ctx context.Context, alumniID int32, status string, page, pageSize int32) ([]domain.MentorshipRequest, int32, error) {
	return r.list(ctx, "alumni_id", alumniID, status, page, pageSize)
}

func (r *mentorshipRequestRepository) ListByStudent(ctx context.Context, studentID int32, status string, page, pageSize int32) ([]domain.MentorshipRequest, int32, error) {
	return r.list(ctx, "student_id", studentID, status, page, pageSize)
}

func (r *mentorshipRequestRepository) list(ctx context.Context, column string, userID int32, status string, page, pageSize int32) ([]domain.MentorshipRequest, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	where := fmt.Sprintf("%s = $1", column)
	args := []any{userID}
	if status != "" {
		where += " AND status = $2"
		args = append(args, status)
	}

	var total int32
	countQuery := `SELECT COUNT(*) FROM mentorship_requests WHERE ` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM mentorship_requests WHERE %s
	          ORDER BY created_on DESC LIMIT %d OFFSET %d`, requestColumns, where, pageSize, offset)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var reqs []domain.MentorshipRequest
	for rows.Next() {
		var req domain.MentorshipRequest
		if err := scanRequest(rows, &req); err != nil {
			return nil, 0, err
		}
		reqs = append(reqs, req)
	}
	return reqs, total, rows.Err()
}

func (r *mentorshipRequestRepository) CountByStatus(ctx context.Context, alumniID int32) (*domain.RequestStats, error) {
	query := `SELECT status, COUNT(*) FROM mentorship_requests WHERE alumni_id = $1 GROUP BY status`
	rows, err := r.db.QueryContext(ctx, query, alumniID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := &domain.RequestStats{}
	for rows.Next() {
		var status string
		var count int32
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		switch domain.MentorshipRequestStatus(status) {
		case domain.MentorshipStatusPending:
			stats.Pending = count
		case domain.MentorshipStatusAccepted:
			stats.Accepted = count
		case domain.MentorshipStatusRejected:
			stats.Rejected = count
		case domain.MentorshipStatusArchived:
			stats.Archived = count
		}
		stats.Total += count
	}
	return stats, rows.Err()
}
