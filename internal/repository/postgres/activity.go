package postgres

import (
	"context"
	"database/sql"

	"mentorhub-backend/internal/domain"
	"mentorhub-backend/internal/repository"
)

type activityRepository struct {
	db *sql.DB
}

func NewActivityRepository(db *sql.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

// GetBreakdown aggregates one user's activity counts. The queries only
// count terminal activity (accepted requests, completed sessions,
// published resources), so in-flight records never contribute points.
func (r *activityRepository) GetBreakdown(ctx context.Context, userID int32) (*domain.ContributionBreakdown, error) {
	b := &domain.ContributionBreakdown{}
	query := `
		SELECT
			(SELECT COUNT(*) FROM mentorship_requests WHERE alumni_id = $1 AND status IN ('ACCEPTED', 'ARCHIVED')),
			(SELECT COUNT(*) FROM mentorship_sessions WHERE alumni_id = $1 AND status = 'COMPLETED'),
			(SELECT COUNT(*) FROM interview_experiences WHERE author_id = $1),
			(SELECT COUNT(*) FROM resources WHERE uploader_id = $1 AND is_published),
			(SELECT COUNT(*) FROM mock_interviews WHERE interviewer_id = $1 AND status = 'COMPLETED')`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&b.AcceptedMentorships, &b.MentorshipSessions, &b.InterviewExperiences,
		&b.ResourcesShared, &b.MockInterviews)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// GetAllBreakdowns aggregates counts for every user in one pass. Archived
// requests still count as accepted mentorships: archival hides a request
// from inboxes but does not take back the contribution.
func (r *activityRepository) GetAllBreakdowns(ctx context.Context) (map[int32]domain.ContributionBreakdown, error) {
	breakdowns := make(map[int32]domain.ContributionBreakdown)

	collect := func(query string, assign func(b *domain.ContributionBreakdown, count int32)) error {
		rows, err := r.db.QueryContext(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var userID, count int32
			if err := rows.Scan(&userID, &count); err != nil {
				return err
			}
			b := breakdowns[userID]
			assign(&b, count)
			breakdowns[userID] = b
		}
		return rows.Err()
	}

	steps := []struct {
		query  string
		assign func(b *domain.ContributionBreakdown, count int32)
	}{
		{
			`SELECT alumni_id, COUNT(*) FROM mentorship_requests WHERE status IN ('ACCEPTED', 'ARCHIVED') GROUP BY alumni_id`,
			func(b *domain.ContributionBreakdown, c int32) { b.AcceptedMentorships = c },
		},
		{
			`SELECT alumni_id, COUNT(*) FROM mentorship_sessions WHERE status = 'COMPLETED' GROUP BY alumni_id`,
			func(b *domain.ContributionBreakdown, c int32) { b.MentorshipSessions = c },
		},
		{
			`SELECT author_id, COUNT(*) FROM interview_experiences GROUP BY author_id`,
			func(b *domain.ContributionBreakdown, c int32) { b.InterviewExperiences = c },
		},
		{
			`SELECT uploader_id, COUNT(*) FROM resources WHERE is_published GROUP BY uploader_id`,
			func(b *domain.ContributionBreakdown, c int32) { b.ResourcesShared = c },
		},
		{
			`SELECT interviewer_id, COUNT(*) FROM mock_interviews WHERE status = 'COMPLETED' GROUP BY interviewer_id`,
			func(b *domain.ContributionBreakdown, c int32) { b.MockInterviews = c },
		},
	}

	for _, step := range steps {
		if err := collect(step.query, step.assign); err != nil {
			return nil, err
		}
	}
	return breakdowns, nil
}
