package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    email VARCHAR(255) NOT NULL UNIQUE,
    password_hash VARCHAR(255) NOT NULL,
    name VARCHAR(100) NOT NULL,
    role VARCHAR(20) NOT NULL,
    branch VARCHAR(100) NOT NULL DEFAULT '',
    graduation_year INTEGER NOT NULL DEFAULT 0,
    created_on TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
    updated_on TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),

    CONSTRAINT valid_role CHECK (role IN ('STUDENT', 'ALUMNI'))
);

CREATE TABLE IF NOT EXISTS mentorship_requests (
    id SERIAL PRIMARY KEY,
    student_id INTEGER NOT NULL REFERENCES users(id),
    alumni_id INTEGER NOT NULL REFERENCES users(id),
    request_type VARCHAR(50) NOT NULL DEFAULT '',
    message TEXT NOT NULL,
    status VARCHAR(20) NOT NULL DEFAULT 'PENDING',
    response_message TEXT NOT NULL DEFAULT '',
    meeting_link VARCHAR(500) NOT NULL DEFAULT '',
    meeting_date VARCHAR(20) NOT NULL DEFAULT '',
    meeting_time VARCHAR(20) NOT NULL DEFAULT '',
    rejection_reason TEXT NOT NULL DEFAULT '',
    created_on TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
    updated_on TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),

    CONSTRAINT valid_status CHECK (status IN ('PENDING', 'ACCEPTED', 'REJECTED', 'ARCHIVED')),
    CONSTRAINT distinct_parties CHECK (student_id <> alumni_id)
);

-- At most one PENDING request per (student, alumni) pair. Concurrent
-- creators race on this index; the loser gets a unique violation which
-- the repository maps to ErrDuplicateRequest.
CREATE UNIQUE INDEX IF NOT EXISTS uniq_pending_request_per_pair
    ON mentorship_requests(student_id, alumni_id) WHERE status = 'PENDING';

CREATE INDEX IF NOT EXISTS idx_requests_alumni_status ON mentorship_requests(alumni_id, status);
CREATE INDEX IF NOT EXISTS idx_requests_student_status ON mentorship_requests(student_id, status);

CREATE TABLE IF NOT EXISTS mentorship_sessions (
    id SERIAL PRIMARY KEY,
    request_id INTEGER NOT NULL REFERENCES mentorship_requests(id),
    alumni_id INTEGER NOT NULL REFERENCES users(id),
    student_id INTEGER NOT NULL REFERENCES users(id),
    status VARCHAR(20) NOT NULL DEFAULT 'SCHEDULED',
    completed_on TIMESTAMP WITH TIME ZONE,
    created_on TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),

    CONSTRAINT valid_session_status CHECK (status IN ('SCHEDULED', 'COMPLETED', 'CANCELLED'))
);

CREATE INDEX IF NOT EXISTS idx_sessions_alumni_status ON mentorship_sessions(alumni_id, status);

CREATE TABLE IF NOT EXISTS interview_experiences (
    id SERIAL PRIMARY KEY,
    author_id INTEGER NOT NULL REFERENCES users(id),
    company VARCHAR(200) NOT NULL DEFAULT '',
    created_on TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_experiences_author ON interview_experiences(author_id);

CREATE TABLE IF NOT EXISTS resources (
    id SERIAL PRIMARY KEY,
    uploader_id INTEGER NOT NULL REFERENCES users(id),
    title VARCHAR(200) NOT NULL DEFAULT '',
    is_published BOOLEAN NOT NULL DEFAULT FALSE,
    created_on TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_resources_uploader ON resources(uploader_id) WHERE is_published;

CREATE TABLE IF NOT EXISTS mock_interviews (
    id SERIAL PRIMARY KEY,
    interviewer_id INTEGER NOT NULL REFERENCES users(id),
    status VARCHAR(20) NOT NULL DEFAULT 'SCHEDULED',
    created_on TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),

    CONSTRAINT valid_mock_status CHECK (status IN ('SCHEDULED', 'COMPLETED', 'CANCELLED'))
);

CREATE INDEX IF NOT EXISTS idx_mock_interviews_interviewer ON mock_interviews(interviewer_id, status);

CREATE TABLE IF NOT EXISTS notifications (
    id SERIAL PRIMARY KEY,
    user_id INTEGER NOT NULL REFERENCES users(id),
    title VARCHAR(200) NOT NULL,
    message TEXT NOT NULL,
    is_read BOOLEAN NOT NULL DEFAULT FALSE,
    attributes JSONB NOT NULL DEFAULT '{}'::jsonb,
    created_on TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications(user_id, created_on DESC);
`

// Migrate creates the schema if it does not exist yet. Idempotent.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
