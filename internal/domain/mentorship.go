package domain

import "time"

type MentorshipRequestStatus string

const (
	MentorshipStatusPending  MentorshipRequestStatus = "PENDING"
	MentorshipStatusAccepted MentorshipRequestStatus = "ACCEPTED"
	MentorshipStatusRejected MentorshipRequestStatus = "REJECTED"
	MentorshipStatusArchived MentorshipRequestStatus = "ARCHIVED"
)

// MentorshipRequest is a single solicitation from a student to an alumnus.
// At most one PENDING request may exist for a (student, alumni) pair;
// historical accepted/rejected/archived requests between the same pair are
// allowed. Requests are never deleted, only archived.
type MentorshipRequest struct {
	ID              int32                   `json:"id"`
	StudentID       int32                   `json:"student_id"`
	AlumniID        int32                   `json:"alumni_id"`
	RequestType     string                  `json:"request_type"`
	Message         string                  `json:"message"`
	Status          MentorshipRequestStatus `json:"status"`
	ResponseMessage string                  `json:"response_message,omitempty"`
	MeetingLink     string                  `json:"meeting_link,omitempty"`
	MeetingDate     string                  `json:"meeting_date,omitempty"`
	MeetingTime     string                  `json:"meeting_time,omitempty"`
	RejectionReason string                  `json:"rejection_reason,omitempty"`
	CreatedOn       time.Time               `json:"created_on"`
	UpdatedOn       time.Time               `json:"updated_on"`
}

// CanTransitionTo reports whether the lifecycle permits moving from the
// request's current status to the target status:
//
//	PENDING  -> ACCEPTED | REJECTED
//	ACCEPTED -> ARCHIVED
//	REJECTED -> ARCHIVED
//
// ARCHIVED is terminal and no transition re-enters PENDING.
func (r *MentorshipRequest) CanTransitionTo(target MentorshipRequestStatus) bool {
	switch target {
	case MentorshipStatusAccepted, MentorshipStatusRejected:
		return r.Status == MentorshipStatusPending
	case MentorshipStatusArchived:
		return r.Status == MentorshipStatusAccepted || r.Status == MentorshipStatusRejected
	default:
		return false
	}
}

// IsParticipant reports whether the user is either side of the request.
func (r *MentorshipRequest) IsParticipant(userID int32) bool {
	return r.StudentID == userID || r.AlumniID == userID
}

// RequestStats holds per-status counts for one alumni's inbox.
type RequestStats struct {
	Pending  int32 `json:"pending"`
	Accepted int32 `json:"accepted"`
	Rejected int32 `json:"rejected"`
	Archived int32 `json:"archived"`
	Total    int32 `json:"total"`
}
