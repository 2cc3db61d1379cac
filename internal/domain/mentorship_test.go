package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMentorshipRequest_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from    MentorshipRequestStatus
		to      MentorshipRequestStatus
		allowed bool
	}{
		{MentorshipStatusPending, MentorshipStatusAccepted, true},
		{MentorshipStatusPending, MentorshipStatusRejected, true},
		{MentorshipStatusPending, MentorshipStatusArchived, false},
		{MentorshipStatusAccepted, MentorshipStatusArchived, true},
		{MentorshipStatusRejected, MentorshipStatusArchived, true},
		{MentorshipStatusAccepted, MentorshipStatusRejected, false},
		{MentorshipStatusRejected, MentorshipStatusAccepted, false},
		{MentorshipStatusArchived, MentorshipStatusArchived, false},
		{MentorshipStatusArchived, MentorshipStatusPending, false},
		{MentorshipStatusAccepted, MentorshipStatusPending, false},
	}

	for _, tc := range cases {
		req := &MentorshipRequest{Status: tc.from}
		assert.Equalf(t, tc.allowed, req.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestMentorshipRequest_IsParticipant(t *testing.T) {
	req := &MentorshipRequest{StudentID: 3, AlumniID: 7}

	assert.True(t, req.IsParticipant(3))
	assert.True(t, req.IsParticipant(7))
	assert.False(t, req.IsParticipant(9))
}
