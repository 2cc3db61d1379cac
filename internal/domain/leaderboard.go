package domain

// ContributionBreakdown holds the raw per-user activity counts the
// leaderboard is derived from. All counts are non-negative.
type ContributionBreakdown struct {
	AcceptedMentorships  int32 `json:"accepted_mentorships"`
	MentorshipSessions   int32 `json:"mentorship_sessions"`
	InterviewExperiences int32 `json:"interview_experiences"`
	ResourcesShared      int32 `json:"resources_shared"`
	MockInterviews       int32 `json:"mock_interviews"`
}

// ContributionWeights is the fixed per-activity point table. It is
// configuration, not code, so the policy can be revised without touching
// the ranking algorithm.
type ContributionWeights struct {
	AcceptedMentorship  int32 `yaml:"accepted_mentorship"`
	MentorshipSession   int32 `yaml:"mentorship_session"`
	InterviewExperience int32 `yaml:"interview_experience"`
	ResourceShared      int32 `yaml:"resource_shared"`
	MockInterview       int32 `yaml:"mock_interview"`
}

// Points computes the weighted total for a breakdown. Pure function:
// given the same breakdown and weights it always yields the same value,
// so points are recomputable from the activity log for auditing.
func (w ContributionWeights) Points(b ContributionBreakdown) int32 {
	return b.AcceptedMentorships*w.AcceptedMentorship +
		b.MentorshipSessions*w.MentorshipSession +
		b.InterviewExperiences*w.InterviewExperience +
		b.ResourcesShared*w.ResourceShared +
		b.MockInterviews*w.MockInterview
}

// Tier is a named band of point ranges.
type Tier struct {
	Name      string `yaml:"name"`
	MinPoints int32  `yaml:"min_points"`
}

// LeaderboardEntry is the derived points/rank/tier view for one user.
// Entries are never hand-edited; rank is a pure function of the full
// point set at computation time and is only cached for display.
type LeaderboardEntry struct {
	UserID        int32                 `json:"user_id"`
	Profile       Profile               `json:"profile"`
	Contributions ContributionBreakdown `json:"contributions"`
	Points        int32                 `json:"points"`
	Rank          int32                 `json:"rank"`
	Level         string                `json:"level"`
}
