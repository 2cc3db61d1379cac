package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"mentorhub-backend/internal/config"
	"mentorhub-backend/internal/domain"
	"mentorhub-backend/internal/logger"
	"mentorhub-backend/internal/repository"
)

// LeaderboardCache is the cached-view collaborator. ErrCacheMiss-style
// failures are recoverable: the service recomputes and repopulates.
type LeaderboardCache interface {
	Get(ctx context.Context) ([]domain.LeaderboardEntry, error)
	Set(ctx context.Context, entries []domain.LeaderboardEntry) error
	Invalidate(ctx context.Context) error
}

type leaderboardService struct {
	activityRepo repository.ActivityRepository
	userRepo     repository.UserRepository
	cache        LeaderboardCache
	cfg          config.LeaderboardConfig
}

func NewLeaderboardService(
	activityRepo repository.ActivityRepository,
	userRepo repository.UserRepository,
	cache LeaderboardCache,
	cfg config.LeaderboardConfig,
) LeaderboardService {
	return &leaderboardService{
		activityRepo: activityRepo,
		userRepo:     userRepo,
		cache:        cache,
		cfg:          cfg,
	}
}

func (s *leaderboardService) GetLeaderboard(ctx context.Context, limit int32) ([]domain.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	if s.cache != nil {
		if entries, err := s.cache.Get(ctx); err == nil {
			return top(entries, limit), nil
		}
	}

	entries, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, entries); err != nil {
			logger.Warn("Failed to cache leaderboard", "error", err)
		}
	}
	return top(entries, limit), nil
}

func (s *leaderboardService) GetUserContributions(ctx context.Context, userID int32) (*domain.LeaderboardEntry, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	b, err := s.activityRepo.GetBreakdown(ctx, userID)
	if err != nil {
		return nil, err
	}

	points := s.cfg.Weights.Points(*b)
	return &domain.LeaderboardEntry{
		UserID:        user.ID,
		Profile:       user.Profile(),
		Contributions: *b,
		Points:        points,
		Level:         s.tierFor(points),
	}, nil
}

func (s *leaderboardService) RebuildLeaderboard(ctx context.Context) error {
	entries, err := s.compute(ctx)
	if err != nil {
		return fmt.Errorf("failed to rebuild leaderboard: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, entries); err != nil {
			return fmt.Errorf("failed to cache leaderboard: %w", err)
		}
	}
	logger.Info("Leaderboard rebuilt", "entries", len(entries))
	return nil
}

// compute produces the full deterministic ranking: weighted points per
// user, sorted by points descending with ties broken by earliest account
// creation then user id, 1-based ranks, tier labels from the configured
// thresholds.
func (s *leaderboardService) compute(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	breakdowns, err := s.activityRepo.GetAllBreakdowns(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.LeaderboardEntry, 0, len(users))
	createdOn := make(map[int32]time.Time, len(users))
	for i := range users {
		u := &users[i]
		b := breakdowns[u.ID]
		// Unparseable timestamps collapse to the zero time and fall
		// through to the user-id tie-break.
		ts, _ := time.Parse(time.RFC3339Nano, u.CreatedOn)
		createdOn[u.ID] = ts
		entries = append(entries, domain.LeaderboardEntry{
			UserID:        u.ID,
			Profile:       u.Profile(),
			Contributions: b,
			Points:        s.cfg.Weights.Points(b),
			Level:         s.tierFor(s.cfg.Weights.Points(b)),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		// Equal points: earlier account first, then smaller id. Ties must
		// resolve to the same relative order across repeated computations.
		ci, cj := createdOn[entries[i].UserID], createdOn[entries[j].UserID]
		if !ci.Equal(cj) {
			return ci.Before(cj)
		}
		return entries[i].UserID < entries[j].UserID
	})

	for i := range entries {
		entries[i].Rank = int32(i + 1)
	}
	return entries, nil
}

// tierFor maps points onto the highest tier whose threshold is met. The
// configured thresholds are strictly increasing, so the label is a
// monotonic step function of points. Points below the lowest configured
// threshold still get the lowest tier's name, never an empty label.
func (s *leaderboardService) tierFor(points int32) string {
	if len(s.cfg.Tiers) == 0 {
		return ""
	}
	level := s.cfg.Tiers[0].Name
	for _, tier := range s.cfg.Tiers[1:] {
		if points >= tier.MinPoints {
			level = tier.Name
		}
	}
	return level
}

func top(entries []domain.LeaderboardEntry, limit int32) []domain.LeaderboardEntry {
	if int(limit) >= len(entries) {
		return entries
	}
	return entries[:limit]
}
