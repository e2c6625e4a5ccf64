package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/futebolao/futebolao/internal/domain/match"
	"github.com/futebolao/futebolao/internal/domain/prediction"
	"github.com/futebolao/futebolao/internal/platform/cache"
)

// RankingEntry is one leaderboard row with its dense rank resolved.
type RankingEntry struct {
	Rank        int    `json:"rank"`
	UserID      string `json:"user_id"`
	Points      int    `json:"points"`
	ExactHits   int    `json:"exact_hits"`
	Predictions int    `json:"predictions"`
}

// RankingService serves championship leaderboards from a short-lived cache.
// ScoringService invalidates entries after points change.
type RankingService struct {
	matchRepo      match.Repository
	predictionRepo prediction.Repository
	store          *cache.Store
}

func NewRankingService(matchRepo match.Repository, predictionRepo prediction.Repository, store *cache.Store) *RankingService {
	return &RankingService{
		matchRepo:      matchRepo,
		predictionRepo: predictionRepo,
		store:          store,
	}
}

func (s *RankingService) Championship(ctx context.Context, championshipID string) ([]RankingEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.Championship")
	defer span.End()

	championshipID = strings.TrimSpace(championshipID)
	if championshipID == "" {
		return nil, fmt.Errorf("%w: championship id is required", ErrInvalidInput)
	}

	if s.store == nil {
		return s.loadRanking(ctx, championshipID)
	}

	value, err := s.store.GetOrLoad(ctx, rankingCacheKey(championshipID), func(ctx context.Context) (any, error) {
		return s.loadRanking(ctx, championshipID)
	})
	if err != nil {
		return nil, err
	}

	entries, ok := value.([]RankingEntry)
	if !ok {
		return nil, fmt.Errorf("unexpected ranking cache entry type %T", value)
	}
	return entries, nil
}

func (s *RankingService) Invalidate(ctx context.Context, championshipID string) {
	if s.store == nil {
		return
	}
	s.store.Delete(ctx, rankingCacheKey(championshipID))
}

func (s *RankingService) loadRanking(ctx context.Context, championshipID string) ([]RankingEntry, error) {
	matches, err := s.matchRepo.ListByChampionship(ctx, championshipID)
	if err != nil {
		return nil, fmt.Errorf("list matches for ranking: %w", err)
	}
	if len(matches) == 0 {
		return []RankingEntry{}, nil
	}

	matchIDs := make([]string, 0, len(matches))
	for _, m := range matches {
		matchIDs = append(matchIDs, m.ID)
	}

	rows, err := s.predictionRepo.RankingByMatches(ctx, matchIDs)
	if err != nil {
		return nil, fmt.Errorf("aggregate ranking rows: %w", err)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		if rows[i].ExactHits != rows[j].ExactHits {
			return rows[i].ExactHits > rows[j].ExactHits
		}
		return rows[i].UserID < rows[j].UserID
	})

	// dense rank: ties on points and exact hits share a rank.
	entries := make([]RankingEntry, 0, len(rows))
	currentRank := 0
	lastPoints, lastExacts := -1, -1
	for idx, row := range rows {
		if idx == 0 || row.Points != lastPoints || row.ExactHits != lastExacts {
			currentRank++
			lastPoints, lastExacts = row.Points, row.ExactHits
		}
		entries = append(entries, RankingEntry{
			Rank:        currentRank,
			UserID:      row.UserID,
			Points:      row.Points,
			ExactHits:   row.ExactHits,
			Predictions: row.Predictions,
		})
	}

	return entries, nil
}

func rankingCacheKey(championshipID string) string {
	return "ranking:" + championshipID
}
