package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/futebolao/futebolao/internal/domain/match"
	"github.com/futebolao/futebolao/internal/domain/prediction"
	"github.com/futebolao/futebolao/internal/platform/logging"
)

type RecomputePointsInput struct {
	ChampionshipID string
	MaxWorkers     int
}

type RecomputeResult struct {
	MatchCount   int                  `json:"match_count"`
	SuccessCount int                  `json:"success_count"`
	FailedCount  int                  `json:"failed_count"`
	SkippedCount int                  `json:"skipped_count"`
	WorkerCount  int                  `json:"worker_count"`
	Matches      []RecomputeMatchItem `json:"matches"`
}

type RecomputeMatchItem struct {
	MatchID     string `json:"match_id"`
	Status      string `json:"status"`
	Predictions int    `json:"predictions"`
	DurationMs  int64  `json:"duration_ms"`
	Message     string `json:"message,omitempty"`
}

const (
	recomputeStatusSuccess = "success"
	recomputeStatusFailed  = "failed"
	recomputeStatusSkipped = "skipped"
)

// rankingInvalidator lets the ranking cache drop stale entries after points
// change. Nil is fine for callers that do not cache.
type rankingInvalidator interface {
	Invalidate(ctx context.Context, championshipID string)
}

// ScoringService recomputes prediction points for finished matches. Matches
// are independent, so they are scored by a bounded worker pool.
type ScoringService struct {
	matchRepo      match.Repository
	predictionRepo prediction.Repository
	ranking        rankingInvalidator
	logger         *logging.Logger
}

func NewScoringService(
	matchRepo match.Repository,
	predictionRepo prediction.Repository,
	ranking rankingInvalidator,
	logger *logging.Logger,
) *ScoringService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ScoringService{
		matchRepo:      matchRepo,
		predictionRepo: predictionRepo,
		ranking:        ranking,
		logger:         logger,
	}
}

// RecomputeChampionship rescores every finished match in the championship.
// Matches that are not finished or have no final score are skipped, never
// zeroed.
func (s *ScoringService) RecomputeChampionship(ctx context.Context, input RecomputePointsInput) (RecomputeResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.RecomputeChampionship")
	defer span.End()

	input.ChampionshipID = strings.TrimSpace(input.ChampionshipID)
	if input.ChampionshipID == "" {
		return RecomputeResult{}, fmt.Errorf("%w: championship id is required", ErrInvalidInput)
	}

	matches, err := s.matchRepo.ListByChampionship(ctx, input.ChampionshipID)
	if err != nil {
		return RecomputeResult{}, fmt.Errorf("list matches for recompute: %w", err)
	}

	workerCount := normalizeRecomputeWorkerCount(input.MaxWorkers, len(matches))
	result := RecomputeResult{
		MatchCount:  len(matches),
		WorkerCount: workerCount,
		Matches:     make([]RecomputeMatchItem, 0, len(matches)),
	}
	if len(matches) == 0 {
		return result, nil
	}

	rows := make(chan RecomputeMatchItem, len(matches))

	var successCount atomic.Int32
	var failedCount atomic.Int32
	var skippedCount atomic.Int32

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return RecomputeResult{}, fmt.Errorf("create scoring worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, m := range matches {
		m := m
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := RecomputeMatchItem{MatchID: m.ID}

			count, status, message := s.rescoreMatch(ctx, m)
			row.Predictions = count
			row.Status = status
			row.Message = message
			row.DurationMs = time.Since(start).Milliseconds()

			switch status {
			case recomputeStatusSuccess:
				successCount.Add(1)
			case recomputeStatusSkipped:
				skippedCount.Add(1)
			default:
				failedCount.Add(1)
			}

			rows <- row
		}); err != nil {
			workers.Done()
			return RecomputeResult{}, fmt.Errorf("submit match to scoring pool: %w", err)
		}
	}

	workers.Wait()
	close(rows)

	for row := range rows {
		result.Matches = append(result.Matches, row)
	}
	sort.SliceStable(result.Matches, func(i, j int) bool {
		return result.Matches[i].MatchID < result.Matches[j].MatchID
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	result.SkippedCount = int(skippedCount.Load())

	if s.ranking != nil && result.SuccessCount > 0 {
		s.ranking.Invalidate(ctx, input.ChampionshipID)
	}

	s.logger.InfoContext(ctx, "points recompute finished",
		"championship_id", input.ChampionshipID,
		"matches", result.MatchCount,
		"success", result.SuccessCount,
		"failed", result.FailedCount,
		"skipped", result.SkippedCount,
	)

	return result, nil
}

// RescoreMatch scores one finished match in place. Called by sync when a match
// transitions to finished so leaderboards stay current without a full pass.
func (s *ScoringService) RescoreMatch(ctx context.Context, matchID string) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.RescoreMatch")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return 0, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return 0, fmt.Errorf("get match for rescore: %w", err)
	}
	if !exists {
		return 0, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	count, status, message := s.rescoreMatch(ctx, m)
	if status == recomputeStatusFailed {
		return count, fmt.Errorf("rescore match=%s: %s", matchID, message)
	}
	if s.ranking != nil && status == recomputeStatusSuccess {
		s.ranking.Invalidate(ctx, m.ChampionshipID)
	}
	return count, nil
}

func (s *ScoringService) rescoreMatch(ctx context.Context, m match.Match) (int, string, string) {
	if m.Status != match.StatusFinished {
		return 0, recomputeStatusSkipped, "match is not finished"
	}
	if m.HomeScore == nil || m.AwayScore == nil {
		return 0, recomputeStatusSkipped, "match has no final score"
	}

	items, err := s.predictionRepo.ListByMatch(ctx, m.ID)
	if err != nil {
		return 0, recomputeStatusFailed, err.Error()
	}
	if len(items) == 0 {
		return 0, recomputeStatusSkipped, "no predictions for match"
	}

	scored := 0
	for _, p := range items {
		points := prediction.Score(p.HomeGuess, p.AwayGuess, *m.HomeScore, *m.AwayScore)
		if p.Points != nil && *p.Points == points {
			continue
		}
		if err := s.predictionRepo.SetPoints(ctx, p.ID, points); err != nil {
			return scored, recomputeStatusFailed, err.Error()
		}
		scored++
	}
	if scored == 0 {
		return 0, recomputeStatusSkipped, "all predictions already scored"
	}
	return scored, recomputeStatusSuccess, ""
}

func normalizeRecomputeWorkerCount(value int, taskCount int) int {
	if taskCount <= 0 {
		return 1
	}
	if value <= 0 {
		value = 4
	}
	if value > 8 {
		value = 8
	}
	if value > taskCount {
		value = taskCount
	}
	return value
}
