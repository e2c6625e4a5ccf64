package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/futebolao/futebolao/internal/domain/championship"
	"github.com/futebolao/futebolao/internal/domain/match"
	"github.com/futebolao/futebolao/internal/platform/logging"
)

// MatchProvider fetches upstream fixtures for a date window. One call covers
// every championship in the window; per-match requests would burn through the
// provider's rate limit.
type MatchProvider interface {
	FetchMatchesByWindow(ctx context.Context, from, to time.Time) ([]ExternalMatch, error)
}

type ExternalScore struct {
	Home *int
	Away *int
}

func (s ExternalScore) IsNull() bool {
	return s.Home == nil && s.Away == nil
}

type ExternalMatch struct {
	ExternalID   int64
	Status       string
	KickoffAt    time.Time
	HomeTeamName string
	AwayTeamName string
	HomeCrestURL string
	AwayCrestURL string
	FullTime     ExternalScore
	RegularTime  *ExternalScore
}

type SyncConfig struct {
	// Enabled is false when no upstream API token is configured.
	Enabled    bool
	WindowDays int
}

// SyncResult is the summary returned to both invocation surfaces.
type SyncResult struct {
	Success       bool     `json:"success"`
	Updates       int      `json:"updates"`
	Checked       int      `json:"checked"`
	APIMatchCount int      `json:"apiMatchCount"`
	UpdatedNames  []string `json:"updatedNames"`
}

// matchRescorer re-scores the predictions of a single match after its result
// changes. Nil skips the step.
type matchRescorer interface {
	RescoreMatch(ctx context.Context, matchID string) (int, error)
}

// SyncService reconciles locally tracked matches against the upstream match
// source. Runs are sequential and best-effort: a failed row update is logged
// and skipped, a failed upstream fetch aborts the run. Concurrent runs race
// with last-write-wins row semantics.
type SyncService struct {
	championshipRepo championship.Repository
	matchRepo        match.Repository
	provider         MatchProvider
	rescorer         matchRescorer
	cfg              SyncConfig
	logger           *logging.Logger
	now              func() time.Time
}

func NewSyncService(
	championshipRepo championship.Repository,
	matchRepo match.Repository,
	provider MatchProvider,
	rescorer matchRescorer,
	cfg SyncConfig,
	logger *logging.Logger,
) *SyncService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.WindowDays <= 0 {
		cfg.WindowDays = 5
	}

	return &SyncService{
		championshipRepo: championshipRepo,
		matchRepo:        matchRepo,
		provider:         provider,
		rescorer:         rescorer,
		cfg:              cfg,
		logger:           logger,
		now:              time.Now,
	}
}

// Synchronize pulls the upstream window and overwrites local match rows per
// the precedence rules. With force=true any observed status or score
// difference is written; otherwise the conservative rules apply.
func (s *SyncService) Synchronize(ctx context.Context, force bool) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.Synchronize")
	defer span.End()

	champs, err := s.championshipRepo.List(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("list championships for sync: %w", err)
	}

	policyByID := make(map[string]championship.SyncPolicy, len(champs))
	eligibleIDs := make([]string, 0, len(champs))
	for _, c := range champs {
		if !c.SyncEligible() {
			continue
		}
		eligibleIDs = append(eligibleIDs, c.ID)
		policyByID[c.ID] = c.Policy
	}
	if len(eligibleIDs) == 0 {
		s.logger.InfoContext(ctx, "sync skipped: no sync-eligible championships")
		return SyncResult{Success: true, UpdatedNames: []string{}}, nil
	}

	now := s.now().UTC()
	windowStart := now.AddDate(0, 0, -s.cfg.WindowDays)
	windowEnd := now.AddDate(0, 0, s.cfg.WindowDays)

	candidates, err := s.matchRepo.ListSyncCandidates(ctx, eligibleIDs, windowStart)
	if err != nil {
		return SyncResult{}, fmt.Errorf("list sync candidates: %w", err)
	}

	tracked := make([]match.Match, 0, len(candidates))
	for _, m := range candidates {
		if m.Syncable() {
			tracked = append(tracked, m)
		}
	}
	if len(tracked) == 0 {
		s.logger.InfoContext(ctx, "sync skipped: no tracked matches with external ids", "candidates", len(candidates))
		return SyncResult{Success: true, UpdatedNames: []string{}}, nil
	}

	if !s.cfg.Enabled || s.provider == nil {
		return SyncResult{}, fmt.Errorf("%w: upstream match API token is not configured", ErrDependencyUnavailable)
	}

	upstream, err := s.provider.FetchMatchesByWindow(ctx, windowStart, windowEnd)
	if err != nil {
		return SyncResult{}, fmt.Errorf("fetch upstream matches window=%s..%s: %w",
			windowStart.Format("2006-01-02"), windowEnd.Format("2006-01-02"), err)
	}

	upstreamByID := make(map[int64]ExternalMatch, len(upstream))
	for _, item := range upstream {
		if item.ExternalID > 0 {
			upstreamByID[item.ExternalID] = item
		}
	}

	result := SyncResult{
		Success:       true,
		APIMatchCount: len(upstream),
		UpdatedNames:  []string{},
	}
	for _, local := range tracked {
		up, ok := upstreamByID[*local.ExternalID]
		if !ok {
			continue
		}
		result.Checked++

		update, write := decideSyncUpdate(local, up, policyByID[local.ChampionshipID].APIScoreType, force)
		if !write {
			continue
		}

		if err := s.matchRepo.ApplySyncUpdate(ctx, local.ID, update); err != nil {
			s.logger.WarnContext(ctx, "apply sync update failed, skipping row",
				"match_id", local.ID,
				"external_id", *local.ExternalID,
				"error", err,
			)
			continue
		}

		result.Updates++
		result.UpdatedNames = append(result.UpdatedNames, describeUpdate(local, update))

		if s.rescorer != nil && local.Status != match.StatusFinished && update.Status == match.StatusFinished {
			if _, err := s.rescorer.RescoreMatch(ctx, local.ID); err != nil {
				s.logger.WarnContext(ctx, "rescore after finish failed",
					"match_id", local.ID,
					"error", err,
				)
			}
		}
	}

	s.logger.InfoContext(ctx, "sync finished",
		"force", force,
		"checked", result.Checked,
		"updates", result.Updates,
		"api_match_count", result.APIMatchCount,
	)

	return result, nil
}

// decideSyncUpdate computes the candidate state for one match and applies the
// precedence rules. Exactly one branch decides:
//
//  1. force: write on any status or score difference
//  2. transition to finished: always write
//  3. both finished: write only to repair a 0-0 left by finalization lag
//  4. otherwise: goal totals may only grow; equal totals let corrections through
func decideSyncUpdate(local match.Match, up ExternalMatch, scoreType string, force bool) (match.SyncUpdate, bool) {
	newStatus := match.MapUpstreamStatus(up.Status)

	raw := up.FullTime
	if scoreType == championship.ScoreTypeRegularTime && up.RegularTime != nil {
		raw = *up.RegularTime
	}
	rawNull := raw.IsNull()

	// Finalization lag guard: upstream reports FINISHED before publishing the
	// final score. Keep the current status rather than locking in a 0-0.
	if newStatus == match.StatusFinished && rawNull {
		newStatus = local.Status
	}

	localHome := intOrZero(local.HomeScore)
	localAway := intOrZero(local.AwayScore)
	newHome := intOrZero(raw.Home)
	newAway := intOrZero(raw.Away)
	if rawNull && force {
		// Force compares real observations only; a null score is not a
		// difference worth writing.
		newHome, newAway = localHome, localAway
	}

	statusChanged := newStatus != local.Status
	scoreChanged := newHome != localHome || newAway != localAway

	write := false
	switch {
	case force:
		write = statusChanged || scoreChanged
	case local.Status != match.StatusFinished && newStatus == match.StatusFinished:
		write = true
	case local.Status == match.StatusFinished && newStatus == match.StatusFinished:
		write = localHome == 0 && localAway == 0 && newHome+newAway > 0
	default:
		newTotal := newHome + newAway
		localTotal := localHome + localAway
		if newTotal > localTotal {
			write = true
		} else if newTotal == localTotal && (statusChanged || scoreChanged) {
			write = true
		}
	}
	if !write {
		return match.SyncUpdate{}, false
	}

	kickoff := up.KickoffAt
	if kickoff.IsZero() {
		kickoff = local.KickoffAt
	}

	return match.SyncUpdate{
		Status:       newStatus,
		HomeScore:    &newHome,
		AwayScore:    &newAway,
		KickoffAt:    kickoff.UTC(),
		HomeCrestURL: firstNonEmpty(up.HomeCrestURL, local.HomeCrestURL),
		AwayCrestURL: firstNonEmpty(up.AwayCrestURL, local.AwayCrestURL),
	}, true
}

func describeUpdate(local match.Match, update match.SyncUpdate) string {
	return fmt.Sprintf("%s %dx%d %s", local.HomeTeam, intOrZero(update.HomeScore), intOrZero(update.AwayScore), local.AwayTeam)
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
