package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/futebolao/futebolao/internal/domain/championship"
	"github.com/futebolao/futebolao/internal/domain/match"
)

var syncTestNow = time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

type stubChampionshipRepo struct {
	items []championship.Championship
	err   error
}

func (r stubChampionshipRepo) List(_ context.Context) ([]championship.Championship, error) {
	return r.items, r.err
}

func (r stubChampionshipRepo) GetByID(_ context.Context, _ string) (championship.Championship, bool, error) {
	return championship.Championship{}, false, nil
}

func (r stubChampionshipRepo) Create(_ context.Context, _ championship.Championship) error {
	return nil
}

func (r stubChampionshipRepo) Update(_ context.Context, _ championship.Championship) error {
	return nil
}

type recordingMatchRepo struct {
	candidates []match.Match
	updates    map[string]match.SyncUpdate
	failIDs    map[string]bool
}

func newRecordingMatchRepo(candidates ...match.Match) *recordingMatchRepo {
	return &recordingMatchRepo{
		candidates: candidates,
		updates:    make(map[string]match.SyncUpdate),
	}
}

func (r *recordingMatchRepo) ListByChampionship(_ context.Context, _ string) ([]match.Match, error) {
	return r.candidates, nil
}

func (r *recordingMatchRepo) ListSyncCandidates(_ context.Context, championshipIDs []string, kickoffAfter time.Time) ([]match.Match, error) {
	allowed := make(map[string]bool, len(championshipIDs))
	for _, id := range championshipIDs {
		allowed[id] = true
	}

	out := make([]match.Match, 0, len(r.candidates))
	for _, m := range r.candidates {
		if allowed[m.ChampionshipID] && !m.KickoffAt.Before(kickoffAfter) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *recordingMatchRepo) GetByID(_ context.Context, _ string) (match.Match, bool, error) {
	return match.Match{}, false, nil
}

func (r *recordingMatchRepo) Create(_ context.Context, _ match.Match) error {
	return nil
}

func (r *recordingMatchRepo) ApplySyncUpdate(_ context.Context, matchID string, update match.SyncUpdate) error {
	if r.failIDs[matchID] {
		return fmt.Errorf("row update rejected")
	}
	r.updates[matchID] = update
	return nil
}

type stubProvider struct {
	matches []ExternalMatch
	err     error
	calls   int
}

func (p *stubProvider) FetchMatchesByWindow(_ context.Context, _, _ time.Time) ([]ExternalMatch, error) {
	p.calls++
	return p.matches, p.err
}

func autoChampionship(id string) championship.Championship {
	return championship.Championship{
		ID:     id,
		Name:   "Brasileirão",
		Status: championship.StatusActive,
		Policy: championship.SyncPolicy{
			CreationType: championship.CreationAuto,
			APIScoreType: championship.ScoreTypeFullTime,
			APICode:      "BSA",
		},
	}
}

func newTestSyncService(champs stubChampionshipRepo, repo *recordingMatchRepo, provider *stubProvider) *SyncService {
	svc := NewSyncService(champs, repo, provider, nil, SyncConfig{Enabled: true, WindowDays: 5}, nil)
	svc.now = func() time.Time { return syncTestNow }
	return svc
}

func TestSyncService_LiveScoreFlowsThrough(t *testing.T) {
	t.Parallel()

	repo := newRecordingMatchRepo(match.Match{
		ID:             "m1",
		ChampionshipID: "c1",
		ExternalID:     int64Ptr(100),
		HomeTeam:       "Flamengo",
		AwayTeam:       "Palmeiras",
		KickoffAt:      syncTestNow.Add(-2 * time.Hour),
		Status:         match.StatusScheduled,
	})
	provider := &stubProvider{matches: []ExternalMatch{{
		ExternalID: 100,
		Status:     "IN_PLAY",
		FullTime:   ExternalScore{Home: intPtr(1), Away: intPtr(0)},
	}}}

	svc := newTestSyncService(stubChampionshipRepo{items: []championship.Championship{autoChampionship("c1")}}, repo, provider)

	result, err := svc.Synchronize(context.Background(), false)
	if err != nil {
		t.Fatalf("Synchronize error: %v", err)
	}
	if !result.Success || result.Updates != 1 || result.Checked != 1 || result.APIMatchCount != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}

	update, ok := repo.updates["m1"]
	if !ok {
		t.Fatal("expected m1 to be updated")
	}
	if update.Status != match.StatusLive {
		t.Fatalf("expected live status, got=%q", update.Status)
	}
	if *update.HomeScore != 1 || *update.AwayScore != 0 {
		t.Fatalf("expected 1x0, got=%dx%d", *update.HomeScore, *update.AwayScore)
	}
	if len(result.UpdatedNames) != 1 || result.UpdatedNames[0] != "Flamengo 1x0 Palmeiras" {
		t.Fatalf("unexpected updated names: %v", result.UpdatedNames)
	}
}

func TestSyncService_FinalizationLagKeepsLiveStatus(t *testing.T) {
	t.Parallel()

	repo := newRecordingMatchRepo(match.Match{
		ID:             "m1",
		ChampionshipID: "c1",
		ExternalID:     int64Ptr(200),
		HomeTeam:       "Santos",
		AwayTeam:       "Grêmio",
		KickoffAt:      syncTestNow.Add(-3 * time.Hour),
		Status:         match.StatusLive,
		HomeScore:      intPtr(2),
		AwayScore:      intPtr(1),
	})
	provider := &stubProvider{matches: []ExternalMatch{{
		ExternalID: 200,
		Status:     "FINISHED",
		FullTime:   ExternalScore{},
	}}}

	svc := newTestSyncService(stubChampionshipRepo{items: []championship.Championship{autoChampionship("c1")}}, repo, provider)

	result, err := svc.Synchronize(context.Background(), false)
	if err != nil {
		t.Fatalf("Synchronize error: %v", err)
	}
	if result.Updates != 0 {
		t.Fatalf("expected no updates during finalization lag, got=%d", result.Updates)
	}
	if len(repo.updates) != 0 {
		t.Fatalf("expected no row writes, got=%v", repo.updates)
	}
}

func TestSyncService_FinishedScoreNeverDowngraded(t *testing.T) {
	t.Parallel()

	repo := newRecordingMatchRepo(match.Match{
		ID:             "m1",
		ChampionshipID: "c1",
		ExternalID:     int64Ptr(300),
		KickoffAt:      syncTestNow.Add(-24 * time.Hour),
		Status:         match.StatusFinished,
		HomeScore:      intPtr(3),
		AwayScore:      intPtr(1),
	})
	provider := &stubProvider{matches: []ExternalMatch{{
		ExternalID: 300,
		Status:     "FINISHED",
		FullTime:   ExternalScore{Home: intPtr(0), Away: intPtr(0)},
	}}}

	svc := newTestSyncService(stubChampionshipRepo{items: []championship.Championship{autoChampionship("c1")}}, repo, provider)

	result, err := svc.Synchronize(context.Background(), false)
	if err != nil {
		t.Fatalf("Synchronize error: %v", err)
	}
	if result.Updates != 0 || len(repo.updates) != 0 {
		t.Fatalf("finished score was downgraded: %+v", repo.updates)
	}
}

func TestSyncService_FinalizationLagRepair(t *testing.T) {
	t.Parallel()

	repo := newRecordingMatchRepo(match.Match{
		ID:             "m1",
		ChampionshipID: "c1",
		ExternalID:     int64Ptr(301),
		KickoffAt:      syncTestNow.Add(-24 * time.Hour),
		Status:         match.StatusFinished,
		HomeScore:      intPtr(0),
		AwayScore:      intPtr(0),
	})
	provider := &stubProvider{matches: []ExternalMatch{{
		ExternalID: 301,
		Status:     "FINISHED",
		FullTime:   ExternalScore{Home: intPtr(2), Away: intPtr(2)},
	}}}

	svc := newTestSyncService(stubChampionshipRepo{items: []championship.Championship{autoChampionship("c1")}}, repo, provider)

	result, err := svc.Synchronize(context.Background(), false)
	if err != nil {
		t.Fatalf("Synchronize error: %v", err)
	}
	if result.Updates != 1 {
		t.Fatalf("expected the 0-0 to be repaired, got=%+v", result)
	}
	update := repo.updates["m1"]
	if *update.HomeScore != 2 || *update.AwayScore != 2 {
		t.Fatalf("expected 2x2, got=%dx%d", *update.HomeScore, *update.AwayScore)
	}
}

func TestSyncService_ManualChampionshipUntouched(t *testing.T) {
	t.Parallel()

	manual := autoChampionship("c1")
	manual.Policy.CreationType = championship.CreationManual

	repo := newRecordingMatchRepo(match.Match{
		ID:             "m1",
		ChampionshipID: "c1",
		ExternalID:     int64Ptr(100),
		KickoffAt:      syncTestNow,
		Status:         match.StatusScheduled,
	})
	provider := &stubProvider{matches: []ExternalMatch{{
		ExternalID: 100,
		Status:     "IN_PLAY",
		FullTime:   ExternalScore{Home: intPtr(4), Away: intPtr(0)},
	}}}

	svc := newTestSyncService(stubChampionshipRepo{items: []championship.Championship{manual}}, repo, provider)

	result, err := svc.Synchronize(context.Background(), false)
	if err != nil {
		t.Fatalf("Synchronize error: %v", err)
	}
	if !result.Success || result.Checked != 0 || len(repo.updates) != 0 {
		t.Fatalf("manual championship was touched: %+v", result)
	}
	if provider.calls != 0 {
		t.Fatalf("expected no upstream call, got=%d", provider.calls)
	}
}

func TestSyncService_ArchivedChampionshipExcluded(t *testing.T) {
	t.Parallel()

	archived := autoChampionship("c1")
	archived.Status = championship.StatusArchived

	repo := newRecordingMatchRepo(match.Match{
		ID:             "m1",
		ChampionshipID: "c1",
		ExternalID:     int64Ptr(100),
		KickoffAt:      syncTestNow,
		Status:         match.StatusScheduled,
	})
	provider := &stubProvider{matches: []ExternalMatch{{ExternalID: 100, Status: "IN_PLAY"}}}

	svc := newTestSyncService(stubChampionshipRepo{items: []championship.Championship{archived}}, repo, provider)

	result, err := svc.Synchronize(context.Background(), false)
	if err != nil {
		t.Fatalf("Synchronize error: %v", err)
	}
	if result.Checked != 0 || len(repo.updates) != 0 {
		t.Fatalf("archived championship was synced: %+v", result)
	}
}

func TestSyncService_RegularTimeScoreSelected(t *testing.T) {
	t.Parallel()

	champ := autoChampionship("c1")
	champ.Policy.APIScoreType = championship.ScoreTypeRegularTime

	repo := newRecordingMatchRepo(match.Match{
		ID:             "m1",
		ChampionshipID: "c1",
		ExternalID:     int64Ptr(400),
		KickoffAt:      syncTestNow.Add(-4 * time.Hour),
		Status:         match.StatusLive,
		HomeScore:      intPtr(0),
		AwayScore:      intPtr(0),
	})
	provider := &stubProvider{matches: []ExternalMatch{{
		ExternalID:  400,
		Status:      "FINISHED",
		FullTime:    ExternalScore{Home: intPtr(3), Away: intPtr(1)},
		RegularTime: &ExternalScore{Home: intPtr(1), Away: intPtr(1)},
	}}}

	svc := newTestSyncService(stubChampionshipRepo{items: []championship.Championship{champ}}, repo, provider)

	if _, err := svc.Synchronize(context.Background(), false); err != nil {
		t.Fatalf("Synchronize error: %v", err)
	}
	update, ok := repo.updates["m1"]
	if !ok {
		t.Fatal("expected m1 to transition to finished")
	}
	if *update.HomeScore != 1 || *update.AwayScore != 1 {
		t.Fatalf("expected regular-time 1x1, got=%dx%d", *update.HomeScore, *update.AwayScore)
	}
}

func TestSyncService_GoalTotalRegressionRejected(t *testing.T) {
	t.Parallel()

	repo := newRecordingMatchRepo(match.Match{
		ID:             "m1",
		ChampionshipID: "c1",
		ExternalID:     int64Ptr(500),
		KickoffAt:      syncTestNow.Add(-time.Hour),
		Status:         match.StatusLive,
		HomeScore:      intPtr(2),
		AwayScore:      intPtr(0),
	})
	provider := &stubProvider{matches: []ExternalMatch{{
		ExternalID: 500,
		Status:     "PAUSED",
		FullTime:   ExternalScore{Home: intPtr(1), Away: intPtr(0)},
	}}}

	svc := newTestSyncService(stubChampionshipRepo{items: []championship.Championship{autoChampionship("c1")}}, repo, provider)

	result, err := svc.Synchronize(context.Background(), false)
	if err != nil {
		t.Fatalf("Synchronize error: %v", err)
	}
	if result.Updates != 0 || len(repo.updates) != 0 {
		t.Fatalf("goal regression was accepted: %+v", repo.updates)
	}
}

func TestSyncService_EqualTotalsLetCorrectionsThrough(t *testing.T) {
	t.Parallel()

	repo := newRecordingMatchRepo(match.Match{
		ID:             "m1",
		ChampionshipID: "c1",
		ExternalID:     int64Ptr(501),
		KickoffAt:      syncTestNow.Add(-time.Hour),
		Status:         match.StatusLive,
		HomeScore:      intPtr(1),
		AwayScore:      intPtr(1),
	})
	provider := &stubProvider{matches: []ExternalMatch{{
		ExternalID: 501,
		Status:     "IN_PLAY",
		FullTime:   ExternalScore{Home: intPtr(2), Away: intPtr(0)},
	}}}

	svc := newTestSyncService(stubChampionshipRepo{items: []championship.Championship{autoChampionship("c1")}}, repo, provider)

	result, err := svc.Synchronize(context.Background(), false)
	if err != nil {
		t.Fatalf("Synchronize error: %v", err)
	}
	if result.Updates != 1 {
		t.Fatalf("score correction with equal totals was rejected: %+v", result)
	}
	update := repo.updates["m1"]
	if *update.HomeScore != 2 || *update.AwayScore != 0 {
		t.Fatalf("expected 2x0, got=%dx%d", *update.HomeScore, *update.AwayScore)
	}
}

func TestSyncService_ForceOverwritesRejectedDifference(t *testing.T) {
	t.Parallel()

	local := match.Match{
		ID:             "m1",
		ChampionshipID: "c1",
		ExternalID:     int64Ptr(502),
		KickoffAt:      syncTestNow.Add(-time.Hour),
		Status:         match.StatusLive,
		HomeScore:      intPtr(2),
		AwayScore:      intPtr(0),
	}
	upstream := []ExternalMatch{{
		ExternalID: 502,
		Status:     "IN_PLAY",
		FullTime:   ExternalScore{Home: intPtr(1), Away: intPtr(0)},
	}}

	repo := newRecordingMatchRepo(local)
	provider := &stubProvider{matches: upstream}
	svc := newTestSyncService(stubChampionshipRepo{items: []championship.Championship{autoChampionship("c1")}}, repo, provider)

	result, err := svc.Synchronize(context.Background(), true)
	if err != nil {
		t.Fatalf("Synchronize error: %v", err)
	}
	if result.Updates != 1 {
		t.Fatalf("force mode did not overwrite: %+v", result)
	}
	update := repo.updates["m1"]
	if *update.HomeScore != 1 || *update.AwayScore != 0 {
		t.Fatalf("expected forced 1x0, got=%dx%d", *update.HomeScore, *update.AwayScore)
	}
}

func TestSyncService_UnmatchedRowsUntouched(t *testing.T) {
	t.Parallel()

	repo := newRecordingMatchRepo(
		match.Match{
			ID:             "manual",
			ChampionshipID: "c1",
			KickoffAt:      syncTestNow,
			Status:         match.StatusScheduled,
		},
		match.Match{
			ID:             "orphan",
			ChampionshipID: "c1",
			ExternalID:     int64Ptr(999),
			KickoffAt:      syncTestNow,
			Status:         match.StatusScheduled,
		},
	)
	provider := &stubProvider{matches: []ExternalMatch{{
		ExternalID: 100,
		Status:     "IN_PLAY",
		FullTime:   ExternalScore{Home: intPtr(1), Away: intPtr(0)},
	}}}

	svc := newTestSyncService(stubChampionshipRepo{items: []championship.Championship{autoChampionship("c1")}}, repo, provider)

	result, err := svc.Synchronize(context.Background(), false)
	if err != nil {
		t.Fatalf("Synchronize error: %v", err)
	}
	if result.Checked != 0 || len(repo.updates) != 0 {
		t.Fatalf("unmatched rows were touched: %+v", result)
	}
}

func TestSyncService_OldMatchesOutsideWindow(t *testing.T) {
	t.Parallel()

	repo := newRecordingMatchRepo(match.Match{
		ID:             "m1",
		ChampionshipID: "c1",
		ExternalID:     int64Ptr(600),
		KickoffAt:      syncTestNow.AddDate(0, 0, -6),
		Status:         match.StatusFinished,
		HomeScore:      intPtr(0),
		AwayScore:      intPtr(0),
	})
	provider := &stubProvider{matches: []ExternalMatch{{
		ExternalID: 600,
		Status:     "FINISHED",
		FullTime:   ExternalScore{Home: intPtr(1), Away: intPtr(0)},
	}}}

	svc := newTestSyncService(stubChampionshipRepo{items: []championship.Championship{autoChampionship("c1")}}, repo, provider)

	result, err := svc.Synchronize(context.Background(), false)
	if err != nil {
		t.Fatalf("Synchronize error: %v", err)
	}
	if result.Checked != 0 || len(repo.updates) != 0 {
		t.Fatalf("settled match outside the window was re-checked: %+v", result)
	}
}

func TestSyncService_MissingTokenIsConfigurationError(t *testing.T) {
	t.Parallel()

	repo := newRecordingMatchRepo(match.Match{
		ID:             "m1",
		ChampionshipID: "c1",
		ExternalID:     int64Ptr(100),
		KickoffAt:      syncTestNow,
		Status:         match.StatusScheduled,
	})
	svc := NewSyncService(
		stubChampionshipRepo{items: []championship.Championship{autoChampionship("c1")}},
		repo,
		&stubProvider{},
		nil,
		SyncConfig{Enabled: false},
		nil,
	)
	svc.now = func() time.Time { return syncTestNow }

	_, err := svc.Synchronize(context.Background(), false)
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected dependency unavailable, got=%v", err)
	}
}

func TestSyncService_UpstreamFailureAbortsRun(t *testing.T) {
	t.Parallel()

	repo := newRecordingMatchRepo(match.Match{
		ID:             "m1",
		ChampionshipID: "c1",
		ExternalID:     int64Ptr(100),
		KickoffAt:      syncTestNow,
		Status:         match.StatusScheduled,
	})
	provider := &stubProvider{err: fmt.Errorf("upstream boom")}

	svc := newTestSyncService(stubChampionshipRepo{items: []championship.Championship{autoChampionship("c1")}}, repo, provider)

	if _, err := svc.Synchronize(context.Background(), false); err == nil {
		t.Fatal("expected upstream failure to abort the run")
	}
	if len(repo.updates) != 0 {
		t.Fatalf("rows were written after an aborted fetch: %+v", repo.updates)
	}
}

func TestSyncService_RowFailureSkipsAndContinues(t *testing.T) {
	t.Parallel()

	repo := newRecordingMatchRepo(
		match.Match{
			ID:             "bad",
			ChampionshipID: "c1",
			ExternalID:     int64Ptr(700),
			KickoffAt:      syncTestNow.Add(-time.Hour),
			Status:         match.StatusScheduled,
		},
		match.Match{
			ID:             "good",
			ChampionshipID: "c1",
			ExternalID:     int64Ptr(701),
			KickoffAt:      syncTestNow.Add(-time.Hour),
			Status:         match.StatusScheduled,
		},
	)
	repo.failIDs = map[string]bool{"bad": true}
	provider := &stubProvider{matches: []ExternalMatch{
		{ExternalID: 700, Status: "IN_PLAY", FullTime: ExternalScore{Home: intPtr(1), Away: intPtr(0)}},
		{ExternalID: 701, Status: "IN_PLAY", FullTime: ExternalScore{Home: intPtr(0), Away: intPtr(2)}},
	}}

	svc := newTestSyncService(stubChampionshipRepo{items: []championship.Championship{autoChampionship("c1")}}, repo, provider)

	result, err := svc.Synchronize(context.Background(), false)
	if err != nil {
		t.Fatalf("Synchronize error: %v", err)
	}
	if result.Checked != 2 || result.Updates != 1 {
		t.Fatalf("expected one applied update out of two checked, got=%+v", result)
	}
	if _, ok := repo.updates["good"]; !ok {
		t.Fatal("expected the healthy row to be updated")
	}
}

type recordingRescorer struct {
	matchIDs []string
	err      error
}

func (r *recordingRescorer) RescoreMatch(_ context.Context, matchID string) (int, error) {
	r.matchIDs = append(r.matchIDs, matchID)
	return 0, r.err
}

func TestSyncService_FinishTransitionTriggersRescore(t *testing.T) {
	t.Parallel()

	repo := newRecordingMatchRepo(match.Match{
		ID:             "m1",
		ChampionshipID: "c1",
		ExternalID:     int64Ptr(100),
		HomeTeam:       "Flamengo",
		AwayTeam:       "Palmeiras",
		KickoffAt:      syncTestNow.Add(-3 * time.Hour),
		Status:         match.StatusLive,
		HomeScore:      intPtr(1),
		AwayScore:      intPtr(0),
	})
	provider := &stubProvider{matches: []ExternalMatch{{
		ExternalID: 100,
		Status:     "FINISHED",
		FullTime:   ExternalScore{Home: intPtr(2), Away: intPtr(0)},
	}}}
	rescorer := &recordingRescorer{}

	svc := NewSyncService(
		stubChampionshipRepo{items: []championship.Championship{autoChampionship("c1")}},
		repo,
		provider,
		rescorer,
		SyncConfig{Enabled: true, WindowDays: 5},
		nil,
	)
	svc.now = func() time.Time { return syncTestNow }

	result, err := svc.Synchronize(context.Background(), false)
	if err != nil {
		t.Fatalf("Synchronize error: %v", err)
	}
	if result.Updates != 1 {
		t.Fatalf("expected one update, got %+v", result)
	}
	if len(rescorer.matchIDs) != 1 || rescorer.matchIDs[0] != "m1" {
		t.Fatalf("expected rescore of m1, got %v", rescorer.matchIDs)
	}
}

func TestSyncService_LiveUpdateDoesNotRescore(t *testing.T) {
	t.Parallel()

	repo := newRecordingMatchRepo(match.Match{
		ID:             "m1",
		ChampionshipID: "c1",
		ExternalID:     int64Ptr(100),
		HomeTeam:       "Flamengo",
		AwayTeam:       "Palmeiras",
		KickoffAt:      syncTestNow.Add(-time.Hour),
		Status:         match.StatusScheduled,
	})
	provider := &stubProvider{matches: []ExternalMatch{{
		ExternalID: 100,
		Status:     "IN_PLAY",
		FullTime:   ExternalScore{Home: intPtr(1), Away: intPtr(0)},
	}}}
	rescorer := &recordingRescorer{}

	svc := NewSyncService(
		stubChampionshipRepo{items: []championship.Championship{autoChampionship("c1")}},
		repo,
		provider,
		rescorer,
		SyncConfig{Enabled: true, WindowDays: 5},
		nil,
	)
	svc.now = func() time.Time { return syncTestNow }

	if _, err := svc.Synchronize(context.Background(), false); err != nil {
		t.Fatalf("Synchronize error: %v", err)
	}
	if len(rescorer.matchIDs) != 0 {
		t.Fatalf("live update must not rescore, got %v", rescorer.matchIDs)
	}
}

func TestSyncService_RescoreFailureDoesNotFailRun(t *testing.T) {
	t.Parallel()

	repo := newRecordingMatchRepo(match.Match{
		ID:             "m1",
		ChampionshipID: "c1",
		ExternalID:     int64Ptr(100),
		HomeTeam:       "Flamengo",
		AwayTeam:       "Palmeiras",
		KickoffAt:      syncTestNow.Add(-3 * time.Hour),
		Status:         match.StatusLive,
		HomeScore:      intPtr(1),
		AwayScore:      intPtr(0),
	})
	provider := &stubProvider{matches: []ExternalMatch{{
		ExternalID: 100,
		Status:     "FINISHED",
		FullTime:   ExternalScore{Home: intPtr(2), Away: intPtr(0)},
	}}}
	rescorer := &recordingRescorer{err: errors.New("scoring store down")}

	svc := NewSyncService(
		stubChampionshipRepo{items: []championship.Championship{autoChampionship("c1")}},
		repo,
		provider,
		rescorer,
		SyncConfig{Enabled: true, WindowDays: 5},
		nil,
	)
	svc.now = func() time.Time { return syncTestNow }

	result, err := svc.Synchronize(context.Background(), false)
	if err != nil {
		t.Fatalf("Synchronize error: %v", err)
	}
	if result.Updates != 1 {
		t.Fatalf("row write must survive a rescore failure, got %+v", result)
	}
}
