package usecase

import (
	"context"
	"testing"

	"github.com/futebolao/futebolao/internal/domain/match"
	"github.com/futebolao/futebolao/internal/domain/prediction"
)

type recordingInvalidator struct {
	championshipIDs []string
}

func (r *recordingInvalidator) Invalidate(_ context.Context, championshipID string) {
	r.championshipIDs = append(r.championshipIDs, championshipID)
}

func TestScoringService_RecomputeChampionship(t *testing.T) {
	t.Parallel()

	matchRepo := &fakeMatchRepo{
		byChampion: map[string][]match.Match{
			"c1": {
				{ID: "m1", ChampionshipID: "c1", Status: match.StatusFinished, HomeScore: intPtr(2), AwayScore: intPtr(1)},
				{ID: "m2", ChampionshipID: "c1", Status: match.StatusLive, HomeScore: intPtr(1), AwayScore: intPtr(0)},
				{ID: "m3", ChampionshipID: "c1", Status: match.StatusFinished},
			},
		},
	}
	predictionRepo := &fakePredictionRepo{byMatch: map[string][]prediction.Prediction{
		"m1": {
			{ID: "p1", UserID: "u1", MatchID: "m1", HomeGuess: 2, AwayGuess: 1},
			{ID: "p2", UserID: "u2", MatchID: "m1", HomeGuess: 3, AwayGuess: 2},
			{ID: "p3", UserID: "u3", MatchID: "m1", HomeGuess: 0, AwayGuess: 2},
		},
		"m2": {{ID: "p4", UserID: "u1", MatchID: "m2", HomeGuess: 1, AwayGuess: 0}},
	}}
	invalidator := &recordingInvalidator{}

	svc := NewScoringService(matchRepo, predictionRepo, invalidator, nil)

	result, err := svc.RecomputeChampionship(context.Background(), RecomputePointsInput{ChampionshipID: "c1"})
	if err != nil {
		t.Fatalf("RecomputeChampionship error: %v", err)
	}
	if result.MatchCount != 3 || result.SuccessCount != 1 || result.SkippedCount != 2 || result.FailedCount != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}

	if got := predictionRepo.points["p1"]; got != prediction.PointsExactScore {
		t.Fatalf("exact guess: expected %d, got %d", prediction.PointsExactScore, got)
	}
	if got := predictionRepo.points["p2"]; got != prediction.PointsOutcomeAndDiff {
		t.Fatalf("outcome+diff guess: expected %d, got %d", prediction.PointsOutcomeAndDiff, got)
	}
	if got := predictionRepo.points["p3"]; got != prediction.PointsMiss {
		t.Fatalf("missed guess: expected %d, got %d", prediction.PointsMiss, got)
	}
	if _, scored := predictionRepo.points["p4"]; scored {
		t.Fatal("live match prediction was scored")
	}

	if len(invalidator.championshipIDs) != 1 || invalidator.championshipIDs[0] != "c1" {
		t.Fatalf("expected ranking invalidation for c1, got %v", invalidator.championshipIDs)
	}
}

func TestScoringService_RecomputeSkipsAlreadyScored(t *testing.T) {
	t.Parallel()

	points := prediction.PointsExactScore
	matchRepo := &fakeMatchRepo{
		byChampion: map[string][]match.Match{
			"c1": {{ID: "m1", ChampionshipID: "c1", Status: match.StatusFinished, HomeScore: intPtr(1), AwayScore: intPtr(1)}},
		},
	}
	predictionRepo := &fakePredictionRepo{byMatch: map[string][]prediction.Prediction{
		"m1": {{ID: "p1", UserID: "u1", MatchID: "m1", HomeGuess: 1, AwayGuess: 1, Points: &points}},
	}}
	invalidator := &recordingInvalidator{}

	svc := NewScoringService(matchRepo, predictionRepo, invalidator, nil)

	result, err := svc.RecomputeChampionship(context.Background(), RecomputePointsInput{ChampionshipID: "c1"})
	if err != nil {
		t.Fatalf("RecomputeChampionship error: %v", err)
	}
	if result.SuccessCount != 0 || result.SkippedCount != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(predictionRepo.points) != 0 {
		t.Fatalf("unchanged predictions were rewritten: %v", predictionRepo.points)
	}
	if len(invalidator.championshipIDs) != 0 {
		t.Fatalf("ranking invalidated with no point changes: %v", invalidator.championshipIDs)
	}
}

func TestScoringService_RescoreMatch(t *testing.T) {
	t.Parallel()

	matchRepo := &fakeMatchRepo{byID: map[string]match.Match{
		"m1": {ID: "m1", ChampionshipID: "c1", Status: match.StatusFinished, HomeScore: intPtr(0), AwayScore: intPtr(3)},
	}}
	predictionRepo := &fakePredictionRepo{byMatch: map[string][]prediction.Prediction{
		"m1": {{ID: "p1", UserID: "u1", MatchID: "m1", HomeGuess: 1, AwayGuess: 2}},
	}}
	invalidator := &recordingInvalidator{}

	svc := NewScoringService(matchRepo, predictionRepo, invalidator, nil)

	count, err := svc.RescoreMatch(context.Background(), "m1")
	if err != nil {
		t.Fatalf("RescoreMatch error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 rescored prediction, got %d", count)
	}
	if got := predictionRepo.points["p1"]; got != prediction.PointsOutcome {
		t.Fatalf("expected outcome points %d, got %d", prediction.PointsOutcome, got)
	}
	if len(invalidator.championshipIDs) != 1 {
		t.Fatalf("expected ranking invalidation, got %v", invalidator.championshipIDs)
	}
}
