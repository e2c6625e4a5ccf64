package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/futebolao/futebolao/internal/domain/match"
	"github.com/futebolao/futebolao/internal/domain/prediction"
	"github.com/futebolao/futebolao/internal/platform/cache"
)

func TestRankingService_DenseRankOrdering(t *testing.T) {
	t.Parallel()

	matchRepo := &fakeMatchRepo{byChampion: map[string][]match.Match{
		"c1": {{ID: "m1", ChampionshipID: "c1"}},
	}}
	predictionRepo := &fakePredictionRepo{ranking: []prediction.RankingRow{
		{UserID: "u-low", Points: 5, ExactHits: 0, Predictions: 3},
		{UserID: "u-top", Points: 17, ExactHits: 1, Predictions: 3},
		{UserID: "u-tied-b", Points: 12, ExactHits: 1, Predictions: 3},
		{UserID: "u-tied-a", Points: 12, ExactHits: 1, Predictions: 2},
		{UserID: "u-fewer-exacts", Points: 12, ExactHits: 0, Predictions: 3},
	}}

	svc := NewRankingService(matchRepo, predictionRepo, nil)

	got, err := svc.Championship(context.Background(), "c1")
	if err != nil {
		t.Fatalf("Championship error: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(got))
	}

	expected := []struct {
		userID string
		rank   int
	}{
		{"u-top", 1},
		{"u-tied-a", 2},
		{"u-tied-b", 2},
		{"u-fewer-exacts", 3},
		{"u-low", 4},
	}
	for i, want := range expected {
		if got[i].UserID != want.userID || got[i].Rank != want.rank {
			t.Fatalf("row %d: expected %s rank %d, got %s rank %d", i, want.userID, want.rank, got[i].UserID, got[i].Rank)
		}
	}
}

func TestRankingService_EmptyChampionship(t *testing.T) {
	t.Parallel()

	svc := NewRankingService(&fakeMatchRepo{}, &fakePredictionRepo{}, nil)

	got, err := svc.Championship(context.Background(), "c1")
	if err != nil {
		t.Fatalf("Championship error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}

func TestRankingService_CacheHitAndInvalidate(t *testing.T) {
	t.Parallel()

	matchRepo := &fakeMatchRepo{byChampion: map[string][]match.Match{
		"c1": {{ID: "m1", ChampionshipID: "c1"}},
	}}
	predictionRepo := &fakePredictionRepo{ranking: []prediction.RankingRow{
		{UserID: "u1", Points: 10, ExactHits: 1, Predictions: 1},
	}}

	svc := NewRankingService(matchRepo, predictionRepo, cache.NewStore(time.Minute))

	if _, err := svc.Championship(context.Background(), "c1"); err != nil {
		t.Fatalf("first load error: %v", err)
	}

	// A repo failure is invisible while the cache entry lives.
	predictionRepo.rankingErr = fmt.Errorf("db down")
	got, err := svc.Championship(context.Background(), "c1")
	if err != nil {
		t.Fatalf("cached load error: %v", err)
	}
	if len(got) != 1 || got[0].UserID != "u1" {
		t.Fatalf("unexpected cached entries: %v", got)
	}

	svc.Invalidate(context.Background(), "c1")
	if _, err := svc.Championship(context.Background(), "c1"); err == nil {
		t.Fatal("expected reload after invalidation to hit the failing repo")
	}
}
