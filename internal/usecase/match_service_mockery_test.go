package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/futebolao/futebolao/internal/domain/championship"
	"github.com/futebolao/futebolao/internal/domain/match"
	championshipmock "github.com/futebolao/futebolao/internal/mocks/domain/championship"
	matchmock "github.com/futebolao/futebolao/internal/mocks/domain/match"
)

func TestMatchService_ListByChampionship_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	championshipRepo := championshipmock.NewRepository(t)
	matchRepo := matchmock.NewRepository(t)

	service := NewMatchService(championshipRepo, matchRepo, &fakeIDGen{})
	championshipID := "brasileirao-2026"
	expectedMatches := []match.Match{
		{ID: "m1", ChampionshipID: championshipID, HomeTeam: "Flamengo", AwayTeam: "Palmeiras", KickoffAt: time.Date(2026, 9, 6, 19, 0, 0, 0, time.UTC), Status: match.StatusScheduled},
		{ID: "m2", ChampionshipID: championshipID, HomeTeam: "Santos", AwayTeam: "Grêmio", KickoffAt: time.Date(2026, 9, 7, 16, 0, 0, 0, time.UTC), Status: match.StatusScheduled},
	}

	championshipRepo.
		On("GetByID", mock.Anything, championshipID).
		Return(championship.Championship{ID: championshipID, Name: "Brasileirão", Status: championship.StatusActive}, true, nil).
		Once()
	matchRepo.
		On("ListByChampionship", mock.Anything, championshipID).
		Return(expectedMatches, nil).
		Once()

	got, err := service.ListByChampionship(ctx, championshipID)
	if err != nil {
		t.Fatalf("list matches by championship: %v", err)
	}
	if len(got) != len(expectedMatches) {
		t.Fatalf("unexpected match count: got=%d want=%d", len(got), len(expectedMatches))
	}
	if got[0].ID != expectedMatches[0].ID {
		t.Fatalf("unexpected match id: got=%s want=%s", got[0].ID, expectedMatches[0].ID)
	}
}

func TestMatchService_ListByChampionship_ChampionshipNotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	championshipRepo := championshipmock.NewRepository(t)
	matchRepo := matchmock.NewRepository(t)

	service := NewMatchService(championshipRepo, matchRepo, &fakeIDGen{})
	championshipID := "missing-championship"

	championshipRepo.
		On("GetByID", mock.Anything, championshipID).
		Return(championship.Championship{}, false, nil).
		Once()

	_, err := service.ListByChampionship(ctx, championshipID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMatchService_Get_RepositoryErrorUsingMockery(t *testing.T) {
	t.Parallel()

	championshipRepo := championshipmock.NewRepository(t)
	matchRepo := matchmock.NewRepository(t)

	service := NewMatchService(championshipRepo, matchRepo, &fakeIDGen{})
	repoErr := errors.New("connection reset")

	matchRepo.
		On("GetByID", mock.Anything, "m1").
		Return(match.Match{}, false, repoErr).
		Once()

	_, err := service.Get(context.Background(), "m1")
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error, got %v", err)
	}
}
