package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/futebolao/futebolao/internal/domain/championship"
	"github.com/futebolao/futebolao/internal/domain/match"
	idgen "github.com/futebolao/futebolao/internal/platform/id"
)

type CreateMatchInput struct {
	ChampionshipID string
	ExternalID     *int64
	HomeTeam       string
	AwayTeam       string
	HomeCrestURL   string
	AwayCrestURL   string
	KickoffAt      time.Time
}

// MatchService covers manual fixture entry and read paths. Status and score
// changes on synced matches go through SyncService, not here.
type MatchService struct {
	championshipRepo championship.Repository
	matchRepo        match.Repository
	idGen            idgen.Generator
}

func NewMatchService(championshipRepo championship.Repository, matchRepo match.Repository, idGen idgen.Generator) *MatchService {
	return &MatchService{
		championshipRepo: championshipRepo,
		matchRepo:        matchRepo,
		idGen:            idGen,
	}
}

func (s *MatchService) ListByChampionship(ctx context.Context, championshipID string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListByChampionship")
	defer span.End()

	championshipID = strings.TrimSpace(championshipID)
	if championshipID == "" {
		return nil, fmt.Errorf("%w: championship id is required", ErrInvalidInput)
	}

	_, exists, err := s.championshipRepo.GetByID(ctx, championshipID)
	if err != nil {
		return nil, fmt.Errorf("get championship for match list: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: championship=%s", ErrNotFound, championshipID)
	}

	items, err := s.matchRepo.ListByChampionship(ctx, championshipID)
	if err != nil {
		return nil, fmt.Errorf("list matches by championship: %w", err)
	}
	return items, nil
}

func (s *MatchService) Get(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Get")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match by id: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return item, nil
}

func (s *MatchService) Create(ctx context.Context, input CreateMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Create")
	defer span.End()

	input.ChampionshipID = strings.TrimSpace(input.ChampionshipID)
	input.HomeTeam = strings.TrimSpace(input.HomeTeam)
	input.AwayTeam = strings.TrimSpace(input.AwayTeam)
	if input.ChampionshipID == "" {
		return match.Match{}, fmt.Errorf("%w: championship id is required", ErrInvalidInput)
	}
	if input.HomeTeam == "" || input.AwayTeam == "" {
		return match.Match{}, fmt.Errorf("%w: home and away team names are required", ErrInvalidInput)
	}
	if input.KickoffAt.IsZero() {
		return match.Match{}, fmt.Errorf("%w: kickoff time is required", ErrInvalidInput)
	}
	if input.ExternalID != nil && *input.ExternalID <= 0 {
		return match.Match{}, fmt.Errorf("%w: external id must be positive", ErrInvalidInput)
	}

	champ, exists, err := s.championshipRepo.GetByID(ctx, input.ChampionshipID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get championship for match create: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: championship=%s", ErrNotFound, input.ChampionshipID)
	}
	if champ.Policy.CreationType == championship.CreationAuto {
		return match.Match{}, fmt.Errorf("%w: championship is fully automated, matches come from the upstream provider", ErrInvalidInput)
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}

	item := match.Match{
		ID:             id,
		ChampionshipID: input.ChampionshipID,
		ExternalID:     input.ExternalID,
		HomeTeam:       input.HomeTeam,
		AwayTeam:       input.AwayTeam,
		HomeCrestURL:   strings.TrimSpace(input.HomeCrestURL),
		AwayCrestURL:   strings.TrimSpace(input.AwayCrestURL),
		KickoffAt:      input.KickoffAt.UTC(),
		Status:         match.StatusScheduled,
	}
	if err := s.matchRepo.Create(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}
	return item, nil
}
