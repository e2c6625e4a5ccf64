package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/futebolao/futebolao/internal/domain/championship"
	idgen "github.com/futebolao/futebolao/internal/platform/id"
)

type CreateChampionshipInput struct {
	Name            string
	Status          string
	CreationType    string
	APIScoreType    string
	APICode         string
	DisplaySettings map[string]any
}

type UpdateChampionshipInput struct {
	ChampionshipID  string
	Name            *string
	Status          *string
	CreationType    *string
	APIScoreType    *string
	APICode         *string
	DisplaySettings map[string]any
}

// ChampionshipService covers the admin-facing championship lifecycle. Read
// paths are public; writes are gated at the transport layer.
type ChampionshipService struct {
	repo  championship.Repository
	idGen idgen.Generator
	now   func() time.Time
}

func NewChampionshipService(repo championship.Repository, idGen idgen.Generator) *ChampionshipService {
	return &ChampionshipService{
		repo:  repo,
		idGen: idGen,
		now:   time.Now,
	}
}

func (s *ChampionshipService) List(ctx context.Context) ([]championship.Championship, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChampionshipService.List")
	defer span.End()

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list championships: %w", err)
	}
	return items, nil
}

func (s *ChampionshipService) Get(ctx context.Context, championshipID string) (championship.Championship, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChampionshipService.Get")
	defer span.End()

	championshipID = strings.TrimSpace(championshipID)
	if championshipID == "" {
		return championship.Championship{}, fmt.Errorf("%w: championship id is required", ErrInvalidInput)
	}

	item, exists, err := s.repo.GetByID(ctx, championshipID)
	if err != nil {
		return championship.Championship{}, fmt.Errorf("get championship by id: %w", err)
	}
	if !exists {
		return championship.Championship{}, fmt.Errorf("%w: championship=%s", ErrNotFound, championshipID)
	}
	return item, nil
}

func (s *ChampionshipService) Create(ctx context.Context, input CreateChampionshipInput) (championship.Championship, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChampionshipService.Create")
	defer span.End()

	id, err := s.idGen.NewID()
	if err != nil {
		return championship.Championship{}, fmt.Errorf("generate championship id: %w", err)
	}

	item := championship.Championship{
		ID:     id,
		Name:   strings.TrimSpace(input.Name),
		Status: defaultString(strings.TrimSpace(input.Status), championship.StatusPlanned),
		Policy: championship.SyncPolicy{
			CreationType: defaultString(strings.TrimSpace(input.CreationType), championship.CreationManual),
			APIScoreType: defaultString(strings.TrimSpace(input.APIScoreType), championship.ScoreTypeFullTime),
			APICode:      strings.TrimSpace(input.APICode),
		},
		DisplaySettings: input.DisplaySettings,
	}
	if err := item.Validate(); err != nil {
		return championship.Championship{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return championship.Championship{}, fmt.Errorf("create championship: %w", err)
	}
	return item, nil
}

func (s *ChampionshipService) Update(ctx context.Context, input UpdateChampionshipInput) (championship.Championship, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChampionshipService.Update")
	defer span.End()

	item, err := s.Get(ctx, input.ChampionshipID)
	if err != nil {
		return championship.Championship{}, err
	}

	if input.Name != nil {
		item.Name = strings.TrimSpace(*input.Name)
	}
	if input.Status != nil {
		item.Status = strings.TrimSpace(*input.Status)
	}
	if input.CreationType != nil {
		item.Policy.CreationType = strings.TrimSpace(*input.CreationType)
	}
	if input.APIScoreType != nil {
		item.Policy.APIScoreType = strings.TrimSpace(*input.APIScoreType)
	}
	if input.APICode != nil {
		item.Policy.APICode = strings.TrimSpace(*input.APICode)
	}
	if input.DisplaySettings != nil {
		item.DisplaySettings = input.DisplaySettings
	}
	if err := item.Validate(); err != nil {
		return championship.Championship{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return championship.Championship{}, fmt.Errorf("update championship: %w", err)
	}
	return item, nil
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
