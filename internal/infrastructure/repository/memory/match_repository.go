package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/futebolao/futebolao/internal/domain/match"
)

type MatchRepository struct {
	mu    sync.RWMutex
	items map[string]match.Match
}

func NewMatchRepository(items []match.Match) *MatchRepository {
	byID := make(map[string]match.Match, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	return &MatchRepository{items: byID}
}

func (r *MatchRepository) ListByChampionship(_ context.Context, championshipID string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, item := range r.items {
		if item.ChampionshipID == championshipID {
			out = append(out, item)
		}
	}
	sortMatches(out)
	return out, nil
}

func (r *MatchRepository) ListSyncCandidates(_ context.Context, championshipIDs []string, kickoffAfter time.Time) ([]match.Match, error) {
	allowed := make(map[string]bool, len(championshipIDs))
	for _, id := range championshipIDs {
		allowed[id] = true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, item := range r.items {
		if !allowed[item.ChampionshipID] || item.ExternalID == nil {
			continue
		}
		if item.KickoffAt.Before(kickoffAfter) {
			continue
		}
		out = append(out, item)
	}
	sortMatches(out)
	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[matchID]
	return item, ok, nil
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; exists {
		return fmt.Errorf("duplicate match id: %s", item.ID)
	}
	r.items[item.ID] = item
	return nil
}

func (r *MatchRepository) ApplySyncUpdate(_ context.Context, matchID string, update match.SyncUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[matchID]
	if !ok {
		return fmt.Errorf("match not found: %s", matchID)
	}

	item.Status = update.Status
	item.HomeScore = update.HomeScore
	item.AwayScore = update.AwayScore
	if !update.KickoffAt.IsZero() {
		item.KickoffAt = update.KickoffAt
	}
	if update.HomeCrestURL != "" {
		item.HomeCrestURL = update.HomeCrestURL
	}
	if update.AwayCrestURL != "" {
		item.AwayCrestURL = update.AwayCrestURL
	}
	r.items[matchID] = item
	return nil
}

func sortMatches(items []match.Match) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].KickoffAt.Equal(items[j].KickoffAt) {
			return items[i].KickoffAt.Before(items[j].KickoffAt)
		}
		return items[i].ID < items[j].ID
	})
}
