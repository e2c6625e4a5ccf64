package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/futebolao/futebolao/internal/domain/championship"
)

type ChampionshipRepository struct {
	mu     sync.RWMutex
	items  map[string]championship.Championship
	orders []string
}

func NewChampionshipRepository(items []championship.Championship) *ChampionshipRepository {
	byID := make(map[string]championship.Championship, len(items))
	orders := make([]string, 0, len(items))
	for _, item := range items {
		byID[item.ID] = item
		orders = append(orders, item.ID)
	}

	return &ChampionshipRepository{
		items:  byID,
		orders: orders,
	}
}

func (r *ChampionshipRepository) List(_ context.Context) ([]championship.Championship, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]championship.Championship, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *ChampionshipRepository) GetByID(_ context.Context, championshipID string) (championship.Championship, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[championshipID]
	return item, ok, nil
}

func (r *ChampionshipRepository) Create(_ context.Context, item championship.Championship) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; exists {
		return fmt.Errorf("duplicate championship id: %s", item.ID)
	}
	r.items[item.ID] = item
	r.orders = append(r.orders, item.ID)
	return nil
}

func (r *ChampionshipRepository) Update(_ context.Context, item championship.Championship) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		return fmt.Errorf("championship not found: %s", item.ID)
	}
	r.items[item.ID] = item
	return nil
}
