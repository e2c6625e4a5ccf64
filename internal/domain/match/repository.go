package match

import (
	"context"
	"time"
)

// SyncUpdate carries the fields the reconciliation routine is allowed to
// overwrite on a match row.
type SyncUpdate struct {
	Status       Status
	HomeScore    *int
	AwayScore    *int
	KickoffAt    time.Time
	HomeCrestURL string
	AwayCrestURL string
}

// Repository describes match persistence needs from use cases.
type Repository interface {
	ListByChampionship(ctx context.Context, championshipID string) ([]Match, error)
	// ListSyncCandidates returns matches of the given championships whose
	// kickoff is on or after the cutoff, regardless of status. Matches older
	// than the cutoff are considered permanently settled.
	ListSyncCandidates(ctx context.Context, championshipIDs []string, kickoffAfter time.Time) ([]Match, error)
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	Create(ctx context.Context, item Match) error
	ApplySyncUpdate(ctx context.Context, matchID string, update SyncUpdate) error
}
