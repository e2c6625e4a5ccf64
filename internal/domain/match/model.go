package match

import (
	"strings"
	"time"
)

// Status is the closed local lifecycle vocabulary. The upstream provider uses a
// much wider set of states; MapUpstreamStatus collapses it to these three.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusFinished  Status = "finished"
)

// Match is one fixture of a championship. ExternalID is the upstream
// provider's identifier; matches entered by hand have none and can never be
// synchronized.
type Match struct {
	ID             string
	ChampionshipID string
	ExternalID     *int64
	HomeTeam       string
	AwayTeam       string
	HomeCrestURL   string
	AwayCrestURL   string
	KickoffAt      time.Time
	Status         Status
	HomeScore      *int
	AwayScore      *int
}

// MapUpstreamStatus collapses the upstream status vocabulary to the local
// three-state one. Unknown or not-started states (SCHEDULED, TIMED, POSTPONED,
// SUSPENDED, CANCELLED, ...) all map to scheduled.
func MapUpstreamStatus(value string) Status {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "IN_PLAY", "PAUSED", "LIVE":
		return StatusLive
	case "FINISHED", "AWARDED":
		return StatusFinished
	default:
		return StatusScheduled
	}
}

func (m Match) Syncable() bool {
	return m.ExternalID != nil && *m.ExternalID > 0
}

// TotalGoals treats missing scores as zero, matching how the reconciliation
// rules compare goal counts.
func (m Match) TotalGoals() int {
	return valueOrZero(m.HomeScore) + valueOrZero(m.AwayScore)
}

func (m Match) Started(now time.Time) bool {
	return !m.KickoffAt.IsZero() && !now.Before(m.KickoffAt)
}

func valueOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
