package memory

import (
	"time"

	"github.com/futebolao/futebolao/internal/domain/championship"
	"github.com/futebolao/futebolao/internal/domain/match"
)

// SeedChampionships returns the development dataset. The same rows bootstrap
// an empty postgres database on startup.
func SeedChampionships() []championship.Championship {
	return []championship.Championship{
		{
			ID:     "brasileirao-2026",
			Name:   "Brasileirão Série A 2026",
			Status: championship.StatusActive,
			Policy: championship.SyncPolicy{
				CreationType: championship.CreationAuto,
				APIScoreType: championship.ScoreTypeFullTime,
				APICode:      "BSA",
			},
			DisplaySettings: map[string]any{
				"accentColor": "#009c3b",
				"showCrests":  true,
			},
		},
		{
			ID:     "copa-do-brasil-2026",
			Name:   "Copa do Brasil 2026",
			Status: championship.StatusActive,
			Policy: championship.SyncPolicy{
				CreationType: championship.CreationHybrid,
				APIScoreType: championship.ScoreTypeRegularTime,
			},
			DisplaySettings: map[string]any{
				"accentColor": "#ffdf00",
			},
		},
		{
			ID:     "pelada-da-firma-2026",
			Name:   "Pelada da Firma 2026",
			Status: championship.StatusActive,
			Policy: championship.SyncPolicy{
				CreationType: championship.CreationManual,
				APIScoreType: championship.ScoreTypeFullTime,
			},
		},
	}
}

func SeedMatches() []match.Match {
	externalID := int64(537880)
	return []match.Match{
		{
			ID:             "bra-2026-r1-flamengo-palmeiras",
			ChampionshipID: "brasileirao-2026",
			ExternalID:     &externalID,
			HomeTeam:       "CR Flamengo",
			AwayTeam:       "SE Palmeiras",
			KickoffAt:      time.Date(2026, 4, 12, 19, 0, 0, 0, time.UTC),
			Status:         match.StatusScheduled,
		},
		{
			ID:             "pelada-2026-ti-x-rh",
			ChampionshipID: "pelada-da-firma-2026",
			HomeTeam:       "TI",
			AwayTeam:       "RH",
			KickoffAt:      time.Date(2026, 4, 15, 23, 0, 0, 0, time.UTC),
			Status:         match.StatusScheduled,
		},
	}
}
