package prediction

// Fixed scoring rule of the pool.
const (
	PointsExactScore     = 10
	PointsOutcomeAndDiff = 7
	PointsOutcome        = 5
	PointsMiss           = 0
)

// Score applies the pool's fixed rule to a guess against a final score.
// The caller is responsible for only scoring finished matches.
func Score(guessHome, guessAway, finalHome, finalAway int) int {
	if guessHome == finalHome && guessAway == finalAway {
		return PointsExactScore
	}
	if outcome(guessHome, guessAway) != outcome(finalHome, finalAway) {
		return PointsMiss
	}
	if guessHome-guessAway == finalHome-finalAway {
		return PointsOutcomeAndDiff
	}
	return PointsOutcome
}

func outcome(home, away int) int {
	switch {
	case home > away:
		return 1
	case home < away:
		return -1
	default:
		return 0
	}
}
