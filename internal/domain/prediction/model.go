package prediction

import (
	"fmt"
	"time"
)

// Prediction is one user's guessed final score for one match.
type Prediction struct {
	ID        string
	UserID    string
	MatchID   string
	HomeGuess int
	AwayGuess int
	Points    *int
	UpdatedAt time.Time
}

func (p Prediction) Validate() error {
	if p.UserID == "" {
		return fmt.Errorf("prediction user id is required")
	}
	if p.MatchID == "" {
		return fmt.Errorf("prediction match id is required")
	}
	if p.HomeGuess < 0 || p.AwayGuess < 0 {
		return fmt.Errorf("guessed scores cannot be negative")
	}

	return nil
}
