package championship

import (
	"fmt"
	"strings"
)

const (
	StatusActive   = "ativo"
	StatusFinished = "finalizado"
	StatusArchived = "arquivado"
	StatusPlanned  = "agendado"
)

const (
	CreationManual = "manual"
	CreationAuto   = "auto"
	CreationHybrid = "hybrid"
)

const (
	ScoreTypeFullTime    = "fullTime"
	ScoreTypeRegularTime = "regularTime"
)

// SyncPolicy is the typed slice of the championship settings consumed by the
// reconciliation routine. Presentation settings live in DisplaySettings and are
// never read by sync code.
type SyncPolicy struct {
	CreationType string
	APIScoreType string
	APICode      string
}

// Championship groups matches of one competition.
type Championship struct {
	ID              string
	Name            string
	Status          string
	Policy          SyncPolicy
	DisplaySettings map[string]any
}

// SyncEligible reports whether automated score overwrites apply. Archived and
// finished championships are always excluded, regardless of creation type.
func (c Championship) SyncEligible() bool {
	switch c.Status {
	case StatusArchived, StatusFinished:
		return false
	}
	switch c.Policy.CreationType {
	case CreationAuto, CreationHybrid:
		return true
	default:
		return false
	}
}

func (c Championship) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("championship name is required")
	}
	switch c.Status {
	case StatusActive, StatusFinished, StatusArchived, StatusPlanned:
	default:
		return fmt.Errorf("invalid championship status %q", c.Status)
	}
	switch c.Policy.CreationType {
	case CreationManual, CreationAuto, CreationHybrid:
	default:
		return fmt.Errorf("invalid creation type %q", c.Policy.CreationType)
	}
	switch c.Policy.APIScoreType {
	case ScoreTypeFullTime, ScoreTypeRegularTime:
	default:
		return fmt.Errorf("invalid api score type %q", c.Policy.APIScoreType)
	}

	return nil
}
