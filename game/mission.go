package game

import (
	"fmt"

	"war/meta"
)

// MissionKind identifies a family of victory conditions.
type MissionKind int

const (
	EliminateColorMission MissionKind = iota + 1
	ConquerCountMission
)

// Mission is a secret victory condition checked against the registry.
type Mission struct {
	Kind      MissionKind
	Color     string // Target army of EliminateColorMission
	Threshold int    // Territories required by ConquerCountMission
}

// EliminateColor is satisfied once no territory is held by color.
func EliminateColor(color string) Mission {
	return Mission{Kind: EliminateColorMission, Color: color}
}

// ConquerCount is satisfied once the player holds at least threshold territories.
func ConquerCount(threshold int) Mission {
	return Mission{Kind: ConquerCountMission, Threshold: threshold}
}

// Missions returns the set drawn from by SelectRandomMission.
func Missions() []Mission {
	return []Mission{
		EliminateColor(meta.ELIMINATE_COLOR),
		ConquerCount(meta.CONQUER_COUNT),
	}
}

// SelectRandomMission draws one of Missions uniformly.
func SelectRandomMission(rng Source) Mission {
	missions := Missions()
	return missions[rng.Intn(len(missions))]
}

// Evaluate reports whether m is satisfied for the player's army on r.
// Unrecognised missions are never satisfied and return ErrUnknownMission.
func Evaluate(r *Registry, m Mission, playerColor string) (bool, error) {
	switch m.Kind {
	case EliminateColorMission:
		return r.CountColor(m.Color) == 0, nil
	case ConquerCountMission:
		return r.CountColor(playerColor) >= m.Threshold, nil
	default:
		return false, fmt.Errorf("%w: kind %d", ErrUnknownMission, m.Kind)
	}
}

func (m Mission) String() string {
	switch m.Kind {
	case EliminateColorMission:
		return fmt.Sprintf("destroy the %s army", m.Color)
	case ConquerCountMission:
		return fmt.Sprintf("hold %d territories", m.Threshold)
	default:
		return "unknown mission"
	}
}
