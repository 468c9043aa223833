package game

import (
	"fmt"

	"war/meta"
)

// BattleOutcome describes one resolved attack.
type BattleOutcome struct {
	Attacker       int    // 0-based index of the attacking territory
	Defender       int    // 0-based index of the defending territory
	AttackerName   string
	DefenderName   string
	AttackerColor  string
	DefenderColor  string // Owner before the battle
	AttackRoll     int
	DefenseRoll    int
	AttackerWon    bool // Attack roll beat the defense roll
	Conquered      bool // Defender changed hands
	AttackerTroops int  // Attacker troops after the battle
	DefenderTroops int  // Defender troops after the battle
}

// ResolveAttack fights one battle between two territories of r.
// A rejected attack returns one of ErrSelfAttack, ErrIndexOutOfRange,
// ErrInsufficientTroops or ErrFriendlyFire and leaves r unchanged.
func ResolveAttack(r *Registry, attacker, defender int, rng Source) (BattleOutcome, error) {
	if attacker == defender {
		return BattleOutcome{}, ErrSelfAttack
	}
	if !r.inRange(attacker) || !r.inRange(defender) {
		return BattleOutcome{}, fmt.Errorf("%w: attacker %d, defender %d, size %d", ErrIndexOutOfRange, attacker, defender, r.Len())
	}
	att := &r.territories[attacker]
	def := &r.territories[defender]
	if att.Troops < meta.MIN_ATTACK_TROOPS {
		return BattleOutcome{}, fmt.Errorf("%w: %s has %d", ErrInsufficientTroops, att.Name, att.Troops)
	}
	if att.Color == def.Color {
		return BattleOutcome{}, fmt.Errorf("%w: %s and %s are both %s", ErrFriendlyFire, att.Name, def.Name, att.Color)
	}

	outcome := BattleOutcome{
		Attacker:      attacker,
		Defender:      defender,
		AttackerName:  att.Name,
		DefenderName:  def.Name,
		AttackerColor: att.Color,
		DefenderColor: def.Color,
		AttackRoll:    rollDie(rng),
		DefenseRoll:   rollDie(rng),
	}

	// Ties go to the defender
	if outcome.AttackRoll > outcome.DefenseRoll {
		outcome.AttackerWon = true
		def.Troops--
		if def.Troops == 0 {
			// One attacking troop moves in to hold the territory
			def.Color = att.Color
			def.Troops = meta.MIN_TROOPS
			att.Troops--
			outcome.Conquered = true
		}
	}

	outcome.AttackerTroops = att.Troops
	outcome.DefenderTroops = def.Troops
	return outcome, nil
}
