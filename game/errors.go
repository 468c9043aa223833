package game

import "errors"

// Game errors
var (
	ErrConfiguration      = errors.New("registry cannot be constructed")
	ErrInvalidTroops      = errors.New("territory must hold at least one troop")
	ErrSelfAttack         = errors.New("a territory cannot attack itself")
	ErrIndexOutOfRange    = errors.New("territory index out of range")
	ErrInsufficientTroops = errors.New("attacking territory needs at least two troops")
	ErrFriendlyFire       = errors.New("cannot attack a territory of the same color")
	ErrUnknownMission     = errors.New("unknown mission")
)
