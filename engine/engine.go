package engine

import "war/game"

// Menu options understood by Run.
const (
	OptionQuit    = 0
	OptionAttack  = 1
	OptionMission = 2
)

type Result int

const (
	Quit Result = iota
	Victory
)

func (r Result) String() string {
	if r == Victory {
		return "victory"
	}
	return "quit"
}

// UI is the console the session reads commands from and renders to.
type UI interface {
	ReadOption() (int, error)
	ReadAttack(total int) (attacker, defender int, err error)
	Pause()

	RenderMap(territories []game.Territory)
	RenderMenu(missions bool)
	RenderMission(m game.Mission, playerColor string)
	RenderOutcome(o game.BattleOutcome)
	RenderMissionStatus(m game.Mission, done bool)
	RenderError(err error)
	RenderInvalidOption()
	RenderGoodbye()
}
