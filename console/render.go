package console

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"war/game"
	"war/meta"
)

const rule = "================================================================"

func (c *Console) heading(title string) {
	fmt.Fprintln(c.out, rule)
	fmt.Fprintf(c.out, "%*s\n", (len(rule)+len(title))/2, title)
	fmt.Fprintln(c.out, rule)
}

// RenderBanner prints the session header.
func (c *Console) RenderBanner() {
	c.heading("WAR - territorial conquest")
	fmt.Fprintln(c.out)
}

// RenderMap prints every territory as a table.
func (c *Console) RenderMap(territories []game.Territory) {
	c.heading("MAP")
	tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTERRITORY\tARMY\tTROOPS")
	for i, t := range territories {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", i+1, t.Name, t.Color, t.Troops)
	}
	tw.Flush()
	fmt.Fprintln(c.out)
}

// RenderMenu prints the main menu. The mission entry is shown only when enabled.
func (c *Console) RenderMenu(missions bool) {
	fmt.Fprintln(c.out, "[1] Attack")
	if missions {
		fmt.Fprintln(c.out, "[2] Check mission")
	}
	fmt.Fprintln(c.out, "[0] Quit")
	fmt.Fprintln(c.out)
}

// RenderMission prints the secret mission drawn for the player.
func (c *Console) RenderMission(m game.Mission, playerColor string) {
	fmt.Fprintf(c.out, "You command the %s army. Your mission: %s.\n\n", playerColor, m)
}

// RenderOutcome narrates one battle.
func (c *Console) RenderOutcome(o game.BattleOutcome) {
	c.heading("BATTLE")
	fmt.Fprintf(c.out, "Attacker: %s (%s)\n", o.AttackerName, o.AttackerColor)
	fmt.Fprintf(c.out, "Defender: %s (%s)\n\n", o.DefenderName, o.DefenderColor)
	fmt.Fprintf(c.out, "Attack die:  %d\n", o.AttackRoll)
	fmt.Fprintf(c.out, "Defense die: %d\n\n", o.DefenseRoll)
	switch {
	case o.Conquered:
		fmt.Fprintln(c.out, "The attacker won the battle.")
		fmt.Fprintf(c.out, "TERRITORY CONQUERED! %s now belongs to the %s army.\n", o.DefenderName, o.AttackerColor)
	case o.AttackerWon:
		fmt.Fprintln(c.out, "The attacker won the battle.")
		fmt.Fprintf(c.out, "The defender lost 1 troop, %d remaining.\n", o.DefenderTroops)
	default:
		fmt.Fprintln(c.out, "The defender held. Ties favour the defense.")
	}
	fmt.Fprintln(c.out, rule)
}

// RenderMissionStatus reports the result of a mission check.
func (c *Console) RenderMissionStatus(m game.Mission, done bool) {
	if done {
		fmt.Fprintf(c.out, "VICTORY! Mission complete: %s.\n", m)
		return
	}
	fmt.Fprintf(c.out, "Mission not complete yet: %s.\n", m)
}

// RenderError prints the user-facing message for err.
func (c *Console) RenderError(err error) {
	fmt.Fprintf(c.out, "Error: %s\n", Message(err))
}

// RenderInvalidOption reports a menu choice that does not exist.
func (c *Console) RenderInvalidOption() {
	fmt.Fprintln(c.out, "Invalid option, try again.")
}

// RenderGoodbye prints the closing line.
func (c *Console) RenderGoodbye() {
	fmt.Fprintln(c.out, "Leaving the game. See you at the next battle!")
}

// Message maps a game error to the text shown to the player.
func Message(err error) string {
	switch {
	case errors.Is(err, game.ErrSelfAttack):
		return "a territory cannot attack itself."
	case errors.Is(err, game.ErrIndexOutOfRange):
		return "invalid territory, pick one from the map."
	case errors.Is(err, game.ErrInsufficientTroops):
		return fmt.Sprintf("the attacking territory needs at least %d troops (one always stays behind).", meta.MIN_ATTACK_TROOPS)
	case errors.Is(err, game.ErrFriendlyFire):
		return "you cannot attack a territory of your own color."
	case errors.Is(err, game.ErrUnknownMission):
		return "this mission is not recognised."
	case errors.Is(err, game.ErrConfiguration):
		return "the map could not be set up: " + strings.TrimPrefix(err.Error(), game.ErrConfiguration.Error()+": ")
	default:
		return err.Error()
	}
}
