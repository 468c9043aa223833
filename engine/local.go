package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"war/game"
	"war/metrics"
	"war/utils"
)

var ErrNoMission = errors.New("missions are disabled")

type Option func(s *Session)

func WithMission(mission game.Mission, playerColor string) Option {
	return func(s *Session) {
		s.mission = &mission
		s.playerColor = playerColor
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(s *Session) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

func WithSessionID(id string) Option {
	return func(s *Session) {
		if id != "" {
			s.ID = id
		}
	}
}

// Session is one game against a single registry. It is not safe for concurrent use.
type Session struct {
	ID          string
	Registry    *game.Registry
	rng         game.Source
	mission     *game.Mission
	playerColor string
	metrics     metrics.Collector
	turn        int
	won         bool
}

func NewSession(registry *game.Registry, rng game.Source, options ...Option) *Session {
	s := &Session{ // Default values
		ID:       uuid.New().String(),
		Registry: registry,
		rng:      rng,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	s.metrics.Start(s.ID)
	return s
}

// Mission returns the player's mission, if missions are enabled.
func (s *Session) Mission() (game.Mission, bool) {
	if s.mission == nil {
		return game.Mission{}, false
	}
	return *s.mission, true
}

func (s *Session) Won() bool {
	return s.won
}

func (s *Session) Metrics() metrics.Collector {
	return s.metrics
}

// Attack resolves a battle between two 1-based map positions.
func (s *Session) Attack(attackerPos, defenderPos int) (game.BattleOutcome, error) {
	n := s.Registry.Len()
	if attackerPos < 1 || attackerPos > n || defenderPos < 1 || defenderPos > n {
		s.metrics.AddRejected()
		log.Info().Str("session", s.ID).Msgf("rejected attack %d -> %d: positions must be in [1, %d]", attackerPos, defenderPos, n)
		return game.BattleOutcome{}, fmt.Errorf("%w: positions must be between 1 and %d", game.ErrIndexOutOfRange, n)
	}

	outcome, err := game.ResolveAttack(s.Registry, attackerPos-1, defenderPos-1, s.rng)
	if err != nil {
		s.metrics.AddRejected()
		log.Info().Str("session", s.ID).Err(err).Msgf("rejected attack %d -> %d", attackerPos, defenderPos)
		return game.BattleOutcome{}, err
	}

	s.turn++
	s.metrics.AddBattle(s.turn, outcome)
	log.Debug().
		Str("session", s.ID).
		Int("turn", s.turn).
		Str("attacker", outcome.AttackerName).
		Str("defender", outcome.DefenderName).
		Int("attack_roll", outcome.AttackRoll).
		Int("defense_roll", outcome.DefenseRoll).
		Bool("attacker_won", outcome.AttackerWon).
		Msg("battle resolved")
	if outcome.Conquered {
		log.Info().Str("session", s.ID).Msgf("%s conquered by %s", outcome.DefenderName, outcome.AttackerColor)
	}
	return outcome, nil
}

// CheckMission evaluates the player's mission against the current map.
func (s *Session) CheckMission() (bool, error) {
	if s.mission == nil {
		return false, ErrNoMission
	}
	done, err := game.Evaluate(s.Registry, *s.mission, s.playerColor)
	if err != nil {
		return false, err
	}
	if done {
		s.won = true
		s.metrics.SetMissionDone(true)
		log.Info().Str("session", s.ID).Msgf("mission complete: %s", s.mission)
	}
	return done, nil
}

// Run executes the menu loop until the player quits, wins, or input ends.
func (s *Session) Run(ui UI) (Result, error) {
	options := []int{OptionQuit, OptionAttack}
	if s.mission != nil {
		options = append(options, OptionMission)
		ui.RenderMission(*s.mission, s.playerColor)
	}

	log.Info().Str("session", s.ID).Msgf("session started with %d territories", s.Registry.Len())

	for {
		ui.RenderMap(s.Registry.All())
		ui.RenderMenu(s.mission != nil)

		option, err := ui.ReadOption()
		if errors.Is(err, io.EOF) {
			option = OptionQuit
		} else if err != nil {
			return Quit, fmt.Errorf("failed to read menu option: %w", err)
		}
		if utils.FindIndex(options, option) < 0 {
			ui.RenderInvalidOption()
			ui.Pause()
			continue
		}

		switch option {
		case OptionQuit:
			ui.RenderGoodbye()
			log.Info().Str("session", s.ID).Msgf("session ended after %d battles", s.turn)
			return Quit, nil
		case OptionAttack:
			attacker, defender, err := ui.ReadAttack(s.Registry.Len())
			if errors.Is(err, io.EOF) {
				ui.RenderGoodbye()
				return Quit, nil
			} else if err != nil {
				return Quit, fmt.Errorf("failed to read attack: %w", err)
			}
			outcome, err := s.Attack(attacker, defender)
			if err != nil {
				ui.RenderError(err)
			} else {
				ui.RenderOutcome(outcome)
			}
		case OptionMission:
			done, err := s.CheckMission()
			if err != nil {
				ui.RenderError(err)
				break
			}
			ui.RenderMissionStatus(*s.mission, done)
			if done {
				ui.RenderMap(s.Registry.All())
				log.Info().Str("session", s.ID).Msgf("session won after %d battles", s.turn)
				return Victory, nil
			}
		}
		ui.Pause()
	}
}
