package game

import (
	"fmt"
	"strings"

	"war/meta"
	"war/utils"
)

// Territory is a named land unit held by one army.
type Territory struct {
	Name   string // Display label
	Color  string // Owning army, compared case-sensitively
	Troops int    // Troops stationed, at least meta.MIN_TROOPS at rest
}

// NewTerritory builds a territory, truncating name and color to meta.MAX_NAME_LENGTH.
func NewTerritory(name, color string, troops int) (Territory, error) {
	if troops < meta.MIN_TROOPS {
		return Territory{}, fmt.Errorf("%w: got %d", ErrInvalidTroops, troops)
	}
	return Territory{
		Name:   utils.Truncate(strings.TrimSpace(name), meta.MAX_NAME_LENGTH),
		Color:  utils.Truncate(strings.TrimSpace(color), meta.MAX_NAME_LENGTH),
		Troops: troops,
	}, nil
}

// Input supplies the fields of one territory during manual setup.
// slot is 0-based, total is the registry size.
type Input interface {
	ReadTerritory(slot, total int) (name, color string, troops int, err error)
}

// Registry is the fixed-size, ordered set of territories of one session.
// Only the battle resolver mutates it after construction.
type Registry struct {
	territories []Territory
}

// defaultTerritories is the built-in board used when no manual entry is made.
var defaultTerritories = []Territory{
	{Name: "América", Color: "Verde", Troops: 5},
	{Name: "Europa", Color: "Azul", Troops: 3},
	{Name: "Ásia", Color: "Vermelho", Troops: 4},
	{Name: "África", Color: "Amarelo", Troops: 2},
	{Name: "Oceania", Color: "Azul", Troops: 1},
}

// NewRegistry copies territories into a new registry.
func NewRegistry(territories []Territory) (*Registry, error) {
	if len(territories) == 0 {
		return nil, fmt.Errorf("%w: no territories", ErrConfiguration)
	}
	r := &Registry{territories: make([]Territory, 0, len(territories))}
	for i, t := range territories {
		nt, err := NewTerritory(t.Name, t.Color, t.Troops)
		if err != nil {
			return nil, fmt.Errorf("%w: territory %d: %w", ErrConfiguration, i+1, err)
		}
		r.territories = append(r.territories, nt)
	}
	return r, nil
}

// InitializeDefault fills count slots from the built-in table.
func InitializeDefault(count int) (*Registry, error) {
	if count < 1 || count > len(defaultTerritories) {
		return nil, fmt.Errorf("%w: %d territories requested, built-in table has %d", ErrConfiguration, count, len(defaultTerritories))
	}
	return NewRegistry(defaultTerritories[:count])
}

// InitializeManually reads count territories from in.
func InitializeManually(count int, in Input) (*Registry, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: %d territories requested", ErrConfiguration, count)
	}
	territories := make([]Territory, count)
	for i := range territories {
		name, color, troops, err := in.ReadTerritory(i, count)
		if err != nil {
			return nil, fmt.Errorf("%w: reading territory %d: %w", ErrConfiguration, i+1, err)
		}
		territories[i] = Territory{Name: name, Color: color, Troops: troops}
	}
	return NewRegistry(territories)
}

// Len returns the number of territories.
func (r *Registry) Len() int {
	return len(r.territories)
}

// Get returns a copy of the territory at the 0-based index.
func (r *Registry) Get(index int) (Territory, error) {
	if !r.inRange(index) {
		return Territory{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(r.territories))
	}
	return r.territories[index], nil
}

// All returns a copy of every territory in order.
func (r *Registry) All() []Territory {
	all := make([]Territory, len(r.territories))
	copy(all, r.territories)
	return all
}

// CountColor returns how many territories the given army holds.
func (r *Registry) CountColor(color string) int {
	return utils.CountFunc(r.territories, func(t Territory) bool {
		return t.Color == color
	})
}

func (r *Registry) inRange(index int) bool {
	return index >= 0 && index < len(r.territories)
}
