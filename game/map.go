package game

import (
	"fmt"
	"unicode/utf8"

	"war/meta"
	"war/utils"
)

// Territory is a board cell: a display name, the color of the faction holding it, and its garrison.
type Territory struct {
	Name   string // Display label, not an identifier
	Color  string // Owning faction, compared by exact match
	Troops int    // Never negative
}

// NewTerritory validates the setup values of a territory.
func NewTerritory(name, color string, troops int) (Territory, error) {
	t := Territory{Name: name, Color: color, Troops: troops}
	if err := t.Validate(); err != nil {
		return Territory{}, err
	}
	return t, nil
}

// Validate checks the bounds a territory must respect during a session.
func (t Territory) Validate() error {
	if utf8.RuneCountInString(t.Name) > meta.MAX_NAME_LEN {
		return fmt.Errorf("%w: name %q is longer than %d characters", ErrInvalidTerritory, t.Name, meta.MAX_NAME_LEN)
	}
	if t.Color == "" {
		return fmt.Errorf("%w: color must not be empty", ErrInvalidTerritory)
	}
	if utf8.RuneCountInString(t.Color) > meta.MAX_COLOR_LEN {
		return fmt.Errorf("%w: color %q is longer than %d characters", ErrInvalidTerritory, t.Color, meta.MAX_COLOR_LEN)
	}
	if t.Troops < 0 {
		return fmt.Errorf("%w: troops must not be negative, got %d", ErrInvalidTerritory, t.Troops)
	}
	return nil
}

// Board is the ordered set of territories of a session. Its length never changes
// after setup and an index identifies a territory for the whole game.
type Board struct {
	territories []Territory
}

// NewBoard copies the given territories into a fixed-size board.
func NewBoard(territories []Territory) (*Board, error) {
	b := &Board{territories: make([]Territory, len(territories))}
	for i, t := range territories {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("territory %d: %w", i, err)
		}
		b.territories[i] = t
	}
	return b, nil
}

// Len returns the number of territories.
func (b *Board) Len() int {
	return len(b.territories)
}

// At returns the territory stored at index i.
func (b *Board) At(i int) (*Territory, error) {
	if i < 0 || i >= len(b.territories) {
		return nil, fmt.Errorf("%w: %d is outside [0, %d)", ErrInvalidIndex, i, len(b.territories))
	}
	return &b.territories[i], nil
}

// Territories returns a copy of the board contents, in board order.
func (b *Board) Territories() []Territory {
	out := make([]Territory, len(b.territories))
	copy(out, b.territories)
	return out
}

// Owned counts the territories held by color.
func (b *Board) Owned(color string) int {
	return utils.Count(b.territories, func(t Territory) bool {
		return t.Color == color
	})
}
