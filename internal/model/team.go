package model

import "strconv"

// MaxTeams is the largest team count that still gives every team a one-digit marker
const MaxTeams = 16

// MaxCells bounds rows*columns so a grid always fits in memory and the product cannot overflow
const MaxCells = 1 << 16

// EmptyMarker is how an empty cell is displayed
const EmptyMarker = '_'

// Team identifies a side by its index in the turn cycle
type Team int

// String returns the display name of the team, e.g. "Team 1"
func (t Team) String() string {
	return "Team " + strconv.Itoa(int(t))
}

// Marker returns the single hexadecimal digit used to display the team
func (t Team) Marker() rune {
	if t < 0 || t >= MaxTeams {
		return '?'
	}
	return rune(strconv.FormatInt(int64(t), 16)[0])
}

// Cell is either empty or occupied by exactly one team.
// The zero value is an empty cell.
type Cell struct {
	team     Team
	occupied bool
}

// EmptyCell returns an unoccupied cell
func EmptyCell() Cell {
	return Cell{}
}

// OccupiedBy returns a cell holding the given team's token
func OccupiedBy(team Team) Cell {
	return Cell{team: team, occupied: true}
}

// IsEmpty returns true if no team occupies the cell
func (c Cell) IsEmpty() bool {
	return !c.occupied
}

// Team returns the occupying team, or false if the cell is empty
func (c Cell) Team() (Team, bool) {
	return c.team, c.occupied
}

// Is returns true if the cell is occupied by the given team
func (c Cell) Is(team Team) bool {
	return c.occupied && c.team == team
}

// Marker returns the display marker for the cell
func (c Cell) Marker() rune {
	if !c.occupied {
		return EmptyMarker
	}
	return c.team.Marker()
}
