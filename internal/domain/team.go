package domain

import "time"

const DefaultMaxPlayers = 25

type Team struct {
	ID          int
	Name        string
	Category    string
	CoachName   string
	Description string
	MaxPlayers  int
	// PlayerCount is derived for listings, never stored.
	PlayerCount int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TeamPatch enumerates the mutable team columns. A nil field is left
// untouched by Update.
type TeamPatch struct {
	Name        *string
	Category    *string
	CoachName   *string
	Description *string
	MaxPlayers  *int
}

func (p TeamPatch) Empty() bool {
	return p.Name == nil &&
		p.Category == nil &&
		p.CoachName == nil &&
		p.Description == nil &&
		p.MaxPlayers == nil
}
