package domain

import (
	"time"

	mapset "github.com/deckarep/golang-set/v2"
)

type Position string

const (
	PositionGoalkeeper Position = "Goalkeeper"
	PositionDefender   Position = "Defender"
	PositionMidfielder Position = "Midfielder"
	PositionForward    Position = "Forward"
)

func Positions() []Position {
	return []Position{
		PositionGoalkeeper,
		PositionDefender,
		PositionMidfielder,
		PositionForward,
	}
}

var validPositions = func() mapset.Set[Position] {
	s := mapset.NewSet[Position]()
	for _, p := range Positions() {
		s.Add(p)
	}
	return s
}()

func (p Position) Valid() bool {
	return validPositions.Contains(p)
}

type Player struct {
	ID        int
	Name      string
	BirthDate time.Time
	Position  Position
	// TeamID is nil for unassigned players. It may dangle after the
	// referenced team is deleted.
	TeamID           *int
	ParentName       string
	ParentPhone      string
	ParentEmail      string
	MedicalNotes     string
	EmergencyContact string
	EmergencyPhone   string
	Active           bool
	RegistrationDate time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Age is computed from the birth date, it is never stored.
func (p Player) Age(now time.Time) int {
	age := now.Year() - p.BirthDate.Year()
	if now.Month() < p.BirthDate.Month() ||
		(now.Month() == p.BirthDate.Month() && now.Day() < p.BirthDate.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// PlayerPatch enumerates the mutable player columns. The derived age and the
// registration date are deliberately not part of it. Clearing a team
// assignment goes through PlayerStorage.ClearTeam, TeamID here only
// reassigns to another team.
type PlayerPatch struct {
	Name             *string
	BirthDate        *time.Time
	Position         *Position
	TeamID           *int
	ParentName       *string
	ParentPhone      *string
	ParentEmail      *string
	MedicalNotes     *string
	EmergencyContact *string
	EmergencyPhone   *string
	Active           *bool
}

func (p PlayerPatch) Empty() bool {
	return p.Name == nil &&
		p.BirthDate == nil &&
		p.Position == nil &&
		p.TeamID == nil &&
		p.ParentName == nil &&
		p.ParentPhone == nil &&
		p.ParentEmail == nil &&
		p.MedicalNotes == nil &&
		p.EmergencyContact == nil &&
		p.EmergencyPhone == nil &&
		p.Active == nil
}
