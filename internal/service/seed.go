package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/ThomasSalomon/chicosAPP-V2/internal/domain"
	"github.com/ThomasSalomon/chicosAPP-V2/internal/normalize"
)

const (
	seedTeamCount      = 10
	seedPlayersPerTeam = 20
)

type SeedReport struct {
	Teams   int `json:"teams"`
	Players int `json:"players"`
}

type ClearReport struct {
	Players  int `json:"players"`
	Teams    int `json:"teams"`
	Failures int `json:"failures"`
}

var (
	seedTeamNames = []string{
		"Águilas Doradas", "Leones FC", "Tigres del Norte", "Pumas Juniors",
		"Halcones Unidos", "Lobos del Sur", "Panteras Negras", "Toros Bravos",
		"Cóndores FC", "Jaguares Academy",
	}
	seedCategories = []string{
		"Sub-8", "Sub-9", "Sub-10", "Sub-11", "Sub-12",
		"Sub-13", "Sub-14", "Sub-15", "Sub-16", "Sub-17",
	}
	seedFirstNames = []string{
		"Mateo", "Santiago", "Sebastián", "Samuel", "Nicolás", "Daniel",
		"Alejandro", "Emiliano", "Tomás", "Valentina", "Sofía", "Isabella",
		"Camila", "Mariana", "Gabriela", "Lucía", "Andrés", "Juan", "Diego",
		"Martín",
	}
	seedLastNames = []string{
		"García", "Rodríguez", "Martínez", "López", "González", "Hernández",
		"Pérez", "Sánchez", "Ramírez", "Torres", "Flores", "Rivera", "Gómez",
		"Díaz", "Muñoz", "Rojas", "Castro", "Ortiz", "Vargas", "Jiménez",
	}
	seedParentFirstNames = []string{
		"Carlos", "María", "José", "Ana", "Luis", "Carmen", "Jorge", "Elena",
		"Fernando", "Patricia", "Ricardo", "Gloria", "Óscar", "Claudia",
	}
	seedMailDomains = []string{"gmail.com", "hotmail.com", "outlook.com", "yahoo.com"}
)

// positions weighted roughly like a real roster
var seedPositions = []domain.Position{
	domain.PositionGoalkeeper, domain.PositionGoalkeeper,
	domain.PositionDefender, domain.PositionDefender, domain.PositionDefender,
	domain.PositionDefender, domain.PositionDefender, domain.PositionDefender,
	domain.PositionMidfielder, domain.PositionMidfielder, domain.PositionMidfielder,
	domain.PositionMidfielder, domain.PositionMidfielder, domain.PositionMidfielder,
	domain.PositionMidfielder,
	domain.PositionForward, domain.PositionForward, domain.PositionForward,
	domain.PositionForward, domain.PositionForward,
}

// SeedDemoData fills the database with ten demo teams of twenty players
// each. Individual insert failures are logged and skipped so one bad row
// does not abort the whole seed.
func (s *AcademyService) SeedDemoData(ctx context.Context) (SeedReport, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	var report SeedReport
	for i := 0; i < seedTeamCount; i++ {
		coach := seedParentFirstNames[rng.Intn(len(seedParentFirstNames))] + " " +
			seedLastNames[rng.Intn(len(seedLastNames))]
		category := seedCategories[i%len(seedCategories)]
		team, err := s.CreateTeam(ctx, domain.Team{
			Name:        seedTeamNames[i%len(seedTeamNames)],
			Category:    category,
			CoachName:   coach,
			Description: fmt.Sprintf("Equipo %s de la academia", category),
			MaxPlayers:  domain.DefaultMaxPlayers,
		})
		if err != nil {
			s.log.WithError(err).Warn("seed: team insert failed")
			continue
		}
		report.Teams++
		for j := 0; j < seedPlayersPerTeam; j++ {
			player := s.randomPlayer(rng, team)
			if _, err := s.players.CreatePlayer(ctx, player); err != nil {
				s.log.WithError(err).Warn("seed: player insert failed")
				continue
			}
			report.Players++
		}
	}
	s.cache.Invalidate(cacheKeyTeams, cacheKeyPlayers)
	s.log.WithFields(map[string]interface{}{
		"teams":   report.Teams,
		"players": report.Players,
	}).Info("demo data seeded")
	return report, nil
}

func (s *AcademyService) randomPlayer(rng *rand.Rand, team domain.Team) domain.Player {
	first := seedFirstNames[rng.Intn(len(seedFirstNames))]
	last := seedLastNames[rng.Intn(len(seedLastNames))]
	parent := seedParentFirstNames[rng.Intn(len(seedParentFirstNames))] + " " + last

	// birth year matches the team category: a Sub-12 roster holds 10 and
	// 11 year olds
	maxAge := categoryAge(team.Category)
	age := maxAge - 2 + rng.Intn(2)
	birthDate := time.Now().AddDate(-age, 0, -rng.Intn(364)-1)

	teamID := team.ID
	return domain.Player{
		Name:             first + " " + last,
		BirthDate:        birthDate,
		Position:         seedPositions[rng.Intn(len(seedPositions))],
		TeamID:           &teamID,
		ParentName:       parent,
		ParentPhone:      fmt.Sprintf("+57 3%02d %07d", rng.Intn(100), rng.Intn(10000000)),
		ParentEmail:      normalize.Email(parent) + "@" + seedMailDomains[rng.Intn(len(seedMailDomains))],
		EmergencyContact: seedParentFirstNames[rng.Intn(len(seedParentFirstNames))] + " " + last,
		EmergencyPhone:   fmt.Sprintf("+57 3%02d %07d", rng.Intn(100), rng.Intn(10000000)),
		Active:           true,
		RegistrationDate: time.Now(),
	}
}

func categoryAge(category string) int {
	var n int
	if _, err := fmt.Sscanf(category, "Sub-%d", &n); err != nil || n < 4 {
		return 12
	}
	return n
}

// ClearAllData deletes every player and then every team. Rows that fail to
// delete are counted and skipped.
func (s *AcademyService) ClearAllData(ctx context.Context) (ClearReport, error) {
	var report ClearReport
	players, err := s.players.ListPlayers(ctx)
	if err != nil {
		return report, err
	}
	for _, p := range players {
		if err := s.players.DeletePlayer(ctx, p.ID); err != nil {
			s.log.WithError(err).WithFields(map[string]interface{}{"player": p.ID}).Warn("clear: player delete failed")
			report.Failures++
			continue
		}
		report.Players++
	}
	teams, err := s.teams.ListTeams(ctx)
	if err != nil {
		return report, err
	}
	for _, t := range teams {
		if err := s.teams.DeleteTeam(ctx, t.ID); err != nil {
			s.log.WithError(err).WithFields(map[string]interface{}{"team": t.ID}).Warn("clear: team delete failed")
			report.Failures++
			continue
		}
		report.Teams++
	}
	s.cache.Invalidate(cacheKeyTeams, cacheKeyPlayers)
	s.log.WithFields(map[string]interface{}{
		"teams":   report.Teams,
		"players": report.Players,
	}).Info("database cleared")
	return report, nil
}
