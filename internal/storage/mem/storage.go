package mem

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ThomasSalomon/chicosAPP-V2/internal/domain"
	"github.com/ThomasSalomon/chicosAPP-V2/internal/normalize"
	"github.com/ThomasSalomon/chicosAPP-V2/internal/storage"

	"github.com/sirupsen/logrus"
)

// Storage is the fixture backend for hosted environments without a writable
// filesystem. Reads serve a fixed data set; mutations are acknowledged but
// never persisted, so the fixtures survive any amount of traffic.
type Storage struct {
	mu     sync.Mutex
	nextID int
	log    *logrus.Entry

	teams   []domain.Team
	players []domain.Player
}

var _ storage.TeamStorage = (*Storage)(nil)
var _ storage.PlayerStorage = (*Storage)(nil)

func New(l *logrus.Logger) *Storage {
	log := l.WithFields(map[string]interface{}{
		"from": "fixture-storage",
	})
	log.Warn("using in-memory fixture storage, writes are not persisted")
	return &Storage{
		nextID:  1000,
		log:     log,
		teams:   fixtureTeams(),
		players: fixturePlayers(),
	}
}

func (s *Storage) claimID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	return s.nextID
}

func (s *Storage) GetTeam(_ context.Context, id int) (domain.Team, error) {
	for _, team := range s.teams {
		if team.ID == id {
			return team, nil
		}
	}
	return domain.Team{}, storage.ErrNotFound
}

func (s *Storage) CreateTeam(_ context.Context, team domain.Team) (domain.Team, error) {
	team.ID = s.claimID()
	now := time.Now()
	team.CreatedAt = now
	team.UpdatedAt = now
	return team, nil
}

func (s *Storage) UpdateTeam(ctx context.Context, id int, _ domain.TeamPatch) error {
	_, err := s.GetTeam(ctx, id)
	return err
}

func (s *Storage) DeleteTeam(ctx context.Context, id int) error {
	_, err := s.GetTeam(ctx, id)
	return err
}

func (s *Storage) ListTeams(_ context.Context) ([]domain.Team, error) {
	teams := append([]domain.Team(nil), s.teams...)
	sort.SliceStable(teams, func(i, j int) bool {
		return teams[i].CreatedAt.After(teams[j].CreatedAt)
	})
	return teams, nil
}

func (s *Storage) ListTeamsByCategory(_ context.Context, category string) ([]domain.Team, error) {
	var teams []domain.Team
	for _, team := range s.teams {
		if team.Category == category {
			teams = append(teams, team)
		}
	}
	sortTeamsByName(teams)
	return teams, nil
}

func (s *Storage) GetPlayer(_ context.Context, id int) (domain.Player, error) {
	for _, player := range s.players {
		if player.ID == id {
			return player, nil
		}
	}
	return domain.Player{}, storage.ErrNotFound
}

func (s *Storage) CreatePlayer(_ context.Context, player domain.Player) (domain.Player, error) {
	player.ID = s.claimID()
	now := time.Now()
	player.CreatedAt = now
	player.UpdatedAt = now
	return player, nil
}

func (s *Storage) UpdatePlayer(ctx context.Context, id int, _ domain.PlayerPatch) error {
	_, err := s.GetPlayer(ctx, id)
	return err
}

func (s *Storage) DeletePlayer(ctx context.Context, id int) error {
	_, err := s.GetPlayer(ctx, id)
	return err
}

func (s *Storage) ListPlayers(_ context.Context) ([]domain.Player, error) {
	players := append([]domain.Player(nil), s.players...)
	sortPlayersByName(players)
	return players, nil
}

func (s *Storage) ListByTeam(_ context.Context, teamID int) ([]domain.Player, error) {
	var players []domain.Player
	for _, player := range s.players {
		if player.TeamID != nil && *player.TeamID == teamID {
			players = append(players, player)
		}
	}
	sortPlayersByName(players)
	return players, nil
}

func (s *Storage) ListUnassigned(_ context.Context) ([]domain.Player, error) {
	var players []domain.Player
	for _, player := range s.players {
		if player.TeamID == nil {
			players = append(players, player)
		}
	}
	sortPlayersByName(players)
	return players, nil
}

func (s *Storage) ListByBirthDateRange(_ context.Context, from, to time.Time) ([]domain.Player, error) {
	var players []domain.Player
	for _, player := range s.players {
		if player.BirthDate.Before(from) || player.BirthDate.After(to) {
			continue
		}
		players = append(players, player)
	}
	sort.SliceStable(players, func(i, j int) bool {
		if !players[i].BirthDate.Equal(players[j].BirthDate) {
			return players[i].BirthDate.After(players[j].BirthDate)
		}
		return players[i].Name < players[j].Name
	})
	return players, nil
}

func (s *Storage) AssignTeam(ctx context.Context, playerID int, _ int) error {
	_, err := s.GetPlayer(ctx, playerID)
	return err
}

func (s *Storage) ClearTeam(ctx context.Context, playerID int) error {
	_, err := s.GetPlayer(ctx, playerID)
	return err
}

// SearchTeams replays the SQL ranking ladder against the fixtures.
func (s *Storage) SearchTeams(_ context.Context, query string) ([]domain.Team, error) {
	q := normalize.Query(query)
	type ranked struct {
		team domain.Team
		rank int
	}
	var hits []ranked
	for _, team := range s.teams {
		name := strings.ToLower(team.Name)
		coach := strings.ToLower(team.CoachName)
		category := strings.ToLower(team.Category)
		description := strings.ToLower(team.Description)
		if !strings.Contains(name, q) &&
			!strings.Contains(coach, q) &&
			!strings.Contains(category, q) &&
			!strings.Contains(description, q) {
			continue
		}
		rank := 6
		switch {
		case name == q:
			rank = 1
		case strings.HasPrefix(name, q):
			rank = 2
		case strings.Contains(coach, q):
			rank = 3
		case strings.Contains(category, q):
			rank = 4
		case strings.Contains(description, q):
			rank = 5
		}
		hits = append(hits, ranked{team: team, rank: rank})
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].rank != hits[j].rank {
			return hits[i].rank < hits[j].rank
		}
		return hits[i].team.Name < hits[j].team.Name
	})
	if len(hits) > 20 {
		hits = hits[:20]
	}
	teams := make([]domain.Team, 0, len(hits))
	for _, h := range hits {
		teams = append(teams, h.team)
	}
	return teams, nil
}

// SearchPlayers replays the SQL ranking ladder against the active fixtures.
func (s *Storage) SearchPlayers(_ context.Context, query string) ([]domain.Player, error) {
	q := normalize.Query(query)
	type ranked struct {
		player domain.Player
		rank   int
	}
	var hits []ranked
	for _, player := range s.players {
		if !player.Active {
			continue
		}
		name := strings.ToLower(player.Name)
		parent := strings.ToLower(player.ParentName)
		position := strings.ToLower(string(player.Position))
		emergency := strings.ToLower(player.EmergencyContact)
		email := strings.ToLower(player.ParentEmail)
		if !strings.Contains(name, q) &&
			!strings.Contains(parent, q) &&
			!strings.Contains(position, q) &&
			!strings.Contains(emergency, q) &&
			!strings.Contains(email, q) {
			continue
		}
		rank := 6
		switch {
		case name == q:
			rank = 1
		case strings.HasPrefix(name, q):
			rank = 2
		case strings.Contains(parent, q):
			rank = 3
		case strings.Contains(position, q):
			rank = 4
		case strings.Contains(emergency, q):
			rank = 5
		}
		hits = append(hits, ranked{player: player, rank: rank})
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].rank != hits[j].rank {
			return hits[i].rank < hits[j].rank
		}
		return hits[i].player.Name < hits[j].player.Name
	})
	if len(hits) > 50 {
		hits = hits[:50]
	}
	players := make([]domain.Player, 0, len(hits))
	for _, h := range hits {
		players = append(players, h.player)
	}
	return players, nil
}

func sortTeamsByName(teams []domain.Team) {
	sort.SliceStable(teams, func(i, j int) bool {
		return teams[i].Name < teams[j].Name
	})
}

func sortPlayersByName(players []domain.Player) {
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Name < players[j].Name
	})
}
