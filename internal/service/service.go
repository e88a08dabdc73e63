package service

import (
	"context"
	"errors"
	"time"

	"github.com/ThomasSalomon/chicosAPP-V2/internal/cache/mem"
	"github.com/ThomasSalomon/chicosAPP-V2/internal/domain"
	"github.com/ThomasSalomon/chicosAPP-V2/internal/storage"

	"github.com/sirupsen/logrus"
)

// Cache keys for the hot list endpoints. Any write to the corresponding
// entity invalidates the key.
const (
	cacheKeyTeams   = "teams_all"
	cacheKeyPlayers = "players_all"
)

type AcademyService struct {
	teams   storage.TeamStorage
	players storage.PlayerStorage
	cache   *mem.Cache
	log     *logrus.Entry
}

func New(l *logrus.Logger, teams storage.TeamStorage, players storage.PlayerStorage, cache *mem.Cache) *AcademyService {
	return &AcademyService{
		teams:   teams,
		players: players,
		cache:   cache,
		log: l.WithFields(map[string]interface{}{
			"from": "academy-service",
		}),
	}
}

func (s *AcademyService) ListTeams(ctx context.Context) ([]domain.Team, error) {
	if cached, ok := s.cache.Get(cacheKeyTeams); ok {
		if teams, ok := cached.([]domain.Team); ok {
			return teams, nil
		}
	}
	teams, err := s.teams.ListTeams(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.attachPlayerCounts(ctx, teams); err != nil {
		return nil, err
	}
	s.cache.Set(cacheKeyTeams, teams)
	return teams, nil
}

func (s *AcademyService) ListTeamsByCategory(ctx context.Context, category string) ([]domain.Team, error) {
	teams, err := s.teams.ListTeamsByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	if err := s.attachPlayerCounts(ctx, teams); err != nil {
		return nil, err
	}
	return teams, nil
}

func (s *AcademyService) GetTeam(ctx context.Context, id int) (domain.Team, error) {
	team, err := s.teams.GetTeam(ctx, id)
	if err != nil {
		return domain.Team{}, err
	}
	members, err := s.players.ListByTeam(ctx, id)
	if err != nil {
		return domain.Team{}, err
	}
	team.PlayerCount = countActive(members)
	return team, nil
}

func (s *AcademyService) CreateTeam(ctx context.Context, team domain.Team) (domain.Team, error) {
	if team.MaxPlayers <= 0 {
		team.MaxPlayers = domain.DefaultMaxPlayers
	}
	created, err := s.teams.CreateTeam(ctx, team)
	if err != nil {
		return domain.Team{}, err
	}
	s.cache.Invalidate(cacheKeyTeams)
	s.log.WithFields(map[string]interface{}{"team": created.ID}).Info("team created")
	return created, nil
}

func (s *AcademyService) UpdateTeam(ctx context.Context, id int, patch domain.TeamPatch) (domain.Team, error) {
	if !patch.Empty() {
		if err := s.teams.UpdateTeam(ctx, id, patch); err != nil {
			return domain.Team{}, err
		}
		s.cache.Invalidate(cacheKeyTeams)
	}
	return s.GetTeam(ctx, id)
}

// DeleteTeam removes the team row only. Its players stay registered and keep
// their team_id, which now points at a deleted team.
func (s *AcademyService) DeleteTeam(ctx context.Context, id int) error {
	if err := s.teams.DeleteTeam(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(cacheKeyTeams)
	s.log.WithFields(map[string]interface{}{"team": id}).Info("team deleted")
	return nil
}

func (s *AcademyService) SearchTeams(ctx context.Context, query string) ([]domain.Team, error) {
	teams, err := s.teams.SearchTeams(ctx, query)
	if err != nil {
		return nil, err
	}
	if err := s.attachPlayerCounts(ctx, teams); err != nil {
		return nil, err
	}
	return teams, nil
}

func (s *AcademyService) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	if cached, ok := s.cache.Get(cacheKeyPlayers); ok {
		if players, ok := cached.([]domain.Player); ok {
			return players, nil
		}
	}
	players, err := s.players.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(cacheKeyPlayers, players)
	return players, nil
}

func (s *AcademyService) ListPlayersByTeam(ctx context.Context, teamID int) ([]domain.Player, error) {
	return s.players.ListByTeam(ctx, teamID)
}

func (s *AcademyService) ListUnassignedPlayers(ctx context.Context) ([]domain.Player, error) {
	return s.players.ListUnassigned(ctx)
}

// ListPlayersByAgeRange translates an inclusive age interval into the
// matching birth date window. A player aged exactly maxAge today was born no
// earlier than maxAge+1 years ago, exclusive.
func (s *AcademyService) ListPlayersByAgeRange(ctx context.Context, minAge, maxAge int) ([]domain.Player, error) {
	if minAge < 0 || maxAge < minAge {
		return nil, errors.New("invalid age range")
	}
	now := time.Now()
	from := now.AddDate(-(maxAge+1), 0, 0).AddDate(0, 0, 1)
	to := now.AddDate(-minAge, 0, 0)
	return s.players.ListByBirthDateRange(ctx, from, to)
}

func (s *AcademyService) GetPlayer(ctx context.Context, id int) (domain.Player, error) {
	return s.players.GetPlayer(ctx, id)
}

func (s *AcademyService) CreatePlayer(ctx context.Context, player domain.Player) (domain.Player, error) {
	if player.RegistrationDate.IsZero() {
		player.RegistrationDate = time.Now()
	}
	created, err := s.players.CreatePlayer(ctx, player)
	if err != nil {
		return domain.Player{}, err
	}
	s.cache.Invalidate(cacheKeyPlayers, cacheKeyTeams)
	s.log.WithFields(map[string]interface{}{"player": created.ID}).Info("player created")
	return created, nil
}

func (s *AcademyService) UpdatePlayer(ctx context.Context, id int, patch domain.PlayerPatch) (domain.Player, error) {
	if !patch.Empty() {
		if err := s.players.UpdatePlayer(ctx, id, patch); err != nil {
			return domain.Player{}, err
		}
		s.cache.Invalidate(cacheKeyPlayers, cacheKeyTeams)
	}
	return s.players.GetPlayer(ctx, id)
}

func (s *AcademyService) DeletePlayer(ctx context.Context, id int) error {
	if err := s.players.DeletePlayer(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(cacheKeyPlayers, cacheKeyTeams)
	s.log.WithFields(map[string]interface{}{"player": id}).Info("player deleted")
	return nil
}

func (s *AcademyService) SearchPlayers(ctx context.Context, query string) ([]domain.Player, error) {
	return s.players.SearchPlayers(ctx, query)
}

// AssignToTeam moves the player onto the team regardless of how many members
// it already has. The team's max_players is advisory.
func (s *AcademyService) AssignToTeam(ctx context.Context, playerID, teamID int) (domain.Player, error) {
	if _, err := s.teams.GetTeam(ctx, teamID); err != nil {
		return domain.Player{}, err
	}
	if err := s.players.AssignTeam(ctx, playerID, teamID); err != nil {
		return domain.Player{}, err
	}
	s.cache.Invalidate(cacheKeyPlayers, cacheKeyTeams)
	return s.players.GetPlayer(ctx, playerID)
}

func (s *AcademyService) RemoveFromTeam(ctx context.Context, playerID int) (domain.Player, error) {
	if err := s.players.ClearTeam(ctx, playerID); err != nil {
		return domain.Player{}, err
	}
	s.cache.Invalidate(cacheKeyPlayers, cacheKeyTeams)
	return s.players.GetPlayer(ctx, playerID)
}

func (s *AcademyService) attachPlayerCounts(ctx context.Context, teams []domain.Team) error {
	if len(teams) == 0 {
		return nil
	}
	players, err := s.players.ListPlayers(ctx)
	if err != nil {
		return err
	}
	counts := make(map[int]int)
	for _, p := range players {
		if p.TeamID != nil && p.Active {
			counts[*p.TeamID]++
		}
	}
	for i := range teams {
		teams[i].PlayerCount = counts[teams[i].ID]
	}
	return nil
}

func countActive(players []domain.Player) int {
	n := 0
	for _, p := range players {
		if p.Active {
			n++
		}
	}
	return n
}
