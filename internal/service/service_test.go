package service_test

import (
	"context"
	"io"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/ThomasSalomon/chicosAPP-V2/internal/cache/mem"
	"github.com/ThomasSalomon/chicosAPP-V2/internal/domain"
	"github.com/ThomasSalomon/chicosAPP-V2/internal/service"
	"github.com/ThomasSalomon/chicosAPP-V2/internal/storage"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// fakeStorage implements both storage interfaces on plain maps so service
// behavior can be tested without SQLite.
type fakeStorage struct {
	teams   map[int]domain.Team
	players map[int]domain.Player
	nextID  int

	listTeamCalls   int
	listPlayerCalls int
	lastRangeFrom   time.Time
	lastRangeTo     time.Time
}

var (
	_ storage.TeamStorage   = (*fakeStorage)(nil)
	_ storage.PlayerStorage = (*fakeStorage)(nil)
)

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		teams:   make(map[int]domain.Team),
		players: make(map[int]domain.Player),
		nextID:  1,
	}
}

func (f *fakeStorage) GetTeam(_ context.Context, id int) (domain.Team, error) {
	team, ok := f.teams[id]
	if !ok {
		return domain.Team{}, storage.ErrNotFound
	}
	return team, nil
}

func (f *fakeStorage) CreateTeam(_ context.Context, team domain.Team) (domain.Team, error) {
	team.ID = f.nextID
	f.nextID++
	team.CreatedAt = time.Now()
	f.teams[team.ID] = team
	return team, nil
}

func (f *fakeStorage) UpdateTeam(_ context.Context, id int, patch domain.TeamPatch) error {
	team, ok := f.teams[id]
	if !ok {
		return storage.ErrNotFound
	}
	if patch.Name != nil {
		team.Name = *patch.Name
	}
	if patch.Category != nil {
		team.Category = *patch.Category
	}
	if patch.CoachName != nil {
		team.CoachName = *patch.CoachName
	}
	if patch.Description != nil {
		team.Description = *patch.Description
	}
	if patch.MaxPlayers != nil {
		team.MaxPlayers = *patch.MaxPlayers
	}
	f.teams[id] = team
	return nil
}

func (f *fakeStorage) DeleteTeam(_ context.Context, id int) error {
	if _, ok := f.teams[id]; !ok {
		return storage.ErrNotFound
	}
	delete(f.teams, id)
	return nil
}

func (f *fakeStorage) ListTeams(_ context.Context) ([]domain.Team, error) {
	f.listTeamCalls++
	list := make([]domain.Team, 0, len(f.teams))
	for _, t := range f.teams {
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (f *fakeStorage) ListTeamsByCategory(ctx context.Context, category string) ([]domain.Team, error) {
	all, _ := f.ListTeams(ctx)
	var list []domain.Team
	for _, t := range all {
		if t.Category == category {
			list = append(list, t)
		}
	}
	return list, nil
}

func (f *fakeStorage) SearchTeams(ctx context.Context, query string) ([]domain.Team, error) {
	all, _ := f.ListTeams(ctx)
	var list []domain.Team
	for _, t := range all {
		if strings.Contains(strings.ToLower(t.Name), query) {
			list = append(list, t)
		}
	}
	return list, nil
}

func (f *fakeStorage) GetPlayer(_ context.Context, id int) (domain.Player, error) {
	player, ok := f.players[id]
	if !ok {
		return domain.Player{}, storage.ErrNotFound
	}
	return player, nil
}

func (f *fakeStorage) CreatePlayer(_ context.Context, player domain.Player) (domain.Player, error) {
	player.ID = f.nextID
	f.nextID++
	f.players[player.ID] = player
	return player, nil
}

func (f *fakeStorage) UpdatePlayer(_ context.Context, id int, patch domain.PlayerPatch) error {
	player, ok := f.players[id]
	if !ok {
		return storage.ErrNotFound
	}
	if patch.Name != nil {
		player.Name = *patch.Name
	}
	if patch.TeamID != nil {
		teamID := *patch.TeamID
		player.TeamID = &teamID
	}
	if patch.Active != nil {
		player.Active = *patch.Active
	}
	f.players[id] = player
	return nil
}

func (f *fakeStorage) DeletePlayer(_ context.Context, id int) error {
	if _, ok := f.players[id]; !ok {
		return storage.ErrNotFound
	}
	delete(f.players, id)
	return nil
}

func (f *fakeStorage) ListPlayers(_ context.Context) ([]domain.Player, error) {
	f.listPlayerCalls++
	list := make([]domain.Player, 0, len(f.players))
	for _, p := range f.players {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (f *fakeStorage) ListByTeam(ctx context.Context, teamID int) ([]domain.Player, error) {
	all, _ := f.ListPlayers(ctx)
	var list []domain.Player
	for _, p := range all {
		if p.TeamID != nil && *p.TeamID == teamID {
			list = append(list, p)
		}
	}
	return list, nil
}

func (f *fakeStorage) ListUnassigned(ctx context.Context) ([]domain.Player, error) {
	all, _ := f.ListPlayers(ctx)
	var list []domain.Player
	for _, p := range all {
		if p.TeamID == nil {
			list = append(list, p)
		}
	}
	return list, nil
}

func (f *fakeStorage) ListByBirthDateRange(ctx context.Context, from, to time.Time) ([]domain.Player, error) {
	f.lastRangeFrom, f.lastRangeTo = from, to
	all, _ := f.ListPlayers(ctx)
	var list []domain.Player
	for _, p := range all {
		if !p.BirthDate.Before(from) && !p.BirthDate.After(to) {
			list = append(list, p)
		}
	}
	return list, nil
}

func (f *fakeStorage) SearchPlayers(ctx context.Context, query string) ([]domain.Player, error) {
	all, _ := f.ListPlayers(ctx)
	var list []domain.Player
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), query) {
			list = append(list, p)
		}
	}
	return list, nil
}

func (f *fakeStorage) AssignTeam(_ context.Context, playerID, teamID int) error {
	player, ok := f.players[playerID]
	if !ok {
		return storage.ErrNotFound
	}
	player.TeamID = &teamID
	f.players[playerID] = player
	return nil
}

func (f *fakeStorage) ClearTeam(_ context.Context, playerID int) error {
	player, ok := f.players[playerID]
	if !ok {
		return storage.ErrNotFound
	}
	player.TeamID = nil
	f.players[playerID] = player
	return nil
}

func newTestService(st *fakeStorage) *service.AcademyService {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return service.New(l, st, st, mem.New(time.Minute))
}

func TestListTeamsUsesCache(t *testing.T) {
	ctx := context.Background()
	st := newFakeStorage()
	svc := newTestService(st)

	_, err := svc.CreateTeam(ctx, domain.Team{Name: "Leones FC", Category: "Sub-10"})
	require.NoError(t, err)

	_, err = svc.ListTeams(ctx)
	require.NoError(t, err)
	_, err = svc.ListTeams(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, st.listTeamCalls)

	// a write must invalidate the cached list
	_, err = svc.CreateTeam(ctx, domain.Team{Name: "Águilas United", Category: "Sub-12"})
	require.NoError(t, err)
	teams, err := svc.ListTeams(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 2)
	require.Equal(t, 2, st.listTeamCalls)
}

func TestTeamDefaultsAndPlayerCount(t *testing.T) {
	ctx := context.Background()
	st := newFakeStorage()
	svc := newTestService(st)

	team, err := svc.CreateTeam(ctx, domain.Team{Name: "Leones FC", Category: "Sub-10"})
	require.NoError(t, err)
	require.Equal(t, domain.DefaultMaxPlayers, team.MaxPlayers)

	for i := 0; i < 3; i++ {
		_, err = svc.CreatePlayer(ctx, domain.Player{
			Name:      "Jugador",
			BirthDate: time.Now().AddDate(-9, 0, 0),
			Position:  domain.PositionDefender,
			TeamID:    &team.ID,
			Active:    true,
		})
		require.NoError(t, err)
	}
	inactive := false
	players, err := svc.ListPlayersByTeam(ctx, team.ID)
	require.NoError(t, err)
	_, err = svc.UpdatePlayer(ctx, players[0].ID, domain.PlayerPatch{Active: &inactive})
	require.NoError(t, err)

	got, err := svc.GetTeam(ctx, team.ID)
	require.NoError(t, err)
	require.Equal(t, 2, got.PlayerCount)
}

func TestCreatePlayerDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeStorage())

	player, err := svc.CreatePlayer(ctx, domain.Player{
		Name:      "Mateo García",
		BirthDate: time.Now().AddDate(-10, 0, 0),
		Position:  domain.PositionForward,
		Active:    true,
	})
	require.NoError(t, err)
	require.True(t, player.Active)
	require.False(t, player.RegistrationDate.IsZero())

	// an explicit inactive flag survives the create
	bench, err := svc.CreatePlayer(ctx, domain.Player{
		Name:      "Lucas Torres",
		BirthDate: time.Now().AddDate(-10, 0, 0),
	})
	require.NoError(t, err)
	require.False(t, bench.Active)
}

func TestMaxPlayersIsAdvisory(t *testing.T) {
	ctx := context.Background()
	st := newFakeStorage()
	svc := newTestService(st)

	team, err := svc.CreateTeam(ctx, domain.Team{Name: "Chiquitos", Category: "Sub-8", MaxPlayers: 1})
	require.NoError(t, err)
	_, err = svc.CreatePlayer(ctx, domain.Player{Name: "Primero", TeamID: &team.ID, Active: true, BirthDate: time.Now().AddDate(-7, 0, 0)})
	require.NoError(t, err)

	// max_players does not block further additions
	_, err = svc.CreatePlayer(ctx, domain.Player{Name: "Segundo", TeamID: &team.ID, Active: true, BirthDate: time.Now().AddDate(-7, 0, 0)})
	require.NoError(t, err)

	third, err := svc.CreatePlayer(ctx, domain.Player{Name: "Tercero", Active: true, BirthDate: time.Now().AddDate(-7, 0, 0)})
	require.NoError(t, err)
	_, err = svc.AssignToTeam(ctx, third.ID, team.ID)
	require.NoError(t, err)

	got, err := svc.GetTeam(ctx, team.ID)
	require.NoError(t, err)
	require.Equal(t, 3, got.PlayerCount)

	_, err = svc.AssignToTeam(ctx, third.ID, 9999)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestAgeRangeWindow(t *testing.T) {
	ctx := context.Background()
	st := newFakeStorage()
	svc := newTestService(st)

	ten := time.Now().AddDate(-10, 0, -30)
	thirteen := time.Now().AddDate(-13, 0, -30)
	_, err := svc.CreatePlayer(ctx, domain.Player{Name: "Diez", BirthDate: ten})
	require.NoError(t, err)
	_, err = svc.CreatePlayer(ctx, domain.Player{Name: "Trece", BirthDate: thirteen})
	require.NoError(t, err)

	players, err := svc.ListPlayersByAgeRange(ctx, 9, 11)
	require.NoError(t, err)
	require.Len(t, players, 1)
	require.Equal(t, "Diez", players[0].Name)

	_, err = svc.ListPlayersByAgeRange(ctx, 11, 9)
	require.Error(t, err)
}

func TestDeleteTeamLeavesPlayersAssigned(t *testing.T) {
	ctx := context.Background()
	st := newFakeStorage()
	svc := newTestService(st)

	team, err := svc.CreateTeam(ctx, domain.Team{Name: "Leones FC", Category: "Sub-10"})
	require.NoError(t, err)
	player, err := svc.CreatePlayer(ctx, domain.Player{Name: "Mateo", TeamID: &team.ID, Active: true, BirthDate: time.Now().AddDate(-9, 0, 0)})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTeam(ctx, team.ID))

	// the player survives the delete and keeps the now-dangling team id
	got, err := svc.GetPlayer(ctx, player.ID)
	require.NoError(t, err)
	require.NotNil(t, got.TeamID)
	require.Equal(t, team.ID, *got.TeamID)
}

func TestListPlayersByUnknownTeamIsEmpty(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeStorage())

	players, err := svc.ListPlayersByTeam(ctx, 42)
	require.NoError(t, err)
	require.Empty(t, players)
}

func TestSeedAndClear(t *testing.T) {
	ctx := context.Background()
	st := newFakeStorage()
	svc := newTestService(st)

	seeded, err := svc.SeedDemoData(ctx)
	require.NoError(t, err)
	require.Equal(t, 10, seeded.Teams)
	require.Equal(t, 200, seeded.Players)

	teams, err := svc.ListTeams(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 10)
	for _, team := range teams {
		require.Equal(t, 20, team.PlayerCount)
	}

	cleared, err := svc.ClearAllData(ctx)
	require.NoError(t, err)
	require.Equal(t, 10, cleared.Teams)
	require.Equal(t, 200, cleared.Players)
	require.Zero(t, cleared.Failures)

	teams, err = svc.ListTeams(ctx)
	require.NoError(t, err)
	require.Empty(t, teams)
}
