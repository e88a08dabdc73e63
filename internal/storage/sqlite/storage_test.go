package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/ThomasSalomon/chicosAPP-V2/internal/domain"
	"github.com/ThomasSalomon/chicosAPP-V2/internal/storage"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	s, err := New(l, filepath.Join(t.TempDir(), "academy.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testTeam() domain.Team {
	return domain.Team{
		Name:       "Leones FC",
		Category:   "Sub-10",
		CoachName:  "Carlos Mendoza",
		MaxPlayers: domain.DefaultMaxPlayers,
	}
}

func testPlayer(name string) domain.Player {
	return domain.Player{
		Name:             name,
		BirthDate:        time.Date(2016, 3, 14, 0, 0, 0, 0, time.UTC),
		Position:         domain.PositionForward,
		Active:           true,
		RegistrationDate: time.Now(),
	}
}

func TestTeamCRUD(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	created, err := s.CreateTeam(ctx, testTeam())
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.Equal(t, domain.DefaultMaxPlayers, created.MaxPlayers)

	got, err := s.GetTeam(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Leones FC", got.Name)
	require.Equal(t, "Carlos Mendoza", got.CoachName)

	name := "Leones United"
	maxPlayers := 30
	require.NoError(t, s.UpdateTeam(ctx, created.ID, domain.TeamPatch{
		Name:       &name,
		MaxPlayers: &maxPlayers,
	}))
	got, err = s.GetTeam(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Leones United", got.Name)
	require.Equal(t, 30, got.MaxPlayers)
	require.Equal(t, "Sub-10", got.Category)

	require.NoError(t, s.DeleteTeam(ctx, created.ID))
	_, err = s.GetTeam(ctx, created.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestTeamNotFound(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.GetTeam(ctx, 404)
	require.ErrorIs(t, err, storage.ErrNotFound)
	require.ErrorIs(t, s.DeleteTeam(ctx, 404), storage.ErrNotFound)
	name := "x"
	require.ErrorIs(t, s.UpdateTeam(ctx, 404, domain.TeamPatch{Name: &name}), storage.ErrNotFound)
}

func TestPlayerActiveRoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	created, err := s.CreatePlayer(ctx, testPlayer("Mateo García"))
	require.NoError(t, err)
	require.True(t, created.Active)

	inactive := false
	require.NoError(t, s.UpdatePlayer(ctx, created.ID, domain.PlayerPatch{Active: &inactive}))

	got, err := s.GetPlayer(ctx, created.ID)
	require.NoError(t, err)
	require.False(t, got.Active)

	active := true
	require.NoError(t, s.UpdatePlayer(ctx, created.ID, domain.PlayerPatch{Active: &active}))
	got, err = s.GetPlayer(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, got.Active)
}

func TestDeleteTeamLeavesPlayersDangling(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	team, err := s.CreateTeam(ctx, testTeam())
	require.NoError(t, err)
	player := testPlayer("Sara López")
	player.TeamID = &team.ID
	created, err := s.CreatePlayer(ctx, player)
	require.NoError(t, err)

	require.NoError(t, s.DeleteTeam(ctx, team.ID))

	got, err := s.GetPlayer(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.TeamID)
	require.Equal(t, team.ID, *got.TeamID)
}

func TestListByTeamOrderedByName(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	team, err := s.CreateTeam(ctx, testTeam())
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		p := testPlayer(fmt.Sprintf("Jugador %02d", 19-i))
		p.TeamID = &team.ID
		_, err := s.CreatePlayer(ctx, p)
		require.NoError(t, err)
	}
	// unassigned player must not show up
	_, err = s.CreatePlayer(ctx, testPlayer("Sin Equipo"))
	require.NoError(t, err)

	players, err := s.ListByTeam(ctx, team.ID)
	require.NoError(t, err)
	require.Len(t, players, 20)
	for i := 1; i < len(players); i++ {
		require.LessOrEqual(t, players[i-1].Name, players[i].Name)
	}

	unassigned, err := s.ListUnassigned(ctx)
	require.NoError(t, err)
	require.Len(t, unassigned, 1)
	require.Equal(t, "Sin Equipo", unassigned[0].Name)
}

func TestAssignAndClearTeam(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	team, err := s.CreateTeam(ctx, testTeam())
	require.NoError(t, err)
	player, err := s.CreatePlayer(ctx, testPlayer("Nico Torres"))
	require.NoError(t, err)
	require.Nil(t, player.TeamID)

	require.NoError(t, s.AssignTeam(ctx, player.ID, team.ID))
	got, err := s.GetPlayer(ctx, player.ID)
	require.NoError(t, err)
	require.NotNil(t, got.TeamID)

	require.NoError(t, s.ClearTeam(ctx, player.ID))
	got, err = s.GetPlayer(ctx, player.ID)
	require.NoError(t, err)
	require.Nil(t, got.TeamID)
}

func TestSearchPlayersRanking(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	exact := testPlayer("garcía")
	_, err := s.CreatePlayer(ctx, exact)
	require.NoError(t, err)

	byParent := testPlayer("Benjamín Ruiz")
	byParent.ParentName = "Elena García"
	_, err = s.CreatePlayer(ctx, byParent)
	require.NoError(t, err)

	byPosition := testPlayer("Tomás Díaz")
	byPosition.Position = domain.Position("garcía-style")
	_, err = s.CreatePlayer(ctx, byPosition)
	require.NoError(t, err)

	inactive := testPlayer("García Inactivo")
	inactive.Active = false
	_, err = s.CreatePlayer(ctx, inactive)
	require.NoError(t, err)

	players, err := s.SearchPlayers(ctx, "garcía")
	require.NoError(t, err)
	require.Len(t, players, 3)
	require.Equal(t, "garcía", players[0].Name)
	require.Equal(t, "Benjamín Ruiz", players[1].Name)
	require.Equal(t, "Tomás Díaz", players[2].Name)
}

func TestSearchTeamsRanking(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	mk := func(name, coach, category string) {
		team := testTeam()
		team.Name = name
		team.CoachName = coach
		team.Category = category
		_, err := s.CreateTeam(ctx, team)
		require.NoError(t, err)
	}
	mk("Leones FC", "Ana Rodríguez", "Sub-10")
	mk("Leones United", "Miguel Torres", "Sub-12")
	mk("Águilas CF", "Leonel Pérez", "Sub-10")

	teams, err := s.SearchTeams(ctx, "leones fc")
	require.NoError(t, err)
	require.NotEmpty(t, teams)
	require.Equal(t, "Leones FC", teams[0].Name)

	teams, err = s.SearchTeams(ctx, "leon")
	require.NoError(t, err)
	require.Len(t, teams, 3)
	// prefix matches outrank the coach substring match
	require.Equal(t, "Leones FC", teams[0].Name)
	require.Equal(t, "Leones United", teams[1].Name)
	require.Equal(t, "Águilas CF", teams[2].Name)
}
