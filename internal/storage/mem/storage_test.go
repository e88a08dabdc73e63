package mem

import (
	"context"
	"testing"

	"github.com/ThomasSalomon/chicosAPP-V2/internal/domain"
	"github.com/ThomasSalomon/chicosAPP-V2/internal/storage"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestStorage() *Storage {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return New(l)
}

func TestFixtureReads(t *testing.T) {
	s := newTestStorage()
	ctx := context.Background()

	teams, err := s.ListTeams(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 2)
	// newest first
	require.Equal(t, "Águilas United", teams[0].Name)

	players, err := s.ListByTeam(ctx, 1)
	require.NoError(t, err)
	require.Len(t, players, 2)
	require.Equal(t, "Mateo García Flores", players[0].Name)

	unassigned, err := s.ListUnassigned(ctx)
	require.NoError(t, err)
	require.Len(t, unassigned, 1)

	_, err = s.GetPlayer(ctx, 999)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestWritesAreAcknowledgedNoops(t *testing.T) {
	s := newTestStorage()
	ctx := context.Background()

	created, err := s.CreateTeam(ctx, domain.Team{Name: "Nuevo", Category: "Sub-8"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	// the fixture set is untouched
	teams, err := s.ListTeams(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 2)
	_, err = s.GetTeam(ctx, created.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)

	name := "renamed"
	require.NoError(t, s.UpdateTeam(ctx, 1, domain.TeamPatch{Name: &name}))
	got, err := s.GetTeam(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Leones FC", got.Name)
}

func TestSearchPlayersLadder(t *testing.T) {
	s := newTestStorage()
	ctx := context.Background()

	// parent-name hit, active players only
	players, err := s.SearchPlayers(ctx, "garcía")
	require.NoError(t, err)
	require.NotEmpty(t, players)
	require.Equal(t, "Mateo García Flores", players[0].Name)

	// inactive fixture player never matches
	players, err = s.SearchPlayers(ctx, "emilio")
	require.NoError(t, err)
	require.Empty(t, players)

	// position substring
	players, err = s.SearchPlayers(ctx, "goalkeeper")
	require.NoError(t, err)
	require.Len(t, players, 1)
	require.Equal(t, "Sara López Ruiz", players[0].Name)
}

func TestSearchTeamsLadder(t *testing.T) {
	s := newTestStorage()
	ctx := context.Background()

	teams, err := s.SearchTeams(ctx, "leones fc")
	require.NoError(t, err)
	require.Len(t, teams, 1)
	require.Equal(t, "Leones FC", teams[0].Name)

	// coach substring
	teams, err = s.SearchTeams(ctx, "rodríguez")
	require.NoError(t, err)
	require.Len(t, teams, 1)
	require.Equal(t, "Águilas United", teams[0].Name)
}
