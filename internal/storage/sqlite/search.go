package sqlite

import (
	"context"

	"github.com/ThomasSalomon/chicosAPP-V2/gen/model"
	"github.com/ThomasSalomon/chicosAPP-V2/gen/table"
	"github.com/ThomasSalomon/chicosAPP-V2/internal/domain"
	"github.com/ThomasSalomon/chicosAPP-V2/internal/normalize"

	"github.com/go-jet/jet/v2/sqlite"
)

const (
	playerSearchLimit = 50
	teamSearchLimit   = 20
)

// SearchTeams runs the ranked team search: exact name match first, then name
// prefix, coach, category, description. Ties are broken by name.
func (s *Storage) SearchTeams(ctx context.Context, query string) ([]domain.Team, error) {
	q := normalize.Query(query)
	exact := sqlite.String(q)
	prefix := sqlite.String(q + "%")
	term := sqlite.String("%" + q + "%")

	relevance := sqlite.CASE().
		WHEN(sqlite.LOWER(table.Teams.Name).EQ(exact)).THEN(sqlite.Int(1)).
		WHEN(sqlite.LOWER(table.Teams.Name).LIKE(prefix)).THEN(sqlite.Int(2)).
		WHEN(sqlite.LOWER(table.Teams.CoachName).LIKE(term)).THEN(sqlite.Int(3)).
		WHEN(sqlite.LOWER(table.Teams.Category).LIKE(term)).THEN(sqlite.Int(4)).
		WHEN(sqlite.LOWER(table.Teams.Description).LIKE(term)).THEN(sqlite.Int(5)).
		ELSE(sqlite.Int(6))

	var dbTeams []model.Teams
	err := table.Teams.
		SELECT(table.Teams.AllColumns).
		FROM(table.Teams).
		WHERE(
			sqlite.LOWER(table.Teams.Name).LIKE(term).
				OR(sqlite.LOWER(table.Teams.CoachName).LIKE(term)).
				OR(sqlite.LOWER(table.Teams.Category).LIKE(term)).
				OR(sqlite.LOWER(table.Teams.Description).LIKE(term)),
		).
		ORDER_BY(relevance.ASC(), table.Teams.Name.ASC()).
		LIMIT(teamSearchLimit).
		QueryContext(ctx, s.db, &dbTeams)
	if err != nil {
		return nil, err
	}
	return convertTeamsToDomain(dbTeams), nil
}

// SearchPlayers runs the ranked player search over active players: exact
// name, name prefix, parent name, position, emergency contact. The parent
// email participates in filtering but not in the ranking ladder.
func (s *Storage) SearchPlayers(ctx context.Context, query string) ([]domain.Player, error) {
	q := normalize.Query(query)
	exact := sqlite.String(q)
	prefix := sqlite.String(q + "%")
	term := sqlite.String("%" + q + "%")

	relevance := sqlite.CASE().
		WHEN(sqlite.LOWER(table.Players.Name).EQ(exact)).THEN(sqlite.Int(1)).
		WHEN(sqlite.LOWER(table.Players.Name).LIKE(prefix)).THEN(sqlite.Int(2)).
		WHEN(sqlite.LOWER(table.Players.ParentName).LIKE(term)).THEN(sqlite.Int(3)).
		WHEN(sqlite.LOWER(table.Players.Position).LIKE(term)).THEN(sqlite.Int(4)).
		WHEN(sqlite.LOWER(table.Players.EmergencyContact).LIKE(term)).THEN(sqlite.Int(5)).
		ELSE(sqlite.Int(6))

	var dbPlayers []model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		WHERE(
			table.Players.IsActive.EQ(sqlite.Int(1)).
				AND(
					sqlite.LOWER(table.Players.Name).LIKE(term).
						OR(sqlite.LOWER(table.Players.ParentName).LIKE(term)).
						OR(sqlite.LOWER(table.Players.Position).LIKE(term)).
						OR(sqlite.LOWER(table.Players.EmergencyContact).LIKE(term)).
						OR(sqlite.LOWER(table.Players.ParentEmail).LIKE(term)),
				),
		).
		ORDER_BY(relevance.ASC(), table.Players.Name.ASC()).
		LIMIT(playerSearchLimit).
		QueryContext(ctx, s.db, &dbPlayers)
	if err != nil {
		return nil, err
	}
	return convertPlayersToDomain(dbPlayers), nil
}
