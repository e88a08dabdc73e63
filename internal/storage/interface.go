package storage

import (
	"context"
	"errors"
	"time"

	"github.com/ThomasSalomon/chicosAPP-V2/internal/domain"
)

// ErrNotFound reports a missing row. Callers translate it to 404.
var ErrNotFound = errors.New("not found")

type TeamStorage interface {
	GetTeam(ctx context.Context, id int) (domain.Team, error)
	CreateTeam(ctx context.Context, team domain.Team) (domain.Team, error)
	UpdateTeam(ctx context.Context, id int, patch domain.TeamPatch) error
	DeleteTeam(ctx context.Context, id int) error
	ListTeams(ctx context.Context) ([]domain.Team, error)
	ListTeamsByCategory(ctx context.Context, category string) ([]domain.Team, error)
	SearchTeams(ctx context.Context, query string) ([]domain.Team, error)
}

type PlayerStorage interface {
	GetPlayer(ctx context.Context, id int) (domain.Player, error)
	CreatePlayer(ctx context.Context, player domain.Player) (domain.Player, error)
	UpdatePlayer(ctx context.Context, id int, patch domain.PlayerPatch) error
	DeletePlayer(ctx context.Context, id int) error
	ListPlayers(ctx context.Context) ([]domain.Player, error)
	ListByTeam(ctx context.Context, teamID int) ([]domain.Player, error)
	ListUnassigned(ctx context.Context) ([]domain.Player, error)
	ListByBirthDateRange(ctx context.Context, from, to time.Time) ([]domain.Player, error)
	SearchPlayers(ctx context.Context, query string) ([]domain.Player, error)
	AssignTeam(ctx context.Context, playerID int, teamID int) error
	ClearTeam(ctx context.Context, playerID int) error
}
