package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ThomasSalomon/chicosAPP-V2/gen/model"
	"github.com/ThomasSalomon/chicosAPP-V2/gen/table"
	"github.com/ThomasSalomon/chicosAPP-V2/internal/domain"
	sqlite3 "github.com/ThomasSalomon/chicosAPP-V2/internal/migrate"
	"github.com/ThomasSalomon/chicosAPP-V2/internal/storage"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.TeamStorage = (*Storage)(nil)
var _ storage.PlayerStorage = (*Storage)(nil)

func New(l *logrus.Logger, fileName string) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "academy-storage",
	})
	db, err := sql.Open("sqlite3", buildSource(fileName))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = sqlite3.UpAcademyDB(db)
	if err != nil {
		return nil, err
	}
	err = sqlite3.FixLegacyPlayers(db, log)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("academy storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared&_busy_timeout=5000"
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) GetTeam(ctx context.Context, id int) (domain.Team, error) {
	var dbTeam model.Teams
	err := table.Teams.
		SELECT(table.Teams.AllColumns).
		FROM(table.Teams).
		WHERE(table.Teams.ID.EQ(sqlite.Int(int64(id)))).
		QueryContext(ctx, s.db, &dbTeam)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Team{}, storage.ErrNotFound
		}
		return domain.Team{}, err
	}
	return convertTeamToDomain(dbTeam), nil
}

func (s *Storage) CreateTeam(ctx context.Context, team domain.Team) (domain.Team, error) {
	now := time.Now()
	team.CreatedAt = now
	team.UpdatedAt = now
	var dbTeam model.Teams
	err := table.Teams.
		INSERT(table.Teams.AllColumns.Except(table.Teams.ID)).
		MODEL(convertTeamFromDomain(team)).
		RETURNING(table.Teams.AllColumns).
		QueryContext(ctx, s.db, &dbTeam)
	if err != nil {
		return domain.Team{}, err
	}
	return convertTeamToDomain(dbTeam), nil
}

func (s *Storage) UpdateTeam(ctx context.Context, id int, patch domain.TeamPatch) error {
	if patch.Empty() {
		_, err := s.GetTeam(ctx, id)
		return err
	}
	columns := sqlite.ColumnList{}
	values := make([]interface{}, 0, 6)
	if patch.Name != nil {
		columns = append(columns, table.Teams.Name)
		values = append(values, *patch.Name)
	}
	if patch.Category != nil {
		columns = append(columns, table.Teams.Category)
		values = append(values, *patch.Category)
	}
	if patch.CoachName != nil {
		columns = append(columns, table.Teams.CoachName)
		values = append(values, *patch.CoachName)
	}
	if patch.Description != nil {
		columns = append(columns, table.Teams.Description)
		values = append(values, *patch.Description)
	}
	if patch.MaxPlayers != nil {
		columns = append(columns, table.Teams.MaxPlayers)
		values = append(values, int32(*patch.MaxPlayers))
	}
	columns = append(columns, table.Teams.UpdatedAt)
	values = append(values, time.Now())

	res, err := table.Teams.
		UPDATE(columns).
		SET(values[0], values[1:]...).
		WHERE(table.Teams.ID.EQ(sqlite.Int(int64(id)))).
		ExecContext(ctx, s.db)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (s *Storage) DeleteTeam(ctx context.Context, id int) error {
	res, err := table.Teams.
		DELETE().
		WHERE(table.Teams.ID.EQ(sqlite.Int(int64(id)))).
		ExecContext(ctx, s.db)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (s *Storage) ListTeams(ctx context.Context) ([]domain.Team, error) {
	var dbTeams []model.Teams
	err := table.Teams.
		SELECT(table.Teams.AllColumns).
		FROM(table.Teams).
		ORDER_BY(table.Teams.CreatedAt.DESC()).
		QueryContext(ctx, s.db, &dbTeams)
	if err != nil {
		return nil, err
	}
	return convertTeamsToDomain(dbTeams), nil
}

func (s *Storage) ListTeamsByCategory(ctx context.Context, category string) ([]domain.Team, error) {
	var dbTeams []model.Teams
	err := table.Teams.
		SELECT(table.Teams.AllColumns).
		FROM(table.Teams).
		WHERE(table.Teams.Category.EQ(sqlite.String(category))).
		ORDER_BY(table.Teams.Name.ASC()).
		QueryContext(ctx, s.db, &dbTeams)
	if err != nil {
		return nil, err
	}
	return convertTeamsToDomain(dbTeams), nil
}

func checkAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
