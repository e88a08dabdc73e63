package sqlite

import (
	"context"
	"errors"
	"time"

	"github.com/ThomasSalomon/chicosAPP-V2/gen/model"
	"github.com/ThomasSalomon/chicosAPP-V2/gen/table"
	"github.com/ThomasSalomon/chicosAPP-V2/internal/domain"
	"github.com/ThomasSalomon/chicosAPP-V2/internal/storage"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
)

func (s *Storage) GetPlayer(ctx context.Context, id int) (domain.Player, error) {
	var dbPlayer model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		WHERE(table.Players.ID.EQ(sqlite.Int(int64(id)))).
		QueryContext(ctx, s.db, &dbPlayer)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Player{}, storage.ErrNotFound
		}
		return domain.Player{}, err
	}
	return convertPlayerToDomain(dbPlayer), nil
}

func (s *Storage) CreatePlayer(ctx context.Context, player domain.Player) (domain.Player, error) {
	now := time.Now()
	player.CreatedAt = now
	player.UpdatedAt = now
	var dbPlayer model.Players
	err := table.Players.
		INSERT(table.Players.AllColumns.Except(table.Players.ID)).
		MODEL(convertPlayerFromDomain(player)).
		RETURNING(table.Players.AllColumns).
		QueryContext(ctx, s.db, &dbPlayer)
	if err != nil {
		return domain.Player{}, err
	}
	return convertPlayerToDomain(dbPlayer), nil
}

func (s *Storage) UpdatePlayer(ctx context.Context, id int, patch domain.PlayerPatch) error {
	if patch.Empty() {
		_, err := s.GetPlayer(ctx, id)
		return err
	}
	columns := sqlite.ColumnList{}
	values := make([]interface{}, 0, 12)
	if patch.Name != nil {
		columns = append(columns, table.Players.Name)
		values = append(values, *patch.Name)
	}
	if patch.BirthDate != nil {
		columns = append(columns, table.Players.BirthDate)
		values = append(values, *patch.BirthDate)
	}
	if patch.Position != nil {
		columns = append(columns, table.Players.Position)
		values = append(values, string(*patch.Position))
	}
	if patch.TeamID != nil {
		columns = append(columns, table.Players.TeamID)
		values = append(values, int32(*patch.TeamID))
	}
	if patch.ParentName != nil {
		columns = append(columns, table.Players.ParentName)
		values = append(values, *patch.ParentName)
	}
	if patch.ParentPhone != nil {
		columns = append(columns, table.Players.ParentPhone)
		values = append(values, *patch.ParentPhone)
	}
	if patch.ParentEmail != nil {
		columns = append(columns, table.Players.ParentEmail)
		values = append(values, *patch.ParentEmail)
	}
	if patch.MedicalNotes != nil {
		columns = append(columns, table.Players.MedicalNotes)
		values = append(values, *patch.MedicalNotes)
	}
	if patch.EmergencyContact != nil {
		columns = append(columns, table.Players.EmergencyContact)
		values = append(values, *patch.EmergencyContact)
	}
	if patch.EmergencyPhone != nil {
		columns = append(columns, table.Players.EmergencyPhone)
		values = append(values, *patch.EmergencyPhone)
	}
	if patch.Active != nil {
		columns = append(columns, table.Players.IsActive)
		values = append(values, boolToInt(*patch.Active))
	}
	columns = append(columns, table.Players.UpdatedAt)
	values = append(values, time.Now())

	res, err := table.Players.
		UPDATE(columns).
		SET(values[0], values[1:]...).
		WHERE(table.Players.ID.EQ(sqlite.Int(int64(id)))).
		ExecContext(ctx, s.db)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (s *Storage) DeletePlayer(ctx context.Context, id int) error {
	res, err := table.Players.
		DELETE().
		WHERE(table.Players.ID.EQ(sqlite.Int(int64(id)))).
		ExecContext(ctx, s.db)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (s *Storage) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	var dbPlayers []model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		ORDER_BY(table.Players.Name.ASC()).
		QueryContext(ctx, s.db, &dbPlayers)
	if err != nil {
		return nil, err
	}
	return convertPlayersToDomain(dbPlayers), nil
}

func (s *Storage) ListByTeam(ctx context.Context, teamID int) ([]domain.Player, error) {
	var dbPlayers []model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		WHERE(table.Players.TeamID.EQ(sqlite.Int(int64(teamID)))).
		ORDER_BY(table.Players.Name.ASC()).
		QueryContext(ctx, s.db, &dbPlayers)
	if err != nil {
		return nil, err
	}
	return convertPlayersToDomain(dbPlayers), nil
}

func (s *Storage) ListUnassigned(ctx context.Context) ([]domain.Player, error) {
	var dbPlayers []model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		WHERE(table.Players.TeamID.IS_NULL()).
		ORDER_BY(table.Players.Name.ASC()).
		QueryContext(ctx, s.db, &dbPlayers)
	if err != nil {
		return nil, err
	}
	return convertPlayersToDomain(dbPlayers), nil
}

func (s *Storage) ListByBirthDateRange(ctx context.Context, from, to time.Time) ([]domain.Player, error) {
	var dbPlayers []model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		WHERE(table.Players.BirthDate.BETWEEN(
			sqlite.Date(from.Year(), from.Month(), from.Day()),
			sqlite.Date(to.Year(), to.Month(), to.Day()),
		)).
		ORDER_BY(table.Players.BirthDate.DESC(), table.Players.Name.ASC()).
		QueryContext(ctx, s.db, &dbPlayers)
	if err != nil {
		return nil, err
	}
	return convertPlayersToDomain(dbPlayers), nil
}

func (s *Storage) AssignTeam(ctx context.Context, playerID int, teamID int) error {
	res, err := table.Players.
		UPDATE(table.Players.TeamID, table.Players.UpdatedAt).
		SET(int32(teamID), time.Now()).
		WHERE(table.Players.ID.EQ(sqlite.Int(int64(playerID)))).
		ExecContext(ctx, s.db)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (s *Storage) ClearTeam(ctx context.Context, playerID int) error {
	res, err := table.Players.
		UPDATE(table.Players.TeamID, table.Players.UpdatedAt).
		SET(sqlite.NULL, time.Now()).
		WHERE(table.Players.ID.EQ(sqlite.Int(int64(playerID)))).
		ExecContext(ctx, s.db)
	if err != nil {
		return err
	}
	return checkAffected(res)
}
