package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ThomasSalomon/chicosAPP-V2/auth/gen/model"
	"github.com/ThomasSalomon/chicosAPP-V2/auth/gen/table"
	"github.com/ThomasSalomon/chicosAPP-V2/auth/storage"
	"github.com/ThomasSalomon/chicosAPP-V2/auth/users"
	sqlite3 "github.com/ThomasSalomon/chicosAPP-V2/internal/migrate"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.AuthStorage = (*Storage)(nil)

func New(l *logrus.Logger, fileName string) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "auth-storage",
	})
	db, err := sql.Open("sqlite3", buildSource(fileName))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = sqlite3.UpAuthDB(db)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("auth storage connected")
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

func (s *Storage) CreateUser(ctx context.Context, user users.User, passwordHash string) error {
	now := time.Now()
	dbUser := model.Users{
		ID:           user.ID.String(),
		Email:        user.Email,
		Name:         user.Name,
		Role:         string(user.Role),
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	_, err := table.Users.
		INSERT(table.Users.AllColumns.Except(table.Users.DeletedAt)).
		MODEL(dbUser).
		ExecContext(ctx, s.db)
	if err != nil {
		return err
	}
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id uuid.UUID) (users.User, error) {
	var dbUser model.Users
	err := table.Users.
		SELECT(table.Users.AllColumns.Except(table.Users.PasswordHash)).
		FROM(table.Users).
		WHERE(table.Users.ID.EQ(sqlite.String(id.String())).
			AND(table.Users.DeletedAt.IS_NULL())).
		QueryContext(ctx, s.db, &dbUser)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return users.User{}, sql.ErrNoRows
		}
		return users.User{}, err
	}
	return convertUserToDomain(dbUser)
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (users.User, error) {
	var dbUser model.Users
	err := table.Users.
		SELECT(table.Users.AllColumns.Except(table.Users.PasswordHash)).
		FROM(table.Users).
		WHERE(table.Users.Email.EQ(sqlite.String(email)).
			AND(table.Users.DeletedAt.IS_NULL())).
		QueryContext(ctx, s.db, &dbUser)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return users.User{}, sql.ErrNoRows
		}
		return users.User{}, err
	}
	return convertUserToDomain(dbUser)
}

func (s *Storage) GetPasswordHash(ctx context.Context, email string) (string, error) {
	var dbUser model.Users
	err := table.Users.
		SELECT(table.Users.PasswordHash).
		FROM(table.Users).
		WHERE(table.Users.Email.EQ(sqlite.String(email)).
			AND(table.Users.DeletedAt.IS_NULL())).
		QueryContext(ctx, s.db, &dbUser)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return "", sql.ErrNoRows
		}
		return "", err
	}
	return dbUser.PasswordHash, nil
}

func (s *Storage) ListUsers(ctx context.Context) ([]users.User, error) {
	var dbUsers []model.Users
	err := table.Users.
		SELECT(table.Users.AllColumns.Except(table.Users.PasswordHash)).
		FROM(table.Users).
		WHERE(table.Users.DeletedAt.IS_NULL()).
		ORDER_BY(table.Users.CreatedAt.DESC()).
		QueryContext(ctx, s.db, &dbUsers)
	if err != nil {
		return nil, err
	}
	converted := make([]users.User, 0, len(dbUsers))
	for _, dbUser := range dbUsers {
		u, err := convertUserToDomain(dbUser)
		if err != nil {
			return nil, err
		}
		converted = append(converted, u)
	}
	return converted, nil
}

func (s *Storage) UpdateUserRole(ctx context.Context, id uuid.UUID, role users.Role) error {
	res, err := table.Users.
		UPDATE(table.Users.Role, table.Users.UpdatedAt).
		SET(string(role), time.Now()).
		WHERE(table.Users.ID.EQ(sqlite.String(id.String())).
			AND(table.Users.DeletedAt.IS_NULL())).
		ExecContext(ctx, s.db)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func convertUserToDomain(user model.Users) (users.User, error) {
	id, err := uuid.Parse(user.ID)
	if err != nil {
		return users.User{}, err
	}
	return users.User{
		ID:           id,
		Email:        user.Email,
		Name:         user.Name,
		Role:         users.Role(user.Role),
		RegisteredAt: user.CreatedAt,
	}, nil
}
