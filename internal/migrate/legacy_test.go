package sqlite3

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", "file:"+filepath.Join(t.TempDir(), "academy.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	db.SetMaxOpenConns(1)
	return db
}

func testLog() *logrus.Entry {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l.WithFields(map[string]interface{}{"from": "test"})
}

func TestFixLegacyPlayers(t *testing.T) {
	db := openTestDB(t)
	_, err := db.Exec(`CREATE TABLE players (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		age INTEGER,
		position TEXT,
		team_id INTEGER,
		parent_name TEXT,
		parent_phone TEXT,
		parent_email TEXT,
		medical_notes TEXT,
		emergency_contact TEXT,
		emergency_phone TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO players (name, age, position) VALUES ('Mateo García', 10, 'Forward')`)
	require.NoError(t, err)

	require.NoError(t, FixLegacyPlayers(db, testLog()))

	hasAge, hasBirthDate, err := inspectPlayersColumns(db)
	require.NoError(t, err)
	require.False(t, hasAge)
	require.True(t, hasBirthDate)

	var birthDate string
	require.NoError(t, db.QueryRow(`SELECT birth_date FROM players WHERE id = 1`).Scan(&birthDate))
	wantYear := time.Now().UTC().AddDate(-10, 0, 0).Format("2006")
	require.Equal(t, wantYear, birthDate[:4])

	var active int
	require.NoError(t, db.QueryRow(`SELECT is_active FROM players WHERE id = 1`).Scan(&active))
	require.Equal(t, 1, active)

	// second run must be a no-op
	require.NoError(t, FixLegacyPlayers(db, testLog()))
	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM players`).Scan(&count))
	require.Equal(t, 1, count)
}

func TestFixLegacyPlayersKeepsExistingBirthDate(t *testing.T) {
	db := openTestDB(t)
	_, err := db.Exec(`CREATE TABLE players (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		age INTEGER,
		birth_date TEXT,
		position TEXT,
		team_id INTEGER,
		parent_name TEXT,
		parent_phone TEXT,
		parent_email TEXT,
		medical_notes TEXT,
		emergency_contact TEXT,
		emergency_phone TEXT,
		is_active INTEGER,
		registration_date TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO players (name, age, birth_date) VALUES ('Sara López', 9, '2016-03-14')`)
	require.NoError(t, err)

	require.NoError(t, FixLegacyPlayers(db, testLog()))

	var birthDate string
	require.NoError(t, db.QueryRow(`SELECT birth_date FROM players WHERE id = 1`).Scan(&birthDate))
	require.Equal(t, "2016-03-14", birthDate)
}

func TestFixLegacyPlayersNoopOnCurrentSchema(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, UpAcademyDB(db))

	require.NoError(t, FixLegacyPlayers(db, testLog()))

	hasAge, hasBirthDate, err := inspectPlayersColumns(db)
	require.NoError(t, err)
	require.False(t, hasAge)
	require.True(t, hasBirthDate)
}
