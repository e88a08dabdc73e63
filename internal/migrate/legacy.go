package sqlite3

import (
	"database/sql"

	"github.com/sirupsen/logrus"
)

// FixLegacyPlayers rewrites a players table that still carries the
// deprecated stored age column. Rows are copied into a fresh table: the
// birth date is taken from an existing birth_date column when present and
// non-empty, otherwise approximated as today minus the stored age, which
// only recovers year granularity. The rewrite is gated on the age column
// being present, so a second run finds nothing to do.
func FixLegacyPlayers(db *sql.DB, log *logrus.Entry) error {
	hasAge, hasBirthDate, err := inspectPlayersColumns(db)
	if err != nil {
		return err
	}
	if !hasAge {
		return nil
	}
	log.Warn("legacy age column detected, rewriting players table")

	if _, err := db.Exec(`DROP TABLE IF EXISTS players_migrated`); err != nil {
		return err
	}
	if _, err := db.Exec(createPlayersMigrated); err != nil {
		return err
	}
	copyStmt := copyFromAge
	if hasBirthDate {
		copyStmt = copyWithBirthDate
	}
	if _, err := db.Exec(copyStmt); err != nil {
		return err
	}
	if _, err := db.Exec(`DROP TABLE players`); err != nil {
		return err
	}
	if _, err := db.Exec(`ALTER TABLE players_migrated RENAME TO players`); err != nil {
		return err
	}
	log.Info("players table migrated off the age column")
	return nil
}

func inspectPlayersColumns(db *sql.DB) (hasAge bool, hasBirthDate bool, err error) {
	rows, err := db.Query(`PRAGMA table_info(players)`)
	if err != nil {
		return false, false, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid        int
			name       string
			colType    string
			notNull    int
			defaultVal sql.NullString
			pk         int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &defaultVal, &pk); err != nil {
			return false, false, err
		}
		switch name {
		case "age":
			hasAge = true
		case "birth_date":
			hasBirthDate = true
		}
	}
	return hasAge, hasBirthDate, rows.Err()
}

const createPlayersMigrated = `
CREATE TABLE players_migrated (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    birth_date DATE NOT NULL,
    position TEXT,
    team_id INTEGER,
    parent_name TEXT,
    parent_phone TEXT,
    parent_email TEXT,
    medical_notes TEXT,
    emergency_contact TEXT,
    emergency_phone TEXT,
    is_active INTEGER NOT NULL DEFAULT 1,
    registration_date DATE NOT NULL DEFAULT CURRENT_DATE,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (team_id) REFERENCES teams (id)
)`

const copyWithBirthDate = `
INSERT INTO players_migrated (id, name, birth_date, position, team_id, parent_name, parent_phone, parent_email, medical_notes, emergency_contact, emergency_phone, is_active, registration_date, created_at, updated_at)
SELECT
    id,
    name,
    CASE
        WHEN birth_date IS NOT NULL AND birth_date != '' THEN birth_date
        ELSE DATE('now', '-' || COALESCE(age, 10) || ' years')
    END,
    position,
    team_id,
    parent_name,
    parent_phone,
    parent_email,
    medical_notes,
    emergency_contact,
    emergency_phone,
    COALESCE(is_active, 1),
    COALESCE(registration_date, CURRENT_TIMESTAMP),
    created_at,
    updated_at
FROM players`

const copyFromAge = `
INSERT INTO players_migrated (id, name, birth_date, position, team_id, parent_name, parent_phone, parent_email, medical_notes, emergency_contact, emergency_phone, is_active, registration_date, created_at, updated_at)
SELECT
    id,
    name,
    DATE('now', '-' || age || ' years'),
    position,
    team_id,
    parent_name,
    parent_phone,
    parent_email,
    medical_notes,
    emergency_contact,
    emergency_phone,
    1,
    CURRENT_TIMESTAMP,
    created_at,
    updated_at
FROM players`
