package session

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/koryo-sim/koryo-sim/sim"
	"github.com/koryo-sim/koryo-sim/sim/overlay"
)

// SQLiteStore persists one session in a SQLite database. Records are stored
// as JSON bodies keyed by insertion order, so the on-disk shape stays
// byte-compatible with the JSONL log.
type SQLiteStore struct {
	db *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS log_records (
	seq  INTEGER PRIMARY KEY AUTOINCREMENT,
	turn INTEGER NOT NULL,
	body TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS session_cursor (
	id   INTEGER PRIMARY KEY CHECK (id = 1),
	turn INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS session_meta (
	id   INTEGER PRIMARY KEY CHECK (id = 1),
	body TEXT NOT NULL
);
`

// OpenSQLite opens (creating if needed) a session database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// modernc.org/sqlite serializes writes; one connection avoids lock
	// contention errors under concurrent sessions.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init sqlite schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) AppendRecord(rec sim.LogRecord) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal log record: %w", err)
	}
	if _, err := s.db.Exec(
		`INSERT INTO log_records (turn, body) VALUES (?, ?)`,
		rec.State.Turn, string(body),
	); err != nil {
		return fmt.Errorf("insert log record: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ReadLog() ([]sim.LogRecord, error) {
	rows, err := s.db.Query(`SELECT body FROM log_records ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query log records: %w", err)
	}
	defer rows.Close()

	var records []sim.LogRecord
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("scan log record: %w", err)
		}
		var rec sim.LogRecord
		if err := json.Unmarshal([]byte(body), &rec); err != nil {
			return nil, sim.Parsef(err, "log record %d", len(records)+1)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *SQLiteStore) ReadCursorState(cursor int) (sim.State, error) {
	var body string
	err := s.db.QueryRow(
		`SELECT body FROM log_records WHERE turn <= ? ORDER BY turn DESC, seq DESC LIMIT 1`,
		cursor,
	).Scan(&body)
	if err == sql.ErrNoRows {
		return sim.State{}, sim.Rangef("cursor %d precedes the first recorded turn", cursor)
	}
	if err != nil {
		return sim.State{}, fmt.Errorf("query cursor state: %w", err)
	}
	var rec sim.LogRecord
	if err := json.Unmarshal([]byte(body), &rec); err != nil {
		return sim.State{}, sim.Parsef(err, "log record at cursor %d", cursor)
	}
	return rec.State, nil
}

func (s *SQLiteStore) MaxTurn() (int, error) {
	var maxTurn sql.NullInt64
	if err := s.db.QueryRow(`SELECT MAX(turn) FROM log_records`).Scan(&maxTurn); err != nil {
		return 0, fmt.Errorf("query max turn: %w", err)
	}
	return int(maxTurn.Int64), nil
}

func (s *SQLiteStore) ReadCursor() (int, bool, error) {
	var cursor int
	err := s.db.QueryRow(`SELECT turn FROM session_cursor WHERE id = 1`).Scan(&cursor)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("query cursor: %w", err)
	}
	return cursor, true, nil
}

func (s *SQLiteStore) WriteCursor(cursor int) error {
	if _, err := s.db.Exec(
		`INSERT INTO session_cursor (id, turn) VALUES (1, ?)
		 ON CONFLICT (id) DO UPDATE SET turn = excluded.turn`,
		cursor,
	); err != nil {
		return fmt.Errorf("write cursor: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ReadMeta() (overlay.Meta, error) {
	var body string
	err := s.db.QueryRow(`SELECT body FROM session_meta WHERE id = 1`).Scan(&body)
	if err == sql.ErrNoRows {
		return overlay.Meta{}, nil
	}
	if err != nil {
		return overlay.Meta{}, fmt.Errorf("query meta: %w", err)
	}
	var meta overlay.Meta
	if err := json.Unmarshal([]byte(body), &meta); err != nil {
		return overlay.Meta{}, sim.Parsef(err, "session meta")
	}
	return meta, nil
}

func (s *SQLiteStore) WriteMeta(meta overlay.Meta) error {
	body, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("marshal meta: %w", err)
	}
	if _, err := s.db.Exec(
		`INSERT INTO session_meta (id, body) VALUES (1, ?)
		 ON CONFLICT (id) DO UPDATE SET body = excluded.body`,
		string(body),
	); err != nil {
		return fmt.Errorf("write meta: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
