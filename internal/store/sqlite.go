// apps/go-server/internal/store/sqlite.go
//
// SQLite implementation of Store.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying embedded migrations from sql/*.sql (idempotent, recorded in _migrations).
//   - Mapping challenges/sessions to rows; list-valued fields are stored as JSON text.

package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/boggle/apps/go-server/internal/game"
)

//go:embed sql/*.sql
var migrations embed.FS

type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if missing) the database at path and migrates it.
func OpenSQLite(path string) (Store, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

// openDB ensures the parent directory exists, then opens with busy timeout and WAL.
func openDB(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	// Pragmas are per connection; one connection keeps foreign_keys in force.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// migrate applies embedded sql/*.sql files in lexical order, each in its own
// transaction unless the script manages transactions itself.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrations, "sql/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := migrations.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}
		sqlText := string(sqlBytes)

		upper := strings.ToUpper(sqlText)
		selfManaged := strings.Contains(upper, "BEGIN TRANSACTION") ||
			strings.Contains(upper, "PRAGMA FOREIGN_KEYS=OFF") ||
			strings.Contains(upper, "PRAGMA FOREIGN_KEYS = OFF")

		if selfManaged {
			if _, err := db.Exec(sqlText); err != nil {
				return fmt.Errorf("apply %s: %w", f, err)
			}
			if _, err := db.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
				return fmt.Errorf("record %s: %w", f, err)
			}
			log.Info().Str("migration", f).Msg("applied (self-managed)")
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(sqlText); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

/* ------------------------------ challenges ------------------------------ */

func (s *sqliteStore) SaveChallenge(ctx context.Context, c *game.Challenge) error {
	grid, err := json.Marshal(c.Grid)
	if err != nil {
		return fmt.Errorf("encode grid: %w", err)
	}
	sols, err := json.Marshal(nonNil(c.Solutions))
	if err != nil {
		return fmt.Errorf("encode solutions: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
        INSERT INTO challenges (id, name, size, difficulty, grid, solutions, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            name=excluded.name, size=excluded.size, difficulty=excluded.difficulty,
            grid=excluded.grid, solutions=excluded.solutions`,
		c.ID, c.Name, c.Size, c.Difficulty, string(grid), string(sols), formatTime(c.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("save challenge %s: %w", c.ID, err)
	}
	return nil
}

const challengeCols = `id, name, size, difficulty, grid, solutions, created_at`

func (s *sqliteStore) GetChallenge(ctx context.Context, id string) (*game.Challenge, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+challengeCols+` FROM challenges WHERE id=?`, id)
	c, err := scanChallenge(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return c, err
}

func (s *sqliteStore) ListChallenges(ctx context.Context) ([]*game.Challenge, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+challengeCols+` FROM challenges`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*game.Challenge{}
	for rows.Next() {
		c, err := scanChallenge(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	sortChallenges(out)
	return out, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanChallenge(row scanner) (*game.Challenge, error) {
	var (
		c                   game.Challenge
		grid, sols, created string
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Size, &c.Difficulty, &grid, &sols, &created); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(grid), &c.Grid); err != nil {
		return nil, fmt.Errorf("decode grid of %s: %w", c.ID, err)
	}
	if err := json.Unmarshal([]byte(sols), &c.Solutions); err != nil {
		return nil, fmt.Errorf("decode solutions of %s: %w", c.ID, err)
	}
	c.CreatedAt = parseTime(created)
	return &c, nil
}

/* ------------------------------- sessions ------------------------------- */

func (s *sqliteStore) SaveSession(ctx context.Context, sess *game.Session) error {
	sols, err := json.Marshal(nonNil(sess.Solutions))
	if err != nil {
		return fmt.Errorf("encode solutions: %w", err)
	}
	found, err := json.Marshal(nonNil(sess.Found))
	if err != nil {
		return fmt.Errorf("encode found: %w", err)
	}
	challengeID := sql.NullString{String: sess.ChallengeID, Valid: sess.ChallengeID != ""}
	_, err = s.db.ExecContext(ctx, `
        INSERT INTO sessions (id, challenge_id, solutions, found, started_at, ended_at, finished)
        VALUES (?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            found=excluded.found, ended_at=excluded.ended_at, finished=excluded.finished`,
		sess.ID, challengeID, string(sols), string(found),
		formatTime(sess.StartedAt), formatTime(sess.EndedAt), sess.Finished,
	)
	if err != nil {
		return fmt.Errorf("save session %s: %w", sess.ID, err)
	}
	return nil
}

func (s *sqliteStore) GetSession(ctx context.Context, id string) (*game.Session, error) {
	var (
		challengeID                 sql.NullString
		sols, found, started, ended string
		finished                    bool
	)
	err := s.db.QueryRowContext(ctx, `
        SELECT challenge_id, solutions, found, started_at, ended_at, finished
        FROM sessions WHERE id=?`, id,
	).Scan(&challengeID, &sols, &found, &started, &ended, &finished)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	sess := &game.Session{
		ID:          id,
		ChallengeID: challengeID.String,
		StartedAt:   parseTime(started),
		EndedAt:     parseTime(ended),
		Finished:    finished,
	}
	if err := json.Unmarshal([]byte(sols), &sess.Solutions); err != nil {
		return nil, fmt.Errorf("decode solutions of %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(found), &sess.Found); err != nil {
		return nil, fmt.Errorf("decode found of %s: %w", id, err)
	}
	return sess, nil
}

func (s *sqliteStore) Close() error { return s.db.Close() }

/* -------------------------------- helpers ------------------------------- */

// formatTime stores RFC3339 with nanoseconds; the zero time is stored as "".
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// parseTime parses RFC3339 timestamps; on error returns zero time.
func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
