// Package store provides SQLite-backed persistence for named design
// parameter presets. Only parameters are stored; generated geometry is
// always recomputed and never persisted.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/gearkit/cycloid"
)

// ErrNotFound is returned when a preset name does not exist.
var ErrNotFound = errors.New("preset not found")

// Preset is a named, timestamped design.
type Preset struct {
	Name      string             `json:"name"`
	Params    cycloid.Parameters `json:"params"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// DB wraps a SQLite connection for preset storage.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS presets (
		name TEXT PRIMARY KEY,
		params_json TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// presetRow is the storage shape of a preset.
type presetRow struct {
	Name       string `db:"name"`
	ParamsJSON string `db:"params_json"`
	UpdatedAt  string `db:"updated_at"`
}

// Save inserts or replaces a preset under the given name.
func (db *DB) Save(name string, p cycloid.Parameters) error {
	params, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal params: %w", err)
	}
	_, err = db.conn.Exec(
		`INSERT INTO presets (name, params_json, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET params_json=excluded.params_json, updated_at=excluded.updated_at`,
		name, string(params), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save preset %q: %w", name, err)
	}
	cycloid.Logger().Debug("preset saved", "name", name)
	return nil
}

// Get returns the preset stored under name.
func (db *DB) Get(name string) (Preset, error) {
	var row presetRow
	err := db.conn.Get(&row, `SELECT name, params_json, updated_at FROM presets WHERE name = ?`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return Preset{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return Preset{}, fmt.Errorf("get preset %q: %w", name, err)
	}
	return row.preset()
}

// List returns all presets ordered by name.
func (db *DB) List() ([]Preset, error) {
	var rows []presetRow
	if err := db.conn.Select(&rows, `SELECT name, params_json, updated_at FROM presets ORDER BY name`); err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	presets := make([]Preset, 0, len(rows))
	for _, row := range rows {
		p, err := row.preset()
		if err != nil {
			return nil, err
		}
		presets = append(presets, p)
	}
	return presets, nil
}

// Delete removes the preset stored under name.
func (db *DB) Delete(name string) error {
	res, err := db.conn.Exec(`DELETE FROM presets WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete preset %q: %w", name, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return nil
}

func (r presetRow) preset() (Preset, error) {
	var p Preset
	p.Name = r.Name
	if err := json.Unmarshal([]byte(r.ParamsJSON), &p.Params); err != nil {
		return Preset{}, fmt.Errorf("decode preset %q: %w", r.Name, err)
	}
	ts, err := time.Parse(time.RFC3339, r.UpdatedAt)
	if err != nil {
		return Preset{}, fmt.Errorf("decode preset %q timestamp: %w", r.Name, err)
	}
	p.UpdatedAt = ts
	return p, nil
}
