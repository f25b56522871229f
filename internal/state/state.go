// Package state persists the user's favorite flags in a local sqlite
// database under the configured data root.
package state

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/glebarez/sqlite"

	"pokedex/internal/config"
)

type DB struct {
	SQL  *sql.DB
	Path string
}

// Open creates the data root if needed and opens the favorites
// database with WAL and a busy timeout.
func Open(cfg *config.Config) (*DB, error) {
	if cfg == nil {
		return nil, errors.New("nil config")
	}
	if cfg.General.DataRoot == "" {
		return nil, errors.New("general.data_root required")
	}
	if err := os.MkdirAll(cfg.General.DataRoot, 0o755); err != nil {
		return nil, err
	}
	return NewDB(filepath.Join(cfg.General.DataRoot, "pokedex.db"))
}

// NewDB opens (and initializes) the database at an explicit path.
func NewDB(path string) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout=5000&_pragma=journal_mode(WAL)", path)
	sqldb, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := initSchema(sqldb); err != nil {
		_ = sqldb.Close()
		return nil, err
	}
	return &DB{SQL: sqldb, Path: path}, nil
}

func (db *DB) Close() error { return db.SQL.Close() }

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS favorites (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_favorites_name ON favorites(name);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("init favorites schema: %w", err)
		}
	}
	return nil
}

// Favorite is one persisted row.
type Favorite struct {
	ID        int
	Name      string
	CreatedAt time.Time
}

// SetFavorite marks an identity as favorite. Re-marking refreshes the
// stored name but keeps the row.
func (db *DB) SetFavorite(id int, name string) error {
	_, err := db.SQL.Exec(`INSERT INTO favorites(id, name, created_at) VALUES(?,?,?)
		ON CONFLICT(id) DO UPDATE SET name=excluded.name`,
		id, name, time.Now().Unix())
	return err
}

// ClearFavorite removes the flag for an identity. Clearing an unknown
// identity is a no-op.
func (db *DB) ClearFavorite(id int) error {
	_, err := db.SQL.Exec(`DELETE FROM favorites WHERE id = ?`, id)
	return err
}

// IsFavorite reports whether an identity is flagged.
func (db *DB) IsFavorite(id int) (bool, error) {
	var n int
	err := db.SQL.QueryRow(`SELECT COUNT(1) FROM favorites WHERE id = ?`, id).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Toggle flips the flag for an identity and returns the new value.
func (db *DB) Toggle(id int, name string) (bool, error) {
	fav, err := db.IsFavorite(id)
	if err != nil {
		return false, err
	}
	if fav {
		return false, db.ClearFavorite(id)
	}
	return true, db.SetFavorite(id, name)
}

// ListFavorites returns all flagged identities ordered by id.
func (db *DB) ListFavorites() ([]Favorite, error) {
	rows, err := db.SQL.Query(`SELECT id, name, created_at FROM favorites ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Favorite
	for rows.Next() {
		var f Favorite
		var ts int64
		if err := rows.Scan(&f.ID, &f.Name, &ts); err != nil {
			return nil, err
		}
		f.CreatedAt = time.Unix(ts, 0)
		out = append(out, f)
	}
	return out, rows.Err()
}

// FavoriteIDs returns the flagged identities as a lookup set, for
// merging into a freshly fetched catalog.
func (db *DB) FavoriteIDs() (map[int]bool, error) {
	rows, err := db.SQL.Query(`SELECT id FROM favorites`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[int]bool)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out[id] = true
	}
	return out, rows.Err()
}

// ClearAll wipes the store. Used by the favorites --clear subcommand.
func (db *DB) ClearAll() error {
	_, err := db.SQL.Exec(`DELETE FROM favorites`)
	return err
}
