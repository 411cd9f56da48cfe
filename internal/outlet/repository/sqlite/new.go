package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"outlet-assistant/internal/outlet/repository"
	pkgLog "outlet-assistant/pkg/log"
)

type implDatabase struct {
	l  pkgLog.Logger
	db *sql.DB
}

var _ repository.Database = (*implDatabase)(nil)

// New opens (or creates) the outlets database and ensures the schema.
func New(l pkgLog.Logger, path string) (*implDatabase, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve outlets db path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return nil, fmt.Errorf("ensure outlets db dir: %w", err)
	}

	db, err := sql.Open("sqlite", absPath)
	if err != nil {
		return nil, fmt.Errorf("open outlets db: %w", err)
	}

	d := &implDatabase{l: l, db: db}
	if err := d.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return d, nil
}

// Close closes the database connection.
func (d *implDatabase) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

func (d *implDatabase) ensureSchema() error {
	schema := `
CREATE TABLE IF NOT EXISTS outlets (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	address TEXT NOT NULL,
	city TEXT NOT NULL,
	state TEXT NOT NULL,
	postcode TEXT,
	latitude REAL,
	longitude REAL,
	phone TEXT,
	email TEXT,
	opening_time TEXT,
	closing_time TEXT,
	is_24_hours INTEGER DEFAULT 0,
	has_drive_thru INTEGER DEFAULT 0,
	has_wifi INTEGER DEFAULT 1,
	has_parking INTEGER DEFAULT 1,
	services TEXT,
	created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
`
	_, err := d.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("ensure outlets schema: %w", err)
	}
	return nil
}
