package devserver

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS notes (
	seq       INTEGER PRIMARY KEY AUTOINCREMENT,
	id        TEXT NOT NULL UNIQUE,
	titulo    TEXT NOT NULL,
	contenido TEXT NOT NULL
)`

// SQLiteStore keeps notes in a SQLite database file.
type SQLiteStore struct {
	db *sql.DB
}

// openSQLite opens (or creates) a SQLite database at the given path with WAL
// journaling.
func openSQLite(path string) (*sql.DB, error) {
	// ensure parent directory exists to avoid SQLITE_CANTOPEN errors
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewSQLiteStore opens the database at path and applies the schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := openSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply sqlite schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]Note, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, titulo, contenido FROM notes ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []Note{}
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Content); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Create(ctx context.Context, title, content string) (Note, error) {
	n := Note{ID: uuid.NewString(), Title: title, Content: content}
	if _, err := s.db.ExecContext(ctx, `INSERT INTO notes (id, titulo, contenido) VALUES (?,?,?)`, n.ID, n.Title, n.Content); err != nil {
		return Note{}, err
	}
	return n, nil
}

func (s *SQLiteStore) Update(ctx context.Context, n Note) (Note, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE notes SET titulo = ?, contenido = ? WHERE id = ?`, n.Title, n.Content, n.ID)
	if err != nil {
		return Note{}, err
	}
	if affected, err := res.RowsAffected(); err != nil {
		return Note{}, err
	} else if affected == 0 {
		return Note{}, ErrNotFound
	}
	return n, nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }
