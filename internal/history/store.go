package history

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS query_history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	connection_name TEXT NOT NULL,
	database_name TEXT NOT NULL,
	query TEXT NOT NULL,
	executed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	duration_ms INTEGER NOT NULL,
	rows_affected INTEGER NOT NULL,
	success BOOLEAN NOT NULL,
	error_message TEXT
);
CREATE INDEX IF NOT EXISTS idx_query_history_executed_at
	ON query_history(executed_at);
`

// Entry represents a single query history entry
type Entry struct {
	ID             int
	ConnectionName string
	DatabaseName   string
	Query          string
	ExecutedAt     time.Time
	Duration       time.Duration
	RowsAffected   int64
	Success        bool
	ErrorMessage   string
}

// Store manages query history persistence
type Store struct {
	db         *sql.DB
	maxEntries int
}

// NewStore creates a new history store capped at maxEntries rows; zero
// means unlimited.
func NewStore(path string, maxEntries int) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, maxEntries: maxEntries}, nil
}

// Add adds a new query to history
func (s *Store) Add(entry Entry) error {
	_, err := s.db.Exec(`
		INSERT INTO query_history
		(connection_name, database_name, query, duration_ms, rows_affected, success, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ConnectionName,
		entry.DatabaseName,
		entry.Query,
		entry.Duration.Milliseconds(),
		entry.RowsAffected,
		entry.Success,
		entry.ErrorMessage,
	)
	if err != nil {
		return err
	}
	return s.trim()
}

// trim drops the oldest rows beyond the configured cap.
func (s *Store) trim() error {
	if s.maxEntries <= 0 {
		return nil
	}
	_, err := s.db.Exec(`
		DELETE FROM query_history
		WHERE id NOT IN (
			SELECT id FROM query_history
			ORDER BY executed_at DESC, id DESC
			LIMIT ?
		)`, s.maxEntries)
	return err
}

// GetRecent retrieves the most recent query history entries
func (s *Store) GetRecent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, connection_name, database_name, query, executed_at,
		       duration_ms, rows_affected, success, error_message
		FROM query_history
		ORDER BY executed_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return scanEntries(rows)
}

// Search searches query history by query text
func (s *Store) Search(query string, limit int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, connection_name, database_name, query, executed_at,
		       duration_ms, rows_affected, success, error_message
		FROM query_history
		WHERE query LIKE ?
		ORDER BY executed_at DESC
		LIMIT ?`, "%"+query+"%", limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		var durationMs int64
		var executedAt string

		err := rows.Scan(
			&e.ID,
			&e.ConnectionName,
			&e.DatabaseName,
			&e.Query,
			&executedAt,
			&durationMs,
			&e.RowsAffected,
			&e.Success,
			&e.ErrorMessage,
		)
		if err != nil {
			return nil, err
		}

		e.Duration = time.Duration(durationMs) * time.Millisecond
		e.ExecutedAt, _ = time.Parse("2006-01-02 15:04:05", executedAt)

		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
