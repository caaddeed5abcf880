package datastore

import (
	"context"
	"database/sql"
	"path/filepath"
	"time"

	"github.com/aleister1102/mdurl/internal/common/errorwrapper"
	"github.com/aleister1102/mdurl/internal/common/filemanager"
	"github.com/aleister1102/mdurl/internal/models"
	"github.com/aleister1102/mdurl/internal/urlparse"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// SQLiteStore wraps the SQL database connection that keeps format history.
type SQLiteStore struct {
	db     *sql.DB
	logger zerolog.Logger
}

// FormattedURLEntry represents a record in the formatted_urls table.
type FormattedURLEntry struct {
	ID          int64
	Input       string
	Human       sql.NullString
	Computer    sql.NullString
	Protocol    sql.NullString
	Slashes     bool
	Auth        sql.NullString
	Hostname    sql.NullString
	Port        sql.NullString
	Pathname    sql.NullString
	Search      sql.NullString
	Hash        sql.NullString
	MaxLength   int
	ProcessedAt time.Time
}

// URL rebuilds the parsed record the entry was stored from.
func (e FormattedURLEntry) URL() urlparse.URL {
	return urlparse.URL{
		Protocol: stringPtr(e.Protocol),
		Slashes:  e.Slashes,
		Auth:     stringPtr(e.Auth),
		Hostname: stringPtr(e.Hostname),
		Port:     stringPtr(e.Port),
		Pathname: stringPtr(e.Pathname),
		Search:   stringPtr(e.Search),
		Hash:     stringPtr(e.Hash),
	}
}

// NewSQLiteStore opens dataSourceName and ensures the schema is set up.
func NewSQLiteStore(dataSourceName string, logger zerolog.Logger) (*SQLiteStore, error) {
	logger = logger.With().Str("component", "SQLiteStore").Logger()
	logger.Debug().Str("db_path", dataSourceName).Msg("Initializing database connection")

	if dataSourceName == "" {
		return nil, errorwrapper.NewValidationError("db_path", dataSourceName, "database path cannot be empty")
	}

	if err := filemanager.NewFileManager(logger).EnsureDirectory(filepath.Dir(dataSourceName), 0755); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to create database directory")
	}

	dbInstance, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		logger.Error().Err(err).Str("db_path", dataSourceName).Msg("Failed to open database")
		return nil, errorwrapper.NewError("sql.Open failed for %s: %w", dataSourceName, err)
	}

	store := &SQLiteStore{
		db:     dbInstance,
		logger: logger,
	}

	if err := store.InitSchema(); err != nil {
		_ = store.Close()
		return nil, errorwrapper.WrapError(err, "failed to initialize schema")
	}
	return store, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// InitSchema creates the formatted_urls table if it doesn't already exist.
func (s *SQLiteStore) InitSchema() error {
	queries := []string{`
	CREATE TABLE IF NOT EXISTS formatted_urls (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		input TEXT NOT NULL,
		human TEXT,
		computer TEXT,
		protocol TEXT,
		slashes BOOLEAN NOT NULL DEFAULT 0,
		auth TEXT,
		hostname TEXT,
		port TEXT,
		pathname TEXT,
		search TEXT,
		hash TEXT,
		max_length INTEGER NOT NULL DEFAULT 0,
		processed_at DATETIME NOT NULL
	);`,
		`CREATE INDEX IF NOT EXISTS idx_formatted_urls_hostname ON formatted_urls(hostname);`,
	}
	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			s.logger.Error().Err(err).Msg("Failed to initialize schema")
			return err
		}
	}
	s.logger.Debug().Msg("Schema initialized (formatted_urls table ensured)")
	return nil
}

// InsertBatch stores results in a single transaction and returns the row count.
func (s *SQLiteStore) InsertBatch(ctx context.Context, results []models.FormatResult) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, errorwrapper.WrapError(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO formatted_urls
		(input, human, computer, protocol, slashes, auth, hostname, port, pathname, search, hash, max_length, processed_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, errorwrapper.WrapError(err, "failed to prepare insert")
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, r := range results {
		_, err := stmt.ExecContext(ctx,
			r.Input,
			nullString(StringPtrOrNil(r.Human)),
			nullString(StringPtrOrNil(r.Computer)),
			nullString(r.URL.Protocol),
			r.URL.Slashes,
			nullString(r.URL.Auth),
			nullString(r.URL.Hostname),
			nullString(r.URL.Port),
			nullString(r.URL.Pathname),
			nullString(r.URL.Search),
			nullString(r.URL.Hash),
			r.MaxLength,
			now,
		)
		if err != nil {
			return 0, errorwrapper.WrapError(err, "failed to insert "+r.Input)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, errorwrapper.WrapError(err, "failed to commit transaction")
	}

	s.logger.Info().Int("records_written", len(results)).Msg("Stored format results")
	return len(results), nil
}

// FindByHostname returns stored entries for hostname, oldest first.
func (s *SQLiteStore) FindByHostname(ctx context.Context, hostname string) ([]FormattedURLEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT id, input, human, computer, protocol, slashes, auth, hostname, port, pathname, search, hash, max_length, processed_at
	FROM formatted_urls WHERE hostname = ? ORDER BY id`, hostname)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to query formatted_urls")
	}
	defer rows.Close()

	var entries []FormattedURLEntry
	for rows.Next() {
		var e FormattedURLEntry
		if err := rows.Scan(&e.ID, &e.Input, &e.Human, &e.Computer,
			&e.Protocol, &e.Slashes, &e.Auth, &e.Hostname, &e.Port, &e.Pathname, &e.Search, &e.Hash,
			&e.MaxLength, &e.ProcessedAt); err != nil {
			return nil, errorwrapper.WrapError(err, "failed to scan formatted_urls row")
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the number of stored entries.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM formatted_urls`).Scan(&n); err != nil {
		return 0, errorwrapper.WrapError(err, "failed to count formatted_urls")
	}
	return n, nil
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return urlparse.StringPtr(ns.String)
}

func nullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}
