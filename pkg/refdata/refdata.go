// Package refdata provides a SQLite-backed cache of Quran reference data.
// Surah metadata changes never, so it is synced from the backend once and the
// topic wizard validates ayah references against the local copy instead of a
// round-trip per keystroke.
package refdata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/rashidq/quranadmin/pkg/model"
)

var ErrSurahUnknown = errors.New("refdata: unknown surah number")
var ErrAyahOutOfRange = errors.New("refdata: ayah number out of range for surah")

// Cache is the local reference-data store.
type Cache struct {
	db *sql.DB
}

// Open opens (or creates) the cache database and runs migrations.
func Open(dbPath string) (*Cache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("refdata: open db: %w", err)
	}

	ctx := context.Background()

	// Enable WAL mode for better concurrent read performance
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("refdata: set WAL: %w", err)
	}
	// Set busy timeout to avoid "database is locked" under concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("refdata: set busy_timeout: %w", err)
	}

	c := &Cache{db: db}
	if err := c.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("refdata: migrate: %w", err)
	}
	return c, nil
}

// Close closes the database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) migrate(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS surahs (
		number       INTEGER PRIMARY KEY CHECK(number >= 1 AND number <= 114),
		name         TEXT    NOT NULL,
		english_name TEXT    NOT NULL DEFAULT '',
		ayah_count   INTEGER NOT NULL CHECK(ayah_count > 0)
	);
	`
	_, err := c.db.ExecContext(ctx, schema)
	return err
}

// Sync replaces the cached surah list with the backend's. Called after login;
// a failure leaves whatever was cached before.
func (c *Cache) Sync(ctx context.Context, surahs []model.Surah) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("refdata: begin sync: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM surahs"); err != nil {
		return fmt.Errorf("refdata: clear surahs: %w", err)
	}
	const insert = `INSERT INTO surahs (number, name, english_name, ayah_count) VALUES (?, ?, ?, ?)`
	for _, s := range surahs {
		if _, err := tx.ExecContext(ctx, insert, s.Number, s.Name, s.EnglishName, s.AyahCount); err != nil {
			return fmt.Errorf("refdata: insert surah %d: %w", s.Number, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("refdata: commit sync: %w", err)
	}
	return nil
}

// Surah looks up one cached surah by number.
func (c *Cache) Surah(ctx context.Context, number int) (*model.Surah, error) {
	const query = `SELECT number, name, english_name, ayah_count FROM surahs WHERE number = ?`
	var s model.Surah
	err := c.db.QueryRowContext(ctx, query, number).Scan(&s.Number, &s.Name, &s.EnglishName, &s.AyahCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSurahUnknown
	}
	if err != nil {
		return nil, fmt.Errorf("refdata: query surah: %w", err)
	}
	return &s, nil
}

// Surahs returns all cached surahs in order.
func (c *Cache) Surahs(ctx context.Context) ([]model.Surah, error) {
	const query = `SELECT number, name, english_name, ayah_count FROM surahs ORDER BY number`
	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("refdata: query surahs: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []model.Surah
	for rows.Next() {
		var s model.Surah
		if err := rows.Scan(&s.Number, &s.Name, &s.EnglishName, &s.AyahCount); err != nil {
			return nil, fmt.Errorf("refdata: scan surah: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Empty reports whether the cache has no surahs yet.
func (c *Cache) Empty(ctx context.Context) (bool, error) {
	var n int
	if err := c.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM surahs").Scan(&n); err != nil {
		return false, fmt.Errorf("refdata: count surahs: %w", err)
	}
	return n == 0, nil
}

// ValidateRef checks an ayah reference against the cached surah metadata.
// With an empty cache every reference passes; validation is best-effort and
// the backend is still the authority.
func (c *Cache) ValidateRef(ctx context.Context, ref model.AyahRef) error {
	s, err := c.Surah(ctx, ref.Sura)
	if errors.Is(err, ErrSurahUnknown) {
		empty, emptyErr := c.Empty(ctx)
		if emptyErr == nil && empty {
			return nil
		}
		return ErrSurahUnknown
	}
	if err != nil {
		return err
	}
	if ref.Aya < 1 || ref.Aya > s.AyahCount {
		return ErrAyahOutOfRange
	}
	return nil
}
