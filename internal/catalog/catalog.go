// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists collected works in a local SQLite database with an
// FTS5 full-text index, so a fetched corpus can be searched without
// re-querying the API.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/SpectraGen/openalex-scrapping/internal/filter"
)

// Store manages the works catalog database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the catalog database at path, creating the schema if
// it does not exist.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS works (
			id TEXT NOT NULL UNIQUE,
			title TEXT,
			year INTEGER,
			doi TEXT,
			journal TEXT,
			citations INTEGER,
			oa_url TEXT,
			oa_status TEXT,
			publication_date TEXT,
			authors TEXT,
			relevance_score REAL,
			search_method TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_works_year ON works(year)`,
		`CREATE INDEX IF NOT EXISTS idx_works_oa_status ON works(oa_status)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='works_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE works_fts USING fts5(title, authors, journal, content=works, content_rowid=rowid)`,
			`CREATE TRIGGER works_ai AFTER INSERT ON works BEGIN
				INSERT INTO works_fts(rowid, title, authors, journal) VALUES (new.rowid, new.title, new.authors, new.journal);
			END`,
			`CREATE TRIGGER works_ad AFTER DELETE ON works BEGIN
				INSERT INTO works_fts(works_fts, rowid, title, authors, journal) VALUES('delete', old.rowid, old.title, old.authors, old.journal);
			END`,
			`CREATE TRIGGER works_au AFTER UPDATE ON works BEGIN
				INSERT INTO works_fts(works_fts, rowid, title, authors, journal) VALUES('delete', old.rowid, old.title, old.authors, old.journal);
				INSERT INTO works_fts(rowid, title, authors, journal) VALUES (new.rowid, new.title, new.authors, new.journal);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// ImportCSV ingests a results CSV (the fetch pipeline's output schema) into
// the catalog. Existing works are replaced by id; rows without an id are
// skipped with a warning. Returns the number of works stored.
func (s *Store) ImportCSV(ctx context.Context, path string, w io.Writer) (int, error) {
	table, err := filter.LoadTable(path)
	if err != nil {
		return 0, fmt.Errorf("loading %s: %w", path, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO works
		(id, title, year, doi, journal, citations, oa_url, oa_status, publication_date, authors, relevance_score, search_method)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	stored := 0
	for _, row := range table.Rows {
		if row["id"] == "" {
			fmt.Fprintf(w, "warning: skipping row without id (title %q)\n", row["title"])
			continue
		}

		year, _ := strconv.Atoi(strings.TrimSpace(row["year"]))
		citations, _ := strconv.Atoi(strings.TrimSpace(row["citations"]))
		var relevance any
		if v := strings.TrimSpace(row["relevance_score"]); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				relevance = f
			}
		}

		if _, err := stmt.ExecContext(ctx,
			row["id"], row["title"], year, row["doi"], row["journal"], citations,
			row["oa_url"], row["oa_status"], row["publication_date"], row["authors"],
			relevance, row["search_method"],
		); err != nil {
			return stored, fmt.Errorf("inserting %s: %w", row["id"], err)
		}
		stored++
	}

	if err := tx.Commit(); err != nil {
		return stored, fmt.Errorf("committing transaction: %w", err)
	}

	fmt.Fprintf(w, "stored %d works in the catalog\n", stored)
	return stored, nil
}

// Entry is one catalog row returned by Search.
type Entry struct {
	ID           string
	Title        string
	Year         int
	Journal      string
	Citations    int
	OAStatus     string
	Authors      string
	SearchMethod string
}

// Search queries the catalog. A non-empty query runs FTS5 full-text search
// over title, authors, and journal, ranked by relevance; an empty query lists
// works ordered by year then citations, newest and most cited first.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	var (
		rows *sql.Rows
		err  error
	)
	if query != "" {
		rows, err = s.db.QueryContext(ctx,
			`SELECT w.id, w.title, w.year, w.journal, w.citations, w.oa_status, w.authors, w.search_method
			FROM works_fts
			JOIN works w ON w.rowid = works_fts.rowid
			WHERE works_fts MATCH ?
			ORDER BY works_fts.rank
			LIMIT ?`, query, limit)
	} else {
		rows, err = s.db.QueryContext(ctx,
			`SELECT id, title, year, journal, citations, oa_status, authors, search_method
			FROM works
			ORDER BY year DESC, citations DESC
			LIMIT ?`, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Title, &e.Year, &e.Journal, &e.Citations,
			&e.OAStatus, &e.Authors, &e.SearchMethod); err != nil {
			return nil, fmt.Errorf("scanning catalog row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// FormatEntries writes catalog entries as a human-readable table to w.
func FormatEntries(entries []Entry, w io.Writer) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No works found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %-4s  %-8s  %-7s  %s\n",
		"No.", "Title", "Year", "OA", "Cites", "Search")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for i, e := range entries {
		title := e.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		year := ""
		if e.Year > 0 {
			year = strconv.Itoa(e.Year)
		}
		fmt.Fprintf(w, "%-4d  %-60s  %-4s  %-8s  %-7d  %s\n",
			i+1, title, year, e.OAStatus, e.Citations, e.SearchMethod)
	}
	fmt.Fprintf(w, "\n%d works\n", len(entries))
}
