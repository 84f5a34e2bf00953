// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package sqlite implements the on-disk store backing the command-schema
// cache. Loading a vanilla commands report means parsing a multi-megabyte
// JSON document and resolving its redirects; a CLI invoked once per file
// shouldn't pay that on every run, so generated schemas are kept here
// keyed by a content hash of the source report.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"log"
	"time"

	"github.com/datapack-land/mcsyntax/internal/stdlib"
	_ "modernc.org/sqlite"
)

var (
	//go:embed schema.sql
	schemaDDL string
)

type Store struct {
	path string
	db   *sql.DB
	ctx  context.Context
}

// Create creates a new store.
// Returns an error if the database file already exists.
// The caller must delete the database file if they want to start fresh.
func Create(path string, ctx context.Context) error {
	// if the stat fails because the file doesn't exist, we're okay.
	// if it fails for any other reason, it's an error.
	if ok, err := stdlib.IsFileExists(path); err != nil {
		log.Printf("cache: create: %q: %s\n", path, err)
		return err
	} else if ok {
		// we're not forcing the creation of a new database so this is an error
		log.Printf("cache: create: %q: %s\n", path, "database already exists")
		return ErrDatabaseExists
	}

	// create the database
	db, err := sql.Open("sqlite", path)
	if err != nil {
		log.Printf("cache: create: %v\n", err)
		return err
	}
	defer db.Close()

	// confirm that the database has foreign keys enabled
	checkPragma := "PRAGMA" + " foreign_keys = ON"
	if rslt, err := db.Exec(checkPragma); err != nil {
		log.Printf("cache: create: foreign keys are disabled\n")
		return ErrForeignKeysDisabled
	} else if rslt == nil {
		log.Printf("cache: create: foreign keys pragma failed\n")
		return ErrPragmaReturnedNil
	}

	// create the schema
	if _, err := db.Exec(schemaDDL); err != nil {
		log.Printf("cache: create: failed to initialize schema\n")
		log.Printf("cache: create: %v\n", err)
		return errors.Join(ErrCreateSchema, err)
	}

	return nil
}

// Open opens an existing store.
// Returns an error if the database file is not a valid file.
// Caller must call Close() when done.
func Open(path string, ctx context.Context) (*Store, error) {
	// it is an error if the database does not already exist,
	// or it is not a file.
	if ok, err := stdlib.IsFileExists(path); err != nil {
		log.Printf("cache: open: %q: %v\n", path, err)
		return nil, err
	} else if !ok {
		log.Printf("cache: open: %q: %s\n", path, "not a database")
		return nil, ErrInvalidPath
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		log.Printf("cache: open: %s: %v\n", path, err)
		return nil, err
	}

	// confirm that the database has foreign keys enabled
	checkPragma := "PRAGMA" + " foreign_keys = ON"
	if rslt, err := db.Exec(checkPragma); err != nil {
		_ = db.Close()
		log.Printf("cache: open: foreign keys are disabled\n")
		return nil, ErrForeignKeysDisabled
	} else if rslt == nil {
		_ = db.Close()
		log.Printf("cache: open: foreign keys pragma failed\n")
		return nil, ErrPragmaReturnedNil
	}

	return &Store{path: path, db: db, ctx: ctx}, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// PutSchema inserts or replaces a cached schema payload.
func (s *Store) PutSchema(hash, name string, nodeCount int, payload []byte) error {
	_, err := s.db.ExecContext(s.ctx, `
		INSERT INTO schemas (hash, name, node_count, payload)
		VALUES (?1, ?2, ?3, ?4)
		ON CONFLICT (hash) DO UPDATE SET name = ?2, node_count = ?3, payload = ?4`,
		hash, name, nodeCount, payload)
	return err
}

// GetSchema fetches a cached schema payload by content hash. Returns
// ErrNotFound when the hash has never been cached.
func (s *Store) GetSchema(hash string) ([]byte, error) {
	var payload []byte
	row := s.db.QueryRowContext(s.ctx, `SELECT payload FROM schemas WHERE hash = ?1`, hash)
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return payload, nil
}

// SchemaInfo describes one cached schema for reporting.
type SchemaInfo struct {
	Hash      string
	Name      string
	NodeCount int
	CreatedAt time.Time
}

// Schemas returns every cached schema's metadata, newest first.
func (s *Store) Schemas() ([]SchemaInfo, error) {
	rows, err := s.db.QueryContext(s.ctx, `
		SELECT hash, name, node_count, created_at
		FROM schemas
		ORDER BY created_at DESC, hash`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []SchemaInfo
	for rows.Next() {
		var info SchemaInfo
		var created string
		if err := rows.Scan(&info.Hash, &info.Name, &info.NodeCount, &created); err != nil {
			return nil, err
		}
		if ts, err := time.Parse("2006-01-02T15:04:05Z", created); err == nil {
			info.CreatedAt = ts
		}
		out = append(out, info)
	}
	return out, rows.Err()
}
