package db

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"

	"github.com/saishivaaditya/market/internal/config"
)

// Open connects to Postgres and creates the schema if it does not exist yet.
func Open(cfg *config.Config) (*sql.DB, error) {
	conn, err := sql.Open("postgres", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open DB: %w", err)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	if err := Migrate(conn); err != nil {
		return nil, err
	}

	log.Println("✅ Connected to database")
	return conn, nil
}

// Migrate is idempotent; it runs at every startup.
func Migrate(conn *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS campaigns (
			id SERIAL PRIMARY KEY,
			product TEXT NOT NULL DEFAULT '',
			industry TEXT NOT NULL DEFAULT '',
			cost TEXT NOT NULL DEFAULT '',
			audience TEXT NOT NULL DEFAULT '',
			platform TEXT NOT NULL DEFAULT '',
			result TEXT NOT NULL DEFAULT '',
			user_id INTEGER REFERENCES users(id)
		)`,
		`CREATE TABLE IF NOT EXISTS pitches (
			id SERIAL PRIMARY KEY,
			product TEXT NOT NULL DEFAULT '',
			customer TEXT NOT NULL DEFAULT '',
			result TEXT NOT NULL DEFAULT '',
			user_id INTEGER REFERENCES users(id)
		)`,
		`CREATE TABLE IF NOT EXISTS leads (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			budget TEXT NOT NULL DEFAULT '',
			need TEXT NOT NULL DEFAULT '',
			urgency TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL DEFAULT 0,
			probability INTEGER NOT NULL DEFAULT 0,
			analysis TEXT NOT NULL DEFAULT '',
			user_id INTEGER REFERENCES users(id)
		)`,
	}

	for _, stmt := range stmts {
		if _, err := conn.Exec(stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}
