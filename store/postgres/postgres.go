// Package postgres provides a PostgreSQL-backed saved connection store.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/c2fo/webftp"
	"github.com/c2fo/webftp/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS connections (
	id                  TEXT PRIMARY KEY,
	name                TEXT NOT NULL,
	host                TEXT NOT NULL,
	port                INTEGER NOT NULL,
	username            TEXT NOT NULL DEFAULT '',
	password_ciphertext TEXT NOT NULL DEFAULT '',
	protocol            TEXT NOT NULL,
	tls                 TEXT NOT NULL DEFAULT '',
	created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

var _ store.ConnectionStore = (*Store)(nil)

// Store is a PostgreSQL saved connection store.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// New opens and pings the database at databaseURL.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate creates the connections table if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate connections: %w", err)
	}
	return nil
}

// SaveConnection inserts c or replaces the row with the same id.
func (s *Store) SaveConnection(ctx context.Context, c store.StoredConnection) error {
	c = c.WithDefaults(s.now())
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO connections (id, name, host, port, username, password_ciphertext, protocol, tls, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			host = EXCLUDED.host,
			port = EXCLUDED.port,
			username = EXCLUDED.username,
			password_ciphertext = EXCLUDED.password_ciphertext,
			protocol = EXCLUDED.protocol,
			tls = EXCLUDED.tls`,
		c.ID, c.Name, c.Host, c.Port, c.Username, c.PasswordCiphertext, string(c.Protocol), string(c.TLS), c.CreatedAt)
	if err != nil {
		return fmt.Errorf("save connection: %w", err)
	}
	return nil
}

// ListConnections returns every saved connection, oldest first.
func (s *Store) ListConnections(ctx context.Context) ([]store.StoredConnection, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, host, port, username, password_ciphertext, protocol, tls, created_at
		 FROM connections ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query connections: %w", err)
	}
	defer rows.Close()

	var conns []store.StoredConnection
	for rows.Next() {
		c, err := scanConnection(rows)
		if err != nil {
			return nil, fmt.Errorf("scan connection: %w", err)
		}
		conns = append(conns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate connections: %w", err)
	}
	return conns, nil
}

// GetConnection returns the connection with id.
func (s *Store) GetConnection(ctx context.Context, id string) (store.StoredConnection, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, host, port, username, password_ciphertext, protocol, tls, created_at
		 FROM connections WHERE id = $1`, id)
	c, err := scanConnection(row)
	if errors.Is(err, sql.ErrNoRows) {
		return store.StoredConnection{}, fmt.Errorf("%w: %s", store.ErrNotFound, id)
	}
	if err != nil {
		return store.StoredConnection{}, fmt.Errorf("get connection: %w", err)
	}
	return c, nil
}

// DeleteConnection removes the connection with id.
func (s *Store) DeleteConnection(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM connections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete connection: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete connection: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", store.ErrNotFound, id)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanConnection(row scanner) (store.StoredConnection, error) {
	var c store.StoredConnection
	var protocol, tls string
	if err := row.Scan(&c.ID, &c.Name, &c.Host, &c.Port, &c.Username, &c.PasswordCiphertext,
		&protocol, &tls, &c.CreatedAt); err != nil {
		return c, err
	}
	c.Protocol = webftp.Protocol(protocol)
	c.TLS = webftp.TLSMode(tls)
	return c, nil
}
