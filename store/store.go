// Package store persists saved connections.  Passwords are only ever stored as credential cipher tokens.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/c2fo/webftp"
	"github.com/c2fo/webftp/utils"
)

// ErrNotFound is returned when no saved connection has the requested id.
const ErrNotFound = webftp.Error("saved connection not found")

// StoredConnection is a remembered connection.  PasswordCiphertext never leaves the server.
type StoredConnection struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Host               string          `json:"host"`
	Port               int             `json:"port"`
	Username           string          `json:"username"`
	PasswordCiphertext string          `json:"-"`
	Protocol           webftp.Protocol `json:"protocol"`
	TLS                webftp.TLSMode  `json:"secure,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
}

// ConnectionStore is the persistence collaborator for saved connections.
type ConnectionStore interface {
	// SaveConnection inserts c, or replaces the record with the same ID.
	SaveConnection(ctx context.Context, c StoredConnection) error
	// ListConnections returns every saved connection, oldest first.
	ListConnections(ctx context.Context) ([]StoredConnection, error)
	// GetConnection returns the connection with id or an error wrapping ErrNotFound.
	GetConnection(ctx context.Context, id string) (StoredConnection, error)
	// DeleteConnection removes the connection with id or returns an error wrapping ErrNotFound.
	DeleteConnection(ctx context.Context, id string) error
}

// FromConfig builds the record for a normalized config and an already encrypted password.
func FromConfig(cfg webftp.ConnectionConfig, ciphertext string) StoredConnection {
	return StoredConnection{
		Host:               cfg.Host,
		Port:               cfg.Port,
		Username:           cfg.Username,
		PasswordCiphertext: ciphertext,
		Protocol:           cfg.Protocol,
		TLS:                cfg.TLS,
	}
}

// WithDefaults fills in a missing id, name and creation time.  The name defaults to user@host.
func (c StoredConnection) WithDefaults(now time.Time) StoredConnection {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Name == "" {
		c.Name = utils.DisplayName(c.Username, c.Host)
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now.UTC()
	}
	return c
}

// Config returns the connection settings for c using the decrypted password.
func (c StoredConnection) Config(password string) webftp.ConnectionConfig {
	return webftp.ConnectionConfig{
		Host:     c.Host,
		Port:     c.Port,
		Username: c.Username,
		Password: password,
		Protocol: c.Protocol,
		TLS:      c.TLS,
	}
}
