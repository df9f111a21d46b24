package webftp

import (
	"context"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// Protocol identifies the family of remote server a connection speaks to.
type Protocol string

const (
	// ProtocolFTP is plain, unencrypted FTP.
	ProtocolFTP Protocol = "ftp"
	// ProtocolFTPS is FTP over TLS, explicit (AUTH TLS) unless TLSImplicit is requested.
	ProtocolFTPS Protocol = "ftps"
	// ProtocolSFTP is the SSH file transfer protocol.
	ProtocolSFTP Protocol = "sftp"
)

// ParseProtocol returns the Protocol for s, ignoring case and surrounding whitespace.
func ParseProtocol(s string) (Protocol, error) {
	switch p := Protocol(strings.ToLower(strings.TrimSpace(s))); p {
	case ProtocolFTP, ProtocolFTPS, ProtocolSFTP:
		return p, nil
	case "":
		return "", fmt.Errorf("%w: protocol is required", ErrInvalidConfig)
	default:
		return "", fmt.Errorf("%w: unsupported protocol %q", ErrInvalidConfig, s)
	}
}

// IsFTPFamily reports whether p is served by the FTP-family backend.
func (p Protocol) IsFTPFamily() bool {
	return p == ProtocolFTP || p == ProtocolFTPS
}

// DefaultPort returns the well known port for the protocol.
func (p Protocol) DefaultPort() int {
	if p == ProtocolSFTP {
		return 22
	}
	return 21
}

func (p Protocol) String() string { return string(p) }

// TLSMode selects how TLS is negotiated for the FTP family.
type TLSMode string

const (
	// TLSNone is a plain connection.
	TLSNone TLSMode = ""
	// TLSExplicit upgrades the control connection with AUTH TLS.
	TLSExplicit TLSMode = "explicit"
	// TLSImplicit speaks TLS from the first byte, conventionally on port 990.
	TLSImplicit TLSMode = "implicit"
)

// ParseTLSMode maps the values accepted by the connect form onto a TLSMode.  "true" selects explicit TLS.
func ParseTLSMode(s string) (TLSMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "false", "none", "plain":
		return TLSNone, nil
	case "true", "explicit":
		return TLSExplicit, nil
	case "implicit":
		return TLSImplicit, nil
	default:
		return TLSNone, fmt.Errorf("%w: unsupported TLS mode %q", ErrInvalidConfig, s)
	}
}

const implicitTLSPort = 990

// ConnectionConfig describes how to establish a session with a remote server.  It is only read during Connect.
type ConnectionConfig struct {
	Host     string
	Port     int // 0 selects the protocol default
	Username string
	Password string
	Protocol Protocol
	TLS      TLSMode // FTP family only
}

// Normalize validates the config and returns a copy with defaults applied.
func (c ConnectionConfig) Normalize() (ConnectionConfig, error) {
	c.Host = strings.TrimSpace(c.Host)
	if c.Host == "" {
		return c, fmt.Errorf("%w: host is required", ErrInvalidConfig)
	}
	if c.Port < 0 || c.Port > 65535 {
		return c, fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Port)
	}

	p, err := ParseProtocol(string(c.Protocol))
	if err != nil {
		return c, err
	}
	c.Protocol = p

	switch {
	case p == ProtocolSFTP && c.TLS != TLSNone:
		return c, fmt.Errorf("%w: TLS mode does not apply to sftp", ErrInvalidConfig)
	case p == ProtocolFTPS && c.TLS == TLSNone:
		c.TLS = TLSExplicit
	case p == ProtocolFTP && c.TLS != TLSNone:
		// secure=implicit on a plain ftp connection is how the form asks for implicit TLS
		c.Protocol = ProtocolFTPS
	}

	if c.Port == 0 {
		c.Port = c.Protocol.DefaultPort()
		if c.TLS == TLSImplicit {
			c.Port = implicitTLSPort
		}
	}
	return c, nil
}

// Address returns host:port.
func (c ConnectionConfig) Address() string {
	port := c.Port
	if port == 0 {
		port = c.Protocol.DefaultPort()
	}
	return net.JoinHostPort(c.Host, strconv.Itoa(port))
}

// EntryKind distinguishes files from directories in a listing.  Links, devices and other special files are reported
// as directories.
type EntryKind string

const (
	// KindFile is a regular file.
	KindFile EntryKind = "file"
	// KindDirectory is a directory or any other non-regular entry.
	KindDirectory EntryKind = "directory"
)

// Rights is the permission triplet reported by SFTP servers, ie {"rwx", "r-x", "r-x"}.
type Rights struct {
	User  string `json:"user"`
	Group string `json:"group"`
	Other string `json:"other"`
}

// FileEntry is one row of a directory listing.
type FileEntry struct {
	Name string    `json:"name"`
	Kind EntryKind `json:"type"`
	Size int64     `json:"size"`
	// ModifyTime is milliseconds since the epoch, 0 when the server did not report it.
	ModifyTime int64   `json:"modifyTime"`
	Rights     *Rights `json:"rights"`
}

// EpochMillis converts t to milliseconds since the epoch, mapping the zero time to 0.
func EpochMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

// Transport opens connections for one protocol family.
type Transport interface {
	// Connect dials and authenticates.  On failure no socket is left open and the error wraps ErrAuthentication
	// when the server rejected the credentials, ErrNetwork otherwise.
	Connect(ctx context.Context, cfg ConnectionConfig) (Conn, error)

	// Name returns a human readable name, ie "File Transfer Protocol".
	Name() string
}

// Conn is an authenticated remote session.  A Conn is not safe for concurrent use.
type Conn interface {
	// List returns the entries of the directory at the absolute path p.
	List(ctx context.Context, p string) ([]FileEntry, error)

	// OpenReader opens the file at p for streaming.  See the package docs for stream semantics.
	OpenReader(ctx context.Context, p string) (io.ReadCloser, error)

	// Upload writes everything read from r to p, overwriting it, and returns the number of bytes written.
	Upload(ctx context.Context, p string, r io.Reader) (int64, error)

	// Protocol returns the protocol this connection speaks.
	Protocol() Protocol

	// Close ends the session.  It is safe to call more than once.
	io.Closer
}
