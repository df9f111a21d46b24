package sftp

import (
	"context"
	"fmt"
	"io"

	"github.com/c2fo/webftp"
	"github.com/c2fo/webftp/backend"
	"github.com/c2fo/webftp/options"
	"github.com/c2fo/webftp/utils"
)

const name = "Secure File Transfer Protocol"

var defaultClientGetter = getClient

// Transport implements webftp.Transport for SFTP.
type Transport struct {
	options Options
}

// NewTransport initializer for Transport struct.
func NewTransport(opts ...options.Option[Transport]) *Transport {
	t := &Transport{}

	// apply options
	options.ApplyOptions(t, opts...)

	return t
}

// Name returns "Secure File Transfer Protocol"
func (t *Transport) Name() string {
	return name
}

// Connect opens an SSH connection to cfg's server, authenticates and starts the sftp subsystem.  Nothing is left open
// on failure.
func (t *Transport) Connect(ctx context.Context, cfg webftp.ConnectionConfig) (webftp.Conn, error) {
	cfg, err := cfg.Normalize()
	if err != nil {
		return nil, err
	}
	if cfg.Protocol != webftp.ProtocolSFTP {
		return nil, fmt.Errorf("%w: sftp backend cannot serve %s", webftp.ErrInvalidConfig, cfg.Protocol)
	}
	if cfg.Username == "" {
		return nil, fmt.Errorf("%w: username is required for sftp", webftp.ErrInvalidConfig)
	}

	var client Client
	var closer io.Closer
	client, closer, err = defaultClientGetter(ctx, cfg, t.options)
	if err != nil {
		return nil, utils.WrapConnectError(err)
	}

	return &conn{
		client:    client,
		sshCloser: closer,
	}, nil
}

func init() {
	backend.Register(webftp.ProtocolSFTP, NewTransport())
}
