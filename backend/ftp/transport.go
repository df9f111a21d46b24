package ftp

import (
	"context"
	"fmt"

	"github.com/c2fo/webftp"
	"github.com/c2fo/webftp/backend"
	"github.com/c2fo/webftp/backend/ftp/types"
	"github.com/c2fo/webftp/options"
	"github.com/c2fo/webftp/utils"
)

const name = "File Transfer Protocol"

const anonymousUser = "anonymous"

var defaultClientGetter = getClient

// Transport implements webftp.Transport for FTP and FTPS.
type Transport struct {
	options   Options
	ftpclient types.Client
}

// NewTransport initializer for Transport struct.
func NewTransport(opts ...options.Option[Transport]) *Transport {
	t := &Transport{}

	// apply options
	options.ApplyOptions(t, opts...)

	return t
}

// Name returns "File Transfer Protocol"
func (t *Transport) Name() string {
	return name
}

// Connect dials cfg's server and logs in.  On failure the control connection is closed before returning.
func (t *Transport) Connect(ctx context.Context, cfg webftp.ConnectionConfig) (webftp.Conn, error) {
	cfg, err := cfg.Normalize()
	if err != nil {
		return nil, err
	}
	if !cfg.Protocol.IsFTPFamily() {
		return nil, fmt.Errorf("%w: ftp backend cannot serve %s", webftp.ErrInvalidConfig, cfg.Protocol)
	}

	client := t.ftpclient
	if client == nil {
		client, err = defaultClientGetter(ctx, cfg, t.options)
		if err != nil {
			return nil, utils.WrapConnectError(classifyConnectError(err))
		}
	}

	user := cfg.Username
	if user == "" {
		user = anonymousUser
	}
	if s, ok := client.(settler); ok {
		defer s.settle()
	}
	if err := client.Login(user, cfg.Password); err != nil {
		_ = client.Quit()
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = fmt.Errorf("%w: %w", ctxErr, err)
		}
		return nil, utils.WrapConnectError(classifyConnectError(err))
	}

	return &conn{
		client:   client,
		protocol: cfg.Protocol,
	}, nil
}

func init() {
	t := NewTransport()
	backend.Register(webftp.ProtocolFTP, t)
	backend.Register(webftp.ProtocolFTPS, t)
}
