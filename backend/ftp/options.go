package ftp

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"time"

	_ftp "github.com/jlaffaye/ftp"

	"github.com/c2fo/webftp"
	"github.com/c2fo/webftp/backend/ftp/types"
)

// Options holds FTP-specific settings shared by every connection a Transport opens.
type Options struct {
	DialTimeout            time.Duration // 0 means no timeout beyond the context's
	DisableEPSV            bool          // use PASV instead of EPSV; some servers behind NAT need this
	InsecureSkipVerify     bool          // don't verify the server's TLS certificate
	IncludeInsecureCiphers bool          // allow cipher suites from tls.InsecureCipherSuites()
	TLSConfig              *tls.Config   // overrides the generated TLS config when set
	DebugWriter            io.Writer     // receives the raw control connection dialogue
}

// serverConn adapts *ftp.ServerConn to types.Client.
type serverConn struct {
	*_ftp.ServerConn
	sockets *sockets
}

func (c serverConn) Retr(p string) (types.Response, error) {
	resp, err := c.ServerConn.Retr(p)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (c serverConn) settle() { c.sockets.settle() }

func (c serverConn) interrupt() { c.sockets.interrupt() }

// getClient dials and reads the greeting.  Control connection I/O fails once ctx ends or DialTimeout passes; the
// returned client keeps that guard until its settle method is called after login.
func getClient(ctx context.Context, cfg webftp.ConnectionConfig, opts Options) (types.Client, error) {
	s := &sockets{
		ctx:      ctx,
		dialer:   net.Dialer{Timeout: opts.DialTimeout},
		implicit: cfg.TLS == webftp.TLSImplicit,
		timeout:  opts.DialTimeout,
	}

	// disable EPSV if opt is true
	dialOptions := []_ftp.DialOption{
		_ftp.DialWithDialFunc(s.dial),
		_ftp.DialWithDisabledEPSV(opts.DisableEPSV),
	}

	if opts.DebugWriter != nil {
		dialOptions = append(dialOptions, _ftp.DialWithDebugOutput(opts.DebugWriter))
	}

	if cfg.Protocol == webftp.ProtocolFTPS {
		s.tlsConfig = fetchTLSConfig(cfg, opts)
		if s.implicit {
			dialOptions = append(dialOptions, _ftp.DialWithTLS(s.tlsConfig))
		} else {
			dialOptions = append(dialOptions, _ftp.DialWithExplicitTLS(s.tlsConfig))
		}
	}

	s.guard()
	c, err := _ftp.Dial(cfg.Address(), dialOptions...)
	if err != nil {
		s.settle()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %w", ctxErr, err)
		}
		return nil, err
	}
	return serverConn{ServerConn: c, sockets: s}, nil
}

func fetchTLSConfig(cfg webftp.ConnectionConfig, opts Options) *tls.Config {
	if opts.TLSConfig != nil {
		return opts.TLSConfig.Clone()
	}

	tlsConfig := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		ServerName:         cfg.Host,
		InsecureSkipVerify: opts.InsecureSkipVerify, //nolint:gosec // opt-in, self-signed certificates are common
		// data connections must resume the control connection's session on most servers
		ClientSessionCache: tls.NewLRUClientSessionCache(0),
	}

	if opts.IncludeInsecureCiphers {
		for _, suite := range tls.CipherSuites() {
			tlsConfig.CipherSuites = append(tlsConfig.CipherSuites, suite.ID)
		}
		for _, suite := range tls.InsecureCipherSuites() {
			tlsConfig.CipherSuites = append(tlsConfig.CipherSuites, suite.ID)
		}
	}

	return tlsConfig
}
