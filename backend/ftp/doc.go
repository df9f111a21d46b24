/*
Package ftp is the FTP and FTPS backend, built on github.com/jlaffaye/ftp.

# Usage

Importing the package registers one Transport for both "ftp" and "ftps":

	import (
	    "github.com/c2fo/webftp"
	    "github.com/c2fo/webftp/backend"
	    _ "github.com/c2fo/webftp/backend/ftp"
	)

	func Connect(ctx context.Context, cfg webftp.ConnectionConfig) (webftp.Conn, error) {
	    t, err := backend.Backend(cfg.Protocol)
	    if err != nil {
	        return nil, err
	    }
	    return t.Connect(ctx, cfg)
	}

Or build one directly to pass options:

	t := ftp.NewTransport(
	    ftp.WithOptions(ftp.Options{
	        DialTimeout:        15 * time.Second,
	        DisableEPSV:        true,
	        InsecureSkipVerify: true,
	        DebugWriter:        os.Stderr,
	    }),
	)
	backend.Register(webftp.ProtocolFTP, t)
	backend.Register(webftp.ProtocolFTPS, t)

# TLS

ProtocolFTPS with TLSExplicit (the default) connects in the clear and upgrades with AUTH TLS.  TLSImplicit speaks TLS
from the first byte, conventionally on port 990.  Data connections reuse the control connection's TLS session, which
most servers require.  Certificates are not verified when Options.InsecureSkipVerify is set; self-signed certificates
are the norm on the servers this gateway is pointed at.

# Authentication

An empty username logs in as "anonymous".  A 530 (or 430/332) reply to USER/PASS is reported as
webftp.ErrAuthentication; everything else that stops a session from being established is webftp.ErrNetwork.

# Streams

The FTP control connection runs one command at a time, so a reader returned by OpenReader must be closed before the
connection is used again.  Closing it early aborts the transfer.
*/
package ftp
