/*
Package webftp provides the protocol-independent contract behind a browser based file manager for remote FTP, FTPS
and SFTP servers.

Philosophy

A browser talks to us in short, stateless HTTP requests.  The servers we front talk in long lived, stateful sessions:
an FTP control connection that can only run one command at a time, or an SSH connection multiplexing an SFTP
subsystem.  Rather than sprinkling

	if protocol == "sftp" {
	    // do some ssh thing
	} else {
	    // do some ftp thing
	}

through every handler, each protocol family is hidden behind one small capability interface, Conn, and opened through
a Transport that is selected by protocol tag exactly once, at connect time.  Everything above that line (the session
registry and the HTTP gateway) is written against the interfaces only.

Usage

Backends register themselves with the backend package by protocol tag.  Importing backend/all pulls in every
backend:

	import (
	    "github.com/c2fo/webftp"
	    "github.com/c2fo/webftp/backend"
	    _ "github.com/c2fo/webftp/backend/all"
	)

	func ListRoot(ctx context.Context) ([]webftp.FileEntry, error) {
	    cfg := webftp.ConnectionConfig{
	        Host:     "ftp.example.com",
	        Username: "bob",
	        Password: "s3cr3t",
	        Protocol: webftp.ProtocolFTPS,
	    }

	    t, err := backend.Backend(cfg.Protocol)
	    if err != nil {
	        return nil, err
	    }

	    conn, err := t.Connect(ctx, cfg)
	    if err != nil {
	        return nil, err
	    }
	    defer conn.Close()

	    return conn.List(ctx, "/")
	}

Conn implementations are not safe for concurrent use.  Callers that share a Conn (the session registry does) must
serialize operations on it.

Streams

OpenReader returns an io.ReadCloser that yields the remote file's bytes in order and then io.EOF.  A transfer that
fails part way through returns a non-EOF error from Read, so a consumer can always tell a complete file from a dropped
connection.  Closing the reader early aborts the remote transfer and leaves the Conn usable.

Upload consumes the given reader until io.EOF and returns only once the remote server acknowledged the write.  No
protocol we speak offers an atomic commit, so a failed upload may leave a truncated remote file behind.

Errors

All errors returned by backends wrap one of the Err* constants in this package, so errors.Is can be used to classify
them regardless of protocol.
*/
package webftp
