/*
Package backend provides a means of allowing protocol transports to self-register on load via an init() call to
backend.Register(webftp.ProtocolSFTP, webftp.Transport)

In this way, a caller can simply load the transports (and ONLY those needed) and begin connecting:

	package main

	// import backend and each transport you intend to use
	import(
	    "github.com/c2fo/webftp"
	    "github.com/c2fo/webftp/backend"
	    _ "github.com/c2fo/webftp/backend/ftp"
	    _ "github.com/c2fo/webftp/backend/sftp"
	)

	func main() {
	    t, err := backend.Backend(webftp.ProtocolSFTP)
	    if err != nil {
	        panic(err)
	    }

	    conn, err := t.Connect(context.Background(), webftp.ConnectionConfig{
	        Host:     "sftp.example.com",
	        Username: "bob",
	        Password: "s3cr3t",
	        Protocol: webftp.ProtocolSFTP,
	    })
	    if err != nil {
	        panic(err)
	    }
	    defer conn.Close()
	}

Development

To add a protocol, create a package that implements webftp.Transport and webftp.Conn and ensure it registers itself
on load:

	func init() {
	    backend.Register("myprotocol", NewTransport())
	}

The protocol tag is the only thing that selects an implementation.  Nothing above this package branches on it.
*/
package backend
