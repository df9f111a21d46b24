package types

import (
	"io"
	"time"

	_ftp "github.com/jlaffaye/ftp"
)

// Response is an open RETR data connection.  *ftp.Response satisfies it.
type Response interface {
	io.ReadCloser
	SetDeadline(t time.Time) error
}

// Client is the subset of *ftp.ServerConn the backend drives.  It is an interface to make it easier to test.
type Client interface {
	Login(user string, password string) error
	List(p string) ([]*_ftp.Entry, error)
	Retr(path string) (Response, error)
	Stor(path string, r io.Reader) error
	Quit() error
}
