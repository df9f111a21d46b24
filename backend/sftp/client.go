package sftp

import (
	"io"
	"os"

	_sftp "github.com/pkg/sftp"
)

// Client is the subset of *sftp.Client the backend drives.  It is an interface to make it easier to test.
type Client interface {
	ReadDir(p string) ([]os.FileInfo, error)
	Open(p string) (io.ReadCloser, error)
	Create(p string) (io.WriteCloser, error)
	Close() error
}

// sftpClient adapts *sftp.Client to Client.  The returned *sftp.File values keep their io.WriterTo and io.ReaderFrom
// implementations, so io.Copy still uses the library's pipelined transfers.
type sftpClient struct {
	*_sftp.Client
}

func (c sftpClient) Open(p string) (io.ReadCloser, error) {
	f, err := c.Client.Open(p)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Create opens p for writing, creating or truncating it.
func (c sftpClient) Create(p string) (io.WriteCloser, error) {
	f, err := c.Client.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
	if err != nil {
		return nil, err
	}
	return f, nil
}
