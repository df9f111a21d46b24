package sftp

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"net"
	"sync"

	"github.com/c2fo/webftp"
	"github.com/c2fo/webftp/utils"
)

// conn is an SFTP session over its own SSH connection.
type conn struct {
	client    Client
	sshCloser io.Closer

	closeOnce sync.Once
}

func (c *conn) Protocol() webftp.Protocol {
	return webftp.ProtocolSFTP
}

// List returns the entries of directory p.  Only regular files are reported as files.
func (c *conn) List(ctx context.Context, p string) ([]webftp.FileEntry, error) {
	p, err := utils.ValidateAbsolutePath(p)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	infos, err := c.client.ReadDir(p)
	if err != nil {
		return nil, utils.WrapListError(classifyOpError(err))
	}

	files := make([]webftp.FileEntry, 0, len(infos))
	for _, fi := range infos {
		if fi == nil || fi.Name() == "." || fi.Name() == ".." {
			continue
		}
		kind := webftp.KindDirectory
		if fi.Mode().IsRegular() {
			kind = webftp.KindFile
		}
		files = append(files, webftp.FileEntry{
			Name:       fi.Name(),
			Kind:       kind,
			Size:       fi.Size(),
			ModifyTime: webftp.EpochMillis(fi.ModTime()),
			Rights:     rights(fi.Mode()),
		})
	}
	return files, nil
}

// rights splits the permission bits into rwx triplets, ie 0o754 is {"rwx", "r-x", "r--"}.
func rights(mode fs.FileMode) *webftp.Rights {
	perm := mode.Perm().String() // "-rwxr-xr--"
	return &webftp.Rights{
		User:  perm[1:4],
		Group: perm[4:7],
		Other: perm[7:10],
	}
}

// OpenReader opens p for streaming.  A missing file fails here rather than on the first Read.
func (c *conn) OpenReader(ctx context.Context, p string) (io.ReadCloser, error) {
	p, err := utils.ValidateAbsoluteFilePath(p)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := c.client.Open(p)
	if err != nil {
		return nil, utils.WrapReadError(classifyOpError(err))
	}
	return newFileReader(ctx, f), nil
}

// Upload writes everything read from r to p, truncating any existing file.
func (c *conn) Upload(ctx context.Context, p string, r io.Reader) (int64, error) {
	p, err := utils.ValidateAbsoluteFilePath(p)
	if err != nil {
		return 0, err
	}

	w, err := c.client.Create(p)
	if err != nil {
		return 0, utils.WrapWriteError(classifyOpError(err))
	}

	n, err := io.Copy(w, &ctxReader{ctx: ctx, r: r})
	if cerr := w.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return n, utils.WrapWriteError(webftp.Wrap(webftp.ErrTransfer, ctxErr))
		}
		return n, utils.WrapWriteError(classifyOpError(err))
	}
	return n, nil
}

// Close ends the SFTP session and its SSH connection.  Only the first call does anything.
func (c *conn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		err = c.client.Close()
		if c.sshCloser != nil {
			// closing the sftp client usually closes the ssh connection with it
			if sErr := c.sshCloser.Close(); sErr != nil && !errors.Is(sErr, io.EOF) && !isClosedConn(sErr) {
				err = errors.Join(err, sErr)
			}
		}
		if err != nil {
			err = utils.WrapCloseError(err)
		}
	})
	return err
}

func isClosedConn(err error) bool {
	return errors.Is(err, net.ErrClosed)
}

// fileReader wraps an open remote file so failures other than io.EOF surface as transfer errors.  The file is closed
// when ctx ends so a consumer that went away does not pin the session.
type fileReader struct {
	rc        io.ReadCloser
	stop      func() bool
	closeOnce sync.Once
	closeErr  error
}

func newFileReader(ctx context.Context, rc io.ReadCloser) *fileReader {
	fr := &fileReader{rc: rc}
	fr.stop = context.AfterFunc(ctx, func() { _ = fr.Close() })
	return fr
}

func (fr *fileReader) Read(p []byte) (int, error) {
	n, err := fr.rc.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		err = utils.WrapReadError(classifyOpError(err))
	}
	return n, err
}

// WriteTo keeps the library's concurrent read-ahead when the consumer uses io.Copy.
func (fr *fileReader) WriteTo(w io.Writer) (int64, error) {
	wt, ok := fr.rc.(io.WriterTo)
	if !ok {
		return io.Copy(w, struct{ io.Reader }{fr})
	}
	n, err := wt.WriteTo(w)
	if err != nil {
		err = utils.WrapReadError(classifyOpError(err))
	}
	return n, err
}

func (fr *fileReader) Close() error {
	fr.closeOnce.Do(func() {
		fr.stop()
		fr.closeErr = fr.rc.Close()
	})
	return fr.closeErr
}

// ctxReader stops feeding an upload once ctx ends.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (cr *ctxReader) Read(p []byte) (int, error) {
	if err := cr.ctx.Err(); err != nil {
		return 0, err
	}
	return cr.r.Read(p)
}
