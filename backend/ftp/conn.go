package ftp

import (
	"context"
	"io"
	"sync"

	_ftp "github.com/jlaffaye/ftp"

	"github.com/c2fo/webftp"
	"github.com/c2fo/webftp/backend/ftp/types"
	"github.com/c2fo/webftp/utils"
)

// conn is a logged-in FTP control connection.
type conn struct {
	client   types.Client
	protocol webftp.Protocol

	closeOnce sync.Once
}

func (c *conn) Protocol() webftp.Protocol {
	return c.protocol
}

// List returns the entries of directory p.  Folders and links are reported as directories.  FTP servers report no
// permissions the gateway can use, so Rights is always nil.
func (c *conn) List(ctx context.Context, p string) ([]webftp.FileEntry, error) {
	p, err := utils.ValidateAbsolutePath(p)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stop := watch(ctx, c.client)
	entries, err := c.client.List(p)
	stop()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, utils.WrapListError(webftp.Wrap(webftp.ErrTransfer, ctxErr))
		}
		return nil, utils.WrapListError(classifyOpError(err))
	}

	files := make([]webftp.FileEntry, 0, len(entries))
	for _, e := range entries {
		if e == nil || e.Name == "." || e.Name == ".." {
			continue
		}
		kind := webftp.KindDirectory
		if e.Type == _ftp.EntryTypeFile {
			kind = webftp.KindFile
		}
		files = append(files, webftp.FileEntry{
			Name:       e.Name,
			Kind:       kind,
			Size:       int64(e.Size), //nolint:gosec // sizes beyond int64 do not occur
			ModifyTime: webftp.EpochMillis(e.Time),
		})
	}
	return files, nil
}

// OpenReader starts a RETR for p.  A missing file fails here rather than on the first Read.
func (c *conn) OpenReader(ctx context.Context, p string) (io.ReadCloser, error) {
	p, err := utils.ValidateAbsoluteFilePath(p)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := c.client.Retr(p)
	if err != nil {
		return nil, utils.WrapReadError(classifyOpError(err))
	}
	return newReadPipe(ctx, resp), nil
}

// Upload STORs everything read from r to p.
func (c *conn) Upload(ctx context.Context, p string, r io.Reader) (int64, error) {
	p, err := utils.ValidateAbsoluteFilePath(p)
	if err != nil {
		return 0, err
	}

	cr := &countingReader{ctx: ctx, r: r}
	stop := watch(ctx, c.client)
	defer stop()
	if err := c.client.Stor(p, cr); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return cr.n, utils.WrapWriteError(webftp.Wrap(webftp.ErrTransfer, ctxErr))
		}
		return cr.n, utils.WrapWriteError(classifyOpError(err))
	}
	return cr.n, nil
}

// Close sends QUIT.  Only the first call does anything.
func (c *conn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		if qerr := c.client.Quit(); qerr != nil {
			err = utils.WrapCloseError(qerr)
		}
	})
	return err
}
