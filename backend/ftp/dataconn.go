package ftp

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/c2fo/webftp"
	"github.com/c2fo/webftp/backend/ftp/types"
	"github.com/c2fo/webftp/utils"
)

// readPipe turns an open RETR data connection into a reader the caller controls.  A goroutine copies the data
// connection into an io.Pipe and then collects the server's final reply, so a transfer the server reports as failed
// reaches the reader as an error instead of a short, clean EOF.  The pipe has no buffer: the data connection is only
// read as fast as the consumer reads.
type readPipe struct {
	pr   *io.PipeReader
	resp types.Response
	done chan struct{}
	stop func() bool

	closeOnce sync.Once
}

func newReadPipe(ctx context.Context, resp types.Response) *readPipe {
	pr, pw := io.Pipe()
	rp := &readPipe{
		pr:   pr,
		resp: resp,
		done: make(chan struct{}),
	}

	// a cancelled request unblocks a copy loop parked in a read from the server
	rp.stop = context.AfterFunc(ctx, func() {
		_ = resp.SetDeadline(time.Now())
	})

	go func() {
		defer close(rp.done)

		_, err := io.Copy(pw, resp)
		// Close reads the transfer-complete reply off the control connection
		if cerr := resp.Close(); err == nil && cerr != nil {
			err = cerr
		}
		switch {
		case ctx.Err() != nil && err != nil:
			err = utils.WrapReadError(webftp.Wrap(webftp.ErrTransfer, ctx.Err()))
		case err != nil:
			err = utils.WrapReadError(classifyOpError(err))
		}
		_ = pw.CloseWithError(err)
	}()

	return rp
}

func (rp *readPipe) Read(p []byte) (int, error) {
	return rp.pr.Read(p)
}

// Close aborts a transfer still in progress and waits until the control connection is free again.
func (rp *readPipe) Close() error {
	rp.closeOnce.Do(func() {
		rp.stop()
		_ = rp.pr.Close()
		select {
		case <-rp.done:
		default:
			// the copy loop may be parked in a read from a stalled server
			_ = rp.resp.SetDeadline(time.Now())
		}
		<-rp.done
	})
	return nil
}

// countingReader counts bytes handed to STOR and stops feeding it once ctx ends.
type countingReader struct {
	ctx context.Context
	r   io.Reader
	n   int64
}

func (cr *countingReader) Read(p []byte) (int, error) {
	if err := cr.ctx.Err(); err != nil {
		return 0, err
	}
	n, err := cr.r.Read(p)
	cr.n += int64(n)
	return n, err
}
