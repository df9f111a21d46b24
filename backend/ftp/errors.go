package ftp

import (
	"context"
	"errors"
	"io"
	"net"
	"net/textproto"
	"syscall"

	_ftp "github.com/jlaffaye/ftp"

	"github.com/c2fo/webftp"
)

// replyCode returns the FTP reply code carried by err, or 0.
func replyCode(err error) int {
	var tpErr *textproto.Error
	if errors.As(err, &tpErr) {
		return tpErr.Code
	}
	return 0
}

// classifyConnectError sorts dial and login failures into ErrAuthentication or ErrNetwork.
func classifyConnectError(err error) error {
	switch replyCode(err) {
	case _ftp.StatusNotLoggedIn, _ftp.StatusInvalidCredentials, _ftp.StatusLoginNeedAccount:
		return webftp.Wrap(webftp.ErrAuthentication, err)
	}
	return webftp.Wrap(webftp.ErrNetwork, err)
}

// classifyOpError classifies a failed LIST, RETR or STOR.  Every result wraps ErrTransfer; a missing path also wraps
// ErrNotFound and a dead connection ErrNetwork.
func classifyOpError(err error) error {
	switch {
	case replyCode(err) == _ftp.StatusFileUnavailable:
		return webftp.NotFound(err)
	case isNetworkError(err):
		return webftp.Wrap(webftp.ErrTransfer, webftp.Wrap(webftp.ErrNetwork, err))
	default:
		return webftp.Wrap(webftp.ErrTransfer, err)
	}
}

func isNetworkError(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, net.ErrClosed) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, context.DeadlineExceeded)
}
