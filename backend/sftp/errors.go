package sftp

import (
	"context"
	"errors"
	"io"
	"net"
	"os"
	"strings"

	"github.com/c2fo/webftp"
)

// classifyConnectError sorts dial and handshake failures into ErrAuthentication or ErrNetwork.  x/crypto/ssh has no
// typed error for rejected credentials, only its message.
func classifyConnectError(err error) error {
	if errors.Is(err, webftp.ErrInvalidConfig) {
		return err
	}
	if strings.Contains(err.Error(), "unable to authenticate") {
		return webftp.Wrap(webftp.ErrAuthentication, err)
	}
	return webftp.Wrap(webftp.ErrNetwork, err)
}

// classifyOpError classifies a failed listing or transfer.  Every result wraps ErrTransfer; a missing path also wraps
// ErrNotFound and a dead connection ErrNetwork.
func classifyOpError(err error) error {
	switch {
	case errors.Is(err, os.ErrNotExist):
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
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, net.ErrClosed) ||
		errors.Is(err, context.DeadlineExceeded) ||
		// pkg/sftp reports a dropped SSH channel this way
		strings.Contains(err.Error(), "connection lost")
}
