package webftp

import "errors"

// Error is a type that allows for error constants below
type Error string

// Error returns a string representation of the error
func (e Error) Error() string { return string(e) }

const (
	// ErrConfiguration - the credential cipher key is missing or has the wrong length
	ErrConfiguration = Error("encryption key is missing or invalid")

	// ErrFormat - a ciphertext token is malformed
	ErrFormat = Error("invalid encrypted text format")

	// ErrAuthentication - the remote server rejected the credentials
	ErrAuthentication = Error("authentication failed")

	// ErrNetwork - the remote server was unreachable, timed out or reset the connection
	ErrNetwork = Error("network error")

	// ErrSessionNotFound - the session id is unknown or expired
	ErrSessionNotFound = Error("connection not found or expired")

	// ErrSessionLimit - the registry is full
	ErrSessionLimit = Error("too many open connections")

	// ErrInvalidPath - a remote path is empty or not absolute
	ErrInvalidPath = Error("invalid remote path")

	// ErrInvalidConfig - a connection request is missing or has malformed fields
	ErrInvalidConfig = Error("invalid connection settings")

	// ErrTransfer - a read or write stream failed
	ErrTransfer = Error("transfer failed")

	// ErrNotFound - the remote path does not exist.  Errors wrapping ErrNotFound also wrap ErrTransfer.
	ErrNotFound = Error("remote file does not exist")
)

// Wrap returns an error that matches both kind and cause with errors.Is.  The message is the cause's, prefixed with
// the kind, so the underlying reason reaches the user.
func Wrap(kind Error, cause error) error {
	if cause == nil {
		return nil
	}
	return &wrapped{kind: kind, cause: cause}
}

type wrapped struct {
	kind  Error
	cause error
}

func (w *wrapped) Error() string { return w.kind.Error() + ": " + w.cause.Error() }

func (w *wrapped) Unwrap() []error { return []error{w.kind, w.cause} }

// NotFound wraps cause as both ErrNotFound and ErrTransfer.
func NotFound(cause error) error {
	return Wrap(ErrTransfer, Wrap(ErrNotFound, cause))
}

// KindOf returns the most specific Err* constant err wraps, or "" if none.
func KindOf(err error) Error {
	for _, k := range []Error{
		ErrNotFound,
		ErrSessionNotFound,
		ErrSessionLimit,
		ErrAuthentication,
		ErrNetwork,
		ErrInvalidPath,
		ErrInvalidConfig,
		ErrConfiguration,
		ErrFormat,
		ErrTransfer,
	} {
		if errors.Is(err, k) {
			return k
		}
	}
	return ""
}
