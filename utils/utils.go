package utils

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/c2fo/webftp"
)

const (
	// ErrBadAbsPath constant is returned when a remote path is empty or not absolute
	ErrBadAbsPath = "remote path is invalid - must be non-empty and include a leading slash"
	// ErrBadAbsFilePath constant is returned when a remote file path is not absolute or names a directory
	ErrBadAbsFilePath = "remote file path is invalid - must include leading slash and may not include trailing slash"
	// ErrBadFileName constant is returned when an uploaded file name is empty or a path
	ErrBadFileName = "file name is invalid - may not be empty, '.', '..' or contain a slash"
)

// regex to test whether the last character is a '/'
var hasTrailingSlash = regexp.MustCompile("/$")

// regex to test whether the first character is a '/'
var hasLeadingSlash = regexp.MustCompile("^/")

// RemoveTrailingSlash removes trailing slash, if any
func RemoveTrailingSlash(p string) string {
	return strings.TrimRight(p, "/")
}

// EnsureTrailingSlash will only ever use / since remote servers are addressed with forward slashes, never a Windows
// OS path.
func EnsureTrailingSlash(dir string) string {
	if hasTrailingSlash.MatchString(dir) {
		return dir
	}
	return dir + "/"
}

// EnsureLeadingSlash is like EnsureTrailingSlash except that it adds the leading slash if needed.
func EnsureLeadingSlash(dir string) string {
	if hasLeadingSlash.MatchString(dir) {
		return dir
	}
	return "/" + dir
}

// ValidateAbsolutePath ensures that a remote path is non-empty, has a leading slash and carries no NUL byte.  It
// returns the cleaned path.
func ValidateAbsolutePath(p string) (string, error) {
	if p == "" || !hasLeadingSlash.MatchString(p) || strings.ContainsRune(p, 0) {
		return "", fmt.Errorf("%w: %q: %s", webftp.ErrInvalidPath, p, ErrBadAbsPath)
	}
	return path.Clean(p), nil
}

// ValidateAbsoluteFilePath is ValidateAbsolutePath for paths that must name a file: a trailing slash or the root
// itself is rejected.
func ValidateAbsoluteFilePath(p string) (string, error) {
	if p == "/" || hasTrailingSlash.MatchString(p) {
		return "", fmt.Errorf("%w: %q: %s", webftp.ErrInvalidPath, p, ErrBadAbsFilePath)
	}
	return ValidateAbsolutePath(p)
}

// CleanFileName reduces a client supplied file name to its last element.  Browsers on Windows may send the full
// local path, so backslashes are treated as separators too.
func CleanFileName(name string) (string, error) {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(strings.TrimSpace(name))
	if name == "" || name == "." || name == ".." || name == "/" || strings.ContainsRune(name, 0) {
		return "", fmt.Errorf("%w: %q: %s", webftp.ErrInvalidPath, name, ErrBadFileName)
	}
	return name, nil
}

// JoinRemote joins a directory and a file name, collapsing the doubled separator that results when dir is "/" or
// already ends in a slash.  An empty dir is treated as the root.
func JoinRemote(dir, name string) string {
	return EnsureTrailingSlash(EnsureLeadingSlash(RemoveTrailingSlash(dir))) + strings.TrimLeft(name, "/")
}

// Basename returns the last element of a remote path, or fallback when there is none.
func Basename(p, fallback string) string {
	base := path.Base(RemoveTrailingSlash(p))
	if base == "." || base == "/" || base == "" {
		return fallback
	}
	return base
}
