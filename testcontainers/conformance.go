// Package testcontainers provides conformance tests for webftp Transport implementations.
//
// Usage:
//
//	//go:build webftpintegration
//
//	package mybackend
//
//	import (
//	    "testing"
//	    "github.com/c2fo/webftp/testcontainers"
//	)
//
//	func TestConformance(t *testing.T) {
//	    testcontainers.RunConformanceTests(t, NewTransport(), cfg, "/upload/")
//	}
package testcontainers

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c2fo/webftp"
	"github.com/c2fo/webftp/utils"
)

// ConformanceOptions configures conformance test behavior
type ConformanceOptions struct {
	// SkipRightsTest skips the permission triplet assertion.  FTP servers don't report rights.
	SkipRightsTest bool
}

// RunConformanceTests connects with cfg and exercises every Conn operation below baseDir, which must be an existing
// writable directory.
func RunConformanceTests(t *testing.T, transport webftp.Transport, cfg webftp.ConnectionConfig, baseDir string,
	opts ...ConformanceOptions) {
	t.Helper()
	opt := ConformanceOptions{}
	if len(opts) > 0 {
		opt = opts[0]
	}

	t.Run("Connect", func(t *testing.T) {
		RunConnectTests(t, transport, cfg)
	})

	t.Run("Conn", func(t *testing.T) {
		RunConnTests(t, transport, cfg, baseDir, opt)
	})
}

// RunConnectTests checks that Connect classifies credential failures and cleans up after itself.
func RunConnectTests(t *testing.T, transport webftp.Transport, cfg webftp.ConnectionConfig) {
	t.Helper()
	ctx := context.Background()

	c, err := transport.Connect(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg.Protocol, c.Protocol())
	require.NoError(t, c.Close())
	assert.NoError(t, c.Close(), "Close is idempotent")

	bad := cfg
	bad.Password = cfg.Password + "-wrong"
	c, err = transport.Connect(ctx, bad)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, webftp.ErrAuthentication)
}

// RunConnTests tests webftp.Conn conformance on one session.
func RunConnTests(t *testing.T, transport webftp.Transport, cfg webftp.ConnectionConfig, baseDir string,
	opts ConformanceOptions) {
	t.Helper()
	ctx := context.Background()

	c, err := transport.Connect(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	name := "conformance.txt"
	p := utils.JoinRemote(baseDir, name)
	contents := "hello, conformance"

	t.Run("Upload", func(t *testing.T) {
		n, err := c.Upload(ctx, p, strings.NewReader(contents))
		require.NoError(t, err)
		assert.Equal(t, int64(len(contents)), n)
	})

	t.Run("List", func(t *testing.T) {
		entries, err := c.List(ctx, baseDir)
		require.NoError(t, err)

		var found *webftp.FileEntry
		for i := range entries {
			assert.NotContains(t, []string{".", ".."}, entries[i].Name)
			if entries[i].Name == name {
				found = &entries[i]
			}
		}
		require.NotNil(t, found, "uploaded file is listed")
		assert.Equal(t, webftp.KindFile, found.Kind)
		assert.Equal(t, int64(len(contents)), found.Size)
		if !opts.SkipRightsTest {
			assert.NotNil(t, found.Rights)
		}
	})

	t.Run("OpenReader", func(t *testing.T) {
		r, err := c.OpenReader(ctx, p)
		require.NoError(t, err)
		b, err := io.ReadAll(r)
		require.NoError(t, err)
		require.NoError(t, r.Close())
		assert.Equal(t, contents, string(b))
	})

	t.Run("Overwrite", func(t *testing.T) {
		_, err := c.Upload(ctx, p, strings.NewReader("short"))
		require.NoError(t, err)

		r, err := c.OpenReader(ctx, p)
		require.NoError(t, err)
		b, err := io.ReadAll(r)
		require.NoError(t, err)
		require.NoError(t, r.Close())
		assert.Equal(t, "short", string(b), "overwrite truncates")
	})

	t.Run("EarlyClose", func(t *testing.T) {
		big := bytes.Repeat([]byte("0123456789"), 1<<16)
		_, err := c.Upload(ctx, p, bytes.NewReader(big))
		require.NoError(t, err)

		r, err := c.OpenReader(ctx, p)
		require.NoError(t, err)
		buf := make([]byte, 16)
		_, err = io.ReadFull(r, buf)
		require.NoError(t, err)
		_ = r.Close()

		_, err = c.List(ctx, baseDir)
		assert.NoError(t, err, "session is usable after an abandoned download")
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := c.OpenReader(ctx, utils.JoinRemote(baseDir, "does-not-exist.txt"))
		assert.ErrorIs(t, err, webftp.ErrNotFound)
		assert.ErrorIs(t, err, webftp.ErrTransfer)

		_, err = c.List(ctx, baseDir)
		assert.NoError(t, err, "session survives a failed download")
	})
}
