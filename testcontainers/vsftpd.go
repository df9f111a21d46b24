package testcontainers

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/c2fo/webftp"
	"github.com/c2fo/webftp/backend/ftp"
)

const (
	vsftpdPort     = "21/tcp"
	vsftpdUsername = "admin"
	vsftpdPassword = "dummy"
)

// startVSFTPD runs a plain FTP server and returns a transport and config that reach it.  The user is chrooted into a
// writable home directory, so "/" is the base directory.
func startVSFTPD(t *testing.T) (webftp.Transport, webftp.ConnectionConfig, string) {
	ctx := context.Background()
	is := require.New(t)

	req := testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Name:         "webftp-vsftpd",
			Image:        "fauria/vsftpd:latest",
			ExposedPorts: []string{"21", "21100-21110:21100-21110"},
			Env: map[string]string{
				"FTP_USER": vsftpdUsername,
				"FTP_PASS": vsftpdPassword,
			},
			WaitingFor: wait.ForListeningPort(vsftpdPort),
		},
		Started: true,
	}
	ctr, err := testcontainers.GenericContainer(ctx, req)
	testcontainers.CleanupContainer(t, ctr)
	is.NoError(err)

	host, err := ctr.Host(ctx)
	is.NoError(err)

	port, err := ctr.MappedPort(ctx, vsftpdPort)
	is.NoError(err)
	portNum, err := strconv.Atoi(port.Port())
	is.NoError(err)

	cfg := webftp.ConnectionConfig{
		Host:     host,
		Port:     portNum,
		Username: vsftpdUsername,
		Password: vsftpdPassword,
		Protocol: webftp.ProtocolFTP,
	}
	return ftp.NewTransport(ftp.WithOptions(ftp.Options{DialTimeout: 10 * time.Second})), cfg, "/"
}
