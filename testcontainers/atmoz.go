package testcontainers

import (
	"context"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/c2fo/webftp"
	"github.com/c2fo/webftp/backend/sftp"
)

const (
	atmozPort     = "22/tcp"
	atmozUsername = "dummy"
	atmozPassword = "dummy"
)

// startAtmoz runs an SFTP server whose user can only write below /upload.
func startAtmoz(t *testing.T) (webftp.Transport, webftp.ConnectionConfig, string) {
	ctx := context.Background()
	is := require.New(t)

	req := testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Name:       "webftp-atmoz-sftp",
			Image:      "atmoz/sftp:alpine",
			Env:        map[string]string{"SFTP_USERS": fmt.Sprintf("%s:%s:::upload", atmozUsername, atmozPassword)},
			WaitingFor: wait.ForListeningPort(atmozPort),
		},
		Started: true,
	}
	ctr, err := testcontainers.GenericContainer(ctx, req)
	testcontainers.CleanupContainer(t, ctr)
	is.NoError(err)

	host, err := ctr.Host(ctx)
	is.NoError(err)

	port, err := ctr.MappedPort(ctx, atmozPort)
	is.NoError(err)
	portNum, err := strconv.Atoi(port.Port())
	is.NoError(err)

	cfg := webftp.ConnectionConfig{
		Host:     host,
		Port:     portNum,
		Username: atmozUsername,
		Password: atmozPassword,
		Protocol: webftp.ProtocolSFTP,
	}
	return sftp.NewTransport(sftp.WithOptions(sftp.Options{
		InsecureIgnoreHostKey: true,
		DialTimeout:           10 * time.Second,
	})), cfg, "/upload/"
}
