package all

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c2fo/webftp/backend"
)

func TestAllRegistered(t *testing.T) {
	assert.Equal(t, []string{"ftp", "ftps", "sftp"}, backend.RegisteredBackends())
}
