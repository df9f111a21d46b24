// Package all imports all transport implementations.
package all

import (
	_ "github.com/c2fo/webftp/backend/ftp"  // register ftp and ftps transports
	_ "github.com/c2fo/webftp/backend/sftp" // register sftp transport
)
