/*
Package sftp is the SFTP backend, built on github.com/pkg/sftp over golang.org/x/crypto/ssh.

# Usage

Importing the package registers a Transport for "sftp":

	import (
	    "github.com/c2fo/webftp/backend"
	    _ "github.com/c2fo/webftp/backend/sftp"
	)

Or build one directly to pass options:

	t := sftp.NewTransport(
	    sftp.WithOptions(sftp.Options{
	        KnownHostsFile: "/home/bob/.ssh/known_hosts",
	        DialTimeout:    15 * time.Second,
	    }),
	)
	backend.Register(webftp.ProtocolSFTP, t)

# Authentication

The ConnectionConfig password is offered as both "password" and "keyboard-interactive" authentication.  When
Options.KeyFilePath is set the key is offered first.

# Host keys

Host keys are checked against, in order of precedence:

 1. Options.KnownHostsCallback
 2. Options.KnownHostsString, a single authorized_keys style key
 3. Options.KnownHostsFile, if it exists
 4. nothing at all, when Options.InsecureIgnoreHostKey is set
 5. ~/.ssh/known_hosts and /etc/ssh/ssh_known_hosts

When none of these yields a source, Connect fails with webftp.ErrInvalidConfig.

# Listings

Each entry carries Rights, the rwx triplets of its permission bits.  Only regular files are reported as KindFile;
symlinks, devices and sockets are reported as directories.
*/
package sftp
