package sftp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/mitchellh/go-homedir"
	_sftp "github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"

	"github.com/c2fo/webftp"
	"github.com/c2fo/webftp/utils"
)

const systemWideKnownHosts = "/etc/ssh/ssh_known_hosts"

// Options holds sftp-specific settings shared by every connection a Transport opens.  The password always comes from
// the ConnectionConfig; a key file, when set, is offered in addition to it.
type Options struct {
	KeyFilePath           string              // private key offered before the password
	KeyPassphrase         string              // passphrase for KeyFilePath, if it is encrypted
	KnownHostsFile        string              // ie, /home/bob/.ssh/known_hosts
	KnownHostsString      string              // a single authorized_keys style host key
	KnownHostsCallback    ssh.HostKeyCallback // takes precedence over every other host key setting
	InsecureIgnoreHostKey bool                // accept any host key when no explicit source is set
	DialTimeout           time.Duration       // bounds the TCP dial and the SSH handshake
}

// Note that as of 1.12, OPENSSH private key format is not supported when encrypt (with passphrase).
// See https://github.com/golang/go/issues/18692
// To force creation of PEM format(instead of OPENSSH format), use ssh-keygen -m PEM

func getClient(ctx context.Context, cfg webftp.ConnectionConfig, opts Options) (Client, io.Closer, error) {
	// setup Authentication
	authMethods, err := getAuthMethods(cfg, opts)
	if err != nil {
		return nil, nil, webftp.Wrap(webftp.ErrInvalidConfig, err)
	}

	// get callback for handling known_hosts man-in-the-middle checks
	hostKeyCallback, err := getHostKeyCallback(opts)
	if err != nil {
		return nil, nil, webftp.Wrap(webftp.ErrInvalidConfig, err)
	}

	// Define the Client Config
	config := &ssh.ClientConfig{
		User:            cfg.Username,
		Auth:            authMethods,
		HostKeyCallback: hostKeyCallback,
		Timeout:         opts.DialTimeout,
	}

	if opts.DialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.DialTimeout)
		defer cancel()
	}

	addr := cfg.Address()
	dialer := &net.Dialer{}
	netConn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, nil, classifyConnectError(err)
	}

	// the handshake has no context of its own
	stop := context.AfterFunc(ctx, func() { _ = netConn.Close() })
	c, chans, reqs, err := ssh.NewClientConn(netConn, addr, config)
	stopped := stop()
	if err != nil {
		_ = netConn.Close()
		if !stopped && ctx.Err() != nil {
			err = fmt.Errorf("%w: %w", ctx.Err(), err)
		}
		return nil, nil, classifyConnectError(err)
	}
	sshClient := ssh.NewClient(c, chans, reqs)

	client, err := _sftp.NewClient(sshClient)
	if err != nil {
		_ = sshClient.Close()
		return nil, nil, classifyConnectError(err)
	}

	return sftpClient{client}, sshClient, nil
}

// getHostKeyCallback gets host key callback for all known_hosts files
func getHostKeyCallback(opts Options) (ssh.HostKeyCallback, error) {
	var knownHostsFiles []string
	switch {
	// use explicit callback in Options
	case opts.KnownHostsCallback != nil:
		return opts.KnownHostsCallback, nil

	case opts.KnownHostsString != "":
		hostKey, _, _, _, err := ssh.ParseAuthorizedKey([]byte(opts.KnownHostsString))
		if err != nil {
			return nil, err
		}
		return ssh.FixedHostKey(hostKey), nil

	// use known_hosts file path, ie, /home/bob/.ssh/known_hosts
	case opts.KnownHostsFile != "":
		// check first to prevent auto-vivification of file
		found, err := foundFile(opts.KnownHostsFile)
		if err != nil {
			return nil, err
		}
		if found {
			knownHostsFiles = append(knownHostsFiles, opts.KnownHostsFile)
			break
		}
		// fall back to insecure, if allowed, when the explicit file wasn't found
		fallthrough

	case opts.InsecureIgnoreHostKey:
		if opts.InsecureIgnoreHostKey {
			return ssh.InsecureIgnoreHostKey(), nil //nolint:gosec // explicitly configured
		}
		fallthrough

	// use user/system-wide known_hosts paths (as defined by OpenSSH https://man.openbsd.org/ssh)
	default:
		var err error
		knownHostsFiles, err = findHomeSystemKnownHosts(knownHostsFiles)
		if err != nil {
			return nil, err
		}
	}

	if len(knownHostsFiles) == 0 {
		return nil, errors.New("no known_hosts file found and insecure host keys are not allowed")
	}

	// get host key callback for all known_hosts files
	return knownhosts.New(knownHostsFiles...)
}

func findHomeSystemKnownHosts(knownHostsFiles []string) ([]string, error) {
	// add ~/.ssh/known_hosts
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}
	homeKnownHostsPath := utils.EnsureLeadingSlash(path.Join(home, ".ssh/known_hosts"))

	// check file existence first to prevent auto-vivification of file
	found, err := foundFile(homeKnownHostsPath)
	if err != nil {
		return nil, err
	}
	if found {
		knownHostsFiles = append(knownHostsFiles, homeKnownHostsPath)
	}

	// add /etc/ssh/ssh_known_hosts for unix-like systems.  SSH doesn't exist natively on Windows and each
	// implementation has a different location for known_hosts. Better to specify in KnownHostsFile for Windows
	if runtime.GOOS != "windows" {
		found, err := foundFile(systemWideKnownHosts)
		if err != nil {
			return nil, err
		}
		if found {
			knownHostsFiles = append(knownHostsFiles, systemWideKnownHosts)
		}
	}
	return knownHostsFiles, nil
}

func foundFile(file string) (bool, error) {
	if _, err := os.Stat(file); err != nil {
		if os.IsNotExist(err) {
			// file does not exist
			return false, nil
		}
		// other error
		return false, err
	}
	return true, nil
}

func getAuthMethods(cfg webftp.ConnectionConfig, opts Options) ([]ssh.AuthMethod, error) {
	auth := make([]ssh.AuthMethod, 0, 3)

	// setup key-based auth, if any
	if opts.KeyFilePath != "" {
		secretKey, err := getKeyFile(opts.KeyFilePath, opts.KeyPassphrase)
		if err != nil {
			return nil, err
		}
		auth = append(auth, ssh.PublicKeys(secretKey))
	}

	if cfg.Password != "" {
		pw := cfg.Password
		auth = append(auth,
			ssh.Password(pw),
			// servers that only enable keyboard-interactive still just ask for the password
			ssh.KeyboardInteractive(func(_, _ string, questions []string, _ []bool) ([]string, error) {
				answers := make([]string, len(questions))
				for i := range answers {
					answers[i] = pw
				}
				return answers, nil
			}),
		)
	}

	return auth, nil
}

func getKeyFile(file, passphrase string) (key ssh.Signer, err error) {
	file, err = homedir.Expand(file)
	if err != nil {
		return nil, err
	}

	buf, err := os.ReadFile(file) //nolint:gosec // path comes from server configuration
	if err != nil {
		return nil, err
	}
	if passphrase != "" {
		return ssh.ParsePrivateKeyWithPassphrase(buf, []byte(passphrase))
	}
	return ssh.ParsePrivateKey(buf)
}
