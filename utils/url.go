package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/c2fo/webftp"
)

/*
   URI parlance (see https://www.rfc-editor.org/rfc/rfc3986.html#section-3.2):

       sftp://bob@example.com:2222/over/there
       \__/   \_________________/\_________/
        |            |               |
     scheme      authority          path

   Where:
     authority   = [ userinfo "@" ] host [ ":" port ]
     userinfo    = *( unreserved / pct-encoded / sub-delims / ":" )
*/

// ParseRemoteURL splits a URL such as "ftps://bob@ftp.example.com:990/pub" into a connection config and an absolute
// remote path.  A password in the userinfo is honoured but discouraged.  The path defaults to "/".
func ParseRemoteURL(raw string) (webftp.ConnectionConfig, string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return webftp.ConnectionConfig{}, "", fmt.Errorf("%w: %w", webftp.ErrInvalidConfig, err)
	}

	protocol, err := webftp.ParseProtocol(u.Scheme)
	if err != nil {
		return webftp.ConnectionConfig{}, "", err
	}

	host, portStr := splitHostPort(u.Host)
	var port int
	if portStr != "" {
		val, err := strconv.ParseUint(portStr, 10, 16)
		if err != nil {
			return webftp.ConnectionConfig{}, "", fmt.Errorf("%w: bad port %q", webftp.ErrInvalidConfig, portStr)
		}
		port = int(val)
	}

	cfg := webftp.ConnectionConfig{
		Host:     host,
		Port:     port,
		Protocol: protocol,
	}
	if u.User != nil {
		cfg.Username = u.User.Username()
		cfg.Password, _ = u.User.Password()
	}

	p := u.Path
	if p == "" {
		p = "/"
	}
	return cfg, p, nil
}

// DisplayName returns "user@host" for a connection, or just the host when there is no user.  It never includes the
// password, per https://tools.ietf.org/html/rfc3986#section-3.2.1
func DisplayName(username, host string) string {
	if username == "" {
		return host
	}
	return username + "@" + host
}

// splitHostPort separates host and port. If the port is not valid, it returns
// the entire input as host, and it doesn't check the validity of the host.
// Unlike net.SplitHostPort, but per RFC 3986, it requires ports to be numeric.
func splitHostPort(hostPort string) (host, port string) {
	host = hostPort

	colon := strings.LastIndexByte(host, ':')
	if colon != -1 && validOptionalPort(host[colon:]) {
		host, port = host[:colon], host[colon+1:]
	}

	if strings.HasPrefix(host, "[") && strings.HasSuffix(host, "]") {
		host = host[1 : len(host)-1]
	}

	return
}

// validOptionalPort reports whether port is either an empty string
// or matches /^:\d*$/
func validOptionalPort(port string) bool {
	if port == "" {
		return true
	}
	if port[0] != ':' {
		return false
	}
	for _, b := range port[1:] {
		if b < '0' || b > '9' {
			return false
		}
	}
	return true
}
