package sftp

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"io"
	"net"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	_sftp "github.com/pkg/sftp"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/ssh"

	"github.com/c2fo/webftp"
)

const (
	testUser     = "bob"
	testPassword = "s3cr3t"
)

// testServer is a password protected ssh server exposing one in-memory sftp filesystem.
type testServer struct {
	listener net.Listener
	config   *ssh.ServerConfig
	hostKey  ssh.PublicKey
	handlers _sftp.Handlers
	wg       sync.WaitGroup
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	signer, err := ssh.NewSignerFromKey(priv)
	if err != nil {
		t.Fatal(err)
	}

	s := &testServer{
		hostKey:  signer.PublicKey(),
		handlers: _sftp.InMemHandler(),
		config: &ssh.ServerConfig{
			PasswordCallback: func(c ssh.ConnMetadata, pass []byte) (*ssh.Permissions, error) {
				if c.User() == testUser && string(pass) == testPassword {
					return nil, nil
				}
				return nil, errors.New("password rejected")
			},
		},
	}
	s.config.AddHostKey(signer)

	s.listener, err = net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			c, err := s.listener.Accept()
			if err != nil {
				return
			}
			s.wg.Add(1)
			go func() {
				defer s.wg.Done()
				s.serve(c)
			}()
		}
	}()

	t.Cleanup(func() {
		_ = s.listener.Close()
		s.wg.Wait()
	})
	return s
}

func (s *testServer) serve(c net.Conn) {
	defer c.Close()

	sshConn, chans, reqs, err := ssh.NewServerConn(c, s.config)
	if err != nil {
		return
	}
	defer sshConn.Close()
	go ssh.DiscardRequests(reqs)

	for newChannel := range chans {
		if newChannel.ChannelType() != "session" {
			_ = newChannel.Reject(ssh.UnknownChannelType, "unknown channel type")
			continue
		}
		channel, requests, err := newChannel.Accept()
		if err != nil {
			return
		}

		go func(in <-chan *ssh.Request) {
			for req := range in {
				ok := req.Type == "subsystem" && len(req.Payload) > 4 && string(req.Payload[4:]) == "sftp"
				_ = req.Reply(ok, nil)
			}
		}(requests)

		server := _sftp.NewRequestServer(channel, s.handlers)
		_ = server.Serve()
		_ = server.Close()
	}
}

func (s *testServer) connConfig(user, password string) webftp.ConnectionConfig {
	addr := s.listener.Addr().(*net.TCPAddr)
	return webftp.ConnectionConfig{
		Host:     addr.IP.String(),
		Port:     addr.Port,
		Username: user,
		Password: password,
		Protocol: webftp.ProtocolSFTP,
	}
}

type serverSuite struct {
	suite.Suite
	server    *testServer
	transport *Transport
}

func TestServer(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping ssh server tests in short mode")
	}
	suite.Run(t, new(serverSuite))
}

func (s *serverSuite) SetupSuite() {
	s.server = newTestServer(s.T())
	s.transport = NewTransport(WithOptions(Options{
		KnownHostsCallback: ssh.FixedHostKey(s.server.hostKey),
		DialTimeout:        5 * time.Second,
	}))
}

func (s *serverSuite) connect() webftp.Conn {
	c, err := s.transport.Connect(context.Background(), s.server.connConfig(testUser, testPassword))
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = c.Close() })
	return c
}

func (s *serverSuite) TestRoundTrip() {
	ctx := context.Background()
	c := s.connect()

	n, err := c.Upload(ctx, "/round-trip.txt", strings.NewReader("hello over ssh"))
	s.Require().NoError(err)
	s.Equal(int64(len("hello over ssh")), n)

	r, err := c.OpenReader(ctx, "/round-trip.txt")
	s.Require().NoError(err)
	b, err := io.ReadAll(r)
	s.Require().NoError(err)
	s.NoError(r.Close())
	s.Equal("hello over ssh", string(b))

	// overwrite truncates
	_, err = c.Upload(ctx, "/round-trip.txt", strings.NewReader("short"))
	s.Require().NoError(err)
	r, err = c.OpenReader(ctx, "/round-trip.txt")
	s.Require().NoError(err)
	b, err = io.ReadAll(r)
	s.Require().NoError(err)
	s.NoError(r.Close())
	s.Equal("short", string(b))
}

func (s *serverSuite) TestList() {
	ctx := context.Background()
	c := s.connect()

	for i := range 3 {
		_, err := c.Upload(ctx, "/list-"+strconv.Itoa(i)+".txt", strings.NewReader(strings.Repeat("x", i)))
		s.Require().NoError(err)
	}

	entries, err := c.List(ctx, "/")
	s.Require().NoError(err)

	found := map[string]webftp.FileEntry{}
	for _, e := range entries {
		found[e.Name] = e
	}
	for i := range 3 {
		e, ok := found["list-"+strconv.Itoa(i)+".txt"]
		s.Require().True(ok, "uploaded file is listed")
		s.Equal(webftp.KindFile, e.Kind)
		s.Equal(int64(i), e.Size)
		s.NotNil(e.Rights)
	}
}

func (s *serverSuite) TestNotFound() {
	c := s.connect()

	_, err := c.OpenReader(context.Background(), "/does-not-exist.txt")
	s.ErrorIs(err, webftp.ErrNotFound)
	s.ErrorIs(err, webftp.ErrTransfer)

	// the session survives the failure
	_, err = c.List(context.Background(), "/")
	s.NoError(err)
}

func (s *serverSuite) TestWrongPassword() {
	c, err := s.transport.Connect(context.Background(), s.server.connConfig(testUser, "wrong"))
	s.Nil(c)
	s.ErrorIs(err, webftp.ErrAuthentication)
}

func (s *serverSuite) TestHostKeyMismatch() {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	s.Require().NoError(err)
	other, err := ssh.NewPublicKey(pub)
	s.Require().NoError(err)

	t := NewTransport(WithOptions(Options{KnownHostsCallback: ssh.FixedHostKey(other)}))
	c, err := t.Connect(context.Background(), s.server.connConfig(testUser, testPassword))
	s.Nil(c)
	s.ErrorIs(err, webftp.ErrNetwork)
}

func (s *serverSuite) TestUnreachable() {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	addr := l.Addr().(*net.TCPAddr)
	s.Require().NoError(l.Close())

	c, err := s.transport.Connect(context.Background(), webftp.ConnectionConfig{
		Host:     "127.0.0.1",
		Port:     addr.Port,
		Username: testUser,
		Password: testPassword,
		Protocol: webftp.ProtocolSFTP,
	})
	s.Nil(c)
	s.ErrorIs(err, webftp.ErrNetwork)
}

func (s *serverSuite) TestCloseIdempotent() {
	c, err := s.transport.Connect(context.Background(), s.server.connConfig(testUser, testPassword))
	s.Require().NoError(err)
	s.NoError(c.Close())
	s.NoError(c.Close())
}
