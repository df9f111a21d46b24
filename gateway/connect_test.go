package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/stretchr/testify/mock"

	"github.com/c2fo/webftp"
	"github.com/c2fo/webftp/internal/logging"
	"github.com/c2fo/webftp/session"
	"github.com/c2fo/webftp/store"
)

func (s *gatewaySuite) expectConnect(match func(webftp.ConnectionConfig) bool, conn webftp.Conn, err error) {
	s.transport.EXPECT().Connect(mock.Anything, mock.MatchedBy(match)).Return(conn, err).Once()
}

func (s *gatewaySuite) TestConnectJSON() {
	conn := s.newConn(webftp.ProtocolFTP)
	s.expectConnect(func(cfg webftp.ConnectionConfig) bool {
		return cfg.Host == "ftp.example.com" && cfg.Port == 2121 && cfg.Username == "bob" &&
			cfg.Password == "pw" && cfg.Protocol == webftp.ProtocolFTP && cfg.TLS == webftp.TLSNone
	}, conn, nil)

	rec := s.do(http.MethodPost, APIPrefix+"/connect",
		[]byte(`{"host":"ftp.example.com","port":"2121","user":"bob","password":"pw","protocol":"ftp"}`),
		"application/json")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var resp connectResponse
	s.decode(rec, &resp)
	s.True(resp.Success)
	s.NotEmpty(resp.ConnectionID)
	s.Equal(1, s.registry.Len())

	_, err := s.registry.Get(resp.ConnectionID)
	s.NoError(err)
}

func (s *gatewaySuite) TestConnectNumericPortAndSecure() {
	conn := s.newConn(webftp.ProtocolFTPS)
	s.expectConnect(func(cfg webftp.ConnectionConfig) bool {
		return cfg.Port == 990 && cfg.Protocol == webftp.ProtocolFTPS && cfg.TLS == webftp.TLSImplicit
	}, conn, nil)

	rec := s.do(http.MethodPost, APIPrefix+"/connect",
		[]byte(`{"host":"ftp.example.com","port":990,"user":"bob","protocol":"ftp","secure":"implicit"}`),
		"application/json")
	s.Equal(http.StatusOK, rec.Code, rec.Body.String())
}

func (s *gatewaySuite) TestConnectSecureBoolean() {
	conn := s.newConn(webftp.ProtocolFTPS)
	s.expectConnect(func(cfg webftp.ConnectionConfig) bool {
		return cfg.Port == 21 && cfg.Protocol == webftp.ProtocolFTPS && cfg.TLS == webftp.TLSExplicit
	}, conn, nil)

	rec := s.do(http.MethodPost, APIPrefix+"/connect",
		[]byte(`{"host":"ftp.example.com","user":"bob","protocol":"ftp","secure":true}`), "application/json")
	s.Equal(http.StatusOK, rec.Code, rec.Body.String())
}

func (s *gatewaySuite) TestConnectForm() {
	conn := s.newConn(webftp.ProtocolSFTP)
	s.expectConnect(func(cfg webftp.ConnectionConfig) bool {
		return cfg.Host == "sftp.example.com" && cfg.Port == 22 && cfg.Username == "alice" &&
			cfg.Protocol == webftp.ProtocolSFTP
	}, conn, nil)

	form := url.Values{
		"host":     {"sftp.example.com"},
		"user":     {"alice"},
		"password": {"pw"},
		"protocol": {"SFTP"},
	}
	rec := s.do(http.MethodPost, APIPrefix+"/connect", []byte(form.Encode()), "application/x-www-form-urlencoded")
	s.Equal(http.StatusOK, rec.Code, rec.Body.String())
}

func (s *gatewaySuite) TestConnectInvalid() {
	tests := []struct {
		body    string
		message string
	}{
		{`{"protocol":"ftp"}`, "missing host"},
		{`{"host":"h","port":"abc","protocol":"ftp"}`, "bad port"},
		{`{"host":"h","port":70000,"protocol":"ftp"}`, "port out of range"},
		{`{"host":"h","protocol":"gopher"}`, "bad protocol"},
		{`{"host":"h"}`, "missing protocol"},
		{`{"host":"h","protocol":"sftp","secure":"implicit"}`, "tls on sftp"},
		{`{"host":"h","protocol":"ftp","save":"maybe"}`, "bad save flag"},
		{`{"host":"h","protocol":"ftp","port":{}}`, "object port"},
		{`{"host":`, "malformed json"},
	}
	for _, tt := range tests {
		s.Run(tt.message, func() {
			rec := s.do(http.MethodPost, APIPrefix+"/connect", []byte(tt.body), "application/json")
			s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
			s.NotEmpty(s.errorMessage(rec))
		})
	}
	s.Equal(0, s.registry.Len())
}

func (s *gatewaySuite) TestConnectFailures() {
	tests := []struct {
		err     error
		status  int
		message string
	}{
		{webftp.Wrap(webftp.ErrAuthentication, errors.New("530 Login incorrect.")), http.StatusUnauthorized, "auth"},
		{webftp.Wrap(webftp.ErrNetwork, errors.New("connection refused")), http.StatusBadGateway, "network"},
		{errors.New("mystery"), http.StatusInternalServerError, "unclassified"},
	}
	for _, tt := range tests {
		s.Run(tt.message, func() {
			s.expectConnect(func(webftp.ConnectionConfig) bool { return true }, nil, tt.err)

			rec := s.do(http.MethodPost, APIPrefix+"/connect",
				[]byte(`{"host":"h","user":"bob","password":"bad","protocol":"ftp"}`), "application/json")
			s.Equal(tt.status, rec.Code)
			s.Contains(s.errorMessage(rec), tt.err.Error(), "underlying reason reaches the user")
		})
	}
	s.Equal(0, s.registry.Len())
}

func (s *gatewaySuite) TestConnectSessionLimit() {
	s.setup(session.NewRegistry(session.WithLogger(logging.Discard()), session.WithMaxSessions(1)), WithCipher(s.cipher))

	first := s.newConn(webftp.ProtocolFTP)
	s.expectConnect(func(webftp.ConnectionConfig) bool { return true }, first, nil)
	rec := s.do(http.MethodPost, APIPrefix+"/connect", []byte(`{"host":"h","protocol":"ftp"}`), "application/json")
	s.Require().Equal(http.StatusOK, rec.Code)

	second := s.newConn(webftp.ProtocolFTP)
	s.expectConnect(func(webftp.ConnectionConfig) bool { return true }, second, nil)
	rec = s.do(http.MethodPost, APIPrefix+"/connect", []byte(`{"host":"h","protocol":"ftp"}`), "application/json")
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	second.AssertCalled(s.T(), "Close")
	s.Equal(1, s.registry.Len())
}

func (s *gatewaySuite) TestConnectSave() {
	conn := s.newConn(webftp.ProtocolSFTP)
	s.expectConnect(func(webftp.ConnectionConfig) bool { return true }, conn, nil)

	rec := s.do(http.MethodPost, APIPrefix+"/connect",
		[]byte(`{"host":"sftp.example.com","user":"bob","password":"s3cr3t","protocol":"sftp","save":true}`),
		"application/json")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.server.Wait()

	conns, err := s.store.ListConnections(context.Background())
	s.Require().NoError(err)
	s.Require().Len(conns, 1)
	c := conns[0]
	s.Equal("bob@sftp.example.com", c.Name)
	s.Equal(22, c.Port)
	s.Equal(webftp.ProtocolSFTP, c.Protocol)
	s.NotContains(c.PasswordCiphertext, "s3cr3t")

	plain, err := s.cipher.Decrypt(c.PasswordCiphertext)
	s.Require().NoError(err)
	s.Equal("s3cr3t", plain)
}

func (s *gatewaySuite) TestConnectSaveWithoutKey() {
	s.setup(session.NewRegistry(session.WithLogger(logging.Discard())))

	conn := s.newConn(webftp.ProtocolFTP)
	s.expectConnect(func(webftp.ConnectionConfig) bool { return true }, conn, nil)

	rec := s.do(http.MethodPost, APIPrefix+"/connect",
		[]byte(`{"host":"h","user":"bob","password":"pw","protocol":"ftp","save":"true"}`), "application/json")
	s.Equal(http.StatusOK, rec.Code, "persistence failure never fails the connect")
	s.server.Wait()

	conns, err := s.store.ListConnections(context.Background())
	s.Require().NoError(err)
	s.Empty(conns)
}

func (s *gatewaySuite) TestSavedConnections() {
	ctx := context.Background()
	token, err := s.cipher.Encrypt("pw")
	s.Require().NoError(err)
	s.Require().NoError(s.store.SaveConnection(ctx, store.StoredConnection{
		ID:                 "saved-1",
		Host:               "ftp.example.com",
		Port:               21,
		Username:           "bob",
		PasswordCiphertext: token,
		Protocol:           webftp.ProtocolFTP,
	}))

	rec := s.do(http.MethodGet, APIPrefix+"/connections", nil, "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.NotContains(rec.Body.String(), token, "ciphertext never leaves the server")
	var list connectionsResponse
	s.decode(rec, &list)
	s.Require().Len(list.Connections, 1)
	s.Equal("bob@ftp.example.com", list.Connections[0].Name)

	conn := s.newConn(webftp.ProtocolFTP)
	s.expectConnect(func(cfg webftp.ConnectionConfig) bool {
		return cfg.Host == "ftp.example.com" && cfg.Username == "bob" && cfg.Password == "pw"
	}, conn, nil)
	rec = s.do(http.MethodPost, APIPrefix+"/connections/saved-1/connect", nil, "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var resp connectResponse
	s.decode(rec, &resp)
	s.NotEmpty(resp.ConnectionID)

	rec = s.do(http.MethodDelete, APIPrefix+"/connections/saved-1", nil, "")
	s.Equal(http.StatusOK, rec.Code)
	rec = s.do(http.MethodDelete, APIPrefix+"/connections/saved-1", nil, "")
	s.Equal(http.StatusNotFound, rec.Code)
	rec = s.do(http.MethodPost, APIPrefix+"/connections/saved-1/connect", nil, "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *gatewaySuite) TestSavedConnectionsEmpty() {
	rec := s.do(http.MethodGet, APIPrefix+"/connections", nil, "")
	s.Equal(http.StatusOK, rec.Code)
	s.True(strings.Contains(rec.Body.String(), `"connections":[]`))
}

func (s *gatewaySuite) TestConnectSavedWithoutKey() {
	s.setup(session.NewRegistry(session.WithLogger(logging.Discard())))
	s.Require().NoError(s.store.SaveConnection(context.Background(), store.StoredConnection{
		ID: "saved-1", Host: "h", Protocol: webftp.ProtocolFTP, PasswordCiphertext: "00:11",
	}))

	rec := s.do(http.MethodPost, APIPrefix+"/connections/saved-1/connect", nil, "")
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(s.errorMessage(rec), webftp.ErrConfiguration.Error())
}

func (s *gatewaySuite) TestConnectSavedCorruptToken() {
	s.Require().NoError(s.store.SaveConnection(context.Background(), store.StoredConnection{
		ID: "saved-1", Host: "h", Protocol: webftp.ProtocolFTP, PasswordCiphertext: "not-a-token",
	}))

	rec := s.do(http.MethodPost, APIPrefix+"/connections/saved-1/connect", nil, "")
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(s.errorMessage(rec), webftp.ErrFormat.Error())
}
