package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/c2fo/webftp"
)

type cryptSuite struct {
	suite.Suite
	configPath string
}

func TestCrypt(t *testing.T) {
	suite.Run(t, new(cryptSuite))
}

func (s *cryptSuite) SetupTest() {
	s.configPath = filepath.Join(s.T().TempDir(), "config.toml")
}

func (s *cryptSuite) run(args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", s.configPath}, args...))
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func (s *cryptSuite) TestRoundTrip() {
	s.T().Setenv("ENCRYPTION_KEY", "0123456789abcdef0123456789abcdef")

	token, err := s.run("encrypt", "s3cr3t")
	s.Require().NoError(err)
	s.Contains(token, ":")

	plain, err := s.run("decrypt", token)
	s.Require().NoError(err)
	s.Equal("s3cr3t", plain)
}

func (s *cryptSuite) TestMissingKey() {
	s.T().Setenv("ENCRYPTION_KEY", "")

	_, err := s.run("encrypt", "s3cr3t")
	s.ErrorIs(err, webftp.ErrConfiguration)
}

func (s *cryptSuite) TestShortKey() {
	s.T().Setenv("ENCRYPTION_KEY", "short")

	_, err := s.run("decrypt", "00:11")
	s.ErrorIs(err, webftp.ErrConfiguration)
}

func (s *cryptSuite) TestBadToken() {
	s.T().Setenv("ENCRYPTION_KEY", "0123456789abcdef0123456789abcdef")

	_, err := s.run("decrypt", "nope")
	s.ErrorIs(err, webftp.ErrFormat)
}
