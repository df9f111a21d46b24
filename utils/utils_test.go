package utils_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/c2fo/webftp"
	"github.com/c2fo/webftp/utils"
)

/**********************************
 ************TESTS*****************
 **********************************/

type utilsSuite struct {
	suite.Suite
}

type pathTest struct {
	path     string
	expected string
	isErr    bool
	message  string
}

func (s *utilsSuite) TestValidateAbsolutePath() {
	tests := []pathTest{
		{path: "/", expected: "/", message: "root"},
		{path: "/some/path/", expected: "/some/path", message: "trailing slash cleaned"},
		{path: "/some//path/../other", expected: "/some/other", message: "cleaned"},
		{path: "", isErr: true, message: "empty"},
		{path: "some/path", isErr: true, message: "relative"},
		{path: "/bad\x00path", isErr: true, message: "nul byte"},
	}

	for _, tt := range tests {
		p, err := utils.ValidateAbsolutePath(tt.path)
		if tt.isErr {
			s.ErrorIs(err, webftp.ErrInvalidPath, tt.message)
			continue
		}
		s.NoError(err, tt.message)
		s.Equal(tt.expected, p, tt.message)
	}
}

func (s *utilsSuite) TestValidateAbsoluteFilePath() {
	tests := []pathTest{
		{path: "/some/file.txt", expected: "/some/file.txt", message: "file"},
		{path: "/", isErr: true, message: "root is not a file"},
		{path: "/some/dir/", isErr: true, message: "trailing slash"},
		{path: "file.txt", isErr: true, message: "relative"},
	}

	for _, tt := range tests {
		p, err := utils.ValidateAbsoluteFilePath(tt.path)
		if tt.isErr {
			s.ErrorIs(err, webftp.ErrInvalidPath, tt.message)
			continue
		}
		s.NoError(err, tt.message)
		s.Equal(tt.expected, p, tt.message)
	}
}

func (s *utilsSuite) TestCleanFileName() {
	tests := []pathTest{
		{path: "report.pdf", expected: "report.pdf", message: "plain"},
		{path: `C:\Users\bob\report.pdf`, expected: "report.pdf", message: "windows path"},
		{path: "dir/sub/report.pdf", expected: "report.pdf", message: "relative path"},
		{path: "with:colon.txt", expected: "with:colon.txt", message: "colon allowed"},
		{path: "", isErr: true, message: "empty"},
		{path: "..", isErr: true, message: "dot dot"},
		{path: "/", isErr: true, message: "slash"},
	}

	for _, tt := range tests {
		name, err := utils.CleanFileName(tt.path)
		if tt.isErr {
			s.ErrorIs(err, webftp.ErrInvalidPath, tt.message)
			continue
		}
		s.NoError(err, tt.message)
		s.Equal(tt.expected, name, tt.message)
	}
}

func (s *utilsSuite) TestJoinRemote() {
	s.Equal("/a.txt", utils.JoinRemote("/", "a.txt"), "root collapses double slash")
	s.Equal("/docs/a.txt", utils.JoinRemote("/docs", "a.txt"))
	s.Equal("/docs/a.txt", utils.JoinRemote("/docs/", "a.txt"))
	s.Equal("/a.txt", utils.JoinRemote("", "a.txt"), "empty dir is root")
}

func (s *utilsSuite) TestBasename() {
	s.Equal("file.txt", utils.Basename("/some/path/file.txt", "download"))
	s.Equal("path", utils.Basename("/some/path/", "download"))
	s.Equal("download", utils.Basename("/", "download"))
	s.Equal("download", utils.Basename("", "download"))
}

func (s *utilsSuite) TestSlashes() {
	s.Equal("/some/path/", utils.EnsureTrailingSlash("/some/path"))
	s.Equal("/some/path/", utils.EnsureTrailingSlash("/some/path/"))
	s.Equal("/some/path", utils.EnsureLeadingSlash("some/path"))
	s.Equal("/some/path", utils.RemoveTrailingSlash("/some/path///"))
}

func (s *utilsSuite) TestParseRemoteURL() {
	cfg, p, err := utils.ParseRemoteURL("sftp://bob@host.com:2222/home/bob")
	s.Require().NoError(err)
	s.Equal(webftp.ConnectionConfig{Host: "host.com", Port: 2222, Username: "bob", Protocol: webftp.ProtocolSFTP}, cfg)
	s.Equal("/home/bob", p)

	cfg, p, err = utils.ParseRemoteURL("ftps://anon:pw@[::1]")
	s.Require().NoError(err)
	s.Equal("::1", cfg.Host)
	s.Equal(0, cfg.Port)
	s.Equal("pw", cfg.Password)
	s.Equal(webftp.ProtocolFTPS, cfg.Protocol)
	s.Equal("/", p)

	_, _, err = utils.ParseRemoteURL("s3://bucket/key")
	s.ErrorIs(err, webftp.ErrInvalidConfig)

	_, _, err = utils.ParseRemoteURL("ftp://host.com:99999/")
	s.ErrorIs(err, webftp.ErrInvalidConfig)
}

func (s *utilsSuite) TestDisplayName() {
	s.Equal("bob@host.com", utils.DisplayName("bob", "host.com"))
	s.Equal("host.com", utils.DisplayName("", "host.com"))
}

func TestUtils(t *testing.T) {
	suite.Run(t, new(utilsSuite))
}
