package gateway

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/c2fo/webftp"
	"github.com/c2fo/webftp/mocks"
)

func (s *gatewaySuite) TestListMissingID() {
	rec := s.do(http.MethodGet, APIPrefix+"/list?path=/", nil, "")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(s.errorMessage(rec), "connection ID required")
}

func (s *gatewaySuite) TestListUnknownSession() {
	rec := s.do(http.MethodGet, APIPrefix+"/list?connectionId=nope&path=/", nil, "")
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(sessionNotFoundMessage, s.errorMessage(rec))
}

func (s *gatewaySuite) TestList() {
	conn := s.newConn(webftp.ProtocolSFTP)
	id := s.openSession(conn)

	conn.EXPECT().List(mock.Anything, "/pub").Return([]webftp.FileEntry{
		{Name: "docs", Kind: webftp.KindDirectory, ModifyTime: 1700000000000},
		{Name: "a.txt", Kind: webftp.KindFile, Size: 3, Rights: &webftp.Rights{User: "rw-", Group: "r--", Other: "r--"}},
	}, nil).Once()

	rec := s.do(http.MethodGet, APIPrefix+"/list?connectionId="+id+"&path=/pub/", nil, "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Contains(rec.Body.String(), `"type":"directory"`)
	s.Contains(rec.Body.String(), `"rights":null`)

	var resp listResponse
	s.decode(rec, &resp)
	s.True(resp.Success)
	s.Equal("/pub", resp.Path)
	s.Require().Len(resp.Files, 2)
	s.Equal(webftp.KindFile, resp.Files[1].Kind)
	s.Equal("rw-", resp.Files[1].Rights.User)
}

func (s *gatewaySuite) TestListDefaultsToRoot() {
	conn := s.newConn(webftp.ProtocolFTP)
	id := s.openSession(conn)
	conn.EXPECT().List(mock.Anything, "/").Return(nil, nil).Once()

	rec := s.do(http.MethodGet, APIPrefix+"/list?connectionId="+id, nil, "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"files":[]`)
}

func (s *gatewaySuite) TestListErrors() {
	conn := s.newConn(webftp.ProtocolFTP)
	id := s.openSession(conn)

	rec := s.do(http.MethodGet, APIPrefix+"/list?connectionId="+id+"&path=relative", nil, "")
	s.Equal(http.StatusBadRequest, rec.Code)

	conn.EXPECT().List(mock.Anything, "/gone").Return(nil, webftp.NotFound(errors.New("550 No such directory"))).Once()
	rec = s.do(http.MethodGet, APIPrefix+"/list?connectionId="+id+"&path=/gone", nil, "")
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(s.errorMessage(rec), "550")

	conn.EXPECT().List(mock.Anything, "/flaky").
		Return(nil, webftp.Wrap(webftp.ErrTransfer, webftp.Wrap(webftp.ErrNetwork, io.ErrUnexpectedEOF))).Once()
	rec = s.do(http.MethodGet, APIPrefix+"/list?connectionId="+id+"&path=/flaky", nil, "")
	s.Equal(http.StatusBadGateway, rec.Code)
}

func (s *gatewaySuite) TestListTouchesSession() {
	conn := s.newConn(webftp.ProtocolFTP)
	id := s.openSession(conn)
	sess, err := s.registry.Get(id)
	s.Require().NoError(err)
	before := sess.LastActive()

	time.Sleep(5 * time.Millisecond)
	conn.EXPECT().List(mock.Anything, "/").Return(nil, nil).Once()
	rec := s.do(http.MethodGet, APIPrefix+"/list?connectionId="+id, nil, "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.True(sess.LastActive().After(before))
}

func (s *gatewaySuite) TestDownload() {
	conn := s.newConn(webftp.ProtocolFTP)
	id := s.openSession(conn)
	conn.EXPECT().OpenReader(mock.Anything, "/pub/report.txt").
		Return(io.NopCloser(strings.NewReader("hello world")), nil).Once()

	rec := s.do(http.MethodGet, APIPrefix+"/download?connectionId="+id+"&path=/pub/report.txt", nil, "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal("hello world", rec.Body.String())
	s.Equal(`attachment; filename="report.txt"`, rec.Header().Get("Content-Disposition"))
	s.Equal("application/octet-stream", rec.Header().Get("Content-Type"))
}

func (s *gatewaySuite) TestDownloadEmptyFile() {
	conn := s.newConn(webftp.ProtocolFTP)
	id := s.openSession(conn)
	conn.EXPECT().OpenReader(mock.Anything, "/empty").Return(io.NopCloser(strings.NewReader("")), nil).Once()

	rec := s.do(http.MethodGet, APIPrefix+"/download?connectionId="+id+"&path=/empty", nil, "")
	s.Equal(http.StatusOK, rec.Code)
	s.Empty(rec.Body.String())
}

func (s *gatewaySuite) TestDownloadValidation() {
	conn := s.newConn(webftp.ProtocolFTP)
	id := s.openSession(conn)

	for _, q := range []string{"", "&path=/", "&path=/dir/", "&path=rel.txt"} {
		rec := s.do(http.MethodGet, APIPrefix+"/download?connectionId="+id+q, nil, "")
		s.Equal(http.StatusBadRequest, rec.Code, q)
	}
}

func (s *gatewaySuite) TestDownloadNotFound() {
	conn := s.newConn(webftp.ProtocolFTP)
	id := s.openSession(conn)
	conn.EXPECT().OpenReader(mock.Anything, "/missing.txt").
		Return(nil, webftp.NotFound(errors.New("550 not found"))).Once()

	rec := s.do(http.MethodGet, APIPrefix+"/download?connectionId="+id+"&path=/missing.txt", nil, "")
	s.Equal(http.StatusNotFound, rec.Code)
	s.Empty(rec.Header().Get("Content-Disposition"))
	s.NotEmpty(s.errorMessage(rec))
}

func (s *gatewaySuite) TestDownloadFailsBeforeFirstByte() {
	conn := s.newConn(webftp.ProtocolFTP)
	id := s.openSession(conn)
	conn.EXPECT().OpenReader(mock.Anything, "/bad").
		Return(io.NopCloser(&failingReader{err: webftp.NotFound(errors.New("550"))}), nil).Once()

	rec := s.do(http.MethodGet, APIPrefix+"/download?connectionId="+id+"&path=/bad", nil, "")
	s.Equal(http.StatusNotFound, rec.Code, "clean error while nothing was sent")
	s.Empty(rec.Header().Get("Content-Disposition"))
}

func (s *gatewaySuite) TestDownloadFailsMidStream() {
	conn := s.newConn(webftp.ProtocolFTP)
	id := s.openSession(conn)
	conn.EXPECT().OpenReader(mock.Anything, "/big").
		Return(io.NopCloser(&failingReader{data: []byte("partial"), err: webftp.Wrap(webftp.ErrTransfer, io.ErrUnexpectedEOF)}), nil).
		Once()

	rec := s.do(http.MethodGet, APIPrefix+"/download?connectionId="+id+"&path=/big", nil, "")
	s.Equal(http.StatusOK, rec.Code, "headers were already sent")
	s.Equal("partial", rec.Body.String(), "body is cut short")

	// the session is still usable
	conn.EXPECT().List(mock.Anything, "/").Return(nil, nil).Once()
	rec = s.do(http.MethodGet, APIPrefix+"/list?connectionId="+id, nil, "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *gatewaySuite) TestDownloadDoesNotBlockOtherSessions() {
	slow := s.newConn(webftp.ProtocolFTP)
	slowID := s.openSession(slow)
	fast := s.newConn(webftp.ProtocolSFTP)
	fastID := s.openSession(fast)

	pr, pw := io.Pipe()
	slow.EXPECT().OpenReader(mock.Anything, "/huge.bin").Return(pr, nil).Once()
	fast.EXPECT().List(mock.Anything, "/").Return(nil, nil).Once()

	done := make(chan *httptest.ResponseRecorder)
	go func() {
		done <- s.do(http.MethodGet, APIPrefix+"/download?connectionId="+slowID+"&path=/huge.bin", nil, "")
	}()
	_, err := pw.Write([]byte("first chunk"))
	s.Require().NoError(err)

	rec := s.do(http.MethodGet, APIPrefix+"/list?connectionId="+fastID, nil, "")
	s.Equal(http.StatusOK, rec.Code, "other session answered while the download is in flight")

	s.Require().NoError(pw.Close())
	select {
	case rec := <-done:
		s.Equal("first chunk", rec.Body.String())
	case <-time.After(5 * time.Second):
		s.Fail("download did not finish")
	}
}

func (s *gatewaySuite) TestDownloadClientGone() {
	conn := s.newConn(webftp.ProtocolFTP)
	id := s.openSession(conn)

	pr, pw := io.Pipe()
	conn.EXPECT().OpenReader(mock.Anything, "/stream").
		RunAndReturn(func(ctx context.Context, _ string) (io.ReadCloser, error) {
			// close the stream when the request ends, as the backends do
			context.AfterFunc(ctx, func() { _ = pr.CloseWithError(ctx.Err()) })
			return pr, nil
		}).Once()

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, APIPrefix+"/download?connectionId="+id+"&path=/stream", nil).
		WithContext(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.handler.ServeHTTP(httptest.NewRecorder(), req)
	}()

	_, err := pw.Write([]byte("x"))
	s.Require().NoError(err)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		s.Fail("download did not stop after the client went away")
	}

	// the session lock was released
	conn.EXPECT().List(mock.Anything, "/").Return(nil, nil).Once()
	rec := s.do(http.MethodGet, APIPrefix+"/list?connectionId="+id, nil, "")
	s.Equal(http.StatusOK, rec.Code)
}

type filePart struct {
	field, name, body string
}

func multipartBody(parts ...filePart) ([]byte, string) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, p := range parts {
		var w io.Writer
		if p.name == "" {
			w, _ = mw.CreateFormField(p.field)
		} else {
			w, _ = mw.CreateFormFile(p.field, p.name)
		}
		_, _ = io.WriteString(w, p.body)
	}
	_ = mw.Close()
	return buf.Bytes(), mw.FormDataContentType()
}

// drain reads the upload body like a backend would.
func drain(_ context.Context, _ string, r io.Reader) (int64, error) {
	return io.Copy(io.Discard, r)
}

func (s *gatewaySuite) TestUpload() {
	conn := s.newConn(webftp.ProtocolSFTP)
	id := s.openSession(conn)

	var got []string
	conn.EXPECT().Upload(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, p string, r io.Reader) (int64, error) {
			b, err := io.ReadAll(r)
			got = append(got, p+"="+string(b))
			return int64(len(b)), err
		}).Twice()

	body, ct := multipartBody(
		filePart{field: "note", body: "ignored"},
		filePart{field: "files", name: "a.txt", body: "alpha"},
		filePart{field: "files", name: "b.txt", body: "bravo!"},
	)
	rec := s.do(http.MethodPost, APIPrefix+"/upload?connectionId="+id+"&path=/in/", body, ct)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var resp uploadResponse
	s.decode(rec, &resp)
	s.True(resp.Success)
	s.Equal("Upload completed", resp.Message)
	s.Require().Len(resp.Files, 2)
	s.Equal("/in/a.txt", resp.Files[0].Path)
	s.Equal(int64(6), resp.Files[1].Bytes)
	s.Equal([]string{"/in/a.txt=alpha", "/in/b.txt=bravo!"}, got, "parts are uploaded in order")
}

func (s *gatewaySuite) TestUploadToRoot() {
	conn := s.newConn(webftp.ProtocolFTP)
	id := s.openSession(conn)
	conn.EXPECT().Upload(mock.Anything, "/c.txt", mock.Anything).RunAndReturn(drain).Once()

	body, ct := multipartBody(filePart{field: "file", name: "c.txt", body: "charlie"})
	rec := s.do(http.MethodPost, APIPrefix+"/upload?connectionId="+id, body, ct)
	s.Equal(http.StatusOK, rec.Code, rec.Body.String())
}

func (s *gatewaySuite) TestUploadPartialFailure() {
	conn := s.newConn(webftp.ProtocolFTP)
	id := s.openSession(conn)
	conn.EXPECT().Upload(mock.Anything, "/ok.txt", mock.Anything).RunAndReturn(drain).Once()
	conn.EXPECT().Upload(mock.Anything, "/denied.txt", mock.Anything).
		Return(0, webftp.Wrap(webftp.ErrTransfer, errors.New("553 Permission denied"))).Once()
	conn.EXPECT().Upload(mock.Anything, "/after.txt", mock.Anything).RunAndReturn(drain).Once()

	body, ct := multipartBody(
		filePart{field: "files", name: "ok.txt", body: "1"},
		filePart{field: "files", name: "denied.txt", body: "2"},
		filePart{field: "files", name: "after.txt", body: "3"},
	)
	rec := s.do(http.MethodPost, APIPrefix+"/upload?connectionId="+id+"&path=/", body, ct)
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp uploadResponse
	s.decode(rec, &resp)
	s.False(resp.Success)
	s.Contains(resp.Message, "1 of 3")
	s.Require().Len(resp.Files, 3)
	s.True(resp.Files[0].Success)
	s.False(resp.Files[1].Success)
	s.Contains(resp.Files[1].Error, "553")
	s.True(resp.Files[2].Success, "a failed part does not stop the rest")
}

func (s *gatewaySuite) TestUploadBadFileName() {
	conn := s.newConn(webftp.ProtocolFTP)
	id := s.openSession(conn)
	conn.EXPECT().Upload(mock.Anything, "/x/report.txt", mock.Anything).RunAndReturn(drain).Once()

	body, ct := multipartBody(
		filePart{field: "files", name: `C:\Users\bob\report.txt`, body: "windows path"},
		filePart{field: "files", name: "..", body: "nope"},
	)
	rec := s.do(http.MethodPost, APIPrefix+"/upload?connectionId="+id+"&path=/x", body, ct)
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp uploadResponse
	s.decode(rec, &resp)
	s.Require().Len(resp.Files, 2)
	s.True(resp.Files[0].Success)
	s.False(resp.Files[1].Success)
}

func (s *gatewaySuite) TestUploadRejected() {
	conn := s.newConn(webftp.ProtocolFTP)
	id := s.openSession(conn)

	rec := s.do(http.MethodPost, APIPrefix+"/upload?path=/", nil, "")
	s.Equal(http.StatusBadRequest, rec.Code, "missing id")

	rec = s.do(http.MethodPost, APIPrefix+"/upload?connectionId="+id, []byte("plain"), "text/plain")
	s.Equal(http.StatusBadRequest, rec.Code, "not multipart")

	body, ct := multipartBody(filePart{field: "note", body: "no files"})
	rec = s.do(http.MethodPost, APIPrefix+"/upload?connectionId="+id, body, ct)
	s.Equal(http.StatusBadRequest, rec.Code, "no file parts")

	body, ct = multipartBody(filePart{field: "f", name: "a.txt", body: "a"})
	rec = s.do(http.MethodPost, APIPrefix+"/upload?connectionId=unknown", body, ct)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *gatewaySuite) TestDisconnect() {
	conn := mocks.NewConn(s.T())
	conn.EXPECT().Protocol().Return(webftp.ProtocolFTP).Maybe()
	conn.EXPECT().Close().Return(nil).Once()
	id := s.openSession(conn)

	rec := s.do(http.MethodPost, APIPrefix+"/disconnect?connectionId="+id, nil, "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(0, s.registry.Len())

	rec = s.do(http.MethodPost, APIPrefix+"/disconnect?connectionId="+id, nil, "")
	s.Equal(http.StatusOK, rec.Code, "idempotent")

	rec = s.do(http.MethodGet, APIPrefix+"/list?connectionId="+id, nil, "")
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodPost, APIPrefix+"/disconnect", nil, "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

// failingReader yields data and then err.
type failingReader struct {
	data []byte
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.data) > 0 {
		n := copy(p, r.data)
		r.data = r.data[n:]
		return n, nil
	}
	return 0, r.err
}
