package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/c2fo/webftp"
	"github.com/c2fo/webftp/internal/metrics"
	"github.com/c2fo/webftp/utils"
)

const (
	copyBufferSize = 32 * 1024

	// reads returning neither bytes nor an error before we give up on a stream
	maxEmptyReads = 100
)

func connectionID(r *http.Request) (string, error) {
	id := strings.TrimSpace(r.URL.Query().Get("connectionId"))
	if id == "" {
		return "", fmt.Errorf("%w: connection ID required", errBadRequest)
	}
	return id, nil
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	id, err := connectionID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	p := r.URL.Query().Get("path")
	if p == "" {
		p = "/"
	}
	p, err = utils.ValidateAbsolutePath(p)
	if err != nil {
		writeError(w, err)
		return
	}

	ctx := r.Context()
	var files []webftp.FileEntry
	err = s.registry.Do(ctx, id, func(c webftp.Conn) error {
		var err error
		files, err = c.List(ctx, p)
		return err
	})
	if err != nil {
		s.logger.Debug("list failed", "session", id, "path", p, "error", err)
		writeError(w, err)
		return
	}

	if files == nil {
		files = []webftp.FileEntry{}
	}
	writeJSON(w, http.StatusOK, listResponse{Success: true, Path: p, Files: files})
}

// handleDownload relays the remote file as it arrives.  The first chunk is read before any header is written, so a
// file that cannot be opened or read at all still gets a JSON error.  Once the body has started a failure can only cut
// it short.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	id, err := connectionID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	p := r.URL.Query().Get("path")
	if p == "" {
		writeError(w, fmt.Errorf("%w: path required", errBadRequest))
		return
	}
	p, err = utils.ValidateAbsoluteFilePath(p)
	if err != nil {
		writeError(w, err)
		return
	}

	ctx := r.Context()
	var (
		sent     bool
		n        int64
		protocol webftp.Protocol
	)
	err = s.registry.Do(ctx, id, func(c webftp.Conn) error {
		protocol = c.Protocol()

		rc, err := c.OpenReader(ctx, p)
		if err != nil {
			return err
		}
		defer func() { _ = rc.Close() }()

		buf := make([]byte, copyBufferSize)
		first, readErr := readFirst(rc, buf)
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return readErr
		}

		h := w.Header()
		h.Set("Content-Disposition", contentDisposition(utils.Basename(p, "download")))
		h.Set("Content-Type", "application/octet-stream")
		h.Set("X-Content-Type-Options", "nosniff")
		w.WriteHeader(http.StatusOK)
		sent = true

		if first > 0 {
			written, err := w.Write(buf[:first])
			n += int64(written)
			if err != nil {
				return err
			}
		}
		if readErr != nil {
			return nil
		}

		written, err := io.CopyBuffer(w, rc, buf)
		n += written
		return err
	})
	metrics.RecordTransfer(metrics.Download, protocol.String(), n, err == nil)

	switch {
	case err == nil:
		s.logger.Debug("download complete", "session", id, "path", p, "bytes", n)
	case !sent:
		writeError(w, err)
	case ctx.Err() != nil:
		s.logger.Info("download abandoned by client", "session", id, "path", p, "bytes", n)
	default:
		s.logger.Warn("download failed after headers were sent", "session", id, "path", p, "bytes", n, "error", err)
	}
}

// readFirst reads until it gets at least one byte or an error.
func readFirst(r io.Reader, buf []byte) (int, error) {
	for range maxEmptyReads {
		n, err := r.Read(buf)
		if n > 0 || err != nil {
			return n, err
		}
	}
	return 0, io.ErrNoProgress
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// contentDisposition builds an attachment header.  Names outside ASCII get an ASCII fallback plus an RFC 5987
// filename* parameter.
func contentDisposition(name string) string {
	ascii := strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e {
			return '_'
		}
		return r
	}, name)

	v := `attachment; filename="` + quoteEscaper.Replace(ascii) + `"`
	if ascii != name {
		v += "; filename*=UTF-8''" + extValue(name)
	}
	return v
}

// extValue percent-encodes every byte of s that is not an RFC 5987 attr-char.
func extValue(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isAttrChar(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func isAttrChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("!#$&+-.^_`|~", c) >= 0
}

// handleUpload streams every file part straight into the session's connection, one after another under a single
// hold of the session lock.  Each part gets its own result; the request succeeds only if every part did.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	id, err := connectionID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	dir := r.URL.Query().Get("path")
	if dir == "" {
		dir = "/"
	}
	dir, err = utils.ValidateAbsolutePath(dir)
	if err != nil {
		writeError(w, err)
		return
	}

	if s.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	}
	mr, err := r.MultipartReader()
	if err != nil {
		writeError(w, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	ctx := r.Context()
	var results []uploadResult
	err = s.registry.Do(ctx, id, func(c webftp.Conn) error {
		for {
			part, err := mr.NextPart()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("%w: read multipart body: %w", errBadRequest, err)
			}

			// plain form fields carry nothing to upload
			if part.FileName() == "" {
				_ = part.Close()
				continue
			}

			res := s.uploadPart(ctx, id, c, dir, part)
			_ = part.Close()
			results = append(results, res)

			if err := ctx.Err(); err != nil {
				return err
			}
		}
	})
	if err != nil {
		writeError(w, err)
		return
	}
	if len(results) == 0 {
		writeError(w, fmt.Errorf("%w: no files in upload", errBadRequest))
		return
	}

	failed := 0
	for _, res := range results {
		if !res.Success {
			failed++
		}
	}
	resp := uploadResponse{Success: failed == 0, Message: "Upload completed", Files: results}
	if failed > 0 {
		resp.Message = fmt.Sprintf("Upload completed with errors: %d of %d files failed", failed, len(results))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) uploadPart(ctx context.Context, id string, c webftp.Conn, dir string, part *multipart.Part) uploadResult {
	res := uploadResult{Name: part.FileName()}

	name, err := utils.CleanFileName(part.FileName())
	if err != nil {
		res.Error = err.Error()
		s.logger.Warn("upload skipped", "session", id, "file", res.Name, "error", err)
		return res
	}
	res.Name = name
	res.Path = utils.JoinRemote(dir, name)

	n, err := c.Upload(ctx, res.Path, part)
	res.Bytes = n
	metrics.RecordTransfer(metrics.Upload, c.Protocol().String(), n, err == nil)
	if err != nil {
		res.Error = err.Error()
		s.logger.Warn("upload failed", "session", id, "path", res.Path, "bytes", n, "error", err)
		return res
	}

	res.Success = true
	s.logger.Info("upload complete", "session", id, "path", res.Path, "bytes", n)
	return res
}

func (s *Server) handleDisconnect(w http.ResponseWriter, r *http.Request) {
	id, err := connectionID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	s.registry.Remove(r.Context(), id)
	writeJSON(w, http.StatusOK, messageResponse{Success: true, Message: "Disconnected"})
}
