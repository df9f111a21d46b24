package gateway

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/c2fo/webftp"
	"github.com/c2fo/webftp/backend"
	"github.com/c2fo/webftp/internal/logging"
	"github.com/c2fo/webftp/internal/metrics"
	"github.com/c2fo/webftp/options"
	"github.com/c2fo/webftp/session"
	"github.com/c2fo/webftp/store"
)

// APIPrefix is where the file manager API is mounted.
const APIPrefix = "/api/ftp"

const saveTimeout = 10 * time.Second

// Cipher encrypts remembered passwords.  *credential.Cipher satisfies it.
type Cipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(token string) (string, error)
}

// Server serves the gateway API.  It holds no session state of its own; every session lives in the registry.
type Server struct {
	registry       *session.Registry
	store          store.ConnectionStore
	cipher         Cipher
	transports     func(webftp.Protocol) (webftp.Transport, error)
	logger         *slog.Logger
	maxUploadBytes int64
	serveMetrics   bool

	// pending remembered-connection saves
	saves sync.WaitGroup
}

// New returns a Server over registry.
func New(registry *session.Registry, opts ...options.Option[Server]) *Server {
	s := &Server{
		registry:     registry,
		store:        store.NewMemory(),
		transports:   backend.Backend,
		logger:       logging.Discard(),
		serveMetrics: true,
	}

	// apply options
	options.ApplyOptions(s, opts...)

	s.logger = logging.Module(s.logger, "gateway")
	return s
}

// Handler returns the routed, instrumented handler.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(metrics.Middleware)

	api := r.PathPrefix(APIPrefix).Subrouter()
	api.HandleFunc("/connect", s.handleConnect).Methods(http.MethodPost)
	api.HandleFunc("/list", s.handleList).Methods(http.MethodGet)
	api.HandleFunc("/download", s.handleDownload).Methods(http.MethodGet)
	api.HandleFunc("/upload", s.handleUpload).Methods(http.MethodPost)
	api.HandleFunc("/disconnect", s.handleDisconnect).Methods(http.MethodPost)
	api.HandleFunc("/connections", s.handleListConnections).Methods(http.MethodGet)
	api.HandleFunc("/connections/{id}/connect", s.handleConnectSaved).Methods(http.MethodPost)
	api.HandleFunc("/connections/{id}", s.handleDeleteConnection).Methods(http.MethodDelete)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	if s.serveMetrics {
		r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	}

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Message: "not found"})
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Message: "method not allowed"})
	})

	var h http.Handler = r
	h = handlers.CustomLoggingHandler(io.Discard, h, s.accessLog)
	h = handlers.RecoveryHandler(handlers.RecoveryLogger(recoveryLogger{s.logger}))(h)
	return h
}

// Wait blocks until every pending remembered-connection save has finished.
func (s *Server) Wait() {
	s.saves.Wait()
}

func (s *Server) accessLog(_ io.Writer, p handlers.LogFormatterParams) {
	s.logger.Debug("request",
		"method", p.Request.Method,
		"path", p.URL.Path,
		"status", p.StatusCode,
		"size", p.Size,
		"duration", time.Since(p.TimeStamp),
	)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Success: true, Sessions: s.registry.Len()})
}

// recoveryLogger adapts slog to handlers.RecoveryHandlerLogger.
type recoveryLogger struct {
	logger *slog.Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.logger.Error("panic serving request", "panic", fmt.Sprint(v...))
}

// connect dials cfg and registers the resulting connection.
func (s *Server) connect(ctx context.Context, cfg webftp.ConnectionConfig) (string, error) {
	t, err := s.transports(cfg.Protocol)
	if err != nil {
		return "", err
	}

	conn, err := t.Connect(ctx, cfg)
	metrics.RecordConnect(cfg.Protocol.String(), err)
	if err != nil {
		s.logger.Info("connect failed",
			"host", cfg.Host, "port", cfg.Port, "user", cfg.Username, "protocol", cfg.Protocol, "error", err)
		return "", err
	}

	id, err := s.registry.Create(conn)
	if err != nil {
		return "", err
	}
	s.logger.Info("connected",
		"session", id, "host", cfg.Host, "port", cfg.Port, "user", cfg.Username, "protocol", cfg.Protocol)
	return id, nil
}
