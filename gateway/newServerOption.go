package gateway

import (
	"log/slog"

	"github.com/c2fo/webftp"
	"github.com/c2fo/webftp/options"
	"github.com/c2fo/webftp/store"
)

const (
	optionNameStore          = "store"
	optionNameCipher         = "cipher"
	optionNameLogger         = "logger"
	optionNameMaxUploadBytes = "maxUploadBytes"
	optionNameTransports     = "transports"
	optionNameMetrics        = "metrics"
)

// WithStore returns storeOpt implementation of options.Option
//
// WithStore sets where remembered connections are kept.  The default is an in-memory store.
func WithStore(st store.ConnectionStore) options.Option[Server] {
	return &storeOpt{store: st}
}

type storeOpt struct {
	store store.ConnectionStore
}

func (o *storeOpt) Apply(s *Server) {
	if o.store != nil {
		s.store = o.store
	}
}

func (o *storeOpt) OptionName() string {
	return optionNameStore
}

// WithCipher returns cipherOpt implementation of options.Option
//
// WithCipher sets the credential cipher used for remembered passwords.  Without one, remembering a connection fails
// with ErrConfiguration (logged, never returned to the client) and connecting from a saved connection is refused.
func WithCipher(c Cipher) options.Option[Server] {
	return &cipherOpt{cipher: c}
}

type cipherOpt struct {
	cipher Cipher
}

func (o *cipherOpt) Apply(s *Server) {
	s.cipher = o.cipher
}

func (o *cipherOpt) OptionName() string {
	return optionNameCipher
}

// WithLogger returns loggerOpt implementation of options.Option
func WithLogger(l *slog.Logger) options.Option[Server] {
	return &loggerOpt{logger: l}
}

type loggerOpt struct {
	logger *slog.Logger
}

func (o *loggerOpt) Apply(s *Server) {
	if o.logger != nil {
		s.logger = o.logger
	}
}

func (o *loggerOpt) OptionName() string {
	return optionNameLogger
}

// WithMaxUploadBytes returns maxUploadBytesOpt implementation of options.Option
//
// WithMaxUploadBytes caps the size of an upload request body.  Zero or less means unlimited.
func WithMaxUploadBytes(n int64) options.Option[Server] {
	return &maxUploadBytesOpt{n: n}
}

type maxUploadBytesOpt struct {
	n int64
}

func (o *maxUploadBytesOpt) Apply(s *Server) {
	s.maxUploadBytes = o.n
}

func (o *maxUploadBytesOpt) OptionName() string {
	return optionNameMaxUploadBytes
}

// WithTransports returns transportsOpt implementation of options.Option
//
// WithTransports replaces the lookup from protocol to transport.  The default is backend.Backend.
func WithTransports(fn func(webftp.Protocol) (webftp.Transport, error)) options.Option[Server] {
	return &transportsOpt{fn: fn}
}

type transportsOpt struct {
	fn func(webftp.Protocol) (webftp.Transport, error)
}

func (o *transportsOpt) Apply(s *Server) {
	if o.fn != nil {
		s.transports = o.fn
	}
}

func (o *transportsOpt) OptionName() string {
	return optionNameTransports
}

// WithMetricsEndpoint returns metricsOpt implementation of options.Option
//
// WithMetricsEndpoint controls whether /metrics is served by the gateway's own handler.
func WithMetricsEndpoint(enabled bool) options.Option[Server] {
	return &metricsOpt{enabled: enabled}
}

type metricsOpt struct {
	enabled bool
}

func (o *metricsOpt) Apply(s *Server) {
	s.serveMetrics = o.enabled
}

func (o *metricsOpt) OptionName() string {
	return optionNameMetrics
}
