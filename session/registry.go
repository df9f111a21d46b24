package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/c2fo/webftp"
	"github.com/c2fo/webftp/internal/logging"
	"github.com/c2fo/webftp/internal/metrics"
	"github.com/c2fo/webftp/options"
)

const (
	// DefaultIdleTimeout is how long a session may go untouched before a sweep evicts it.
	DefaultIdleTimeout = 10 * time.Minute
	// DefaultSweepInterval is how often the registry looks for idle sessions.
	DefaultSweepInterval = 5 * time.Minute
)

// Session is one authenticated remote connection.  Its Conn is only reachable while holding the session's operation
// lock, via Registry.Do.
type Session struct {
	id       string
	protocol webftp.Protocol
	conn     webftp.Conn
	created  time.Time

	// lock is a one-slot semaphore rather than a sync.Mutex so waiting can be abandoned when ctx ends.
	lock   chan struct{}
	closed atomic.Bool

	reg        *Registry
	lastActive time.Time // guarded by reg.mu
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Protocol returns the protocol of the underlying connection.
func (s *Session) Protocol() webftp.Protocol { return s.protocol }

// CreatedAt returns when the session was registered.
func (s *Session) CreatedAt() time.Time { return s.created }

// LastActive returns the last time the session was looked up or released.
func (s *Session) LastActive() time.Time {
	s.reg.mu.Lock()
	defer s.reg.mu.Unlock()
	return s.lastActive
}

// Lock waits for exclusive use of the session.  It fails with ctx.Err() if ctx ends first, and with
// ErrSessionNotFound if the session was torn down while waiting.
func (s *Session) Lock(ctx context.Context) error {
	select {
	case s.lock <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	if s.closed.Load() {
		<-s.lock
		return notFound(s.id)
	}
	return nil
}

// Unlock releases the session and marks it active.
func (s *Session) Unlock() {
	s.reg.touch(s)
	<-s.lock
}

func (s *Session) tryLock() bool {
	select {
	case s.lock <- struct{}{}:
		return true
	default:
		return false
	}
}

// Registry maps session ids to live connections and evicts the idle ones.  All methods are safe for concurrent use.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	closed   bool

	idleTimeout   time.Duration
	sweepInterval time.Duration
	maxSessions   int
	now           func() time.Time
	logger        *slog.Logger

	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewRegistry returns a Registry and starts its sweep loop.  Call Close to stop the loop and tear down every session.
func NewRegistry(opts ...options.Option[Registry]) *Registry {
	r := &Registry{
		sessions:      make(map[string]*Session),
		idleTimeout:   DefaultIdleTimeout,
		sweepInterval: DefaultSweepInterval,
		now:           time.Now,
		logger:        logging.Module(nil, "session"),
		stop:          make(chan struct{}),
		done:          make(chan struct{}),
	}
	options.ApplyOptions(r, opts...)

	go r.loop()
	return r
}

// IdleTimeout returns the configured idle timeout.
func (r *Registry) IdleTimeout() time.Duration { return r.idleTimeout }

func (r *Registry) loop() {
	defer close(r.done)

	ticker := time.NewTicker(r.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			if n := r.Sweep(r.now(), r.idleTimeout); n > 0 {
				r.logger.Info("evicted idle sessions", "count", n, "remaining", r.Len())
			}
		}
	}
}

// Create registers conn under a fresh random id and returns the id.  The registry takes ownership of conn: if it cannot
// be registered (the registry is full or closed) conn is closed and the error wraps ErrSessionLimit.
func (r *Registry) Create(conn webftp.Conn) (string, error) {
	protocol := conn.Protocol()

	r.mu.Lock()
	if r.closed || (r.maxSessions > 0 && len(r.sessions) >= r.maxSessions) {
		full := !r.closed
		r.mu.Unlock()

		if err := conn.Close(); err != nil {
			r.logger.Warn("failed to close rejected connection", "protocol", protocol, "error", err)
		}
		if full {
			return "", fmt.Errorf("%w: limit of %d reached", webftp.ErrSessionLimit, r.maxSessions)
		}
		return "", fmt.Errorf("%w: registry is shutting down", webftp.ErrSessionLimit)
	}

	var id string
	for {
		u, err := uuid.NewRandom()
		if err != nil {
			r.mu.Unlock()
			_ = conn.Close()
			return "", fmt.Errorf("generate session id: %w", err)
		}
		id = u.String()
		if _, taken := r.sessions[id]; !taken {
			break
		}
	}

	now := r.now()
	r.sessions[id] = &Session{
		id:         id,
		protocol:   protocol,
		conn:       conn,
		created:    now,
		lock:       make(chan struct{}, 1),
		reg:        r,
		lastActive: now,
	}
	count := len(r.sessions)
	r.mu.Unlock()

	metrics.SessionCreated(protocol.String())
	r.logger.Info("session created", "session", id, "protocol", protocol, "active", count)
	return id, nil
}

// Get returns the session for id and marks it active.  It fails with ErrSessionNotFound for unknown, removed or
// evicted ids.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, notFound(id)
	}
	s.lastActive = r.now()
	return s, nil
}

// Do runs fn with exclusive use of the session's connection.  Operations on one session run one at a time in arrival
// order; operations on different sessions never wait on each other.
func (r *Registry) Do(ctx context.Context, id string, fn func(webftp.Conn) error) error {
	s, err := r.Get(id)
	if err != nil {
		return err
	}
	if err := s.Lock(ctx); err != nil {
		return err
	}
	defer s.Unlock()

	return fn(s.conn)
}

// Remove tears down the session for id.  It waits for an in-flight operation to finish unless ctx ends first, in which
// case the connection is closed underneath it.  Unknown ids are ignored.
func (r *Registry) Remove(ctx context.Context, id string) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
		s.closed.Store(true)
	}
	r.mu.Unlock()

	if ok {
		r.teardown(ctx, s, metrics.ReasonDisconnect)
	}
}

// Sweep evicts every session idle for longer than idle as of now and returns how many were evicted.  Sessions with an
// operation in flight are skipped.
func (r *Registry) Sweep(now time.Time, idle time.Duration) int {
	var victims []*Session

	r.mu.Lock()
	for id, s := range r.sessions {
		if now.Sub(s.lastActive) <= idle {
			continue
		}
		if !s.tryLock() {
			continue
		}
		delete(r.sessions, id)
		s.closed.Store(true)
		victims = append(victims, s)
	}
	r.mu.Unlock()

	for _, s := range victims {
		r.closeConn(s, metrics.ReasonIdle)
		<-s.lock
	}
	return len(victims)
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Close stops the sweep loop and tears down every session.  In-flight operations are given until ctx ends to finish.
// Create fails after Close.
func (r *Registry) Close(ctx context.Context) {
	r.closeOnce.Do(func() {
		close(r.stop)
		<-r.done

		r.mu.Lock()
		r.closed = true
		all := make([]*Session, 0, len(r.sessions))
		for id, s := range r.sessions {
			delete(r.sessions, id)
			s.closed.Store(true)
			all = append(all, s)
		}
		r.mu.Unlock()

		var wg sync.WaitGroup
		for _, s := range all {
			wg.Add(1)
			go func(s *Session) {
				defer wg.Done()
				r.teardown(ctx, s, metrics.ReasonShutdown)
			}(s)
		}
		wg.Wait()
	})
}

// teardown closes an already unregistered session, holding its lock when it can get it before ctx ends.
func (r *Registry) teardown(ctx context.Context, s *Session, reason string) {
	select {
	case s.lock <- struct{}{}:
		defer func() { <-s.lock }()
	case <-ctx.Done():
		r.logger.Warn("closing busy session", "session", s.id, "error", ctx.Err())
	}
	r.closeConn(s, reason)
}

func (r *Registry) closeConn(s *Session, reason string) {
	metrics.SessionEvicted(reason)
	if err := s.conn.Close(); err != nil {
		r.logger.Warn("session teardown failed", "session", s.id, "reason", reason, "error", err)
		return
	}
	r.logger.Info("session closed", "session", s.id, "reason", reason)
}

func (r *Registry) touch(s *Session) {
	r.mu.Lock()
	s.lastActive = r.now()
	r.mu.Unlock()
}

func notFound(id string) error {
	return fmt.Errorf("%w: %s", webftp.ErrSessionNotFound, id)
}
