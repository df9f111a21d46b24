package ftp

import (
	"context"
	"crypto/tls"
	"net"
	"sync"
	"time"
)

// sockets dials the control and data connections of one ServerConn and keeps hold of them, so that I/O the ftp
// library blocks in can be interrupted.
type sockets struct {
	ctx       context.Context // bounds the control dial only
	dialer    net.Dialer
	tlsConfig *tls.Config // nil for plain FTP
	implicit  bool
	timeout   time.Duration

	mu      sync.Mutex
	control net.Conn
	data    net.Conn // most recent data connection
	stop    func() bool
}

// dial is passed to ftp.DialWithDialFunc.  The first call opens the control connection, every later one a data
// connection.  With a dial func set the library wraps nothing in TLS itself.
func (s *sockets) dial(network, address string) (net.Conn, error) {
	s.mu.Lock()
	first := s.control == nil
	s.mu.Unlock()

	if first {
		return s.dialControl(network, address)
	}

	c, err := s.dialer.Dial(network, address)
	if err != nil {
		return nil, err
	}
	if s.tlsConfig != nil {
		// handshake happens on first use, see the library's openDataConn
		c = tls.Client(c, s.tlsConfig)
	}

	s.mu.Lock()
	s.data = c
	s.mu.Unlock()
	return c, nil
}

func (s *sockets) dialControl(network, address string) (net.Conn, error) {
	c, err := s.dialer.DialContext(s.ctx, network, address)
	if err != nil {
		return nil, err
	}
	if s.timeout > 0 {
		_ = c.SetDeadline(time.Now().Add(s.timeout))
	}

	s.mu.Lock()
	s.control = c
	s.mu.Unlock()

	// the context may have ended between the dial and storing c
	if s.ctx.Err() != nil {
		_ = c.SetDeadline(time.Now())
	}

	if s.tlsConfig != nil && s.implicit {
		return tls.Client(c, s.tlsConfig), nil
	}
	return c, nil
}

// guard fails control connection I/O once ctx ends, until settle is called.  It covers the greeting, the TLS
// handshakes and login.
func (s *sockets) guard() {
	stop := context.AfterFunc(s.ctx, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.control != nil {
			_ = s.control.SetDeadline(time.Now())
		}
	})

	s.mu.Lock()
	s.stop = stop
	s.mu.Unlock()
}

// settle stops the connect guard and clears the control connection deadline.
func (s *sockets) settle() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stop != nil {
		s.stop()
		s.stop = nil
	}
	if s.control != nil {
		_ = s.control.SetDeadline(time.Time{})
	}
}

// interrupt fails pending I/O on the current data connection.  The control connection is left alone so the server's
// transfer reply can still be read and the session stays usable.
func (s *sockets) interrupt() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data != nil {
		_ = s.data.SetDeadline(time.Now())
	}
}

// interruptible is implemented by clients whose data connections can be failed from another goroutine.
type interruptible interface {
	interrupt()
}

// settler is implemented by clients that guard connect with a context.
type settler interface {
	settle()
}

// watch interrupts client's data transfer when ctx ends.  The returned func stops watching.
func watch(ctx context.Context, client any) func() bool {
	i, ok := client.(interruptible)
	if !ok {
		return func() bool { return false }
	}
	return context.AfterFunc(ctx, i.interrupt)
}
