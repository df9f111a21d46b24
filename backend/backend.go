package backend

import (
	"fmt"
	"sort"
	"sync"

	"github.com/c2fo/webftp"
)

var mmu sync.RWMutex
var m map[webftp.Protocol]webftp.Transport

// Register a new transport for a protocol in backend map
func Register(p webftp.Protocol, t webftp.Transport) {
	mmu.Lock()
	m[p] = t
	mmu.Unlock()
}

// Unregister unregisters a transport from backend map
func Unregister(p webftp.Protocol) {
	mmu.Lock()
	delete(m, p)
	mmu.Unlock()
}

// UnregisterAll unregisters all transports from backend map
func UnregisterAll() {
	// mainly for tests
	mmu.Lock()
	m = make(map[webftp.Protocol]webftp.Transport)
	mmu.Unlock()
}

// Backend returns the transport registered for the protocol
func Backend(p webftp.Protocol) (webftp.Transport, error) {
	mmu.RLock()
	defer mmu.RUnlock()
	t, ok := m[p]
	if !ok {
		return nil, fmt.Errorf("%w: no transport registered for protocol %q", webftp.ErrInvalidConfig, p)
	}
	return t, nil
}

// RegisteredBackends returns an array of registered protocols
func RegisteredBackends() []string {
	var f []string
	mmu.RLock()
	for k := range m {
		f = append(f, string(k))
	}
	mmu.RUnlock()
	sort.Strings(f)
	return f
}

func init() {
	m = make(map[webftp.Protocol]webftp.Transport)
}
