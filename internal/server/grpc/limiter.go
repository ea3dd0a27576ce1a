package grpc

import (
	"context"
	"net"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// peerLimiter keeps one token bucket per client host.
type peerLimiter struct {
	mu     sync.RWMutex
	limits map[string]*rate.Limiter
	r      rate.Limit
	b      int
}

// newPeerLimiter returns nil when r is not positive, which disables limiting.
func newPeerLimiter(r float64, b int) *peerLimiter {
	if r <= 0 {
		return nil
	}
	if b < 1 {
		b = 1
	}
	return &peerLimiter{
		limits: make(map[string]*rate.Limiter),
		r:      rate.Limit(r),
		b:      b,
	}
}

func (p *peerLimiter) get(host string) *rate.Limiter {
	p.mu.RLock()
	l, ok := p.limits[host]
	p.mu.RUnlock()
	if ok {
		return l
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if l, ok = p.limits[host]; !ok {
		l = rate.NewLimiter(p.r, p.b)
		p.limits[host] = l
	}
	return l
}

// Allow reports whether addr may perform another join now.
func (p *peerLimiter) Allow(addr string) bool {
	if p == nil {
		return true
	}
	return p.get(hostOf(addr)).Allow()
}

// prune drops buckets that have refilled completely and returns how many
// remain.
func (p *peerLimiter) prune(now time.Time) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	for host, l := range p.limits {
		if l.TokensAt(now) >= float64(l.Burst()) {
			delete(p.limits, host)
		}
	}
	return len(p.limits)
}

func (p *peerLimiter) cleanup(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			p.prune(now)
		}
	}
}

func hostOf(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil || host == "" {
		if addr == "" {
			return "unknown"
		}
		return addr
	}
	return host
}
