package server

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// visitorTTL is how long an idle client's limiter is remembered.
const visitorTTL = 10 * time.Minute

// ipLimiter keeps one token bucket per client IP.
type ipLimiter struct {
	rps      rate.Limit
	burst    int
	mu       sync.Mutex
	visitors *cache.Cache
}

func newIPLimiter(rps float64, burst int) *ipLimiter {
	if burst < 1 {
		burst = 1
	}
	return &ipLimiter{
		rps:      rate.Limit(rps),
		burst:    burst,
		visitors: cache.New(visitorTTL, visitorTTL/2),
	}
}

func (l *ipLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	lim, ok := l.visitors.Get(ip)
	if !ok {
		lim = rate.NewLimiter(l.rps, l.burst)
	}
	// Re-set on every hit so active clients never expire.
	l.visitors.Set(ip, lim, cache.DefaultExpiration)
	return lim.(*rate.Limiter)
}

func (l *ipLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.get(clientIP(r)).Allow() {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":"rate limit exceeded"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP returns the host part of RemoteAddr, which RealIP has already
// replaced with the forwarded address when present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
