package ratelimiter

import (
	"sync"
	"time"
)

type clientWindow struct {
	start time.Time
	count int
}

// FixedWindowRateLimiter counts requests per client in windows that start
// with the client's first request.
type FixedWindowRateLimiter struct {
	sync.Mutex
	clients map[string]*clientWindow
	limit   int
	window  time.Duration
	now     func() time.Time
	stop    chan struct{}
}

func NewFixedWindowLimiter(limit int, window time.Duration) *FixedWindowRateLimiter {
	rl := &FixedWindowRateLimiter{
		clients: make(map[string]*clientWindow),
		limit:   limit,
		window:  window,
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

// cleanup drops expired windows so idle clients do not accumulate.
func (rl *FixedWindowRateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			rl.Lock()
			now := rl.now()
			for ip, w := range rl.clients {
				if now.Sub(w.start) >= rl.window {
					delete(rl.clients, ip)
				}
			}
			rl.Unlock()
		case <-rl.stop:
			return
		}
	}
}

func (rl *FixedWindowRateLimiter) Close() {
	close(rl.stop)
}

func (rl *FixedWindowRateLimiter) Allow(ip string) (bool, time.Duration) {
	rl.Lock()
	defer rl.Unlock()

	now := rl.now()
	w, ok := rl.clients[ip]
	if !ok || now.Sub(w.start) >= rl.window {
		rl.clients[ip] = &clientWindow{start: now, count: 1}
		return true, 0
	}

	if w.count < rl.limit {
		w.count++
		return true, 0
	}

	return false, w.start.Add(rl.window).Sub(now)
}
