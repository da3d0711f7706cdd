package middleware

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

var (
	loginLimiters = make(map[string]*rate.Limiter)
	limitersMutex sync.Mutex
)

func getLoginLimiter(ip string) *rate.Limiter {
	limitersMutex.Lock()
	defer limitersMutex.Unlock()

	if limiter, exists := loginLimiters[ip]; exists {
		return limiter
	}
	limiter := rate.NewLimiter(1, 5) // 1 attempt/sec, burst up to 5
	loginLimiters[ip] = limiter
	return limiter
}

// LoginRateLimit throttles credential endpoints per client IP to slow down
// password guessing.
func LoginRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, _ := net.SplitHostPort(r.RemoteAddr)
		if ip == "" {
			ip = r.RemoteAddr
		}

		if !getLoginLimiter(ip).Allow() {
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
