package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	visitorRate  = rate.Limit(5)
	visitorBurst = 20
	visitorTTL   = 60 * time.Minute
)

// A Visitor tracks a rate limiter and last seen time.
type Visitor struct {
	LastSeen time.Time
	Limiter  *rate.Limiter
}

// A Visitors maps a Visitor to an IP address.
type Visitors struct {
	val   map[string]Visitor
	limit rate.Limit
	burst int
	sync.Mutex
}

// NewVisitors constructs a Visitors
// limiting each address to 5 requests every second with bursts of up to 20.
func NewVisitors() *Visitors { return NewVisitorsWithLimit(visitorRate, visitorBurst) }

// NewVisitorsWithLimit constructs a Visitors limiting each address to limit with bursts of up to burst.
func NewVisitorsWithLimit(limit rate.Limit, burst int) *Visitors {
	return &Visitors{val: make(map[string]Visitor), limit: limit, burst: burst}
}

// Fetch retrieves the Visitor for the given ip creating a new Visitor if not seen.
func (vs *Visitors) Fetch(ip string) Visitor {
	vs.Lock()
	defer vs.Unlock()

	v, ok := vs.val[ip]
	if !ok {
		v = Visitor{Limiter: rate.NewLimiter(vs.limit, vs.burst)}
	}

	v.LastSeen = time.Now().UTC()
	vs.val[ip] = v
	return v
}

// Len reports how many visitors are tracked.
func (vs *Visitors) Len() int {
	vs.Lock()
	defer vs.Unlock()
	return len(vs.val)
}

// cleanup deletes a Visitor from Visitors if they have not been seen in over an hour.
func (vs *Visitors) cleanup() {
	vs.Lock()
	defer vs.Unlock()
	for ip, v := range vs.val {
		if time.Since(v.LastSeen) > visitorTTL {
			delete(vs.val, ip)
		}
	}
}

// RateLimit encloses the Visitors map and rejects requests from visitors
// exceeding their limit with 429 Too Many Requests.
//
// NOTE: implementation found here:
// https://www.alexedwards.net/blog/how-to-rate-limit-http-requests
func RateLimit(visitors *Visitors) Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !visitors.Fetch(GetIPAddress(r)).Limiter.Allow() {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			visitors.cleanup()
			h.ServeHTTP(w, r)
		})
	}
}
