package middleware

import (
	"context"
	"net"
	"net/http"
	"net/netip"
	"strings"

	"github.com/xy-planning-network/mediaspa"
)

// non-public ranges netip.Addr.IsPrivate does not cover
var reservedPrefixes = []netip.Prefix{
	netip.MustParsePrefix("100.64.0.0/10"),
	netip.MustParsePrefix("192.0.0.0/24"),
	netip.MustParsePrefix("198.18.0.0/15"),
}

// InjectIPAddress grabs the IP address of the *http.Request
// and promotes it to *http.Request.Context under mediaspa.IpAddrKey.
func InjectIPAddress() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := GetIPAddress(r)
			h.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), mediaspa.IpAddrKey, ip)))
		})
	}
}

// GetIPAddress parses "X-Forwarded-For" and "X-Real-Ip" headers for the IP address
// of the client, skipping addresses from non-public ranges.
//
// Without a public address in those headers, GetIPAddress falls back to r.RemoteAddr.
func GetIPAddress(r *http.Request) string {
	for _, h := range []string{"X-Forwarded-For", "X-Real-Ip"} {
		addresses := strings.Split(r.Header.Get(h), ",")
		// march from right to left until we get a public address
		// that will be the address right before our proxy.
		for i := len(addresses) - 1; i >= 0; i-- {
			addr, err := netip.ParseAddr(strings.TrimSpace(addresses[i]))
			if err != nil || !isPublic(addr) {
				continue
			}

			return addr.String()
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "0.0.0.0"
	}

	return host
}

func isPublic(addr netip.Addr) bool {
	if !addr.IsGlobalUnicast() || addr.IsPrivate() {
		return false
	}

	for _, p := range reservedPrefixes {
		if p.Contains(addr) {
			return false
		}
	}

	return true
}
