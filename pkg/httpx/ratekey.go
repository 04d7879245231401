package httpx

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP extracts the caller's network address, preferring the first entry
// of a forwarded-for list when the service sits behind a proxy.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// RateKey derives the rate-counter key for an unauthenticated request: the
// client address with non-address characters stripped and separators
// normalized, so "1.2.3.4" becomes "1_2_3_4". Authenticated actions should
// key by identity id instead.
func RateKey(r *http.Request) string {
	return NormalizeRateKey(ClientIP(r))
}

// NormalizeRateKey reduces an address-ish string to [0-9a-f_].
func NormalizeRateKey(addr string) string {
	var b strings.Builder
	b.Grow(len(addr))
	for _, c := range strings.ToLower(addr) {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f':
			b.WriteRune(c)
		case c == '.' || c == ':':
			b.WriteByte('_')
		}
	}
	return b.String()
}
