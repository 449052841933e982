package middleware

import (
	"net"
	"net/http"
	"strings"
)

// WithSubnet lets through only requests whose X-Real-IP lies in the CIDR
// subnet. An empty subnet allows everyone; an unparsable one allows nobody.
func WithSubnet(subnet string) func(next http.Handler) http.Handler {
	var trusted *net.IPNet
	if subnet != "" {
		_, trusted, _ = net.ParseCIDR(strings.TrimSpace(subnet))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if subnet == "" {
				next.ServeHTTP(w, r)
				return
			}

			ip := net.ParseIP(strings.TrimSpace(r.Header.Get("X-Real-IP")))
			if trusted == nil || ip == nil || !trusted.Contains(ip) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
