package middleware

import (
	"net/http"
	"strings"
)

// HeaderPolicy is the fixed set of response headers added to every request.
// Private applies only under PrivatePrefix, where responses carry salary and
// leave data that must not be cached by browsers or proxies.
type HeaderPolicy struct {
	Always        [][2]string
	Private       [][2]string
	PrivatePrefix string
	// HSTS is sent only when the request reached us over TLS, directly or via
	// a proxy that sets X-Forwarded-Proto.
	HSTS string
}

// PayrollHeaderPolicy is the policy for the JSON and PDF API.
func PayrollHeaderPolicy(isProd bool) HeaderPolicy {
	p := HeaderPolicy{
		Always: [][2]string{
			{"X-Content-Type-Options", "nosniff"},
			{"X-Frame-Options", "DENY"},
			{"Referrer-Policy", "no-referrer"},
			{"Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'"},
		},
		Private: [][2]string{
			{"Cache-Control", "no-store"},
			{"Pragma", "no-cache"},
		},
		PrivatePrefix: "/api/",
	}
	if isProd {
		p.HSTS = "max-age=63072000; includeSubDomains"
	}
	return p
}

func (p HeaderPolicy) apply(h http.Header, r *http.Request) {
	for _, kv := range p.Always {
		h.Set(kv[0], kv[1])
	}
	if p.PrivatePrefix != "" && strings.HasPrefix(r.URL.Path, p.PrivatePrefix) {
		for _, kv := range p.Private {
			h.Set(kv[0], kv[1])
		}
	}
	if p.HSTS != "" && overTLS(r) {
		h.Set("Strict-Transport-Security", p.HSTS)
	}
}

func overTLS(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

// SecureHeaders applies PayrollHeaderPolicy.
func SecureHeaders(isProd bool) func(http.Handler) http.Handler {
	return Headers(PayrollHeaderPolicy(isProd))
}

func Headers(p HeaderPolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p.apply(w.Header(), r)
			next.ServeHTTP(w, r)
		})
	}
}
