// Package auth implements the authentication boundary: login and
// registration endpoints, JWT verification middleware, and the public
// endpoint allow-list.
package auth

import "strings"

// DefaultPublicEndpoints lists paths reachable without a token when the
// security config file provides no list of its own.
//
// - /healthz, /readyz: orchestration probes must not depend on credentials
// - /metrics: scraped by Prometheus from inside the network
// - /auth/: login and registration cannot require a token
var DefaultPublicEndpoints = []string{
	"/healthz",
	"/readyz",
	"/metrics",
	"/auth/",
}

// isPublic reports whether path may be served without authentication.
//
// Endpoints ending with '/' match by prefix (/auth/ covers /auth/login).
// Endpoints without a trailing slash match exactly, with an optional
// trailing slash or query string, so /healthz does not leak into
// /healthz/detail or /healthzz.
func isPublic(path string, endpoints []string) bool {
	for _, endpoint := range endpoints {
		if strings.HasSuffix(endpoint, "/") {
			if strings.HasPrefix(path, endpoint) {
				return true
			}
			continue
		}
		if path == endpoint || path == endpoint+"/" {
			return true
		}
		if strings.HasPrefix(path, endpoint+"?") {
			return true
		}
	}
	return false
}
