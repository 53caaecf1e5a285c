package middleware

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// IPExtractor extracts a client identifier (IP address) from an HTTP request.
// Implementations decide how much to trust forwarding headers.
type IPExtractor interface {
	ExtractIP(r *http.Request) (string, error)
}

// HeaderIPExtractor resolves the client IP with the priority:
//
//  1. X-Forwarded-For (first entry of the comma-separated list)
//  2. X-Real-IP
//  3. RemoteAddr (port stripped)
//
// Headers are attacker-controlled unless a trusted reverse proxy sets them.
// When Proxies.Enabled is true, forwarding headers are only honored for
// requests arriving from an address inside Proxies.AllowedCIDRs; everything
// else falls back to RemoteAddr and logs the spoofing attempt.
type HeaderIPExtractor struct {
	Proxies TrustedProxyConfig
}

// ExtractIP returns the resolved client IP for r.
func (e *HeaderIPExtractor) ExtractIP(r *http.Request) (string, error) {
	if e.Proxies.Enabled && !e.Proxies.IsTrusted(r.RemoteAddr) {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			slog.Warn("untrusted source sent X-Forwarded-For",
				slog.String("remote_addr", r.RemoteAddr),
				slog.String("x_forwarded_for", xff),
			)
		}
		return extractIPFromAddr(r.RemoteAddr)
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if ip := parseFirstIP(xff); ip != "" {
			return ip, nil
		}
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		if ip := net.ParseIP(strings.TrimSpace(xri)); ip != nil {
			return ip.String(), nil
		}
	}

	return extractIPFromAddr(r.RemoteAddr)
}

// TrustedProxyConfig lists the reverse proxies whose forwarding headers
// may be believed. When Enabled is false the extractor honors headers
// from any source, which is only safe behind a proxy that overwrites them.
type TrustedProxyConfig struct {
	Enabled      bool
	AllowedCIDRs []netip.Prefix
}

// IsTrusted reports whether remoteAddr belongs to a configured proxy range.
func (c *TrustedProxyConfig) IsTrusted(remoteAddr string) bool {
	ip, err := extractIPFromAddr(remoteAddr)
	if err != nil {
		return false
	}
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	for _, prefix := range c.AllowedCIDRs {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

// ParseProxyList parses a comma-separated list of IPs and CIDR ranges into
// prefixes. Single IPs are widened to /32 (IPv4) or /128 (IPv6).
func ParseProxyList(s string) ([]netip.Prefix, error) {
	var prefixes []netip.Prefix
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		prefix, err := netip.ParsePrefix(part)
		if err != nil {
			ip, ipErr := netip.ParseAddr(part)
			if ipErr != nil {
				return nil, fmt.Errorf("invalid proxy entry %q: expected IP or CIDR", part)
			}
			bits := 32
			if !ip.Is4() {
				bits = 128
			}
			prefix = netip.PrefixFrom(ip, bits)
		}
		prefixes = append(prefixes, prefix)
	}
	return prefixes, nil
}

// extractIPFromAddr strips the port from a "host:port" address.
// Handles IPv4, bracketed IPv6, and bare IPs without a port.
func extractIPFromAddr(addr string) (string, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		if ip := net.ParseIP(addr); ip != nil {
			return ip.String(), nil
		}
		return "", fmt.Errorf("invalid address format: %s", addr)
	}
	return host, nil
}

// parseFirstIP returns the first valid IP in a comma-separated list,
// as found in X-Forwarded-For: "client, proxy1, proxy2".
func parseFirstIP(s string) string {
	first := s
	if i := strings.IndexByte(s, ','); i >= 0 {
		first = s[:i]
	}
	if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
		return ip.String()
	}
	return ""
}
