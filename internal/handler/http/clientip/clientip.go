// Package clientip resolves the address of the client behind a request.
// Forwarding headers are only honoured when the direct peer is a configured
// trusted proxy; otherwise the TCP peer address is used.
package clientip

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"

	pkgconfig "newsdesk/pkg/config"
)

// Extractor returns the client IP for r.
type Extractor interface {
	ExtractIP(r *http.Request) (string, error)
}

// RemoteAddr uses the TCP peer address and ignores headers.
type RemoteAddr struct{}

func (RemoteAddr) ExtractIP(r *http.Request) (string, error) {
	return hostOnly(r.RemoteAddr)
}

// ProxyConfig lists the proxies whose forwarding headers are trusted.
type ProxyConfig struct {
	Enabled      bool
	AllowedCIDRs []netip.Prefix
}

// IsTrusted reports whether remoteAddr falls inside one of the allowed ranges.
func (c ProxyConfig) IsTrusted(remoteAddr string) bool {
	ip, err := hostOnly(remoteAddr)
	if err != nil {
		return false
	}
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	for _, p := range c.AllowedCIDRs {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// LoadProxyConfig reads TRUST_PROXY and TRUSTED_PROXIES (comma separated IPs
// or CIDRs). Enabling trust without a valid proxy list fails startup.
func LoadProxyConfig() (ProxyConfig, error) {
	if !pkgconfig.GetEnvBool("TRUST_PROXY", false) {
		return ProxyConfig{}, nil
	}

	raw := strings.TrimSpace(pkgconfig.GetEnvString("TRUSTED_PROXIES", ""))
	if raw == "" {
		return ProxyConfig{}, fmt.Errorf("TRUST_PROXY is enabled but TRUSTED_PROXIES is empty")
	}
	prefixes, err := ParsePrefixes(raw)
	if err != nil {
		return ProxyConfig{}, err
	}
	return ProxyConfig{Enabled: true, AllowedCIDRs: prefixes}, nil
}

// ParsePrefixes parses "10.0.0.0/8, 192.168.1.1" style lists. Bare addresses
// become /32 or /128 prefixes.
func ParsePrefixes(raw string) ([]netip.Prefix, error) {
	var out []netip.Prefix
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if p, err := netip.ParsePrefix(item); err == nil {
			out = append(out, p.Masked())
			continue
		}
		ip, err := netip.ParseAddr(item)
		if err != nil {
			return nil, fmt.Errorf("invalid IP or CIDR %q", item)
		}
		out = append(out, netip.PrefixFrom(ip, ip.BitLen()))
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no valid proxies in %q", raw)
	}
	return out, nil
}

// New returns the extractor matching cfg.
func New(cfg ProxyConfig) Extractor {
	if !cfg.Enabled {
		return RemoteAddr{}
	}
	return &TrustedProxy{config: cfg}
}

// TrustedProxy reads X-Forwarded-For, then X-Real-IP, when the peer is trusted.
type TrustedProxy struct {
	config ProxyConfig
}

func (e *TrustedProxy) ExtractIP(r *http.Request) (string, error) {
	if !e.config.IsTrusted(r.RemoteAddr) {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			slog.Warn("ignoring X-Forwarded-For from untrusted peer",
				slog.String("remote_addr", r.RemoteAddr))
		}
		return hostOnly(r.RemoteAddr)
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
			return ip.String(), nil
		}
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		if ip := net.ParseIP(strings.TrimSpace(xri)); ip != nil {
			return ip.String(), nil
		}
	}
	return hostOnly(r.RemoteAddr)
}

//   - "192.168.1.1:8080"    -> "192.168.1.1"
//   - "[2001:db8::1]:8080"  -> "2001:db8::1"
//   - "127.0.0.1"           -> "127.0.0.1"
func hostOnly(addr string) (string, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		if ip := net.ParseIP(addr); ip != nil {
			return ip.String(), nil
		}
		return "", fmt.Errorf("invalid address format: %s", addr)
	}
	return host, nil
}
