package clientip

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteAddr_ExtractIP(t *testing.T) {
	tests := []struct {
		name    string
		addr    string
		want    string
		wantErr bool
	}{
		{"ipv4 with port", "192.168.1.1:54321", "192.168.1.1", false},
		{"ipv6 with port", "[2001:db8::1]:8080", "2001:db8::1", false},
		{"ipv4 without port", "127.0.0.1", "127.0.0.1", false},
		{"garbage", "not-an-ip", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.addr

			got, err := RemoteAddr{}.ExtractIP(req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePrefixes(t *testing.T) {
	got, err := ParsePrefixes("10.0.0.0/8, 192.168.1.1 ,2001:db8::/32")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "10.0.0.0/8", got[0].String())
	assert.Equal(t, "192.168.1.1/32", got[1].String())
	assert.Equal(t, "2001:db8::/32", got[2].String())

	_, err = ParsePrefixes("10.0.0.0/8,bogus")
	assert.Error(t, err)

	_, err = ParsePrefixes(" , ")
	assert.Error(t, err)
}

func TestTrustedProxy_ExtractIP(t *testing.T) {
	prefixes, err := ParsePrefixes("10.0.0.0/8")
	require.NoError(t, err)
	ex := New(ProxyConfig{Enabled: true, AllowedCIDRs: prefixes})

	tests := []struct {
		name   string
		remote string
		xff    string
		xri    string
		want   string
	}{
		{"trusted proxy uses first forwarded address", "10.1.2.3:80", "203.0.113.7, 10.1.2.3", "", "203.0.113.7"},
		{"trusted proxy falls back to X-Real-IP", "10.1.2.3:80", "", "203.0.113.9", "203.0.113.9"},
		{"trusted proxy with junk headers uses peer", "10.1.2.3:80", "junk", "", "10.1.2.3"},
		{"untrusted peer ignores headers", "198.51.100.4:80", "203.0.113.7", "203.0.113.9", "198.51.100.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/auth/login", nil)
			req.RemoteAddr = tt.remote
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				req.Header.Set("X-Real-IP", tt.xri)
			}

			got, err := ex.ExtractIP(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadProxyConfig(t *testing.T) {
	t.Run("disabled by default", func(t *testing.T) {
		t.Setenv("TRUST_PROXY", "")
		cfg, err := LoadProxyConfig()
		require.NoError(t, err)
		assert.False(t, cfg.Enabled)
		assert.IsType(t, RemoteAddr{}, New(cfg))
	})

	t.Run("enabled without proxies fails", func(t *testing.T) {
		t.Setenv("TRUST_PROXY", "true")
		t.Setenv("TRUSTED_PROXIES", "")
		_, err := LoadProxyConfig()
		assert.Error(t, err)
	})

	t.Run("enabled with proxies", func(t *testing.T) {
		t.Setenv("TRUST_PROXY", "true")
		t.Setenv("TRUSTED_PROXIES", "172.16.0.0/12")
		cfg, err := LoadProxyConfig()
		require.NoError(t, err)
		assert.True(t, cfg.Enabled)
		assert.True(t, cfg.IsTrusted("172.20.0.5:1234"))
		assert.False(t, cfg.IsTrusted("8.8.8.8:53"))
	})
}
