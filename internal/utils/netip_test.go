package utils

import (
	"net/http/httptest"
	"testing"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remote     string
		headers    map[string]string
		trustProxy bool
		want       string
	}{
		{"remote addr", "203.0.113.7:5555", nil, false, "203.0.113.7"},
		{"headers ignored without trust", "10.0.0.1:80", map[string]string{"X-Forwarded-For": "198.51.100.2"}, false, "10.0.0.1"},
		{"cloudflare header first", "10.0.0.1:80", map[string]string{"CF-Connecting-IP": "198.51.100.9", "X-Forwarded-For": "198.51.100.2"}, true, "198.51.100.9"},
		{"left-most forwarded", "10.0.0.1:80", map[string]string{"X-Forwarded-For": "198.51.100.2, 10.0.0.3"}, true, "198.51.100.2"},
		{"garbage header skipped", "10.0.0.1:80", map[string]string{"X-Forwarded-For": "unknown", "X-Real-IP": "198.51.100.4"}, true, "198.51.100.4"},
		{"ipv6 remote", "[2001:db8::1]:443", nil, false, "2001:db8::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if got := ClientIP(r, tt.trustProxy); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIPMatcher(t *testing.T) {
	m := NewIPMatcher([]string{"10.0.0.0/8", " 192.168.1.5 ", "not-an-ip", "2001:db8::/32"})

	tests := []struct {
		ip   string
		want bool
	}{
		{"10.1.2.3", true},
		{"192.168.1.5", true},
		{"192.168.1.6", false},
		{"::ffff:10.0.0.1", true},
		{"2001:db8::42", true},
		{"", false},
		{"bogus", false},
	}
	for _, tt := range tests {
		if got := m.Allow(tt.ip); got != tt.want {
			t.Errorf("Allow(%q) = %v, want %v", tt.ip, got, tt.want)
		}
	}

	if !NewIPMatcher([]string{"", "nope"}).IsEmpty() {
		t.Error("matcher without valid entries should be empty")
	}
}

func TestParseHostNoPort(t *testing.T) {
	tests := map[string]string{
		"":                  "",
		"1.2.3.4":           "1.2.3.4",
		"1.2.3.4:80":        "1.2.3.4",
		"[2001:db8::1]:443": "2001:db8::1",
		"[2001:db8::1]":     "2001:db8::1",
	}
	for in, want := range tests {
		if got := ParseHostNoPort(in); got != want {
			t.Errorf("ParseHostNoPort(%q) = %q, want %q", in, got, want)
		}
	}
}
