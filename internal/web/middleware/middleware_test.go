package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/fancyfont/internal/config"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(r.RemoteAddr))
})

func TestTrustedRealIP(t *testing.T) {
	tests := []struct {
		name    string
		trusted []string
		remote  string
		headers map[string]string
		want    string
	}{
		{
			name:    "untrusted proxy headers ignored",
			remote:  "203.0.113.5:1234",
			headers: map[string]string{"X-Real-IP": "1.2.3.4"},
			want:    "203.0.113.5:1234",
		},
		{
			name:    "trusted X-Real-IP",
			trusted: []string{"10.0.0.0/8"},
			remote:  "10.1.2.3:5555",
			headers: map[string]string{"X-Real-IP": "198.51.100.7"},
			want:    "198.51.100.7",
		},
		{
			name:    "trusted X-Forwarded-For first hop",
			trusted: []string{"10.1.2.3"},
			remote:  "10.1.2.3:5555",
			headers: map[string]string{"X-Forwarded-For": "198.51.100.7, 10.0.0.1"},
			want:    "198.51.100.7",
		},
		{
			name:    "invalid header value ignored",
			trusted: []string{"10.0.0.0/8"},
			remote:  "10.1.2.3:5555",
			headers: map[string]string{"X-Real-IP": "not-an-ip"},
			want:    "10.1.2.3:5555",
		},
		{
			name:    "invalid CIDR skipped",
			trusted: []string{"bogus", " "},
			remote:  "10.1.2.3:5555",
			headers: map[string]string{"X-Real-IP": "198.51.100.7"},
			want:    "10.1.2.3:5555",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()

			TrustedRealIP(tt.trusted)(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Body.String())
		})
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "[::ffff:192.0.2.4]:80"
	assert.Equal(t, "192.0.2.4", ClientIP(req))

	req.RemoteAddr = "198.51.100.7"
	assert.Equal(t, "198.51.100.7", ClientIP(req))

	req.RemoteAddr = "pipe"
	assert.Equal(t, "pipe", ClientIP(req))
}

func TestRateLimiter_Allow(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(60, 2)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("a"))
	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"), "burst exhausted")
	assert.True(t, rl.Allow("b"), "buckets are per IP")

	now = now.Add(time.Second)
	assert.True(t, rl.Allow("a"), "one token refills per second")
	assert.False(t, rl.Allow("a"))
}

func TestRateLimiter_Prune(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(60, 1)
	rl.now = func() time.Time { return now }

	rl.Allow("old")
	now = now.Add(2 * time.Minute)
	rl.Allow("recent")
	now = now.Add(2 * time.Minute)

	rl.Prune()

	assert.Equal(t, 1, rl.Len())
}

func TestRateLimiter_Middleware(t *testing.T) {
	rl := NewRateLimiter(60, 1)
	h := rl.Middleware(okHandler)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "RATE001", body["code"])
	assert.Equal(t, "Too many requests", body["message"])
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := NewRateLimiterFromConfig(config.RateLimitConfig{Enabled: false})
	assert.Nil(t, rl)

	h := rl.Middleware(okHandler)
	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestAPIKeyAuth(t *testing.T) {
	tests := []struct {
		name   string
		cfg    config.SecurityConfig
		key    string
		status int
		code   string
	}{
		{"disabled", config.SecurityConfig{}, "", http.StatusOK, ""},
		{"missing", config.SecurityConfig{RequireAPIKey: true, APIKeys: []string{"k1"}}, "", http.StatusUnauthorized, "AUTH001"},
		{"invalid", config.SecurityConfig{RequireAPIKey: true, APIKeys: []string{"k1"}}, "k2", http.StatusForbidden, "AUTH002"},
		{"valid second key", config.SecurityConfig{RequireAPIKey: true, APIKeys: []string{"k1", "k2"}}, "k2", http.StatusOK, ""},
		{"no keys configured", config.SecurityConfig{RequireAPIKey: true}, "k1", http.StatusForbidden, "AUTH002"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/styles", nil)
			if tt.key != "" {
				req.Header.Set("X-API-Key", tt.key)
			}
			rec := httptest.NewRecorder()

			APIKeyAuth(&tt.cfg)(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.code == "" {
				return
			}
			var body map[string]string
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.code, body["code"])
			assert.NotEmpty(t, body["message"])
			assert.NotEmpty(t, body["action"])
		})
	}
}

func TestLogger_CapturesStatus(t *testing.T) {
	h := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("short and stout"))
	}))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "short and stout", rec.Body.String())
}
