package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JonMunkholm/IRM/internal/logging"
	"github.com/stretchr/testify/assert"
)

func TestTrustedRealIP(t *testing.T) {
	tests := []struct {
		name       string
		trusted    []string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			name:       "untrusted peer keeps remote addr",
			trusted:    []string{"10.0.0.0/8"},
			remoteAddr: "203.0.113.7:5000",
			headers:    map[string]string{"X-Real-IP": "1.2.3.4"},
			want:       "203.0.113.7:5000",
		},
		{
			name:       "trusted proxy with X-Real-IP",
			trusted:    []string{"10.0.0.0/8"},
			remoteAddr: "10.1.2.3:5000",
			headers:    map[string]string{"X-Real-IP": "1.2.3.4"},
			want:       "1.2.3.4",
		},
		{
			name:       "trusted proxy with X-Forwarded-For chain",
			trusted:    []string{"127.0.0.1"},
			remoteAddr: "127.0.0.1:5000",
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.2, 10.0.0.1"},
			want:       "198.51.100.2",
		},
		{
			name:       "invalid forwarded value is ignored",
			trusted:    []string{"127.0.0.1"},
			remoteAddr: "127.0.0.1:5000",
			headers:    map[string]string{"X-Real-IP": "not-an-ip"},
			want:       "127.0.0.1:5000",
		},
		{
			name:       "no trusted proxies configured",
			trusted:    nil,
			remoteAddr: "127.0.0.1:5000",
			headers:    map[string]string{"X-Real-IP": "1.2.3.4"},
			want:       "127.0.0.1:5000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			h := TrustedRealIP(tt.trusted)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.RemoteAddr
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.10:1234"
	assert.Equal(t, "192.0.2.10", ClientIP(req))

	req.RemoteAddr = "192.0.2.11"
	assert.Equal(t, "192.0.2.11", ClientIP(req))
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(logging.New(&buf, "info", "json"))
	t.Cleanup(func() { slog.SetDefault(prev) })

	h := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short"))
	}))

	req := httptest.NewRequest(http.MethodPost, "/records", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `"msg":"request"`)
	assert.Contains(t, out, `"path":"/records"`)
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"bytes":5`)
}
