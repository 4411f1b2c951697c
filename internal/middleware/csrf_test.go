package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDefaultCSRFConfig_Development(t *testing.T) {
	authKey := []byte("12345678901234567890123456789012")
	cfg := DefaultCSRFConfig(authKey, true, "0.0.0.0:9000")

	want := map[string]bool{
		"localhost:8080": true,
		"127.0.0.1:8080": true,
		"0.0.0.0:9000":   true,
	}
	if len(cfg.TrustedOrigins) != len(want) {
		t.Fatalf("TrustedOrigins = %v", cfg.TrustedOrigins)
	}
	for _, origin := range cfg.TrustedOrigins {
		if !want[origin] {
			t.Errorf("unexpected TrustedOrigin: %s", origin)
		}
	}
}

func TestDefaultCSRFConfig_NoDuplicateLocalhost(t *testing.T) {
	cfg := DefaultCSRFConfig(nil, true, "localhost:8080")
	if len(cfg.TrustedOrigins) != 2 {
		t.Errorf("TrustedOrigins = %v, want 2 entries", cfg.TrustedOrigins)
	}
}

func TestDefaultCSRFConfig_Production(t *testing.T) {
	cfg := DefaultCSRFConfig([]byte("12345678901234567890123456789012"), false, "example.com:443")

	if len(cfg.TrustedOrigins) != 0 {
		t.Errorf("expected no TrustedOrigins in production, got %d", len(cfg.TrustedOrigins))
	}
}

func TestCSRF_RejectsCrossSitePost(t *testing.T) {
	handler := CSRF(DefaultCSRFConfig([]byte("12345678901234567890123456789012"), false, ""))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/booking", nil)
	req.Header.Set("Sec-Fetch-Site", "cross-site")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("cross-site POST status = %d, want 403", rec.Code)
	}
}

func TestCSRF_AllowsSameOriginPost(t *testing.T) {
	handler := CSRF(DefaultCSRFConfig([]byte("12345678901234567890123456789012"), false, ""))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/booking", nil)
	req.Header.Set("Sec-Fetch-Site", "same-origin")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("same-origin POST status = %d, want 200", rec.Code)
	}
}
