package main

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecurityHeaders(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	securityHeaders(&Config{}, w)

	csp := w.Header().Get("Content-Security-Policy")
	assert.Contains(t, csp, "default-src 'self'")
	assert.Contains(t, csp, "connect-src 'self' ws: wss:")
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))

	w = httptest.NewRecorder()
	securityHeaders(&Config{tlsCert: "cert.pem", tlsKey: "key.pem"}, w)
	assert.NotEmpty(t, w.Header().Get("Strict-Transport-Security"))
}

func TestHumanReadableSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "512 B", humanReadableSize(512))
	assert.Equal(t, "1.0 kB", humanReadableSize(1000))
	assert.Equal(t, "1.5 MB", humanReadableSize(1500000))
}
