package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atinyakov/use0mk/internal/middleware"
)

func TestWithSubnet(t *testing.T) {
	tests := []struct {
		name           string
		subnet         string
		realIP         string
		expectedStatus int
		expectCalled   bool
	}{
		{
			name:           "Allowed subnet",
			subnet:         "192.168.0.0/24",
			realIP:         "192.168.0.45",
			expectedStatus: http.StatusOK,
			expectCalled:   true,
		},
		{
			name:           "Forbidden subnet",
			subnet:         "10.0.0.0/8",
			realIP:         "192.168.0.1",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Prefix is not a subnet",
			subnet:         "192.168.0.0/24",
			realIP:         "192.168.01.5",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Missing header",
			subnet:         "192.168.1.0/24",
			realIP:         "",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "No subnet configured",
			subnet:         "",
			realIP:         "",
			expectedStatus: http.StatusOK,
			expectCalled:   true,
		},
		{
			name:           "Broken subnet",
			subnet:         "192.168.1",
			realIP:         "192.168.1.1",
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			wrapped := middleware.WithSubnet(tt.subnet)(handler)

			req := httptest.NewRequest(http.MethodDelete, "/api/links", nil)
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}

			rr := httptest.NewRecorder()
			wrapped.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectCalled, called)
		})
	}
}
