package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidAPIKey(t *testing.T) {
	assert.True(t, ValidAPIKey("secret", "secret"))
	assert.False(t, ValidAPIKey("wrong", "secret"))
	assert.False(t, ValidAPIKey("", "secret"))
	assert.False(t, ValidAPIKey("", ""), "segredo vazio nunca autentica")
}

func TestHeaderValue(t *testing.T) {
	t.Run("Header com underscore", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("api_key", "secret")
		assert.Equal(t, "secret", HeaderValue(r, "api_key"))
	})

	t.Run("Variante com hífen", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Api-Key", "secret")
		assert.Equal(t, "secret", HeaderValue(r, "api_key"))
	})

	t.Run("Ausente", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Empty(t, HeaderValue(r, "api_key"))
	})
}

func TestAPIKeyMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		headers    map[string]string
		wantStatus int
		wantCalled bool
	}{
		{
			name:       "Chave correta",
			header:     HeaderAPIKey,
			headers:    map[string]string{"api_key": "secret"},
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
		{
			name:       "Chave ausente",
			header:     HeaderAPIKey,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Chave errada",
			header:     HeaderAPIKey,
			headers:    map[string]string{"api_key": "wrong"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "X-API-Key correta",
			header:     HeaderXAPIKey,
			headers:    map[string]string{"X-API-Key": "secret"},
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
		{
			name:       "api_key não vale para rota de X-API-Key",
			header:     HeaderXAPIKey,
			headers:    map[string]string{"api_key": "secret"},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			})

			r := httptest.NewRequest(http.MethodGet, "/retention", nil)
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			w := httptest.NewRecorder()

			APIKeyMiddleware(tt.header, "secret")(next).ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCalled, called)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.JSONEq(t, `{"code":"AUTH_001","error":"Invalid API Key"}`, w.Body.String())
			}
		})
	}
}
