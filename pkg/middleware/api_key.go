package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/vfg2006/growth-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/growth-metrics-api/pkg/log"
)

const (
	// HeaderAPIKey é o header usado pelas rotas de métricas
	HeaderAPIKey = "api_key"
	// HeaderXAPIKey é o header usado pela rota de insights de IA
	HeaderXAPIKey = "X-API-Key"
)

// HeaderValue lê o header pelo nome informado e, se vazio, pela variante com
// hífens no lugar de underscores (api_key → api-key).
func HeaderValue(r *http.Request, name string) string {
	if v := strings.TrimSpace(r.Header.Get(name)); v != "" {
		return v
	}

	if strings.Contains(name, "_") {
		return strings.TrimSpace(r.Header.Get(strings.ReplaceAll(name, "_", "-")))
	}

	return ""
}

// APIKeyMiddleware compara o header informado com o segredo compartilhado.
// Qualquer diferença encerra a requisição com 401.
func APIKeyMiddleware(header, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !ValidAPIKey(HeaderValue(r, header), secret) {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				}).Warn("auth: API key inválida")

				apiErrors.WriteError(w, apiErrors.ErrInvalidAPIKey, "Invalid API Key", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ValidAPIKey compara em tempo constante. Segredo vazio nunca é aceito.
func ValidAPIKey(provided, secret string) bool {
	if secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) == 1
}
