package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/growth-metrics-api/infrastructure/integrator/mockdata"
	"github.com/vfg2006/growth-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/growth-metrics-api/pkg/log"
	"github.com/vfg2006/growth-metrics-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	headerShopifyAPIKey   = "shopify_api_key"
	headerShopifyPassword = "shopify_password"
	headerShopifyShop     = "shopify_shop"
	headerEndpoint        = "endpoint"
	headerUserID          = "user-id"
)

// requestValue lê um header e, se ausente, o parâmetro de query com o mesmo nome
func requestValue(r *http.Request, name string) string {
	if v := middleware.HeaderValue(r, name); v != "" {
		return v
	}
	return r.URL.Query().Get(name)
}

// shopifyCredentials lê as credenciais obrigatórias da loja. Retorna o nome
// do primeiro header ausente, se houver.
func shopifyCredentials(r *http.Request) (mockdata.ShopifyCredentials, string) {
	creds := mockdata.ShopifyCredentials{
		APIKey:   middleware.HeaderValue(r, headerShopifyAPIKey),
		Password: middleware.HeaderValue(r, headerShopifyPassword),
		Shop:     middleware.HeaderValue(r, headerShopifyShop),
	}

	switch {
	case creds.APIKey == "":
		return creds, headerShopifyAPIKey
	case creds.Password == "":
		return creds, headerShopifyPassword
	case creds.Shop == "":
		return creds, headerShopifyShop
	}

	return creds, ""
}

func writeMissingHeader(w http.ResponseWriter, logger log.Logger, header string) {
	logger.WithField("header", header).Warn("header obrigatório ausente")
	apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Missing required header: "+header, nil)
}

func writeJSON(w http.ResponseWriter, logger log.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.WithError(err).Error("erro ao serializar resposta")
	}
}
