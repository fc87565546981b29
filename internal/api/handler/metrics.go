package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/growth-metrics-api/infrastructure/integrator/mockdata"
	"github.com/vfg2006/growth-metrics-api/internal/domain"
	"github.com/vfg2006/growth-metrics-api/internal/metrics"
	"github.com/vfg2006/growth-metrics-api/internal/usecases/collecting"
	"github.com/vfg2006/growth-metrics-api/internal/usecases/insighting"
	"github.com/vfg2006/growth-metrics-api/internal/usecases/storing"
	"github.com/vfg2006/growth-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/growth-metrics-api/pkg/log"
)

// aggregateInsightUserID é usado no resumo de /metrics quando o cliente não
// informa user-id
const aggregateInsightUserID = "user123"

// MetricsServices agrupa as dependências das rotas de métricas
type MetricsServices struct {
	Collector collecting.Collector
	Store     storing.MetricsStorer
	Insighter insighting.Insighter
	// Shopify são as credenciais configuradas, usadas por /ai/insights
	Shopify mockdata.ShopifyCredentials
}

type shopifyChurnResponse struct {
	*domain.ShopifyChurn
	Message string `json:"message"`
}

type hubSpotChurnResponse struct {
	*domain.HubSpotChurn
	Message string `json:"message"`
}

type acquisitionResponse struct {
	*domain.Acquisition
	Message string `json:"message"`
}

type retentionResponse struct {
	*domain.Retention
	Message string `json:"message"`
}

type performanceResponse struct {
	*domain.Performance
	Message string `json:"message"`
}

type revenueResponse struct {
	*domain.Revenue
	Message string `json:"message"`
}

type metricsResponse struct {
	*domain.MetricPayload
	Message   string  `json:"message"`
	AIInsight *string `json:"ai_insight,omitempty"`
}

// storageMessage descreve o resultado da gravação para o cliente
func storageMessage(label string, result domain.PersistResult) string {
	if result.Stored {
		return label + " fetched and stored successfully."
	}
	return label + " fetched, but storage failed."
}

func categoryLabel(category domain.Category) string {
	switch category {
	case domain.CategoryShopifyChurn, domain.CategoryHubSpotChurn:
		return "Churn"
	case domain.CategoryGA4Acquisition:
		return "Acquisition"
	case domain.CategoryRetention:
		return "Retention"
	case domain.CategoryPerformance:
		return "Performance"
	case domain.CategoryRevenue:
		return "Revenue"
	default:
		return "Metrics"
	}
}

func newCategoryResponse(category domain.Category, payload *domain.MetricPayload, message string) any {
	switch category {
	case domain.CategoryShopifyChurn:
		return shopifyChurnResponse{ShopifyChurn: payload.Shopify, Message: message}
	case domain.CategoryHubSpotChurn:
		return hubSpotChurnResponse{HubSpotChurn: payload.HubSpot, Message: message}
	case domain.CategoryGA4Acquisition:
		return acquisitionResponse{Acquisition: payload.GA4, Message: message}
	case domain.CategoryRetention:
		return retentionResponse{Retention: payload.Retention, Message: message}
	case domain.CategoryPerformance:
		return performanceResponse{Performance: payload.Performance, Message: message}
	case domain.CategoryRevenue:
		return revenueResponse{Revenue: payload.Revenue, Message: message}
	default:
		return nil
	}
}

// GetCategoryMetrics calcula uma categoria, grava no warehouse e responde com
// os valores e a mensagem de gravação
func GetCategoryMetrics(services MetricsServices, category domain.Category) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithField("category", category.String())

		var creds mockdata.ShopifyCredentials
		if category == domain.CategoryShopifyChurn {
			var missing string
			if creds, missing = shopifyCredentials(r); missing != "" {
				writeMissingHeader(w, logger, missing)
				return
			}
		}

		payload, err := services.Collector.Fetch(category, creds)
		if err != nil {
			logger.WithError(err).Error("metrics: erro ao buscar métricas")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		result := services.Store.Persist(context.WithoutCancel(r.Context()), payload)
		if !result.Stored {
			logger.WithField("error", result.Reason).Warn("metrics: métricas não gravadas, respondendo mesmo assim")
		}

		writeJSON(w, logger, http.StatusOK, newCategoryResponse(category, payload, storageMessage(categoryLabel(category), result)))
	})
}

// GetMetrics monta todas as categorias, grava no warehouse e anexa o resumo
// do LLM. Falhas do LLM são omitidas da resposta.
func GetMetrics(services MetricsServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithField("category", "metrics")

		creds, missing := shopifyCredentials(r)
		if missing != "" {
			writeMissingHeader(w, logger, missing)
			return
		}

		ctx := context.WithoutCancel(r.Context())
		payload := services.Collector.Aggregate(creds)

		result := services.Store.Persist(ctx, payload)
		response := metricsResponse{
			MetricPayload: payload,
			Message:       storageMessage("Metrics", result),
		}

		userID := requestValue(r, headerUserID)
		if userID == "" {
			userID = aggregateInsightUserID
		}

		insight := services.Insighter.Summarize(ctx, payload, userID)
		metrics.InsightRequestsTotal.WithLabelValues("metrics", metrics.Outcome(!insight.Failed())).Inc()

		if insight.Failed() {
			logger.WithField("error", insight.Error).Warn("metrics: insight de IA omitido da resposta")
		} else {
			response.AIInsight = &insight.Insight
		}

		writeJSON(w, logger, http.StatusOK, response)
	})
}
