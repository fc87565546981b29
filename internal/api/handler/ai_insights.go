package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/growth-metrics-api/internal/domain"
	"github.com/vfg2006/growth-metrics-api/internal/metrics"
	"github.com/vfg2006/growth-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/growth-metrics-api/pkg/log"
)

const (
	defaultInsightUserID = "unknown_user"
	noDataMessage        = "No data for AI analysis"
)

type insightResponse struct {
	Insight string `json:"insight"`
	Data    any    `json:"data"`
}

// GetAIInsights resume uma categoria com o LLM. Ao contrário de /metrics,
// falhas do LLM são devolvidas ao cliente com status 500.
func GetAIInsights(services MetricsServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		endpoint := requestValue(r, headerEndpoint)
		if endpoint == "" {
			writeMissingHeader(w, logger, headerEndpoint)
			return
		}

		userID := requestValue(r, headerUserID)
		if userID == "" {
			userID = defaultInsightUserID
		}

		logger = logger.WithFields(log.Fields{
			"category": endpoint,
			"user_id":  userID,
		})

		category, ok := domain.ParseCategory(endpoint)
		if !ok {
			logger.Warn("ai-insights: categoria desconhecida, LLM não será chamado")
			apiErrors.WriteError(w, apiErrors.ErrNoData, noDataMessage, nil)
			return
		}

		payload, err := services.Collector.Fetch(category, services.Shopify)
		if err != nil {
			logger.WithError(err).Warn("ai-insights: sem dados para a categoria")
			apiErrors.WriteError(w, apiErrors.ErrNoData, noDataMessage, nil)
			return
		}

		data := payload.Section(category)
		result := services.Insighter.Summarize(context.WithoutCancel(r.Context()), data, userID)
		metrics.InsightRequestsTotal.WithLabelValues("ai_insights", metrics.Outcome(!result.Failed())).Inc()

		if result.Failed() {
			logger.WithField("error", result.Error).Error("ai-insights: falha ao gerar insight")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, result.Error, nil)
			return
		}

		writeJSON(w, logger, http.StatusOK, insightResponse{
			Insight: result.Insight,
			Data:    result.Data,
		})
	})
}
