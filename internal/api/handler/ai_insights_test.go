package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/growth-metrics-api/infrastructure/integrator/mockdata"
	"github.com/vfg2006/growth-metrics-api/internal/api/handler/router"
	"github.com/vfg2006/growth-metrics-api/internal/domain"
	collectmocks "github.com/vfg2006/growth-metrics-api/internal/usecases/collecting/mocks"
	insightmocks "github.com/vfg2006/growth-metrics-api/internal/usecases/insighting/mocks"
	"go.uber.org/mock/gomock"
)

func TestGetAIInsights(t *testing.T) {
	t.Run("Categoria conhecida - insight e dados da categoria", func(t *testing.T) {
		deps := newTestRouter(t)
		deps.insighter.EXPECT().
			Summarize(gomock.Any(), gomock.Any(), "u1").
			DoAndReturn(func(_ context.Context, data any, _ string) domain.InsightResult {
				assert.Equal(t, &domain.Retention{RetentionRate: 85.0, AtRisk: 10}, data)
				return domain.InsightSucceeded("Re-engage the 10 at-risk customers.", data)
			})

		w := doRequest(deps.router, "/ai/insights", map[string]string{
			"X-API-Key": testAPIKey,
			"endpoint":  "retention",
			"user-id":   "u1",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"insight": "Re-engage the 10 at-risk customers.",
			"data": {"retention_rate": 85.0, "at_risk": 10}
		}`, w.Body.String())
	})

	t.Run("Endpoint via query e user-id padrão", func(t *testing.T) {
		deps := newTestRouter(t)
		deps.insighter.EXPECT().
			Summarize(gomock.Any(), gomock.Any(), "unknown_user").
			Return(domain.InsightSucceeded("ok", &domain.Revenue{Total: 12700.0}))

		w := doRequest(deps.router, "/ai/insights?endpoint=revenue", map[string]string{"X-API-Key": testAPIKey})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Categoria desconhecida não chama o LLM", func(t *testing.T) {
		deps := newTestRouter(t)
		deps.insighter.EXPECT().Summarize(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := doRequest(deps.router, "/ai/insights", map[string]string{
			"X-API-Key": testAPIKey,
			"endpoint":  "nonexistent",
		})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "No data for AI analysis", decodeBody(t, w)["error"])
	})

	t.Run("Falha do LLM vira 500 com a mensagem", func(t *testing.T) {
		deps := newTestRouter(t)
		deps.insighter.EXPECT().
			Summarize(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(domain.InsightFailed("openai: requisição falhou com status 429: Rate limit reached"))

		w := doRequest(deps.router, "/ai/insights", map[string]string{
			"X-API-Key": testAPIKey,
			"endpoint":  "performance",
		})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "SRV_003", body["code"])
		assert.Equal(t, "openai: requisição falhou com status 429: Rate limit reached", body["error"])
	})

	t.Run("Sem endpoint", func(t *testing.T) {
		deps := newTestRouter(t)
		deps.insighter.EXPECT().Summarize(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := doRequest(deps.router, "/ai/insights", map[string]string{"X-API-Key": testAPIKey})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("api_key não autentica esta rota", func(t *testing.T) {
		deps := newTestRouter(t)
		deps.insighter.EXPECT().Summarize(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := doRequest(deps.router, "/ai/insights", map[string]string{
			"api_key":  testAPIKey,
			"endpoint": "revenue",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGetAIInsights_UsaCredenciaisConfiguradas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creds := mockdata.ShopifyCredentials{APIKey: "cfg-key", Password: "cfg-pass", Shop: "cfg-shop"}

	collector := collectmocks.NewMockCollector(ctrl)
	insighter := insightmocks.NewMockInsighter(ctrl)

	collector.EXPECT().
		Fetch(domain.CategoryShopifyChurn, creds).
		Return(&domain.MetricPayload{Shopify: &domain.ShopifyChurn{ChurnRate: 50.0, AtRiskCustomers: 1}}, nil)
	insighter.EXPECT().
		Summarize(gomock.Any(), &domain.ShopifyChurn{ChurnRate: 50.0, AtRiskCustomers: 1}, "unknown_user").
		Return(domain.InsightSucceeded("ok", nil))

	rt := router.New(router.WithRoutes(AIInsights(MetricsServices{
		Collector: collector,
		Insighter: insighter,
		Shopify:   creds,
	}, testAPIKey)...))

	w := doRequest(rt, "/ai/insights", map[string]string{"X-API-Key": testAPIKey, "endpoint": "shopify/churn"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetAIInsights_ErroNoCollector(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	collector := collectmocks.NewMockCollector(ctrl)
	insighter := insightmocks.NewMockInsighter(ctrl)

	collector.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, errors.New("categoria de métrica desconhecida"))
	insighter.EXPECT().Summarize(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	rt := router.New(router.WithRoutes(AIInsights(MetricsServices{
		Collector: collector,
		Insighter: insighter,
	}, testAPIKey)...))

	w := doRequest(rt, "/ai/insights", map[string]string{"X-API-Key": testAPIKey, "endpoint": "revenue"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
