package handler

import (
	"net/http"

	"github.com/vfg2006/growth-metrics-api/internal/api/handler/router"
	"github.com/vfg2006/growth-metrics-api/internal/domain"
	"github.com/vfg2006/growth-metrics-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Prometheus expõe as métricas do processo. /metrics já é a rota agregada.
func Prometheus(h http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/internal/prometheus",
			Method:  http.MethodGet,
			Handler: h,
		},
	}
}

func Metrics(services MetricsServices, apiKey string) []router.Route {
	auth := []func(http.Handler) http.Handler{middleware.APIKeyMiddleware(middleware.HeaderAPIKey, apiKey)}

	return []router.Route{
		{
			Path:        "/shopify/churn",
			Method:      http.MethodGet,
			Handler:     GetCategoryMetrics(services, domain.CategoryShopifyChurn),
			Middlewares: auth,
		},
		{
			Path:        "/hubspot/churn",
			Method:      http.MethodGet,
			Handler:     GetCategoryMetrics(services, domain.CategoryHubSpotChurn),
			Middlewares: auth,
		},
		{
			Path:        "/ga4/acquisition",
			Method:      http.MethodGet,
			Handler:     GetCategoryMetrics(services, domain.CategoryGA4Acquisition),
			Middlewares: auth,
		},
		{
			Path:        "/retention",
			Method:      http.MethodGet,
			Handler:     GetCategoryMetrics(services, domain.CategoryRetention),
			Middlewares: auth,
		},
		{
			Path:        "/performance",
			Method:      http.MethodGet,
			Handler:     GetCategoryMetrics(services, domain.CategoryPerformance),
			Middlewares: auth,
		},
		{
			Path:        "/revenue",
			Method:      http.MethodGet,
			Handler:     GetCategoryMetrics(services, domain.CategoryRevenue),
			Middlewares: auth,
		},
		{
			Path:        "/metrics",
			Method:      http.MethodGet,
			Handler:     GetMetrics(services),
			Middlewares: auth,
		},
	}
}

func AIInsights(services MetricsServices, apiKey string) []router.Route {
	return []router.Route{
		{
			Path:        "/ai/insights",
			Method:      http.MethodGet,
			Handler:     GetAIInsights(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.APIKeyMiddleware(middleware.HeaderXAPIKey, apiKey)},
		},
	}
}

func CronJobs(services CronJobServices, apiKey string) []router.Route {
	auth := []func(http.Handler) http.Handler{middleware.APIKeyMiddleware(middleware.HeaderAPIKey, apiKey)}

	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: auth,
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: auth,
		},
	}
}
