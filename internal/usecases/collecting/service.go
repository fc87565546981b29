package collecting

import (
	"errors"
	"time"

	"github.com/vfg2006/growth-metrics-api/infrastructure/integrator/mockdata"
	"github.com/vfg2006/growth-metrics-api/internal/domain"
)

var ErrUnknownCategory = errors.New("categoria de métrica desconhecida")

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// Collector monta os payloads de métricas a partir das fontes de dados
type Collector interface {
	// Fetch monta o payload com uma única categoria
	Fetch(category domain.Category, creds mockdata.ShopifyCredentials) (*domain.MetricPayload, error)

	// Aggregate monta o payload com todas as categorias
	Aggregate(creds mockdata.ShopifyCredentials) *domain.MetricPayload
}

type Service struct {
	source mockdata.MetricSource
	now    func() time.Time
}

func NewService(source mockdata.MetricSource) *Service {
	return &Service{
		source: source,
		now:    time.Now,
	}
}

// WithClock substitui o relógio usado no timestamp do payload
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Fetch(category domain.Category, creds mockdata.ShopifyCredentials) (*domain.MetricPayload, error) {
	payload := &domain.MetricPayload{
		Timestamp: domain.NewTimestamp(s.now()),
	}

	switch category {
	case domain.CategoryShopifyChurn:
		payload.Shopify = domain.CalculateShopifyChurn(s.source.FetchShopifyOrders(creds))
	case domain.CategoryHubSpotChurn:
		payload.HubSpot = domain.CalculateHubSpotChurn(s.source.FetchHubSpotContacts())
	case domain.CategoryGA4Acquisition:
		payload.GA4 = s.source.GetGA4Acquisition()
	case domain.CategoryRetention:
		payload.Retention = s.source.GetRetention()
	case domain.CategoryPerformance:
		payload.Performance = s.source.GetPerformance()
	case domain.CategoryRevenue:
		payload.Revenue = s.source.GetRevenue()
	default:
		return nil, ErrUnknownCategory
	}

	return payload, nil
}

func (s *Service) Aggregate(creds mockdata.ShopifyCredentials) *domain.MetricPayload {
	return &domain.MetricPayload{
		Shopify:     domain.CalculateShopifyChurn(s.source.FetchShopifyOrders(creds)),
		HubSpot:     domain.CalculateHubSpotChurn(s.source.FetchHubSpotContacts()),
		GA4:         s.source.GetGA4Acquisition(),
		Retention:   s.source.GetRetention(),
		Performance: s.source.GetPerformance(),
		Revenue:     s.source.GetRevenue(),
		Timestamp:   domain.NewTimestamp(s.now()),
	}
}
