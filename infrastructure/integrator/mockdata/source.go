// Package mockdata fornece dados fixos no lugar das APIs do Shopify, HubSpot
// e GA4. As credenciais são recebidas mas não utilizadas.
package mockdata

import (
	"github.com/vfg2006/growth-metrics-api/internal/domain"
)

// ShopifyCredentials são as credenciais da loja informadas pelo cliente
type ShopifyCredentials struct {
	APIKey   string
	Password string
	Shop     string
}

// MetricSource define as fontes de dados brutos de cada categoria
type MetricSource interface {
	FetchShopifyOrders(creds ShopifyCredentials) []domain.Order
	FetchHubSpotContacts() []domain.Contact
	GetGA4Acquisition() *domain.Acquisition
	GetRetention() *domain.Retention
	GetPerformance() *domain.Performance
	GetRevenue() *domain.Revenue
}

type Source struct{}

func NewSource() MetricSource {
	return &Source{}
}

func (s *Source) FetchShopifyOrders(_ ShopifyCredentials) []domain.Order {
	return []domain.Order{
		{CustomerID: 1, Status: domain.OrderStatusCancelled},
		{CustomerID: 2, Status: domain.StatusActive},
	}
}

func (s *Source) FetchHubSpotContacts() []domain.Contact {
	return []domain.Contact{
		{ID: 1, Status: domain.ContactStatusInactive},
		{ID: 2, Status: domain.StatusActive},
	}
}

func (s *Source) GetGA4Acquisition() *domain.Acquisition {
	return &domain.Acquisition{
		AcquisitionCost: 45.0,
		TopChannel:      "Email (40%)",
	}
}

func (s *Source) GetRetention() *domain.Retention {
	return &domain.Retention{
		RetentionRate: 85.0,
		AtRisk:        10,
	}
}

func (s *Source) GetPerformance() *domain.Performance {
	return &domain.Performance{
		LTV:    150.0,
		CAC:    50.0,
		Margin: 30.0,
	}
}

func (s *Source) GetRevenue() *domain.Revenue {
	return &domain.Revenue{
		Total:     12700.0,
		Trend:     "+6%",
		Breakdown: "60% recurring, 40% one-time",
	}
}
