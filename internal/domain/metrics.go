// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"strings"
	"time"
)

// TimestampLayout é o formato ISO-8601 usado no campo timestamp das métricas
const TimestampLayout = "2006-01-02T15:04:05.000000"

// Category identifica uma categoria de métrica
type Category int

const (
	CategoryShopifyChurn Category = iota + 1
	CategoryHubSpotChurn
	CategoryGA4Acquisition
	CategoryRetention
	CategoryPerformance
	CategoryRevenue
)

// Categories lista todas as categorias na ordem do payload agregado
var Categories = []Category{
	CategoryShopifyChurn,
	CategoryHubSpotChurn,
	CategoryGA4Acquisition,
	CategoryRetention,
	CategoryPerformance,
	CategoryRevenue,
}

// String retorna o nome do endpoint da categoria (ex: shopify/churn)
func (c Category) String() string {
	switch c {
	case CategoryShopifyChurn:
		return "shopify/churn"
	case CategoryHubSpotChurn:
		return "hubspot/churn"
	case CategoryGA4Acquisition:
		return "ga4/acquisition"
	case CategoryRetention:
		return "retention"
	case CategoryPerformance:
		return "performance"
	case CategoryRevenue:
		return "revenue"
	default:
		return "unknown"
	}
}

// ParseCategory converte o nome de um endpoint em Category
func ParseCategory(endpoint string) (Category, bool) {
	name := strings.Trim(strings.TrimSpace(endpoint), "/")
	for _, c := range Categories {
		if c.String() == name {
			return c, true
		}
	}
	return 0, false
}

// ShopifyChurn é o churn calculado a partir dos pedidos do Shopify
type ShopifyChurn struct {
	ChurnRate       float64 `json:"churn_rate"`
	AtRiskCustomers int     `json:"at_risk_customers"`
}

// HubSpotChurn é o churn calculado a partir dos contatos do HubSpot
type HubSpotChurn struct {
	ChurnRate float64 `json:"churn_rate"`
	AtRisk    int     `json:"at_risk"`
}

type Acquisition struct {
	AcquisitionCost float64 `json:"acquisition_cost"`
	TopChannel      string  `json:"top_channel"`
}

type Retention struct {
	RetentionRate float64 `json:"retention_rate"`
	AtRisk        int     `json:"at_risk"`
}

type Performance struct {
	LTV    float64 `json:"ltv"`
	CAC    float64 `json:"cac"`
	Margin float64 `json:"margin"`
}

type Revenue struct {
	Total     float64 `json:"total"`
	Trend     string  `json:"trend"`
	Breakdown string  `json:"breakdown"`
}

// MetricPayload agrupa as seções de métricas de uma requisição.
// Seções ausentes ficam nil e não são serializadas.
type MetricPayload struct {
	Shopify     *ShopifyChurn `json:"shopify,omitempty"`
	HubSpot     *HubSpotChurn `json:"hubspot,omitempty"`
	GA4         *Acquisition  `json:"ga4,omitempty"`
	Retention   *Retention    `json:"retention,omitempty"`
	Performance *Performance  `json:"performance,omitempty"`
	Revenue     *Revenue      `json:"revenue,omitempty"`
	Timestamp   string        `json:"timestamp"`
}

// NewTimestamp formata o instante informado no layout do payload
func NewTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// Section retorna a seção correspondente à categoria, ou nil se ausente
func (p *MetricPayload) Section(c Category) any {
	if p == nil {
		return nil
	}

	switch c {
	case CategoryShopifyChurn:
		if p.Shopify != nil {
			return p.Shopify
		}
	case CategoryHubSpotChurn:
		if p.HubSpot != nil {
			return p.HubSpot
		}
	case CategoryGA4Acquisition:
		if p.GA4 != nil {
			return p.GA4
		}
	case CategoryRetention:
		if p.Retention != nil {
			return p.Retention
		}
	case CategoryPerformance:
		if p.Performance != nil {
			return p.Performance
		}
	case CategoryRevenue:
		if p.Revenue != nil {
			return p.Revenue
		}
	}

	return nil
}

// Source descreve a origem do payload para logs e métricas:
// o nome da categoria quando há uma única seção, "metrics" quando há várias.
func (p *MetricPayload) Source() string {
	var present []Category
	for _, c := range Categories {
		if p.Section(c) != nil {
			present = append(present, c)
		}
	}

	switch len(present) {
	case 0:
		return "empty"
	case 1:
		return present[0].String()
	default:
		return "metrics"
	}
}
