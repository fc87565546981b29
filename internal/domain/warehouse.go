package domain

// AnalyticsMetricsTable é a tabela de destino no warehouse
const AnalyticsMetricsTable = "analytics_metrics"

// AnalyticsMetricsColumns define a ordem fixa das colunas do INSERT
var AnalyticsMetricsColumns = []string{
	"timestamp",
	"shopify_churn_rate",
	"shopify_at_risk",
	"hubspot_churn_rate",
	"hubspot_at_risk",
	"ga4_abandon_rate",
	"ga4_acquisition_cost",
	"ga4_top_channel",
	"retention_rate",
	"retention_at_risk",
	"ltv",
	"cac",
	"margin",
	"revenue_total",
	"revenue_trend",
	"revenue_breakdown",
}

// WarehouseRow é a linha achatada gravada em analytics_metrics.
// Campos nil são gravados como NULL.
type WarehouseRow struct {
	Timestamp          *string
	ShopifyChurnRate   *float64
	ShopifyAtRisk      *int
	HubSpotChurnRate   *float64
	HubSpotAtRisk      *int
	GA4AbandonRate     float64 // nunca é calculado, sempre 0.0
	GA4AcquisitionCost *float64
	GA4TopChannel      *string
	RetentionRate      *float64
	RetentionAtRisk    *int
	LTV                *float64
	CAC                *float64
	Margin             *float64
	RevenueTotal       *float64
	RevenueTrend       *string
	RevenueBreakdown   *string
}

// NewWarehouseRow achata o payload na linha do warehouse
func NewWarehouseRow(p *MetricPayload) WarehouseRow {
	row := WarehouseRow{}
	if p == nil {
		return row
	}

	if p.Timestamp != "" {
		row.Timestamp = ptr(p.Timestamp)
	}

	if p.Shopify != nil {
		row.ShopifyChurnRate = ptr(p.Shopify.ChurnRate)
		row.ShopifyAtRisk = ptr(p.Shopify.AtRiskCustomers)
	}

	if p.HubSpot != nil {
		row.HubSpotChurnRate = ptr(p.HubSpot.ChurnRate)
		row.HubSpotAtRisk = ptr(p.HubSpot.AtRisk)
	}

	if p.GA4 != nil {
		row.GA4AcquisitionCost = ptr(p.GA4.AcquisitionCost)
		row.GA4TopChannel = ptr(p.GA4.TopChannel)
	}

	if p.Retention != nil {
		row.RetentionRate = ptr(p.Retention.RetentionRate)
		row.RetentionAtRisk = ptr(p.Retention.AtRisk)
	}

	if p.Performance != nil {
		row.LTV = ptr(p.Performance.LTV)
		row.CAC = ptr(p.Performance.CAC)
		row.Margin = ptr(p.Performance.Margin)
	}

	if p.Revenue != nil {
		row.RevenueTotal = ptr(p.Revenue.Total)
		row.RevenueTrend = ptr(p.Revenue.Trend)
		row.RevenueBreakdown = ptr(p.Revenue.Breakdown)
	}

	return row
}

// Values retorna os valores na mesma ordem de AnalyticsMetricsColumns
func (r WarehouseRow) Values() []any {
	return []any{
		r.Timestamp,
		r.ShopifyChurnRate,
		r.ShopifyAtRisk,
		r.HubSpotChurnRate,
		r.HubSpotAtRisk,
		r.GA4AbandonRate,
		r.GA4AcquisitionCost,
		r.GA4TopChannel,
		r.RetentionRate,
		r.RetentionAtRisk,
		r.LTV,
		r.CAC,
		r.Margin,
		r.RevenueTotal,
		r.RevenueTrend,
		r.RevenueBreakdown,
	}
}

// PersistResult é o resultado de uma gravação best-effort no warehouse
type PersistResult struct {
	Stored bool
	Reason string
}

func PersistSucceeded() PersistResult {
	return PersistResult{Stored: true}
}

func PersistFailed(reason string) PersistResult {
	return PersistResult{Reason: reason}
}

func ptr[T any](v T) *T {
	return &v
}
