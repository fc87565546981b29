package domain

const (
	OrderStatusCancelled  = "cancelled"
	ContactStatusInactive = "inactive"
	StatusActive          = "active"
)

// Order é um pedido do Shopify com seu status
type Order struct {
	CustomerID int    `json:"customer_id"`
	Status     string `json:"status"`
}

// Contact é um contato do HubSpot com seu status
type Contact struct {
	ID     int    `json:"id"`
	Status string `json:"status"`
}

// ChurnResult é a taxa de churn (0-100) e a quantidade de registros em risco
type ChurnResult struct {
	ChurnRate   float64
	AtRiskCount int
}

// CalculateChurn conta os registros que satisfazem failed e calcula o
// percentual sobre o total. Lista vazia resulta em taxa zero.
func CalculateChurn[T any](records []T, failed func(T) bool) ChurnResult {
	atRisk := 0
	for _, r := range records {
		if failed(r) {
			atRisk++
		}
	}

	if len(records) == 0 {
		return ChurnResult{}
	}

	return ChurnResult{
		ChurnRate:   float64(atRisk) / float64(len(records)) * 100,
		AtRiskCount: atRisk,
	}
}

// CalculateShopifyChurn considera churn os pedidos cancelados
func CalculateShopifyChurn(orders []Order) *ShopifyChurn {
	result := CalculateChurn(orders, func(o Order) bool {
		return o.Status == OrderStatusCancelled
	})

	return &ShopifyChurn{
		ChurnRate:       result.ChurnRate,
		AtRiskCustomers: result.AtRiskCount,
	}
}

// CalculateHubSpotChurn considera churn os contatos inativos
func CalculateHubSpotChurn(contacts []Contact) *HubSpotChurn {
	result := CalculateChurn(contacts, func(c Contact) bool {
		return c.Status == ContactStatusInactive
	})

	return &HubSpotChurn{
		ChurnRate: result.ChurnRate,
		AtRisk:    result.AtRiskCount,
	}
}
