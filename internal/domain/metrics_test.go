package domain

import (
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		endpoint string
		want     Category
		ok       bool
	}{
		{"shopify/churn", CategoryShopifyChurn, true},
		{"/hubspot/churn", CategoryHubSpotChurn, true},
		{"ga4/acquisition/", CategoryGA4Acquisition, true},
		{" retention ", CategoryRetention, true},
		{"performance", CategoryPerformance, true},
		{"revenue", CategoryRevenue, true},
		{"metrics", 0, false},
		{"nonexistent", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			got, ok := ParseCategory(tt.endpoint)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimestamp(t *testing.T) {
	ts := NewTimestamp(time.Date(2024, 3, 5, 14, 7, 9, 123456789, time.UTC))
	assert.Equal(t, "2024-03-05T14:07:09.123456", ts)
}

func TestMetricPayload_SectionESource(t *testing.T) {
	t.Run("Payload com uma seção usa o nome da categoria", func(t *testing.T) {
		p := &MetricPayload{Retention: &Retention{RetentionRate: 85.0, AtRisk: 10}}

		assert.Equal(t, "retention", p.Source())
		assert.Equal(t, p.Retention, p.Section(CategoryRetention))
		assert.Nil(t, p.Section(CategoryRevenue))
	})

	t.Run("Payload com várias seções é metrics", func(t *testing.T) {
		p := &MetricPayload{
			Shopify: &ShopifyChurn{ChurnRate: 50.0, AtRiskCustomers: 1},
			Revenue: &Revenue{Total: 12700.0},
		}

		assert.Equal(t, "metrics", p.Source())
	})

	t.Run("Payload vazio", func(t *testing.T) {
		p := &MetricPayload{}

		assert.Equal(t, "empty", p.Source())
		assert.Nil(t, p.Section(CategoryShopifyChurn))
	})

	t.Run("Payload nil", func(t *testing.T) {
		var p *MetricPayload
		assert.Nil(t, p.Section(CategoryShopifyChurn))
	})
}

func TestMetricPayload_JSONOmiteSecoesAusentes(t *testing.T) {
	p := MetricPayload{
		GA4:       &Acquisition{AcquisitionCost: 45.0, TopChannel: "Email (40%)"},
		Timestamp: "2024-03-05T14:07:09.123456",
	}

	raw, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(p)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"ga4": {"acquisition_cost": 45.0, "top_channel": "Email (40%)"},
		"timestamp": "2024-03-05T14:07:09.123456"
	}`, string(raw))
}
