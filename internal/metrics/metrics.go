package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

var (
	WarehouseWritesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "growth_warehouse_writes_total",
			Help: "Warehouse inserts by payload source and outcome",
		},
		[]string{"source", "outcome"}, // shopify/churn|...|metrics , success|failure
	)

	InsightRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "growth_insight_requests_total",
			Help: "Chat completion requests by origin and outcome",
		},
		[]string{"origin", "outcome"}, // ai_insights|metrics , success|failure
	)
)

func MustRegister(r prometheus.Registerer) {
	r.MustRegister(
		WarehouseWritesTotal,
		InsightRequestsTotal,
	)
}

func Outcome(ok bool) string {
	if ok {
		return OutcomeSuccess
	}
	return OutcomeFailure
}
