package insighting

import (
	"context"

	"github.com/vfg2006/growth-metrics-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// Insighter gera um resumo em linguagem natural para um payload de métricas
type Insighter interface {
	// Summarize nunca retorna erro: falhas de transporte ou da API viram
	// InsightResult.Error
	Summarize(ctx context.Context, data any, userID string) domain.InsightResult
}
