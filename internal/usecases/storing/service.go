package storing

import (
	"context"

	"github.com/vfg2006/growth-metrics-api/infrastructure/repository"
	"github.com/vfg2006/growth-metrics-api/internal/domain"
	"github.com/vfg2006/growth-metrics-api/internal/metrics"
	"github.com/vfg2006/growth-metrics-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// MetricsStorer grava payloads no warehouse em modo best-effort
type MetricsStorer interface {
	// Persist nunca retorna erro: falhas são registradas em log e
	// devolvidas no PersistResult
	Persist(ctx context.Context, payload *domain.MetricPayload) domain.PersistResult
}

type Service struct {
	repository repository.MetricsRepository
}

func NewService(repo repository.MetricsRepository) *Service {
	return &Service{
		repository: repo,
	}
}

func (s *Service) Persist(ctx context.Context, payload *domain.MetricPayload) domain.PersistResult {
	source := payload.Source()
	logger := log.ForContext(ctx).WithField("source", source)

	err := s.repository.Insert(ctx, domain.NewWarehouseRow(payload))
	metrics.WarehouseWritesTotal.WithLabelValues(source, metrics.Outcome(err == nil)).Inc()

	if err != nil {
		logger.WithError(err).Error("storing: erro ao gravar métricas no warehouse")
		return domain.PersistFailed(err.Error())
	}

	logger.Debug("storing: métricas gravadas no warehouse")
	return domain.PersistSucceeded()
}
