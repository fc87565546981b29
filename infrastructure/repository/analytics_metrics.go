// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/vfg2006/growth-metrics-api/infrastructure/database/warehouse"
	"github.com/vfg2006/growth-metrics-api/internal/domain"
)

//go:generate mockgen -source=analytics_metrics.go -destination=mocks/analytics_metrics.go -package=mocks

type MetricsRepository interface {
	Insert(ctx context.Context, row domain.WarehouseRow) error
}

type metricsRepository struct {
	connector warehouse.Connector
}

func NewMetricsRepository(connector warehouse.Connector) MetricsRepository {
	return &metricsRepository{
		connector: connector,
	}
}

// Insert abre uma conexão, grava a linha em analytics_metrics e fecha a
// conexão, tanto no sucesso quanto na falha
func (r *metricsRepository) Insert(ctx context.Context, row domain.WarehouseRow) error {
	conn, err := r.connector.Open(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	sqlQuery, args, err := buildInsert(row, conn.Placeholder())
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	return conn.RunInTransaction(ctx, func(tx *sqlx.Tx) error {
		stmt, err := tx.PrepareContext(ctx, sqlQuery)
		if err != nil {
			return fmt.Errorf("erro ao preparar query de inserção: %w", err)
		}
		defer stmt.Close()

		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("erro ao executar query de inserção: %w", err)
		}

		return nil
	})
}

func buildInsert(row domain.WarehouseRow, placeholder squirrel.PlaceholderFormat) (string, []any, error) {
	return squirrel.StatementBuilder.
		Insert(domain.AnalyticsMetricsTable).
		Columns(domain.AnalyticsMetricsColumns...).
		Values(row.Values()...).
		PlaceholderFormat(placeholder).
		ToSql()
}
