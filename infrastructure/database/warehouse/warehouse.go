package warehouse

import (
	"context"
	"database/sql"

	_ "github.com/ClickHouse/clickhouse-go/v2"
	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/growth-metrics-api/internal/config"
)

const (
	DriverClickHouse = "clickhouse"
	DriverPostgres   = "postgres"
)

func init() {
	sqlx.BindDriver(DriverClickHouse, sqlx.QUESTION)
}

//go:generate mockgen -source=warehouse.go -destination=mocks/warehouse.go -package=mocks

// Connector abre uma conexão nova com o warehouse a cada chamada
type Connector interface {
	Open(ctx context.Context) (Conn, error)
}

type Conn interface {
	Placeholder() squirrel.PlaceholderFormat
	RunInTransaction(ctx context.Context, fn func(*sqlx.Tx) error) error
	Close() error
}

type connector struct {
	driver string
	dsn    string
}

func NewConnector(cfg config.Warehouse) Connector {
	return &connector{
		driver: cfg.Driver,
		dsn:    cfg.DSN,
	}
}

type Connection struct {
	*sqlx.DB
}

func (c *connector) Open(ctx context.Context) (Conn, error) {
	db, err := sqlx.Open(c.driver, c.dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "warehouse: erro ao abrir conexão (%s)", c.driver)
	}

	// Uma conexão por chamada, sem reaproveitamento
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "warehouse: erro ao conectar")
	}

	return &Connection{DB: db}, nil
}

// Placeholder retorna o formato de parâmetros posicionais do driver
func (c *Connection) Placeholder() squirrel.PlaceholderFormat {
	if sqlx.BindType(c.DriverName()) == sqlx.DOLLAR {
		return squirrel.Dollar
	}
	return squirrel.Question
}

// RunInTransaction executa fn numa transação e faz commit ao final
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sqlx.Tx) error) error {
	tx, err := c.DB.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "warehouse: erro ao iniciar transação")
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Wrapf(err, "warehouse: rollback falhou (%v)", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "warehouse: erro ao fazer commit")
	}

	return nil
}
