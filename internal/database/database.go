// Package database журнал переходов статусов заказов в PostgreSQL.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pingTimeout = 2 * time.Second
	// В журнал пишут только воркеры очереди подтверждений, большой пул не нужен.
	maxPoolConns = 4
)

type Database struct {
	db  DBExecutor
	dsn string
}

// DBExecutor общая часть pgxpool.Pool и pgx.Tx, которой пользуются запросы журнала.
type DBExecutor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// New открывает пул подключений по dsn и проверяет, что база отвечает.
func New(ctx context.Context, dsn string) (*Database, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("некорректный DATABASE_URI: %w", err)
	}
	config.MaxConns = maxPoolConns

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании пула подключений: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("база данных журнала недоступна: %w", err)
	}

	return &Database{db: pool, dsn: dsn}, nil
}

// NewWithExecutor оборачивает готовое подключение, например транзакцию.
func NewWithExecutor(executor DBExecutor) *Database {
	return &Database{db: executor}
}

func (d *Database) Close() {
	if pool, ok := d.db.(*pgxpool.Pool); ok && pool != nil {
		pool.Close()
	}
}
