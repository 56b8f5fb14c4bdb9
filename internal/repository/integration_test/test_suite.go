package integration_test

import (
	"context"
	"database/sql"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"tracking/internal/pkg/config"
	"tracking/internal/pkg/postgres"
	"tracking/migrations"
	"tracking/pkg/logger/zap_adapter"
	"tracking/pkg/querier"
	"tracking/pkg/tx"
)

var (
	poolInstance    *pgxpool.Pool
	querierInstance *querier.Querier
	suiteOnce       sync.Once
)

func setup() {
	suiteOnce.Do(func() {
		// .env.test не читаем, переменные задаёт окружение запуска тестов
		cfg := &config.Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}

		ctx := context.Background()

		zapLogger, err := zap_adapter.NewZapAdapter(zap_adapter.Options{Level: "warn"})
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}

		pool, err := postgres.NewConnPool(ctx, zapLogger, cfg)
		if err != nil {
			panic(err)
		}

		db, err := sql.Open("pgx", postgres.DSN(cfg))
		if err != nil {
			panic(err)
		}
		defer db.Close()

		if err := migrations.Up(ctx, db); err != nil {
			panic(err)
		}

		poolInstance = pool
		querierInstance = querier.New(pool, pgxv5.DefaultCtxGetter)
	})
}

func GetQuerier() *querier.Querier {
	setup()
	return querierInstance
}

// GetTxManager возвращает менеджер транзакций над тем же пулом, что и GetQuerier.
func GetTxManager() *tx.Manager {
	setup()
	return tx.New(poolInstance, nil)
}

func SetupDB(t *testing.T, setupSql string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if setupSql == "" {
		GetQuerier()
		return
	}

	_, err := GetQuerier().Exec(ctx, setupSql)
	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE status_logs, shipments RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}
