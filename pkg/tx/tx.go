package tx

import (
	"context"
	"errors"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrSerializationFailure = "40001"
	pgErrDeadlockDetected     = "40P01"
)

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

// Manager инкапсулирует логику управления транзакциями.
// Транзакции, откаченные базой из-за конфликта сериализации, повторяются целиком.
type Manager struct {
	internal *manager.Manager
	retrier  retrier
}

// New создаёт новый менеджер транзакций. retrier может быть nil, тогда повторов нет.
func New(db pgxv5.Transactional, retrier retrier) *Manager {
	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
		retrier:  retrier,
	}
}

func (m *Manager) execWithIsoLevel(
	ctx context.Context,
	level pgx.TxIsoLevel,
	fn func(ctx context.Context) error,
) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: level}),
	)
	return m.internal.DoWithSettings(ctx, txSettings, fn)
}

// Do выполняет fn в одной serializable транзакции. Любая ошибка fn откатывает все изменения.
// Вложенные вызовы присоединяются к внешней транзакции, поэтому повтор выполняет только внешний Do.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.retrier == nil || pgxv5.DefaultCtxGetter.DefaultTrOrDB(ctx, nil) != nil {
		return m.execWithIsoLevel(ctx, pgx.Serializable, fn)
	}

	return m.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return m.execWithIsoLevel(ctx, pgx.Serializable, fn)
	})
}

// IsRetryable сообщает, что транзакцию можно безопасно повторить с начала.
func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrSerializationFailure || pgErr.Code == pgErrDeadlockDetected
}
