package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// WithTx коммитит при успехе и откатывает при ошибке или панике.
// Откат всегда выполняется до того, как ошибка уйдёт наверх.
func WithTx(ctx context.Context, db txBeginner, fn func(tx pgx.Tx) error) (err error) {
	var tx pgx.Tx
	tx, err = db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("не удалось начать транзакцию: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		} else if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				err = fmt.Errorf("ошибка при откате транзакции: %v (изначальная ошибка: %w)", rbErr, err)
			}
		} else {
			err = tx.Commit(ctx)
			if err != nil {
				err = fmt.Errorf("ошибка при коммите транзакции: %w", err)
			}
		}
	}()

	err = fn(tx)
	return err
}

// inRequestTx открывает транзакцию на соединении текущего запроса.
func inRequestTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	db, err := conn(ctx)
	if err != nil {
		return err
	}
	return WithTx(ctx, db, fn)
}
