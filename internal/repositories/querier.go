package repositories

import (
	"context"

	"employee-portal/pkg/database/postgresql"

	sq "github.com/Masterminds/squirrel"
)

// psql - squirrel с плейсхолдерами $N для pgx.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// conn возвращает соединение текущего запроса.
func conn(ctx context.Context) (postgresql.Conn, error) {
	return postgresql.Acquire(ctx)
}
