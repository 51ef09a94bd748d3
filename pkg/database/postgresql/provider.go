package postgresql

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"employee-portal/pkg/contextkeys"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNoRequestScope = errors.New("no request-scoped database connection in context")

// Conn - общее подмножество *pgxpool.Conn и pgx.Tx.
type Conn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Connector выдаёт соединение и функцию его освобождения.
type Connector interface {
	Connect(ctx context.Context) (Conn, func(), error)
}

type poolConnector struct {
	pool *pgxpool.Pool
}

func (p poolConnector) Connect(ctx context.Context) (Conn, func(), error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, nil, err
	}
	return conn, conn.Release, nil
}

// Provider привязывает к контексту запроса одно лениво открываемое соединение.
type Provider struct {
	connector Connector
}

func NewProvider(pool *pgxpool.Pool) *Provider {
	return &Provider{connector: poolConnector{pool: pool}}
}

func NewProviderWithConnector(connector Connector) *Provider {
	return &Provider{connector: connector}
}

type requestConn struct {
	mu        sync.Mutex
	connector Connector
	conn      Conn
	release   func()
}

// Open возвращает контекст с пустым слотом под соединение запроса.
func (p *Provider) Open(ctx context.Context) context.Context {
	return context.WithValue(ctx, contextkeys.RequestConnKey, &requestConn{connector: p.connector})
}

// Acquire открывает соединение при первом вызове в рамках запроса и дальше возвращает его же.
func Acquire(ctx context.Context) (Conn, error) {
	holder, ok := ctx.Value(contextkeys.RequestConnKey).(*requestConn)
	if !ok {
		return nil, ErrNoRequestScope
	}

	holder.mu.Lock()
	defer holder.mu.Unlock()

	if holder.conn != nil {
		return holder.conn, nil
	}

	conn, release, err := holder.connector.Connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("не удалось получить соединение с БД: %w", err)
	}
	holder.conn = conn
	holder.release = release
	return conn, nil
}

// Release закрывает соединение запроса. Если его не открывали - ничего не делает.
func Release(ctx context.Context) {
	holder, ok := ctx.Value(contextkeys.RequestConnKey).(*requestConn)
	if !ok {
		return
	}

	holder.mu.Lock()
	defer holder.mu.Unlock()

	if holder.release != nil {
		holder.release()
	}
	holder.conn = nil
	holder.release = nil
}
