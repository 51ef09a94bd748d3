package postgresql

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	Conn
	id int
}

type countingConnector struct {
	connects int
	releases int
	err      error
}

func (c *countingConnector) Connect(ctx context.Context) (Conn, func(), error) {
	if c.err != nil {
		return nil, nil, c.err
	}
	c.connects++
	return &fakeConn{id: c.connects}, func() { c.releases++ }, nil
}

func TestAcquire_ReusesConnectionWithinRequest(t *testing.T) {
	connector := &countingConnector{}
	ctx := NewProviderWithConnector(connector).Open(context.Background())

	first, err := Acquire(ctx)
	require.NoError(t, err)
	second, err := Acquire(ctx)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, connector.connects)

	Release(ctx)
	assert.Equal(t, 1, connector.releases)

	Release(ctx)
	assert.Equal(t, 1, connector.releases, "повторный Release не должен освобождать дважды")
}

func TestAcquire_SeparateRequestsGetSeparateConnections(t *testing.T) {
	connector := &countingConnector{}
	provider := NewProviderWithConnector(connector)

	ctxA := provider.Open(context.Background())
	ctxB := provider.Open(context.Background())

	a, err := Acquire(ctxA)
	require.NoError(t, err)
	b, err := Acquire(ctxB)
	require.NoError(t, err)

	assert.NotSame(t, a, b)
	assert.Equal(t, 2, connector.connects)
}

func TestRelease_ToleratesUnusedScope(t *testing.T) {
	connector := &countingConnector{}
	ctx := NewProviderWithConnector(connector).Open(context.Background())

	assert.NotPanics(t, func() { Release(ctx) })
	assert.NotPanics(t, func() { Release(context.Background()) })
	assert.Zero(t, connector.connects)
	assert.Zero(t, connector.releases)
}

func TestAcquire_WithoutScope(t *testing.T) {
	_, err := Acquire(context.Background())
	assert.ErrorIs(t, err, ErrNoRequestScope)
}

func TestAcquire_ConnectError(t *testing.T) {
	boom := errors.New("connection refused")
	ctx := NewProviderWithConnector(&countingConnector{err: boom}).Open(context.Background())

	_, err := Acquire(ctx)
	assert.ErrorIs(t, err, boom)
}

func TestNewPool_MissingDSN(t *testing.T) {
	_, err := NewPool(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingDSN)
}
