package middleware_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-kata/patterns/middleware"
)

func tag(label string) middleware.Middleware[string, string] {
	return func(ctx context.Context, req string, next middleware.Handler[string, string]) (string, error) {
		resp, err := next(ctx, req+" >"+label)
		if err != nil {
			return "", err
		}
		return resp + " <" + label, nil
	}
}

func TestApply_Order(t *testing.T) {
	handler := middleware.Apply(
		func(_ context.Context, req string) (string, error) {
			return strings.TrimSpace(req) + " handled", nil
		},
		tag("outer"), tag("inner"),
	)

	resp, err := handler(context.Background(), "req")
	require.NoError(t, err)
	assert.Equal(t, "req >outer >inner handled <inner <outer", resp)
}

func TestApply_Empty(t *testing.T) {
	handler := middleware.Apply(func(_ context.Context, req int) (int, error) {
		return req * 2, nil
	})
	resp, err := handler(context.Background(), 21)
	require.NoError(t, err)
	assert.Equal(t, 42, resp)
}

func TestMiddleware_ShortCircuit(t *testing.T) {
	denied := errors.New("denied")
	handlerRan := false

	handler := middleware.Apply(
		func(_ context.Context, req string) (string, error) {
			handlerRan = true
			return req, nil
		},
		func(_ context.Context, _ string, _ middleware.Handler[string, string]) (string, error) {
			return "", denied
		},
	)

	_, err := handler(context.Background(), "req")
	assert.ErrorIs(t, err, denied)
	assert.False(t, handlerRan)
}
