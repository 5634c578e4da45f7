package data

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/robbyt/go-osascript/platform/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingProvider struct{}

func (failingProvider) GetData(ctx context.Context) (map[string]any, error) {
	return nil, errors.New("provider down")
}

func (failingProvider) AddDataToContext(ctx context.Context, _ ...map[string]any) (context.Context, error) {
	return ctx, errors.New("provider down")
}

func TestStaticProvider(t *testing.T) {
	t.Parallel()

	src := map[string]any{"title": "T"}
	p := NewStaticProvider(src)
	src["title"] = "changed"

	got, err := p.GetData(context.Background())
	require.NoError(t, err)
	require.Equal(t, map[string]any{"title": "T"}, got)

	got["title"] = "mutated"
	again, err := p.GetData(context.Background())
	require.NoError(t, err)
	require.Equal(t, "T", again["title"])

	ctx := context.Background()
	newCtx, err := p.AddDataToContext(ctx, map[string]any{"x": 1})
	require.ErrorIs(t, err, ErrStaticProviderNoRuntimeUpdates)
	require.Equal(t, ctx, newCtx)

	empty, err := NewStaticProvider(nil).GetData(ctx)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestContextProvider(t *testing.T) {
	t.Parallel()

	t.Run("empty context", func(t *testing.T) {
		p := NewContextProvider(constants.EvalData)
		got, err := p.GetData(context.Background())
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("add and merge", func(t *testing.T) {
		p := NewContextProvider(constants.EvalData)
		ctx, err := p.AddDataToContext(context.Background(),
			map[string]any{"title": "T", "opts": map[string]any{"as": "critical"}},
		)
		require.NoError(t, err)

		ctx, err = p.AddDataToContext(ctx,
			map[string]any{"buttons": []string{"A", "B"}, "opts": map[string]any{"giving up after": 5}},
			nil,
		)
		require.NoError(t, err)

		got, err := p.GetData(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"title":   "T",
			"buttons": []string{"A", "B"},
			"opts":    map[string]any{"as": "critical", "giving up after": 5},
		}, got)
	})

	t.Run("does not modify parent context data", func(t *testing.T) {
		p := NewContextProvider(constants.EvalData)
		parent, err := p.AddDataToContext(context.Background(), map[string]any{"a": 1})
		require.NoError(t, err)
		_, err = p.AddDataToContext(parent, map[string]any{"a": 2})
		require.NoError(t, err)

		got, err := p.GetData(parent)
		require.NoError(t, err)
		assert.Equal(t, 1, got["a"])
	})

	t.Run("empty keys rejected", func(t *testing.T) {
		p := NewContextProvider(constants.EvalData)
		ctx, err := p.AddDataToContext(context.Background(), map[string]any{"": 1, "ok": true})
		require.ErrorContains(t, err, "empty keys")

		got, err := p.GetData(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"ok": true}, got)
	})

	t.Run("empty context key", func(t *testing.T) {
		p := NewContextProvider("")
		_, err := p.GetData(context.Background())
		require.Error(t, err)
		_, err = p.AddDataToContext(context.Background())
		require.Error(t, err)
	})

	t.Run("wrong value type", func(t *testing.T) {
		p := NewContextProvider(constants.EvalData)
		ctx := context.WithValue(context.Background(), constants.EvalData, "nope")
		_, err := p.GetData(ctx)
		require.ErrorContains(t, err, "expected map[string]any")
	})
}

func TestCompositeProvider(t *testing.T) {
	t.Parallel()

	t.Run("runtime data overrides static", func(t *testing.T) {
		static := NewStaticProvider(map[string]any{
			"title": "default",
			"opts":  map[string]any{"as": "informational", "buttons": []string{"OK"}},
		})
		dynamic := NewContextProvider(constants.EvalData)
		p := NewCompositeProvider(static, nil, dynamic)

		ctx, err := p.AddDataToContext(context.Background(), map[string]any{
			"title": "override",
			"opts":  map[string]any{"as": "critical"},
		})
		require.NoError(t, err)

		got, err := p.GetData(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"title": "override",
			"opts":  map[string]any{"as": "critical", "buttons": []string{"OK"}},
		}, got)
	})

	t.Run("only static providers", func(t *testing.T) {
		p := NewCompositeProvider(NewStaticProvider(nil))
		_, err := p.AddDataToContext(context.Background(), map[string]any{"a": 1})
		require.ErrorIs(t, err, ErrStaticProviderNoRuntimeUpdates)
	})

	t.Run("get error stops the chain", func(t *testing.T) {
		p := NewCompositeProvider(NewStaticProvider(nil), failingProvider{})
		_, err := p.GetData(context.Background())
		require.ErrorContains(t, err, "error from provider 1")
	})
}

func TestAddDataToContextHelper(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	t.Run("nil provider", func(t *testing.T) {
		ctx := context.Background()
		got, err := AddDataToContextHelper(ctx, logger, nil, map[string]any{"a": 1})
		require.Error(t, err)
		require.Equal(t, ctx, got)
		assert.Contains(t, buf.String(), "no data provider")
	})

	t.Run("delegates to provider", func(t *testing.T) {
		p := NewContextProvider(constants.EvalData)
		ctx, err := AddDataToContextHelper(context.Background(), nil, p, map[string]any{"a": 1})
		require.NoError(t, err)
		got, err := p.GetData(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, got["a"])
	})

	t.Run("wraps provider errors", func(t *testing.T) {
		_, err := AddDataToContextHelper(context.Background(), nil, failingProvider{}, nil)
		require.ErrorContains(t, err, "failed to prepare context")
	})
}
