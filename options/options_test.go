package options

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"os"
	"testing"

	"github.com/robbyt/go-osascript/engines/osascript"
	"github.com/robbyt/go-osascript/platform/constants"
	"github.com/robbyt/go-osascript/platform/data"
	"github.com/robbyt/go-osascript/platform/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockLoader is a testify mock implementation of loader.Loader for testing
type MockLoader struct {
	mock.Mock
}

func (m *MockLoader) GetReader() (io.ReadCloser, error) {
	args := m.Called()
	reader, _ := args.Get(0).(io.ReadCloser)
	return reader, args.Error(1)
}

func (m *MockLoader) GetSourceURL() *url.URL {
	args := m.Called()
	u, _ := args.Get(0).(*url.URL)
	return u
}

func TestWithOptions(t *testing.T) {
	t.Parallel()

	handler := slog.NewTextHandler(os.Stdout, nil)
	provider := data.NewStaticProvider(map[string]any{"test": "value"})
	l := new(MockLoader)
	r := runner.Func(func(context.Context, string) (*runner.Outcome, error) {
		return &runner.Outcome{Success: true, Stdout: []byte("null")}, nil
	})

	cfg := &Config{}
	for _, opt := range []Option{
		WithLogHandler(handler),
		WithDataProvider(provider),
		WithLoader(l),
		WithRunner(r),
	} {
		require.NoError(t, opt(cfg))
	}

	assert.Equal(t, handler, cfg.GetHandler())
	assert.Equal(t, provider, cfg.GetDataProvider())
	assert.Equal(t, l, cfg.GetLoader())
	assert.NotNil(t, cfg.GetRunner())
	require.NoError(t, cfg.Validate())
}

func TestWithLogger(t *testing.T) {
	t.Parallel()

	handler := slog.NewTextHandler(os.Stdout, nil)
	cfg := &Config{}
	require.NoError(t, WithLogger(slog.New(handler))(cfg))
	assert.Equal(t, handler, cfg.GetHandler())
}

func TestNilOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opt  Option
	}{
		{"nil handler", WithLogHandler(nil)},
		{"nil logger", WithLogger(nil)},
		{"nil runner", WithRunner(nil)},
		{"nil data provider", WithDataProvider(nil)},
		{"nil loader", WithLoader(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			require.Error(t, tt.opt(cfg))
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("missing loader", func(t *testing.T) {
		cfg, err := DefaultConfig()
		require.NoError(t, err)
		require.ErrorContains(t, cfg.Validate(), "no loader specified")
	})

	t.Run("missing runner", func(t *testing.T) {
		cfg := &Config{loader: new(MockLoader)}
		require.ErrorContains(t, cfg.Validate(), "no runner specified")
	})

	t.Run("complete", func(t *testing.T) {
		cfg, err := DefaultConfig()
		require.NoError(t, err)
		require.NoError(t, WithLoader(new(MockLoader))(cfg))
		require.NoError(t, cfg.Validate())
	})
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	t.Run("default config", func(t *testing.T) {
		cfg, err := DefaultConfig()
		require.NoError(t, err)
		assert.NotNil(t, cfg.GetHandler())
		assert.IsType(t, &osascript.Executor{}, cfg.GetRunner())
		assert.IsType(t, &data.CompositeProvider{}, cfg.GetDataProvider())
		assert.Nil(t, cfg.GetLoader())
	})

	t.Run("defaults keep explicit values", func(t *testing.T) {
		provider := data.NewStaticProvider(map[string]any{"a": 1})
		cfg := &Config{}
		require.NoError(t, WithDataProvider(provider)(cfg))
		require.NoError(t, WithDefaults()(cfg))
		assert.Equal(t, provider, cfg.GetDataProvider())
	})

	t.Run("default data provider accepts context data", func(t *testing.T) {
		provider := DefaultDataProvider()
		got, err := provider.GetData(context.Background())
		require.NoError(t, err)
		assert.Empty(t, got)

		ctx, err := provider.AddDataToContext(context.Background(), map[string]any{"title": "T"})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"title": "T"}, ctx.Value(constants.EvalData))

		got, err = provider.GetData(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"title": "T"}, got)
	})
}
