package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/ks-server/internal/logger"
	"github.com/MKhiriev/ks-server/internal/mock"
	"github.com/MKhiriev/ks-server/internal/store"
	"github.com/MKhiriev/ks-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const validConfig = `
server:
  host: 127.0.0.1
  port: 8000
projects:
  alpha: true
  beta: false
`

func newTestResolver(t *testing.T, ctrl *gomock.Controller) (ConfigResolver, *mock.MockConfigSource) {
	t.Helper()
	source := mock.NewMockConfigSource(ctrl)
	source.EXPECT().Location().Return("test://config").AnyTimes()

	resolver, err := NewConfigResolver(source, logger.Nop())
	require.NoError(t, err)

	return resolver, source
}

// ── NewConfigResolver ────────────────────────────────────────────────────────

func TestNewConfigResolver_NilSource(t *testing.T) {
	resolver, err := NewConfigResolver(nil, logger.Nop())
	assert.Nil(t, resolver)
	assert.ErrorIs(t, err, ErrNilConfigSource)
}

// ── Resolve ──────────────────────────────────────────────────────────────────

func TestConfigResolver_Resolve_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver, source := newTestResolver(t, ctrl)

	ctx := context.Background()
	source.EXPECT().Read(ctx).Return([]byte(validConfig), nil)

	cfg, err := resolver.Resolve(ctx)
	require.NoError(t, err)

	assert.Equal(t, &models.Configuration{
		Server: models.ServerConfig{Host: "127.0.0.1", Port: 8000},
		Projects: map[string]bool{
			"alpha": true,
			"beta":  false,
		},
	}, cfg)
	assert.Equal(t, "127.0.0.1:8000", cfg.Server.Address())
}

func TestConfigResolver_Resolve_EmptyProjects(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver, source := newTestResolver(t, ctrl)

	source.EXPECT().Read(gomock.Any()).Return([]byte("server: {host: localhost, port: 1}\nprojects: {}\n"), nil)

	cfg, err := resolver.Resolve(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cfg.Projects)
	assert.NotNil(t, cfg.Projects)
}

func TestConfigResolver_Resolve_IgnoresUnknownKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver, source := newTestResolver(t, ctrl)

	source.EXPECT().Read(gomock.Any()).Return([]byte(validConfig+"extra: 42\n"), nil)

	cfg, err := resolver.Resolve(context.Background())
	require.NoError(t, err)
	assert.Len(t, cfg.Projects, 2)
}

func TestConfigResolver_Resolve_ReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver, source := newTestResolver(t, ctrl)

	cause := errors.New("permission denied")
	source.EXPECT().Read(gomock.Any()).Return(nil, cause)

	cfg, err := resolver.Resolve(context.Background())
	assert.Nil(t, cfg)
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrConfigRead)
	assert.NotErrorIs(t, err, ErrConfigParse)
	assert.ErrorIs(t, err, cause)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, ReadError, cfgErr.Kind)
	assert.Equal(t, "permission denied", cfgErr.Detail)
	assert.Equal(t, "error reading config file: permission denied", err.Error())
}

func TestConfigResolver_Resolve_ParseErrors(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		errContains string
	}{
		{
			name:        "empty file",
			raw:         "",
			errContains: "missing field `server`",
		},
		{
			name:        "malformed yaml",
			raw:         "server: [unclosed\n",
			errContains: "error parsing config file",
		},
		{
			name:        "missing server",
			raw:         "projects:\n  alpha: true\n",
			errContains: "missing field `server`",
		},
		{
			name:        "missing host",
			raw:         "server:\n  port: 8000\nprojects: {}\n",
			errContains: "missing field `host`",
		},
		{
			name:        "missing port",
			raw:         "server:\n  host: localhost\nprojects: {}\n",
			errContains: "missing field `port`",
		},
		{
			name:        "missing projects",
			raw:         "server:\n  host: localhost\n  port: 8000\n",
			errContains: "missing field `projects`",
		},
		{
			name:        "port out of range",
			raw:         "server:\n  host: localhost\n  port: 70000\nprojects: {}\n",
			errContains: "error parsing config file",
		},
		{
			name:        "negative port",
			raw:         "server:\n  host: localhost\n  port: -1\nprojects: {}\n",
			errContains: "error parsing config file",
		},
		{
			name:        "non-bool flag",
			raw:         "server:\n  host: localhost\n  port: 8000\nprojects:\n  alpha: maybe\n",
			errContains: "error parsing config file",
		},
		{
			name:        "null flag",
			raw:         "server:\n  host: localhost\n  port: 8000\nprojects:\n  alpha:\n",
			errContains: `"alpha" has no enabled flag`,
		},
		{
			name:        "duplicate project",
			raw:         "server:\n  host: localhost\n  port: 8000\nprojects:\n  alpha: true\n  alpha: false\n",
			errContains: "already defined",
		},
		{
			name:        "projects is a list",
			raw:         "server:\n  host: localhost\n  port: 8000\nprojects:\n  - alpha\n",
			errContains: "error parsing config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			resolver, source := newTestResolver(t, ctrl)
			source.EXPECT().Read(gomock.Any()).Return([]byte(tt.raw), nil)

			cfg, err := resolver.Resolve(context.Background())
			assert.Nil(t, cfg)
			require.Error(t, err)

			assert.ErrorIs(t, err, ErrConfigParse)
			assert.NotErrorIs(t, err, ErrConfigRead)
			assert.Contains(t, err.Error(), tt.errContains)

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, ParseError, cfgErr.Kind)
		})
	}
}

// TestConfigResolver_Resolve_FreshSnapshots verifies that every call reads the
// source again and returns an independent snapshot.
func TestConfigResolver_Resolve_FreshSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver, source := newTestResolver(t, ctrl)

	gomock.InOrder(
		source.EXPECT().Read(gomock.Any()).Return([]byte(validConfig), nil),
		source.EXPECT().Read(gomock.Any()).Return([]byte(validConfig), nil),
	)

	first, err := resolver.Resolve(context.Background())
	require.NoError(t, err)
	first.Projects["alpha"] = false

	second, err := resolver.Resolve(context.Background())
	require.NoError(t, err)
	assert.True(t, second.Projects["alpha"])
}

// TestConfigResolver_Resolve_File exercises the resolver against a real file
// that changes between calls.
func TestConfigResolver_Resolve_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(validConfig), 0o600))

	source, err := store.NewFileConfigSource(path)
	require.NoError(t, err)
	resolver, err := NewConfigResolver(source, logger.Nop())
	require.NoError(t, err)

	cfg, err := resolver.Resolve(context.Background())
	require.NoError(t, err)
	assert.True(t, cfg.Projects["alpha"])

	require.NoError(t, os.Remove(path))

	_, err = resolver.Resolve(context.Background())
	assert.ErrorIs(t, err, ErrConfigRead)
	assert.ErrorIs(t, err, store.ErrConfigSourceUnavailable)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
