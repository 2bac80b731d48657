package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// isolateConfigDir points the user config dir at a temp dir so that defaults
// never touch the real home directory.
func isolateConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	return dir
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no sources yields the
// defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	home := isolateConfigDir(t)

	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, DriverMattn, cfg.Storage.DB.Driver)
	assert.Equal(t, bcrypt.DefaultCost, cfg.App.PinHashCost)
	assert.Equal(t, 20, cfg.App.PageSize)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "journal.db3", filepath.Base(cfg.Storage.DB.DSN))
	assert.Contains(t, cfg.Storage.DB.DSN, home)
	assert.Equal(t, "journal.log", filepath.Base(cfg.Log.File))
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that a field set by an earlier source is
// not overwritten by a later one, while empty fields are filled.
func TestBuild_FirstSourceWins(t *testing.T) {
	isolateConfigDir(t)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "/from/flags.db"}}},
		&StructuredConfig{
			Storage: Storage{DB: DB{DSN: "/from/env.db", Driver: DriverModernc}},
			App:     App{PageSize: 5},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "/from/flags.db", cfg.Storage.DB.DSN)
	assert.Equal(t, DriverModernc, cfg.Storage.DB.Driver)
	assert.Equal(t, 5, cfg.App.PageSize)
}

func TestBuild_ValidationFailure(t *testing.T) {
	isolateConfigDir(t)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Storage: Storage{DB: DB{Driver: "postgres"}}})

	cfg, err := b.build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
	assert.NotNil(t, cfg)
}

// ── withFlags / withJSON / withDotEnv ────────────────────────────────────────

func TestWithFlags_NilIsIgnored(t *testing.T) {
	b := newConfigBuilder().withFlags(nil)
	assert.Empty(t, b.configs)
}

func TestWithJSON_UsesPathFromEarlierSource(t *testing.T) {
	isolateConfigDir(t)

	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"page_size": 7},
		"storage": map[string]any{"db": map[string]any{"dsn": "/from/json.db"}},
	})

	b := newConfigBuilder().withFlags(&StructuredConfig{JSONFilePath: path}).withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.App.PageSize)
	assert.Equal(t, "/from/json.db", cfg.Storage.DB.DSN)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withFlags(&StructuredConfig{}).withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder().
		withFlags(&StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "missing.json")}).
		withJSON()
	assert.Error(t, b.err)
}

func TestWithDotEnv_LoadsFileBeforeEnv(t *testing.T) {
	isolateConfigDir(t)
	t.Setenv("APP_PAGE_SIZE", "")
	os.Unsetenv("APP_PAGE_SIZE")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("APP_PAGE_SIZE=42\n"), 0o600))

	cfg, err := newConfigBuilder().
		withFlags(&StructuredConfig{EnvFilePath: envFile}).
		withDotEnv().
		withEnv().
		build()
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.App.PageSize)
}

func TestWithDotEnv_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder().
		withFlags(&StructuredConfig{EnvFilePath: filepath.Join(t.TempDir(), "nope.env")}).
		withDotEnv()
	assert.Error(t, b.err)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_FlagsOverrideEnv(t *testing.T) {
	isolateConfigDir(t)
	t.Setenv("STORAGE_DB_DSN", "/from/env.db")
	t.Setenv("APP_PAGE_SIZE", "9")

	cfg, err := GetStructuredConfig(&StructuredConfig{Storage: Storage{DB: DB{DSN: "/from/flags.db"}}})
	require.NoError(t, err)
	assert.Equal(t, "/from/flags.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 9, cfg.App.PageSize)
}
