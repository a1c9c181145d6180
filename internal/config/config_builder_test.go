package config

import (
	"encoding/json"
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func resetFlags(t *testing.T, args ...string) {
	t.Helper()
	oldArgs, oldCommandLine := os.Args, flag.CommandLine
	flag.CommandLine = flag.NewFlagSet("cmd", flag.ContinueOnError)
	os.Args = append([]string{"cmd"}, args...)
	t.Cleanup(func() {
		os.Args = oldArgs
		flag.CommandLine = oldCommandLine
	})
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later configs
// override earlier ones while zero fields do not.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			App:    App{TokenSignKey: "env-key", Version: "1.0.0"},
			Server: Server{HTTPAddress: "localhost:8080"},
		},
		&StructuredConfig{
			App:     App{TokenSignKey: "json-key"},
			Storage: Storage{DB: DB{DSN: "postgres://db"}},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "json-key", cfg.App.TokenSignKey)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://db", cfg.Storage.DB.DSN)
}

func TestBuild_ValidationError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Watermark: Watermark{Bit: "blue"}})

	cfg, err := b.build()

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidWatermarkConfigs)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_FillsUnsetFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Server:  Server{HTTPAddress: "0.0.0.0:9000"},
		Workers: Workers{ReportConcurrency: 2},
	})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 2, cfg.Workers.ReportConcurrency)
	assert.Equal(t, defaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, defaultCompactInterval, cfg.Workers.CompactInterval)
	assert.Equal(t, defaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, defaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, defaultHTTPAddress, cfg.Adapter.HTTPAddress)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NotSpecified(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsFileFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"token_sign_key": "from-json"},
		"workers": map[string]any{"compact_interval": "5m"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)

	assert.Equal(t, "from-json", cfg.App.TokenSignKey)
	assert.Equal(t, 5*time.Minute, cfg.Workers.CompactInterval)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	cfg, err := b.withJSON().build()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_AllSources(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"watermark": map[string]any{"bit": "#00ff00"},
	})
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-secret")
	t.Setenv("CONFIG", path)
	resetFlags(t, "-a", "127.0.0.1:9999", "-report-concurrency", "3")

	cfg, err := GetStructuredConfig()
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, 3, cfg.Workers.ReportConcurrency)
	assert.Equal(t, "#00ff00", cfg.Watermark.Bit)
	assert.Equal(t, defaultTokenDuration, cfg.App.TokenDuration)
}

func TestGetClientConfig(t *testing.T) {
	resetFlags(t, "-server", "localhost:8081", "-exam", "7", "-attempt", "70", "-user", "700")

	cfg, err := GetClientConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost:8081", cfg.Adapter.HTTPAddress)
	assert.Equal(t, defaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, int64(7), cfg.Exam.ExamID)
	assert.Equal(t, int64(70), cfg.Exam.AttemptID)
	assert.Equal(t, int64(700), cfg.Exam.UserID)
}

func TestGetClientConfig_MissingExam(t *testing.T) {
	resetFlags(t)

	cfg, err := GetClientConfig()

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidExamConfigs)
}

func TestGetEnvConfig_IgnoresFlags(t *testing.T) {
	resetFlags(t, "-role", "observer")
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-secret")

	cfg, err := GetEnvConfig()
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.App.TokenSignKey)
	assert.Equal(t, defaultTokenIssuer, cfg.App.TokenIssuer)
}
