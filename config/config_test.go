package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and the working .env at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	return dir
}

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load(New(), "", filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Config{LogLevel: "disabled", HistorySize: 100}, cfg)
	assert.Equal(t, zerolog.Disabled, cfg.Level())
}

func TestLoad_HomeFile(t *testing.T) {
	dir := isolate(t)
	write(t, filepath.Join(dir, ".aurorexam.yaml"), "seed: 7\nplain: true\nlog_level: debug\n")

	cfg, err := Load(New(), "", filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.True(t, cfg.Plain)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "exam.yaml")
	write(t, path, "world: ./worlds/custom.lua\nhistory_size: 5\n")

	cfg, err := Load(New(), path, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "./worlds/custom.lua", cfg.World)
	assert.Equal(t, 5, cfg.HistorySize)

	_, err = Load(New(), filepath.Join(dir, "nope.yaml"), filepath.Join(dir, "missing.env"))
	assert.ErrorContains(t, err, "reading config")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	write(t, filepath.Join(dir, ".aurorexam.yaml"), "seed: 7\ntrace: false\n")
	t.Setenv("AUROREXAM_SEED", "99")
	t.Setenv("AUROREXAM_TRACE", "true")

	cfg, err := Load(New(), "", filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.True(t, cfg.Trace)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	envFile := filepath.Join(dir, "test.env")
	write(t, envFile, "AUROREXAM_LOG_FILE=exam.log\n")
	t.Cleanup(func() { os.Unsetenv("AUROREXAM_LOG_FILE") })

	cfg, err := Load(New(), "", envFile)
	require.NoError(t, err)
	assert.Equal(t, "exam.log", cfg.LogFile)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"log level", "log_level: loud\n", "invalid log_level"},
		{"history", "history_size: -1\n", "invalid history_size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			path := filepath.Join(dir, "bad.yaml")
			write(t, path, tt.yaml)

			_, err := Load(New(), path, filepath.Join(dir, "missing.env"))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
