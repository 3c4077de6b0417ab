package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMap(t *testing.T) {
	cfg, err := FromMap(map[string]string{
		"FILE_LOGGING":  "yes",
		"FILE_SIZE":     "10MB",
		"LOG_FILE_PATH": "/var/log",
		"LOG_FILE_NAME": "app",
		"LOG_FILE_EXTN": "txt",
		"UNRELATED":     "ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, Config{
		FileLogging: "yes",
		FileSize:    "10MB",
		LogFilePath: "/var/log",
		LogFileName: "app",
		LogFileExtn: "txt",
	}, cfg)
}

func TestFromMapEmpty(t *testing.T) {
	cfg, err := FromMap(map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
	assert.False(t, cfg.LoggingEnabled())
}

func TestLoggingEnabled(t *testing.T) {
	for _, v := range []string{"yes", "YES", "Yes", "yEs"} {
		assert.True(t, Config{FileLogging: v}.LoggingEnabled(), v)
	}
	for _, v := range []string{"", "no", "1", "true", "y", " yes"} {
		assert.False(t, Config{FileLogging: v}.LoggingEnabled(), v)
	}
}

func TestLoadFromProcessEnv(t *testing.T) {
	t.Setenv("FILE_LOGGING", "yes")
	t.Setenv("FILE_SIZE", "2g")
	t.Setenv("LOG_FILE_PATH", "")
	t.Setenv("LOG_FILE_NAME", "svc")
	t.Setenv("LOG_FILE_EXTN", ".log")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "yes", cfg.FileLogging)
	assert.Equal(t, "2g", cfg.FileSize)
	assert.Equal(t, "", cfg.LogFilePath)
	assert.Equal(t, "svc", cfg.LogFileName)
	assert.Equal(t, ".log", cfg.LogFileExtn)
}

func TestLoadEnvFileIsOverriddenByProcessEnv(t *testing.T) {
	t.Setenv("LOG_FILE_PATH", "") // restores the original value on cleanup
	require.NoError(t, os.Unsetenv("LOG_FILE_PATH"))
	t.Setenv("LOG_FILE_NAME", "from-process")

	path := filepath.Join(t.TempDir(), "build.env")
	content := "LOG_FILE_PATH=/opt/logs\nLOG_FILE_NAME=from-file\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/logs", cfg.LogFilePath)
	assert.Equal(t, "from-process", cfg.LogFileName)

	_, set := os.LookupEnv("LOG_FILE_PATH")
	assert.False(t, set, "Load must not modify the process environment")
}

func TestLoadEmptyProcessVarKeepsEnvFileValue(t *testing.T) {
	t.Setenv("LOG_FILE_NAME", "")
	t.Setenv("LOG_FILE_EXTN", "")

	path := filepath.Join(t.TempDir(), "build.env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_FILE_NAME=fromfile\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fromfile", cfg.LogFileName)
	assert.Equal(t, "", cfg.LogFileExtn)
}

func TestLoadMissingEnvFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
