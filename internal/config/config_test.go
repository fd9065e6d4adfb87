package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Bank.Name = "Test Bank"
	cfg.Passbook.Capacity = 25
	cfg.Logging.Format = "json"

	path := filepath.Join(t.TempDir(), "teller.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Test Bank", got.Bank.Name)
	assert.Equal(t, cfg.Bank.Currency, got.Bank.Currency)
	assert.Equal(t, 25, got.Passbook.Capacity)
	assert.Equal(t, cfg.Logging.Level, got.Logging.Level)
	assert.Equal(t, "json", got.Logging.Format)
	assert.Equal(t, cfg.Shell.Prompt, got.Shell.Prompt)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "Teller Savings Bank", cfg.Bank.Name)
	assert.Equal(t, "USD", cfg.Bank.Currency)
	assert.Equal(t, 10, cfg.Passbook.Capacity)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "teller> ", cfg.Shell.Prompt)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teller.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bank:\n  currency: EUR\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "EUR", cfg.Bank.Currency)
	assert.Equal(t, "Teller Savings Bank", cfg.Bank.Name)
	assert.Equal(t, 10, cfg.Passbook.Capacity)
}

func TestLoadNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.yaml")
	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	cfg, err := LoadOrDefault(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teller.yaml")
	require.NoError(t, os.WriteFile(path, []byte("passbook: [oops"), 0o644))

	_, err := LoadOrDefault(path)
	assert.ErrorContains(t, err, "parsing config")
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teller.yaml")
	require.NoError(t, Save(path, Default()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Teller Savings Bank")
	assert.Contains(t, contents, "capacity: 10")
	assert.Contains(t, contents, "level: warn")
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Default()))

	contents := buf.String()
	assert.Contains(t, contents, "bank:\n  name: Teller Savings Bank\n")
	assert.Contains(t, contents, "prompt:")
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvCurrency:         "GBP",
		EnvPassbookCapacity: "5",
		EnvLogLevel:         "debug",
		EnvLogFormat:        "json",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	require.NoError(t, ApplyEnv(cfg, lookup))
	assert.Equal(t, "GBP", cfg.Bank.Currency)
	assert.Equal(t, 5, cfg.Passbook.Capacity)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	env[EnvPassbookCapacity] = "ten"
	assert.Error(t, ApplyEnv(Default(), lookup))
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, LoadEnvFile(filepath.Join(dir, "missing.env")))

	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("TELLER_TEST_ONLY_VAR=from-file\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("TELLER_TEST_ONLY_VAR") })

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "from-file", os.Getenv("TELLER_TEST_ONLY_VAR"))
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Passbook.Capacity = 0
	cfg.Logging.Level = "loud"
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "passbook.capacity")
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "logging.format")
}
