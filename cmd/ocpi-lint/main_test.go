package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ocpi/pkg/config"
)

func runLint(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	var out, errOut bytes.Buffer
	code := run(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_Valid(t *testing.T) {
	t.Setenv("OCPI_LINT_LOG_LEVEL", "debug")

	code, out, logs := runLint(t, "-kind", "connector", "testdata/connector.yml")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "OK  testdata/connector.yml")
	assert.Contains(t, logs, "lint started")
	assert.Contains(t, logs, "correlation_id=")
	assert.Contains(t, logs, "service=ocpi-lint")
}

func TestRun_Invalid(t *testing.T) {
	code, out, _ := runLint(t, "-kind", "connector", "-lang", "de-DE", "testdata/connectors.yaml")
	assert.Equal(t, exitInvalid, code)
	assert.Contains(t, out, "INVALID  testdata/connectors.yaml")
	assert.Contains(t, out, "[1].max_voltage: muss zwischen 1 und 2000000 liegen")
}

func TestRun_JSONOutput(t *testing.T) {
	t.Setenv("OCPI_LINT_LOG_FORMAT", "json")
	t.Setenv("OCPI_LINT_ENV", "prod")

	code, out, logs := runLint(t, "-kind", "connector", "-output", "json",
		"testdata/connector.yml", "testdata/connectors.yaml", "testdata/missing.json")
	assert.Equal(t, exitInvalid, code)

	var report struct {
		Valid   int `json:"valid"`
		Invalid int `json:"invalid"`
		Failed  int `json:"failed"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 1, report.Valid)
	assert.Equal(t, 1, report.Invalid)
	assert.Equal(t, 1, report.Failed)
	assert.Contains(t, logs, `"env":"production"`)
}

func TestRun_EnvFile(t *testing.T) {
	for _, name := range []string{"OCPI_LINT_LANG", "OCPI_LINT_CONCURRENCY"} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}

	code, out, _ := runLint(t, "-kind", "connector", "-env-file", "testdata/lint.env", "testdata/connectors.yaml")
	assert.Equal(t, exitInvalid, code)
	assert.Contains(t, out, "[1].max_voltage: moet tussen 1 en 2000000 liggen")
}

func TestRun_ListKinds(t *testing.T) {
	code, out, _ := runLint(t, "-list-kinds")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "authorization_info")
	assert.Contains(t, out, "chargingprofiles")
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no kind", []string{"a.json"}, "-kind is required"},
		{"no files", []string{"-kind", "cdr"}, "no files given"},
		{"unknown kind", []string{"-kind", "booking", "a.json"}, `unknown kind "booking"`},
		{"bad output", []string{"-kind", "cdr", "-output", "xml", "a.json"}, "-output must be text or json"},
		{"unknown flag", []string{"-verbose"}, "flag provided but not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runLint(t, tt.args...)
			assert.Equal(t, exitUsage, code)
			assert.Contains(t, errOut, tt.want)
		})
	}
}

func TestRun_ConfigErrors(t *testing.T) {
	t.Run("concurrency out of range", func(t *testing.T) {
		t.Setenv("OCPI_LINT_CONCURRENCY", "0")

		code, _, errOut := runLint(t, "-kind", "cdr", "a.json")
		assert.Equal(t, exitUsage, code)
		assert.Contains(t, errOut, "config: OCPI_LINT_CONCURRENCY must be between 1 and 256")
	})

	t.Run("unknown environment", func(t *testing.T) {
		t.Setenv("OCPI_LINT_ENV", "qa")

		code, _, errOut := runLint(t, "-kind", "cdr", "a.json")
		assert.Equal(t, exitUsage, code)
		assert.Contains(t, errOut, "unknown environment")
	})

	t.Run("bad log level", func(t *testing.T) {
		t.Setenv("OCPI_LINT_LOG_LEVEL", "loud")

		code, _, errOut := runLint(t, "-kind", "cdr", "a.json")
		assert.Equal(t, exitUsage, code)
		assert.Contains(t, errOut, "invalid log level")
	})

	t.Run("missing env file", func(t *testing.T) {
		code, _, errOut := runLint(t, "-kind", "cdr", "-env-file", "testdata/nope.env", "a.json")
		assert.Equal(t, exitUsage, code)
		assert.Contains(t, errOut, "failed to load env file")
	})
}
