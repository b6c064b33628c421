package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-speaker/speaker/catalog"
	"github.com/cwbudde/algo-speaker/speaker/core"
)

func runArgs(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)

	return stdout.String(), stderr.String(), err
}

func TestRunDefaultDesign(t *testing.T) {
	out, _, err := runArgs(t)
	require.NoError(t, err)

	assert.Regexp(t, `f3\s+39\.28\s+Hz`, out)
	assert.Regexp(t, `Reference efficiency\s+2\.044\s+%`, out)
	assert.Regexp(t, `Max SPL\s+121\.8\s+dB`, out)
	assert.Regexp(t, `Vent length\s+46\.4\s+mm`, out)
	assert.Regexp(t, `Min vent area\s+39706\s+mm²`, out)
}

func TestRunVentFromLength(t *testing.T) {
	out, _, err := runArgs(t, "-length", "100")
	require.NoError(t, err)
	assert.Regexp(t, `Vent radius\s+62\.7\s+mm`, out)
}

func TestRunResponseTable(t *testing.T) {
	out, _, err := runArgs(t, "-response", "-points", "5", "-samplerate", "48000")
	require.NoError(t, err)

	assert.Contains(t, out, "Digital [dB]")
	assert.Regexp(t, `(?m)^20\.00\s+-28\.562`, out)
	assert.Regexp(t, `(?m)^300\.00\s+`, out)
}

func TestRunStepTable(t *testing.T) {
	out, _, err := runArgs(t, "-step", "-samples", "10", "-v")
	require.NoError(t, err)

	assert.Regexp(t, `(?m)^0\.000\s+1\.00000`, out)
	assert.Contains(t, out, "Settling time [ms]")
}

func TestRunVerboseLogs(t *testing.T) {
	_, logs, err := runArgs(t, "-v")
	require.NoError(t, err)

	assert.Contains(t, logs, "level=DEBUG")
	assert.Contains(t, logs, "msg=design")
	assert.Contains(t, logs, "f3=39.28")
}

func TestRunDomainErrors(t *testing.T) {
	_, _, err := runArgs(t, "-fb", "0")
	require.ErrorIs(t, err, core.ErrDomain)

	_, _, err = runArgs(t, "-fs", "-1")
	require.ErrorIs(t, err, core.ErrDomain)
}

func TestRunRejectsArguments(t *testing.T) {
	_, _, err := runArgs(t, "extra")
	require.Error(t, err)

	_, _, err = runArgs(t, "-list")
	require.ErrorIs(t, err, errNoDatabase)
}

func TestRunCatalogWorkflow(t *testing.T) {
	db := filepath.Join(t.TempDir(), "drivers.json")

	_, logs, err := runArgs(t, "-db", db, "-add", "-manufacturer", "Acme", "-model", "W12", "-fs", "28", "-vas", "140",
		"-diameter", "12", "-weight", "6.5", "-power", "400")
	require.NoError(t, err)
	assert.Contains(t, logs, "driver added")

	_, _, err = runArgs(t, "-db", db, "-add", "-manufacturer", "Acme", "-model", "W12")
	require.Error(t, err, "duplicate model")

	cat, err := catalog.Load(db)
	require.NoError(t, err)
	require.Equal(t, 1, cat.Len())
	assert.Equal(t, 28.0, cat.At(0).Fs())
	assert.InDelta(t, 0.14, cat.At(0).Vas(), 1e-15)
	assert.Equal(t, 12.0, cat.At(0).Diameter)
	assert.Equal(t, 6.5, cat.At(0).Weight)
	assert.Equal(t, 400.0, cat.At(0).Power)

	out, _, err := runArgs(t, "-db", db, "-list")
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "Acme") && strings.Contains(out, "W12"))

	out, _, err = runArgs(t, "-db", db, "-manufacturer", "Acme", "-model", "W12", "-fb", "30", "-vab", "120")
	require.NoError(t, err)
	assert.Contains(t, out, "f3")

	_, _, err = runArgs(t, "-db", db, "-manufacturer", "Acme", "-model", "nope")
	require.Error(t, err)
}
