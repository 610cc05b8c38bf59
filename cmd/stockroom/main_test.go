package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/stockroom/internal/paths"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// execute runs the CLI with args against stdin and returns combined output.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	return executeContext(t, context.Background(), strings.NewReader(stdin), args...)
}

func executeContext(t *testing.T, ctx context.Context, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	t.Setenv(paths.EnvConfigDir, "")
	t.Setenv(paths.EnvDataDir, "")
	t.Setenv("STOCKROOM_BACKEND", "")
	t.Setenv("STOCKROOM_LOG_LEVEL", "")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetIn(stdin)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--log-level", "disabled"))

	err := root.ExecuteContext(ctx)
	return out.String(), err
}

type workspace struct {
	configDir string
	dataDir   string
}

func newWorkspace(t *testing.T) workspace {
	t.Helper()
	dir := t.TempDir()
	return workspace{
		configDir: filepath.Join(dir, "config"),
		dataDir:   filepath.Join(dir, "data"),
	}
}

func (w workspace) args(extra ...string) []string {
	return append(extra, "--config-dir", w.configDir, "--data-dir", w.dataDir)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "stockroom v"+version)
	assert.Contains(t, out, modulePath)
}

func TestInitWritesConfig(t *testing.T) {
	ws := newWorkspace(t)

	out, err := execute(t, "", ws.args("init", "--backend", "jsonl")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Stockroom initialized")

	data, err := os.ReadFile(filepath.Join(ws.configDir, configFileExt))
	require.NoError(t, err)
	var cfg configFile
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, types.BackendJSONL, cfg.Backend)
	assert.Equal(t, ws.dataDir, cfg.DataDir)
	assert.Equal(t, defaultLogFormat, cfg.LogFormat)
	assert.DirExists(t, ws.dataDir)

	// A second init leaves the existing file alone.
	out, err = execute(t, "", ws.args("init", "--backend", "sqlite")...)
	require.NoError(t, err)
	assert.NotContains(t, out, "Wrote ")
	again, err := os.ReadFile(filepath.Join(ws.configDir, configFileExt))
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestLoadConfigReadsYAML(t *testing.T) {
	dir := t.TempDir()
	yml := "backend: SQLite\ndata_file: shop.db\nlog_level: debug\nlog_format: json\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte(yml), 0o644))

	v, err := loadConfig(dir)
	require.NoError(t, err)

	flags = rootFlags{dataDir: filepath.Join(dir, "data")}
	t.Cleanup(func() { flags = rootFlags{} })

	s, err := resolveSettings(v, dir)
	require.NoError(t, err)
	assert.Equal(t, types.BackendSQLite, s.storage.Backend)
	assert.Equal(t, filepath.Join(dir, "data", "shop.db"), s.storage.Path())
	assert.Equal(t, "debug", s.log.Level)
	assert.Equal(t, "json", s.log.Format)
}

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	v, err := loadConfig(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Equal(t, defaultBackend, v.GetString(cfgKeyBackend))
	assert.Equal(t, defaultLogLevel, v.GetString(cfgKeyLogLevel))
}

func TestUnknownBackendRejected(t *testing.T) {
	ws := newWorkspace(t)
	_, err := execute(t, "", ws.args("summary", "--backend", "xml")...)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
}

func TestSeededSessionRoundTrip(t *testing.T) {
	for _, backend := range []string{types.BackendCSV, types.BackendJSONL, types.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			ws := newWorkspace(t)

			out, err := execute(t, "0\n", ws.args("--backend", backend, "--seed")...)
			require.NoError(t, err)
			assert.Contains(t, out, "Data saved successfully!")

			out, err = execute(t, "", ws.args("summary", "--json", "--backend", backend)...)
			require.NoError(t, err)
			var sum summaryView
			require.NoError(t, json.Unmarshal([]byte(out), &sum))
			assert.Equal(t, 10, sum.TotalProducts)
			assert.Equal(t, 117, sum.TotalStockQuantity)
			assert.Equal(t, "8560.70", sum.TotalInventoryValue)

			out, err = execute(t, "", ws.args("list", "--sort", "price", "--desc", "--json", "--backend", backend)...)
			require.NoError(t, err)
			var listed []productView
			require.NoError(t, json.Unmarshal([]byte(out), &listed))
			require.Len(t, listed, 10)
			assert.Equal(t, "100008", listed[0].ID)
			assert.Equal(t, "150.00", listed[0].Price)
			assert.Equal(t, "900.00", listed[0].Total)
		})
	}
}

func TestSeedSkippedWhenInventoryLoaded(t *testing.T) {
	ws := newWorkspace(t)
	require.NoError(t, os.MkdirAll(ws.dataDir, 0o755))
	csv := "p1,Widget,2,3.50\n"
	require.NoError(t, os.WriteFile(filepath.Join(ws.dataDir, "products.csv"), []byte(csv), 0o644))

	_, err := execute(t, "0\n", ws.args("--seed")...)
	require.NoError(t, err)

	out, err := execute(t, "", ws.args("summary")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Total Products: 1")
	assert.Contains(t, out, "Total Inventory Value: $7.00")
}

func TestInteractiveEndOfInputSaves(t *testing.T) {
	ws := newWorkspace(t)

	out, err := execute(t, "2\np1\nWidget\n3\n2.5\ny\n\n", ws.args()...)
	require.NoError(t, err)
	assert.Contains(t, out, "Product 'Widget' added successfully!")

	data, err := os.ReadFile(filepath.Join(ws.dataDir, "products.csv"))
	require.NoError(t, err)
	assert.Equal(t, "p1,Widget,3,2.50\n", string(data))
}

func TestOpenStorageUnknownBackend(t *testing.T) {
	_, err := openStorage(types.Config{Backend: "xml"})
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
}

func TestShutdownSignalSavesOnce(t *testing.T) {
	ws := newWorkspace(t)
	stdin, stdinWriter := io.Pipe()
	t.Cleanup(func() { stdinWriter.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := executeContext(t, ctx, stdin, ws.args("--seed")...)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "Data saved successfully!"))

	data, err := os.ReadFile(filepath.Join(ws.dataDir, "products.csv"))
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 10)
}

func TestExitThenNoSecondSave(t *testing.T) {
	ws := newWorkspace(t)

	out, err := execute(t, "0\n", ws.args("--seed")...)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "Saving data..."))
	assert.Equal(t, 1, strings.Count(out, "Data saved successfully!"))
}
