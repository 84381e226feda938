package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func TestMSTCommand(t *testing.T) {
	out, err := run(t, "mst", "--topology", "cycle", "-n", "4")
	require.NoError(t, err)
	got := lines(out)
	require.Len(t, got, 4)
	assert.Equal(t, "total 3 (3 edges, kruskal)", got[3])

	out, err = run(t, "mst", "-t", "wheel", "-n", "6", "--method", "prim", "--max-weight", "10", "--seed", "3")
	require.NoError(t, err)
	got = lines(out)
	require.Len(t, got, 6)
	assert.Contains(t, got[5], "(5 edges, prim)")
}

func TestMSTCommandErrors(t *testing.T) {
	_, err := run(t, "mst", "--topology", "blob")
	assert.ErrorContains(t, err, "unknown topology")

	_, err = run(t, "mst", "--method", "boruvka")
	assert.Error(t, err)

	_, err = run(t, "mst", "-t", "random", "-n", "10", "--p", "0", "--require-connected")
	assert.Error(t, err)
}

func TestCyclesCommand(t *testing.T) {
	out, err := run(t, "cycles", "-t", "path", "-n", "5")
	require.NoError(t, err)
	assert.Equal(t, "cyclic: false", strings.TrimSpace(out))

	out, err = run(t, "cycles", "-t", "cycle", "-n", "4")
	require.NoError(t, err)
	got := lines(out)
	require.Len(t, got, 2)
	assert.Equal(t, "cyclic: true", got[0])
	assert.True(t, strings.HasPrefix(got[1], "witness: "))

	out, err = run(t, "cycles", "-t", "path", "-n", "3", "--directed")
	require.NoError(t, err)
	assert.Equal(t, "cyclic: false", strings.TrimSpace(out))
}

func TestLayoutCommand(t *testing.T) {
	out, err := run(t, "layout", "-t", "path", "-n", "3", "--rounds", "5", "--dims", "2")
	require.NoError(t, err)
	got := lines(out)
	require.Len(t, got, 3)
	for i, line := range got {
		fields := strings.SplitN(line, "\t", 2)
		require.Len(t, fields, 2)
		assert.Equal(t, []string{"0", "1", "2"}[i], fields[0])
		assert.Equal(t, 1, strings.Count(fields[1], ","), "2-D point expected, got %q", fields[1])
	}
}

func TestLayoutCommandWithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dimensions: 4\nrounds: 3\nlog_level: error\npool:\n  pool_size: 2\n  max_queue_depth: 4\n"), 0o600))

	out, err := run(t, "layout", "-t", "star", "-n", "4", "--config", path)
	require.NoError(t, err)
	got := lines(out)
	require.Len(t, got, 4)
	assert.True(t, strings.HasPrefix(got[0], "Center\t"))
	assert.Equal(t, 3, strings.Count(got[0], ","))

	// Explicit flags win over the file.
	out, err = run(t, "layout", "-t", "star", "-n", "4", "--config", path, "--dims", "2")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(lines(out)[0], ","))
}

func TestLayoutCommandErrors(t *testing.T) {
	_, err := run(t, "layout", "--dims", "0")
	assert.Error(t, err)

	_, err = run(t, "layout", "--config", filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoggerContext(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, log.DebugLevel)
	ctx := withLogger(context.Background(), l)
	assert.Same(t, l, loggerFromContext(ctx))
	assert.Same(t, log.Default(), loggerFromContext(context.Background()))

	newProgress(l).done("finished", "k", 1)
	assert.Contains(t, buf.String(), "finished")
	assert.Contains(t, buf.String(), "took")
}
