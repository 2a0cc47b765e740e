package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/partlath/builder"
	"github.com/katalvlaran/partlath/codec"
	"github.com/katalvlaran/partlath/core"
	"github.com/katalvlaran/partlath/loader"
)

func TestExitCode(t *testing.T) {
	wrap := func(err error) error { return fmt.Errorf("ctx: %w", err) }
	cases := []struct {
		err  error
		want int
	}{
		{nil, exitOK},
		{wrap(errFlag), exitFlag},
		{wrap(core.ErrConfig), exitConfig},
		{wrap(loader.ErrGraphIndex), exitConfig},
		{wrap(builder.ErrBadSpec), exitConfig},
		{wrap(core.ErrFormat), exitFormat},
		{wrap(core.ErrVertexOutOfRange), exitFormat},
		{wrap(core.ErrIO), exitIO},
		{wrap(core.ErrAllocation), exitAllocation},
		{wrap(core.ErrInfeasible), exitInfeasible},
		{wrap(core.ErrChecksumMismatch), exitChecksum},
		{errors.New("boom"), exitOther},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, exitCode(tc.err), "%v", tc.err)
	}
}

// writeGraph stores a builder fixture in the input format.
func writeGraph(t *testing.T, dir string, cons ...builder.Constructor) string {
	t.Helper()
	g, err := builder.BuildGraph(nil, cons...)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, loader.Write(&buf, g))
	path := filepath.Join(dir, "graph.txt")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	return path
}

func run(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := execute(append(args, "--log-level", "disabled"), &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestPartitionBinary(t *testing.T) {
	dir := t.TempDir()
	in := writeGraph(t, dir, builder.Cycle(4))
	out := filepath.Join(dir, "out.bin")

	code, _, stderr := run("-i", in, "-o", out, "-r", "binary", "-m", "kl", "-b", "0", "--seed", "9")
	require.Equal(t, exitOK, code, stderr)

	doc, err := codec.ReadFile(out, codec.FormatBinary)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1, 1}, doc.Groups())
	assert.Equal(t, 2, doc.Parts)

	ok, err := codec.VerifyFile(out)
	require.NoError(t, err)
	assert.True(t, ok)

	code, stdout, _ := run("verify", out)
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "checksum ok")
}

func TestPartitionSpectralSummary(t *testing.T) {
	dir := t.TempDir()
	in := writeGraph(t, dir, builder.Grid(4, 4))
	out := filepath.Join(dir, "out.txt")

	code, stdout, stderr := run("-i", in, "-o", out, "-r", "ascii", "-m", "m", "-p", "4", "--seed", "3", "--summary")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, "method: m")
	assert.Contains(t, stdout, "spectral:")

	doc, err := codec.ReadFile(out, codec.FormatASCII)
	require.NoError(t, err)
	assert.Len(t, doc.Vertices, 16)
}

func TestExitCodes(t *testing.T) {
	dir := t.TempDir()
	in := writeGraph(t, dir, builder.Cycle(4))
	out := filepath.Join(dir, "out.bin")

	code, _, _ := run("--bogus")
	assert.Equal(t, exitFlag, code)

	code, _, _ = run("-p", "many")
	assert.Equal(t, exitFlag, code)

	code, _, _ = run("-o", out, "-r", "binary", "-m", "kl")
	assert.Equal(t, exitConfig, code, "missing input")

	code, _, _ = run("-i", in, "-o", out, "-r", "xml", "-m", "kl")
	assert.Equal(t, exitConfig, code, "bad format")

	code, _, _ = run("-i", in, "-o", out, "-r", "binary", "-m", "m", "-p", "3")
	assert.Equal(t, exitInfeasible, code, "too many parts")

	code, _, _ = run("-i", in, "-o", out, "-r", "binary", "-m", "kl", "-g", "2")
	assert.Equal(t, exitConfig, code, "graph index on a single-graph file")

	code, _, _ = run("-i", filepath.Join(dir, "absent.txt"), "-o", out, "-r", "binary", "-m", "kl")
	assert.Equal(t, exitIO, code)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("4\n0;1\n"), 0o600))
	code, _, _ = run("-i", bad, "-o", out, "-r", "binary", "-m", "kl")
	assert.Equal(t, exitFormat, code)
}

func TestVerifyMismatch(t *testing.T) {
	dir := t.TempDir()
	in := writeGraph(t, dir, builder.Cycle(4))
	out := filepath.Join(dir, "out.bin")
	code, _, stderr := run("-i", in, "-o", out, "-r", "binary", "-m", "kl")
	require.Equal(t, exitOK, code, stderr)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	data[len(data)-1] ^= 0xFF
	require.NoError(t, os.WriteFile(out, data, 0o600))

	code, _, _ = run("verify", out)
	assert.Equal(t, exitChecksum, code)

	code, _, _ = run("verify")
	assert.Equal(t, exitConfig, code)
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grid.txt")

	code, _, stderr := run("generate", "grid:2x3", "-o", path)
	require.Equal(t, exitOK, code, stderr)
	in, err := loader.ParseFile(path, 0)
	require.NoError(t, err)
	assert.Equal(t, 6, in.Graph.VertexCount())
	assert.Equal(t, 7, in.Graph.EdgeCount())

	code, stdout, _ := run("generate", "barbell:3")
	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "\n")

	code, _, _ = run("generate", "hexagon:9")
	assert.Equal(t, exitConfig, code)
}
