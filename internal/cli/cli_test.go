package cli_test

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/motif/amalfi"
	"github.com/katalvlaran/motif/builder"
	"github.com/katalvlaran/motif/graph"
	"github.com/katalvlaran/motif/internal/cli"
	"github.com/katalvlaran/motif/match"
	"github.com/katalvlaran/motif/order"
)

// fixtures writes a 3-path pattern and a triangle target.
func fixtures(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	write := func(path string, ctor builder.Constructor) {
		l, err := builder.BuildGraph[graph.Undirected](nil, ctor)
		require.NoError(t, err)
		require.NoError(t, amalfi.WriteFile(fs, path, graph.NewAdjacencyList(l)))
	}
	write("/g/path3.gr", builder.Path(3))
	write("/g/k3.gr", builder.Complete(3))
	write("/g/k5.gr", builder.Complete(5))
	return fs
}

func execute(t *testing.T, fs afero.Fs, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCommand(fs)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_Count(t *testing.T) {
	fs := fixtures(t)
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"induced default", []string{"/g/path3.gr", "/g/k3.gr"}, "0\n"},
		{"mono", []string{"--induced=false", "/g/path3.gr", "/g/k3.gr"}, "6\n"},
		{"mono undirected", []string{"--induced=false", "--directed=false", "/g/path3.gr", "/g/k3.gr"}, "6\n"},
		{"automorphisms", []string{"/g/k3.gr", "/g/k3.gr"}, "6\n"},
		{"limit", []string{"--limit=2", "/g/k3.gr", "/g/k5.gr"}, "2\n"},
		{"plain identity", []string{"--variant=plain", "--order=identity", "/g/k3.gr", "/g/k5.gr"}, "60\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := execute(t, fs, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestRoot_Stats(t *testing.T) {
	out, errOut, err := execute(t, fixtures(t), "--stats", "/g/k3.gr", "/g/k3.gr")
	require.NoError(t, err)
	assert.Equal(t, "6\n", out)
	assert.Contains(t, errOut, "matches=6")
}

func TestRoot_EnvOverride(t *testing.T) {
	fs := fixtures(t)
	t.Setenv("MOTIF_INDUCED", "false")
	t.Setenv("MOTIF_VARIANT", "degree-forward")

	out, _, err := execute(t, fs, "/g/path3.gr", "/g/k3.gr")
	require.NoError(t, err)
	assert.Equal(t, "6\n", out)

	// an explicit flag beats the environment
	out, _, err = execute(t, fs, "--induced=true", "/g/path3.gr", "/g/k3.gr")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestRoot_Errors(t *testing.T) {
	fs := fixtures(t)

	_, _, err := execute(t, fs, "/g/missing.gr", "/g/k3.gr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pattern")

	_, _, err = execute(t, fs, "/g/k3.gr", "/g/missing.gr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target")

	_, _, err = execute(t, fs, "--variant=bogus", "/g/k3.gr", "/g/k3.gr")
	assert.ErrorIs(t, err, match.ErrUnknownVariant)

	_, _, err = execute(t, fs, "--order=bogus", "/g/k3.gr", "/g/k3.gr")
	assert.ErrorIs(t, err, order.ErrUnknownHeuristic)

	_, _, err = execute(t, fs, "--limit=-1", "/g/k3.gr", "/g/k3.gr")
	assert.Error(t, err)

	_, _, err = execute(t, fs, "/g/k3.gr")
	assert.Error(t, err, "two arguments required")

	require.NoError(t, afero.WriteFile(fs, "/g/short.gr", []byte{9, 0}, 0o644))
	_, _, err = execute(t, fs, "/g/short.gr", "/g/k3.gr")
	assert.ErrorIs(t, err, amalfi.ErrTruncated)

	_, _, err = execute(t, fs, "--log-level=loud", "/g/k3.gr", "/g/k3.gr")
	assert.Error(t, err)
}

func TestRoot_DebugLogging(t *testing.T) {
	_, errOut, err := execute(t, fixtures(t), "--log-level=debug", "/g/k3.gr", "/g/k3.gr")
	require.NoError(t, err)
	assert.Contains(t, errOut, "search started")
	assert.Contains(t, errOut, "search finished")
}

func TestGenerate(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, _, err := execute(t, fs, "generate", "cycle", "--n=6", "--directed=false", "-o", "/g/c6.gr")
	require.NoError(t, err)
	l, err := amalfi.ReadFile[graph.Undirected](fs, "/g/c6.gr")
	require.NoError(t, err)
	assert.Equal(t, 6, l.NumVertices())
	assert.Equal(t, 6, l.NumEdges())

	_, _, err = execute(t, fs, "generate", "random", "--n=8", "--p=0.4", "--seed=3", "-o", "/g/r8.gr")
	require.NoError(t, err)
	first, err := afero.ReadFile(fs, "/g/r8.gr")
	require.NoError(t, err)
	_, _, err = execute(t, fs, "generate", "random", "--n=8", "--p=0.4", "--seed=3", "-o", "/g/r8b.gr")
	require.NoError(t, err)
	second, err := afero.ReadFile(fs, "/g/r8b.gr")
	require.NoError(t, err)
	assert.Equal(t, first, second, "same seed, same bytes")

	out, _, err := execute(t, fs, "generate", "grid", "--n=2", "--n2=2", "--directed=false")
	require.NoError(t, err)
	back, err := amalfi.Read[graph.Undirected](bytes.NewReader([]byte(out)))
	require.NoError(t, err)
	assert.Equal(t, 4, back.NumEdges())

	_, _, err = execute(t, fs, "generate", "hypercube")
	assert.ErrorIs(t, err, cli.ErrUnknownKind)

	_, _, err = execute(t, fs, "generate", "path", "--n=1")
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestGenerateThenCount(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, _, err := execute(t, fs, "generate", "path", "--n=2", "--directed=false", "-o", "/edge.gr")
	require.NoError(t, err)
	_, _, err = execute(t, fs, "generate", "cycle", "--n=5", "--directed=false", "-o", "/c5.gr")
	require.NoError(t, err)

	out, _, err := execute(t, fs, "--directed=false", "/edge.gr", "/c5.gr")
	require.NoError(t, err)
	assert.Equal(t, "10\n", out)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, afero.NewMemMapFs(), "version")
	require.NoError(t, err)
	assert.Equal(t, "motif version "+cli.Version+"\n", out)

	out, _, err = execute(t, afero.NewMemMapFs(), "--version")
	require.NoError(t, err)
	assert.Equal(t, cli.Version+"\n", out)
}
