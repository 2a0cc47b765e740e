package loader_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/partlath/builder"
	"github.com/katalvlaran/partlath/core"
	"github.com/katalvlaran/partlath/loader"
)

// grid2x4 describes a 2×4 lattice with one hub group per vertex.
const grid2x4 = `4
0;1;2;3;0;1;2;3
0;4;8
0;1;4;1;2;5;2;3;6;3;7;4;5;5;6;6;7
0;3;6;9;11;13;15
`

func TestParse_Grid(t *testing.T) {
	in, err := loader.Parse(strings.NewReader(grid2x4), 0)
	require.NoError(t, err)
	assert.Equal(t, 4, in.MaxMatrix)
	assert.Equal(t, 1, in.GraphCount)

	want, err := builder.BuildGraph(nil, builder.Grid(2, 4))
	require.NoError(t, err)
	assert.Equal(t, want.Edges(), in.Graph.Edges())
	for v := 0; v < 8; v++ {
		wx, wy := want.Coordinates(v)
		gx, gy := in.Graph.Coordinates(v)
		assert.Equal(t, [2]int{wx, wy}, [2]int{gx, gy}, "vertex %d", v)
	}
}

func TestParse_DropsSelfLoopsAndDuplicates(t *testing.T) {
	src := "2\n0;1;2\n0;3\n0;0;1;1;0;2;1\n0;3;5\n"
	in, err := loader.Parse(strings.NewReader(src), 0)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}}, in.Graph.Edges())
}

func TestParse_GraphIndex(t *testing.T) {
	multi := "3\n0;1;2;3\n0;4\n0;1;2;3\n0\n0;2\n"
	// Graph 1: star from 0. Graph 2: [0,2) is 0–1, trailing [2,4) is 2–3.

	_, err := loader.Parse(strings.NewReader(multi), 0)
	require.ErrorIs(t, err, loader.ErrGraphIndex)
	require.ErrorIs(t, err, core.ErrConfig)

	in, err := loader.Parse(strings.NewReader(multi), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, in.GraphCount)
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {0, 3}}, in.Graph.Edges())

	in, err = loader.Parse(strings.NewReader(multi), 2)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {2, 3}}, in.Graph.Edges())

	_, err = loader.Parse(strings.NewReader(multi), 3)
	require.ErrorIs(t, err, loader.ErrGraphIndex)

	_, err = loader.Parse(strings.NewReader(grid2x4), 1)
	require.ErrorIs(t, err, loader.ErrGraphIndex)
	_, err = loader.Parse(strings.NewReader(grid2x4), -1)
	require.ErrorIs(t, err, loader.ErrGraphIndex)
}

func TestParse_FormatErrors(t *testing.T) {
	cases := map[string]string{
		"too few lines":       "4\n0;1\n0;2\n0;1\n",
		"max matrix range":    "2000\n0;1\n0;2\n0;1\n0\n",
		"max matrix text":     "four\n0;1\n0;2\n0;1\n0\n",
		"x beyond width":      "1\n0;5\n0;2\n0;1\n0\n",
		"negative x":          "4\n0;-1\n0;2\n0;1\n0\n",
		"rows short":          "4\n0;1\n0;1\n0;1\n0\n",
		"rows not from zero":  "4\n0;1\n1;2\n0;1\n0\n",
		"rows decreasing":     "4\n0;1;2\n0;2;1;3\n0;1\n0\n",
		"connection range":    "4\n0;1\n0;2\n0;7\n0\n",
		"offset beyond conns": "4\n0;1\n0;2\n0;1\n0;3\n",
		"offsets decreasing":  "4\n0;1\n0;2\n0;1\n1;0\n",
		"bad token":           "4\n0;1\n0;2\n0;x\n0\n",
		"empty list":          "4\n0;1\n;\n0;1\n0\n",
	}
	for name, src := range cases {
		_, err := loader.Parse(strings.NewReader(src), 0)
		assert.ErrorIs(t, err, core.ErrFormat, name)
	}
}

func TestWrite_Exact(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(3))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, loader.Write(&buf, g))
	assert.Equal(t, "3\n0;1;2\n0;3\n0;1;1;2\n0;2;4\n", buf.String())
}

func TestWrite_RoundTrip(t *testing.T) {
	fixtures := map[string][]builder.Constructor{
		"grid":     {builder.Grid(3, 5)},
		"barbell":  {builder.Complete(4), builder.Complete(4), builder.Bridge(3, 4)},
		"wheel":    {builder.Wheel(7)},
		"edgeless": {builder.RandomSparse(5, 0)},
		"blocks":   {builder.Cycle(4), builder.CompleteBipartite(2, 3), builder.Path(3)},
	}
	for name, cons := range fixtures {
		g, err := builder.BuildGraph(nil, cons...)
		require.NoError(t, err, name)

		var buf bytes.Buffer
		require.NoError(t, loader.Write(&buf, g), name)
		in, err := loader.Parse(&buf, 0)
		require.NoError(t, err, name)

		assert.Equal(t, g.Edges(), in.Graph.Edges(), name)
		for v := 0; v < g.VertexCount(); v++ {
			wx, wy := g.Coordinates(v)
			gx, gy := in.Graph.Coordinates(v)
			assert.Equal(t, [2]int{wx, wy}, [2]int{gx, gy}, "%s vertex %d", name, v)
		}
	}
}

func TestWrite_Rejects(t *testing.T) {
	g, err := core.Build(2, [][2]int{{0, 1}}, core.WithCoordinates([]int{0, 1}, []int{1, 0}))
	require.NoError(t, err)
	require.ErrorIs(t, loader.Write(&bytes.Buffer{}, g), core.ErrFormat)

	wide, err := core.Build(2, nil, core.WithCoordinates([]int{0, 5000}, nil))
	require.NoError(t, err)
	require.ErrorIs(t, loader.Write(&bytes.Buffer{}, wide), core.ErrFormat)
}

func TestParseFile_Missing(t *testing.T) {
	_, err := loader.ParseFile(filepath.Join(t.TempDir(), "absent.txt"), 0)
	require.ErrorIs(t, err, core.ErrIO)
}
