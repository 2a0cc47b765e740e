// Package builder_test contains functional tests for every Constructor:
// vertex and edge counts, sample adjacency and coordinate layout.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/partlath/builder"
	"github.com/katalvlaran/partlath/core"
)

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		cons        []builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name:  "Cycle(5)",
			cons:  []builder.Constructor{builder.Cycle(5)},
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 5; i++ {
					assert.True(t, g.HasEdge(i, (i+1)%5), "edge %d-%d", i, (i+1)%5)
					assert.Equal(t, 2, g.Degree(i))
				}
			},
		},
		{
			name:  "Path(4)",
			cons:  []builder.Constructor{builder.Path(4)},
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, 1, g.Degree(0))
				assert.Equal(t, 1, g.Degree(3))
				assert.False(t, g.HasEdge(0, 3))
			},
		},
		{
			name:  "Star(4)",
			cons:  []builder.Constructor{builder.Star(4)},
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, 3, g.Degree(0))
				assert.Equal(t, []int{1, 2, 3}, g.Neighbors(0))
			},
		},
		{
			name:  "Wheel(5)",
			cons:  []builder.Constructor{builder.Wheel(5)},
			wantV: 5, wantE: 8,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(0, 1))
				assert.True(t, g.HasEdge(3, 0))
				assert.Equal(t, 4, g.Degree(4))
			},
		},
		{
			name:  "Complete(4)",
			cons:  []builder.Constructor{builder.Complete(4)},
			wantV: 4, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, 3, g.MaxDegree())
			},
		},
		{
			name:  "CompleteBipartite(2,3)",
			cons:  []builder.Constructor{builder.CompleteBipartite(2, 3)},
			wantV: 5, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.False(t, g.HasEdge(0, 1))
				assert.True(t, g.HasEdge(1, 4))
				x, y := g.Coordinates(3)
				assert.Equal(t, 1, x)
				assert.Equal(t, 1, y)
			},
		},
		{
			name:  "Grid(3,4)",
			cons:  []builder.Constructor{builder.Grid(3, 4)},
			wantV: 12, wantE: 17, // 3*3 horizontal + 2*4 vertical
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(0, 1))
				assert.True(t, g.HasEdge(0, 4))
				assert.False(t, g.HasEdge(3, 4))
				x, y := g.Coordinates(6)
				assert.Equal(t, 2, x)
				assert.Equal(t, 1, y)
			},
		},
		{
			name: "Barbell",
			cons: []builder.Constructor{
				builder.Complete(3), builder.Complete(3), builder.Bridge(2, 3),
			},
			wantV: 6, wantE: 7,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(2, 3))
				assert.False(t, g.HasEdge(0, 5))
				_, y0 := g.Coordinates(0)
				_, y5 := g.Coordinates(5)
				assert.Equal(t, 0, y0)
				assert.Equal(t, 1, y5)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.cons...)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			require.NoError(t, g.Validate())
			tc.sampleCheck(t, g)
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		cons builder.Constructor
		want error
	}{
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"CompleteBipartite(0,2)", builder.CompleteBipartite(0, 2), builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"RandomSparse(p>1)", builder.RandomSparse(5, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", builder.RandomSparse(5, 0.5), builder.ErrNeedRandSource},
		{"Bridge(out of range)", builder.Bridge(0, 1), builder.ErrConstructFailed},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.BuildGraph(nil, tc.cons)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	t.Parallel()

	opts := []builder.BuilderOption{builder.WithSeed(42)}
	g1, err := builder.BuildGraph(opts, builder.RandomSparse(30, 0.2))
	require.NoError(t, err)
	g2, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(30, 0.2))
	require.NoError(t, err)
	assert.Equal(t, g1.Edges(), g2.Edges())

	// p=0 and p=1 need no rng.
	empty, err := builder.BuildGraph(nil, builder.RandomSparse(6, 0))
	require.NoError(t, err)
	assert.Zero(t, empty.EdgeCount())
	full, err := builder.BuildGraph(nil, builder.RandomSparse(6, 1))
	require.NoError(t, err)
	assert.Equal(t, 15, full.EdgeCount())
}

func TestFromSpec(t *testing.T) {
	t.Parallel()

	ok := map[string][2]int{
		"grid:2x3":      {6, 7},
		"cycle:8":       {8, 8},
		"path:3":        {3, 2},
		"star:5":        {5, 4},
		"wheel:6":       {6, 10},
		"complete:5":    {5, 10},
		"bipartite:2,2": {4, 4},
		"barbell:4":     {8, 13},
		"random:10,1":   {10, 45},
	}
	for spec, want := range ok {
		cons, err := builder.FromSpec(spec)
		require.NoError(t, err, spec)
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(1)}, cons...)
		require.NoError(t, err, spec)
		assert.Equal(t, want[0], g.VertexCount(), spec)
		assert.Equal(t, want[1], g.EdgeCount(), spec)
	}

	for _, bad := range []string{"", "grid", "grid:3", "torus:4", "cycle:x", "random:5", "bipartite:a,2"} {
		_, err := builder.FromSpec(bad)
		assert.ErrorIs(t, err, builder.ErrBadSpec, bad)
	}
}
