package partition_test

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/partlath/builder"
	"github.com/katalvlaran/partlath/core"
	"github.com/katalvlaran/partlath/partition"
	"github.com/katalvlaran/partlath/spectral"
)

func TestValidate(t *testing.T) {
	params := func(method partition.Method, parts, margin int, force bool) partition.Params {
		p := partition.DefaultParams()
		p.Method, p.Parts, p.Margin, p.Force = method, parts, margin, force
		return p
	}
	cases := []struct {
		name string
		p    partition.Params
		n    int
		want error
	}{
		{"ok kl exact", params(partition.MethodKL, 2, 0, false), 4, nil},
		{"ok spectral", params(partition.MethodSpectral, 4, 10, false), 16, nil},
		{"one part", params(partition.MethodKL, 1, 10, false), 10, core.ErrConfig},
		{"unknown method", params("x", 2, 10, false), 10, core.ErrConfig},
		{"margin high", params(partition.MethodKL, 2, 101, false), 10, core.ErrConfig},
		{"margin low", params(partition.MethodKL, 2, -1, false), 10, core.ErrConfig},
		{"too small", params(partition.MethodKL, 2, 10, false), 3, core.ErrInfeasible},
		{"too many parts", params(partition.MethodSpectral, 3, 10, false), 5, core.ErrInfeasible},
		{"odd exact", params(partition.MethodKL, 2, 0, false), 9, core.ErrInfeasible},
		{"odd exact forced", params(partition.MethodKL, 2, 0, true), 9, nil},
		{"tight margin", params(partition.MethodSpectral, 3, 10, false), 10, core.ErrInfeasible},
		{"wide margin", params(partition.MethodSpectral, 3, 100, false), 10, nil},
		{"tight margin forced", params(partition.MethodSpectral, 3, 10, true), 10, nil},
		{"kl multiway", params(partition.MethodKL, 3, 10, false), 12, core.ErrInfeasible},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := partition.Validate(tc.p, tc.n)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNew(t *testing.T) {
	for _, m := range []partition.Method{partition.MethodKL, partition.MethodSpectral} {
		p, err := partition.New(m)
		require.NoError(t, err)
		assert.Equal(t, m, p.Method())
	}
	_, err := partition.New("metis")
	require.ErrorIs(t, err, core.ErrConfig)
}

// RunSuite drives both strategies through Run.
type RunSuite struct {
	suite.Suite
}

func (s *RunSuite) build(cons ...builder.Constructor) *core.Graph {
	g, err := builder.BuildGraph(nil, cons...)
	require.NoError(s.T(), err)
	return g
}

// TestFourCycleKL: exact bisection of C4 cuts two edges.
func (s *RunSuite) TestFourCycleKL() {
	g, err := core.Build(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	require.NoError(s.T(), err)
	p := partition.DefaultParams()
	p.Margin = 0

	res, err := partition.Run(g, p)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, res.Cut)
	require.Equal(s.T(), []int{0, 0, 1, 1}, res.Groups)
	require.Equal(s.T(), []int{2, 2}, res.Sizes)
	require.Equal(s.T(), 2, res.Split)
	require.Equal(s.T(), []int{1, 1}, res.Fragments)
	require.Zero(s.T(), res.Repair.Moved+res.Repair.Swapped)
	require.NotZero(s.T(), res.Seed)
	_, err = uuid.Parse(res.RunID)
	require.NoError(s.T(), err)
}

// TestSpectralBarbell: block bands separate the two cliques.
func (s *RunSuite) TestSpectralBarbell() {
	g := s.build(builder.Complete(4), builder.Complete(4), builder.Bridge(3, 4))
	p := partition.DefaultParams()
	p.Method = partition.MethodSpectral
	p.Banding = spectral.BandBlock
	p.Margin = 0
	p.Seed = 11

	res, err := partition.Run(g, p)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, res.Cut)
	require.Equal(s.T(), []int{0, 0, 0, 0, 1, 1, 1, 1}, res.Groups)
	require.Equal(s.T(), []int{4, 4}, res.Sizes)
	require.Equal(s.T(), []int{1, 1}, res.Fragments)
	require.Equal(s.T(), int64(11), res.Seed)
	require.True(s.T(), res.Converged)
}

// TestSpectralDeterministic: a fixed seed reproduces the labelling.
func (s *RunSuite) TestSpectralDeterministic() {
	p := partition.DefaultParams()
	p.Method = partition.MethodSpectral
	p.Parts = 4
	p.Seed = 3

	a := s.build(builder.Grid(4, 6))
	b := a.Clone()
	ra, err := partition.Run(a, p)
	require.NoError(s.T(), err)
	rb, err := partition.Run(b, p)
	require.NoError(s.T(), err)
	require.Equal(s.T(), ra.Groups, rb.Groups)
	require.Equal(s.T(), ra.Cut, rb.Cut)
	require.NotEqual(s.T(), ra.RunID, rb.RunID)
	require.NoError(s.T(), a.CheckGroups(4))
}

// TestErrors: nil graph, infeasible parameters and engine errors surface as sentinels.
func (s *RunSuite) TestErrors() {
	_, err := partition.Run(nil, partition.DefaultParams())
	require.ErrorIs(s.T(), err, core.ErrConfig)

	small := s.build(builder.Cycle(3))
	_, err = partition.Run(small, partition.DefaultParams())
	require.ErrorIs(s.T(), err, core.ErrInfeasible)

	odd := s.build(builder.Path(5))
	p := partition.DefaultParams()
	p.Margin = 0
	_, err = partition.Run(odd, p)
	require.ErrorIs(s.T(), err, core.ErrInfeasible)

	grid := s.build(builder.Grid(2, 4))
	p = partition.DefaultParams()
	p.Method = partition.MethodSpectral
	p.Banding = "diagonal"
	_, err = partition.Run(grid, p)
	require.ErrorIs(s.T(), err, core.ErrConfig)
}

// TestSummaryYAML: the summary carries the method-specific block only.
func (s *RunSuite) TestSummaryYAML() {
	g, err := core.Build(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	require.NoError(s.T(), err)
	p := partition.DefaultParams()
	p.Margin = 0
	p.Seed = 42
	res, err := partition.Run(g, p)
	require.NoError(s.T(), err)

	sum := partition.NewSummary(g, res)
	require.Equal(s.T(), 4, sum.Vertices)
	require.Equal(s.T(), 4, sum.Edges)
	require.NotNil(s.T(), sum.KL)
	require.Nil(s.T(), sum.Spectral)

	var buf bytes.Buffer
	require.NoError(s.T(), partition.WriteSummary(&buf, sum))
	out := buf.String()
	require.Contains(s.T(), out, res.RunID)
	require.Contains(s.T(), out, "method: kl")
	require.Contains(s.T(), out, "seed: 42")
	require.Contains(s.T(), out, "edge_cut: 2")
	require.Contains(s.T(), out, "group_sizes: [2, 2]")
	require.Contains(s.T(), out, "group_fragments: [1, 1]")
	require.Contains(s.T(), out, "split: 2")
	require.NotContains(s.T(), out, "spectral:")
}

func TestRunSuite(t *testing.T) {
	suite.Run(t, new(RunSuite))
}
