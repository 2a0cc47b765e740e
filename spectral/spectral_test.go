package spectral_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/partlath/builder"
	"github.com/katalvlaran/partlath/core"
	"github.com/katalvlaran/partlath/spectral"
)

// SpectralSuite covers the Laplacian, both eigensolvers and Partition.
type SpectralSuite struct {
	suite.Suite
}

func (s *SpectralSuite) build(cons ...builder.Constructor) *core.Graph {
	g, err := builder.BuildGraph(nil, cons...)
	require.NoError(s.T(), err)
	return g
}

func (s *SpectralSuite) barbell() *core.Graph {
	return s.build(builder.Complete(4), builder.Complete(4), builder.Bridge(3, 4))
}

// TestLaplacianShape: degrees on the diagonal, −1 per edge, zero row sums.
func (s *SpectralSuite) TestLaplacianShape() {
	g := s.build(builder.Cycle(4))
	L, err := spectral.Laplacian(g, 0)
	require.NoError(s.T(), err)

	for i := 0; i < 4; i++ {
		require.Equal(s.T(), 2.0, L.At(i, i))
		sum := 0.0
		for j := 0; j < 4; j++ {
			sum += L.At(i, j)
		}
		require.Zero(s.T(), sum)
	}
	require.Equal(s.T(), -1.0, L.At(0, 1))
	require.Equal(s.T(), -1.0, L.At(3, 0))
	require.Equal(s.T(), 0.0, L.At(0, 2))
}

// TestPathFiedler: λ2(P4) = 2 − √2 and the vector is monotone along the path.
func (s *SpectralSuite) TestPathFiedler() {
	g := s.build(builder.Path(4))
	want := 2 - math.Sqrt2

	for _, solver := range []spectral.Solver{spectral.SolverPower, spectral.SolverExact} {
		opts := spectral.DefaultOptions()
		opts.Solver = solver
		opts.Seed = 7
		eig, err := spectral.FiedlerVector(g, opts)
		require.NoError(s.T(), err, solver)
		require.True(s.T(), eig.Converged, solver)
		require.InDelta(s.T(), want, eig.Value, 1e-3, solver)
		require.Equal(s.T(), []int{0, 1, 2, 3}, spectral.SortedOrder(eig.Vector), solver)

		norm := 0.0
		for _, v := range eig.Vector {
			norm += v * v
		}
		require.InDelta(s.T(), 1.0, norm, 1e-9, solver)
	}
}

// TestNotConvergedIsSoft: a tight tolerance with a 1·n cap.
func (s *SpectralSuite) TestNotConvergedIsSoft() {
	g := s.build(builder.Path(50))
	opts := spectral.DefaultOptions()
	opts.Tolerance = 1e-15
	opts.MaxIterFactor = 1
	opts.Seed = 3

	eig, err := spectral.FiedlerVector(g, opts)
	require.ErrorIs(s.T(), err, spectral.ErrNotConverged)
	require.False(s.T(), eig.Converged)
	require.Equal(s.T(), 50, eig.Iterations)
	require.Len(s.T(), eig.Vector, 50)

	res, err := spectral.Partition(g, 2, opts)
	require.NoError(s.T(), err)
	require.False(s.T(), res.Eigen.Converged)
	require.NoError(s.T(), g.CheckGroups(2))
}

// TestBlockBandingFindsBridge: contiguous bands split the barbell at its bridge.
func (s *SpectralSuite) TestBlockBandingFindsBridge() {
	g := s.barbell()
	opts := spectral.DefaultOptions()
	opts.Banding = spectral.BandBlock
	opts.Margin = 0
	opts.Seed = 11

	res, err := spectral.Partition(g, 2, opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, res.Cut)
	require.Equal(s.T(), 0, res.Rotation)
	require.Equal(s.T(), []int{0, 0, 0, 0, 1, 1, 1, 1}, g.Groups())
}

// TestRotateBandingIsValid: interleaved bands keep every label in range and the
// reported cut matches the graph.
func (s *SpectralSuite) TestRotateBandingIsValid() {
	g := s.build(builder.Grid(4, 4))
	opts := spectral.DefaultOptions()
	opts.Seed = 5

	res, err := spectral.Partition(g, 4, opts)
	require.NoError(s.T(), err)
	require.NoError(s.T(), g.CheckGroups(4))
	require.Equal(s.T(), res.Cut, g.EdgeCut())
	require.Equal(s.T(), res.Groups, g.Groups())
	require.GreaterOrEqual(s.T(), res.Rotation, 0)
	require.Less(s.T(), res.Rotation, 4)
	require.Len(s.T(), res.Order, 16)
}

// TestModuloEvaluatesOnce: modulo banding is rotation-invariant.
func (s *SpectralSuite) TestModuloEvaluatesOnce() {
	g := s.barbell()
	opts := spectral.DefaultOptions()
	opts.Banding = spectral.BandModulo

	res, err := spectral.Partition(g, 2, opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, res.Rotation)
}

// TestDisconnectedVertexIsMoved: star leaves banded away from the hub are
// isolated; repair moves them next to the hub while capacity allows.
func (s *SpectralSuite) TestDisconnectedVertexIsMoved() {
	g := s.build(builder.Star(5))
	opts := spectral.DefaultOptions()
	opts.Margin = 100
	opts.Seed = 2

	res, err := spectral.Partition(g, 2, opts)
	require.NoError(s.T(), err)
	require.Positive(s.T(), res.Repair.Moved)

	unrepaired := map[int]bool{}
	for _, v := range res.Repair.Unrepaired {
		unrepaired[v] = true
	}
	for v := 0; v < g.VertexCount(); v++ {
		if unrepaired[v] {
			continue
		}
		require.True(s.T(), g.HasNeighborIn(v, g.Group(v), -1), "vertex %d", v)
	}
	// Every crossing edge is a hub–leaf edge of an unrepaired leaf.
	require.Equal(s.T(), len(res.Repair.Unrepaired), res.Cut)
}

// TestForceRepairsEverything: without bounds every leaf joins the hub.
func (s *SpectralSuite) TestForceRepairsEverything() {
	g := s.build(builder.Star(5))
	opts := spectral.DefaultOptions()
	opts.Force = true

	res, err := spectral.Partition(g, 2, opts)
	require.NoError(s.T(), err)
	require.Empty(s.T(), res.Repair.Unrepaired)
	require.Zero(s.T(), res.Cut)
}

// TestDeterministic: equal seeds give equal results.
func (s *SpectralSuite) TestDeterministic() {
	g1, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(9)}, builder.RandomSparse(24, 0.25))
	require.NoError(s.T(), err)
	g2 := g1.CloneTopology()

	opts := spectral.DefaultOptions()
	opts.Rand = rand.New(rand.NewSource(99))
	r1, err := spectral.Partition(g1, 3, opts)
	require.NoError(s.T(), err)
	opts.Rand = rand.New(rand.NewSource(99))
	r2, err := spectral.Partition(g2, 3, opts)
	require.NoError(s.T(), err)

	require.Equal(s.T(), r1.Groups, r2.Groups)
	require.Equal(s.T(), r1.Cut, r2.Cut)
	require.Equal(s.T(), r1.Order, r2.Order)
}

// TestErrors covers degenerate input, parts range, dense limit and unknown knobs.
func (s *SpectralSuite) TestErrors() {
	single, err := core.Build(1, nil)
	require.NoError(s.T(), err)
	_, err = spectral.Partition(single, 2, spectral.DefaultOptions())
	require.ErrorIs(s.T(), err, core.ErrNumeric)

	g := s.build(builder.Cycle(4))
	_, err = spectral.Partition(g, 1, spectral.DefaultOptions())
	require.ErrorIs(s.T(), err, core.ErrConfig)
	_, err = spectral.Partition(g, 5, spectral.DefaultOptions())
	require.ErrorIs(s.T(), err, core.ErrInfeasible)

	opts := spectral.DefaultOptions()
	opts.MaxDenseVertices = 3
	_, err = spectral.Partition(g, 2, opts)
	require.ErrorIs(s.T(), err, core.ErrAllocation)

	opts = spectral.DefaultOptions()
	opts.Solver = "lanczos"
	_, err = spectral.FiedlerVector(g, opts)
	require.ErrorIs(s.T(), err, core.ErrConfig)

	opts = spectral.DefaultOptions()
	opts.Banding = "stripes"
	_, err = spectral.Partition(g, 2, opts)
	require.ErrorIs(s.T(), err, core.ErrConfig)
}

func TestSpectralSuite(t *testing.T) {
	suite.Run(t, new(SpectralSuite))
}

func TestSortedOrderStableOnTies(t *testing.T) {
	assert.Equal(t, []int{1, 3, 0, 2}, spectral.SortedOrder([]float64{0.5, -1, 0.5, -1}))
}
