package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/valvenet/bfs"
	"github.com/katalvlaran/valvenet/core"
	"github.com/katalvlaran/valvenet/internal/fixture"
	"github.com/katalvlaran/valvenet/matrix"
)

// randomAdjacency returns n neighbour lists with roughly p·n² one-sided entries.
// Lists are deliberately one-sided so FromAdjacency's mirroring is exercised.
func randomAdjacency(rng *rand.Rand, n int, p float64) [][]int {
	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				adj[i] = append(adj[i], j)
			}
		}
	}

	return adj
}

// gonumOracle computes hop distances with gonum's Floyd–Warshall.
func gonumOracle(adj [][]int) path.AllShortest {
	g := simple.NewUndirectedGraph()
	for i := range adj {
		g.AddNode(simple.Node(i))
	}
	for i, row := range adj {
		for _, j := range row {
			if i == j || g.HasEdgeBetween(int64(i), int64(j)) {
				continue
			}
			g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
		}
	}
	all, _ := path.FloydWarshall(g)

	return all
}

// TestFromAdjacency_Canonical checks a full row of the 10-valve network.
func TestFromAdjacency_Canonical(t *testing.T) {
	t.Parallel()

	net := fixture.Canonical()
	d, err := matrix.FromNetwork(net)
	require.NoError(t, err)
	require.Equal(t, net.Len(), d.Order())

	aa, _ := net.Lookup("AA")
	want := map[string]int{
		"AA": 0, "BB": 1, "CC": 2, "DD": 1, "EE": 2,
		"FF": 3, "GG": 4, "HH": 5, "II": 1, "JJ": 2,
	}
	for label, hops := range want {
		idx, ok := net.Lookup(label)
		require.True(t, ok)
		require.Equalf(t, hops, d.Hops(aa, idx), "AA→%s", label)
	}

	hh, _ := net.Lookup("HH")
	jj, _ := net.Lookup("JJ")
	require.Equal(t, 7, d.Hops(hh, jj))
	require.NoError(t, matrix.Validate(d))
}

// TestFromAdjacency_Errors rejects neighbours outside the valve range.
func TestFromAdjacency_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.FromAdjacency([][]int{{1}, {2}})
	require.ErrorIs(t, err, matrix.ErrUnknownNeighbor)

	_, err = matrix.FromAdjacency([][]int{{-1}})
	require.ErrorIs(t, err, matrix.ErrUnknownNeighbor)

	_, err = matrix.FromNetwork(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestFromAdjacency_Disconnected keeps Unreachable across components.
func TestFromAdjacency_Disconnected(t *testing.T) {
	t.Parallel()

	// {0,1} and {2,3} are separate components.
	d, err := matrix.FromAdjacency([][]int{{1}, {0}, {3}, {2}})
	require.NoError(t, err)

	require.Equal(t, 1, d.Hops(0, 1))
	require.Equal(t, 1, d.Hops(2, 3))
	require.Equal(t, matrix.Unreachable, d.Hops(0, 2))
	require.Equal(t, matrix.Unreachable, d.Hops(3, 1))
	require.NoError(t, matrix.Validate(d))
}

// TestFromAdjacency_SelfEntryIgnored treats i∈adj[i] as no tunnel.
func TestFromAdjacency_SelfEntryIgnored(t *testing.T) {
	t.Parallel()

	d, err := matrix.FromAdjacency([][]int{{0, 1}, {}})
	require.NoError(t, err)
	require.Equal(t, 0, d.Hops(0, 0))
	require.Equal(t, 1, d.Hops(1, 0))
}

// TestFloydWarshall_Properties checks the metric invariants and compares
// every entry with gonum on random sparse graphs, some of them disconnected.
func TestFloydWarshall_Properties(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(16))
	for round := 0; round < 25; round++ {
		n := 2 + rng.Intn(30)
		adj := randomAdjacency(rng, n, 0.12)

		d, err := matrix.FromAdjacency(adj)
		require.NoError(t, err)
		require.NoError(t, matrix.Validate(d), "round %d", round)

		oracle := gonumOracle(adj)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				w := oracle.Weight(int64(i), int64(j))
				if math.IsInf(w, 1) {
					require.Equalf(t, matrix.Unreachable, d.Hops(i, j), "round %d (%d,%d)", round, i, j)
					continue
				}
				require.Equalf(t, int(w), d.Hops(i, j), "round %d (%d,%d)", round, i, j)
			}
		}
	}
}

// TestFromNetwork_MatchesBFS compares each matrix row with a BFS from that valve.
func TestFromNetwork_MatchesBFS(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	adj := randomAdjacency(rng, 24, 0.1)

	net := core.NewNetwork()
	for i := range adj {
		_, err := net.AddValve(string(rune('A'+i)), i)
		require.NoError(t, err)
	}
	for i, row := range adj {
		for _, j := range row {
			require.NoError(t, net.Connect(i, j))
		}
	}

	d, err := matrix.FromNetwork(net)
	require.NoError(t, err)

	for src := 0; src < net.Len(); src++ {
		res, err := bfs.BFS(net, src)
		require.NoError(t, err)
		for dst := 0; dst < net.Len(); dst++ {
			depth, ok := res.Depth[dst]
			if !ok {
				require.Equal(t, matrix.Unreachable, d.Hops(src, dst))
				continue
			}
			require.Equal(t, depth, d.Hops(src, dst))
		}
	}
}
