package search_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valvenet/core"
	"github.com/katalvlaran/valvenet/matrix"
	"github.com/katalvlaran/valvenet/search"
)

// mustEngine builds the hop matrix and an Engine for net.
func mustEngine(t testing.TB, net *core.Network, opts ...search.Option) *search.Engine {
	t.Helper()

	d, err := matrix.FromNetwork(net)
	require.NoError(t, err)
	e, err := search.New(net, d, opts...)
	require.NoError(t, err)

	return e
}

// chain builds V00—V01—…—V(n-1) with the given flow per index.
func chain(t testing.TB, n int, flows map[int]int) *core.Network {
	t.Helper()

	net := core.NewNetwork()
	for i := 0; i < n; i++ {
		_, err := net.AddValve(fmt.Sprintf("V%02d", i), flows[i])
		require.NoError(t, err)
		if i > 0 {
			require.NoError(t, net.Connect(i-1, i))
		}
	}

	return net
}

// randomNetwork builds n valves with random flows (about a third zero) and
// sparse random tunnels; the result may be disconnected.
func randomNetwork(t testing.TB, rng *rand.Rand, n int) *core.Network {
	t.Helper()

	net := core.NewNetwork()
	for i := 0; i < n; i++ {
		flow := 0
		if rng.Intn(3) > 0 {
			flow = 1 + rng.Intn(25)
		}
		_, err := net.AddValve(fmt.Sprintf("R%d", i), flow)
		require.NoError(t, err)
	}
	for i := 1; i < n; i++ {
		if rng.Intn(6) > 0 {
			require.NoError(t, net.Connect(rng.Intn(i), i))
		}
	}
	for extra := rng.Intn(n); extra > 0; extra-- {
		a, b := rng.Intn(n), rng.Intn(n)
		if a != b {
			require.NoError(t, net.Connect(a, b))
		}
	}

	return net
}

// bruteForce enumerates every opening order of flow valves directly.
func bruteForce(net *core.Network, d *matrix.Distance, start, minutes int) int {
	valves := net.Valves()
	flows := net.FlowValves()

	var walk func(cur, left int, used uint64) int
	walk = func(cur, left int, used uint64) int {
		best := 0
		for i, v := range flows {
			if used&(1<<uint(i)) != 0 {
				continue
			}
			h := d.Hops(cur, v)
			if h == matrix.Unreachable {
				continue
			}
			rem := left - h - 1
			if rem <= 0 {
				continue
			}
			if got := rem*valves[v].FlowRate + walk(v, rem, used|1<<uint(i)); got > best {
				best = got
			}
		}
		return best
	}

	return walk(start, minutes, 0)
}
