package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/valvenet/matrix"
)

// BenchmarkFromAdjacency measures seeding plus Floyd–Warshall on a sparse
// 64-valve graph, the largest size the search engine's opened set supports.
func BenchmarkFromAdjacency(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	adj := randomAdjacency(rng, 64, 0.05)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matrix.FromAdjacency(adj)
	}
}
