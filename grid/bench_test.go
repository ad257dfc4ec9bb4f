package grid_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/crucible/grid"
)

// BenchmarkParse measures parsing a 141×141 digit grid, the size of a
// typical full puzzle input.
func BenchmarkParse(b *testing.B) {
	const n = 141
	rnd := rand.New(rand.NewSource(42))
	var sb strings.Builder
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			sb.WriteByte(byte('1' + rnd.Intn(9)))
		}
		sb.WriteByte('\n')
	}
	text := sb.String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := grid.ParseString(text); err != nil {
			b.Fatal(err)
		}
	}
}
