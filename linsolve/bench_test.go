// SPDX-License-Identifier: MIT
package linsolve_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/numlib/linsolve"
)

// benchmarkGaussJordan solves one diagonally dominant n×n system per iteration.
func benchmarkGaussJordan(b *testing.B, n int) {
	rng := rand.New(rand.NewSource(1))
	a := make([][]float64, n)
	rhs := make([]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
		for j := range a[i] {
			a[i][j] = rng.Float64()
		}
		a[i][i] += float64(n)
		rhs[i] = rng.Float64()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := linsolve.GaussJordan(a, rhs); err != nil {
			b.Fatalf("GaussJordan failed: %v", err)
		}
	}
}

func BenchmarkGaussJordan_16(b *testing.B)  { benchmarkGaussJordan(b, 16) }
func BenchmarkGaussJordan_64(b *testing.B)  { benchmarkGaussJordan(b, 64) }
func BenchmarkGaussJordan_128(b *testing.B) { benchmarkGaussJordan(b, 128) }
