// SPDX-License-Identifier: MIT
// Package envelope_test holds shared fixtures for the envelope tests.
//
// Purpose:
//   - Brute-force oracle (max over every inserted line) for property tests.
//   - Deterministic random line sets; ranges keep a·x + b far from overflow.

package envelope_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/hull/envelope"
	"github.com/stretchr/testify/assert"
)

// Test knobs (avoid magic numbers in test bodies).
const (
	seedDet = int64(42)

	nRounds  = 40
	nLines   = 60
	nQueries = 200

	slopeSpan     = 1_000
	interceptSpan = 1_000_000
	querySpan     = 10_000

	relEps = 1e-9
)

// bruteMax is the oracle: max over every line of a·x + b.
func bruteMax[T envelope.Number](lines []envelope.Line[T], x T) T {
	best := lines[0].Eval(x)
	for _, l := range lines[1:] {
		if v := l.Eval(x); v > best {
			best = v
		}
	}

	return best
}

// randomIntLines draws n lines with slopes/intercepts in symmetric spans.
// Small spans force many equal slopes and coincident lines.
func randomIntLines(rng *rand.Rand, n int, aSpan, bSpan int64) []envelope.Line[int64] {
	lines := make([]envelope.Line[int64], n)
	for i := range lines {
		lines[i] = envelope.Line[int64]{
			A: rng.Int63n(2*aSpan+1) - aSpan,
			B: rng.Int63n(2*bSpan+1) - bSpan,
		}
	}

	return lines
}

// randomFloatLines draws n lines uniformly in [−aSpan,aSpan]×[−bSpan,bSpan].
func randomFloatLines(rng *rand.Rand, n int, aSpan, bSpan float64) []envelope.Line[float64] {
	lines := make([]envelope.Line[float64], n)
	for i := range lines {
		lines[i] = envelope.Line[float64]{
			A: (2*rng.Float64() - 1) * aSpan,
			B: (2*rng.Float64() - 1) * bSpan,
		}
	}

	return lines
}

// randomIntQueries draws n positions in [−span, span].
func randomIntQueries(rng *rand.Rand, n int, span int64) []int64 {
	xs := make([]int64, n)
	for i := range xs {
		xs[i] = rng.Int63n(2*span+1) - span
	}

	return xs
}

// randomFloatQueries draws n positions in [−span, span].
func randomFloatQueries(rng *rand.Rand, n int, span float64) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = (2*rng.Float64() - 1) * span
	}

	return xs
}

// assertClose compares float results with a relative tolerance; the chosen
// line near a crossover may differ from the oracle's by rounding only.
func assertClose(t *testing.T, want, got float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want, got, relEps*math.Max(1, math.Abs(want)), msgAndArgs...)
}
