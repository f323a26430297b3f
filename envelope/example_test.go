// File: envelope/example_test.go
package envelope_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hull/envelope"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Dynamic
////////////////////////////////////////////////////////////////////////////////

// ExampleDynamic inserts three lines in arbitrary order and queries the
// envelope on both sides of each crossover.
//
//	f1(x) = 2x, f2(x) = 5, f3(x) = −x + 10
//
// f2 is never the maximum and is pruned on insertion of f3.
func ExampleDynamic() {
	d := envelope.NewDynamic[int64]()
	d.Insert(2, 0)
	d.Insert(0, 5)
	d.Insert(-1, 10)

	for _, x := range []int64{0, 3, 4, 10} {
		v, _ := d.Maximum(x)
		fmt.Printf("max at %d = %d\n", x, v)
	}
	fmt.Println("retained:", d.Len())

	// Output:
	// max at 0 = 10
	// max at 3 = 7
	// max at 4 = 8
	// max at 10 = 20
	// retained: 2
}

////////////////////////////////////////////////////////////////////////////////
// Example: Monotonic (DP optimization)
////////////////////////////////////////////////////////////////////////////////

// ExampleMonotonic evaluates dp[i] = gain[i] + max_{j<i} (dp[j] − (x_i − x_j)²)
// in expanded form: gain[i] − x_i² + max_j (2x_j·x_i + dp[j] − x_j²).
// Slopes 2x_j and positions x_i both increase, so every step is amortized O(1).
// WithStrictOrder turns a mis-sorted xs into ErrOrderViolation.
func ExampleMonotonic() {
	xs := []int64{0, 1, 3, 4, 8}
	gain := []int64{0, 5, 4, 6, 20}

	m := envelope.NewMonotonic[int64](envelope.WithStrictOrder())
	dp := make([]int64, len(xs))
	dp[0] = gain[0]
	if err := m.Insert(2*xs[0], dp[0]-xs[0]*xs[0]); err != nil {
		fmt.Println("insert:", err)
		return
	}
	for i := 1; i < len(xs); i++ {
		best, err := m.Maximum(xs[i])
		if err != nil {
			fmt.Println("maximum:", err)
			return
		}
		dp[i] = best - xs[i]*xs[i] + gain[i]
		if err := m.Insert(2*xs[i], dp[i]-xs[i]*xs[i]); err != nil {
			fmt.Println("insert:", err)
			return
		}
	}
	fmt.Println(dp)

	// Output:
	// [0 4 4 9 13]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Static
////////////////////////////////////////////////////////////////////////////////

// ExampleStatic builds once and answers queries in any order.
func ExampleStatic() {
	s := envelope.NewStatic([]envelope.Line[float64]{
		{A: 0.5, B: 0},
		{A: -0.5, B: 0},
		{A: 0, B: 1},
	})
	for _, x := range []float64{4, -4, 0} {
		v, _ := s.Maximum(x)
		fmt.Printf("max at %g = %g\n", x, v)
	}

	_, err := envelope.NewStatic[float64](nil).Maximum(0)
	fmt.Println(errors.Is(err, envelope.ErrEmptyContainer))

	// Output:
	// max at 4 = 2
	// max at -4 = 2
	// max at 0 = 1
	// true
}
