package prob_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/leiyangcq/BET/density"
	"github.com/leiyangcq/BET/grid"
	"github.com/leiyangcq/BET/prob"
)

// ExampleHighestProbability inverts a six-sample run against a centered
// uniform density and reports the support of the solution.
func ExampleHighestProbability() {
	f, err := density.UniformRegular(
		[]int{2, 2},
		grid.Hyperrect{Center: []float64{0.5, 0.5}, Ratio: 0.5},
		grid.Unit(2),
		nil,
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	outputs := mat.NewDense(6, 2, []float64{
		0.375, 0.375,
		0.375, 0.625,
		0.625, 0.375,
		0.625, 0.625,
		0.05, 0.05,
		0.95, 0.95,
	})

	res, err := prob.Compute(f, outputs)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	sup, err := prob.HighestProbability(res, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("total mass:", res.TotalMass())
	fmt.Printf("kept %d of %d samples\n", sup.Len(), res.Len())
	fmt.Printf("support measure: %.2f\n", sup.Measure())
	// Output:
	// total mass: 1
	// kept 4 of 6 samples
	// support measure: 0.67
}
