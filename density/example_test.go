package density_test

import (
	"fmt"

	"github.com/leiyangcq/BET/density"
	"github.com/leiyangcq/BET/grid"
)

// ExampleUniformRegular builds a uniform density over a centered rectangle:
// the four interior cells share the mass, the bounding shell carries none.
func ExampleUniformRegular() {
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

	fmt.Println("points:", f.Len())
	fmt.Println("interior mass:", f.Masses[5])
	fmt.Println("total:", f.TotalMass())
	// Output:
	// points: 16
	// interior mass: 0.25
	// total: 1
}

// ExampleSimpleFunction_Nearest assigns an arbitrary query point to its
// owning generator.
func ExampleSimpleFunction_Nearest() {
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

	owner, _, err := f.Nearest([]float64{0.3, 0.3})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("owner:", f.Points.RawRowView(owner))
	fmt.Println("mass:", f.Masses[owner])
	// Output:
	// owner: [0.375 0.375]
	// mass: 0.25
}
