package nystrom_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gramkit/nystrom"
	"gonum.org/v1/gonum/mat"
)

// ExampleFeatureMap_Map embeds a query point using a hand-built rank-one
// decomposition. Prototypes [1,2] under the linear kernel a·b give
// K = [[1,2],[2,4]] with the single positive eigenpair λ=5,
// v = (1,2)/√5; the resulting embedding is φ(x) = x.
func ExampleFeatureMap_Map() {
	linear := func(a, b float64) float64 { return a * b }
	s := 1 / math.Sqrt(5)

	f, err := nystrom.New([]float64{1, 2}, linear, nystrom.Eigen{
		Values:  []float64{5},
		Vectors: mat.NewDense(2, 1, []float64{s, 2 * s}),
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("dim=%d\n", f.Dim())
	fmt.Printf("phi(3)=%.4f\n", f.Map(3).AtVec(0))
	// Output:
	// dim=1
	// phi(3)=3.0000
}
