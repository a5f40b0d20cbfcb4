package matrix_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlap/matrix"
)

// ExampleSparseFromDense turns a cost table with forbidden pairs into rows
// of (column, cost) entries.
func ExampleSparseFromDense() {
	inf := math.Inf(1)
	d, _ := matrix.NewDenseFrom([][]float64{
		{4, inf, 1},
		{inf, 2, inf},
	}, matrix.WithAllowPosInf())

	s, _ := matrix.SparseFromDense(d)
	for i := 0; i < s.Rows(); i++ {
		cols, vals, _ := s.Row(i)
		fmt.Println(i, cols, vals)
	}

	// Output:
	// 0 [0 2] [4 1]
	// 1 [1] [2]
}
