// SPDX-License-Identifier: MIT

package lap_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlap/lap"
	"github.com/katalvlaran/lvlap/matrix"
)

func ExampleSolveDense() {
	src, _ := lap.FromRows([][]float64{
		{4, 1, 3},
		{2, 0, 5},
		{3, 2, 2},
	})
	res, err := lap.SolveDense(src)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Status, res.Assignment, res.TotalCost)
	// Output: optimal [1 0 2] 5
}

func ExampleSolveSparse() {
	s, _ := matrix.NewSparse(3, 3, []matrix.Entry{
		{Row: 0, Col: 0, Value: 7}, {Row: 0, Col: 2, Value: 1},
		{Row: 1, Col: 0, Value: 2},
		{Row: 2, Col: 1, Value: 3}, {Row: 2, Col: 2, Value: 4},
	})
	src, _ := lap.FromSparse(s)
	res, err := lap.SolveSparse(src)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Assignment, res.TotalCost)
	// Output: [2 0 1] 6
}

func ExampleInfeasibleError() {
	inf := math.Inf(1)
	src, _ := lap.FromRows([][]float64{
		{1, inf},
		{inf, inf},
	})
	_, err := lap.SolveDense(src)
	var ie *lap.InfeasibleError
	if errors.As(err, &ie) {
		fmt.Println("blocking rows:", ie.Rows, "cols:", ie.Cols)
	}
	// Output: blocking rows: [1] cols: [1]
}

func ExampleSolveRectangular() {
	src, _ := lap.FromRows([][]float64{
		{1, 5},
		{2, 1},
		{0, 4},
	})
	res, _ := lap.SolveRectangular(src)
	fmt.Println(res.Pairs(), res.TotalCost)
	// Output: [[1 1] [2 0]] 1
}
