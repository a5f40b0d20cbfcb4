// SPDX-License-Identifier: MIT

package matrix

import "math"

func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

func isPosInf(v float64) bool { return math.IsInf(v, 1) }

func isNegInf(v float64) bool { return math.IsInf(v, -1) }

func abs(v float64) float64 { return math.Abs(v) }
