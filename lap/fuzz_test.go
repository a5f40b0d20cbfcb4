// SPDX-License-Identifier: MIT

package lap_test

import (
	"testing"
)

// FuzzStrategiesAgree feeds seeded random instances to every strategy and
// checks they agree with each other and with exhaustive search.
func FuzzStrategiesAgree(f *testing.F) {
	f.Add(int64(1), uint8(4), uint8(60), true)
	f.Add(int64(7), uint8(6), uint8(20), false)
	f.Add(int64(42), uint8(0), uint8(100), true)
	f.Add(int64(-3), uint8(1), uint8(0), false)

	f.Fuzz(func(t *testing.T, seed int64, size, pct uint8, planted bool) {
		n := int(size) % (bruteMax - 1)
		p := float64(pct%101) / 100
		rows := randomInstance(t, seed, n, p, planted)

		cost, feasible := requireAgree(t, mustRows(t, rows))
		want, wantFeasible := bruteForce(rows)
		if feasible != wantFeasible {
			t.Fatalf("feasible=%v, exhaustive search says %v", feasible, wantFeasible)
		}
		if feasible && (cost-want > costTol || want-cost > costTol) {
			t.Fatalf("cost %g, exhaustive search %g", cost, want)
		}
	})
}
