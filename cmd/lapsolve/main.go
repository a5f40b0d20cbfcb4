// SPDX-License-Identifier: MIT

// Command lapsolve solves, generates and benchmarks linear assignment
// instances.
//
//	lapsolve solve costs.yaml --strategy sparse
//	lapsolve batch runs/*.json --format csv --metrics-file lap.prom
//	lapsolve gen --kind sparse -n 500 --density 0.02 -o big.cbor
//	lapsolve bench -n 200 --runs 5
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
