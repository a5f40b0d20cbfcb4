// SPDX-License-Identifier: MIT

package telemetry

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvlap/lap"
)

// TracerName identifies spans emitted by this package.
const TracerName = "lvlap/lap"

// NewStdoutProvider returns a tracer provider that writes finished spans
// to w as indented JSON. Spans are exported synchronously; call Shutdown
// when done.
func NewStdoutProvider(w io.Writer) (*sdktrace.TracerProvider, error) {
	exp, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("telemetry: stdout exporter: %w", err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exp),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	), nil
}

// TracedSolve runs lap.Solve inside a span named "lap.Solve". The span
// carries the strategy, the instance size and the outcome; ctx also
// becomes the solve's cancellation context. Each augmenting phase is
// added as a span event when withEvents is set.
func TracedSolve(ctx context.Context, tp trace.TracerProvider, strategy lap.Strategy, src lap.CostSource, withEvents bool, opts ...lap.Option) (lap.Result, error) {
	ctx, span := tp.Tracer(TracerName).Start(ctx, "lap.Solve",
		trace.WithAttributes(attribute.String("lap.strategy", strategy.String())),
	)
	defer span.End()

	if src != nil {
		rows, cols := src.Dimensions()
		span.SetAttributes(
			attribute.Int("lap.rows", rows),
			attribute.Int("lap.cols", cols),
			attribute.String("lap.capabilities", src.Capabilities().String()),
		)
	}

	opts = append(opts[:len(opts):len(opts)], lap.WithContext(ctx))
	if withEvents {
		opts = append(opts, lap.WithOnAugment(func(ev lap.AugmentEvent) {
			span.AddEvent("augment", trace.WithAttributes(
				attribute.Int("row", ev.Row),
				attribute.Int("path_length", ev.PathLength),
				attribute.Int("scanned", ev.Scanned),
				attribute.Float64("delta", ev.Delta),
			))
		}))
	}

	res, err := lap.Solve(strategy, src, opts...)
	span.SetAttributes(
		attribute.String("lap.status", res.Status.String()),
		attribute.Int("lap.augmentations", res.Stats.Augmentations),
		attribute.Int("lap.core_expansions", res.Stats.CoreExpansions),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if len(res.BlockingRows) > 0 {
			span.SetAttributes(attribute.IntSlice("lap.blocking_rows", res.BlockingRows))
		}
		return res, err
	}
	span.SetAttributes(attribute.Float64("lap.total_cost", res.TotalCost))
	span.SetStatus(codes.Ok, "")

	return res, nil
}
