// SPDX-License-Identifier: MIT

package telemetry_test

import (
	"bytes"
	"context"
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/lvlap/lap"
	"github.com/katalvlaran/lvlap/telemetry"
)

func attrs(kvs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value, len(kvs))
	for _, kv := range kvs {
		out[kv.Key] = kv.Value
	}

	return out
}

func TestTracedSolve(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	src := mustRows(t, [][]float64{{4, 1, 3}, {2, 0, 5}, {3, 2, 2}})
	res, err := telemetry.TracedSolve(context.Background(), tp, lap.StrategyDense, src, true)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 2}, res.Assignment)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	s := spans[0]
	assert.Equal(t, "lap.Solve", s.Name())
	assert.Equal(t, codes.Ok, s.Status().Code)
	a := attrs(s.Attributes())
	assert.Equal(t, "dense", a["lap.strategy"].AsString())
	assert.Equal(t, int64(3), a["lap.rows"].AsInt64())
	assert.Equal(t, "optimal", a["lap.status"].AsString())
	assert.Equal(t, 5.0, a["lap.total_cost"].AsFloat64())
	assert.Len(t, s.Events(), res.Stats.Augmentations)
}

func TestTracedSolveKeepsRecorderHooks(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	reg := prometheus.NewRegistry()
	rec, err := telemetry.NewRecorder(reg)
	require.NoError(t, err)

	src := mustRows(t, [][]float64{{4, 1, 3}, {2, 0, 5}, {3, 2, 2}})
	res, err := telemetry.TracedSolve(context.Background(), tp, lap.StrategyDense, src, true, rec.Options()...)
	require.NoError(t, err)
	require.Positive(t, res.Stats.Augmentations)

	families, err := reg.Gather()
	require.NoError(t, err)
	var samples uint64
	for _, mf := range families {
		if mf.GetName() == "lap_augmenting_path_length" {
			samples = mf.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	assert.Equal(t, uint64(res.Stats.Augmentations), samples)
	assert.Len(t, sr.Ended()[0].Events(), res.Stats.Augmentations)
}

func TestTracedSolveFailure(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	src := mustRows(t, [][]float64{{1, 2}, {math.Inf(1), math.Inf(1)}})
	_, err := telemetry.TracedSolve(context.Background(), tp, lap.StrategySparse, src, false)
	require.ErrorIs(t, err, lap.ErrInfeasible)

	s := sr.Ended()[0]
	assert.Equal(t, codes.Error, s.Status().Code)
	a := attrs(s.Attributes())
	assert.Equal(t, "infeasible", a["lap.status"].AsString())
	assert.Equal(t, []int64{1}, a["lap.blocking_rows"].AsInt64Slice())
	require.Len(t, s.Events(), 1)
	assert.Equal(t, "exception", s.Events()[0].Name)
}

func TestTracedSolveCanceled(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := telemetry.TracedSolve(ctx, tp, lap.StrategyDense, mustRows(t, [][]float64{{1, 2}, {3, 4}}), false)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, lap.StatusCanceled, res.Status)
}

func TestStdoutProvider(t *testing.T) {
	var buf bytes.Buffer
	tp, err := telemetry.NewStdoutProvider(&buf)
	require.NoError(t, err)

	_, err = telemetry.TracedSolve(context.Background(), tp, lap.StrategyDense, mustRows(t, [][]float64{{1}}), false)
	require.NoError(t, err)
	require.NoError(t, tp.Shutdown(context.Background()))
	assert.Contains(t, buf.String(), `"Name": "lap.Solve"`)
}
