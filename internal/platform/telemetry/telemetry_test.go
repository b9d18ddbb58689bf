package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/ore-roller/internal/platform/telemetry"
)

func TestInitTracer_Stdout(t *testing.T) {
	ctx := context.Background()

	tp, err := telemetry.InitTracer(ctx, "ore-roller-test", telemetry.ExporterStdout, "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = tp.Shutdown(ctx) })

	assert.NotEmpty(t, otel.GetTextMapPropagator().Fields(), "global propagator has no fields")
}

func TestInitProviders_Errors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	_, err := telemetry.InitTracer(ctx, "svc", "jaeger", "")
	require.ErrorIs(t, err, telemetry.ErrUnsupportedExporter)

	_, err = telemetry.InitMeter(ctx, "svc", "jaeger", "")
	require.ErrorIs(t, err, telemetry.ErrUnsupportedExporter)

	_, err = telemetry.InitTracer(ctx, "svc", telemetry.ExporterOTLP, "")
	require.Error(t, err)

	_, err = telemetry.InitMeter(ctx, "svc", telemetry.ExporterOTLP, "")
	require.Error(t, err)
}

func TestInitMeter_OTLP(t *testing.T) {
	ctx := context.Background()

	mp, err := telemetry.InitMeter(ctx, "svc", telemetry.ExporterOTLP, "http://localhost:4318")
	require.NoError(t, err)
	// No collector runs in unit tests, so the final flush may fail.
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })
}

func TestMetrics_RecordRoll(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	metrics, err := telemetry.NewMetrics(mp)
	require.NoError(t, err)

	metrics.RecordRoll(ctx, "hook", 10, []int{2, 3})
	metrics.RecordRoll(ctx, "api", 4, nil)
	metrics.RecordParseError(ctx)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	sums := map[string]int64{}
	var widthCount uint64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Sum[int64]:
				for _, dp := range data.DataPoints {
					sums[m.Name] += dp.Value
				}
			case metricdata.Histogram[int64]:
				for _, dp := range data.DataPoints {
					widthCount += dp.Count
				}
			}
		}
	}

	assert.Equal(t, int64(2), sums["ore.rolls.total"])
	assert.Equal(t, int64(14), sums["ore.dice.rolled"])
	assert.Equal(t, int64(1), sums["ore.command.parse_errors"])
	assert.Equal(t, uint64(2), widthCount)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	t.Parallel()

	var metrics *telemetry.Metrics
	assert.NotPanics(t, func() {
		metrics.RecordRoll(context.Background(), "hook", 3, []int{3})
		metrics.RecordParseError(context.Background())
	})
}

func TestErrUnsupportedExporter_Wrapped(t *testing.T) {
	t.Parallel()

	_, err := telemetry.InitMeter(context.Background(), "svc", "zipkin", "")
	assert.ErrorIs(t, err, telemetry.ErrUnsupportedExporter)
	assert.Contains(t, err.Error(), "zipkin")
}
