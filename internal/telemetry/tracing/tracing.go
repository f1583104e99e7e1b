package tracing

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/honeycombio/honeycomb-opentelemetry-go"
	"github.com/honeycombio/otel-config-go/otelconfig"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var GlobalTracer = otel.Tracer("portfolio-frontend")

type HoneycombParams struct {
	Enabled     bool
	APIKey      string
	ServiceName string
}

// HoneycombSetup configures the OpenTelemetry SDK through the honeycomb distro.
// When tracing is disabled the returned shutdown func is a no-op.
func HoneycombSetup(params HoneycombParams, rdb *redis.Client) (func(), error) {
	if !params.Enabled {
		log.Debugln("honeycomb tracing disabled")
		return func() {}, nil
	}
	if params.APIKey == "" {
		return nil, fmt.Errorf("honeycomb tracing enabled, but api key not set")
	}

	// copies baggage entries onto every new span
	bsp := honeycomb.NewBaggageSpanProcessor()

	otelShutdown, err := otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithServiceName(params.ServiceName),
		otelconfig.WithExporterEndpoint("https://api.honeycomb.io:443"),
		otelconfig.WithHeaders(map[string]string{
			"x-honeycomb-team": params.APIKey,
		}),
		otelconfig.WithSpanProcessor(bsp),
	)
	if err != nil {
		return nil, fmt.Errorf("configure open telemetry: %w", err)
	}

	if rdb != nil {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	log.Infof("honeycomb tracing enabled for service [%s]", params.ServiceName)
	return otelShutdown, nil
}

// EndSpan records err on the span, if set, and ends it.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	}
	span.End()
}

// StartSpan starts a span on the global tracer.
func StartSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return GlobalTracer.Start(ctx, name)
}
