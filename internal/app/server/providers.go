package server

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.27.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/eslsoft/coursecatalog/internal/adapter/transport"
	"github.com/eslsoft/coursecatalog/internal/config"
	"github.com/eslsoft/coursecatalog/internal/core"
	"github.com/eslsoft/coursecatalog/internal/logger"
)

const serviceName = "coursecatalog"

// NewConfig loads the runtime configuration for dependency injection.
func NewConfig() (config.Config, error) {
	return config.Load()
}

// NewLogger builds the process logger and flushes it on cleanup.
func NewLogger(cfg config.Config) (*logger.Logger, func(), error) {
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	return log, log.Sync, nil
}

// NewRedisClient connects to redis when REDIS_ADDR is set. A nil client
// disables rate limiting.
func NewRedisClient(ctx context.Context, cfg config.Config, log *logger.Logger) (*redis.Client, func(), error) {
	if cfg.RedisAddr == "" {
		log.Info("redis not configured, comment rate limiting disabled")
		return nil, func() {}, nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("connect to redis at %s: %w", cfg.RedisAddr, err)
	}
	log.Info("connected to redis", "addr", cfg.RedisAddr)

	return client, func() { _ = client.Close() }, nil
}

// NewTracerProvider installs an OpenTelemetry tracer provider when tracing is
// enabled. Spans go to OTLP/HTTP when an endpoint is configured and to stdout
// otherwise. It returns a nil provider when tracing is off.
func NewTracerProvider(ctx context.Context, cfg config.Config, log *logger.Logger) (trace.TracerProvider, func(), error) {
	if !cfg.OtelEnabled {
		return nil, func() {}, nil
	}

	exporter, err := newSpanExporter(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("init trace exporter: %w", err)
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		log.Warn("otel resource init failed (continuing)", "error", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	log.Info("otel tracing initialized", "endpoint", cfg.OtelEndpoint)

	cleanup := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Warn("otel shutdown failed", "error", err)
		}
	}
	return tp, cleanup, nil
}

func newSpanExporter(ctx context.Context, cfg config.Config) (sdktrace.SpanExporter, error) {
	if cfg.OtelEndpoint != "" {
		return otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(cfg.OtelEndpoint))
	}
	return stdouttrace.New(stdouttrace.WithPrettyPrint())
}

// NewAuthenticator verifies identity provider tokens with the shared secret.
func NewAuthenticator(cfg config.Config, identities core.IdentityService, log *logger.Logger) *transport.Authenticator {
	return transport.NewAuthenticator(cfg.JWTSecret, identities, log)
}
