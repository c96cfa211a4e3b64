// README: Shared failure policy for outbound provider adapters (normalize or degrade).
package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var (
	// ErrNoResults marks a provider answer that carried nothing usable.
	ErrNoResults = errors.New("no results")
	// ErrFallback marks a substitute result built after upstream failures.
	// Degrade keeps the result and counts it as a fallback.
	ErrFallback = errors.New("fallback result")
)

// Error describes a failed call to an external provider.
type Error struct {
	Provider string
	Query    string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Provider, e.Query, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap tags err with the provider and query it came from. A nil err stays nil.
func Wrap(providerName, query string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Provider: providerName, Query: query, Err: err}
}

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "travel_agent",
	Name:      "provider_requests_total",
	Help:      "Provider adapter calls partitioned by outcome.",
}, []string{"provider", "outcome"})

// Degrade runs fetch and converts any error or panic into the empty sentinel.
// The failure is logged with its provider and query and never reaches the caller.
func Degrade[T any](ctx context.Context, logger *zap.Logger, name, query string, empty T, fetch func(context.Context) (T, error)) (result T) {
	ctx, span := otel.Tracer("provider").Start(ctx, name, trace.WithAttributes(
		attribute.String("provider.query", query),
	))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			logger.Error("provider adapter panicked",
				zap.String("provider", name),
				zap.String("query", query),
				zap.Any("panic", r),
			)
			span.SetStatus(codes.Error, "panic")
			requestsTotal.WithLabelValues(name, "panic").Inc()
			result = empty
		}
	}()

	out, err := fetch(ctx)
	if errors.Is(err, ErrFallback) {
		logger.Warn("provider served fallback result",
			zap.String("provider", name),
			zap.String("query", query),
			zap.Error(err),
		)
		span.RecordError(err)
		span.SetStatus(codes.Error, "fallback")
		requestsTotal.WithLabelValues(name, "fallback").Inc()
		return out
	}
	if err != nil {
		outcome := "error"
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			outcome = "timeout"
		}
		logger.Error("provider request failed",
			zap.String("provider", name),
			zap.String("query", query),
			zap.String("outcome", outcome),
			zap.Error(err),
		)
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		requestsTotal.WithLabelValues(name, outcome).Inc()
		return empty
	}

	requestsTotal.WithLabelValues(name, "ok").Inc()
	return out
}
