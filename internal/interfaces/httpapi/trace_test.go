package httpapi

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

// recordSpans points apiTracer at an in-memory recorder for one test.
func recordSpans(t *testing.T) (*tracetest.SpanRecorder, trace.Tracer) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := apiTracer
	apiTracer = provider.Tracer("httpapi-test")
	t.Cleanup(func() {
		apiTracer = prev
		_ = provider.Shutdown(context.Background())
	})
	return recorder, provider.Tracer("parent")
}

func TestShouldCreateHTTPAPISpan(t *testing.T) {
	assert.True(t, shouldCreateHTTPAPISpan("httpapi.Handler.GetPlayerProfile"))
	assert.False(t, shouldCreateHTTPAPISpan("httpapi.RequestLogging"))
	assert.False(t, shouldCreateHTTPAPISpan("httpapi.writeError"))
}

func TestStartSpan_HandlerSpanCarriesAttributes(t *testing.T) {
	recorder, parentTracer := recordSpans(t)

	ctx, parent := parentTracer.Start(context.Background(), "GET /v1/players/{playerID}")
	_, span := startSpan(ctx, "httpapi.Handler.GetPlayerProfile", attribute.String("player.id", "TM-00001"))
	span.End()
	parent.End()

	var handler sdktrace.ReadOnlySpan
	for _, s := range recorder.Ended() {
		if s.Name() == "httpapi.Handler.GetPlayerProfile" {
			handler = s
		}
	}
	require.NotNil(t, handler)
	assert.Equal(t, parent.SpanContext().SpanID(), handler.Parent().SpanID())
	assert.Contains(t, handler.Attributes(), attribute.String("player.id", "TM-00001"))
}

func TestStartSpan_HelpersReuseRequestSpan(t *testing.T) {
	recorder, parentTracer := recordSpans(t)

	ctx, parent := parentTracer.Start(context.Background(), "GET /v1/leagues")
	helperCtx, helper := startSpan(ctx, "httpapi.writeSuccess")
	helper.End()

	assert.Equal(t, parent.SpanContext(), trace.SpanFromContext(helperCtx).SpanContext())
	assert.Empty(t, recorder.Ended())
	parent.End()
	assert.Len(t, recorder.Ended(), 1)
}

func TestStartSpan_NoParentNoSpan(t *testing.T) {
	recorder, _ := recordSpans(t)

	_, span := startSpan(context.Background(), "httpapi.Handler.Healthz")
	span.End()

	assert.False(t, span.IsRecording())
	assert.Empty(t, recorder.Ended())
}

func TestMarkSpanFailed_OnlyServerErrors(t *testing.T) {
	recorder, parentTracer := recordSpans(t)

	ctx, clientErr := parentTracer.Start(context.Background(), "client")
	markSpanFailed(ctx, http.StatusNotFound, errors.New("player not found"))
	clientErr.End()

	ctx, serverErr := parentTracer.Start(context.Background(), "server")
	markSpanFailed(ctx, http.StatusServiceUnavailable, errors.New("store unavailable"))
	serverErr.End()

	ended := recorder.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, codes.Unset, ended[0].Status().Code)
	assert.Equal(t, codes.Error, ended[1].Status().Code)
	assert.Len(t, ended[1].Events(), 1)
}

func TestShouldTraceRequest(t *testing.T) {
	for _, path := range []string{"/healthz", "/health", "/livez", "/readyz", " /healthz "} {
		assert.False(t, shouldTraceRequest(path), path)
	}
	for _, path := range []string{"/v1/players", "/v1/leagues", "/", "/docs"} {
		assert.True(t, shouldTraceRequest(path), path)
	}
}
