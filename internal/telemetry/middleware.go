package telemetry

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "titan-api"

// FiberMiddleware starts a server span per request and stores it in the
// user context so services can create child spans.
func FiberMiddleware() fiber.Handler {
	tracer := otel.Tracer(tracerName)

	return func(c *fiber.Ctx) error {
		carrier := propagation.HeaderCarrier{}
		c.Request().Header.VisitAll(func(k, v []byte) {
			carrier.Set(string(k), string(v))
		})
		ctx := otel.GetTextMapPropagator().Extract(c.UserContext(), carrier)

		ctx, span := tracer.Start(ctx, fmt.Sprintf("%s %s", c.Method(), c.Path()),
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", c.Method()),
				attribute.String("http.url", c.OriginalURL()),
				attribute.String("http.host", c.Hostname()),
				attribute.String("http.user_agent", c.Get(fiber.HeaderUserAgent)),
				attribute.String("http.client_ip", c.IP()),
			),
		)
		defer span.End()

		c.SetUserContext(ctx)

		if span.SpanContext().HasTraceID() {
			c.Set("X-Trace-ID", span.SpanContext().TraceID().String())
		}

		err := c.Next()

		// the matched route is only known after routing
		span.SetName(fmt.Sprintf("%s %s", c.Method(), c.Route().Path))
		statusCode := c.Response().StatusCode()
		span.SetAttributes(
			attribute.String("http.route", c.Route().Path),
			attribute.Int("http.status_code", statusCode),
			attribute.Int("http.response_content_length", len(c.Response().Body())),
		)

		if statusCode >= 500 {
			span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", statusCode))
		} else {
			span.SetStatus(codes.Ok, "")
		}

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}

		return err
	}
}

// SpanFromContext gets the current span from Fiber context
func SpanFromContext(c *fiber.Ctx) trace.Span {
	return trace.SpanFromContext(c.UserContext())
}

// AddSpanEvent adds an event to the current span
func AddSpanEvent(c *fiber.Ctx, name string, attrs ...attribute.KeyValue) {
	SpanFromContext(c).AddEvent(name, trace.WithAttributes(attrs...))
}

// SetSpanAttribute sets an attribute on the current span
func SetSpanAttribute(c *fiber.Ctx, key string, value string) {
	SpanFromContext(c).SetAttributes(attribute.String(key, value))
}
