package telemetry

import (
	"net/http"

	"github.com/honeycombio/honeycomb-opentelemetry-go"
	"github.com/honeycombio/otel-config-go/otelconfig"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const ServiceName = "controle-financeiro"

// Setup installs the OpenTelemetry SDK through the Honeycomb distro.
// Exporter settings (endpoint, API key, sampling) come from the standard
// OTEL_* / HONEYCOMB_* environment variables.
func Setup() (shutdown func(), err error) {
	bsp := honeycomb.NewBaggageSpanProcessor()
	return otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithServiceName(ServiceName),
		otelconfig.WithSpanProcessor(bsp),
	)
}

// WrapHandler adds a server span around every request.
func WrapHandler(h http.Handler) http.Handler {
	return otelhttp.NewHandler(h, ServiceName)
}
