package httpapi

// CORS configuration (opt-in). If disabled, no CORS middleware is added.
var (
	corsEnabled        bool
	corsAllowedOrigins []string
	corsAllowedMethods []string
	corsAllowedHeaders []string
)

// SetCORSOptions configures CORS behavior for the HTTP server.
func SetCORSOptions(enabled bool, origins, methods, headers []string) {
	corsEnabled = enabled
	corsAllowedOrigins = append([]string(nil), origins...)
	corsAllowedMethods = append([]string(nil), methods...)
	corsAllowedHeaders = append([]string(nil), headers...)
}

// metricsEnabled controls whether requests are instrumented and /metrics is mounted.
var metricsEnabled = true

// SetMetricsEnabled toggles Prometheus instrumentation for muxes built afterwards.
func SetMetricsEnabled(on bool) { metricsEnabled = on }
