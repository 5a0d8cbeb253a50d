package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Service identity.
const (
	// ServiceName is the SigV4 signing name of the control plane.
	ServiceName = "apigateway"

	// EndpointTemplate is formatted with the region to build the default endpoint.
	EndpointTemplate = "https://apigateway.%s.amazonaws.com"

	// DefaultUserAgent is sent when the caller does not set one.
	DefaultUserAgent = "apigw-go/1.0.0"

	// ContentTypeJSON is the content type of request and response bodies.
	ContentTypeJSON = "application/json"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait between retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// Concurrency limits.
const (
	// DefaultConcurrencyLimit bounds concurrent batch operations.
	DefaultConcurrencyLimit = 3

	// DefaultRequestsPerSecond is the client-side rate used by the CLI.
	DefaultRequestsPerSecond = 10
)

// Circuit breaker settings.
const (
	// CircuitBreakerThreshold is the number of failures before opening.
	CircuitBreakerThreshold = 5

	// CircuitBreakerTimeout is how long the breaker stays open.
	CircuitBreakerTimeout = 30 * time.Second

	// CircuitBreakerSuccessThreshold is the number of successes to close.
	CircuitBreakerSuccessThreshold = 2

	// StatusClosed is the closed circuit breaker state.
	StatusClosed = "closed"

	// StatusOpen is the open circuit breaker state.
	StatusOpen = "open"

	// StatusHalfOpen is the half-open circuit breaker state.
	StatusHalfOpen = "half-open"
)

// Pagination.
const (
	// StandardPageSize is the page size used by the CLI.
	StandardPageSize = 100

	// MaxPages caps FetchAllPages when no limit is given.
	MaxPages = 1000
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Display.
const (
	// MaxDescriptionDisplayLength truncates descriptions in tables.
	MaxDescriptionDisplayLength = 40

	// KeyValueSplitParts is the number of parts when splitting key=value strings.
	KeyValueSplitParts = 2
)
