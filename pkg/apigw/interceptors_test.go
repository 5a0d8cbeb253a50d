package apigw_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/fivetwenty-io/apigw/pkg/apigw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogger records log calls.
type captureLogger struct {
	entries []logEntry
}

type logEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

func (l *captureLogger) Debug(msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, logEntry{"debug", msg, fields})
}

func (l *captureLogger) Info(msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, logEntry{"info", msg, fields})
}

func (l *captureLogger) Warn(msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, logEntry{"warn", msg, fields})
}

func (l *captureLogger) Error(msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, logEntry{"error", msg, fields})
}

func TestInterceptorChain_RequestInterceptors(t *testing.T) {
	t.Parallel()

	chain := apigw.NewInterceptorChain()
	ctx := context.Background()

	var executionOrder []string

	chain.AddRequestInterceptor(func(ctx context.Context, req *apigw.Request) error {
		executionOrder = append(executionOrder, "first")

		return nil
	})

	chain.AddRequestInterceptor(func(ctx context.Context, req *apigw.Request) error {
		executionOrder = append(executionOrder, "second")

		return nil
	})

	req := &apigw.Request{Method: "GET", Path: "/restapis"}

	err := chain.ExecuteRequestInterceptors(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, executionOrder)
}

func TestInterceptorChain_StopsOnError(t *testing.T) {
	t.Parallel()

	chain := apigw.NewInterceptorChain()
	errStop := errors.New("stop")
	called := false

	chain.AddRequestInterceptor(func(ctx context.Context, req *apigw.Request) error {
		return errStop
	})
	chain.AddRequestInterceptor(func(ctx context.Context, req *apigw.Request) error {
		called = true

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &apigw.Request{})
	require.ErrorIs(t, err, errStop)
	assert.False(t, called)
}

func TestInterceptorChain_ResponseInterceptors(t *testing.T) {
	t.Parallel()

	chain := apigw.NewInterceptorChain()

	var executionOrder []string

	chain.AddResponseInterceptor(func(ctx context.Context, req *apigw.Request, resp *apigw.Response) error {
		executionOrder = append(executionOrder, "first")

		return nil
	})

	chain.AddResponseInterceptor(func(ctx context.Context, req *apigw.Request, resp *apigw.Response) error {
		executionOrder = append(executionOrder, "second")

		return nil
	})

	err := chain.ExecuteResponseInterceptors(context.Background(), &apigw.Request{Method: "GET"}, &apigw.Response{StatusCode: 200})
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, executionOrder)
}

func TestHeaderInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := apigw.HeaderInterceptor(map[string]string{
		"X-Custom-Header": "custom-value",
	})

	req := &apigw.Request{Method: "GET", Path: "/account"}

	err := interceptor(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "custom-value", req.Headers.Get("X-Custom-Header"))
}

func TestLoggingInterceptors(t *testing.T) {
	t.Parallel()

	logger := &captureLogger{}
	ctx := context.Background()
	req := &apigw.Request{Method: "DELETE", Path: "/restapis/abc"}

	require.NoError(t, apigw.LoggingInterceptor(logger)(ctx, req))
	require.NoError(t, apigw.LoggingResponseInterceptor(logger)(ctx, req, &apigw.Response{StatusCode: 202}))
	require.NoError(t, apigw.LoggingResponseInterceptor(logger)(ctx, req, &apigw.Response{StatusCode: 404, Error: apigw.ErrNotFound}))

	require.Len(t, logger.entries, 3)
	assert.Equal(t, "API Request", logger.entries[0].msg)
	assert.Equal(t, "API Response", logger.entries[1].msg)
	assert.Equal(t, 202, logger.entries[1].fields["status_code"])
	assert.Equal(t, "error", logger.entries[2].level)
}

func TestRateLimitInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := apigw.RateLimitInterceptor(2)
	ctx := context.Background()

	// The burst is served immediately.
	require.NoError(t, interceptor(ctx, &apigw.Request{}))
	require.NoError(t, interceptor(ctx, &apigw.Request{}))

	canceled, cancel := context.WithCancel(ctx)
	cancel()

	err := interceptor(canceled, &apigw.Request{})
	require.Error(t, err)
}

func TestMetricsInterceptors(t *testing.T) {
	t.Parallel()

	collector := apigw.NewMetricsCollector()
	ctx := context.Background()

	var notified []string

	collector.SetOnChange(func(endpoint string, metrics apigw.Metrics) {
		notified = append(notified, endpoint)
	})

	reqInterceptor := apigw.MetricsRequestInterceptor(collector)
	respInterceptor := apigw.MetricsResponseInterceptor(collector)

	req := &apigw.Request{Method: "GET", Path: "/restapis"}
	require.NoError(t, reqInterceptor(ctx, req))
	time.Sleep(2 * time.Millisecond)
	require.NoError(t, respInterceptor(ctx, req, &apigw.Response{StatusCode: 200}))

	req2 := &apigw.Request{Method: "GET", Path: "/restapis"}
	require.NoError(t, reqInterceptor(ctx, req2))
	require.NoError(t, respInterceptor(ctx, req2, &apigw.Response{StatusCode: 500}))

	metrics := collector.GetMetrics("GET /restapis")
	require.NotNil(t, metrics)
	assert.Equal(t, int64(2), metrics.TotalRequests)
	assert.Equal(t, int64(1), metrics.TotalErrors)
	assert.Positive(t, metrics.TotalLatency)
	assert.Equal(t, []string{"GET /restapis", "GET /restapis"}, notified)
	assert.Nil(t, collector.GetMetrics("POST /restapis"))
}

func TestCircuitBreaker(t *testing.T) {
	t.Parallel()

	breaker := apigw.NewCircuitBreaker(&apigw.CircuitBreakerConfig{
		Threshold:        2,
		Timeout:          50 * time.Millisecond,
		SuccessThreshold: 1,
	})

	ctx := context.Background()
	req := &apigw.Request{Method: "GET", Path: "/restapis"}
	check := apigw.CircuitBreakerRequestInterceptor(breaker)
	record := apigw.CircuitBreakerResponseInterceptor(breaker)

	require.NoError(t, check(ctx, req))
	require.NoError(t, record(ctx, req, &apigw.Response{StatusCode: http.StatusServiceUnavailable}))
	assert.Equal(t, "closed", breaker.State())

	require.NoError(t, record(ctx, req, &apigw.Response{StatusCode: http.StatusTooManyRequests}))
	assert.Equal(t, "open", breaker.State())

	err := check(ctx, req)
	require.ErrorIs(t, err, apigw.ErrCircuitBreakerOpen)

	time.Sleep(60 * time.Millisecond)

	require.NoError(t, check(ctx, req))
	assert.Equal(t, "half-open", breaker.State())

	require.NoError(t, record(ctx, req, &apigw.Response{StatusCode: http.StatusOK}))
	assert.Equal(t, "closed", breaker.State())
}

func TestCircuitBreaker_IgnoresClientErrors(t *testing.T) {
	t.Parallel()

	breaker := apigw.NewCircuitBreaker(&apigw.CircuitBreakerConfig{
		Threshold:        2,
		Timeout:          time.Minute,
		SuccessThreshold: 1,
	})

	ctx := context.Background()
	req := &apigw.Request{Method: "DELETE", Path: "/apikeys/stale"}
	check := apigw.CircuitBreakerRequestInterceptor(breaker)
	record := apigw.CircuitBreakerResponseInterceptor(breaker)

	for _, status := range []int{http.StatusNotFound, http.StatusConflict, http.StatusBadRequest, http.StatusNotFound, http.StatusNotFound} {
		svcErr := apigw.ParseServiceError(status, http.Header{}, nil)
		require.NoError(t, record(ctx, req, &apigw.Response{StatusCode: status, Error: svcErr}))
	}

	assert.Equal(t, "closed", breaker.State())
	require.NoError(t, check(ctx, req))

	transport := &apigw.ClientError{Op: "send request", Err: errors.New("connection refused")}
	require.NoError(t, record(ctx, req, &apigw.Response{Error: transport}))
	require.NoError(t, record(ctx, req, &apigw.Response{Error: transport}))
	assert.Equal(t, "open", breaker.State())
}
