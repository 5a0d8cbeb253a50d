package http

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/apigw/internal/constants"
	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

const payloadHashHeader = "X-Amz-Content-Sha256"

// Client executes API Gateway requests: it marshals bodies, runs the
// interceptor chain, signs every attempt with SigV4, retries throttling and
// server errors, and turns error responses into *apigw.ServiceError.
type Client struct {
	mu      sync.RWMutex
	baseURL string
	used    atomic.Bool

	httpClient   *retryablehttp.Client
	credentials  apigw.CredentialsProvider
	signer       *v4.Signer
	region       string
	logger       apigw.Logger
	debug        bool
	userAgent    string
	interceptors *apigw.InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger apigw.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithRetryConfig sets the retry limits.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithHTTPTimeout bounds each attempt.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.HTTPClient.Timeout = timeout
		}
	}
}

// WithRegion sets the signing region.
func WithRegion(region string) Option {
	return func(c *Client) {
		c.region = region
	}
}

// WithInterceptors sets the interceptor chain.
func WithInterceptors(chain *apigw.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a client for baseURL. A nil credentials provider sends
// requests unsigned.
func NewClient(baseURL string, credentials apigw.CredentialsProvider, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		httpClient:  retryClient,
		credentials: credentials,
		signer:      v4.NewSigner(),
		userAgent:   constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	retryClient.HTTPClient.Transport = &signingTransport{
		base:   retryClient.HTTPClient.Transport,
		client: client,
	}
	retryClient.RequestLogHook = client.logRetry

	return client
}

// BaseURL returns the base URL.
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.baseURL
}

// SetBaseURL changes the base URL. It fails once the client has sent a
// request.
func (c *Client) SetBaseURL(baseURL string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.used.Load() {
		return apigw.ErrEndpointInUse
	}

	c.baseURL = strings.TrimSuffix(baseURL, "/")

	return nil
}

// Request is an API request. Path must already be escaped. RawBody, when set,
// is sent as is instead of the JSON encoding of Body.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	RawBody []byte
	Headers map[string]string
}

// Response is an API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Do executes req. For error statuses it returns both the response and an
// *apigw.ServiceError; local failures are returned as *apigw.ClientError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	c.mu.RLock()
	c.used.Store(true)
	baseURL := c.baseURL
	c.mu.RUnlock()

	body, err := c.encodeBody(req)
	if err != nil {
		return nil, &apigw.ClientError{Op: "marshal request", Err: err}
	}

	intercepted := &apigw.Request{
		Method:  req.Method,
		Path:    req.Path,
		Headers: make(http.Header),
		Body:    body,
	}

	for key, value := range req.Headers {
		intercepted.Headers.Set(key, value)
	}

	if c.interceptors != nil {
		err := c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
		if err != nil {
			return nil, &apigw.ClientError{Op: "prepare request", Err: err}
		}
	}

	// Fail fast instead of letting the transport retry a credentials error.
	if c.credentials != nil {
		if _, err := c.credentials.Credentials(ctx); err != nil {
			return nil, &apigw.ClientError{Op: "retrieve credentials", Err: err}
		}
	}

	httpReq, err := c.newRequest(ctx, baseURL, req, intercepted)
	if err != nil {
		return nil, &apigw.ClientError{Op: "build request", Err: err}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    httpReq.URL.String(),
		})
	}

	start := time.Now()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		clientErr := &apigw.ClientError{Op: "send request", Err: err}
		c.afterResponse(ctx, intercepted, &apigw.Response{Error: clientErr})

		return nil, clientErr
	}

	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		clientErr := &apigw.ClientError{Op: "read response", Err: err}
		c.afterResponse(ctx, intercepted, &apigw.Response{StatusCode: resp.StatusCode, Headers: resp.Header, Error: clientErr})

		return nil, clientErr
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status":     resp.StatusCode,
			"duration":   time.Since(start).String(),
			"request_id": resp.Header.Get("X-Amzn-RequestId"),
		})
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       respBody,
	}

	var svcErr error
	if resp.StatusCode >= http.StatusBadRequest {
		svcErr = apigw.ParseServiceError(resp.StatusCode, resp.Header, respBody)
	}

	c.afterResponse(ctx, intercepted, &apigw.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       respBody,
		Error:      svcErr,
	})

	if svcErr != nil {
		return response, svcErr
	}

	return response, nil
}

// afterResponse runs the response interceptors. Their failures are logged;
// the outcome of the call is already decided.
func (c *Client) afterResponse(ctx context.Context, req *apigw.Request, resp *apigw.Response) {
	if c.interceptors == nil {
		return
	}

	err := c.interceptors.ExecuteResponseInterceptors(ctx, req, resp)
	if err != nil && c.logger != nil {
		c.logger.Warn("Response interceptor failed", map[string]interface{}{
			"path":  req.Path,
			"error": err.Error(),
		})
	}
}

func (c *Client) encodeBody(req *Request) ([]byte, error) {
	if req.RawBody != nil {
		return req.RawBody, nil
	}

	if req.Body == nil {
		return nil, nil
	}

	data, err := json.Marshal(req.Body)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	return data, nil
}

func (c *Client) newRequest(ctx context.Context, baseURL string, req *Request, intercepted *apigw.Request) (*retryablehttp.Request, error) {
	target, err := url.Parse(baseURL + req.Path)
	if err != nil {
		return nil, fmt.Errorf("parsing request URL: %w", err)
	}

	if len(req.Query) > 0 {
		target.RawQuery = req.Query.Encode()
	}

	var body interface{}
	if intercepted.Body != nil {
		body = intercepted.Body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, intercepted.Method, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", constants.ContentTypeJSON)
	httpReq.Header.Set("User-Agent", c.userAgent)

	if intercepted.Body != nil {
		httpReq.Header.Set("Content-Type", constants.ContentTypeJSON)
	}

	for key, values := range intercepted.Headers {
		httpReq.Header.Del(key)

		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	sum := sha256.Sum256(intercepted.Body)
	httpReq.Header.Set(payloadHashHeader, hex.EncodeToString(sum[:]))

	return httpReq, nil
}

func (c *Client) logRetry(_ retryablehttp.Logger, req *http.Request, attempt int) {
	if attempt == 0 || c.logger == nil {
		return
	}

	c.logger.Warn("Retrying request", map[string]interface{}{
		"method":  req.Method,
		"url":     req.URL.String(),
		"attempt": attempt,
	})
}

// signingTransport signs every attempt, so retries carry a fresh date and the
// current credentials.
type signingTransport struct {
	base   http.RoundTripper
	client *Client
}

func (t *signingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.client.credentials == nil {
		return t.base.RoundTrip(req)
	}

	ctx := req.Context()

	creds, err := t.client.credentials.Credentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("retrieving credentials: %w", err)
	}

	signed := req.Clone(ctx)
	if req.Body != nil {
		data, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, fmt.Errorf("reading request body for signing: %w", err)
		}

		_ = req.Body.Close()
		signed.Body = io.NopCloser(bytes.NewReader(data))
	}

	payloadHash := signed.Header.Get(payloadHashHeader)

	err = t.client.signer.SignHTTP(ctx, creds, signed, payloadHash, constants.ServiceName, t.client.region, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("signing request: %w", err)
	}

	return t.base.RoundTrip(signed)
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPut,
		Path:   path,
		Body:   body,
	})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPatch,
		Path:   path,
		Body:   body,
	})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodDelete,
		Path:   path,
	})
}
