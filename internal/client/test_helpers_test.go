package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/fivetwenty-io/apigw/internal/http"
)

// NewTestClient creates an unsigned client for baseURL that never retries.
func NewTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL, nil, internalhttp.WithRetryConfig(0, 0, 0))

	return NewWithHTTPClient(httpClient, "us-east-1", nil)
}

// TestOperation describes one call and the request it must produce.
type TestOperation struct {
	Name string
	// Method and Path are the expected HTTP method and escaped path.
	Method string
	Path   string
	// Query lists the query parameters that must be present.
	Query url.Values
	// Body, when set, must be JSON-equal to the request body.
	Body string
	// RawBody, when set, must equal the request body byte for byte.
	RawBody string
	// Header lists request headers that must be present.
	Header map[string]string

	StatusCode      int
	Response        interface{}
	ResponseHeaders map[string]string

	Call  func(ctx context.Context, c *Client) (interface{}, error)
	Check func(t *testing.T, result interface{})
}

// RunOperationTests serves each operation's canned response and verifies
// the request the client sent.
func RunOperationTests(t *testing.T, tests []TestOperation) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			var hits atomic.Int32

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				hits.Add(1)

				assert.Equal(t, testCase.Method, request.Method)
				assert.Equal(t, testCase.Path, request.URL.EscapedPath())

				query := request.URL.Query()
				for key, values := range testCase.Query {
					assert.Equal(t, values, query[key], "query %s", key)
				}

				for key, value := range testCase.Header {
					assert.Equal(t, value, request.Header.Get(key), "header %s", key)
				}

				body, err := io.ReadAll(request.Body)
				assert.NoError(t, err)

				if testCase.Body != "" {
					assert.JSONEq(t, testCase.Body, string(body))
				}

				if testCase.RawBody != "" {
					assert.Equal(t, testCase.RawBody, string(body))
				}

				for key, value := range testCase.ResponseHeaders {
					writer.Header().Set(key, value)
				}

				if writer.Header().Get("Content-Type") == "" {
					writer.Header().Set("Content-Type", "application/json")
				}

				status := testCase.StatusCode
				if status == 0 {
					status = http.StatusOK
				}

				writer.WriteHeader(status)

				switch response := testCase.Response.(type) {
				case nil:
				case string:
					_, _ = writer.Write([]byte(response))
				default:
					_ = json.NewEncoder(writer).Encode(response)
				}
			}))
			defer server.Close()

			result, err := testCase.Call(context.Background(), NewTestClient(server.URL))
			require.NoError(t, err)
			assert.Equal(t, int32(1), hits.Load())

			if testCase.Check != nil {
				testCase.Check(t, result)
			}
		})
	}
}

// TestMissingParam is a call that must fail locally.
type TestMissingParam struct {
	Name  string
	Param string
	Call  func(ctx context.Context, c *Client) error
}

// RunMissingParamTests checks that each call fails with
// ErrMissingRequiredParameter without reaching the server.
func RunMissingParamTests(t *testing.T, tests []TestMissingParam) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			var hits atomic.Int32

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				hits.Add(1)
			}))
			defer server.Close()

			err := testCase.Call(context.Background(), NewTestClient(server.URL))
			requireMissingParam(t, err, testCase.Param)
			assert.Equal(t, int32(0), hits.Load())
		})
	}
}
