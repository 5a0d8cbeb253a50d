package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	internalhttp "github.com/fivetwenty-io/apigw/internal/http"
	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

// APIKeysClient implements apigw.APIKeysClient.
type APIKeysClient struct {
	httpClient *internalhttp.Client
}

// NewAPIKeysClient creates a new API keys client.
func NewAPIKeysClient(httpClient *internalhttp.Client) *APIKeysClient {
	return &APIKeysClient{
		httpClient: httpClient,
	}
}

// Create implements apigw.APIKeysClient.Create.
func (c *APIKeysClient) Create(ctx context.Context, request *apigw.APIKeyCreateRequest) (*apigw.APIKey, error) {
	resp, err := c.httpClient.Post(ctx, "/apikeys", request)
	if err != nil {
		return nil, fmt.Errorf("creating API key: %w", err)
	}

	return decode[apigw.APIKey](resp, "API key")
}

// Get implements apigw.APIKeysClient.Get. The key value is only returned
// when includeValue is set.
func (c *APIKeysClient) Get(ctx context.Context, apiKeyID string, includeValue bool) (*apigw.APIKey, error) {
	err := requireParams("getting API key", "apiKey", apiKeyID)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	if includeValue {
		query.Set("includeValue", strconv.FormatBool(includeValue))
	}

	resp, err := c.httpClient.Get(ctx, buildPath("apikeys", apiKeyID), query)
	if err != nil {
		return nil, fmt.Errorf("getting API key: %w", err)
	}

	return decode[apigw.APIKey](resp, "API key")
}

// List implements apigw.APIKeysClient.List.
func (c *APIKeysClient) List(ctx context.Context, opts *apigw.APIKeyListOptions) (*apigw.Page[apigw.APIKey], error) {
	query := url.Values{}
	if opts != nil {
		query = opts.ToValues()
		setIfNotEmpty(query, "name", opts.NameQuery)
		setIfNotEmpty(query, "customerId", opts.CustomerID)

		if opts.IncludeValues {
			query.Set("includeValues", strconv.FormatBool(opts.IncludeValues))
		}
	}

	resp, err := c.httpClient.Get(ctx, "/apikeys", query)
	if err != nil {
		return nil, fmt.Errorf("listing API keys: %w", err)
	}

	return decode[apigw.Page[apigw.APIKey]](resp, "API keys list")
}

// Update implements apigw.APIKeysClient.Update.
func (c *APIKeysClient) Update(ctx context.Context, apiKeyID string, request *apigw.UpdateRequest) (*apigw.APIKey, error) {
	err := requireParams("updating API key", "apiKey", apiKeyID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, buildPath("apikeys", apiKeyID), request)
	if err != nil {
		return nil, fmt.Errorf("updating API key: %w", err)
	}

	return decode[apigw.APIKey](resp, "API key")
}

// Delete implements apigw.APIKeysClient.Delete.
func (c *APIKeysClient) Delete(ctx context.Context, apiKeyID string) error {
	err := requireParams("deleting API key", "apiKey", apiKeyID)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, buildPath("apikeys", apiKeyID))
	if err != nil {
		return fmt.Errorf("deleting API key: %w", err)
	}

	return nil
}

// Import implements apigw.APIKeysClient.Import.
func (c *APIKeysClient) Import(ctx context.Context, csv []byte, failOnWarnings bool) (*apigw.APIKeyIDs, error) {
	if len(csv) == 0 {
		return nil, requireParams("importing API keys", "body", "")
	}

	query := url.Values{}
	query.Set("mode", "import")
	query.Set("format", "csv")

	if failOnWarnings {
		query.Set("failonwarnings", strconv.FormatBool(failOnWarnings))
	}

	resp, err := c.httpClient.Do(ctx, &internalhttp.Request{
		Method:  http.MethodPost,
		Path:    "/apikeys",
		Query:   query,
		RawBody: csv,
	})
	if err != nil {
		return nil, fmt.Errorf("importing API keys: %w", err)
	}

	return decode[apigw.APIKeyIDs](resp, "API key import result")
}
