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

// RestAPIsClient implements apigw.RestAPIsClient.
type RestAPIsClient struct {
	httpClient *internalhttp.Client
}

// NewRestAPIsClient creates a new REST APIs client.
func NewRestAPIsClient(httpClient *internalhttp.Client) *RestAPIsClient {
	return &RestAPIsClient{
		httpClient: httpClient,
	}
}

// Create implements apigw.RestAPIsClient.Create.
func (c *RestAPIsClient) Create(ctx context.Context, request *apigw.RestAPICreateRequest) (*apigw.RestAPI, error) {
	resp, err := c.httpClient.Post(ctx, "/restapis", request)
	if err != nil {
		return nil, fmt.Errorf("creating REST API: %w", err)
	}

	return decode[apigw.RestAPI](resp, "REST API")
}

// Get implements apigw.RestAPIsClient.Get.
func (c *RestAPIsClient) Get(ctx context.Context, restAPIID string) (*apigw.RestAPI, error) {
	err := requireParams("getting REST API", "restApiId", restAPIID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, buildPath("restapis", restAPIID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting REST API: %w", err)
	}

	return decode[apigw.RestAPI](resp, "REST API")
}

// List implements apigw.RestAPIsClient.List.
func (c *RestAPIsClient) List(ctx context.Context, opts *apigw.ListOptions) (*apigw.Page[apigw.RestAPI], error) {
	resp, err := c.httpClient.Get(ctx, "/restapis", listQuery(opts))
	if err != nil {
		return nil, fmt.Errorf("listing REST APIs: %w", err)
	}

	return decode[apigw.Page[apigw.RestAPI]](resp, "REST APIs list")
}

// Update implements apigw.RestAPIsClient.Update.
func (c *RestAPIsClient) Update(ctx context.Context, restAPIID string, request *apigw.UpdateRequest) (*apigw.RestAPI, error) {
	err := requireParams("updating REST API", "restApiId", restAPIID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, buildPath("restapis", restAPIID), request)
	if err != nil {
		return nil, fmt.Errorf("updating REST API: %w", err)
	}

	return decode[apigw.RestAPI](resp, "REST API")
}

// Delete implements apigw.RestAPIsClient.Delete.
func (c *RestAPIsClient) Delete(ctx context.Context, restAPIID string) error {
	err := requireParams("deleting REST API", "restApiId", restAPIID)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, buildPath("restapis", restAPIID))
	if err != nil {
		return fmt.Errorf("deleting REST API: %w", err)
	}

	return nil
}

// Import implements apigw.RestAPIsClient.Import.
func (c *RestAPIsClient) Import(ctx context.Context, definition []byte, opts *apigw.RestAPIImportOptions) (*apigw.RestAPI, error) {
	if len(definition) == 0 {
		return nil, requireParams("importing REST API", "body", "")
	}

	query := importQuery(opts)
	query.Set("mode", "import")

	resp, err := c.httpClient.Do(ctx, &internalhttp.Request{
		Method:  http.MethodPost,
		Path:    "/restapis",
		Query:   query,
		RawBody: definition,
	})
	if err != nil {
		return nil, fmt.Errorf("importing REST API: %w", err)
	}

	return decode[apigw.RestAPI](resp, "REST API")
}

// Put implements apigw.RestAPIsClient.Put.
func (c *RestAPIsClient) Put(ctx context.Context, restAPIID string, definition []byte, opts *apigw.RestAPIImportOptions) (*apigw.RestAPI, error) {
	err := requireParams("putting REST API", "restApiId", restAPIID)
	if err != nil {
		return nil, err
	}

	if len(definition) == 0 {
		return nil, requireParams("putting REST API", "body", "")
	}

	mode := apigw.ImportModeMerge
	if opts != nil && opts.Mode != "" {
		mode = opts.Mode
	}

	query := importQuery(opts)
	query.Set("mode", string(mode))

	resp, err := c.httpClient.Do(ctx, &internalhttp.Request{
		Method:  http.MethodPut,
		Path:    buildPath("restapis", restAPIID),
		Query:   query,
		RawBody: definition,
	})
	if err != nil {
		return nil, fmt.Errorf("putting REST API: %w", err)
	}

	return decode[apigw.RestAPI](resp, "REST API")
}

func importQuery(opts *apigw.RestAPIImportOptions) url.Values {
	query := url.Values{}
	if opts == nil {
		return query
	}

	if opts.FailOnWarnings {
		query.Set("failonwarnings", strconv.FormatBool(true))
	}

	for key, value := range opts.Parameters {
		query.Set(key, value)
	}

	return query
}
