package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	internalhttp "github.com/fivetwenty-io/apigw/internal/http"
	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

// ExportsClient implements apigw.ExportsClient.
type ExportsClient struct {
	httpClient *internalhttp.Client
}

// NewExportsClient creates a new exports client.
func NewExportsClient(httpClient *internalhttp.Client) *ExportsClient {
	return &ExportsClient{
		httpClient: httpClient,
	}
}

// GetExport implements apigw.ExportsClient.GetExport.
func (c *ExportsClient) GetExport(ctx context.Context, restAPIID, stageName, exportType string, opts *apigw.ExportOptions) (*apigw.ExportResult, error) {
	err := requireParams("exporting API", "restApiId", restAPIID, "stageName", stageName, "exportType", exportType)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	headers := map[string]string{}

	if opts != nil {
		for key, value := range opts.Parameters {
			query.Set(key, value)
		}

		if opts.Accepts != "" {
			headers["Accept"] = opts.Accepts
		}
	}

	resp, err := c.httpClient.Do(ctx, &internalhttp.Request{
		Method:  http.MethodGet,
		Path:    buildPath("restapis", restAPIID, "stages", stageName, "exports", exportType),
		Query:   query,
		Headers: headers,
	})
	if err != nil {
		return nil, fmt.Errorf("exporting API: %w", err)
	}

	return exportResult(resp), nil
}

// GetSdk implements apigw.ExportsClient.GetSdk. The body is a zip archive.
func (c *ExportsClient) GetSdk(ctx context.Context, restAPIID, stageName, sdkType string, parameters map[string]string) (*apigw.ExportResult, error) {
	err := requireParams("generating SDK", "restApiId", restAPIID, "stageName", stageName, "sdkType", sdkType)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	for key, value := range parameters {
		query.Set(key, value)
	}

	resp, err := c.httpClient.Get(ctx, buildPath("restapis", restAPIID, "stages", stageName, "sdks", sdkType), query)
	if err != nil {
		return nil, fmt.Errorf("generating SDK: %w", err)
	}

	return exportResult(resp), nil
}

// GetSdkType implements apigw.ExportsClient.GetSdkType.
func (c *ExportsClient) GetSdkType(ctx context.Context, sdkTypeID string) (*apigw.SdkType, error) {
	err := requireParams("getting SDK type", "id", sdkTypeID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, buildPath("sdktypes", sdkTypeID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting SDK type: %w", err)
	}

	return decode[apigw.SdkType](resp, "SDK type")
}

// ListSdkTypes implements apigw.ExportsClient.ListSdkTypes.
func (c *ExportsClient) ListSdkTypes(ctx context.Context, opts *apigw.ListOptions) (*apigw.Page[apigw.SdkType], error) {
	resp, err := c.httpClient.Get(ctx, "/sdktypes", listQuery(opts))
	if err != nil {
		return nil, fmt.Errorf("listing SDK types: %w", err)
	}

	return decode[apigw.Page[apigw.SdkType]](resp, "SDK types list")
}

func exportResult(resp *internalhttp.Response) *apigw.ExportResult {
	return &apigw.ExportResult{
		ContentType:        resp.Headers.Get("Content-Type"),
		ContentDisposition: resp.Headers.Get("Content-Disposition"),
		Body:               resp.Body,
	}
}
