package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/apigw/internal/http"
	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

// GatewayResponsesClient implements apigw.GatewayResponsesClient.
type GatewayResponsesClient struct {
	httpClient *http.Client
}

// NewGatewayResponsesClient creates a new gateway responses client.
func NewGatewayResponsesClient(httpClient *http.Client) *GatewayResponsesClient {
	return &GatewayResponsesClient{
		httpClient: httpClient,
	}
}

// Put implements apigw.GatewayResponsesClient.Put.
func (c *GatewayResponsesClient) Put(ctx context.Context, restAPIID, responseType string, request *apigw.GatewayResponsePutRequest) (*apigw.GatewayResponse, error) {
	err := requireParams("putting gateway response", "restApiId", restAPIID, "responseType", responseType)
	if err != nil {
		return nil, err
	}

	if request == nil {
		request = &apigw.GatewayResponsePutRequest{}
	}

	resp, err := c.httpClient.Put(ctx, buildPath("restapis", restAPIID, "gatewayresponses", responseType), request)
	if err != nil {
		return nil, fmt.Errorf("putting gateway response: %w", err)
	}

	return decode[apigw.GatewayResponse](resp, "gateway response")
}

// Get implements apigw.GatewayResponsesClient.Get.
func (c *GatewayResponsesClient) Get(ctx context.Context, restAPIID, responseType string) (*apigw.GatewayResponse, error) {
	err := requireParams("getting gateway response", "restApiId", restAPIID, "responseType", responseType)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, buildPath("restapis", restAPIID, "gatewayresponses", responseType), nil)
	if err != nil {
		return nil, fmt.Errorf("getting gateway response: %w", err)
	}

	return decode[apigw.GatewayResponse](resp, "gateway response")
}

// List implements apigw.GatewayResponsesClient.List. Responses that were
// never customized are listed with their defaults.
func (c *GatewayResponsesClient) List(ctx context.Context, restAPIID string, opts *apigw.ListOptions) (*apigw.Page[apigw.GatewayResponse], error) {
	err := requireParams("listing gateway responses", "restApiId", restAPIID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, buildPath("restapis", restAPIID, "gatewayresponses"), listQuery(opts))
	if err != nil {
		return nil, fmt.Errorf("listing gateway responses: %w", err)
	}

	return decode[apigw.Page[apigw.GatewayResponse]](resp, "gateway responses list")
}

// Update implements apigw.GatewayResponsesClient.Update.
func (c *GatewayResponsesClient) Update(ctx context.Context, restAPIID, responseType string, request *apigw.UpdateRequest) (*apigw.GatewayResponse, error) {
	err := requireParams("updating gateway response", "restApiId", restAPIID, "responseType", responseType)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, buildPath("restapis", restAPIID, "gatewayresponses", responseType), request)
	if err != nil {
		return nil, fmt.Errorf("updating gateway response: %w", err)
	}

	return decode[apigw.GatewayResponse](resp, "gateway response")
}

// Delete implements apigw.GatewayResponsesClient.Delete. The response reverts
// to its default.
func (c *GatewayResponsesClient) Delete(ctx context.Context, restAPIID, responseType string) error {
	err := requireParams("deleting gateway response", "restApiId", restAPIID, "responseType", responseType)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, buildPath("restapis", restAPIID, "gatewayresponses", responseType))
	if err != nil {
		return fmt.Errorf("deleting gateway response: %w", err)
	}

	return nil
}
