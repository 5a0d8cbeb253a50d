package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/apigw/internal/http"
	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

// IntegrationsClient implements apigw.IntegrationsClient.
type IntegrationsClient struct {
	httpClient *http.Client
}

// NewIntegrationsClient creates a new integrations client.
func NewIntegrationsClient(httpClient *http.Client) *IntegrationsClient {
	return &IntegrationsClient{
		httpClient: httpClient,
	}
}

func integrationPath(restAPIID, resourceID, httpMethod string, rest ...string) string {
	return methodPath(restAPIID, resourceID, httpMethod, append([]string{"integration"}, rest...)...)
}

// Put implements apigw.IntegrationsClient.Put.
func (c *IntegrationsClient) Put(ctx context.Context, restAPIID, resourceID, httpMethod string, request *apigw.IntegrationPutRequest) (*apigw.Integration, error) {
	err := requireMethodParams("putting integration", restAPIID, resourceID, httpMethod)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, integrationPath(restAPIID, resourceID, httpMethod), request)
	if err != nil {
		return nil, fmt.Errorf("putting integration: %w", err)
	}

	return decode[apigw.Integration](resp, "integration")
}

// Get implements apigw.IntegrationsClient.Get.
func (c *IntegrationsClient) Get(ctx context.Context, restAPIID, resourceID, httpMethod string) (*apigw.Integration, error) {
	err := requireMethodParams("getting integration", restAPIID, resourceID, httpMethod)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, integrationPath(restAPIID, resourceID, httpMethod), nil)
	if err != nil {
		return nil, fmt.Errorf("getting integration: %w", err)
	}

	return decode[apigw.Integration](resp, "integration")
}

// Update implements apigw.IntegrationsClient.Update.
func (c *IntegrationsClient) Update(ctx context.Context, restAPIID, resourceID, httpMethod string, request *apigw.UpdateRequest) (*apigw.Integration, error) {
	err := requireMethodParams("updating integration", restAPIID, resourceID, httpMethod)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, integrationPath(restAPIID, resourceID, httpMethod), request)
	if err != nil {
		return nil, fmt.Errorf("updating integration: %w", err)
	}

	return decode[apigw.Integration](resp, "integration")
}

// Delete implements apigw.IntegrationsClient.Delete.
func (c *IntegrationsClient) Delete(ctx context.Context, restAPIID, resourceID, httpMethod string) error {
	err := requireMethodParams("deleting integration", restAPIID, resourceID, httpMethod)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, integrationPath(restAPIID, resourceID, httpMethod))
	if err != nil {
		return fmt.Errorf("deleting integration: %w", err)
	}

	return nil
}

// PutResponse implements apigw.IntegrationsClient.PutResponse.
func (c *IntegrationsClient) PutResponse(ctx context.Context, restAPIID, resourceID, httpMethod, statusCode string, request *apigw.IntegrationResponsePutRequest) (*apigw.IntegrationResponse, error) {
	err := requireParams("putting integration response", "restApiId", restAPIID, "resourceId", resourceID, "httpMethod", httpMethod, "statusCode", statusCode)
	if err != nil {
		return nil, err
	}

	if request == nil {
		request = &apigw.IntegrationResponsePutRequest{}
	}

	resp, err := c.httpClient.Put(ctx, integrationPath(restAPIID, resourceID, httpMethod, "responses", statusCode), request)
	if err != nil {
		return nil, fmt.Errorf("putting integration response: %w", err)
	}

	return decode[apigw.IntegrationResponse](resp, "integration response")
}

// GetResponse implements apigw.IntegrationsClient.GetResponse.
func (c *IntegrationsClient) GetResponse(ctx context.Context, restAPIID, resourceID, httpMethod, statusCode string) (*apigw.IntegrationResponse, error) {
	err := requireParams("getting integration response", "restApiId", restAPIID, "resourceId", resourceID, "httpMethod", httpMethod, "statusCode", statusCode)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, integrationPath(restAPIID, resourceID, httpMethod, "responses", statusCode), nil)
	if err != nil {
		return nil, fmt.Errorf("getting integration response: %w", err)
	}

	return decode[apigw.IntegrationResponse](resp, "integration response")
}

// UpdateResponse implements apigw.IntegrationsClient.UpdateResponse.
func (c *IntegrationsClient) UpdateResponse(ctx context.Context, restAPIID, resourceID, httpMethod, statusCode string, request *apigw.UpdateRequest) (*apigw.IntegrationResponse, error) {
	err := requireParams("updating integration response", "restApiId", restAPIID, "resourceId", resourceID, "httpMethod", httpMethod, "statusCode", statusCode)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, integrationPath(restAPIID, resourceID, httpMethod, "responses", statusCode), request)
	if err != nil {
		return nil, fmt.Errorf("updating integration response: %w", err)
	}

	return decode[apigw.IntegrationResponse](resp, "integration response")
}

// DeleteResponse implements apigw.IntegrationsClient.DeleteResponse.
func (c *IntegrationsClient) DeleteResponse(ctx context.Context, restAPIID, resourceID, httpMethod, statusCode string) error {
	err := requireParams("deleting integration response", "restApiId", restAPIID, "resourceId", resourceID, "httpMethod", httpMethod, "statusCode", statusCode)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, integrationPath(restAPIID, resourceID, httpMethod, "responses", statusCode))
	if err != nil {
		return fmt.Errorf("deleting integration response: %w", err)
	}

	return nil
}
