package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/apigw/internal/http"
	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

// MethodsClient implements apigw.MethodsClient.
type MethodsClient struct {
	httpClient *http.Client
}

// NewMethodsClient creates a new methods client.
func NewMethodsClient(httpClient *http.Client) *MethodsClient {
	return &MethodsClient{
		httpClient: httpClient,
	}
}

func methodPath(restAPIID, resourceID, httpMethod string, rest ...string) string {
	segments := append([]string{"restapis", restAPIID, "resources", resourceID, "methods", httpMethod}, rest...)

	return buildPath(segments...)
}

func requireMethodParams(op, restAPIID, resourceID, httpMethod string) error {
	return requireParams(op, "restApiId", restAPIID, "resourceId", resourceID, "httpMethod", httpMethod)
}

// Put implements apigw.MethodsClient.Put.
func (c *MethodsClient) Put(ctx context.Context, restAPIID, resourceID, httpMethod string, request *apigw.MethodPutRequest) (*apigw.Method, error) {
	err := requireMethodParams("putting method", restAPIID, resourceID, httpMethod)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, methodPath(restAPIID, resourceID, httpMethod), request)
	if err != nil {
		return nil, fmt.Errorf("putting method: %w", err)
	}

	return decode[apigw.Method](resp, "method")
}

// Get implements apigw.MethodsClient.Get.
func (c *MethodsClient) Get(ctx context.Context, restAPIID, resourceID, httpMethod string) (*apigw.Method, error) {
	err := requireMethodParams("getting method", restAPIID, resourceID, httpMethod)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, methodPath(restAPIID, resourceID, httpMethod), nil)
	if err != nil {
		return nil, fmt.Errorf("getting method: %w", err)
	}

	return decode[apigw.Method](resp, "method")
}

// Update implements apigw.MethodsClient.Update.
func (c *MethodsClient) Update(ctx context.Context, restAPIID, resourceID, httpMethod string, request *apigw.UpdateRequest) (*apigw.Method, error) {
	err := requireMethodParams("updating method", restAPIID, resourceID, httpMethod)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, methodPath(restAPIID, resourceID, httpMethod), request)
	if err != nil {
		return nil, fmt.Errorf("updating method: %w", err)
	}

	return decode[apigw.Method](resp, "method")
}

// Delete implements apigw.MethodsClient.Delete.
func (c *MethodsClient) Delete(ctx context.Context, restAPIID, resourceID, httpMethod string) error {
	err := requireMethodParams("deleting method", restAPIID, resourceID, httpMethod)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, methodPath(restAPIID, resourceID, httpMethod))
	if err != nil {
		return fmt.Errorf("deleting method: %w", err)
	}

	return nil
}

// TestInvoke implements apigw.MethodsClient.TestInvoke.
func (c *MethodsClient) TestInvoke(ctx context.Context, restAPIID, resourceID, httpMethod string, request *apigw.TestInvokeMethodRequest) (*apigw.TestInvokeMethodResult, error) {
	err := requireMethodParams("test-invoking method", restAPIID, resourceID, httpMethod)
	if err != nil {
		return nil, err
	}

	if request == nil {
		request = &apigw.TestInvokeMethodRequest{}
	}

	resp, err := c.httpClient.Post(ctx, methodPath(restAPIID, resourceID, httpMethod), request)
	if err != nil {
		return nil, fmt.Errorf("test-invoking method: %w", err)
	}

	return decode[apigw.TestInvokeMethodResult](resp, "test invoke result")
}

// PutResponse implements apigw.MethodsClient.PutResponse.
func (c *MethodsClient) PutResponse(ctx context.Context, restAPIID, resourceID, httpMethod, statusCode string, request *apigw.MethodResponsePutRequest) (*apigw.MethodResponse, error) {
	err := requireParams("putting method response", "restApiId", restAPIID, "resourceId", resourceID, "httpMethod", httpMethod, "statusCode", statusCode)
	if err != nil {
		return nil, err
	}

	if request == nil {
		request = &apigw.MethodResponsePutRequest{}
	}

	resp, err := c.httpClient.Put(ctx, methodPath(restAPIID, resourceID, httpMethod, "responses", statusCode), request)
	if err != nil {
		return nil, fmt.Errorf("putting method response: %w", err)
	}

	return decode[apigw.MethodResponse](resp, "method response")
}

// GetResponse implements apigw.MethodsClient.GetResponse.
func (c *MethodsClient) GetResponse(ctx context.Context, restAPIID, resourceID, httpMethod, statusCode string) (*apigw.MethodResponse, error) {
	err := requireParams("getting method response", "restApiId", restAPIID, "resourceId", resourceID, "httpMethod", httpMethod, "statusCode", statusCode)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, methodPath(restAPIID, resourceID, httpMethod, "responses", statusCode), nil)
	if err != nil {
		return nil, fmt.Errorf("getting method response: %w", err)
	}

	return decode[apigw.MethodResponse](resp, "method response")
}

// UpdateResponse implements apigw.MethodsClient.UpdateResponse.
func (c *MethodsClient) UpdateResponse(ctx context.Context, restAPIID, resourceID, httpMethod, statusCode string, request *apigw.UpdateRequest) (*apigw.MethodResponse, error) {
	err := requireParams("updating method response", "restApiId", restAPIID, "resourceId", resourceID, "httpMethod", httpMethod, "statusCode", statusCode)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, methodPath(restAPIID, resourceID, httpMethod, "responses", statusCode), request)
	if err != nil {
		return nil, fmt.Errorf("updating method response: %w", err)
	}

	return decode[apigw.MethodResponse](resp, "method response")
}

// DeleteResponse implements apigw.MethodsClient.DeleteResponse.
func (c *MethodsClient) DeleteResponse(ctx context.Context, restAPIID, resourceID, httpMethod, statusCode string) error {
	err := requireParams("deleting method response", "restApiId", restAPIID, "resourceId", resourceID, "httpMethod", httpMethod, "statusCode", statusCode)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, methodPath(restAPIID, resourceID, httpMethod, "responses", statusCode))
	if err != nil {
		return fmt.Errorf("deleting method response: %w", err)
	}

	return nil
}
