package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/apigw/internal/http"
	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

// AuthorizersClient implements apigw.AuthorizersClient.
type AuthorizersClient struct {
	httpClient *http.Client
}

// NewAuthorizersClient creates a new authorizers client.
func NewAuthorizersClient(httpClient *http.Client) *AuthorizersClient {
	return &AuthorizersClient{
		httpClient: httpClient,
	}
}

// Create implements apigw.AuthorizersClient.Create.
func (c *AuthorizersClient) Create(ctx context.Context, restAPIID string, request *apigw.AuthorizerCreateRequest) (*apigw.Authorizer, error) {
	err := requireParams("creating authorizer", "restApiId", restAPIID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, buildPath("restapis", restAPIID, "authorizers"), request)
	if err != nil {
		return nil, fmt.Errorf("creating authorizer: %w", err)
	}

	return decode[apigw.Authorizer](resp, "authorizer")
}

// Get implements apigw.AuthorizersClient.Get.
func (c *AuthorizersClient) Get(ctx context.Context, restAPIID, authorizerID string) (*apigw.Authorizer, error) {
	err := requireParams("getting authorizer", "restApiId", restAPIID, "authorizerId", authorizerID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, buildPath("restapis", restAPIID, "authorizers", authorizerID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting authorizer: %w", err)
	}

	return decode[apigw.Authorizer](resp, "authorizer")
}

// List implements apigw.AuthorizersClient.List.
func (c *AuthorizersClient) List(ctx context.Context, restAPIID string, opts *apigw.ListOptions) (*apigw.Page[apigw.Authorizer], error) {
	err := requireParams("listing authorizers", "restApiId", restAPIID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, buildPath("restapis", restAPIID, "authorizers"), listQuery(opts))
	if err != nil {
		return nil, fmt.Errorf("listing authorizers: %w", err)
	}

	return decode[apigw.Page[apigw.Authorizer]](resp, "authorizers list")
}

// Update implements apigw.AuthorizersClient.Update.
func (c *AuthorizersClient) Update(ctx context.Context, restAPIID, authorizerID string, request *apigw.UpdateRequest) (*apigw.Authorizer, error) {
	err := requireParams("updating authorizer", "restApiId", restAPIID, "authorizerId", authorizerID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, buildPath("restapis", restAPIID, "authorizers", authorizerID), request)
	if err != nil {
		return nil, fmt.Errorf("updating authorizer: %w", err)
	}

	return decode[apigw.Authorizer](resp, "authorizer")
}

// Delete implements apigw.AuthorizersClient.Delete.
func (c *AuthorizersClient) Delete(ctx context.Context, restAPIID, authorizerID string) error {
	err := requireParams("deleting authorizer", "restApiId", restAPIID, "authorizerId", authorizerID)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, buildPath("restapis", restAPIID, "authorizers", authorizerID))
	if err != nil {
		return fmt.Errorf("deleting authorizer: %w", err)
	}

	return nil
}

// TestInvoke implements apigw.AuthorizersClient.TestInvoke.
func (c *AuthorizersClient) TestInvoke(ctx context.Context, restAPIID, authorizerID string, request *apigw.TestInvokeAuthorizerRequest) (*apigw.TestInvokeAuthorizerResult, error) {
	err := requireParams("test-invoking authorizer", "restApiId", restAPIID, "authorizerId", authorizerID)
	if err != nil {
		return nil, err
	}

	if request == nil {
		request = &apigw.TestInvokeAuthorizerRequest{}
	}

	resp, err := c.httpClient.Post(ctx, buildPath("restapis", restAPIID, "authorizers", authorizerID), request)
	if err != nil {
		return nil, fmt.Errorf("test-invoking authorizer: %w", err)
	}

	return decode[apigw.TestInvokeAuthorizerResult](resp, "test invoke result")
}
