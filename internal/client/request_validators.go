package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/apigw/internal/http"
	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

// RequestValidatorsClient implements apigw.RequestValidatorsClient.
type RequestValidatorsClient struct {
	httpClient *http.Client
}

// NewRequestValidatorsClient creates a new request validators client.
func NewRequestValidatorsClient(httpClient *http.Client) *RequestValidatorsClient {
	return &RequestValidatorsClient{
		httpClient: httpClient,
	}
}

// Create implements apigw.RequestValidatorsClient.Create.
func (c *RequestValidatorsClient) Create(ctx context.Context, restAPIID string, request *apigw.RequestValidatorCreateRequest) (*apigw.RequestValidator, error) {
	err := requireParams("creating request validator", "restApiId", restAPIID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, buildPath("restapis", restAPIID, "requestvalidators"), request)
	if err != nil {
		return nil, fmt.Errorf("creating request validator: %w", err)
	}

	return decode[apigw.RequestValidator](resp, "request validator")
}

// Get implements apigw.RequestValidatorsClient.Get.
func (c *RequestValidatorsClient) Get(ctx context.Context, restAPIID, validatorID string) (*apigw.RequestValidator, error) {
	err := requireParams("getting request validator", "restApiId", restAPIID, "requestValidatorId", validatorID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, buildPath("restapis", restAPIID, "requestvalidators", validatorID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting request validator: %w", err)
	}

	return decode[apigw.RequestValidator](resp, "request validator")
}

// List implements apigw.RequestValidatorsClient.List.
func (c *RequestValidatorsClient) List(ctx context.Context, restAPIID string, opts *apigw.ListOptions) (*apigw.Page[apigw.RequestValidator], error) {
	err := requireParams("listing request validators", "restApiId", restAPIID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, buildPath("restapis", restAPIID, "requestvalidators"), listQuery(opts))
	if err != nil {
		return nil, fmt.Errorf("listing request validators: %w", err)
	}

	return decode[apigw.Page[apigw.RequestValidator]](resp, "request validators list")
}

// Update implements apigw.RequestValidatorsClient.Update.
func (c *RequestValidatorsClient) Update(ctx context.Context, restAPIID, validatorID string, request *apigw.UpdateRequest) (*apigw.RequestValidator, error) {
	err := requireParams("updating request validator", "restApiId", restAPIID, "requestValidatorId", validatorID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, buildPath("restapis", restAPIID, "requestvalidators", validatorID), request)
	if err != nil {
		return nil, fmt.Errorf("updating request validator: %w", err)
	}

	return decode[apigw.RequestValidator](resp, "request validator")
}

// Delete implements apigw.RequestValidatorsClient.Delete.
func (c *RequestValidatorsClient) Delete(ctx context.Context, restAPIID, validatorID string) error {
	err := requireParams("deleting request validator", "restApiId", restAPIID, "requestValidatorId", validatorID)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, buildPath("restapis", restAPIID, "requestvalidators", validatorID))
	if err != nil {
		return fmt.Errorf("deleting request validator: %w", err)
	}

	return nil
}
