package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/apigw/internal/http"
	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

// ModelsClient implements apigw.ModelsClient.
type ModelsClient struct {
	httpClient *http.Client
}

// NewModelsClient creates a new models client.
func NewModelsClient(httpClient *http.Client) *ModelsClient {
	return &ModelsClient{
		httpClient: httpClient,
	}
}

// Create implements apigw.ModelsClient.Create.
func (c *ModelsClient) Create(ctx context.Context, restAPIID string, request *apigw.ModelCreateRequest) (*apigw.Model, error) {
	err := requireParams("creating model", "restApiId", restAPIID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, buildPath("restapis", restAPIID, "models"), request)
	if err != nil {
		return nil, fmt.Errorf("creating model: %w", err)
	}

	return decode[apigw.Model](resp, "model")
}

// Get implements apigw.ModelsClient.Get. With flatten, referenced models are
// inlined into the returned schema.
func (c *ModelsClient) Get(ctx context.Context, restAPIID, modelName string, flatten bool) (*apigw.Model, error) {
	err := requireParams("getting model", "restApiId", restAPIID, "modelName", modelName)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	if flatten {
		query.Set("flatten", strconv.FormatBool(flatten))
	}

	resp, err := c.httpClient.Get(ctx, buildPath("restapis", restAPIID, "models", modelName), query)
	if err != nil {
		return nil, fmt.Errorf("getting model: %w", err)
	}

	return decode[apigw.Model](resp, "model")
}

// List implements apigw.ModelsClient.List.
func (c *ModelsClient) List(ctx context.Context, restAPIID string, opts *apigw.ListOptions) (*apigw.Page[apigw.Model], error) {
	err := requireParams("listing models", "restApiId", restAPIID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, buildPath("restapis", restAPIID, "models"), listQuery(opts))
	if err != nil {
		return nil, fmt.Errorf("listing models: %w", err)
	}

	return decode[apigw.Page[apigw.Model]](resp, "models list")
}

// Update implements apigw.ModelsClient.Update.
func (c *ModelsClient) Update(ctx context.Context, restAPIID, modelName string, request *apigw.UpdateRequest) (*apigw.Model, error) {
	err := requireParams("updating model", "restApiId", restAPIID, "modelName", modelName)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, buildPath("restapis", restAPIID, "models", modelName), request)
	if err != nil {
		return nil, fmt.Errorf("updating model: %w", err)
	}

	return decode[apigw.Model](resp, "model")
}

// Delete implements apigw.ModelsClient.Delete.
func (c *ModelsClient) Delete(ctx context.Context, restAPIID, modelName string) error {
	err := requireParams("deleting model", "restApiId", restAPIID, "modelName", modelName)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, buildPath("restapis", restAPIID, "models", modelName))
	if err != nil {
		return fmt.Errorf("deleting model: %w", err)
	}

	return nil
}

// GetTemplate implements apigw.ModelsClient.GetTemplate.
func (c *ModelsClient) GetTemplate(ctx context.Context, restAPIID, modelName string) (*apigw.Template, error) {
	err := requireParams("getting model template", "restApiId", restAPIID, "modelName", modelName)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, buildPath("restapis", restAPIID, "models", modelName, "default_template"), nil)
	if err != nil {
		return nil, fmt.Errorf("getting model template: %w", err)
	}

	return decode[apigw.Template](resp, "model template")
}
