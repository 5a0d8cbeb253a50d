package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/apigw/internal/http"
	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

// DeploymentsClient implements apigw.DeploymentsClient.
type DeploymentsClient struct {
	httpClient *http.Client
}

// NewDeploymentsClient creates a new deployments client.
func NewDeploymentsClient(httpClient *http.Client) *DeploymentsClient {
	return &DeploymentsClient{
		httpClient: httpClient,
	}
}

// Create implements apigw.DeploymentsClient.Create.
func (c *DeploymentsClient) Create(ctx context.Context, restAPIID string, request *apigw.DeploymentCreateRequest) (*apigw.Deployment, error) {
	err := requireParams("creating deployment", "restApiId", restAPIID)
	if err != nil {
		return nil, err
	}

	if request == nil {
		request = &apigw.DeploymentCreateRequest{}
	}

	resp, err := c.httpClient.Post(ctx, buildPath("restapis", restAPIID, "deployments"), request)
	if err != nil {
		return nil, fmt.Errorf("creating deployment: %w", err)
	}

	return decode[apigw.Deployment](resp, "deployment")
}

// Get implements apigw.DeploymentsClient.Get.
func (c *DeploymentsClient) Get(ctx context.Context, restAPIID, deploymentID string, embed ...string) (*apigw.Deployment, error) {
	err := requireParams("getting deployment", "restApiId", restAPIID, "deploymentId", deploymentID)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	for _, e := range embed {
		query.Add("embed", e)
	}

	resp, err := c.httpClient.Get(ctx, buildPath("restapis", restAPIID, "deployments", deploymentID), query)
	if err != nil {
		return nil, fmt.Errorf("getting deployment: %w", err)
	}

	return decode[apigw.Deployment](resp, "deployment")
}

// List implements apigw.DeploymentsClient.List.
func (c *DeploymentsClient) List(ctx context.Context, restAPIID string, opts *apigw.ListOptions) (*apigw.Page[apigw.Deployment], error) {
	err := requireParams("listing deployments", "restApiId", restAPIID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, buildPath("restapis", restAPIID, "deployments"), listQuery(opts))
	if err != nil {
		return nil, fmt.Errorf("listing deployments: %w", err)
	}

	return decode[apigw.Page[apigw.Deployment]](resp, "deployments list")
}

// Update implements apigw.DeploymentsClient.Update.
func (c *DeploymentsClient) Update(ctx context.Context, restAPIID, deploymentID string, request *apigw.UpdateRequest) (*apigw.Deployment, error) {
	err := requireParams("updating deployment", "restApiId", restAPIID, "deploymentId", deploymentID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, buildPath("restapis", restAPIID, "deployments", deploymentID), request)
	if err != nil {
		return nil, fmt.Errorf("updating deployment: %w", err)
	}

	return decode[apigw.Deployment](resp, "deployment")
}

// Delete implements apigw.DeploymentsClient.Delete.
func (c *DeploymentsClient) Delete(ctx context.Context, restAPIID, deploymentID string) error {
	err := requireParams("deleting deployment", "restApiId", restAPIID, "deploymentId", deploymentID)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, buildPath("restapis", restAPIID, "deployments", deploymentID))
	if err != nil {
		return fmt.Errorf("deleting deployment: %w", err)
	}

	return nil
}
