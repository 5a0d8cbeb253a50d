package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/apigw/internal/http"
	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

// ResourcesClient implements apigw.ResourcesClient.
type ResourcesClient struct {
	httpClient *http.Client
}

// NewResourcesClient creates a new resources client.
func NewResourcesClient(httpClient *http.Client) *ResourcesClient {
	return &ResourcesClient{
		httpClient: httpClient,
	}
}

// Create implements apigw.ResourcesClient.Create.
func (c *ResourcesClient) Create(ctx context.Context, restAPIID, parentID string, request *apigw.ResourceCreateRequest) (*apigw.Resource, error) {
	err := requireParams("creating resource", "restApiId", restAPIID, "parentId", parentID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, buildPath("restapis", restAPIID, "resources", parentID), request)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	return decode[apigw.Resource](resp, "resource")
}

// Get implements apigw.ResourcesClient.Get.
func (c *ResourcesClient) Get(ctx context.Context, restAPIID, resourceID string, embed ...string) (*apigw.Resource, error) {
	err := requireParams("getting resource", "restApiId", restAPIID, "resourceId", resourceID)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	for _, e := range embed {
		query.Add("embed", e)
	}

	resp, err := c.httpClient.Get(ctx, buildPath("restapis", restAPIID, "resources", resourceID), query)
	if err != nil {
		return nil, fmt.Errorf("getting resource: %w", err)
	}

	return decode[apigw.Resource](resp, "resource")
}

// List implements apigw.ResourcesClient.List.
func (c *ResourcesClient) List(ctx context.Context, restAPIID string, opts *apigw.ResourceListOptions) (*apigw.Page[apigw.Resource], error) {
	err := requireParams("listing resources", "restApiId", restAPIID)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	if opts != nil {
		query = opts.ToValues()
		for _, e := range opts.Embed {
			query.Add("embed", e)
		}
	}

	resp, err := c.httpClient.Get(ctx, buildPath("restapis", restAPIID, "resources"), query)
	if err != nil {
		return nil, fmt.Errorf("listing resources: %w", err)
	}

	return decode[apigw.Page[apigw.Resource]](resp, "resources list")
}

// Update implements apigw.ResourcesClient.Update.
func (c *ResourcesClient) Update(ctx context.Context, restAPIID, resourceID string, request *apigw.UpdateRequest) (*apigw.Resource, error) {
	err := requireParams("updating resource", "restApiId", restAPIID, "resourceId", resourceID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, buildPath("restapis", restAPIID, "resources", resourceID), request)
	if err != nil {
		return nil, fmt.Errorf("updating resource: %w", err)
	}

	return decode[apigw.Resource](resp, "resource")
}

// Delete implements apigw.ResourcesClient.Delete.
func (c *ResourcesClient) Delete(ctx context.Context, restAPIID, resourceID string) error {
	err := requireParams("deleting resource", "restApiId", restAPIID, "resourceId", resourceID)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, buildPath("restapis", restAPIID, "resources", resourceID))
	if err != nil {
		return fmt.Errorf("deleting resource: %w", err)
	}

	return nil
}
