package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/apigw/internal/http"
	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

// DomainNamesClient implements apigw.DomainNamesClient.
type DomainNamesClient struct {
	httpClient *http.Client
}

// NewDomainNamesClient creates a new domain names client.
func NewDomainNamesClient(httpClient *http.Client) *DomainNamesClient {
	return &DomainNamesClient{
		httpClient: httpClient,
	}
}

// Create implements apigw.DomainNamesClient.Create.
func (c *DomainNamesClient) Create(ctx context.Context, request *apigw.DomainNameCreateRequest) (*apigw.DomainName, error) {
	resp, err := c.httpClient.Post(ctx, "/domainnames", request)
	if err != nil {
		return nil, fmt.Errorf("creating domain name: %w", err)
	}

	return decode[apigw.DomainName](resp, "domain name")
}

// Get implements apigw.DomainNamesClient.Get.
func (c *DomainNamesClient) Get(ctx context.Context, domainName string) (*apigw.DomainName, error) {
	err := requireParams("getting domain name", "domainName", domainName)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, buildPath("domainnames", domainName), nil)
	if err != nil {
		return nil, fmt.Errorf("getting domain name: %w", err)
	}

	return decode[apigw.DomainName](resp, "domain name")
}

// List implements apigw.DomainNamesClient.List.
func (c *DomainNamesClient) List(ctx context.Context, opts *apigw.ListOptions) (*apigw.Page[apigw.DomainName], error) {
	resp, err := c.httpClient.Get(ctx, "/domainnames", listQuery(opts))
	if err != nil {
		return nil, fmt.Errorf("listing domain names: %w", err)
	}

	return decode[apigw.Page[apigw.DomainName]](resp, "domain names list")
}

// Update implements apigw.DomainNamesClient.Update.
func (c *DomainNamesClient) Update(ctx context.Context, domainName string, request *apigw.UpdateRequest) (*apigw.DomainName, error) {
	err := requireParams("updating domain name", "domainName", domainName)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, buildPath("domainnames", domainName), request)
	if err != nil {
		return nil, fmt.Errorf("updating domain name: %w", err)
	}

	return decode[apigw.DomainName](resp, "domain name")
}

// Delete implements apigw.DomainNamesClient.Delete.
func (c *DomainNamesClient) Delete(ctx context.Context, domainName string) error {
	err := requireParams("deleting domain name", "domainName", domainName)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, buildPath("domainnames", domainName))
	if err != nil {
		return fmt.Errorf("deleting domain name: %w", err)
	}

	return nil
}

// basePathSegment maps the root mapping to its path placeholder.
func basePathSegment(basePath string) string {
	if basePath == "" {
		return apigw.EmptyBasePath
	}

	return basePath
}

// CreateBasePathMapping implements apigw.DomainNamesClient.CreateBasePathMapping.
func (c *DomainNamesClient) CreateBasePathMapping(ctx context.Context, domainName string, request *apigw.BasePathMappingCreateRequest) (*apigw.BasePathMapping, error) {
	err := requireParams("creating base path mapping", "domainName", domainName)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, buildPath("domainnames", domainName, "basepathmappings"), request)
	if err != nil {
		return nil, fmt.Errorf("creating base path mapping: %w", err)
	}

	return decode[apigw.BasePathMapping](resp, "base path mapping")
}

// GetBasePathMapping implements apigw.DomainNamesClient.GetBasePathMapping.
// An empty basePath addresses the root mapping.
func (c *DomainNamesClient) GetBasePathMapping(ctx context.Context, domainName, basePath string) (*apigw.BasePathMapping, error) {
	err := requireParams("getting base path mapping", "domainName", domainName)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, buildPath("domainnames", domainName, "basepathmappings", basePathSegment(basePath)), nil)
	if err != nil {
		return nil, fmt.Errorf("getting base path mapping: %w", err)
	}

	return decode[apigw.BasePathMapping](resp, "base path mapping")
}

// ListBasePathMappings implements apigw.DomainNamesClient.ListBasePathMappings.
func (c *DomainNamesClient) ListBasePathMappings(ctx context.Context, domainName string, opts *apigw.ListOptions) (*apigw.Page[apigw.BasePathMapping], error) {
	err := requireParams("listing base path mappings", "domainName", domainName)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, buildPath("domainnames", domainName, "basepathmappings"), listQuery(opts))
	if err != nil {
		return nil, fmt.Errorf("listing base path mappings: %w", err)
	}

	return decode[apigw.Page[apigw.BasePathMapping]](resp, "base path mappings list")
}

// UpdateBasePathMapping implements apigw.DomainNamesClient.UpdateBasePathMapping.
func (c *DomainNamesClient) UpdateBasePathMapping(ctx context.Context, domainName, basePath string, request *apigw.UpdateRequest) (*apigw.BasePathMapping, error) {
	err := requireParams("updating base path mapping", "domainName", domainName)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, buildPath("domainnames", domainName, "basepathmappings", basePathSegment(basePath)), request)
	if err != nil {
		return nil, fmt.Errorf("updating base path mapping: %w", err)
	}

	return decode[apigw.BasePathMapping](resp, "base path mapping")
}

// DeleteBasePathMapping implements apigw.DomainNamesClient.DeleteBasePathMapping.
func (c *DomainNamesClient) DeleteBasePathMapping(ctx context.Context, domainName, basePath string) error {
	err := requireParams("deleting base path mapping", "domainName", domainName)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, buildPath("domainnames", domainName, "basepathmappings", basePathSegment(basePath)))
	if err != nil {
		return fmt.Errorf("deleting base path mapping: %w", err)
	}

	return nil
}
