package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/apigw/internal/http"
	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

// VpcLinksClient implements apigw.VpcLinksClient.
type VpcLinksClient struct {
	httpClient *http.Client
}

// NewVpcLinksClient creates a new VPC links client.
func NewVpcLinksClient(httpClient *http.Client) *VpcLinksClient {
	return &VpcLinksClient{
		httpClient: httpClient,
	}
}

// Create implements apigw.VpcLinksClient.Create. The link is returned in the
// PENDING state.
func (c *VpcLinksClient) Create(ctx context.Context, request *apigw.VpcLinkCreateRequest) (*apigw.VpcLink, error) {
	resp, err := c.httpClient.Post(ctx, "/vpclinks", request)
	if err != nil {
		return nil, fmt.Errorf("creating VPC link: %w", err)
	}

	return decode[apigw.VpcLink](resp, "VPC link")
}

// Get implements apigw.VpcLinksClient.Get.
func (c *VpcLinksClient) Get(ctx context.Context, vpcLinkID string) (*apigw.VpcLink, error) {
	err := requireParams("getting VPC link", "vpcLinkId", vpcLinkID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, buildPath("vpclinks", vpcLinkID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting VPC link: %w", err)
	}

	return decode[apigw.VpcLink](resp, "VPC link")
}

// List implements apigw.VpcLinksClient.List.
func (c *VpcLinksClient) List(ctx context.Context, opts *apigw.ListOptions) (*apigw.Page[apigw.VpcLink], error) {
	resp, err := c.httpClient.Get(ctx, "/vpclinks", listQuery(opts))
	if err != nil {
		return nil, fmt.Errorf("listing VPC links: %w", err)
	}

	return decode[apigw.Page[apigw.VpcLink]](resp, "VPC links list")
}

// Update implements apigw.VpcLinksClient.Update.
func (c *VpcLinksClient) Update(ctx context.Context, vpcLinkID string, request *apigw.UpdateRequest) (*apigw.VpcLink, error) {
	err := requireParams("updating VPC link", "vpcLinkId", vpcLinkID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, buildPath("vpclinks", vpcLinkID), request)
	if err != nil {
		return nil, fmt.Errorf("updating VPC link: %w", err)
	}

	return decode[apigw.VpcLink](resp, "VPC link")
}

// Delete implements apigw.VpcLinksClient.Delete.
func (c *VpcLinksClient) Delete(ctx context.Context, vpcLinkID string) error {
	err := requireParams("deleting VPC link", "vpcLinkId", vpcLinkID)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, buildPath("vpclinks", vpcLinkID))
	if err != nil {
		return fmt.Errorf("deleting VPC link: %w", err)
	}

	return nil
}
