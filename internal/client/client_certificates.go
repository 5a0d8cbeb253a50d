package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/apigw/internal/http"
	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

// ClientCertificatesClient implements apigw.ClientCertificatesClient.
type ClientCertificatesClient struct {
	httpClient *http.Client
}

// NewClientCertificatesClient creates a new client certificates client.
func NewClientCertificatesClient(httpClient *http.Client) *ClientCertificatesClient {
	return &ClientCertificatesClient{
		httpClient: httpClient,
	}
}

// Generate implements apigw.ClientCertificatesClient.Generate.
func (c *ClientCertificatesClient) Generate(ctx context.Context, request *apigw.ClientCertificateGenerateRequest) (*apigw.ClientCertificate, error) {
	if request == nil {
		request = &apigw.ClientCertificateGenerateRequest{}
	}

	resp, err := c.httpClient.Post(ctx, "/clientcertificates", request)
	if err != nil {
		return nil, fmt.Errorf("generating client certificate: %w", err)
	}

	return decode[apigw.ClientCertificate](resp, "client certificate")
}

// Get implements apigw.ClientCertificatesClient.Get.
func (c *ClientCertificatesClient) Get(ctx context.Context, certificateID string) (*apigw.ClientCertificate, error) {
	err := requireParams("getting client certificate", "clientCertificateId", certificateID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, buildPath("clientcertificates", certificateID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting client certificate: %w", err)
	}

	return decode[apigw.ClientCertificate](resp, "client certificate")
}

// List implements apigw.ClientCertificatesClient.List.
func (c *ClientCertificatesClient) List(ctx context.Context, opts *apigw.ListOptions) (*apigw.Page[apigw.ClientCertificate], error) {
	resp, err := c.httpClient.Get(ctx, "/clientcertificates", listQuery(opts))
	if err != nil {
		return nil, fmt.Errorf("listing client certificates: %w", err)
	}

	return decode[apigw.Page[apigw.ClientCertificate]](resp, "client certificates list")
}

// Update implements apigw.ClientCertificatesClient.Update.
func (c *ClientCertificatesClient) Update(ctx context.Context, certificateID string, request *apigw.UpdateRequest) (*apigw.ClientCertificate, error) {
	err := requireParams("updating client certificate", "clientCertificateId", certificateID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, buildPath("clientcertificates", certificateID), request)
	if err != nil {
		return nil, fmt.Errorf("updating client certificate: %w", err)
	}

	return decode[apigw.ClientCertificate](resp, "client certificate")
}

// Delete implements apigw.ClientCertificatesClient.Delete.
func (c *ClientCertificatesClient) Delete(ctx context.Context, certificateID string) error {
	err := requireParams("deleting client certificate", "clientCertificateId", certificateID)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, buildPath("clientcertificates", certificateID))
	if err != nil {
		return fmt.Errorf("deleting client certificate: %w", err)
	}

	return nil
}
