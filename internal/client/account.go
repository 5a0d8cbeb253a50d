package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/apigw/internal/http"
	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

// AccountClient implements apigw.AccountClient.
type AccountClient struct {
	httpClient *http.Client
}

// NewAccountClient creates a new account client.
func NewAccountClient(httpClient *http.Client) *AccountClient {
	return &AccountClient{
		httpClient: httpClient,
	}
}

// Get implements apigw.AccountClient.Get.
func (c *AccountClient) Get(ctx context.Context) (*apigw.Account, error) {
	resp, err := c.httpClient.Get(ctx, "/account", nil)
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}

	return decode[apigw.Account](resp, "account")
}

// Update implements apigw.AccountClient.Update.
func (c *AccountClient) Update(ctx context.Context, request *apigw.UpdateRequest) (*apigw.Account, error) {
	resp, err := c.httpClient.Patch(ctx, "/account", request)
	if err != nil {
		return nil, fmt.Errorf("updating account: %w", err)
	}

	return decode[apigw.Account](resp, "account")
}
