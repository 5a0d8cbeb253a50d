package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/apigw/internal/http"
	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

// UsagePlansClient implements apigw.UsagePlansClient.
type UsagePlansClient struct {
	httpClient *http.Client
}

// NewUsagePlansClient creates a new usage plans client.
func NewUsagePlansClient(httpClient *http.Client) *UsagePlansClient {
	return &UsagePlansClient{
		httpClient: httpClient,
	}
}

// Create implements apigw.UsagePlansClient.Create.
func (c *UsagePlansClient) Create(ctx context.Context, request *apigw.UsagePlanCreateRequest) (*apigw.UsagePlan, error) {
	resp, err := c.httpClient.Post(ctx, "/usageplans", request)
	if err != nil {
		return nil, fmt.Errorf("creating usage plan: %w", err)
	}

	return decode[apigw.UsagePlan](resp, "usage plan")
}

// Get implements apigw.UsagePlansClient.Get.
func (c *UsagePlansClient) Get(ctx context.Context, usagePlanID string) (*apigw.UsagePlan, error) {
	err := requireParams("getting usage plan", "usagePlanId", usagePlanID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, buildPath("usageplans", usagePlanID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting usage plan: %w", err)
	}

	return decode[apigw.UsagePlan](resp, "usage plan")
}

// List implements apigw.UsagePlansClient.List.
func (c *UsagePlansClient) List(ctx context.Context, opts *apigw.UsagePlanListOptions) (*apigw.Page[apigw.UsagePlan], error) {
	query := url.Values{}
	if opts != nil {
		query = opts.ToValues()
		setIfNotEmpty(query, "keyId", opts.KeyID)
	}

	resp, err := c.httpClient.Get(ctx, "/usageplans", query)
	if err != nil {
		return nil, fmt.Errorf("listing usage plans: %w", err)
	}

	return decode[apigw.Page[apigw.UsagePlan]](resp, "usage plans list")
}

// Update implements apigw.UsagePlansClient.Update.
func (c *UsagePlansClient) Update(ctx context.Context, usagePlanID string, request *apigw.UpdateRequest) (*apigw.UsagePlan, error) {
	err := requireParams("updating usage plan", "usagePlanId", usagePlanID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, buildPath("usageplans", usagePlanID), request)
	if err != nil {
		return nil, fmt.Errorf("updating usage plan: %w", err)
	}

	return decode[apigw.UsagePlan](resp, "usage plan")
}

// Delete implements apigw.UsagePlansClient.Delete.
func (c *UsagePlansClient) Delete(ctx context.Context, usagePlanID string) error {
	err := requireParams("deleting usage plan", "usagePlanId", usagePlanID)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, buildPath("usageplans", usagePlanID))
	if err != nil {
		return fmt.Errorf("deleting usage plan: %w", err)
	}

	return nil
}

// CreateKey implements apigw.UsagePlansClient.CreateKey. An empty key type
// defaults to API_KEY.
func (c *UsagePlansClient) CreateKey(ctx context.Context, usagePlanID string, request *apigw.UsagePlanKeyCreateRequest) (*apigw.UsagePlanKey, error) {
	err := requireParams("creating usage plan key", "usagePlanId", usagePlanID)
	if err != nil {
		return nil, err
	}

	body := apigw.UsagePlanKeyCreateRequest{KeyType: apigw.KeyTypeAPIKey}
	if request != nil {
		body.KeyID = request.KeyID
		if request.KeyType != "" {
			body.KeyType = request.KeyType
		}
	}

	resp, err := c.httpClient.Post(ctx, buildPath("usageplans", usagePlanID, "keys"), &body)
	if err != nil {
		return nil, fmt.Errorf("creating usage plan key: %w", err)
	}

	return decode[apigw.UsagePlanKey](resp, "usage plan key")
}

// GetKey implements apigw.UsagePlansClient.GetKey.
func (c *UsagePlansClient) GetKey(ctx context.Context, usagePlanID, keyID string) (*apigw.UsagePlanKey, error) {
	err := requireParams("getting usage plan key", "usagePlanId", usagePlanID, "keyId", keyID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, buildPath("usageplans", usagePlanID, "keys", keyID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting usage plan key: %w", err)
	}

	return decode[apigw.UsagePlanKey](resp, "usage plan key")
}

// ListKeys implements apigw.UsagePlansClient.ListKeys.
func (c *UsagePlansClient) ListKeys(ctx context.Context, usagePlanID string, opts *apigw.UsagePlanKeyListOptions) (*apigw.Page[apigw.UsagePlanKey], error) {
	err := requireParams("listing usage plan keys", "usagePlanId", usagePlanID)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	if opts != nil {
		query = opts.ToValues()
		setIfNotEmpty(query, "name", opts.NameQuery)
	}

	resp, err := c.httpClient.Get(ctx, buildPath("usageplans", usagePlanID, "keys"), query)
	if err != nil {
		return nil, fmt.Errorf("listing usage plan keys: %w", err)
	}

	return decode[apigw.Page[apigw.UsagePlanKey]](resp, "usage plan keys list")
}

// DeleteKey implements apigw.UsagePlansClient.DeleteKey.
func (c *UsagePlansClient) DeleteKey(ctx context.Context, usagePlanID, keyID string) error {
	err := requireParams("deleting usage plan key", "usagePlanId", usagePlanID, "keyId", keyID)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, buildPath("usageplans", usagePlanID, "keys", keyID))
	if err != nil {
		return fmt.Errorf("deleting usage plan key: %w", err)
	}

	return nil
}

// GetUsage implements apigw.UsagePlansClient.GetUsage.
func (c *UsagePlansClient) GetUsage(ctx context.Context, usagePlanID string, opts *apigw.UsageOptions) (*apigw.Usage, error) {
	if opts == nil {
		opts = &apigw.UsageOptions{}
	}

	err := requireParams("getting usage", "usagePlanId", usagePlanID, "startDate", opts.StartDate, "endDate", opts.EndDate)
	if err != nil {
		return nil, err
	}

	query := opts.ToValues()
	query.Set("startDate", opts.StartDate)
	query.Set("endDate", opts.EndDate)
	setIfNotEmpty(query, "keyId", opts.KeyID)

	resp, err := c.httpClient.Get(ctx, buildPath("usageplans", usagePlanID, "usage"), query)
	if err != nil {
		return nil, fmt.Errorf("getting usage: %w", err)
	}

	return decode[apigw.Usage](resp, "usage")
}

// UpdateUsage implements apigw.UsagePlansClient.UpdateUsage. It adjusts the
// remaining quota of one key.
func (c *UsagePlansClient) UpdateUsage(ctx context.Context, usagePlanID, keyID string, request *apigw.UpdateRequest) (*apigw.Usage, error) {
	err := requireParams("updating usage", "usagePlanId", usagePlanID, "keyId", keyID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, buildPath("usageplans", usagePlanID, "keys", keyID, "usage"), request)
	if err != nil {
		return nil, fmt.Errorf("updating usage: %w", err)
	}

	return decode[apigw.Usage](resp, "usage")
}
