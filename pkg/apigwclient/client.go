package apigwclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/fivetwenty-io/apigw/internal/client"
	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

// New creates a new API Gateway client. The config is not modified.
func New(ctx context.Context, config *apigw.Config) (apigw.Client, error) {
	if config == nil {
		return nil, apigw.ErrConfigRequired
	}

	cfg := *config
	cfg.APIEndpoint = normalizeEndpoint(cfg.APIEndpoint)

	c, err := client.New(ctx, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithStaticCredentials creates a client for region signed with fixed keys.
func NewWithStaticCredentials(ctx context.Context, region, accessKeyID, secretAccessKey string) (apigw.Client, error) {
	return New(ctx, &apigw.Config{
		Region:          region,
		AccessKeyID:     accessKeyID,
		SecretAccessKey: secretAccessKey,
	})
}

// NewWithCredentialsProvider creates a client for region using provider.
// Any aws.CredentialsProvider can be adapted with
// apigw.NewStaticCredentialsProvider or passed through an apigw.Config.
func NewWithCredentialsProvider(ctx context.Context, region string, provider apigw.CredentialsProvider) (apigw.Client, error) {
	return New(ctx, &apigw.Config{
		Region:              region,
		CredentialsProvider: provider,
	})
}

// NewWithCredentials creates a client for region using a fixed credential set.
func NewWithCredentials(ctx context.Context, region string, creds aws.Credentials) (apigw.Client, error) {
	return NewWithCredentialsProvider(ctx, region, apigw.NewStaticCredentialsProvider(creds))
}

// NewWithEndpoint creates an unsigned client for endpoint, typically a local
// emulator.
func NewWithEndpoint(ctx context.Context, endpoint string) (apigw.Client, error) {
	return New(ctx, &apigw.Config{
		APIEndpoint: endpoint,
		Anonymous:   true,
	})
}

func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return ""
	}

	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}
